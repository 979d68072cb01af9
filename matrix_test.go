package castly

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixExhaustive(t *testing.T) {
	for from := KindInt; from <= KindDuration; from++ {
		for to := KindInt; to <= KindDuration; to++ {
			if matrix[from][to] == nil {
				t.Errorf("missing rule %v -> %v\n%s", from, to, spew.Sdump(matrix[from]))
			}
		}
	}
}

func TestEpochSecondsBridge(t *testing.T) {
	epoch := time.Unix(86410, 0).UTC()

	actual, err := ToFloat(epoch)
	require.NoError(t, err)
	assert.Equal(t, 86410.0, actual.Value)

	asInt, err := ToInt(epoch)
	require.NoError(t, err)
	assert.Equal(t, int64(86410), asInt.Value)

	asComplex, err := ToComplex(epoch)
	require.NoError(t, err)
	assert.Equal(t, complex(86410, 0), asComplex.Value)

	back, err := ToTime(86410.0)
	require.NoError(t, err)
	assert.True(t, epoch.Equal(back.Value))

	fromInt, err := ToTime(86410)
	require.NoError(t, err)
	assert.True(t, epoch.Equal(fromInt.Value))
}

func TestSubSecondEpoch(t *testing.T) {
	half := time.Unix(10, 500000000).UTC()

	asFloat, err := ToFloat(half)
	require.NoError(t, err)
	assert.InDelta(t, 10.5, asFloat.Value, 1e-9)

	_, err = ToInt(half)
	assert.Error(t, err)

	forced, err := ToInt(half, WithForce())
	require.NoError(t, err)
	assert.Equal(t, int64(10), forced.Value)

	rounded, err := ToInt(half, WithForce(), WithRound(true))
	require.NoError(t, err)
	assert.Equal(t, int64(11), rounded.Value)

	back, err := ToTime(10.5)
	require.NoError(t, err)
	assert.True(t, half.Equal(back.Value))
}

func TestDurationNumeric(t *testing.T) {
	d := 24*time.Hour + 10*time.Second

	asFloat, err := ToFloat(d)
	require.NoError(t, err)
	assert.Equal(t, 86410.0, asFloat.Value)

	asInt, err := ToInt(d)
	require.NoError(t, err)
	assert.Equal(t, int64(86410), asInt.Value)

	back, err := ToDuration(86410)
	require.NoError(t, err)
	assert.Equal(t, d, back.Value)

	fromFloat, err := ToDuration(10.5)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second+500*time.Millisecond, fromFloat.Value)
}

func TestTimeDurationDetour(t *testing.T) {
	// a datetime's epoch-seconds reinterpreted as a span, and back
	epoch := time.Unix(86410, 0).UTC()

	span, err := ToDuration(epoch)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour+10*time.Second, span.Value)

	point, err := ToTime(24*time.Hour + 10*time.Second)
	require.NoError(t, err)
	assert.True(t, epoch.Equal(point.Value))
}

func TestFarFutureEpoch(t *testing.T) {
	// beyond the nanosecond-representable window of time.Time
	future := time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)

	asFloat, err := ToFloat(future)
	require.NoError(t, err)
	assert.Equal(t, float64(future.Unix()), asFloat.Value)

	asInt, err := ToInt(future)
	require.NoError(t, err)
	assert.Equal(t, future.Unix(), asInt.Value)

	back, err := ToTime(float64(future.Unix()))
	require.NoError(t, err)
	assert.True(t, future.Equal(back.Value))

	// the same epoch read as a span overflows a nanosecond duration
	_, err = ToDuration(future)
	assert.Error(t, err)
}

func TestComplexNarrowing(t *testing.T) {
	small, err := ToFloat(complex(2.5, 1e-9))
	require.NoError(t, err)
	assert.Equal(t, 2.5, small.Value)

	_, err = ToFloat(complex(2.5, 0.25))
	assert.Error(t, err)

	forced, err := ToFloat(complex(2.5, 0.25), WithForce())
	require.NoError(t, err)
	assert.Equal(t, 2.5, forced.Value)

	asTime, err := ToTime(complex(60, 0))
	require.NoError(t, err)
	assert.True(t, time.Unix(60, 0).UTC().Equal(asTime.Value))

	_, err = ToDuration(complex(60, 3))
	assert.Error(t, err)
}

func TestBooleanWidening(t *testing.T) {
	asInt, err := ToInt(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), asInt.Value)

	asFloat, err := ToFloat(false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, asFloat.Value)

	asTime, err := ToTime(true)
	require.NoError(t, err)
	assert.True(t, time.Unix(1, 0).UTC().Equal(asTime.Value))

	asDuration, err := ToDuration(true)
	require.NoError(t, err)
	assert.Equal(t, time.Second, asDuration.Value)
}

func TestTimeToBool(t *testing.T) {
	truthy, err := ToBool(time.Unix(1, 0).UTC())
	require.NoError(t, err)
	assert.True(t, truthy.Value)

	_, err = ToBool(time.Unix(5, 0).UTC())
	assert.Error(t, err)

	forced, err := ToBool(time.Unix(5, 0).UTC(), WithForce())
	require.NoError(t, err)
	assert.True(t, forced.Value)
}

func TestRenderings(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		opts     []Option
		expected string
	}{
		{"int", 42, nil, "42"},
		{"float", 123.456, nil, "123.456"},
		{"bool", true, nil, "true"},
		{"complex", complex(1, 2), nil, "(1+2i)"},
		{"duration", 24*time.Hour + 10*time.Second, nil, "24h0m10s"},
		{"time default", time.Unix(0, 0).UTC(), nil, "1970-01-01T00:00:00Z"},
		{"time layout", time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC), []Option{WithTimeLayout("2006-01-02")}, "2022-06-15"},
		{"time date format", time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC), []Option{WithDateFormat("YYYY-MM-DD")}, "2022-06-15"},
		{"float decimal", 1234567.89, []Option{WithFormat("Decimal")}, "1,234,567.89"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ToString(tc.value, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.Value)
		})
	}
}

func TestRenderingsRoundTrip(t *testing.T) {
	// default renderings parse back to the same value through inference
	values := []interface{}{int64(42), 123.456, true, complex(1, 2), 90 * time.Minute,
		time.Date(2022, 6, 15, 12, 30, 45, 0, time.UTC)}
	for _, value := range values {
		text, err := ToString(value)
		require.NoError(t, err)
		kind, parsed := Infer(text.Value)
		expected, err := KindOf(value)
		require.NoError(t, err)
		assert.Equal(t, expected, kind, text.Value)
		if ts, ok := value.(time.Time); ok {
			assert.True(t, ts.Equal(parsed.(time.Time)), text.Value)
		} else {
			assert.Equal(t, value, parsed, text.Value)
		}
	}
}
