package castly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInferCascade(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		kind     Kind
		expected interface{}
	}{
		{"integer", "10", KindInt, int64(10)},
		{"negative integer", "-3", KindInt, int64(-3)},
		{"padded integer", " 42 ", KindInt, int64(42)},
		{"float", "1.0", KindFloat, 1.0},
		{"scientific float", "2.5e3", KindFloat, 2500.0},
		{"complex go form", "1+2i", KindComplex, complex(1, 2)},
		{"complex python form", "(1+0j)", KindComplex, complex(1, 0)},
		{"duration go form", "1h2m3s", KindDuration, time.Hour + 2*time.Minute + 3*time.Second},
		{"duration clock form", "1 day, 0:00:10", KindDuration, 24*time.Hour + 10*time.Second},
		{"duration plural days", "2 days, 1:02:03", KindDuration, 49*time.Hour + 2*time.Minute + 3*time.Second},
		{"duration fraction", "0:00:10.5", KindDuration, 10*time.Second + 500*time.Millisecond},
		{"negative clock duration", "-0:00:10", KindDuration, -10 * time.Second},
		{"datetime rfc3339", "2022-01-01T00:00:00Z", KindTime, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"datetime with offset", "1970-01-01 00:00:00+00:00", KindTime, time.Unix(0, 0).UTC()},
		{"datetime space form", "2022-06-15 12:30:45", KindTime, time.Date(2022, 6, 15, 12, 30, 45, 0, time.UTC)},
		{"date only", "2022-06-15", KindTime, time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"bool true", "true", KindBool, true},
		{"bool t", "T", KindBool, true},
		{"bool false", "False", KindBool, false},
		{"bool f", " f ", KindBool, false},
		{"text", "abc", KindString, "abc"},
		{"almost bool", "truth", KindString, "truth"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, value := Infer(tc.text)
			assert.Equal(t, tc.kind, kind, tc.text)
			assert.Equal(t, tc.expected, value, tc.text)
		})
	}
}

func TestInferOrdering(t *testing.T) {
	// numeric literals win over the permissive boolean and text fallbacks
	kind, value := Infer("10")
	assert.Equal(t, KindInt, kind)
	assert.Equal(t, int64(10), value)

	// "1" is an integer, never boolean true
	kind, _ = Infer("1")
	assert.Equal(t, KindInt, kind)
}

func TestInferMemoized(t *testing.T) {
	kind1, value1 := Infer("0:00:10")
	kind2, value2 := Infer("0:00:10")
	assert.Equal(t, kind1, kind2)
	assert.Equal(t, value1, value2)
}

func TestInferValueWithLayout(t *testing.T) {
	options := newOptions([]Option{WithTimeLayout("02/01/2006")})
	kind, value := inferValue("15/06/2022", options)
	assert.Equal(t, KindTime, kind)
	assert.Equal(t, time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC), value)

	// without the layout the same text is not a recognized encoding
	kind, _ = Infer("15/06/2022")
	assert.Equal(t, KindString, kind)
}

func TestParseDurationRejects(t *testing.T) {
	for _, text := range []string{"0:99:10", "0:00:75", "day, 0:00:10", "1:2"} {
		if _, ok := parseDuration(text); ok {
			t.Errorf("expected %q to be rejected", text)
		}
	}
}
