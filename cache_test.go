package castly

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionMemoized(t *testing.T) {
	ResetCache()
	defer ResetCache()

	asInt, err := ToInt("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), asInt.Value)

	key, ok := cacheKeyFor("42", KindInt, newOptions(nil))
	require.True(t, ok)
	cached, hit := conversions.Load(key)
	require.True(t, hit)
	assert.Equal(t, int64(42), cached)
}

func TestCacheKeyedByOptions(t *testing.T) {
	ResetCache()
	defer ResetCache()

	_, err := ToInt(10.6)
	assert.Error(t, err)

	forced, err := ToInt(10.6, WithForce())
	require.NoError(t, err)
	assert.Equal(t, int64(10), forced.Value)

	rounded, err := ToInt(10.6, WithForce(), WithRound(true))
	require.NoError(t, err)
	assert.Equal(t, int64(11), rounded.Value)

	// the earlier forced result must not shadow the rounded one
	again, err := ToInt(10.6, WithForce())
	require.NoError(t, err)
	assert.Equal(t, int64(10), again.Value)
}

func TestCacheBypassesPointers(t *testing.T) {
	value := 2.0
	_, ok := cacheKeyFor(&value, KindInt, newOptions(nil))
	assert.False(t, ok)

	_, ok = cacheKeyFor([]int{1}, KindInt, newOptions(nil))
	assert.False(t, ok)

	_, ok = cacheKeyFor(nil, KindInt, newOptions(nil))
	assert.False(t, ok)
}

func TestResetCache(t *testing.T) {
	_, err := ToInt("42")
	require.NoError(t, err)
	kind, _ := Infer("42")
	assert.Equal(t, KindInt, kind)

	ResetCache()

	size := 0
	conversions.Range(func(_, _ interface{}) bool {
		size++
		return true
	})
	assert.Equal(t, 0, size)

	size = 0
	inferences.Range(func(_, _ interface{}) bool {
		size++
		return true
	})
	assert.Equal(t, 0, size)
}

func TestConcurrentConversions(t *testing.T) {
	ResetCache()
	defer ResetCache()

	var waitGroup sync.WaitGroup
	for i := 0; i < 16; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for j := 0; j < 100; j++ {
				asInt, err := ToInt("1970-01-01 00:01:00+00:00")
				assert.NoError(t, err)
				assert.Equal(t, int64(60), asInt.Value)
			}
		}()
	}
	waitGroup.Wait()
}
