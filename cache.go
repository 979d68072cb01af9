package castly

import (
	"reflect"
	"sync"
)

// conversions memoizes successful results keyed by (value, normalized
// options, target kind). Conversion rules are pure, so entries are never
// invalidated; the cache is read-mostly and a duplicate concurrent compute
// of the same key is benign. It grows monotonically for the life of the
// process; long running services evict with ResetCache.
var conversions sync.Map

type cacheKey struct {
	value   interface{}
	target  Kind
	options optionsKey
}

// cacheKeyFor builds a memoization key. Non-comparable and pointer values
// bypass the cache: only immutable value types may be memoized.
func cacheKeyFor(value interface{}, target Kind, options *Options) (cacheKey, bool) {
	if value == nil {
		return cacheKey{}, false
	}
	rt := reflect.TypeOf(value)
	if !rt.Comparable() || rt.Kind() == reflect.Ptr {
		return cacheKey{}, false
	}
	return cacheKey{value: value, target: target, options: options.key()}, true
}

// ResetCache drops all memoized conversion and inference results.
func ResetCache() {
	conversions.Range(func(key, _ interface{}) bool {
		conversions.Delete(key)
		return true
	})
	inferences.Range(func(key, _ interface{}) bool {
		inferences.Delete(key)
		return true
	})
}
