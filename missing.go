package castly

import (
	"math"
	"reflect"
	"time"
)

type (
	// Int is a nullable integer conversion result.
	Int struct {
		Value int64
		Valid bool
	}

	// Float is a nullable floating-point conversion result; a missing
	// value additionally carries NaN.
	Float struct {
		Value float64
		Valid bool
	}

	// Complex is a nullable complex conversion result; a missing value
	// additionally carries NaN parts.
	Complex struct {
		Value complex128
		Valid bool
	}

	// Bool is a nullable boolean conversion result.
	Bool struct {
		Value bool
		Valid bool
	}

	// String is a nullable text conversion result.
	String struct {
		Value string
		Valid bool
	}

	// Time is a nullable datetime conversion result.
	Time struct {
		Value time.Time
		Valid bool
	}

	// Duration is a nullable duration conversion result.
	Duration struct {
		Value time.Duration
		Valid bool
	}
)

// isMissing reports whether value is the absence of data: untyped nil, a
// nil pointer, a NaN float or complex, or the zero datetime.
func isMissing(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	case complex128:
		return math.IsNaN(real(v)) || math.IsNaN(imag(v))
	case complex64:
		return math.IsNaN(float64(real(v))) || math.IsNaN(float64(imag(v)))
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return true
		}
		return isMissing(rv.Elem().Interface())
	}
	return false
}
