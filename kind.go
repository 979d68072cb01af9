package castly

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the semantic category a scalar value belongs to. Every supported
// storage representation classifies into exactly one kind.
type Kind int

const (
	KindInvalid Kind = iota

	KindInt
	KindFloat
	KindComplex
	KindBool
	KindString
	KindTime
	KindDuration

	kindCount = int(iota)
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// KindOf classifies a native scalar value. All integer widths, signed or
// unsigned, classify as KindInt; both float and both complex widths collapse
// the same way. Booleans classify distinctly from integers. Pointer values
// are dereferenced; named types classify through their underlying kind.
func KindOf(value interface{}) (Kind, error) {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindInt, nil
	case float32, float64:
		return KindFloat, nil
	case complex64, complex128:
		return KindComplex, nil
	case bool:
		return KindBool, nil
	case string:
		return KindString, nil
	case time.Time, *time.Time:
		return KindTime, nil
	case time.Duration:
		return KindDuration, nil
	}
	if value == nil {
		return KindInvalid, &UnsupportedKindError{}
	}
	return KindOfType(reflect.TypeOf(value))
}

// KindOfType classifies a storage type descriptor. An interface (untyped
// object) storage type returns ErrUntypedStorage: callers owning such
// storage classify each element at runtime with KindOf instead.
func KindOfType(t reflect.Type) (Kind, error) {
	if t == nil {
		return KindInvalid, &UnsupportedKindError{}
	}
	if t == timeType {
		return KindTime, nil
	}
	if t == durationType {
		return KindDuration, nil
	}
	switch t.Kind() {
	case reflect.Ptr:
		return KindOfType(t.Elem())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt, nil
	case reflect.Float32, reflect.Float64:
		return KindFloat, nil
	case reflect.Complex64, reflect.Complex128:
		return KindComplex, nil
	case reflect.Bool:
		return KindBool, nil
	case reflect.String:
		return KindString, nil
	case reflect.Interface:
		return KindInvalid, ErrUntypedStorage
	}
	return KindInvalid, &UnsupportedKindError{Type: t}
}
