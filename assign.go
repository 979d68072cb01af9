package castly

import (
	"errors"
	"math"
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Convert converts value into the representation dest points to. The
// destination type selects both the matrix column and the concrete output
// representation: numeric widths, nullable result types, or pointer
// destinations that become nil for missing input. Width narrowing below
// the destination range is gated by the loss policy.
func Convert(value, dest interface{}, opts ...Option) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	options := newOptions(opts)
	ptr := xunsafe.AsPointer(dest)
	switch dest.(type) {
	case *int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64:
		out, err := convert(value, KindInt, opts)
		if err != nil {
			return err
		}
		return assignInt(dest, ptr, out, value, options)
	case *float32:
		out, err := convert(value, KindFloat, opts)
		if err != nil {
			return err
		}
		f := math.NaN()
		if out != nil {
			f = out.(float64)
		}
		*(*float32)(ptr) = float32(f)
		return nil
	case *float64:
		out, err := convert(value, KindFloat, opts)
		if err != nil {
			return err
		}
		f := math.NaN()
		if out != nil {
			f = out.(float64)
		}
		*(*float64)(ptr) = f
		return nil
	case *complex64:
		out, err := convert(value, KindComplex, opts)
		if err != nil {
			return err
		}
		c := complex(math.NaN(), math.NaN())
		if out != nil {
			c = out.(complex128)
		}
		*(*complex64)(ptr) = complex64(c)
		return nil
	case *complex128:
		out, err := convert(value, KindComplex, opts)
		if err != nil {
			return err
		}
		c := complex(math.NaN(), math.NaN())
		if out != nil {
			c = out.(complex128)
		}
		*(*complex128)(ptr) = c
		return nil
	case *bool:
		out, err := convert(value, KindBool, opts)
		if err != nil {
			return err
		}
		b := false
		if out != nil {
			b = out.(bool)
		}
		*(*bool)(ptr) = b
		return nil
	case *string:
		out, err := convert(value, KindString, opts)
		if err != nil {
			return err
		}
		s := ""
		if out != nil {
			s = out.(string)
		}
		*(*string)(ptr) = s
		return nil
	case *time.Time:
		out, err := convert(value, KindTime, opts)
		if err != nil {
			return err
		}
		t := time.Time{}
		if out != nil {
			t = out.(time.Time)
		}
		*(*time.Time)(ptr) = t
		return nil
	case *time.Duration:
		out, err := convert(value, KindDuration, opts)
		if err != nil {
			return err
		}
		d := time.Duration(0)
		if out != nil {
			d = out.(time.Duration)
		}
		*(*time.Duration)(ptr) = d
		return nil
	case *Int:
		r, err := ToInt(value, opts...)
		if err != nil {
			return err
		}
		*(*Int)(ptr) = r
		return nil
	case *Float:
		r, err := ToFloat(value, opts...)
		if err != nil {
			return err
		}
		*(*Float)(ptr) = r
		return nil
	case *Complex:
		r, err := ToComplex(value, opts...)
		if err != nil {
			return err
		}
		*(*Complex)(ptr) = r
		return nil
	case *Bool:
		r, err := ToBool(value, opts...)
		if err != nil {
			return err
		}
		*(*Bool)(ptr) = r
		return nil
	case *String:
		r, err := ToString(value, opts...)
		if err != nil {
			return err
		}
		*(*String)(ptr) = r
		return nil
	case *Time:
		r, err := ToTime(value, opts...)
		if err != nil {
			return err
		}
		*(*Time)(ptr) = r
		return nil
	case *Duration:
		r, err := ToDuration(value, opts...)
		if err != nil {
			return err
		}
		*(*Duration)(ptr) = r
		return nil
	}
	return convertReflect(value, dest, options, opts)
}

// assignInt stores an integer result into any integer width destination,
// gating overflow through the loss policy.
func assignInt(dest interface{}, ptr unsafe.Pointer, out interface{}, original interface{}, options *Options) error {
	v := int64(0)
	if out != nil {
		v = out.(int64)
	}
	switch dest.(type) {
	case *int:
		*(*int)(ptr) = int(v)
	case *int8:
		if err := checkIntRange(v, math.MinInt8, math.MaxInt8, original, options); err != nil {
			return err
		}
		*(*int8)(ptr) = int8(v)
	case *int16:
		if err := checkIntRange(v, math.MinInt16, math.MaxInt16, original, options); err != nil {
			return err
		}
		*(*int16)(ptr) = int16(v)
	case *int32:
		if err := checkIntRange(v, math.MinInt32, math.MaxInt32, original, options); err != nil {
			return err
		}
		*(*int32)(ptr) = int32(v)
	case *int64:
		*(*int64)(ptr) = v
	case *uint:
		if err := checkIntRange(v, 0, math.MaxInt64, original, options); err != nil {
			return err
		}
		*(*uint)(ptr) = uint(v)
	case *uint8:
		if err := checkIntRange(v, 0, math.MaxUint8, original, options); err != nil {
			return err
		}
		*(*uint8)(ptr) = uint8(v)
	case *uint16:
		if err := checkIntRange(v, 0, math.MaxUint16, original, options); err != nil {
			return err
		}
		*(*uint16)(ptr) = uint16(v)
	case *uint32:
		if err := checkIntRange(v, 0, math.MaxUint32, original, options); err != nil {
			return err
		}
		*(*uint32)(ptr) = uint32(v)
	case *uint64:
		if err := checkIntRange(v, 0, math.MaxInt64, original, options); err != nil {
			return err
		}
		*(*uint64)(ptr) = uint64(v)
	}
	return nil
}

func checkIntRange(v, lo, hi int64, original interface{}, options *Options) error {
	if options.Force || (v >= lo && v <= hi) {
		return nil
	}
	return &PrecisionLossError{From: KindInt, To: KindInt, Value: original}
}

// convertReflect covers the long tail: named scalar types and
// pointer-to-pointer destinations that represent missing as nil.
func convertReflect(value, dest interface{}, options *Options, opts []Option) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return &UnsupportedKindError{Type: reflect.TypeOf(dest)}
	}
	elem := rv.Elem()
	if elem.Kind() == reflect.Ptr {
		target, err := KindOfType(elem.Type().Elem())
		if err != nil {
			return err
		}
		out, err := convert(value, target, opts)
		if err != nil {
			return err
		}
		if out == nil {
			elem.Set(reflect.Zero(elem.Type()))
			return nil
		}
		boxed := reflect.New(elem.Type().Elem())
		if err := setScalar(boxed.Elem(), target, out, value, options); err != nil {
			return err
		}
		elem.Set(boxed)
		return nil
	}
	target, err := KindOfType(elem.Type())
	if err != nil {
		return err
	}
	out, err := convert(value, target, opts)
	if err != nil {
		return err
	}
	if out == nil {
		elem.Set(missingValue(elem.Type(), target))
		return nil
	}
	return setScalar(elem, target, out, value, options)
}

func setScalar(elem reflect.Value, target Kind, out, original interface{}, options *Options) error {
	switch target {
	case KindInt:
		v := out.(int64)
		switch elem.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if !options.Force && (v < 0 || elem.OverflowUint(uint64(v))) {
				return &PrecisionLossError{From: KindInt, To: KindInt, Value: original}
			}
			elem.SetUint(uint64(v))
		default:
			if !options.Force && elem.OverflowInt(v) {
				return &PrecisionLossError{From: KindInt, To: KindInt, Value: original}
			}
			elem.SetInt(v)
		}
	case KindFloat:
		elem.SetFloat(out.(float64))
	case KindComplex:
		elem.SetComplex(out.(complex128))
	case KindBool:
		elem.SetBool(out.(bool))
	case KindString:
		elem.SetString(out.(string))
	case KindTime:
		elem.Set(reflect.ValueOf(out.(time.Time)).Convert(elem.Type()))
	case KindDuration:
		elem.SetInt(int64(out.(time.Duration)))
	default:
		return &UnsupportedKindError{Type: elem.Type()}
	}
	return nil
}

// missingValue is the kind's missing sentinel for a plain destination.
func missingValue(t reflect.Type, kind Kind) reflect.Value {
	switch kind {
	case KindFloat:
		v := reflect.New(t).Elem()
		v.SetFloat(math.NaN())
		return v
	case KindComplex:
		v := reflect.New(t).Elem()
		v.SetComplex(complex(math.NaN(), math.NaN()))
		return v
	}
	return reflect.Zero(t)
}
