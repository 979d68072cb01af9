package castly

import (
	"math"
	"reflect"
	"time"
)

// convert is the shared kernel behind every entry point: missing check,
// cache lookup, classification, canonical normalization, matrix cell,
// cache store. A nil result with a nil error is the missing sentinel.
func convert(value interface{}, target Kind, opts []Option) (interface{}, error) {
	if isMissing(value) {
		return nil, nil
	}
	options := newOptions(opts)
	key, cacheable := cacheKeyFor(value, target, options)
	if cacheable {
		if cached, ok := conversions.Load(key); ok {
			return cached, nil
		}
	}
	from, err := KindOf(value)
	if err != nil {
		return nil, err
	}
	canonical, err := normalize(value, from)
	if err != nil {
		return nil, err
	}
	out, err := matrix[from][target](canonical, options)
	if err != nil {
		return nil, normalizeErr(from, target, value, err)
	}
	if cacheable {
		conversions.Store(key, out)
	}
	return out, nil
}

// normalize collapses a classified native value onto its kind's canonical
// scalar: int64, float64, complex128, bool, string, time.Time, time.Duration.
func normalize(value interface{}, kind Kind) (interface{}, error) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch kind {
	case KindInt:
		switch rv.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := rv.Uint()
			if u > math.MaxInt64 {
				return nil, &ConversionError{From: KindInt, To: KindInt, Value: value}
			}
			return int64(u), nil
		}
		return rv.Int(), nil
	case KindFloat:
		return rv.Float(), nil
	case KindComplex:
		return rv.Complex(), nil
	case KindBool:
		return rv.Bool(), nil
	case KindString:
		return rv.String(), nil
	case KindTime:
		return rv.Convert(timeType).Interface().(time.Time), nil
	case KindDuration:
		return time.Duration(rv.Int()), nil
	}
	return nil, &UnsupportedKindError{Type: reflect.TypeOf(value)}
}

// ToInt converts value to an integer. Narrowing sources pass through the
// loss policy; the round option picks snap-to-nearest over truncation.
func ToInt(value interface{}, opts ...Option) (Int, error) {
	out, err := convert(value, KindInt, opts)
	if err != nil || out == nil {
		return Int{}, err
	}
	return Int{Value: out.(int64), Valid: true}, nil
}

// ToFloat converts value to a floating-point number. A missing input
// yields an invalid Float carrying NaN.
func ToFloat(value interface{}, opts ...Option) (Float, error) {
	out, err := convert(value, KindFloat, opts)
	if err != nil || out == nil {
		return Float{Value: math.NaN()}, err
	}
	return Float{Value: out.(float64), Valid: true}, nil
}

// ToComplex converts value to a complex number. A missing input yields an
// invalid Complex carrying NaN parts.
func ToComplex(value interface{}, opts ...Option) (Complex, error) {
	out, err := convert(value, KindComplex, opts)
	if err != nil || out == nil {
		return Complex{Value: complex(math.NaN(), math.NaN())}, err
	}
	return Complex{Value: out.(complex128), Valid: true}, nil
}

// ToBool converts value to a boolean through the loss policy: numeric
// sources must sit within tolerance of 0 or 1 unless forced.
func ToBool(value interface{}, opts ...Option) (Bool, error) {
	out, err := convert(value, KindBool, opts)
	if err != nil || out == nil {
		return Bool{}, err
	}
	return Bool{Value: out.(bool), Valid: true}, nil
}

// ToString renders value as canonical round-trippable text; the time
// layout and format options select structured renderings instead.
func ToString(value interface{}, opts ...Option) (String, error) {
	out, err := convert(value, KindString, opts)
	if err != nil || out == nil {
		return String{}, err
	}
	return String{Value: out.(string), Valid: true}, nil
}

// ToTime converts value to a UTC datetime, interpreting numeric sources as
// seconds since the Unix epoch.
func ToTime(value interface{}, opts ...Option) (Time, error) {
	out, err := convert(value, KindTime, opts)
	if err != nil || out == nil {
		return Time{}, err
	}
	return Time{Value: out.(time.Time), Valid: true}, nil
}

// ToDuration converts value to a duration, interpreting numeric sources as
// seconds.
func ToDuration(value interface{}, opts ...Option) (Duration, error) {
	out, err := convert(value, KindDuration, opts)
	if err != nil || out == nil {
		return Duration{}, err
	}
	return Duration{Value: out.(time.Duration), Valid: true}, nil
}
