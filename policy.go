package castly

import (
	"math"
	"math/cmplx"
)

// The loss policy gates every narrowing conversion: a candidate result is
// accepted only when forcing, or when re-expanding it back into the source
// comparison domain stays within tolerance of the original.

// narrowToInt derives an integer candidate from a real value. With the
// round option the candidate is always the nearest integer; otherwise the
// nearest integer is used only when already within tolerance and the
// truncated value is used instead.
func narrowToInt(value float64, from Kind, original interface{}, options *Options) (int64, error) {
	if math.IsInf(value, 0) || !inInt64Range(value) {
		return 0, &PrecisionLossError{From: from, To: KindInt, Value: original}
	}
	rounded := math.Round(value)
	var candidate float64
	if options.Round || math.Abs(rounded-value) < options.Tolerance {
		candidate = rounded
	} else {
		candidate = math.Trunc(value)
	}
	if options.Force || math.Abs(candidate-value) < options.Tolerance {
		return int64(candidate), nil
	}
	return 0, &PrecisionLossError{From: from, To: KindInt, Value: original}
}

// narrowToBool snaps a real value to the nearest integer when already
// within tolerance, takes truthiness of the result, and gates on the
// distance between the boolean's numeric value and the original.
func narrowToBool(value float64, from Kind, original interface{}, options *Options) (bool, error) {
	candidate := value
	if rounded := math.Round(value); math.Abs(rounded-value) < options.Tolerance {
		candidate = rounded
	}
	result := candidate != 0
	if options.Force || math.Abs(boolNumeric(result)-value) < options.Tolerance {
		return result, nil
	}
	return false, &PrecisionLossError{From: from, To: KindBool, Value: original}
}

// gateBool is the unsnapped boolean gate used by the epoch-seconds bridge:
// truthiness of the raw seconds, gated without nearest-integer snapping.
func gateBool(value float64, from Kind, original interface{}, options *Options) (bool, error) {
	result := value != 0
	if options.Force || math.Abs(boolNumeric(result)-value) < options.Tolerance {
		return result, nil
	}
	return false, &PrecisionLossError{From: from, To: KindBool, Value: original}
}

// dropImaginary gates discarding the imaginary part of a complex value.
func dropImaginary(value complex128, from, to Kind, original interface{}, options *Options) (float64, error) {
	if options.Force || math.Abs(imag(value)) < options.Tolerance {
		return real(value), nil
	}
	return 0, &PrecisionLossError{From: from, To: to, Value: original}
}

// narrowComplexToInt is narrowToInt with the reconstruction delta measured
// in the complex plane, so a residual imaginary part counts as loss.
func narrowComplexToInt(value complex128, from Kind, original interface{}, options *Options) (int64, error) {
	if math.IsInf(real(value), 0) || !inInt64Range(real(value)) {
		return 0, &PrecisionLossError{From: from, To: KindInt, Value: original}
	}
	rounded := math.Round(real(value))
	candidate := rounded
	if !options.Round && cmplx.Abs(complex(rounded, 0)-value) >= options.Tolerance {
		candidate = math.Trunc(real(value))
	}
	if options.Force || cmplx.Abs(complex(candidate, 0)-value) < options.Tolerance {
		return int64(candidate), nil
	}
	return 0, &PrecisionLossError{From: from, To: KindInt, Value: original}
}

// narrowComplexToBool mirrors narrowToBool in the complex plane.
func narrowComplexToBool(value complex128, from Kind, original interface{}, options *Options) (bool, error) {
	candidate := real(value)
	if rounded := math.Round(real(value)); cmplx.Abs(complex(rounded, 0)-value) < options.Tolerance {
		candidate = rounded
	}
	result := candidate != 0
	if options.Force || cmplx.Abs(complex(boolNumeric(result), 0)-value) < options.Tolerance {
		return result, nil
	}
	return false, &PrecisionLossError{From: from, To: KindBool, Value: original}
}

// inInt64Range reports whether value converts to int64 without wrapping.
// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is strict.
func inInt64Range(value float64) bool {
	return value >= math.MinInt64 && value < math.MaxInt64
}

func boolNumeric(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
