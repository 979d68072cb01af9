package castly

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUntypedStorage is returned by KindOfType for interface storage, which
// has no single kind and needs per-element runtime classification.
var ErrUntypedStorage = errors.New("untyped storage requires per-element inspection")

// UnsupportedKindError reports a storage type outside the supported kinds.
type UnsupportedKindError struct {
	Type reflect.Type
}

func (e *UnsupportedKindError) Error() string {
	if e.Type == nil {
		return "unsupported kind: <nil>"
	}
	return fmt.Sprintf("unsupported kind: %s", e.Type)
}

// PrecisionLossError reports a narrowing conversion rejected by the
// tolerance gate. The force option bypasses the gate but not the integer
// range check: a value outside int64 has no representable candidate.
type PrecisionLossError struct {
	From  Kind
	To    Kind
	Value interface{}
}

func (e *PrecisionLossError) Error() string {
	return fmt.Sprintf("cannot convert %v to %v without losing information: %v", e.From, e.To, e.Value)
}

// ConversionError reports a conversion with no applicable rule, including a
// string whose inferred kind has no path to the requested target.
type ConversionError struct {
	From  Kind
	To    Kind
	Value interface{}
	Err   error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %v to %v: %v", e.From, e.To, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// normalizeErr keeps kernel errors as-is and wraps anything internal into a
// ConversionError so lookup or parse detail never crosses the boundary raw.
func normalizeErr(from, to Kind, value interface{}, err error) error {
	var loss *PrecisionLossError
	if errors.As(err, &loss) {
		return loss
	}
	var unsupported *UnsupportedKindError
	if errors.As(err, &unsupported) {
		return unsupported
	}
	var conversion *ConversionError
	if errors.As(err, &conversion) {
		return conversion
	}
	return &ConversionError{From: from, To: to, Value: value, Err: err}
}
