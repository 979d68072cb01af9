package castly

import (
	"math"
	"strconv"
	"time"

	"github.com/viant/castly/format"
)

// conversion converts a canonical scalar of the source kind into a
// canonical scalar of the target kind. Canonical forms are int64, float64,
// complex128, bool, string, time.Time (UTC) and time.Duration.
type conversion func(value interface{}, options *Options) (interface{}, error)

// matrix indexes every ordered (from, to) conversion rule. Rows and columns
// are Kind values; every cell is populated in init and verified non-nil so
// a missing pair is detected at startup rather than at call time.
var matrix [kindCount][kindCount]conversion

func init() {
	matrix[KindInt] = [kindCount]conversion{
		KindInt:      intToInt,
		KindFloat:    intToFloat,
		KindComplex:  intToComplex,
		KindBool:     intToBool,
		KindString:   intToString,
		KindTime:     intToTime,
		KindDuration: intToDuration,
	}
	matrix[KindFloat] = [kindCount]conversion{
		KindInt:      floatToInt,
		KindFloat:    floatToFloat,
		KindComplex:  floatToComplex,
		KindBool:     floatToBool,
		KindString:   floatToString,
		KindTime:     floatToTime,
		KindDuration: floatToDuration,
	}
	matrix[KindComplex] = [kindCount]conversion{
		KindInt:      complexToInt,
		KindFloat:    complexToFloat,
		KindComplex:  complexToComplex,
		KindBool:     complexToBool,
		KindString:   complexToString,
		KindTime:     complexToTime,
		KindDuration: complexToDuration,
	}
	matrix[KindBool] = [kindCount]conversion{
		KindInt:      boolToInt,
		KindFloat:    boolToFloat,
		KindComplex:  boolToComplex,
		KindBool:     boolToBool,
		KindString:   boolToString,
		KindTime:     boolToTime,
		KindDuration: boolToDuration,
	}
	matrix[KindString] = [kindCount]conversion{
		KindInt:      stringTo(KindInt),
		KindFloat:    stringTo(KindFloat),
		KindComplex:  stringTo(KindComplex),
		KindBool:     stringTo(KindBool),
		KindString:   stringToString,
		KindTime:     stringTo(KindTime),
		KindDuration: stringTo(KindDuration),
	}
	matrix[KindTime] = [kindCount]conversion{
		KindInt:      timeToInt,
		KindFloat:    timeToFloat,
		KindComplex:  timeToComplex,
		KindBool:     timeToBool,
		KindString:   timeToString,
		KindTime:     timeToTime,
		KindDuration: timeToDuration,
	}
	matrix[KindDuration] = [kindCount]conversion{
		KindInt:      durationToInt,
		KindFloat:    durationToFloat,
		KindComplex:  durationToComplex,
		KindBool:     durationToBool,
		KindString:   durationToString,
		KindTime:     durationToTime,
		KindDuration: durationToDuration,
	}
	for from := KindInt; from <= KindDuration; from++ {
		for to := KindInt; to <= KindDuration; to++ {
			if matrix[from][to] == nil {
				panic("castly: missing conversion rule " + from.String() + "->" + to.String())
			}
		}
	}
}

// epoch-seconds bridge

// epochSeconds avoids UnixNano, which wraps for datetimes outside the
// ~1678-2262 nanosecond-representable window.
func epochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

func epochToTime(seconds float64) (time.Time, error) {
	if math.IsInf(seconds, 0) || !inInt64Range(seconds) {
		return time.Time{}, &ConversionError{From: KindFloat, To: KindTime, Value: seconds}
	}
	whole := math.Floor(seconds)
	nanos := math.Round((seconds - whole) * float64(time.Second))
	return time.Unix(int64(whole), int64(nanos)).UTC(), nil
}

func secondsToDuration(seconds float64, from Kind) (time.Duration, error) {
	nanos := math.Round(seconds * float64(time.Second))
	if math.IsInf(nanos, 0) || !inInt64Range(nanos) {
		return 0, &ConversionError{From: from, To: KindDuration, Value: seconds}
	}
	return time.Duration(nanos), nil
}

// integer source

func intToInt(value interface{}, options *Options) (interface{}, error) {
	return value.(int64), nil
}

func intToFloat(value interface{}, options *Options) (interface{}, error) {
	return float64(value.(int64)), nil
}

func intToComplex(value interface{}, options *Options) (interface{}, error) {
	return complex(float64(value.(int64)), 0), nil
}

func intToBool(value interface{}, options *Options) (interface{}, error) {
	return narrowToBool(float64(value.(int64)), KindInt, value, options)
}

func intToString(value interface{}, options *Options) (interface{}, error) {
	return strconv.FormatInt(value.(int64), 10), nil
}

func intToTime(value interface{}, options *Options) (interface{}, error) {
	return time.Unix(value.(int64), 0).UTC(), nil
}

func intToDuration(value interface{}, options *Options) (interface{}, error) {
	return time.Duration(value.(int64)) * time.Second, nil
}

// float source

func floatToInt(value interface{}, options *Options) (interface{}, error) {
	return narrowToInt(value.(float64), KindFloat, value, options)
}

func floatToFloat(value interface{}, options *Options) (interface{}, error) {
	return value.(float64), nil
}

func floatToComplex(value interface{}, options *Options) (interface{}, error) {
	return complex(value.(float64), 0), nil
}

func floatToBool(value interface{}, options *Options) (interface{}, error) {
	return narrowToBool(value.(float64), KindFloat, value, options)
}

func floatToString(value interface{}, options *Options) (interface{}, error) {
	f := value.(float64)
	if options.Format != "" {
		tag := &format.Tag{Format: options.Format, Language: options.Language}
		return tag.FormatFloat(f)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func floatToTime(value interface{}, options *Options) (interface{}, error) {
	return epochToTime(value.(float64))
}

func floatToDuration(value interface{}, options *Options) (interface{}, error) {
	return secondsToDuration(value.(float64), KindFloat)
}

// complex source

func complexToInt(value interface{}, options *Options) (interface{}, error) {
	return narrowComplexToInt(value.(complex128), KindComplex, value, options)
}

func complexToFloat(value interface{}, options *Options) (interface{}, error) {
	return dropImaginary(value.(complex128), KindComplex, KindFloat, value, options)
}

func complexToComplex(value interface{}, options *Options) (interface{}, error) {
	return value.(complex128), nil
}

func complexToBool(value interface{}, options *Options) (interface{}, error) {
	return narrowComplexToBool(value.(complex128), KindComplex, value, options)
}

func complexToString(value interface{}, options *Options) (interface{}, error) {
	return strconv.FormatComplex(value.(complex128), 'g', -1, 128), nil
}

func complexToTime(value interface{}, options *Options) (interface{}, error) {
	seconds, err := dropImaginary(value.(complex128), KindComplex, KindTime, value, options)
	if err != nil {
		return nil, err
	}
	return epochToTime(seconds)
}

func complexToDuration(value interface{}, options *Options) (interface{}, error) {
	seconds, err := dropImaginary(value.(complex128), KindComplex, KindDuration, value, options)
	if err != nil {
		return nil, err
	}
	return secondsToDuration(seconds, KindComplex)
}

// boolean source

func boolToInt(value interface{}, options *Options) (interface{}, error) {
	return int64(boolNumeric(value.(bool))), nil
}

func boolToFloat(value interface{}, options *Options) (interface{}, error) {
	return boolNumeric(value.(bool)), nil
}

func boolToComplex(value interface{}, options *Options) (interface{}, error) {
	return complex(boolNumeric(value.(bool)), 0), nil
}

func boolToBool(value interface{}, options *Options) (interface{}, error) {
	return value.(bool), nil
}

func boolToString(value interface{}, options *Options) (interface{}, error) {
	return strconv.FormatBool(value.(bool)), nil
}

func boolToTime(value interface{}, options *Options) (interface{}, error) {
	return time.Unix(int64(boolNumeric(value.(bool))), 0).UTC(), nil
}

func boolToDuration(value interface{}, options *Options) (interface{}, error) {
	return time.Duration(boolNumeric(value.(bool))) * time.Second, nil
}

// string source: infer the literal kind first, then recurse into the
// (inferred, target) cell.

func stringTo(target Kind) conversion {
	return func(value interface{}, options *Options) (interface{}, error) {
		text := value.(string)
		inferred, parsed := inferValue(text, options)
		if inferred == KindString {
			// non-literal text has no path to a non-string target
			return nil, &ConversionError{From: KindString, To: target, Value: text}
		}
		if isMissing(parsed) {
			// a literal missing sentinel, e.g. "nan"
			return nil, nil
		}
		out, err := matrix[inferred][target](parsed, options)
		if err != nil {
			return nil, normalizeErr(KindString, target, text, err)
		}
		return out, nil
	}
}

func stringToString(value interface{}, options *Options) (interface{}, error) {
	return value.(string), nil
}

// datetime source: all rules normalize to UTC and bridge through
// seconds-since-epoch.

func timeToInt(value interface{}, options *Options) (interface{}, error) {
	return narrowToInt(epochSeconds(value.(time.Time)), KindTime, value, options)
}

func timeToFloat(value interface{}, options *Options) (interface{}, error) {
	return epochSeconds(value.(time.Time)), nil
}

func timeToComplex(value interface{}, options *Options) (interface{}, error) {
	return complex(epochSeconds(value.(time.Time)), 0), nil
}

func timeToBool(value interface{}, options *Options) (interface{}, error) {
	return gateBool(epochSeconds(value.(time.Time)), KindTime, value, options)
}

func timeToString(value interface{}, options *Options) (interface{}, error) {
	t := value.(time.Time).UTC()
	if options.TimeLayout != "" {
		return t.Format(options.TimeLayout), nil
	}
	return t.Format(time.RFC3339Nano), nil
}

func timeToTime(value interface{}, options *Options) (interface{}, error) {
	return value.(time.Time).UTC(), nil
}

// timeToDuration reinterprets seconds-since-epoch as a span. The detour
// conflates a point in time with a span; callers owning the semantics must
// confirm it is intentional.
func timeToDuration(value interface{}, options *Options) (interface{}, error) {
	return secondsToDuration(epochSeconds(value.(time.Time)), KindTime)
}

// duration source

func durationToInt(value interface{}, options *Options) (interface{}, error) {
	return narrowToInt(value.(time.Duration).Seconds(), KindDuration, value, options)
}

func durationToFloat(value interface{}, options *Options) (interface{}, error) {
	return value.(time.Duration).Seconds(), nil
}

func durationToComplex(value interface{}, options *Options) (interface{}, error) {
	return complex(value.(time.Duration).Seconds(), 0), nil
}

func durationToBool(value interface{}, options *Options) (interface{}, error) {
	return gateBool(value.(time.Duration).Seconds(), KindDuration, value, options)
}

func durationToString(value interface{}, options *Options) (interface{}, error) {
	return value.(time.Duration).String(), nil
}

// durationToTime reinterprets total seconds as seconds-since-epoch; the
// same caveat as timeToDuration applies.
func durationToTime(value interface{}, options *Options) (interface{}, error) {
	return time.Unix(0, value.(time.Duration).Nanoseconds()).UTC(), nil
}

func durationToDuration(value interface{}, options *Options) (interface{}, error) {
	return value.(time.Duration), nil
}
