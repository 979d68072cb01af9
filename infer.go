package castly

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	ftime "github.com/viant/castly/format/time"
)

// timeLayouts is the bounded set of datetime encodings the inference
// cascade recognizes, tried in order. All are anchored to UTC when the text
// carries no offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// inferences memoizes the layout-free cascade: identical text always
// infers identically, so entries are never invalidated.
var inferences sync.Map

type inference struct {
	kind  Kind
	value interface{}
}

// Infer attempts the fixed literal cascade over free text: integer, float,
// complex, duration, datetime, boolean; anything else stays text. Numeric
// and temporal literals are tried before the permissive boolean and text
// fallbacks so "10" infers as an integer rather than text. Callers that
// want "1" to mean boolean true must convert explicitly.
func Infer(text string) (Kind, interface{}) {
	if cached, ok := inferences.Load(text); ok {
		hit := cached.(inference)
		return hit.kind, hit.value
	}
	kind, value := infer(text)
	inferences.Store(text, inference{kind: kind, value: value})
	return kind, value
}

// inferValue runs the cascade with per-call options applied: an explicit
// time layout is tried ahead of the standard encodings.
func inferValue(text string, options *Options) (Kind, interface{}) {
	if options != nil && options.TimeLayout != "" {
		if t, err := ftime.Parse(options.TimeLayout, text); err == nil {
			return KindTime, t.UTC()
		}
	}
	return Infer(text)
}

func infer(text string) (Kind, interface{}) {
	trimmed := strings.TrimSpace(text)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return KindInt, i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return KindFloat, f
	}
	if c, ok := parseComplex(trimmed); ok {
		return KindComplex, c
	}
	if d, ok := parseDuration(trimmed); ok {
		return KindDuration, d
	}
	if t, ok := parseTime(trimmed); ok {
		return KindTime, t
	}
	switch strings.ToLower(trimmed) {
	case "t", "true":
		return KindBool, true
	case "f", "false":
		return KindBool, false
	}
	return KindString, text
}

// parseComplex accepts both Go "a+bi" and Python "a+bj" spellings, with
// optional surrounding parentheses.
func parseComplex(text string) (complex128, bool) {
	s := text
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "j") || strings.HasSuffix(s, "J") {
		s = s[:len(s)-1] + "i"
	}
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, false
	}
	return c, true
}

// clockDuration matches the clock duration form "[-][N day[s], ]H:MM:SS"
// with an optional fractional seconds part.
var clockDuration = regexp.MustCompile(`^(-?)(?:(\d+) days?, )?(\d+):(\d{1,2}):(\d{1,2}(?:\.\d+)?)$`)

// parseDuration accepts Go duration syntax ("1h2m3s") and the clock form
// ("1 day, 0:00:10").
func parseDuration(text string) (time.Duration, bool) {
	if d, err := time.ParseDuration(text); err == nil {
		return d, true
	}
	groups := clockDuration.FindStringSubmatch(text)
	if groups == nil {
		return 0, false
	}
	days := int64(0)
	if groups[2] != "" {
		days, _ = strconv.ParseInt(groups[2], 10, 64)
	}
	hours, _ := strconv.ParseInt(groups[3], 10, 64)
	minutes, _ := strconv.ParseInt(groups[4], 10, 64)
	if minutes > 59 {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(groups[5], 64)
	if err != nil || seconds >= 60 {
		return 0, false
	}
	d := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(math.Round(seconds*float64(time.Second)))
	if groups[1] == "-" {
		d = -d
	}
	return d, true
}

func parseTime(text string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
