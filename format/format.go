package format

import (
	"fmt"
	"time"

	ftime "github.com/viant/castly/format/time"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatTime renders ts with the tag time layout, defaulting to RFC3339.
func (t *Tag) FormatTime(ts time.Time) string {
	return ftime.Format(t.TimeLayout, ts)
}

// ParseTime parses value with the tag time layout.
func (t *Tag) ParseTime(value string) (time.Time, error) {
	return ftime.Parse(t.TimeLayout, value)
}

// FormatFloat renders f according to the named format, localized with the
// tag language when set.
func (t *Tag) FormatFloat(f float64) (string, error) {
	lang := language.AmericanEnglish
	if t.Language != "" {
		parsed, err := language.Parse(t.Language)
		if err != nil {
			return "", fmt.Errorf("format: invalid language %q: %w", t.Language, err)
		}
		lang = parsed
	}
	p := message.NewPrinter(lang)
	switch t.Format {
	case "Decimal":
		return p.Sprintf("%v", number.Decimal(f)), nil
	case "Percent":
		return p.Sprintf("%v", number.Percent(f)), nil
	default:
		return "", fmt.Errorf("format: %s not yet supported", t.Format)
	}
}
