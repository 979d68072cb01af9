// Package format parses per-field conversion specs from struct tags or
// inline key=value text and renders values according to them.
package format

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	ftime "github.com/viant/castly/format/time"
	"github.com/viant/parsly"
)

const (
	TagName = "cast"
)

// Tag holds a parsed conversion spec. DateFormat keeps the ISO pattern as
// written; TimeLayout is its Go layout translation, or a layout given
// directly.
type Tag struct {
	Name string

	DateFormat string
	TimeLayout string
	Format     string
	Language   string

	Round     bool
	Force     bool
	Tolerance float64

	Ignore bool
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "dateformat", "isodateformat":
		t.DateFormat = value
		t.TimeLayout = ftime.DateFormatToTimeLayout(value)
	case "timelayout", "datelayout", "rfc3339":
		t.TimeLayout = value
	case "format":
		t.Format = value
	case "lang", "language":
		t.Language = value
	case "round":
		t.Round = value == "" || value == "true"
	case "force":
		t.Force = value == "" || value == "true"
	case "ftol", "tolerance":
		ftol, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid tolerance %q: %w", value, err)
		}
		t.Tolerance = ftol
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		if strictMode {
			return fmt.Errorf("unknown key %q", key)
		}
	}
	return nil
}

// Parse extracts a conversion spec from the supplied struct tag, looking at
// the "cast" tag name and then any extra names supplied.
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}
	names = append([]string{TagName}, names...)
	for i, name := range names {
		encoded := tag.Get(name)
		if encoded == "" {
			continue
		}
		if encoded == "-" {
			ret.Ignore = true
			continue
		}
		if err := ret.parsePairs(encoded, i == 0); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// ParseSpec parses an inline comma separated key=value spec, with {...}
// blocks protecting values that contain commas.
func ParseSpec(spec string) (*Tag, error) {
	ret := &Tag{}
	if err := ret.parsePairs(spec, true); err != nil {
		return nil, err
	}
	return ret, nil
}

func (t *Tag) parsePairs(encoded string, strictMode bool) error {
	cursor := parsly.NewCursor("", []byte(encoded), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" && value == "" {
			break
		}
		if key == "" { //bare flag, e.g. "round" or "force"
			key, value = value, ""
		}
		if err := t.update(key, value, strictMode); err != nil {
			return err
		}
	}
	return nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(pairBlockMatcher, pairTerminatorMatcher)
	switch match.Code {
	case pairBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		match = cursor.MatchAny(pairTerminatorMatcher)
	case pairTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}
