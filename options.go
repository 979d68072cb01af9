package castly

import (
	"github.com/viant/castly/format"
	ftime "github.com/viant/castly/format/time"
)

// DefaultTolerance is the absolute tolerance applied by the loss policy
// when no explicit tolerance option is supplied.
const DefaultTolerance = 1e-6

// Options control loss detection, rounding and rendering for a single
// conversion. Options are pure per-call values with no shared state.
type Options struct {
	// Force accepts any narrowing result, bypassing the tolerance gate.
	Force bool
	// Round snaps candidates for integer targets to the nearest integer
	// unconditionally instead of only when already within tolerance.
	Round bool
	// Tolerance is the absolute loss detection threshold.
	Tolerance float64
	// TimeLayout overrides datetime rendering and string-sourced parsing.
	TimeLayout string
	// Format names a structured rendering, e.g. "Decimal" for floats.
	Format string
	// Language localizes structured rendering.
	Language string
}

// Option mutates conversion options.
type Option func(o *Options)

func newOptions(opts []Option) *Options {
	ret := &Options{Tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithForce bypasses the loss policy tolerance check.
func WithForce() Option {
	return func(o *Options) {
		o.Force = true
	}
}

// WithRound selects the snap-to-nearest-integer mode for integer targets.
func WithRound(round bool) Option {
	return func(o *Options) {
		o.Round = round
	}
}

// WithTolerance sets the absolute tolerance for loss detection.
func WithTolerance(ftol float64) Option {
	return func(o *Options) {
		o.Tolerance = ftol
	}
}

// WithTimeLayout sets a Go reference layout for datetime parsing and rendering.
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		o.TimeLayout = layout
	}
}

// WithDateFormat sets an ISO style date format pattern, translated to a Go
// reference layout.
func WithDateFormat(dateFormat string) Option {
	return func(o *Options) {
		o.TimeLayout = ftime.DateFormatToTimeLayout(dateFormat)
	}
}

// WithFormat selects a named structured rendering for string targets.
func WithFormat(name string) Option {
	return func(o *Options) {
		o.Format = name
	}
}

// WithLanguage localizes structured rendering.
func WithLanguage(lang string) Option {
	return func(o *Options) {
		o.Language = lang
	}
}

// WithFormatTag applies a parsed conversion spec tag onto options.
func WithFormatTag(tag *format.Tag) Option {
	return func(o *Options) {
		if tag == nil {
			return
		}
		if tag.TimeLayout != "" {
			o.TimeLayout = tag.TimeLayout
		}
		if tag.Format != "" {
			o.Format = tag.Format
		}
		if tag.Language != "" {
			o.Language = tag.Language
		}
		if tag.Tolerance > 0 {
			o.Tolerance = tag.Tolerance
		}
		o.Round = o.Round || tag.Round
		o.Force = o.Force || tag.Force
	}
}

// optionsKey is the comparable normal form of Options used as part of the
// memoization key.
type optionsKey struct {
	force      bool
	round      bool
	tolerance  float64
	timeLayout string
	format     string
	language   string
}

func (o *Options) key() optionsKey {
	return optionsKey{
		force:      o.Force,
		round:      o.Round,
		tolerance:  o.Tolerance,
		timeLayout: o.TimeLayout,
		format:     o.Format,
		language:   o.Language,
	}
}
