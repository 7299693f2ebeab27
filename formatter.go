package datefmt

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Option configures a Formatter or Printer.
type Option func(*Formatter)

// WithClock sets the clock that supplies the current instant when no moment is given.
func WithClock(clock clockwork.Clock) Option {
	return func(f *Formatter) {
		f.clock = clock
	}
}

// WithLocation converts times and the current instant to loc before formatting. By default a time is formatted
// in its own location.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		f.location = loc
	}
}

// Formatter formats moments according to a pattern and a locale. The locale is fixed at construction, the pattern
// can be replaced by ApplyPattern. ApplyPattern must not be called concurrently with formatting.
type Formatter struct {
	locale   Locale
	pattern  string
	clock    clockwork.Clock
	location *time.Location
}

// NewFormatter returns a formatter for pattern and locale. An unsupported locale is replaced by en_US and an empty
// pattern by the default pattern of the locale.
func NewFormatter(pattern, locale string, opts ...Option) *Formatter {
	f := &Formatter{
		locale: GetLocale(locale),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.ApplyPattern(pattern)
	return f
}

// ApplyPattern replaces the pattern for all subsequent calls, an empty pattern selects the default of the locale.
func (f *Formatter) ApplyPattern(pattern string) {
	if pattern == "" {
		pattern = f.locale.DefaultPattern
	}
	f.pattern = pattern
}

// Pattern returns the active pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

func (f *Formatter) Locale() string {
	return f.locale.Name
}

func (f *Formatter) now() Moment {
	return f.momentOf(f.clock.Now())
}

func (f *Formatter) momentOf(t time.Time) Moment {
	if f.location != nil {
		t = t.In(f.location)
	}
	return MomentOf(t)
}

// Format formats m.
func (f *Formatter) Format(m Moment) string {
	return string(formatPattern(nil, f.pattern, f.locale, m))
}

// FormatTime formats the wall clock of t. The zero time formats the current instant.
func (f *Formatter) FormatTime(t time.Time) string {
	return f.Format(f.resolve(t))
}

// FormatString formats a date in the form YYYY-MM-DD[THH:MM[:SS[.sss]][Z|±HH:MM]]. Unparseable parts are taken
// as zero and the empty string formats the current instant. Seconds and zone offsets are ignored.
func (f *Formatter) FormatString(s string) string {
	return f.Format(f.resolve(s))
}

// FormatNow formats the current instant of the formatter's clock.
func (f *Formatter) FormatNow() string {
	return f.Format(f.now())
}

// FormatAny formats a Moment, time.Time, ISO-like string or []byte, or a pointer to one of them. Nil and values
// of any other type format the current instant.
func (f *Formatter) FormatAny(v any) string {
	return f.Format(f.resolve(v))
}

func (f *Formatter) resolve(v any) Moment {
	switch m := v.(type) {
	case Moment:
		return m
	case *Moment:
		if m != nil {
			return *m
		}
	case time.Time:
		if !m.IsZero() {
			return f.momentOf(m)
		}
	case *time.Time:
		if m != nil {
			return f.resolve(*m)
		}
	case string:
		if m != "" {
			return looseMoment(m)
		}
	case *string:
		if m != nil {
			return f.resolve(*m)
		}
	case []byte:
		return f.resolve(string(m))
	}
	return f.now()
}

// formatPattern appends the formatted moment to b. Quoted text is copied, the rest is normalized and substituted.
func formatPattern(b []byte, pattern string, locale Locale, m Moment) []byte {
	f := newFields(m)
	for _, seg := range splitLiterals(pattern) {
		if seg.literal {
			b = append(b, seg.text...)
		} else {
			b = substitute(b, normalizeRuns(seg.text), locale, f)
		}
	}
	return b
}
