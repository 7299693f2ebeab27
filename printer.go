package datefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Languager is implemented by the fmt.State of a message.Printer.
type Languager interface {
	Language() language.Tag
}

// Printer is a message.Printer that formats dates in the locale of its language tag.
type Printer struct {
	*message.Printer

	LanguageTag language.Tag
	Location    *time.Location

	options []Option
}

func NewPrinter(t language.Tag, loc *time.Location, opts ...Option) *Printer {
	return &Printer{
		Printer: message.NewPrinter(t),

		LanguageTag: t,
		Location:    loc,
		options:     opts,
	}
}

// Formatter returns a formatter for pattern in the locale and location of the printer.
func (p *Printer) Formatter(pattern string) *Formatter {
	opts := []Option{}
	if p.Location != nil {
		opts = append(opts, WithLocation(p.Location))
	}
	opts = append(opts, p.options...)
	return NewFormatter(pattern, ToLocaleName(p.LanguageTag), opts...)
}

// T formats v, which is anything accepted by Formatter.FormatAny, according to pattern. An empty pattern selects
// the default pattern of the locale.
func (p *Printer) T(v any, pattern string) string {
	m := p.Formatter(pattern).resolve(v)
	return p.Sprintf("%v", PatternFormatter{m, pattern})
}

// PatternFormatter formats a moment with a pattern. When printed by a message.Printer it uses the locale of the
// printer's language, otherwise en_US.
type PatternFormatter struct {
	Moment
	Pattern string
}

func (f PatternFormatter) Format(state fmt.State, verb rune) {
	localeName := PrimaryLocale
	if languager, ok := state.(Languager); ok {
		localeName = ToLocaleName(languager.Language())
	}
	locale := GetLocale(localeName)

	pattern := f.Pattern
	if pattern == "" {
		pattern = locale.DefaultPattern
	}
	state.Write(formatPattern([]byte{}, pattern, locale, f.Moment))
}
