package datefmt

//go:generate go run gen_locales.go

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

const logModule = "datefmt"

// Default patterns, the month-first one is used by the primary locale group.
const (
	DefaultPatternMonthFirst = "M/d/yy"
	DefaultPatternDayFirst   = "d/M/yy"
)

// PrimaryLocale is used whenever a locale name is not supported.
const PrimaryLocale = "en_US"

type CalendarSymbol struct {
	Wide        string
	Abbreviated string
}

type Locale struct {
	Name            string
	DefaultPattern  string
	MonthSymbol     [12]CalendarSymbol
	DaySymbol       [7]CalendarSymbol // index 0 is Sunday
	DayPeriodSymbol [2]string
}

// Tag returns the language tag of the locale, eg. fr-CA for fr_CA.
func (l Locale) Tag() language.Tag {
	return language.Make(strings.ReplaceAll(l.Name, "_", "-"))
}

// IsSupported reports whether name is one of the supported locale names. The check is case-sensitive.
func IsSupported(name string) bool {
	_, ok := locales[name]
	return ok
}

// SupportedLocales returns the sorted names of all supported locales.
func SupportedLocales() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToLocaleName converts a language tag into a locale name such as en_US.
func ToLocaleName(tag language.Tag) string {
	if tag == language.Und || tag.IsRoot() {
		return ""
	}
	return strings.ReplaceAll(tag.String(), "-", "_")
}

// GetLocale returns the locale tables for name, or those of the primary locale if name is not supported.
func GetLocale(name string) Locale {
	d, ok := locales[name]
	if !ok {
		if name != "" {
			log.WithFields(log.Fields{"module": logModule, "locale": name}).Debug("unsupported locale, using " + PrimaryLocale)
		}
		d = locales[PrimaryLocale]
	}
	return d
}

func abbreviate(s string) string {
	n := 0
	for i := range s {
		if n == 3 {
			return s[:i]
		}
		n++
	}
	return s
}
