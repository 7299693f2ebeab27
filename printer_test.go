package datefmt

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tdewolff/test"
	"golang.org/x/text/language"
)

func TestPrinter(t *testing.T) {
	tests := []struct {
		p       *Printer
		v       any
		pattern string
		str     string
	}{
		{en, midnight, "", "1/28/70"},
		{en, midnight, "EEEE, MMMM d, yyyy", "Wednesday, January 28, 1970"},
		{en, time.Date(2025, 1, 2, 20, 30, 0, 0, time.UTC), "M/d/yy h:mm a", "1/2/25 12:30 PM"},
		{en, "1970-01-28T13:45", "kk:mm", "13:45"},

		{fr, midnight, "", "28/1/70"},
		{fr, midnight, "EEEE d MMMM", "mercredi 28 janvier"},
		{fr, time.Date(2012, 7, 6, 11, 0, 0, 0, time.UTC), "'le' d MMMM yyyy k'h'mm", "le 6 juillet 2012 13h00"},

		{es, midnight, "", "1/28/70"},
		{es, midnight, "EEEE d 'de' MMMM", "miércoles 28 de enero"},

		{NewPrinter(language.German, nil), midnight, "", "1/28/70"},
		{NewPrinter(language.German, nil), midnight, "EEEE", "Wednesday"},
		{NewPrinter(language.BritishEnglish, nil), midnight, "", "28/1/70"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			test.T(t, tt.p.T(tt.v, tt.pattern), tt.str)
		})
	}
}

func TestPrinterNow(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC))
	p := NewPrinter(language.CanadianFrench, tzCET, WithClock(clock))
	test.T(t, p.T(nil, "d MMMM yyyy kk:mm"), "1 janvier 2025 01:30")
	test.T(t, p.Formatter("").FormatNow(), "1/1/25")
}

func TestPatternFormatter(t *testing.T) {
	test.T(t, fmt.Sprintf("%v", PatternFormatter{midnight, "MMMM"}), "January")
	test.T(t, fmt.Sprintf("on %v", PatternFormatter{midnight, ""}), "on 1/28/70")
	test.T(t, fr.Sprintf("le %v", PatternFormatter{midnight, "EEEE"}), "le mercredi")
	test.T(t, es.Sprintf("%v", PatternFormatter{midnight, "MMMM"}), "enero")
}
