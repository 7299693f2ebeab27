package datefmt

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSplitLiterals(t *testing.T) {
	tests := []struct {
		pattern  string
		segments []segment
	}{
		{"", []segment{{"", false}}},
		{"M/d/yy", []segment{{"M/d/yy", false}}},
		{"h 'o''clock'", []segment{{"h ", false}, {"o'clock", true}}},
		{"'at' h", []segment{{"at", true}, {" h", false}}},
		{"hh''mm", []segment{{"hh", false}, {"'", true}, {"mm", false}}},
		{"''", []segment{{"'", true}}},
		{"'''", []segment{{"'", true}}},
		{"'''a'''", []segment{{"'", true}, {"a'", true}}},
		{"''''", []segment{{"'", true}, {"'", true}}},
		{"h 'o clock", []segment{{"h ", false}, {"o clock", true}}},
		{"d 'de' MMMM 'de' yyyy", []segment{{"d ", false}, {"de", true}, {" MMMM ", false}, {"de", true}, {" yyyy", false}}},
		{"'le' d MMMM yyyy k'h'mm", []segment{{"le", true}, {" d MMMM yyyy k", false}, {"h", true}, {"mm", false}}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			test.T(t, splitLiterals(tt.pattern), tt.segments)
		})
	}
}

func TestNormalizeRuns(t *testing.T) {
	tests := []struct {
		s        string
		expected string
	}{
		{"", ""},
		{"M/d/yy", "M/d/yy"},
		{"yyyyy", "yyy"},
		{"yyyy", "yyy"},
		{"yyy", "yyy"},
		{"MMMMMM", "MMMM"},
		{"MMM", "MMM"},
		{"ddd", "dd"},
		{"EEEEEEE", "EEEE"},
		{"aaa", "a"},
		{"kkk:mmm", "kk:mm"},
		{"hhhh+3", "hh+3"},
		{"QQQQ zzz", "QQQQ zzz"},
		{"yyyy-MMMMM-ddd", "yyy-MMMM-dd"},
		{"été", "été"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.T(t, normalizeRuns(tt.s), tt.expected)
		})
	}
}
