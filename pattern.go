package datefmt

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

type segment struct {
	text    string
	literal bool
}

// splitLiterals splits a pattern into interpretable and quoted literal segments. A doubled quote is an
// apostrophe, both inside and outside a quoted region. An unterminated quote extends to the end of the pattern.
func splitLiterals(pattern string) []segment {
	if strings.IndexByte(pattern, '\'') == -1 {
		return []segment{{text: pattern}}
	}

	segments := []segment{}
	sb := strings.Builder{}
	literal := false
	flush := func() {
		if sb.Len() == 0 {
			return
		}
		segments = append(segments, segment{sb.String(), literal})
		sb.Reset()
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\'' {
			sb.WriteByte(pattern[i])
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '\'' {
			if literal {
				sb.WriteByte('\'')
			} else {
				flush()
				segments = append(segments, segment{"'", true})
			}
			i++
			continue
		}
		flush()
		literal = !literal
	}
	if literal {
		log.WithFields(log.Fields{"module": logModule, "pattern": pattern}).Debug("unterminated quote in pattern")
	}
	flush()
	return segments
}

// maxRun is the longest run of each pattern letter that has a distinct meaning.
var maxRun = map[byte]int{
	'y': 3,
	'M': 4,
	'd': 2,
	'E': 4,
	'a': 1,
	'k': 2,
	'h': 2,
	'm': 2,
}

// normalizeRuns collapses runs of pattern letters that are longer than their longest form.
func normalizeRuns(s string) string {
	var sb *strings.Builder
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if n, ok := maxRun[s[i]]; ok && n < j-i {
			if sb == nil {
				sb = &strings.Builder{}
				sb.Grow(len(s))
				sb.WriteString(s[:i])
			}
			sb.WriteString(s[i : i+n])
		} else if sb != nil {
			sb.WriteString(s[i:j])
		}
		i = j
	}
	if sb == nil {
		return s
	}
	return sb.String()
}
