package datefmt

import (
	"strconv"

	log "github.com/sirupsen/logrus"
	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// maxHourAdjustment is the largest magnitude of an h+N or k-N adjustment, larger values are clamped.
const maxHourAdjustment = 23

// fields are the values of a moment as used by the pattern letters. They are derived for every format call.
type fields struct {
	year    int
	month   int // 1-12
	day     int
	weekday int // 0 is Sunday
	hour24  int
	hour12  int // 1-12
	minute  int
	pm      bool
}

func newFields(m Moment) fields {
	t := m.Time() // normalizes out-of-range values
	f := fields{
		year:    t.Year(),
		month:   int(t.Month()),
		day:     t.Day(),
		weekday: int(t.Weekday()),
		hour24:  t.Hour(),
		minute:  t.Minute(),
		pm:      11 < t.Hour(),
	}
	f.hour12 = f.hour24 % 12
	if f.hour12 == 0 {
		f.hour12 = 12
	}
	return f
}

func appendNumber(b []byte, i int, padded bool) []byte {
	if i < 0 {
		b = append(b, '-')
		i = -i
	}
	if padded && i < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(i), 10)
}

func appendYear(b []byte, year, n int) []byte {
	switch n {
	case 1:
		return strconv.AppendInt(b, int64(year), 10)
	case 2:
		if year < 0 {
			year = -year
		}
		return appendNumber(b, year%100, true)
	}
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	for div := 1000; 1 < div && year < div; div /= 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(year), 10)
}

func symbolName(symbol CalendarSymbol, n int) string {
	if n == 4 {
		return symbol.Wide
	} else if symbol.Abbreviated == "" {
		return abbreviate(symbol.Wide)
	}
	return symbol.Abbreviated
}

// hourAdjustment parses the +N or -N suffix of an hour field. It returns the signed delta and the number of bytes
// consumed, which is zero if there is no adjustment.
func hourAdjustment(s string) (int, int) {
	if len(s) < 2 || s[0] != '+' && s[0] != '-' {
		return 0, 0
	}
	end := 3
	if len(s) < end {
		end = len(s)
	}
	v, n := parseStrconv.ParseUint([]byte(s[1:end]))
	if n == 0 {
		return 0, 0
	}
	delta := int(v)
	if maxHourAdjustment < delta {
		log.WithFields(log.Fields{"module": logModule, "adjustment": s[:1+n]}).Debug("hour adjustment clamped")
		delta = maxHourAdjustment
	}
	if s[0] == '-' {
		delta = -delta
	}
	return delta, 1 + n
}

// adjustHour shifts an hour by delta. The result of hour24 is in the band 0-24 and of hour12 in 1-12.
func adjustHour(hour, delta int, twelve bool) int {
	hour += delta
	if 24 < hour {
		hour -= 24
	} else if hour < 0 {
		hour += 24
	}
	if twelve {
		if 12 < hour {
			hour -= 12
		}
		if hour == 0 {
			hour = 12
		}
	}
	return hour
}

// substitute replaces the pattern letters of a normalized interpretable segment by the fields of the moment in a
// single pass. Field values are never rescanned, so names containing pattern letters are written as is.
func substitute(b []byte, s string, locale Locale, f fields) []byte {
	for i := 0; i < len(s); {
		c := s[i]
		j := i + 1
		for j < len(s) && s[j] == c {
			j++
		}
		n := j - i

		switch c {
		case 'y':
			b = appendYear(b, f.year, n)
		case 'd':
			b = appendNumber(b, f.day, n == 2)
		case 'k', 'h':
			twelve := c == 'h'
			hour := f.hour24
			if twelve {
				hour = f.hour12
			}
			if delta, m := hourAdjustment(s[j:]); m != 0 {
				hour = adjustHour(hour, delta, twelve)
				j += m
			}
			b = appendNumber(b, hour, n == 2)
		case 'm':
			b = appendNumber(b, f.minute, n == 2)
		case 'a':
			if f.pm {
				b = append(b, locale.DayPeriodSymbol[1]...)
			} else {
				b = append(b, locale.DayPeriodSymbol[0]...)
			}
		case 'M':
			if n < 3 {
				b = appendNumber(b, f.month, n == 2)
			} else {
				b = append(b, symbolName(locale.MonthSymbol[f.month-1], n)...)
			}
		case 'E':
			b = append(b, symbolName(locale.DaySymbol[f.weekday], n)...)
		default:
			b = append(b, s[i:j]...)
		}
		i = j
	}
	return b
}
