package datefmt

import (
	"bytes"
	"math"
	"time"

	"github.com/pkg/errors"
	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidMoment is the cause of all errors returned by ParseMoment.
var ErrInvalidMoment = errors.New("invalid moment")

// Moment is a snapshot of a wall clock date and time with minute precision. The weekday is derived.
type Moment struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// NewMoment returns a moment, values outside their usual ranges are normalized as by time.Date.
func NewMoment(year int, month time.Month, day, hour, minute int) Moment {
	return MomentOf(time.Date(year, month, day, hour, minute, 0, 0, time.UTC))
}

// MomentOf takes the wall clock fields of t in its own location.
func MomentOf(t time.Time) Moment {
	return Moment{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Time returns the moment as a time in UTC.
func (m Moment) Time() time.Time {
	return time.Date(m.Year, m.Month, m.Day, m.Hour, m.Minute, 0, 0, time.UTC)
}

func (m Moment) Weekday() time.Weekday {
	return m.Time().Weekday()
}

func (m Moment) String() string {
	return m.Time().Format("2006-01-02T15:04")
}

// looseMoment parses YYYY-MM-DD[THH:MM[:SS[.sss]][Z|±HH:MM]] without ever failing. Parts that are absent or
// not a number take their default: year 0, month and day 1, hour and minute 0. Seconds and anything after them
// are dropped.
func looseMoment(s string) Moment {
	b := []byte(s)
	var timePart []byte
	if i := bytes.IndexAny(b, "T "); i != -1 {
		b, timePart = b[:i], b[i+1:]
	}
	if i := bytes.IndexAny(timePart, ".Z+-"); i != -1 {
		timePart = timePart[:i]
	}

	date := bytes.Split(b, []byte("-"))
	clock := bytes.Split(timePart, []byte(":"))
	return NewMoment(
		looseInt(date, 0, 0),
		time.Month(looseInt(date, 1, 1)),
		looseInt(date, 2, 1),
		looseInt(clock, 0, 0),
		looseInt(clock, 1, 0),
	)
}

func looseInt(fields [][]byte, i, def int) int {
	if len(fields) <= i {
		return def
	}
	b := bytes.TrimSpace(fields[i])
	v, n := parseStrconv.ParseUint(b)
	if n == 0 || n != len(b) || math.MaxInt32 < v {
		return def
	}
	return int(v)
}

// ParseMoment parses YYYY-MM-DD[(T| )HH:MM[:SS[.sss]][Z|±HH:MM]] strictly. Seconds, fractions and the zone
// offset are validated but not retained.
func ParseMoment(s string) (Moment, error) {
	b := []byte(s)

	year, n := parseStrconv.ParseUint(b)
	if n != 4 {
		return Moment{}, invalidMoment(s, "year")
	}
	b = b[n:]

	if len(b) == 0 || b[0] != '-' {
		return Moment{}, invalidMoment(s, "date separator")
	}
	b = b[1:]
	month, n := parseStrconv.ParseUint(b)
	if n != 2 || month == 0 || 12 < month {
		return Moment{}, invalidMoment(s, "month")
	}
	b = b[n:]

	if len(b) == 0 || b[0] != '-' {
		return Moment{}, invalidMoment(s, "date separator")
	}
	b = b[1:]
	day, n := parseStrconv.ParseUint(b)
	if n != 2 || day == 0 || 31 < day {
		return Moment{}, invalidMoment(s, "day")
	} else if t := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC); t.Day() != int(day) {
		return Moment{}, invalidMoment(s, "day")
	}
	b = b[n:]

	if len(b) == 0 {
		return Moment{int(year), time.Month(month), int(day), 0, 0}, nil
	} else if b[0] != 'T' && b[0] != ' ' {
		return Moment{}, invalidMoment(s, "date/time separator")
	}
	b = b[1:]

	hours, n := parseStrconv.ParseUint(b)
	if n != 2 || 23 < hours {
		return Moment{}, invalidMoment(s, "hours")
	}
	b = b[n:]

	if len(b) == 0 || b[0] != ':' {
		return Moment{}, invalidMoment(s, "time separator")
	}
	b = b[1:]
	minutes, n := parseStrconv.ParseUint(b)
	if n != 2 || 59 < minutes {
		return Moment{}, invalidMoment(s, "minutes")
	}
	b = b[n:]

	if 0 < len(b) && b[0] == ':' {
		b = b[1:]
		seconds, n := parseStrconv.ParseUint(b)
		if n != 2 || 59 < seconds {
			return Moment{}, invalidMoment(s, "seconds")
		}
		b = b[n:]

		if 0 < len(b) && b[0] == '.' {
			b = b[1:]
			if _, n = parseStrconv.ParseUint(b); n == 0 {
				return Moment{}, invalidMoment(s, "fraction")
			}
			b = b[n:]
		}
	}

	if 0 < len(b) && b[0] == 'Z' {
		b = b[1:]
	} else if 0 < len(b) && (b[0] == '+' || b[0] == '-') {
		b = b[1:]
		offsetHours, n := parseStrconv.ParseUint(b)
		if n != 2 || 23 < offsetHours {
			return Moment{}, invalidMoment(s, "zone offset")
		}
		b = b[n:]
		if len(b) == 0 || b[0] != ':' {
			return Moment{}, invalidMoment(s, "zone offset")
		}
		b = b[1:]
		offsetMinutes, n := parseStrconv.ParseUint(b)
		if n != 2 || 59 < offsetMinutes {
			return Moment{}, invalidMoment(s, "zone offset")
		}
		b = b[n:]
	}

	if len(b) != 0 {
		return Moment{}, invalidMoment(s, "trailing characters")
	}
	return Moment{int(year), time.Month(month), int(day), int(hours), int(minutes)}, nil
}

func invalidMoment(s, part string) error {
	return errors.Wrapf(ErrInvalidMoment, "%s in %q", part, s)
}
