// Package civiltime parses civil timestamp strings into their calendar
// fields. Values are interpreted as UT1 as-is; no time zone or time
// scale conversion is ever applied.
package civiltime

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrParse reports a timestamp string that matches no accepted layout.
var ErrParse = errors.New("civiltime: unparseable timestamp")

// layouts are tried in order; the first match wins. The fractional
// layouts also accept inputs without a fraction.
var layouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
}

// Stamp is a civil date and time of day. Second carries its fraction
// at microsecond resolution. A Stamp is immutable once parsed.
type Stamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// Parse reads a timestamp in ISO 8601 form, with or without fractional
// seconds, with either a "T" or a space separating date and time. A
// trailing "Z" is stripped: the fields are already UT1, so the marker
// carries no conversion.
func Parse(s string) (Stamp, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSuffix(trimmed, "Z")
	for _, layout := range layouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return Stamp{
			Year:   t.Year(),
			Month:  int(t.Month()),
			Day:    t.Day(),
			Hour:   t.Hour(),
			Minute: t.Minute(),
			Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
		}, nil
	}
	return Stamp{}, fmt.Errorf("%w: %q", ErrParse, s)
}

// DayFraction returns the elapsed fraction of the civil day in [0, 1),
// computed from the clock fields. The Julian day boundary sits at noon,
// twelve hours off the civil boundary, so this must never be re-derived
// from a Julian Date's fractional part.
func (s Stamp) DayFraction() float64 {
	return (float64(s.Hour) + float64(s.Minute)/60.0 + s.Second/3600.0) / 24.0
}

// String formats the stamp in the primary accepted layout, omitting a
// zero fraction.
func (s Stamp) String() string {
	whole := math.Floor(s.Second)
	micro := int(math.Round((s.Second - whole) * 1e6))
	sec := int(whole)
	if micro == 1000000 {
		micro = 0
		sec++
	}
	if micro == 0 {
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
			s.Year, s.Month, s.Day, s.Hour, s.Minute, sec)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06d",
		s.Year, s.Month, s.Day, s.Hour, s.Minute, sec, micro)
}
