// Package timescale converts civil timestamps between time scales.
//
// The angle pipeline consumes UT1 only; callers holding UTC, TT, or
// TDB timestamps resolve them here first. Ephemeris lookups run on
// TDB. Conversions route through TT and apply tabulated offsets: leap
// seconds for UTC, interpolated DUT1 for UT1, and the periodic
// relativistic term for TDB.
package timescale

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/orbitalkit/labpoint/pkg/civiltime"
	"github.com/orbitalkit/labpoint/pkg/julian"
)

// Scale labels the time scale a civil timestamp is expressed in.
type Scale int

const (
	UT1 Scale = iota
	UTC
	TAI
	TT
	TDB
)

// ErrUnknownScale reports a scale name with no known Scale.
var ErrUnknownScale = errors.New("timescale: unknown scale")

var scaleNames = [...]string{"UT1", "UTC", "TAI", "TT", "TDB"}

func (s Scale) String() string {
	if s < UT1 || s > TDB {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return scaleNames[s]
}

// ParseScale maps a case-insensitive scale name to its Scale.
func ParseScale(name string) (Scale, error) {
	for i, n := range scaleNames {
		if strings.EqualFold(name, n) {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

// ttMinusTAI is the fixed TT-TAI offset in seconds.
const ttMinusTAI = 32.184

// Convert re-expresses ts, labeled from, in the to scale.
func Convert(ts civiltime.Stamp, from, to Scale) civiltime.Stamp {
	if from == to {
		return ts
	}
	return fromTT(toTT(ts, from), to)
}

// ResolveToUT1 parses a timestamp labeled with a source scale and
// returns its UT1 rendering, ready for the angle pipeline.
func ResolveToUT1(value string, from Scale) (string, error) {
	ts, err := civiltime.Parse(value)
	if err != nil {
		return "", err
	}
	return Convert(ts, from, UT1).String(), nil
}

func toTT(ts civiltime.Stamp, from Scale) civiltime.Stamp {
	switch from {
	case TAI:
		return shift(ts, ttMinusTAI)
	case UTC:
		return shift(ts, taiMinusUTC(ts)+ttMinusTAI)
	case UT1:
		utc := shift(ts, -dut1(ts))
		return shift(utc, taiMinusUTC(utc)+ttMinusTAI)
	case TDB:
		// The periodic term changes by nanoseconds over its own
		// magnitude, so evaluating it at the TDB stamp is fine.
		return shift(ts, -tdbMinusTT(ts))
	default:
		return ts
	}
}

func fromTT(tt civiltime.Stamp, to Scale) civiltime.Stamp {
	switch to {
	case TAI:
		return shift(tt, -ttMinusTAI)
	case UTC:
		return shift(tt, -ttMinusTAI-taiMinusUTC(tt))
	case UT1:
		utc := shift(tt, -ttMinusTAI-taiMinusUTC(tt))
		return shift(utc, dut1(utc))
	case TDB:
		return shift(tt, tdbMinusTT(tt))
	default:
		return tt
	}
}

// tdbMinusTT returns TDB-TT in seconds: the dominant annual
// relativistic term, 1.657 ms at peak, driven by the Earth's mean
// anomaly. Higher-order terms are tens of microseconds and ignored.
func tdbMinusTT(tt civiltime.Stamp) float64 {
	d := julian.SinceJ2000(julian.Date(tt))
	g := (357.53 + 0.98560028*d) * math.Pi / 180
	return 0.001657 * math.Sin(g)
}

// toTime renders a stamp on the time.Time scaffolding so offsets can
// be applied with calendar carries handled for us. The zone is a
// placeholder; stamps carry no zone.
func toTime(ts civiltime.Stamp) time.Time {
	sec := math.Floor(ts.Second)
	ns := math.Round((ts.Second - sec) * 1e9)
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, int(sec), int(ns), time.UTC)
}

func fromTime(t time.Time) civiltime.Stamp {
	return civiltime.Stamp{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// shift moves a stamp by a number of seconds, carrying through
// calendar boundaries.
func shift(ts civiltime.Stamp, seconds float64) civiltime.Stamp {
	d := time.Duration(math.Round(seconds * float64(time.Second)))
	return fromTime(toTime(ts).Add(d))
}
