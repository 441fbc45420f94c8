// Package julian converts civil timestamps into Julian Dates, the
// continuous day count astronomers use as a time coordinate.
package julian

import (
	"math"

	"github.com/orbitalkit/labpoint/pkg/civiltime"
)

// J2000 is the Julian Date of the J2000.0 epoch, 2000-01-01T12:00:00.
const J2000 = 2451545.0

// Date returns the Julian Date of ts, fractional time of day included.
//
// This is the Meeus algorithm (Astronomical Algorithms, ch. 7).
// January and February are treated as months 13 and 14 of the previous
// year so the century and leap-year corrections line up. All integer
// division floors toward negative infinity, which keeps the formula
// valid should negative years ever be fed in.
//
// The Gregorian correction is applied unconditionally; dates before
// the 1582-10-15 calendar switch fall outside the supported range.
func Date(ts civiltime.Stamp) float64 {
	y := float64(ts.Year)
	m := float64(ts.Month)
	if ts.Month <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(ts.Day) + b - 1524.5 +
		ts.DayFraction()
}

// SinceJ2000 returns the day count D from the J2000.0 epoch to jd.
func SinceJ2000(jd float64) float64 {
	return jd - J2000
}
