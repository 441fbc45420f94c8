// Package era computes the Earth Rotation Angle for UT1 instants.
//
// The model is rotation-only: no precession, nutation, or polar motion
// corrections are applied, only the linear term of the IAU 2000/2006
// ERA polynomial.
package era

import (
	"math"

	"github.com/orbitalkit/labpoint/pkg/angle"
	"github.com/orbitalkit/labpoint/pkg/civiltime"
	"github.com/orbitalkit/labpoint/pkg/julian"
)

// IAU 2000/2006 ERA coefficients, in revolutions.
const (
	turnsAtJ2000 = 0.7790572732640
	// Excess of the rotation rate over one turn per UT1 day; the
	// sidereal day is shorter than the solar day by this fraction.
	excessTurnsPerDay = 0.00273781191135448
)

// RatePerDay is how far the ERA advances per UT1 day, modulo one turn,
// in radians.
const RatePerDay = 2 * math.Pi * excessTurnsPerDay

// FromJD returns the ERA in [0, 2π) given a UT1 Julian Date and the
// fraction of the civil day elapsed at the same instant.
//
// dayFrac must come from the civil clock fields (civiltime's
// DayFraction), never from the fractional part of jd: the Julian day
// rolls over at noon, twelve hours off the civil boundary.
func FromJD(jd, dayFrac float64) float64 {
	d := julian.SinceJ2000(jd)
	f := turnsAtJ2000 + excessTurnsPerDay*d + dayFrac
	frac := f - math.Floor(f)
	return angle.Norm(2 * math.Pi * frac)
}

// FromStamp computes the ERA directly from a civil UT1 timestamp.
func FromStamp(ts civiltime.Stamp) float64 {
	return FromJD(julian.Date(ts), ts.DayFraction())
}
