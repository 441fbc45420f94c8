// Package geoproj projects geographic observer locations onto the
// Earth-fixed equatorial plane.
package geoproj

import (
	"math"

	"github.com/orbitalkit/labpoint/pkg/angle"
)

// poleEps bounds cos(latitude) below which the equatorial projection
// collapses to the origin and its polar angle stops being defined.
const poleEps = 1e-12

// Location is a point on the Earth. Longitude is east-positive and
// latitude north-positive, both in degrees. A spherical Earth is
// assumed; there is no ellipsoidal correction.
type Location struct {
	LonDeg float64
	LatDeg float64
}

// Angle returns the polar angle in [0, 2π) of the location's radial
// unit vector projected onto the equatorial plane, measured from the
// Earth-fixed x axis (the zero meridian).
//
// Latitude scales both projected components by the same positive
// cos(lat) and cancels in atan2, so the result depends only on
// longitude. The exception is the poles, where the projection is the
// zero vector and atan2(0, 0) is platform-defined; they are pinned to
// 0 by convention.
func Angle(loc Location) float64 {
	lon := loc.LonDeg * math.Pi / 180
	lat := loc.LatDeg * math.Pi / 180

	coslat := math.Cos(lat)
	if math.Abs(coslat) < poleEps {
		return 0
	}

	x := coslat * math.Cos(lon)
	y := coslat * math.Sin(lon)

	a := math.Atan2(y, x) // (-pi, pi]
	if a < 0 {
		a += 2 * math.Pi
	}
	return angle.Norm(a)
}
