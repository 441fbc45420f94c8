package geoproj

import (
	"math"
	"testing"

	"github.com/orbitalkit/labpoint/pkg/angle"
)

func TestAngle(t *testing.T) {
	table := []struct {
		name string
		loc  Location
		want float64
	}{
		{"prime meridian", Location{0, 0}, 0},
		{"east 90", Location{90, 0}, math.Pi / 2},
		{"antimeridian", Location{180, 0}, math.Pi},
		{"west 90", Location{-90, 0}, 3 * math.Pi / 2},
		{"east 270", Location{270, 0}, 3 * math.Pi / 2},
		{"east 45 up north", Location{45, 51.4778}, math.Pi / 4},
		{"wrapped longitude", Location{360 + 30, 0}, math.Pi / 6},
	}
	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			got := Angle(test.loc)
			if math.Abs(got-test.want) > 1e-9 {
				t.Errorf("Angle(%+v) = %v, want %v", test.loc, got, test.want)
			}
		})
	}
}

func TestAnglePrimeMeridianExact(t *testing.T) {
	if got := Angle(Location{0, 0}); got != 0 {
		t.Errorf("Angle(0, 0) = %v, want exactly 0", got)
	}
}

// Latitude scales both projected components equally, so it must cancel.
func TestAngleLatitudeIndependent(t *testing.T) {
	for _, lon := range []float64{-179.9, -90, -37.5, 0, 11.25, 90, 116.3912757, 179.9} {
		low := Angle(Location{lon, 10})
		high := Angle(Location{lon, 80})
		flat := Angle(Location{lon, 0})
		if math.Abs(low-high) > 1e-12 || math.Abs(low-flat) > 1e-12 {
			t.Errorf("lon %v: angles differ across latitudes: %v, %v, %v", lon, flat, low, high)
		}
	}
}

// At the poles the projection is degenerate; 0 by convention rather
// than whatever atan2(0, 0) happens to return.
func TestAnglePoles(t *testing.T) {
	for _, loc := range []Location{{0, 90}, {123.4, 90}, {0, -90}, {-77, -90}} {
		if got := Angle(loc); got != 0 {
			t.Errorf("Angle(%+v) = %v, want 0", loc, got)
		}
	}
}

func TestAngleRange(t *testing.T) {
	for lon := -720.0; lon <= 720.0; lon += 7.3 {
		for _, lat := range []float64{-89.9, -45, 0, 30, 89.9} {
			got := Angle(Location{lon, lat})
			if got < 0 || got >= angle.Tau {
				t.Errorf("Angle(%v, %v) = %v outside [0, 2pi)", lon, lat, got)
			}
		}
	}
}
