// Package pointing composes the Earth Rotation Angle with an
// observer's equatorial projection angle, giving the direction the
// laboratory's reference points relative to the inertial x axis at a
// UT1 instant. It is the public entry point of the angle pipeline.
package pointing

import (
	"fmt"

	"github.com/orbitalkit/labpoint/pkg/angle"
	"github.com/orbitalkit/labpoint/pkg/civiltime"
	"github.com/orbitalkit/labpoint/pkg/era"
	"github.com/orbitalkit/labpoint/pkg/geoproj"
)

// Result holds the composed orientation along with the two angles it
// was built from. All radian values are normalized to [0, 2π).
// TotalDeg is exactly Total scaled to degrees; it is never
// re-normalized on its own.
type Result struct {
	ERA        float64 `json:"era_rad"`
	Projection float64 `json:"projection_rad"`
	Total      float64 `json:"total_rad"`
	TotalDeg   float64 `json:"total_deg"`
}

// Compute parses a UT1 timestamp and combines the Earth Rotation Angle
// at that instant with the projection angle of loc. The only error is
// a timestamp that cannot be parsed; it propagates from civiltime
// unchanged.
func Compute(ut1 string, loc geoproj.Location) (Result, error) {
	ts, err := civiltime.Parse(ut1)
	if err != nil {
		return Result{}, err
	}
	return FromStamp(ts, loc), nil
}

// FromStamp is Compute for an already-parsed timestamp.
func FromStamp(ts civiltime.Stamp, loc geoproj.Location) Result {
	e := era.FromStamp(ts)
	p := geoproj.Angle(loc)
	// The raw sum may graze 2π through rounding even though both
	// terms are normalized.
	total := angle.Norm(e + p)
	return Result{
		ERA:        e,
		Projection: p,
		Total:      total,
		TotalDeg:   angle.Degrees(total),
	}
}

func (r Result) String() string {
	return fmt.Sprintf("ERA %.12f rad, projection %.12f rad, total %.12f rad (%.9f deg)",
		r.ERA, r.Projection, r.Total, r.TotalDeg)
}
