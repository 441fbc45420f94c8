package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/orbitalkit/labpoint/pkg/angle"
	"github.com/orbitalkit/labpoint/pkg/civiltime"
	"github.com/orbitalkit/labpoint/pkg/ephemeris"
	"github.com/orbitalkit/labpoint/pkg/geoproj"
	"github.com/orbitalkit/labpoint/pkg/julian"
	"github.com/orbitalkit/labpoint/pkg/pointing"
	"github.com/orbitalkit/labpoint/pkg/timescale"
)

func main() {
	var (
		ut1    = flag.String("t", "", "UT1 timestamp, ISO 8601 (default: current wall clock)")
		lon    = flag.Float64("lon", 116.3912757, "longitude, east-positive degrees")
		lat    = flag.Float64("lat", 39.906217, "latitude, north-positive degrees")
		kernel = flag.String("ephemeris", "", "path to a JPL DE kernel for the velocity report")
	)
	flag.Parse()

	if *ut1 == "" {
		*ut1 = time.Now().UTC().Format("2006-01-02T15:04:05")
	}

	res, err := pointing.Compute(*ut1, geoproj.Location{LonDeg: *lon, LatDeg: *lat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compute orientation: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("UT1 = %s\n", *ut1)
	fmt.Printf("Longitude = %g deg, Latitude = %g deg\n", *lon, *lat)
	fmt.Printf("ERA (rad) = %.12f, (deg) = %.9f\n", res.ERA, angle.Degrees(res.ERA))
	fmt.Printf("Proj angle (rad) = %.12f, (deg) = %.9f\n", res.Projection, angle.Degrees(res.Projection))
	fmt.Printf("Sum mod 2pi (rad) = %.12f, (deg) = %.9f\n", res.Total, res.TotalDeg)

	// The sibling scales, for callers heading to an ephemeris.
	ts, _ := civiltime.Parse(*ut1)
	tt := timescale.Convert(ts, timescale.UT1, timescale.TT)
	tdb := timescale.Convert(ts, timescale.UT1, timescale.TDB)
	fmt.Printf("TT  = %s\n", tt)
	fmt.Printf("TDB = %s\n", tdb)

	if *kernel != "" {
		svc, err := ephemeris.Open(*kernel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open ephemeris: %v\n", err)
			os.Exit(1)
		}
		v, err := svc.EarthVelocityWrtSun(julian.Date(tdb))
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to look up state: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("vx, vy, vz (km/s): %.9f, %.9f, %.9f\n", v.X, v.Y, v.Z)
		fmt.Printf("speed (km/s): %.9f\n", v.Speed())
	}
}
