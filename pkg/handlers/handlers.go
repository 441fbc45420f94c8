// Package handlers wires the angle pipeline into the HTTP surface.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/orbitalkit/labpoint/pkg/cache"
	"github.com/orbitalkit/labpoint/pkg/civiltime"
	"github.com/orbitalkit/labpoint/pkg/data"
	"github.com/orbitalkit/labpoint/pkg/ephemeris"
	"github.com/orbitalkit/labpoint/pkg/geoproj"
	"github.com/orbitalkit/labpoint/pkg/julian"
	"github.com/orbitalkit/labpoint/pkg/metrics"
	"github.com/orbitalkit/labpoint/pkg/pointing"
	"github.com/orbitalkit/labpoint/pkg/timescale"
	"github.com/orbitalkit/labpoint/pkg/visualize"
)

// cacheTTL bounds the response cache. Responses are pure functions of
// a fully specified query, so the TTL only caps memory, not staleness.
const cacheTTL = 1 * time.Hour

// Env carries the optional collaborators handlers can use. Nil fields
// disable the features that need them.
type Env struct {
	DB  *gorm.DB
	Eph *ephemeris.Service
}

// Register installs the API routes on r.
func Register(r *mux.Router, env Env) {
	r.Handle("/api/v1/orientation", makeServeOrientation(env))
	r.Handle("/api/v1/orientation/dial", makeServeDial(env))
	r.Handle("/api/v1/velocity", makeServeVelocity(env))
}

type orientationResponse struct {
	UT1    string  `json:"ut1"`
	LonDeg float64 `json:"lon_deg"`
	LatDeg float64 `json:"lat_deg"`
	pointing.Result
}

func makeServeOrientation(env Env) http.Handler {
	memo := cache.NewTimed(cacheTTL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		tstr, loc, explicit, err := requestInputs(w, r, env)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "%v", err)
			return
		}

		// Only fully spelled-out queries are cacheable; session
		// defaults make the same URL mean different things to
		// different callers.
		key := fmt.Sprintf("%s %s", r.Method, r.URL)
		cacheable := r.FormValue("t") != "" && explicit
		if cacheable {
			if cached, ok := memo.Get(key); ok {
				w.Header().Add("Content-Type", contentType(r))
				w.WriteHeader(http.StatusOK)
				w.Write(cached)
				return
			}
		}

		res, err := pointing.Compute(tstr, loc)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Failed to compute orientation: %v", err)
			log.Printf("Failed to compute orientation: %v", err)
			return
		}
		metrics.CountComputation("api")

		// Duplicate the response onto a buffer for the cache.
		var toCache bytes.Buffer
		mw := io.MultiWriter(w, &toCache)

		w.Header().Add("Content-Type", contentType(r))
		w.WriteHeader(http.StatusOK)
		if r.FormValue("o") == "json" {
			out := orientationResponse{
				UT1:    tstr,
				LonDeg: loc.LonDeg,
				LatDeg: loc.LatDeg,
				Result: res,
			}
			if err := json.NewEncoder(mw).Encode(out); err != nil {
				log.Printf("Failed to encode JSON result: %+v", err)
			}
		} else {
			fmt.Fprintf(mw, "UT1 %s at (%g, %g): %s\n", tstr, loc.LonDeg, loc.LatDeg, res.String())
		}

		if cacheable {
			memo.Set(key, toCache.Bytes())
		}
	})
}

func makeServeDial(env Env) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		tstr, loc, _, err := requestInputs(w, r, env)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "%v", err)
			return
		}

		res, err := pointing.Compute(tstr, loc)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Failed to compute orientation: %v", err)
			return
		}
		metrics.CountComputation("dial")

		w.Header().Add("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		if _, err := visualize.NewDial(res).Encode(w); err != nil {
			log.Printf("Failed to render dial: %+v", err)
		}
	})
}

type velocityResponse struct {
	TDB         string           `json:"tdb"`
	VelocityKms ephemeris.Vector `json:"velocity_kms"`
	SpeedKms    float64          `json:"speed_kms"`
}

func makeServeVelocity(env Env) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		if env.Eph == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, "no ephemeris kernel configured")
			return
		}

		tstr := r.FormValue("t")
		if tstr == "" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "missing t")
			return
		}

		scale := timescale.TDB
		if name := r.FormValue("scale"); name != "" {
			var err error
			if scale, err = timescale.ParseScale(name); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, "%v", err)
				return
			}
		}

		ts, err := civiltime.Parse(tstr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "%v", err)
			return
		}
		tdb := timescale.Convert(ts, scale, timescale.TDB)

		v, err := env.Eph.EarthVelocityWrtSun(julian.Date(tdb))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "Failed to look up state: %v", err)
			log.Printf("Failed to look up state: %v", err)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		out := velocityResponse{TDB: tdb.String(), VelocityKms: v, SpeedKms: v.Speed()}
		if err := json.NewEncoder(w).Encode(out); err != nil {
			log.Printf("Failed to encode JSON result: %+v", err)
		}
	})
}

// requestInputs resolves the timestamp and observer location for a
// request. The timestamp defaults to the current wall clock, which
// tracks UT1 to within a second. The location is tried as explicit
// coordinates, then a named site, then the session default; explicit
// coordinates become the new session default.
func requestInputs(w http.ResponseWriter, r *http.Request, env Env) (tstr string, loc geoproj.Location, explicit bool, err error) {
	tstr = r.FormValue("t")
	if tstr == "" {
		tstr = time.Now().UTC().Format("2006-01-02T15:04:05")
	}

	lonStr, latStr := r.FormValue("lon"), r.FormValue("lat")
	if lonStr != "" || latStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return "", loc, false, fmt.Errorf("bad lon %q", lonStr)
		}
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return "", loc, false, fmt.Errorf("bad lat %q", latStr)
		}
		loc = geoproj.Location{LonDeg: lon, LatDeg: lat}
		rememberLocation(w, r, loc)
		return tstr, loc, true, nil
	}

	if name := r.FormValue("site"); name != "" {
		if env.DB == nil {
			return "", loc, false, errors.New("no site database configured")
		}
		site, err := data.LookupSite(env.DB, name)
		if err != nil {
			return "", loc, false, err
		}
		return tstr, geoproj.Location{LonDeg: site.LonDeg, LatDeg: site.LatDeg}, true, nil
	}

	if loc, ok := sessionLocation(r); ok {
		return tstr, loc, false, nil
	}

	return "", loc, false, errors.New("no location: pass lon and lat, or a site name")
}

func contentType(r *http.Request) string {
	if r.FormValue("o") == "json" {
		return "application/json"
	}
	return "text/plain"
}
