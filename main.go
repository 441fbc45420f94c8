package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orbitalkit/labpoint/pkg/data"
	"github.com/orbitalkit/labpoint/pkg/ephemeris"
	"github.com/orbitalkit/labpoint/pkg/handlers"
	"github.com/orbitalkit/labpoint/pkg/metrics"
)

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`
	// Ephemeris is a path to a JPL DE kernel. Without one the
	// velocity endpoint reports itself unavailable.
	Ephemeris string
	// Database enables named-site lookup through postgres (PG* env).
	Database bool
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	var henv handlers.Env
	if env.Ephemeris != "" {
		svc, err := ephemeris.Open(env.Ephemeris)
		if err != nil {
			log.Fatalf("open ephemeris: %v", err)
		}
		henv.Eph = svc
		log.Printf("Ephemeris kernel loaded from %s", env.Ephemeris)
	}
	if env.Database {
		db, err := data.OpenFromEnv()
		if err != nil {
			log.Fatalf("open site database: %v", err)
		}
		henv.DB = db
	}

	r := mux.NewRouter().StrictSlash(true)
	s := r.PathPrefix(env.Prefix).Subrouter()
	s.Handle("/metrics", promhttp.Handler())
	handlers.Register(s, henv)

	srv := &http.Server{
		Handler:      metrics.LatencyHandler(r),
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Listening and serving on %s%s", srv.Addr, env.Prefix)
	log.Fatal(srv.ListenAndServe())
}
