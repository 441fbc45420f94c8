// Package data stores named observer sites so API callers can say
// "greenwich" instead of spelling out coordinates.
package data

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Site is a named observer location. Coordinates follow the geoproj
// convention: east-positive longitude, north-positive latitude.
type Site struct {
	gorm.Model
	Name   string `gorm:"uniqueIndex"`
	LonDeg float64
	LatDeg float64
}

// OpenFromEnv connects to postgres using the conventional PG*
// variables and migrates the schema. The database is optional; callers
// should treat an error as "run without site lookup".
func OpenFromEnv() (*gorm.DB, error) {
	host := os.Getenv("PGHOST")
	if host == "" {
		return nil, errors.New("data: PGHOST not set")
	}
	dsn := fmt.Sprintf("host=%s user=postgres password=%s dbname=labpoint port=%s sslmode=disable TimeZone=UTC",
		host,
		os.Getenv("PGPASSWORD"),
		os.Getenv("PGPORT"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("data: connect: %w", err)
	}
	if err := db.AutoMigrate(&Site{}); err != nil {
		return nil, fmt.Errorf("data: migrate: %w", err)
	}
	return db, nil
}

// LookupSite fetches a site by name.
func LookupSite(db *gorm.DB, name string) (Site, error) {
	var s Site
	if err := db.Where("name = ?", name).First(&s).Error; err != nil {
		return Site{}, fmt.Errorf("data: site %q: %w", name, err)
	}
	return s, nil
}

// SaveSite inserts or updates a named site.
func SaveSite(db *gorm.DB, site Site) error {
	var existing Site
	err := db.Where("name = ?", site.Name).First(&existing).Error
	if err == nil {
		existing.LonDeg = site.LonDeg
		existing.LatDeg = site.LatDeg
		site = existing
	}
	if tx := db.Save(&site); tx.Error != nil {
		return fmt.Errorf("data: save site %q: %w", site.Name, tx.Error)
	}
	return nil
}
