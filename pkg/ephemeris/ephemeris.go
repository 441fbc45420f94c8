// Package ephemeris resolves barycentric state queries against a JPL
// Development Ephemeris kernel. A query is keyed by body pair and TDB
// Julian Date; results come back as ICRS velocity vectors in km/s.
package ephemeris

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/mshafiee/jpl"

	"github.com/orbitalkit/labpoint/pkg/cache"
)

// memoTTL bounds how long interpolated states are kept. Kernel data is
// immutable, so the TTL only caps memory growth.
const memoTTL = time.Hour

// Vector is a velocity on ICRS axes, in km/s.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Speed returns the magnitude of the vector.
func (v Vector) Speed() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.9f, %.9f, %.9f) km/s", v.X, v.Y, v.Z)
}

// Kernel is the slice of the DE reader the service needs. *jpl.JPL
// satisfies it.
type Kernel interface {
	EphemerisLookup(et float64, ntarg, ncent jpl.CelestialBody) ([]float64, error)
}

// Service answers ephemeris queries, memoizing interpolated states so
// repeated lookups at the same instant skip the kernel file.
type Service struct {
	kernel Kernel
	memo   *cache.Timed
}

// Open reads a binary DE kernel (de440 and friends) from path and
// returns a Service in kilometer units.
func Open(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: %w", err)
	}
	k, _, err := jpl.NewJPL(f)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: open kernel %s: %w", path, err)
	}
	k.DoKm = true
	return New(k), nil
}

// New wraps an already-open kernel. The kernel must be in kilometer
// mode.
func New(k Kernel) *Service {
	return &Service{
		kernel: k,
		memo:   cache.NewTimed(memoTTL),
	}
}

// EarthVelocityWrtSun returns the velocity of the Earth relative to
// the Sun at a TDB Julian Date.
func (s *Service) EarthVelocityWrtSun(etTDB float64) (Vector, error) {
	return s.Velocity(etTDB, jpl.Earth, jpl.Sun)
}

// Velocity returns the velocity of targ relative to center at a TDB
// Julian Date.
func (s *Service) Velocity(etTDB float64, targ, center jpl.CelestialBody) (Vector, error) {
	key := fmt.Sprintf("%d/%d@%.9f", targ, center, etTDB)
	if buf, ok := s.memo.Get(key); ok {
		return decodeVector(buf), nil
	}

	rrd, err := s.kernel.EphemerisLookup(etTDB, targ, center)
	if err != nil {
		return Vector{}, fmt.Errorf("ephemeris: state of %d wrt %d at %f: %w", targ, center, etTDB, err)
	}
	if len(rrd) < 6 {
		return Vector{}, fmt.Errorf("ephemeris: short state vector (%d components)", len(rrd))
	}

	v := Vector{X: rrd[3], Y: rrd[4], Z: rrd[5]}
	s.memo.Set(key, encodeVector(v))
	return v, nil
}

func encodeVector(v Vector) []byte {
	buf := make([]byte, 24)
	binary.BigEndian.PutUint64(buf[0:], math.Float64bits(v.X))
	binary.BigEndian.PutUint64(buf[8:], math.Float64bits(v.Y))
	binary.BigEndian.PutUint64(buf[16:], math.Float64bits(v.Z))
	return buf
}

func decodeVector(buf []byte) Vector {
	return Vector{
		X: math.Float64frombits(binary.BigEndian.Uint64(buf[0:])),
		Y: math.Float64frombits(binary.BigEndian.Uint64(buf[8:])),
		Z: math.Float64frombits(binary.BigEndian.Uint64(buf[16:])),
	}
}
