package ephemeris

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mshafiee/jpl"
)

// fakeKernel serves a canned state vector and counts lookups.
type fakeKernel struct {
	rrd   []float64
	err   error
	calls int
}

func (f *fakeKernel) EphemerisLookup(et float64, ntarg, ncent jpl.CelestialBody) ([]float64, error) {
	f.calls++
	return f.rrd, f.err
}

func TestEarthVelocityWrtSun(t *testing.T) {
	// Position components are ignored; velocity is km/s.
	fake := &fakeKernel{rrd: []float64{1.2e8, -5e7, 3e6, -22.05, 17.43, 7.56}}
	svc := New(fake)

	got, err := svc.EarthVelocityWrtSun(2460905.000800)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	want := Vector{X: -22.05, Y: 17.43, Z: 7.56}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect velocity (-want,+got): %s", diff)
	}

	// Orbital speed sanity: sqrt of squared components.
	wantSpeed := math.Sqrt(22.05*22.05 + 17.43*17.43 + 7.56*7.56)
	if math.Abs(got.Speed()-wantSpeed) > 1e-12 {
		t.Errorf("Speed() = %v, want %v", got.Speed(), wantSpeed)
	}
}

func TestVelocityMemoized(t *testing.T) {
	fake := &fakeKernel{rrd: []float64{0, 0, 0, 1, 2, 3}}
	svc := New(fake)

	first, err := svc.EarthVelocityWrtSun(2451545.0)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	second, err := svc.EarthVelocityWrtSun(2451545.0)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	if fake.calls != 1 {
		t.Errorf("kernel consulted %d times, want 1", fake.calls)
	}
	if first != second {
		t.Errorf("memoized result differs: %v then %v", first, second)
	}

	// A different instant misses the memo.
	if _, err := svc.EarthVelocityWrtSun(2451546.0); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if fake.calls != 2 {
		t.Errorf("kernel consulted %d times, want 2", fake.calls)
	}
}

func TestVelocityErrors(t *testing.T) {
	kernelErr := errors.New("record out of range")
	svc := New(&fakeKernel{err: kernelErr})
	if _, err := svc.EarthVelocityWrtSun(99999999.0); !errors.Is(err, kernelErr) {
		t.Errorf("err = %v, want wrapped kernel error", err)
	}

	short := New(&fakeKernel{rrd: []float64{1, 2, 3}})
	if _, err := short.EarthVelocityWrtSun(2451545.0); err == nil {
		t.Errorf("expected error for short state vector")
	}
}
