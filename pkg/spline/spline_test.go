package spline

import (
	"math"
	"testing"
	"time"
)

func TestEvalAtKnots(t *testing.T) {
	t0 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	samples := []Sample{
		{t0, 0.0114},
		{t0.Add(24 * time.Hour), 0.0108},
		{t0.Add(48 * time.Hour), 0.0095},
	}
	spl := CurvesBetween(samples)

	for _, s := range samples {
		got := spl.Eval(s.Time)
		if math.Abs(got-s.Value) > 1e-9 {
			t.Errorf("Eval(%v) = %v, want %v", s.Time, got, s.Value)
		}
	}
}

func TestEvalBetweenKnots(t *testing.T) {
	t0 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	spl := CurvesBetween([]Sample{
		{t0, 0},
		{t0.Add(10 * time.Second), 10},
	})

	mid := spl.Eval(t0.Add(5 * time.Second))
	if math.Abs(mid-5) > 1e-9 {
		t.Errorf("Eval at midpoint = %v, want 5", mid)
	}

	// Zero slope at endpoints: values hug the knots nearby.
	near := spl.Eval(t0.Add(1 * time.Second))
	if near < 0 || near > 1 {
		t.Errorf("Eval near start = %v, want close to 0", near)
	}
}

func TestEvalOutside(t *testing.T) {
	t0 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	spl := CurvesBetween([]Sample{
		{t0, 1},
		{t0.Add(time.Hour), 2},
	})

	if got := spl.Eval(t0.Add(-time.Minute)); !math.IsNaN(got) {
		t.Errorf("Eval before range = %v, want NaN", got)
	}
	if got := spl.Eval(t0.Add(2 * time.Hour)); !math.IsNaN(got) {
		t.Errorf("Eval after range = %v, want NaN", got)
	}
}

func TestCurvesBetweenDegenerate(t *testing.T) {
	if spl := CurvesBetween(nil); spl != nil {
		t.Errorf("CurvesBetween(nil) = %v, want nil", spl)
	}
	one := []Sample{{time.Now(), 1}}
	if spl := CurvesBetween(one); spl != nil {
		t.Errorf("CurvesBetween(single sample) = %v, want nil", spl)
	}
}
