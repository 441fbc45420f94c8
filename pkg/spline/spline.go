// Package spline links discrete time-series samples with smooth cubic
// segments. Each segment has zero slope at both of its endpoints,
// which suits slowly varying tabulated quantities evaluated between
// table entries.
package spline

import (
	"math"
	"time"
)

// Sample is one tabulated value at an instant.
type Sample struct {
	Time  time.Time
	Value float64
}

// Curve links one sample to the next smoothly. Its derivative at Start
// and End is zero and it is undefined outside them.
type Curve struct {
	Start, End time.Time
	a, b, c, d float64
}

// A Spline is a slice of curves linked together to span a whole table.
type Spline []Curve

// CurvesBetween builds the spline joining consecutive samples. Fewer
// than two samples give no spline.
func CurvesBetween(samples []Sample) Spline {
	if len(samples) < 2 {
		return nil
	}

	curves := make(Spline, len(samples)-1)
	for i := 0; i < len(samples)-1; i++ {
		curves[i] = curveBetween(samples[i], samples[i+1])
	}
	return curves
}

func curveBetween(s1, s2 Sample) Curve {
	h1, h2 := s1.Value, s2.Value
	t1 := 0.0
	t2 := xrel(s1.Time, s2.Time)
	denominator := math.Pow(t1-t2, 3.0)
	a := (-2 * (h1 - h2)) / denominator
	b := (3 * (h1 - h2) * (t1 + t2)) / denominator
	c := (-6 * (h1 - h2) * t1 * t2) / denominator
	d := -1 * (-1*h2*math.Pow(t1, 3) + 3*h2*math.Pow(t1, 2)*t2 - 3*h1*t1*math.Pow(t2, 2) + h1*math.Pow(t2, 3)) / denominator
	return Curve{
		Start: s1.Time,
		End:   s2.Time,
		a:     a,
		b:     b,
		c:     c,
		d:     d,
	}
}

// Eval evaluates the spline at t, or NaN if t is outside every curve.
func (s Spline) Eval(t time.Time) float64 {
	left, right := 0, len(s)
	for right > left {
		mid := left + (right-left)/2
		if t.Before(s[mid].Start) {
			right = mid
		} else if t.After(s[mid].End) {
			left = mid + 1
		} else {
			return s[mid].Eval(t)
		}
	}
	// Function not defined.
	return math.NaN()
}

// Eval evaluates the curve at t, or NaN outside [Start, End].
func (c Curve) Eval(t time.Time) float64 {
	if t.Before(c.Start) || t.After(c.End) {
		return math.NaN()
	}
	x := xrel(c.Start, t)
	return c.a*x*x*x + c.b*x*x + c.c*x + c.d
}

// xrel computes an x coordinate for t relative to origin. Keeping x
// near the origin of each curve avoids large floating point error.
func xrel(origin time.Time, t time.Time) float64 {
	return float64(t.Unix() - origin.Unix())
}
