// Package angle provides helpers for angles on the circle. The
// canonical representative of every angle is its value in [0, 2π);
// two angles are the same exactly when their representatives are.
package angle

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Norm reduces rad into [0, 2π) with floor-modulo semantics, so
// negative inputs land in the same half-open turn as positive ones.
// Norm is idempotent: Norm(Norm(x)) == Norm(x).
func Norm(rad float64) float64 {
	r := rad - Tau*math.Floor(rad/Tau)
	// Rounding at the seam can push r onto either side of the
	// interval; nudge it back.
	if r < 0 {
		r += Tau
	}
	if r >= Tau {
		r -= Tau
	}
	return r
}

// Degrees converts radians to degrees by pure scaling. It never
// re-normalizes, so a normalized input yields a value in [0, 360).
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
