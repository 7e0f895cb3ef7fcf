package limiter

import "math"

/*
	Minmod family slope limiters for the piecewise-linear reconstruction.

	The three argument form is fed the previous step's limited slope as its
	third argument, so a slope that survived limiting once is allowed to
	persist - this is what sharpens contacts and shocks over many steps
	instead of re-deriving a purely local slope each time.
*/

// Minmod2 returns the argument of smaller magnitude when a and b agree in
// sign, zero otherwise.
func Minmod2(a, b float64) (s float64) {
	switch {
	case a > 0 && b > 0:
		s = math.Min(a, b)
	case a < 0 && b < 0:
		s = math.Max(a, b)
	}
	return
}

// Minmod3 extends the sign agreement rule to three arguments.
func Minmod3(a, b, c float64) (s float64) {
	switch {
	case a > 0 && b > 0 && c > 0:
		s = math.Min(a, math.Min(b, c))
	case a < 0 && b < 0 && c < 0:
		s = math.Max(a, math.Max(b, c))
	}
	return
}
