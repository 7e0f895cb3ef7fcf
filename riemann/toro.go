package riemann

import "math"

// SolveToro is the Toro-style variant of the exact solver. It shares the
// contract of Solve but starts the pressure iteration from the
// two-rarefaction estimate, which is more robust for strong expansions.
func SolveToro(left, right State, gamma, tol float64) (star Star, err error) {
	if !left.Valid(0) || !right.Valid(0) || left.Rho <= 0 || left.P <= 0 || right.Rho <= 0 || right.P <= 0 {
		err = ErrNonPhysical
		return
	}
	var (
		cL = left.SoundSpeed(gamma)
		cR = right.SoundSpeed(gamma)
		z  = 0.5 * (gamma - 1.) / gamma
	)
	if err = checkVacuum(left, right, cL, cR, gamma); err != nil {
		return
	}
	// Two-rarefaction estimate
	num := cL + cR - 0.5*(gamma-1.)*(right.U-left.U)
	den := cL/math.Pow(left.P, z) + cR/math.Pow(right.P, z)
	p0 := math.Pow(num/den, 1./z)
	return solveStar(left, right, cL, cR, gamma, tol, p0)
}
