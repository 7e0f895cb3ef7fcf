package riemann

import (
	"fmt"
	"math"
)

// pressureFunc evaluates the pressure function f(p) and its derivative for
// one side of the tube. The shock branch (p > side pressure) uses the
// Rankine-Hugoniot relation, the rarefaction branch the isentropic one.
func pressureFunc(p float64, s State, c, gamma float64) (f, df float64) {
	if p > s.P {
		// Shock
		a := 2. / ((gamma + 1.) * s.Rho)
		b := (gamma - 1.) / (gamma + 1.) * s.P
		q := math.Sqrt(a / (b + p))
		f = (p - s.P) * q
		df = q * (1. - 0.5*(p-s.P)/(b+p))
	} else {
		// Rarefaction
		pr := p / s.P
		f = 2. * c / (gamma - 1.) * (math.Pow(pr, 0.5*(gamma-1.)/gamma) - 1.)
		df = math.Pow(pr, -0.5*(gamma+1.)/gamma) / (s.Rho * c)
	}
	return
}

// starDensity backs out the density on one side of the contact once the
// star pressure is known.
func starDensity(pStar float64, s State, gamma float64) (rho float64, w WaveType) {
	var (
		pr  = pStar / s.P
		mu2 = (gamma - 1.) / (gamma + 1.)
	)
	if pStar > s.P {
		w = Shock
		rho = s.Rho * (pr + mu2) / (mu2*pr + 1.)
	} else {
		w = Rarefaction
		rho = s.Rho * math.Pow(pr, 1./gamma)
	}
	return
}

// solveStar runs the Newton iteration on f_L(p) + f_R(p) + (uR-uL) = 0
// from the supplied starting pressure.
func solveStar(left, right State, cL, cR, gamma, tol, p0 float64) (star Star, err error) {
	var (
		du   = right.U - left.U
		p    = math.Max(p0, tol)
		conv bool
	)
	for i := 0; i < MaxIter; i++ {
		fL, dfL := pressureFunc(p, left, cL, gamma)
		fR, dfR := pressureFunc(p, right, cR, gamma)
		pNew := p - (fL+fR+du)/(dfL+dfR)
		if pNew < tol {
			pNew = tol
		}
		change := 2. * math.Abs(pNew-p) / (pNew + p)
		p = pNew
		if change < tol {
			conv = true
			break
		}
	}
	if !conv {
		err = fmt.Errorf("%w after %d iterations, last p = %g", ErrNoConvergence, MaxIter, p)
		return
	}
	fL, _ := pressureFunc(p, left, cL, gamma)
	fR, _ := pressureFunc(p, right, cR, gamma)
	star.P = p
	star.U = 0.5*(left.U+right.U) + 0.5*(fR-fL)
	star.RhoL, star.Left = starDensity(p, left, gamma)
	star.RhoR, star.Right = starDensity(p, right, gamma)
	star.CL = math.Sqrt(gamma * p / star.RhoL)
	star.CR = math.Sqrt(gamma * p / star.RhoR)
	return
}

// checkVacuum rejects data whose rarefactions would separate completely,
// leaving a vacuum region. The scheme has no vacuum branch, so this is
// terminal for the run.
func checkVacuum(left, right State, cL, cR, gamma float64) error {
	if 2.*(cL+cR)/(gamma-1.) <= right.U-left.U {
		return ErrVacuum
	}
	return nil
}

// Solve computes the exact star region for the Riemann problem with the
// given left and right states. The starting pressure is the linearized
// (acoustic) estimate.
func Solve(left, right State, gamma, tol float64) (star Star, err error) {
	if !left.Valid(0) || !right.Valid(0) || left.Rho <= 0 || left.P <= 0 || right.Rho <= 0 || right.P <= 0 {
		err = ErrNonPhysical
		return
	}
	var (
		cL = left.SoundSpeed(gamma)
		cR = right.SoundSpeed(gamma)
	)
	if err = checkVacuum(left, right, cL, cR, gamma); err != nil {
		return
	}
	// Acoustic first guess
	p0 := 0.5*(left.P+right.P) - 0.125*(right.U-left.U)*(left.Rho+right.Rho)*(cL+cR)
	return solveStar(left, right, cL, cR, gamma, tol, p0)
}
