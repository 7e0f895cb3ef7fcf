package sod_shock_tube

import (
	"math"

	"github.com/notargets/hydrocode/riemann"
)

/*
	Analytic solution of Sod's shock tube on x in [0,1], diaphragm at
	x = 0.5: a left running rarefaction, a contact and a right running
	shock. Used as the regression reference for the finite volume schemes
	and as the plot overlay.
*/

var (
	LeftState  = riemann.State{Rho: 1, U: 0, P: 1}
	RightState = riemann.State{Rho: 0.125, U: 0, P: 0.1}
	Gamma      = 1.4
	X0         = 0.5
)

// WavePositions locates the rarefaction head and tail, the contact and
// the shock at time t.
func WavePositions(t float64) (x1, x2, x3, x4 float64) {
	star := mustSolve()
	cL := LeftState.SoundSpeed(Gamma)
	x1 = X0 + (LeftState.U-cL)*t
	x2 = X0 + (star.U-star.CL)*t
	x3 = X0 + star.U*t
	sShock := RightState.U + RightState.SoundSpeed(Gamma)*
		math.Sqrt(0.5*((Gamma+1.)*star.P/RightState.P+Gamma-1.)/Gamma)
	x4 = X0 + sShock*t
	return
}

// Eval samples the exact solution at position x and time t > 0.
func Eval(x, t float64) riemann.State {
	star := mustSolve()
	return star.Sample(LeftState, RightState, Gamma, (x-X0)/t)
}

// Calc evaluates the solution on a grid that brackets each wave, the
// same layout the plot overlay uses. E is the specific total energy.
func Calc(t float64) (X, Rho, P, U, E []float64, x1, x2, x3, x4 float64) {
	x1, x2, x3, x4 = WavePositions(t)
	const tol = 1.e-8
	X = []float64{
		0,
		x1 - tol, x1 + tol,
		0.5 * (x1 + x2),
		x2 - tol, x2 + tol,
		x3 - tol, x3 + tol,
		x4 - tol, x4 + tol,
		1,
	}
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		w := Eval(x, t)
		Rho[i], P[i], U[i] = w.Rho, w.P, w.U
		E[i] = 0.5*w.U*w.U + w.P/((Gamma-1.)*w.Rho)
	}
	return
}

func mustSolve() riemann.Star {
	star, err := riemann.Solve(LeftState, RightState, Gamma, 1.e-12)
	if err != nil {
		panic(err)
	}
	return star
}
