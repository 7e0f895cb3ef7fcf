package riemann

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
	Linearized GRP solver.

	The generalized Riemann problem has piecewise linear initial data. On
	top of the usual star state this yields the instantaneous time
	derivative of the interface state, which is what makes a one-stage
	second order scheme possible: the half-step interface value
	W(tau/2) = W* + (tau/2) W_t replaces the second Runge-Kutta stage.

	The derivatives come from linearizing the characteristic relations
	dp +/- rho*c*du = 0 about the solved star state. Each acoustic family
	carries the initial slope of its own side into a 2x2 linear system for
	(p_t, u_t); the entropy relation Dp/Dt = c^2 Drho/Dt closes rho_t with
	the slopes of the upwind side.
*/

// GRPState is a primitive state with its spatial slope.
type GRPState struct {
	State
	SRho, SU, SP float64
}

// GRPSolution is the resolved interface state and its time derivative.
// For the Eulerian solver the derivatives are partials at fixed x; for
// the Lagrangian solver they follow the contact (material derivatives).
type GRPSolution struct {
	Mid          State
	DRho, DU, DP float64
	Star         Star
}

// characteristicSystem solves the 2x2 linear system
//
//	p_t + (rho c)_L u_t = dL
//	p_t - (rho c)_R u_t = dR
//
// for (p_t, u_t), with the acoustic impedances taken at the star state.
func characteristicSystem(zL, zR, dL, dR float64) (pt, ut float64, err error) {
	var (
		a = mat.NewDense(2, 2, []float64{1, zL, 1, -zR})
		b = mat.NewVecDense(2, []float64{dL, dR})
		x mat.VecDense
	)
	if err = x.SolveVec(a, b); err != nil {
		err = fmt.Errorf("riemann: GRP characteristic system is singular: %w", err)
		return
	}
	pt, ut = x.AtVec(0), x.AtVec(1)
	return
}

// SolveGRPEuler resolves the generalized Riemann problem at a space-fixed
// interface: the returned Mid is the xi=0 sample of the star solution and
// the derivatives are partials in t at x = 0.
func SolveGRPEuler(left, right GRPState, gamma, tol float64) (sol GRPSolution, err error) {
	if sol.Star, err = Solve(left.State, right.State, gamma, tol); err != nil {
		return
	}
	var (
		star = sol.Star
		zL   = star.RhoL * star.CL
		zR   = star.RhoR * star.CR
		lamL = star.U + star.CL // C+ family reaching the interface from the left
		lamR = star.U - star.CR // C- family reaching it from the right
		dL   = -lamL * (left.SP + zL*left.SU)
		dR   = -lamR * (right.SP - zR*right.SU)
	)
	sol.Mid = star.Sample(left.State, right.State, gamma, 0)
	if sol.DP, sol.DU, err = characteristicSystem(zL, zR, dL, dR); err != nil {
		return
	}
	// Entropy closure for rho_t, upwinded by the contact velocity
	up, cStar := left, star.CL
	if star.U < 0 {
		up, cStar = right, star.CR
	}
	c2 := cStar * cStar
	sol.DRho = (sol.DP+star.U*up.SP)/c2 - star.U*up.SRho
	return
}

// SolveGRPLagrange resolves the generalized Riemann problem for an
// interface riding the contact (mass-fixed coordinate). The acoustic
// families approach the contact at the relative speeds -c and +c, and
// the derivatives are material ones.
func SolveGRPLagrange(left, right GRPState, gamma, tol float64) (sol GRPSolution, err error) {
	if sol.Star, err = Solve(left.State, right.State, gamma, tol); err != nil {
		return
	}
	var (
		star = sol.Star
		zL   = star.RhoL * star.CL
		zR   = star.RhoR * star.CR
		dL   = -star.CL * (left.SP + zL*left.SU)
		dR   = star.CR * (right.SP - zR*right.SU)
	)
	// The interface moves with the contact, so the resolved state is the
	// star state itself; the density side is chosen upwind of the contact.
	rhoStar, cStar := star.RhoL, star.CL
	if star.U < 0 {
		rhoStar, cStar = star.RhoR, star.CR
	}
	sol.Mid = State{Rho: rhoStar, U: star.U, P: star.P}
	if sol.DP, sol.DU, err = characteristicSystem(zL, zR, dL, dR); err != nil {
		return
	}
	// Isentropic along the contact particle path
	sol.DRho = sol.DP / (cStar * cStar)
	return
}
