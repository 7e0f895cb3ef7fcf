package FV1D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/hydrocode/limiter"
	"github.com/notargets/hydrocode/riemann"
)

// reconstruct limits one slope triple per cell. The first step has no
// history and uses the two argument limiter; afterwards the alpha scaled
// raw slopes are compared against the slope carried from the previous
// step. First order runs skip reconstruction, the slopes stay zero.
func (c *Euler) reconstruct(bv boundaryValues) {
	if c.Order == 1 {
		return
	}
	var (
		m = c.M
	)
	for j := 0; j < m; j++ {
		var dxL, dxR float64
		if c.Coord == Lagrangian {
			// Center to center distances on the moving mesh
			wj := c.width(j)
			dxL, dxR = wj, wj
			if j > 0 {
				dxL = 0.5 * (c.width(j-1) + wj)
			}
			if j < m-1 {
				dxR = 0.5 * (wj + c.width(j+1))
			}
		} else {
			dxL, dxR = c.H, c.H
		}
		var sRhoL, sUL, sPL, sRhoR, sUR, sPR float64
		if j > 0 {
			sRhoL = (c.Rho[j] - c.Rho[j-1]) / dxL
			sUL = (c.U[j] - c.U[j-1]) / dxL
			sPL = (c.P[j] - c.P[j-1]) / dxL
		} else {
			sRhoL = (c.Rho[j] - bv.L.Rho) / dxL
			sUL = (c.U[j] - bv.L.U) / dxL
			sPL = (c.P[j] - bv.L.P) / dxL
		}
		if j < m-1 {
			sRhoR = (c.Rho[j+1] - c.Rho[j]) / dxR
			sUR = (c.U[j+1] - c.U[j]) / dxR
			sPR = (c.P[j+1] - c.P[j]) / dxR
		} else {
			sRhoR = (bv.R.Rho - c.Rho[j]) / dxR
			sUR = (bv.R.U - c.U[j]) / dxR
			sPR = (bv.R.P - c.P[j]) / dxR
		}
		if c.StepsTaken == 0 {
			c.SRho[j] = limiter.Minmod2(sRhoL, sRhoR)
			c.SU[j] = limiter.Minmod2(sUL, sUR)
			c.SP[j] = limiter.Minmod2(sPL, sPR)
		} else {
			c.SRho[j] = limiter.Minmod3(c.Alpha*sRhoL, c.Alpha*sRhoR, c.SRho[j])
			c.SU[j] = limiter.Minmod3(c.Alpha*sUL, c.Alpha*sUR, c.SU[j])
			c.SP[j] = limiter.Minmod3(c.Alpha*sPL, c.Alpha*sPR, c.SP[j])
		}
	}
}

// faceStates extrapolates the left and right primitive states and slopes
// at interface j from the adjacent cells (or ghosts).
func (c *Euler) faceStates(j int, bv boundaryValues) (l, r riemann.GRPState) {
	m := c.M
	if j > 0 {
		w := c.width(j - 1)
		l = riemann.GRPState{
			State: riemann.State{
				Rho: c.Rho[j-1] + 0.5*w*c.SRho[j-1],
				U:   c.U[j-1] + 0.5*w*c.SU[j-1],
				P:   c.P[j-1] + 0.5*w*c.SP[j-1],
			},
			SRho: c.SRho[j-1], SU: c.SU[j-1], SP: c.SP[j-1],
		}
	} else {
		w := c.width(0)
		l = riemann.GRPState{
			State: riemann.State{
				Rho: bv.L.Rho + 0.5*w*bv.L.SRho,
				U:   bv.L.U + 0.5*w*bv.L.SU,
				P:   bv.L.P + 0.5*w*bv.L.SP,
			},
			SRho: bv.L.SRho, SU: bv.L.SU, SP: bv.L.SP,
		}
	}
	if j < m {
		w := c.width(j)
		r = riemann.GRPState{
			State: riemann.State{
				Rho: c.Rho[j] - 0.5*w*c.SRho[j],
				U:   c.U[j] - 0.5*w*c.SU[j],
				P:   c.P[j] - 0.5*w*c.SP[j],
			},
			SRho: c.SRho[j], SU: c.SU[j], SP: c.SP[j],
		}
	} else {
		w := c.width(m - 1)
		r = riemann.GRPState{
			State: riemann.State{
				Rho: bv.R.Rho - 0.5*w*bv.R.SRho,
				U:   bv.R.U - 0.5*w*bv.R.SU,
				P:   bv.R.P - 0.5*w*bv.R.SP,
			},
			SRho: bv.R.SRho, SU: bv.R.SU, SP: bv.R.SP,
		}
	}
	return
}

// solveInterfaces runs the Riemann or GRP solver at every interface,
// filling the mid state and derivative arrays, and returns the CFL bound
// min(h/(|u|+c)) over all face states.
func (c *Euler) solveInterfaces(bv boundaryValues) (hsMax float64, err error) {
	var (
		m = c.M
	)
	hsMax = math.Inf(1)
	for j := 0; j <= m; j++ {
		l, r := c.faceStates(j, bv)
		if !l.Valid(c.Eps) || !r.Valid(c.Eps) {
			err = fmt.Errorf("%w at step %d interface %d", ErrReconstruction, c.StepsTaken+1, j)
			return
		}
		var (
			cl = l.SoundSpeed(c.Gamma)
			cr = r.SoundSpeed(c.Gamma)
			hl = c.width(maxInt(j-1, 0))
			hr = c.width(minInt(j, m-1))
		)
		hsMax = math.Min(hsMax, hl/(math.Abs(l.U)+cl))
		hsMax = math.Min(hsMax, hr/(math.Abs(r.U)+cr))

		if c.Order == 2 {
			var sol riemann.GRPSolution
			if c.Coord == Lagrangian {
				sol, err = riemann.SolveGRPLagrange(l, r, c.Gamma, c.Eps)
			} else {
				sol, err = riemann.SolveGRPEuler(l, r, c.Gamma, c.Eps)
			}
			if err != nil {
				err = fmt.Errorf("%w: %v at step %d interface %d", ErrSolver, err, c.StepsTaken+1, j)
				return
			}
			c.midRho[j], c.midU[j], c.midP[j] = sol.Mid.Rho, sol.Mid.U, sol.Mid.P
			c.dRho[j], c.dU[j], c.dP[j] = sol.DRho, sol.DU, sol.DP
		} else {
			var star riemann.Star
			if star, err = riemann.Solve(l.State, r.State, c.Gamma, c.Eps); err != nil {
				err = fmt.Errorf("%w: %v at step %d interface %d", ErrSolver, err, c.StepsTaken+1, j)
				return
			}
			var mid riemann.State
			if c.Coord == Lagrangian {
				mid = riemann.State{Rho: star.RhoL, U: star.U, P: star.P}
				if star.U < 0 {
					mid.Rho = star.RhoR
				}
			} else {
				mid = star.Sample(l.State, r.State, c.Gamma, 0)
			}
			c.midRho[j], c.midU[j], c.midP[j] = mid.Rho, mid.U, mid.P
			c.dRho[j], c.dU[j], c.dP[j] = 0, 0, 0
		}
		if c.midP[j] < c.Eps || c.midRho[j] < c.Eps ||
			!isFinite(c.midU[j]) || !isFinite(c.midP[j]) || !isFinite(c.midRho[j]) {
			// Keep whatever was computed and terminate gracefully at the
			// end of this step ("times-up" policy).
			fmt.Printf("Non-physical star state at step %d interface %d\n", c.StepsTaken+1, j)
			c.forced = true
		}
		if c.vFace != nil {
			// Transverse velocity rides the contact: upwind by u*
			switch {
			case c.midU[j] > 0:
				if j > 0 {
					c.vFace[j] = c.V[j-1]
				} else {
					c.vFace[j] = bv.L.V
				}
			case c.midU[j] < 0:
				if j < m {
					c.vFace[j] = c.V[j]
				} else {
					c.vFace[j] = bv.R.V
				}
			default:
				var vl, vr float64
				if j > 0 {
					vl = c.V[j-1]
				} else {
					vl = bv.L.V
				}
				if j < m {
					vr = c.V[j]
				} else {
					vr = bv.R.V
				}
				c.vFace[j] = 0.5 * (vl + vr)
			}
		}
	}
	return
}

// stepSize follows the reference policy: runs with a finite total time
// (or without a usable fixed step length) adapt to the CFL bound and are
// clipped at the final time; otherwise the configured tau is used as is.
func (c *Euler) stepSize(hsMax float64) (tau float64) {
	tau = c.Tau
	if isFinite(c.FinalTime) || !isFinite(tau) || tau <= 0 {
		tau = c.CFL * hsMax
		if c.Time+tau > c.FinalTime-c.Eps {
			tau = c.FinalTime - c.Time
		}
	}
	return
}

// updateEulerian assembles the fluxes and applies the conservative
// flux-difference update on the fixed mesh.
//
// At second order the half-step correction is applied twice around the
// flux evaluation: the first lands the interface state on t+tau/2 where
// the flux is taken (midpoint rule), the second advances it to t+tau so
// the recomputed slopes below are baselined at the new time level.
func (c *Euler) updateEulerian(tau float64) {
	var (
		m   = c.M
		g   = c.Gamma
		nu  = tau / c.H
		ooh = 1. / c.H
	)
	for j := 0; j <= m; j++ {
		if c.Order == 2 {
			c.midRho[j] += 0.5 * tau * c.dRho[j]
			c.midU[j] += 0.5 * tau * c.dU[j]
			c.midP[j] += 0.5 * tau * c.dP[j]
		}
		c.f1[j] = c.midRho[j] * c.midU[j]
		c.f2[j] = c.f1[j]*c.midU[j] + c.midP[j]
		c.f3[j] = (g/(g-1.))*c.midP[j] + 0.5*c.f1[j]*c.midU[j]
		if c.vFace != nil {
			c.f3[j] += 0.5 * c.f1[j] * c.vFace[j] * c.vFace[j]
			c.f4[j] = c.f1[j] * c.vFace[j]
		}
		c.f3[j] *= c.midU[j]
		if c.Order == 2 {
			c.midRho[j] += 0.5 * tau * c.dRho[j]
			c.midU[j] += 0.5 * tau * c.dU[j]
			c.midP[j] += 0.5 * tau * c.dP[j]
		}
	}
	for j := 0; j < m; j++ {
		c.rhoN[j] = c.Rho[j] - nu*(c.f1[j+1]-c.f1[j])
		mom := c.Rho[j]*c.U[j] - nu*(c.f2[j+1]-c.f2[j])
		ene := c.Rho[j]*c.E[j] - nu*(c.f3[j+1]-c.f3[j])
		c.uN[j] = mom / c.rhoN[j]
		c.eN[j] = ene / c.rhoN[j]
		kin := 0.5 * mom * c.uN[j]
		if c.vFace != nil {
			momV := c.Rho[j]*c.V[j] - nu*(c.f4[j+1]-c.f4[j])
			c.vN[j] = momV / c.rhoN[j]
			kin += 0.5 * momV * c.vN[j]
		}
		c.pN[j] = (ene - kin) * (g - 1.)
		c.checkUpdated(j)
		if c.Order == 2 {
			c.SRho[j] = (c.midRho[j+1] - c.midRho[j]) * ooh
			c.SU[j] = (c.midU[j+1] - c.midU[j]) * ooh
			c.SP[j] = (c.midP[j+1] - c.midP[j]) * ooh
		}
	}
}

// updateLagrangian advects the interfaces with the resolved contact
// velocity and updates the cells per unit of their fixed mass.
func (c *Euler) updateLagrangian(tau float64) {
	var (
		m = c.M
		g = c.Gamma
	)
	// Time centered interface velocity and pressure drive both the mesh
	// motion and the momentum/energy fluxes.
	for j := 0; j <= m; j++ {
		if c.Order == 2 {
			c.midU[j] += 0.5 * tau * c.dU[j]
			c.midP[j] += 0.5 * tau * c.dP[j]
			c.midRho[j] += 0.5 * tau * c.dRho[j]
		}
		c.xN[j] = c.X[j] + tau*c.midU[j]
	}
	for j := 0; j < m; j++ {
		w := c.xN[j+1] - c.xN[j]
		c.rhoN[j] = c.Mass[j] / w
		c.uN[j] = c.U[j] - tau/c.Mass[j]*(c.midP[j+1]-c.midP[j])
		c.eN[j] = c.E[j] - tau/c.Mass[j]*(c.midP[j+1]*c.midU[j+1]-c.midP[j]*c.midU[j])
		c.pN[j] = (g - 1.) * c.rhoN[j] * (c.eN[j] - 0.5*c.uN[j]*c.uN[j])
		c.checkUpdated(j)
	}
	if c.Order == 2 {
		for j := 0; j <= m; j++ {
			c.midRho[j] += 0.5 * tau * c.dRho[j]
			c.midU[j] += 0.5 * tau * c.dU[j]
			c.midP[j] += 0.5 * tau * c.dP[j]
		}
		for j := 0; j < m; j++ {
			w := c.xN[j+1] - c.xN[j]
			c.SRho[j] = (c.midRho[j+1] - c.midRho[j]) / w
			c.SU[j] = (c.midU[j+1] - c.midU[j]) / w
			c.SP[j] = (c.midP[j+1] - c.midP[j]) / w
		}
	}
}

func (c *Euler) checkUpdated(j int) {
	if c.pN[j] < c.Eps || c.rhoN[j] < c.Eps {
		fmt.Printf("Non-physical updated state at step %d cell %d\n", c.StepsTaken+1, j)
		c.forced = true
	}
	if !isFinite(c.pN[j]) || !isFinite(c.uN[j]) || !isFinite(c.rhoN[j]) {
		fmt.Printf("NaN or Inf updated state at step %d cell %d\n", c.StepsTaken+1, j)
		c.forced = true
	}
}

// Step advances one time level with the CFL adaptive step length.
func (c *Euler) Step() error {
	return c.step(0, false)
}

// StepWithTau advances one time level with a prescribed step length,
// bypassing the CFL computation. The split 2D driver uses this to share
// one step length across sweeps.
func (c *Euler) StepWithTau(tau float64) error {
	return c.step(tau, true)
}

func (c *Euler) step(tauIn float64, fixed bool) (err error) {
	start := time.Now()
	bv := c.boundaryState()
	c.reconstruct(bv)
	c.boundarySlopes(&bv)
	hsMax, err := c.solveInterfaces(bv)
	if err != nil {
		return
	}
	tau := tauIn
	if !fixed {
		tau = c.stepSize(hsMax)
	}
	if c.Coord == Lagrangian {
		c.updateLagrangian(tau)
	} else {
		c.updateEulerian(tau)
	}
	c.swap()
	c.Time += tau
	if c.forced {
		// Terminate early but gracefully, keeping the last valid level
		c.Time = math.Max(c.Time, c.FinalTime)
	}
	c.StepsTaken++
	c.StepTimes = append(c.StepTimes, time.Since(start))
	return
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
