package riemann

import "math"

// Sample evaluates the self-similar solution W(xi), xi = x/t, of the
// solved Riemann problem. For the Godunov flux on a fixed grid the state
// of interest is xi = 0; transonic rarefactions spanning xi are resolved
// inside the fan.
func (star Star) Sample(left, right State, gamma, xi float64) (w State) {
	var (
		cL = left.SoundSpeed(gamma)
		cR = right.SoundSpeed(gamma)
	)
	if xi <= star.U {
		// Left of the contact
		if star.Left == Rarefaction {
			head := left.U - cL
			tail := star.U - star.CL
			switch {
			case xi <= head:
				w = left
			case xi >= tail:
				w = State{Rho: star.RhoL, U: star.U, P: star.P}
			default:
				w = fanState(left, cL, gamma, xi, 1)
			}
		} else {
			s := left.U - cL*shockMach(star.P/left.P, gamma)
			if xi <= s {
				w = left
			} else {
				w = State{Rho: star.RhoL, U: star.U, P: star.P}
			}
		}
		return
	}
	// Right of the contact
	if star.Right == Rarefaction {
		head := right.U + cR
		tail := star.U + star.CR
		switch {
		case xi >= head:
			w = right
		case xi <= tail:
			w = State{Rho: star.RhoR, U: star.U, P: star.P}
		default:
			w = fanState(right, cR, gamma, xi, -1)
		}
	} else {
		s := right.U + cR*shockMach(star.P/right.P, gamma)
		if xi >= s {
			w = right
		} else {
			w = State{Rho: star.RhoR, U: star.U, P: star.P}
		}
	}
	return
}

// shockMach is the Mach number of a shock with pressure ratio pr relative
// to the pre-shock state.
func shockMach(pr, gamma float64) float64 {
	return math.Sqrt(0.5 * ((gamma+1.)*pr + gamma - 1.) / gamma)
}

// fanState is the state inside a centered rarefaction at xi. sign is +1
// for the left (C-minus family) fan, -1 for the right.
func fanState(outer State, c, gamma, xi, sign float64) (w State) {
	var (
		g1 = 2. / (gamma + 1.)
		g2 = (gamma - 1.) / (gamma + 1.)
	)
	cFan := g1*c + sign*g2*(outer.U-xi)
	w.U = g1 * (sign*c + 0.5*(gamma-1.)*outer.U + xi)
	w.Rho = outer.Rho * math.Pow(cFan/c, 2./(gamma-1.))
	w.P = outer.P * math.Pow(cFan/c, 2.*gamma/(gamma-1.))
	return
}
