package FV1D

/*
	Boundary resolver. Ghost values are produced before reconstruction,
	ghost slopes afterwards from the freshly limited interior slopes. The
	"initial" policy is frozen on first use; the others re-derive the
	ghosts from the current solution every step.
*/

func (c *Euler) boundaryState() (bv boundaryValues) {
	var (
		m    = c.M
		edge = func(j int) ghost {
			g := ghost{Rho: c.Rho[j], U: c.U[j], P: c.P[j]}
			if c.V != nil {
				g.V = c.V[j]
			}
			return g
		}
	)
	if c.BC == BCInitial && c.haveBound {
		return c.bound
	}
	switch c.BC {
	case BCInitial, BCFree:
		bv.L, bv.R = edge(0), edge(m-1)
	case BCReflective:
		bv.L, bv.R = edge(0), edge(m-1)
		bv.L.U, bv.R.U = -bv.L.U, -bv.R.U
	case BCPeriodic:
		bv.L, bv.R = edge(m-1), edge(0)
	case BCReflectiveFree:
		bv.L, bv.R = edge(0), edge(m-1)
		bv.L.U = -bv.L.U
	}
	c.bound = bv
	c.haveBound = true
	return
}

// boundarySlopes fills the ghost slopes from the limited interior ones:
// a reflective ghost carries only the negated velocity slope (density
// and pressure slopes stay zero across a wall), periodic wraps, free
// and initial copy the adjacent interior slope.
func (c *Euler) boundarySlopes(bv *boundaryValues) {
	var (
		m          = c.M
		copySlopes = func(g *ghost, j int) {
			g.SRho, g.SU, g.SP = c.SRho[j], c.SU[j], c.SP[j]
		}
	)
	switch c.BC {
	case BCInitial, BCFree:
		copySlopes(&bv.L, 0)
		copySlopes(&bv.R, m-1)
	case BCReflective:
		bv.L.SU, bv.R.SU = -c.SU[0], -c.SU[m-1]
	case BCPeriodic:
		copySlopes(&bv.L, m-1)
		copySlopes(&bv.R, 0)
	case BCReflectiveFree:
		bv.L.SU = -c.SU[0]
		copySlopes(&bv.R, m-1)
	}
}
