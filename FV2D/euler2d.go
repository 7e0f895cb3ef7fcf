package FV2D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/hydrocode/FV1D"
)

/*
	Dimensionally split finite volume engine for the 2D Euler equations
	on a fixed Cartesian mesh. Each step runs a full x sweep and a full
	y sweep through banks of persistent 1D engines, one per mesh line,
	so that the history-dependent limiter keeps separate slope memory
	per line and per direction. The sweep order alternates every step.

	One step length is shared by both sweeps of a step, taken from the
	cell-based CFL bound over both directions.
*/

type RunParameters struct {
	Gamma     float64
	FinalTime float64
	Eps       float64
	MaxSteps  int
	CFL       float64
	Hx, Hy    float64
	Alpha     float64
	Order     int
	BC        FV1D.BCType
}

func (rp RunParameters) Validate() error {
	if rp.BC == FV1D.BCInitial {
		return fmt.Errorf("%w: frozen boundary ghosts are not supported by the split driver",
			FV1D.ErrConfiguration)
	}
	if !isFinite(rp.Hy) || rp.Hy <= 0 {
		return fmt.Errorf("%w: grid size hy = %g must be finite and positive",
			FV1D.ErrConfiguration, rp.Hy)
	}
	if !isFinite(rp.FinalTime) || rp.FinalTime <= 0 {
		return fmt.Errorf("%w: final time %g must be finite and positive",
			FV1D.ErrConfiguration, rp.FinalTime)
	}
	return rp.sweepParams(rp.Hx).Validate()
}

// sweepParams builds the 1D configuration of one sweep engine. The
// engines run on externally prescribed step lengths, so they carry a
// placeholder fixed tau and no final time of their own.
func (rp RunParameters) sweepParams(h float64) FV1D.RunParameters {
	return FV1D.RunParameters{
		Gamma:     rp.Gamma,
		FinalTime: math.Inf(1),
		Eps:       rp.Eps,
		MaxSteps:  math.MaxInt32,
		CFL:       rp.CFL,
		H:         h,
		Tau:       1,
		Alpha:     rp.Alpha,
		Order:     rp.Order,
		Coord:     FV1D.Eulerian,
		BC:        rp.BC,
	}
}

// InitialCondition holds the cell-centered primitive fields indexed
// [iy][ix].
type InitialCondition struct {
	Rho, U, V, P [][]float64
}

type Euler struct {
	RunParameters
	Nx, Ny int

	Rho, U, V, P [][]float64

	xEng []*FV1D.Euler // one per row, sweeps along x
	yEng []*FV1D.Euler // one per column, sweeps along y

	// Per-sweep scratch, column layout
	colRho, colU, colV, colP []float64

	Time       float64
	StepsTaken int
	StepTimes  []time.Duration
	xFirst     bool
	forced     bool
}

func NewEuler(rp RunParameters, ic InitialCondition) (c *Euler, err error) {
	if err = rp.Validate(); err != nil {
		return
	}
	ny := len(ic.Rho)
	if ny == 0 {
		err = fmt.Errorf("%w: empty initial density field", FV1D.ErrConfiguration)
		return
	}
	nx := len(ic.Rho[0])
	check := func(f [][]float64, name string) error {
		if len(f) != ny {
			return fmt.Errorf("%w: %s has %d rows, want %d", FV1D.ErrConfiguration, name, len(f), ny)
		}
		for iy := range f {
			if len(f[iy]) != nx {
				return fmt.Errorf("%w: %s row %d has %d cells, want %d",
					FV1D.ErrConfiguration, name, iy, len(f[iy]), nx)
			}
		}
		return nil
	}
	for _, fc := range []struct {
		f    [][]float64
		name string
	}{{ic.Rho, "rho"}, {ic.U, "u"}, {ic.V, "v"}, {ic.P, "p"}} {
		if err = check(fc.f, fc.name); err != nil {
			return
		}
	}
	c = &Euler{RunParameters: rp, Nx: nx, Ny: ny, xFirst: true}
	dup := func(f [][]float64) (g [][]float64) {
		g = make([][]float64, ny)
		for iy := range f {
			g[iy] = append([]float64(nil), f[iy]...)
		}
		return
	}
	c.Rho, c.U, c.V, c.P = dup(ic.Rho), dup(ic.U), dup(ic.V), dup(ic.P)

	c.xEng = make([]*FV1D.Euler, ny)
	for iy := 0; iy < ny; iy++ {
		c.xEng[iy], err = FV1D.NewEuler(rp.sweepParams(rp.Hx), FV1D.InitialCondition{
			Rho: c.Rho[iy], U: c.U[iy], P: c.P[iy], V: c.V[iy],
		})
		if err != nil {
			c = nil
			return
		}
	}
	c.colRho = make([]float64, ny)
	c.colU = make([]float64, ny)
	c.colV = make([]float64, ny)
	c.colP = make([]float64, ny)
	c.yEng = make([]*FV1D.Euler, nx)
	for ix := 0; ix < nx; ix++ {
		c.gatherColumn(ix)
		c.yEng[ix], err = FV1D.NewEuler(rp.sweepParams(rp.Hy), FV1D.InitialCondition{
			Rho: c.colRho, U: c.colV, P: c.colP, V: c.colU,
		})
		if err != nil {
			c = nil
			return
		}
	}
	return
}

// gatherColumn copies column ix into the scratch arrays, with the axis
// roles swapped: the y sweep advects v as its normal velocity and u as
// the transverse passenger.
func (c *Euler) gatherColumn(ix int) {
	for iy := 0; iy < c.Ny; iy++ {
		c.colRho[iy] = c.Rho[iy][ix]
		c.colU[iy] = c.U[iy][ix]
		c.colV[iy] = c.V[iy][ix]
		c.colP[iy] = c.P[iy][ix]
	}
}

// waveSpeedBound is min over cells of the per-direction CFL bounds.
func (c *Euler) waveSpeedBound() (hs float64) {
	hs = math.Inf(1)
	for iy := 0; iy < c.Ny; iy++ {
		for ix := 0; ix < c.Nx; ix++ {
			cs := math.Sqrt(c.Gamma * c.P[iy][ix] / c.Rho[iy][ix])
			hs = math.Min(hs, c.Hx/(math.Abs(c.U[iy][ix])+cs))
			hs = math.Min(hs, c.Hy/(math.Abs(c.V[iy][ix])+cs))
		}
	}
	return
}

func (c *Euler) sweepX(tau float64) (err error) {
	for iy := 0; iy < c.Ny; iy++ {
		e := c.xEng[iy]
		if err = e.LoadPrimitives(c.Rho[iy], c.U[iy], c.V[iy], c.P[iy]); err != nil {
			return
		}
		if err = e.StepWithTau(tau); err != nil {
			return
		}
		copy(c.Rho[iy], e.Rho)
		copy(c.U[iy], e.U)
		copy(c.V[iy], e.V)
		copy(c.P[iy], e.P)
		if e.Forced() {
			c.forced = true
		}
	}
	return
}

func (c *Euler) sweepY(tau float64) (err error) {
	for ix := 0; ix < c.Nx; ix++ {
		e := c.yEng[ix]
		c.gatherColumn(ix)
		if err = e.LoadPrimitives(c.colRho, c.colV, c.colU, c.colP); err != nil {
			return
		}
		if err = e.StepWithTau(tau); err != nil {
			return
		}
		for iy := 0; iy < c.Ny; iy++ {
			c.Rho[iy][ix] = e.Rho[iy]
			c.V[iy][ix] = e.U[iy]
			c.U[iy][ix] = e.V[iy]
			c.P[iy][ix] = e.P[iy]
		}
		if e.Forced() {
			c.forced = true
		}
	}
	return
}

// Step advances one time level: both sweeps share one step length.
func (c *Euler) Step() (err error) {
	start := time.Now()
	tau := c.CFL * c.waveSpeedBound()
	if c.Time+tau > c.FinalTime-c.Eps {
		tau = c.FinalTime - c.Time
	}
	if c.xFirst {
		if err = c.sweepX(tau); err != nil {
			return
		}
		err = c.sweepY(tau)
	} else {
		if err = c.sweepY(tau); err != nil {
			return
		}
		err = c.sweepX(tau)
	}
	if err != nil {
		return
	}
	c.xFirst = !c.xFirst
	c.Time += tau
	if c.forced {
		c.Time = math.Max(c.Time, c.FinalTime)
	}
	c.StepsTaken++
	c.StepTimes = append(c.StepTimes, time.Since(start))
	return
}

func (c *Euler) Done() bool {
	if c.forced || c.StepsTaken >= c.MaxSteps {
		return true
	}
	if math.IsNaN(c.Time) {
		return true
	}
	return c.Time > c.FinalTime-c.Eps
}

// Solve advances the run to the final time.
func (c *Euler) Solve() (err error) {
	var (
		logFrequency = 50
	)
	for !c.Done() {
		if err = c.Step(); err != nil {
			return
		}
		if c.StepsTaken%logFrequency == 0 || c.Done() {
			fmt.Printf("Time = %8.4f, tstep = %6d\n", c.Time, c.StepsTaken)
		}
	}
	return
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
