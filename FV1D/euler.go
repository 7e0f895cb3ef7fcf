package FV1D

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/hydrocode/riemann"
)

/*
	Finite volume Godunov / GRP engine for the 1D Euler equations.

	The engine owns two ping-ponged time levels of the cell fields plus
	the slope arrays that the history-dependent limiter carries from one
	step to the next. Interface data (reconstructed face states, star
	states, fluxes) are transient and rebuilt every step.
*/

type Coordinate uint8

const (
	Eulerian Coordinate = iota // space-fixed mesh, fixed cell volume
	Lagrangian                 // mass-fixed mesh, interfaces ride the fluid
)

func (c Coordinate) String() string {
	if c == Lagrangian {
		return "LAG"
	}
	return "EUL"
}

func NewCoordinate(name string) (Coordinate, error) {
	switch strings.ToUpper(name) {
	case "EUL", "EULER", "EULERIAN":
		return Eulerian, nil
	case "LAG", "LAGRANGE", "LAGRANGIAN":
		return Lagrangian, nil
	}
	return Eulerian, fmt.Errorf("%w: unknown coordinate framework %q", ErrConfiguration, name)
}

// BCType selects the boundary policy. The numeric values are the legacy
// configuration codes and remain accepted in input files.
type BCType int

const (
	BCInitial        BCType = -1  // frozen copy of the initial edge cells
	BCReflective     BCType = -2  // solid wall both ends
	BCFree           BCType = -4  // zero-gradient outflow both ends
	BCPeriodic       BCType = -5  // wrap around
	BCReflectiveFree BCType = -24 // wall on the left, outflow on the right
)

var bcNames = map[BCType]string{
	BCInitial:        "initial",
	BCReflective:     "reflective",
	BCFree:           "free",
	BCPeriodic:       "periodic",
	BCReflectiveFree: "reflective-free",
}

var bcNameMap = map[string]BCType{
	"initial":         BCInitial,
	"reflective":      BCReflective,
	"wall":            BCReflective,
	"free":            BCFree,
	"outflow":         BCFree,
	"periodic":        BCPeriodic,
	"reflective-free": BCReflectiveFree,
}

func (bc BCType) String() string {
	if s, ok := bcNames[bc]; ok {
		return s
	}
	return fmt.Sprintf("BCType(%d)", int(bc))
}

func (bc BCType) Valid() bool {
	_, ok := bcNames[bc]
	return ok
}

// NewBCType resolves a policy name or a legacy numeric code.
func NewBCType(name string) (BCType, error) {
	if bc, ok := bcNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return bc, nil
	}
	if code, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		bc := BCType(code)
		if bc.Valid() {
			return bc, nil
		}
	}
	return 0, fmt.Errorf("%w: no suitable boundary condition %q", ErrConfiguration, name)
}

var (
	ErrConfiguration  = errors.New("FV1D: configuration")
	ErrInitialState   = errors.New("FV1D: non-physical initial state")
	ErrReconstruction = errors.New("FV1D: non-physical reconstructed state")
	ErrSolver         = errors.New("FV1D: interface solver failure")
)

// RunParameters is the immutable configuration of one run. Unset slots
// arrive as +Inf from the configuration layer and are rejected here when
// required.
type RunParameters struct {
	Gamma     float64 // perfect gas adiabatic index
	FinalTime float64 // total simulated time; +Inf for fixed-step runs
	Eps       float64 // positivity floor and zero tolerance
	MaxSteps  int
	CFL       float64
	H         float64 // initial spatial grid size
	Tau       float64 // fixed step length; +Inf selects CFL stepping
	Alpha     float64 // limiter parameter, 0 degenerates to first order
	Order     int     // 1 Godunov, 2 GRP
	Coord     Coordinate
	BC        BCType
}

func (rp RunParameters) Validate() error {
	bad := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: "+format, append([]interface{}{ErrConfiguration}, args...)...)
	}
	if !isFinite(rp.Gamma) || rp.Gamma <= 1 {
		return bad("gamma = %g must be finite and > 1", rp.Gamma)
	}
	if !isFinite(rp.H) || rp.H <= 0 {
		return bad("grid size h = %g must be finite and positive", rp.H)
	}
	if !isFinite(rp.Eps) || rp.Eps <= 0 {
		return bad("eps = %g must be finite and positive", rp.Eps)
	}
	if rp.Order != 1 && rp.Order != 2 {
		return bad("order %d is not 1 or 2", rp.Order)
	}
	if !rp.BC.Valid() {
		return bad("no suitable boundary condition %d", int(rp.BC))
	}
	if rp.MaxSteps <= 0 {
		return bad("max steps %d must be positive", rp.MaxSteps)
	}
	if rp.Order == 2 && (!isFinite(rp.Alpha) || rp.Alpha < 0) {
		return bad("limiter parameter alpha = %g must be finite and >= 0", rp.Alpha)
	}
	fixedStep := isFinite(rp.Tau) && rp.Tau > 0
	if isFinite(rp.FinalTime) {
		if rp.FinalTime <= 0 {
			return bad("final time %g must be positive", rp.FinalTime)
		}
		if !isFinite(rp.CFL) || rp.CFL <= 0 {
			return bad("CFL = %g must be finite and positive", rp.CFL)
		}
	} else if !fixedStep {
		return bad("either a finite final time or a fixed step length is required")
	}
	return nil
}

// InitialCondition supplies the cell-centered primitive fields. V is the
// optional transverse velocity used by the dimensionally split 2D driver
// and must be empty or match the field length.
type InitialCondition struct {
	Rho, U, P []float64
	V         []float64
}

type ghost struct {
	Rho, U, P    float64
	V            float64
	SRho, SU, SP float64
}

type boundaryValues struct {
	L, R ghost
}

// Euler is the 1D finite volume engine.
type Euler struct {
	RunParameters
	M int // number of cells

	// Current time level
	Rho, U, P, E []float64
	V            []float64 // transverse velocity, Eulerian sweeps only
	X            []float64 // m+1 interface coordinates, Lagrangian only
	Mass         []float64 // fixed cell masses, Lagrangian only

	// Next time level, swapped in at the end of each step
	rhoN, uN, pN, eN, vN, xN []float64

	// Slope history carried between steps
	SRho, SU, SP []float64

	// Per-interface work arrays
	midRho, midU, midP []float64
	dRho, dU, dP       []float64
	f1, f2, f3, f4     []float64
	vFace              []float64
	sums               []float64 // reused by Totals

	bound     boundaryValues
	haveBound bool

	Time       float64
	StepsTaken int
	StepTimes  []time.Duration
	forced     bool // a star/update failure forced times-up termination

	chart chartState
}

// NewEuler validates the configuration and the initial fields and builds
// the engine. The initial arrays are copied; the caller keeps ownership
// of its slices.
func NewEuler(rp RunParameters, ic InitialCondition) (c *Euler, err error) {
	if err = rp.Validate(); err != nil {
		return
	}
	m := len(ic.Rho)
	if m == 0 || len(ic.U) != m || len(ic.P) != m {
		err = fmt.Errorf("%w: initial field lengths rho/u/p = %d/%d/%d",
			ErrConfiguration, len(ic.Rho), len(ic.U), len(ic.P))
		return
	}
	if len(ic.V) != 0 && len(ic.V) != m {
		err = fmt.Errorf("%w: transverse field length %d != %d", ErrConfiguration, len(ic.V), m)
		return
	}
	if len(ic.V) != 0 && rp.Coord == Lagrangian {
		err = fmt.Errorf("%w: transverse velocity requires the Eulerian coordinate", ErrConfiguration)
		return
	}
	c = &Euler{RunParameters: rp, M: m}
	c.Rho = append([]float64(nil), ic.Rho...)
	c.U = append([]float64(nil), ic.U...)
	c.P = append([]float64(nil), ic.P...)
	c.E = make([]float64, m)
	if len(ic.V) != 0 {
		c.V = append([]float64(nil), ic.V...)
		c.vN = make([]float64, m)
		c.f4 = make([]float64, m+1)
		c.vFace = make([]float64, m+1)
	}
	for j := 0; j < m; j++ {
		s := riemann.State{Rho: c.Rho[j], U: c.U[j], P: c.P[j]}
		if !s.Valid(rp.Eps) {
			c = nil
			err = fmt.Errorf("%w at cell %d", ErrInitialState, j)
			return
		}
		c.E[j] = 0.5*c.U[j]*c.U[j] + c.P[j]/((rp.Gamma-1.)*c.Rho[j])
		if c.V != nil {
			c.E[j] += 0.5 * c.V[j] * c.V[j]
		}
	}
	if rp.Coord == Lagrangian {
		c.Mass = make([]float64, m)
		c.X = make([]float64, m+1)
		c.xN = make([]float64, m+1)
		for j := 0; j < m; j++ {
			c.Mass[j] = rp.H * c.Rho[j]
		}
		for j := 0; j <= m; j++ {
			c.X[j] = rp.H * float64(j)
		}
	}
	c.rhoN = make([]float64, m)
	c.uN = make([]float64, m)
	c.pN = make([]float64, m)
	c.eN = make([]float64, m)
	c.SRho = make([]float64, m)
	c.SU = make([]float64, m)
	c.SP = make([]float64, m)
	c.midRho = make([]float64, m+1)
	c.midU = make([]float64, m+1)
	c.midP = make([]float64, m+1)
	c.dRho = make([]float64, m+1)
	c.dU = make([]float64, m+1)
	c.dP = make([]float64, m+1)
	c.f1 = make([]float64, m+1)
	c.f2 = make([]float64, m+1)
	c.f3 = make([]float64, m+1)
	c.sums = make([]float64, m)
	return
}

// width is the current width of cell j.
func (c *Euler) width(j int) float64 {
	if c.Coord == Lagrangian {
		return c.X[j+1] - c.X[j]
	}
	return c.H
}

// Done reports whether the run has reached a terminal condition.
func (c *Euler) Done() bool {
	if c.forced || c.StepsTaken >= c.MaxSteps {
		return true
	}
	if math.IsNaN(c.Time) {
		return true
	}
	return c.Time > c.FinalTime-c.Eps
}

// Forced reports whether a star/update failure forced termination.
func (c *Euler) Forced() bool {
	return c.forced
}

// Totals sums the discretely conserved quantities over all cells. Under
// periodic boundaries they are invariant across steps.
func (c *Euler) Totals() (mass, mom, ener float64) {
	for j := 0; j < c.M; j++ {
		c.sums[j] = c.width(j) * c.Rho[j]
	}
	mass = floats.Sum(c.sums)
	for j := 0; j < c.M; j++ {
		c.sums[j] *= c.U[j]
	}
	mom = floats.Sum(c.sums)
	for j := 0; j < c.M; j++ {
		c.sums[j] = c.width(j) * c.Rho[j] * c.E[j]
	}
	ener = floats.Sum(c.sums)
	return
}

// Results is the final data handed to the result sink.
type Results struct {
	Rho, U, P, E []float64
	X            []float64 // interface coordinates, Lagrangian only
	Time         float64
	StepsTaken   int
	StepTimes    []time.Duration
}

func (c *Euler) Results() (r Results) {
	r.Rho = append([]float64(nil), c.Rho...)
	r.U = append([]float64(nil), c.U...)
	r.P = append([]float64(nil), c.P...)
	r.E = append([]float64(nil), c.E...)
	if c.X != nil {
		r.X = append([]float64(nil), c.X...)
	}
	r.Time = c.Time
	r.StepsTaken = c.StepsTaken
	r.StepTimes = append([]time.Duration(nil), c.StepTimes...)
	return
}

// LoadPrimitives replaces the current time level, rederiving total
// energy. Slope history is kept: the split 2D driver reloads the engine
// every sweep while the limiter memory stays per direction.
func (c *Euler) LoadPrimitives(rho, u, v, p []float64) error {
	if len(rho) != c.M || len(u) != c.M || len(p) != c.M {
		return fmt.Errorf("%w: field length != %d", ErrConfiguration, c.M)
	}
	if c.V != nil && len(v) != c.M {
		return fmt.Errorf("%w: transverse field length != %d", ErrConfiguration, c.M)
	}
	copy(c.Rho, rho)
	copy(c.U, u)
	copy(c.P, p)
	if c.V != nil {
		copy(c.V, v)
	}
	for j := 0; j < c.M; j++ {
		c.E[j] = 0.5*c.U[j]*c.U[j] + c.P[j]/((c.Gamma-1.)*c.Rho[j])
		if c.V != nil {
			c.E[j] += 0.5 * c.V[j] * c.V[j]
		}
	}
	c.haveBound = false
	return nil
}

// WaveSpeedBound is min over cells of width/(|u|+c), the cell-based CFL
// bound the split 2D driver uses to pick a shared step length.
func (c *Euler) WaveSpeedBound() (hs float64) {
	hs = math.Inf(1)
	for j := 0; j < c.M; j++ {
		cs := math.Sqrt(c.Gamma * c.P[j] / c.Rho[j])
		hs = math.Min(hs, c.width(j)/(math.Abs(c.U[j])+cs))
	}
	return
}

func (c *Euler) swap() {
	c.Rho, c.rhoN = c.rhoN, c.Rho
	c.U, c.uN = c.uN, c.U
	c.P, c.pN = c.pN, c.P
	c.E, c.eN = c.eN, c.E
	if c.V != nil {
		c.V, c.vN = c.vN, c.V
	}
	if c.X != nil {
		c.X, c.xN = c.xN, c.X
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
