package riemann

import (
	"errors"
	"math"
)

/*
	Exact and generalized Riemann solvers for the 1D compressible Euler
	equations of a perfect gas.

	The exact solver iterates on the star region pressure using the
	shock / rarefaction pressure functions, then backs out the star
	velocity and the star densities either side of the contact.
*/

// MaxIter caps the Newton iteration on the star pressure.
const MaxIter = 100

var (
	ErrVacuum        = errors.New("riemann: vacuum generated, no positive star pressure exists")
	ErrNoConvergence = errors.New("riemann: star pressure iteration did not converge")
	ErrNonPhysical   = errors.New("riemann: non-positive density or pressure")
)

// State is a primitive variable triple.
type State struct {
	Rho, U, P float64
}

// SoundSpeed is c = sqrt(gamma*p/rho). The caller must have validated
// rho > 0; a non-positive density yields NaN.
func (s State) SoundSpeed(gamma float64) float64 {
	return math.Sqrt(gamma * s.P / s.Rho)
}

// Valid reports whether the state is finite with positive density and
// pressure above floor.
func (s State) Valid(floor float64) bool {
	if !isFinite(s.Rho) || !isFinite(s.U) || !isFinite(s.P) {
		return false
	}
	return s.Rho >= floor && s.P >= floor
}

type WaveType uint8

const (
	Shock WaveType = iota
	Rarefaction
)

func (w WaveType) String() string {
	if w == Rarefaction {
		return "Rarefaction"
	}
	return "Shock"
}

// Star holds the resolved intermediate region between the two acoustic
// waves. Density is discontinuous across the contact, so it is carried
// per side together with the star sound speeds.
type Star struct {
	P, U        float64
	RhoL, RhoR  float64
	CL, CR      float64
	Left, Right WaveType
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
