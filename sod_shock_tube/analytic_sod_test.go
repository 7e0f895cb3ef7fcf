package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWavePositions(t *testing.T) {
	// Shock speed for Sod is about 1.7522, contact about 0.9274
	x1, x2, x3, x4 := WavePositions(0.1)
	assert.InDelta(t, 0.5-0.11832, x1, 0.0001)
	assert.InDelta(t, 0.5+0.09274, x3, 0.0001)
	assert.InDelta(t, 0.5+0.17522, x4, 0.0001)
	assert.True(t, x1 < x2 && x2 < x3 && x3 < x4)
	_, _, _, x4 = WavePositions(0.2)
	assert.InDelta(t, 0.8504, x4, 0.0001)
}

func TestEvalRegions(t *testing.T) {
	const tt = 0.15
	x1, x2, x3, x4 := WavePositions(tt)
	// Undisturbed far fields
	w := Eval(0.5*x1, tt)
	assert.InDelta(t, LeftState.Rho, w.Rho, 1.e-10)
	w = Eval(0.5*(x4+1), tt)
	assert.InDelta(t, RightState.Rho, w.Rho, 1.e-10)
	// Star region values between tail and shock
	w = Eval(0.5*(x2+x3), tt)
	assert.InDelta(t, 0.30313, w.P, 0.0001)
	assert.InDelta(t, 0.92745, w.U, 0.0001)
	assert.InDelta(t, 0.42632, w.Rho, 0.0001)
	w = Eval(0.5*(x3+x4), tt)
	assert.InDelta(t, 0.30313, w.P, 0.0001)
	assert.InDelta(t, 0.26557, w.Rho, 0.0001)
	// Density is monotone non-increasing left to right at fixed t
	prev := math.Inf(1)
	for x := 0.01; x < 1; x += 0.01 {
		w = Eval(x, tt)
		assert.True(t, w.Rho <= prev+1.e-10)
		prev = w.Rho
	}
}

func TestCalcGrid(t *testing.T) {
	X, Rho, P, U, E, _, _, _, x4 := Calc(0.1)
	assert.Equal(t, len(X), len(Rho))
	assert.Equal(t, len(X), len(P))
	assert.Equal(t, len(X), len(U))
	assert.Equal(t, len(X), len(E))
	assert.InDelta(t, 0.6752, x4, 0.0001)
	// Endpoints carry the initial data
	assert.InDelta(t, 1, Rho[0], 1.e-10)
	assert.InDelta(t, 0.125, Rho[len(Rho)-1], 1.e-10)
}
