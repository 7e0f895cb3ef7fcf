package limiter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinmod2(t *testing.T) {
	// Opposite signs or a zero argument give a flat slope
	assert.Equal(t, 0., Minmod2(1, -1))
	assert.Equal(t, 0., Minmod2(-2, 3))
	assert.Equal(t, 0., Minmod2(0, 5))
	assert.Equal(t, 0., Minmod2(5, 0))
	assert.Equal(t, 0., Minmod2(0, 0))
	// Agreement selects the smaller magnitude, sign preserved
	assert.Equal(t, 1., Minmod2(1, 2))
	assert.Equal(t, 1., Minmod2(2, 1))
	assert.Equal(t, -1., Minmod2(-1, -2))
	assert.Equal(t, -0.5, Minmod2(-3, -0.5))
}

func TestMinmod3(t *testing.T) {
	assert.Equal(t, 1., Minmod3(1, 2, 3))
	assert.Equal(t, 1., Minmod3(3, 2, 1))
	assert.Equal(t, -1., Minmod3(-2, -1, -3))
	// Any disagreement or zero flattens the slope
	assert.Equal(t, 0., Minmod3(1, -2, 3))
	assert.Equal(t, 0., Minmod3(1, 2, -3))
	assert.Equal(t, 0., Minmod3(-1, -2, 3))
	assert.Equal(t, 0., Minmod3(0, 2, 3))
	assert.Equal(t, 0., Minmod3(1, 2, 0))
}

func TestMinmodBounds(t *testing.T) {
	// |minmod3(a,b,c)| <= min(|a|,|b|,|c|) over a sign-agreeing sample
	vals := []float64{0.1, 0.5, 1, 2, 7}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				s := Minmod3(a, b, c)
				bound := math.Min(a, math.Min(b, c))
				assert.True(t, math.Abs(s) <= bound+1.e-15)
				s = Minmod3(-a, -b, -c)
				assert.True(t, math.Abs(s) <= bound+1.e-15)
				// minmod2 special case: zero third argument kills the slope
				assert.Equal(t, 0., Minmod3(a, b, 0))
			}
		}
	}
}
