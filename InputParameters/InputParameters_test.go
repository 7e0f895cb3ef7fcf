package InputParameters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/hydrocode/FV1D"
)

const sodYAML = `
Title: Sod shock tube
FinalTime: 0.2
CFL: 0.45
NCells: 200
Order: 2
Alpha: 1.9
Coordinate: LAG
BoundaryCondition: free
Regions:
  - {XMin: 0, XMax: 0.5, Rho: 1, U: 0, P: 1}
  - {XMin: 0.5, XMax: 1, Rho: 0.125, U: 0, P: 0.1}
`

func TestParse(t *testing.T) {
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse([]byte(sodYAML)))
	assert.Equal(t, "Sod shock tube", ip.Title)
	assert.Equal(t, 0.2, ip.FinalTime)
	assert.Equal(t, 200, ip.NCells)
	assert.Equal(t, "LAG", ip.Coordinate)
	require.Len(t, ip.Regions, 2)
	assert.Equal(t, 0.125, ip.Regions[1].Rho)
	// Unset slots keep the sentinel defaults
	assert.True(t, math.IsInf(ip.Tau, 1))
	assert.Equal(t, 1.4, ip.Gamma)
	assert.Equal(t, 1.e-9, ip.Eps)
}

func TestRunParameters(t *testing.T) {
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse([]byte(sodYAML)))
	rp, err := ip.RunParameters()
	require.NoError(t, err)
	assert.Equal(t, FV1D.Lagrangian, rp.Coord)
	assert.Equal(t, FV1D.BCFree, rp.BC)
	assert.InDelta(t, 1./200, rp.H, 1.e-15)
	assert.NoError(t, rp.Validate())
}

func TestInitialCondition(t *testing.T) {
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse([]byte(sodYAML)))
	ic, err := ip.InitialCondition()
	require.NoError(t, err)
	require.Len(t, ic.Rho, 200)
	assert.Equal(t, 1., ic.Rho[0])
	assert.Equal(t, 1., ic.Rho[99])
	assert.Equal(t, 0.125, ic.Rho[100])
	assert.Equal(t, 0.1, ic.P[199])
	assert.Nil(t, ic.V)
}

func TestInitialConditionGap(t *testing.T) {
	ip := NewInputParameters1D()
	ip.NCells = 10
	ip.Regions = []Region{
		{XMin: 0, XMax: 0.4, Rho: 1, P: 1},
		{XMin: 0.6, XMax: 1, Rho: 1, P: 1},
	}
	_, err := ip.InitialCondition()
	assert.ErrorIs(t, err, FV1D.ErrConfiguration)
}

func TestBadRegion(t *testing.T) {
	ip := NewInputParameters1D()
	ip.NCells = 10
	ip.Regions = []Region{{XMin: 1, XMax: 0.5, Rho: 1, P: 1}}
	_, err := ip.RunParameters()
	assert.ErrorIs(t, err, FV1D.ErrConfiguration)
	ip.Regions = nil
	_, err = ip.RunParameters()
	assert.ErrorIs(t, err, FV1D.ErrConfiguration)
}

func TestDefaultSodRuns(t *testing.T) {
	ip := DefaultSod()
	rp, err := ip.RunParameters()
	require.NoError(t, err)
	require.NoError(t, rp.Validate())
	ic, err := ip.InitialCondition()
	require.NoError(t, err)
	c, err := FV1D.NewEuler(rp, ic)
	require.NoError(t, err)
	require.NoError(t, c.StepWithTau(1.e-5))
	assert.Equal(t, 1, c.StepsTaken)
}

func TestTransverseVelocityRegions(t *testing.T) {
	ip := NewInputParameters1D()
	ip.NCells = 4
	ip.Regions = []Region{{XMin: 0, XMax: 1, Rho: 1, U: 0, V: 0.3, P: 1}}
	ic, err := ip.InitialCondition()
	require.NoError(t, err)
	require.Len(t, ic.V, 4)
	assert.Equal(t, 0.3, ic.V[2])
}
