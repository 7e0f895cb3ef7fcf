package fileio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/hydrocode/FV1D"
)

func TestWriteAndReadBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	r := FV1D.Results{
		Rho:        []float64{1, 0.5, 0.125},
		U:          []float64{0, 0.9274, 0},
		P:          []float64{1, 0.30313, 0.1},
		E:          []float64{2.5, 2.1, 2},
		X:          []float64{0, 0.25, 0.5, 0.75},
		Time:       0.2,
		StepsTaken: 3,
		StepTimes:  []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
	}
	rp := FV1D.RunParameters{Gamma: 1.4, H: 0.25, Order: 2, Coord: FV1D.Lagrangian}
	require.NoError(t, WriteResults(dir, r, rp))

	rho, err := ReadField(filepath.Join(dir, "RHO.txt"))
	require.NoError(t, err)
	assert.Equal(t, r.Rho, rho)
	x, err := ReadField(filepath.Join(dir, "X.txt"))
	require.NoError(t, err)
	assert.Equal(t, r.X, x)

	logData, err := os.ReadFile(filepath.Join(dir, "log.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "steps = 3")
	assert.Contains(t, string(logData), "coordinate = LAG")
}

func TestNoMeshFileOnFixedGrid(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	r := FV1D.Results{
		Rho: []float64{1}, U: []float64{0}, P: []float64{1}, E: []float64{2.5},
	}
	rp := FV1D.RunParameters{Gamma: 1.4, H: 1, Order: 1, Coord: FV1D.Eulerian}
	require.NoError(t, WriteResults(dir, r, rp))
	_, err := os.Stat(filepath.Join(dir, "X.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadFieldErrors(t *testing.T) {
	_, err := ReadField(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1.0 nope 2.0"), 0644))
	_, err = ReadField(bad)
	assert.Error(t, err)
}
