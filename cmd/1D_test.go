package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestProcessInput1D(t *testing.T) {
	var (
		err error
	)
	if err = OneDCmd.Flags().Set("finalTime", "0.14"); err != nil {
		panic(err)
	}
	if err = OneDCmd.Flags().Set("order", "1"); err != nil {
		panic(err)
	}
	if err = OneDCmd.Flags().Set("coordinate", "LAG"); err != nil {
		panic(err)
	}
	m1d := &Model1D{}
	ip := processInput1D(m1d, OneDCmd)
	// Flags override the Sod preset
	assert.Equal(t, ip.FinalTime, 0.14)
	assert.Equal(t, ip.Order, 1)
	assert.Equal(t, ip.Coordinate, "LAG")
	// Preset fields without an override survive
	assert.Equal(t, ip.NCells, 200)
	assert.Equal(t, ip.CFL, 0.45)
	ip.Print()
}
