package FV1D

import (
	"fmt"
	"time"
)

// Solve advances the run to the final time (or until the step cap or a
// forced termination), without graphics.
func (c *Euler) Solve() error {
	return c.Run(false)
}

// Run advances the run to completion, optionally plotting each step.
func (c *Euler) Run(showGraph bool, graphDelay ...time.Duration) (err error) {
	var (
		logFrequency = 50
	)
	for !c.Done() {
		if err = c.Step(); err != nil {
			return
		}
		c.Plot(showGraph, graphDelay)
		if c.StepsTaken%logFrequency == 0 || c.Done() {
			mass, mom, ener := c.Totals()
			fmt.Printf("Time = %8.4f, tstep = %6d, mass = %8.6f, mom = %8.6f, ener = %8.6f\n",
				c.Time, c.StepsTaken, mass, mom, ener)
		}
	}
	if c.StepsTaken >= c.MaxSteps && isFinite(c.FinalTime) && c.Time < c.FinalTime-c.Eps {
		fmt.Printf("Step cap %d reached at time %g before final time %g\n",
			c.MaxSteps, c.Time, c.FinalTime)
	}
	return
}
