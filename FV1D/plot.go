package FV1D

import (
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/hydrocode/sod_shock_tube"
)

type chartState struct {
	plotOnce   sync.Once
	chart      *chart2d.Chart2D
	colorMap   *utils2.ColorMap
	frameCount int
}

// centers returns the cell center coordinates of the current mesh.
func (c *Euler) centers() (x []float64) {
	x = make([]float64, c.M)
	for j := 0; j < c.M; j++ {
		if c.Coord == Lagrangian {
			x[j] = 0.5 * (c.X[j] + c.X[j+1])
		} else {
			x[j] = (float64(j) + 0.5) * c.H
		}
	}
	return
}

func (c *Euler) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		fmin, fmax = float32(-0.1), float32(2.6)
		xmax       = float32(c.H * float64(c.M))
	)
	if !showGraph {
		return
	}
	c.chart.plotOnce.Do(func() {
		c.chart.chart = chart2d.NewChart2D(1920, 1280, 0, xmax, fmin, fmax)
		c.chart.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.chart.Plot()
	})
	x := c.centers()
	pSeries := func(field []float64, name string, color float32, gl chart2d.GlyphType) {
		if err := c.chart.chart.AddSeries(name, x, field,
			gl, chart2d.Solid, c.chart.colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries(c.Rho, "Rho", -0.7, chart2d.NoGlyph)
	pSeries(c.U, "U", 0.0, chart2d.NoGlyph)
	pSeries(c.P, "P", 0.7, chart2d.NoGlyph)
	c.chart.frameCount++
	if c.chart.frameCount%10 == 0 || math.Abs(c.Time-c.FinalTime) < 0.001 {
		c.addAnalyticSod()
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

// addAnalyticSod overlays the exact Sod solution at the current time.
// Meaningful only for runs initialized with the Sod data; other runs
// simply get an extra reference curve.
func (c *Euler) addAnalyticSod() {
	if c.Time <= 0 {
		return
	}
	X, Rho, P, U, _, _, _, _, _ := sod_shock_tube.Calc(c.Time)
	add := func(x, field []float64, name string, color float32) {
		if err := c.chart.chart.AddSeries(name, x, field,
			chart2d.XGlyph, chart2d.NoLine, c.chart.colorMap.GetRGB(color)); err != nil {
			panic("unable to add exact solution " + name)
		}
	}
	add(X, Rho, "ExactRho", -0.7)
	add(X, U, "ExactU", 0.0)
	add(X, P, "ExactP", 0.7)
}
