/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/hydrocode/FV1D"
	"github.com/notargets/hydrocode/FV2D"
	"github.com/notargets/hydrocode/InputParameters"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Dimensionally split two dimensional solver",
	Long: `
Runs the split finite volume scheme on a Cartesian mesh. The initial
data is the 1D region list extruded along y, so the command covers
planar Riemann problems aligned with the x axis.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		ny, _ := cmd.Flags().GetInt("ny")
		hy, _ := cmd.Flags().GetFloat64("hy")
		ip := InputParameters.DefaultSod()
		if len(icFile) != 0 {
			ip = InputParameters.NewInputParameters1D()
			data, err := ioutil.ReadFile(icFile)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(exitConfiguration)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(exitConfiguration)
			}
		}
		Run2D(ip, ny, hy)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with run parameters and initial regions")
	TwoDCmd.Flags().Int("ny", 10, "number of cells along y")
	TwoDCmd.Flags().Float64("hy", 0, "cell size along y; 0 copies the x cell size")
}

func Run2D(ip *InputParameters.InputParameters1D, ny int, hy float64) {
	ip.Print()
	rp1, err := ip.RunParameters()
	exitOn(err)
	ic1, err := ip.InitialCondition()
	exitOn(err)
	if rp1.Coord != FV1D.Eulerian {
		exitOn(fmt.Errorf("%w: the split driver is Eulerian only", FV1D.ErrConfiguration))
	}
	if hy <= 0 {
		hy = rp1.H
	}
	rp := FV2D.RunParameters{
		Gamma:     rp1.Gamma,
		FinalTime: rp1.FinalTime,
		Eps:       rp1.Eps,
		MaxSteps:  rp1.MaxSteps,
		CFL:       rp1.CFL,
		Hx:        rp1.H,
		Hy:        hy,
		Alpha:     rp1.Alpha,
		Order:     rp1.Order,
		BC:        rp1.BC,
	}
	nx := len(ic1.Rho)
	ic := FV2D.InitialCondition{
		Rho: make([][]float64, ny),
		U:   make([][]float64, ny),
		V:   make([][]float64, ny),
		P:   make([][]float64, ny),
	}
	for iy := 0; iy < ny; iy++ {
		ic.Rho[iy] = append([]float64(nil), ic1.Rho...)
		ic.U[iy] = append([]float64(nil), ic1.U...)
		ic.P[iy] = append([]float64(nil), ic1.P...)
		if ic1.V != nil {
			ic.V[iy] = append([]float64(nil), ic1.V...)
		} else {
			ic.V[iy] = make([]float64, nx)
		}
	}
	c, err := FV2D.NewEuler(rp, ic)
	exitOn(err)
	exitOn(c.Solve())
}
