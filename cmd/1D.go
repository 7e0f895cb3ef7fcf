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
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/hydrocode/FV1D"
	"github.com/notargets/hydrocode/InputParameters"
	"github.com/notargets/hydrocode/fileio"
)

// Exit codes distinguish the failure classes for scripting.
const (
	exitConfiguration = 2
	exitInitialState  = 3
	exitSolver        = 4
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional shock tube solver",
	Long: `
Runs the finite volume Godunov (order 1) or GRP (order 2) scheme on a
1D Riemann problem. Without an input file the Sod shock tube preset is
used.

hydrocode 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		fmt.Println("1D called")
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.OutDir, _ = cmd.Flags().GetString("outDir")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		ip := processInput1D(m1d, cmd)
		Run1D(m1d, ip)
	},
}

type Model1D struct {
	ICFile  string
	OutDir  string
	Graph   bool
	Profile bool
	Delay   time.Duration
}

func processInput1D(m1d *Model1D, cmd *cobra.Command) (ip *InputParameters.InputParameters1D) {
	ip = InputParameters.DefaultSod()
	if len(m1d.ICFile) != 0 {
		ip = InputParameters.NewInputParameters1D()
		data, err := ioutil.ReadFile(m1d.ICFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(exitConfiguration)
		}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(exitConfiguration)
		}
	}
	// Flags override the input file
	if cmd.Flags().Changed("finalTime") {
		ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	}
	if cmd.Flags().Changed("CFL") {
		ip.CFL, _ = cmd.Flags().GetFloat64("CFL")
	}
	if cmd.Flags().Changed("k") {
		ip.NCells, _ = cmd.Flags().GetInt("k")
	}
	if cmd.Flags().Changed("order") {
		ip.Order, _ = cmd.Flags().GetInt("order")
	}
	if cmd.Flags().Changed("coordinate") {
		ip.Coordinate, _ = cmd.Flags().GetString("coordinate")
	}
	if cmd.Flags().Changed("bc") {
		ip.BoundaryCondition, _ = cmd.Flags().GetString("bc")
	}
	if cmd.Flags().Changed("alpha") {
		ip.Alpha, _ = cmd.Flags().GetFloat64("alpha")
	}
	if cmd.Flags().Changed("maxSteps") {
		ip.MaxSteps, _ = cmd.Flags().GetInt("maxSteps")
	}
	return
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with run parameters and initial regions")
	OneDCmd.Flags().StringP("outDir", "o", "", "directory for result files; no output files if empty")
	OneDCmd.Flags().IntP("k", "k", 200, "Number of cells in model")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().IntP("order", "n", 2, "scheme order: 1 = Godunov, 2 = GRP")
	OneDCmd.Flags().Float64("CFL", 0.45, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("finalTime", 0.2, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().Float64("alpha", 1.9, "limiter parameter, 0 reduces to first order")
	OneDCmd.Flags().Int("maxSteps", 1000000, "step cap for the run")
	OneDCmd.Flags().String("coordinate", "EUL", "coordinate framework: EUL or LAG")
	OneDCmd.Flags().String("bc", "free", "boundary condition: initial, reflective, free, periodic, reflective-free")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) {
	ip.Print()
	rp, err := ip.RunParameters()
	exitOn(err)
	ic, err := ip.InitialCondition()
	exitOn(err)
	c, err := FV1D.NewEuler(rp, ic)
	exitOn(err)
	if m1d.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	exitOn(c.Run(m1d.Graph, m1d.Delay))
	if len(m1d.OutDir) != 0 {
		exitOn(fileio.WriteResults(m1d.OutDir, c.Results(), rp))
	}
}

func exitOn(err error) {
	if err == nil {
		return
	}
	fmt.Printf("error: %s\n", err.Error())
	switch {
	case errors.Is(err, FV1D.ErrConfiguration):
		os.Exit(exitConfiguration)
	case errors.Is(err, FV1D.ErrInitialState):
		os.Exit(exitInitialState)
	default:
		os.Exit(exitSolver)
	}
}
