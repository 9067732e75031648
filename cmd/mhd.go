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
	"io"
	"math"
	"os"
	"time"

	"github.com/notargets/gomhd/InputParameters"
	"github.com/notargets/gomhd/dof"
	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/model_problems/MHD2D"
	"github.com/notargets/gomhd/quadrature"
	"github.com/notargets/gomhd/readfiles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ModelMHD struct {
	ICFile  string
	Plot    bool
	Delay   time.Duration
	Verbose bool
}

// MHDCmd represents the mhd command
var MHDCmd = &cobra.Command{
	Use:   "mhd",
	Short: "Build the MHD discretization of an analytic case and report its diagnostics",
	Long: `
Builds the mesh, the mimetic and virtual element operators and the discrete state of an analytic
case, then steps the boundary and source data to FinalTime. At every step the interior unknowns
are set from the exact solution through the solver layout, and the discrete norms, their
deviation from the exact norms and the squared magnetic divergence are printed.

gomhd mhd -I params.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		m := &ModelMHD{}
		if m.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m.Plot, _ = cmd.Flags().GetBool("plot")
		dr, _ := cmd.Flags().GetInt("delay")
		m.Delay = time.Duration(dr) * time.Second
		m.Verbose, _ = cmd.Flags().GetBool("verbose")
		ip, err := processInput(m.ICFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if err = RunMHD(m, ip, os.Stdout); err != nil {
			panic(err)
		}
	},
}

var exampleFile = `
########################################
Title: "Trig manufactured solution"
Re: 1
Rm: 1
DT: 0.01
Theta: 0.5
FinalTime: 0.1
Mesh:
  Type: perturbed # quad, perturbed, triangle, dual, reference
  N: 8
  Perturbation: 0.2
  Seed: 1
  # File: mesh.su2 # .su2 or .yaml, replaces the generated mesh
Case: trig # quadratic, constant, trig
Layout: mhd # dirichlet, flow, mhd
ParallelDegree: 0
EdgeRule: lobatto # lobatto, legendre
EdgePoints: 7
########################################
`

func init() {
	rootCmd.AddCommand(MHDCmd)
	MHDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Re, Rm\n\t- DT, Theta\n\t- Mesh, Case")
	MHDCmd.Flags().BoolP("plot", "g", false, "display the mesh before computing")
	MHDCmd.Flags().IntP("delay", "d", 10, "seconds to display the mesh plot")
	MHDCmd.Flags().BoolP("verbose", "v", false, "print construction details")
}

// processInput starts from the viper bound defaults, which an input file overrides
func processInput(ICFile string) (ip *InputParameters.MHDParameters, err error) {
	ip = InputParameters.NewMHDParameters()
	ip.Re = viper.GetFloat64("Re")
	ip.Rm = viper.GetFloat64("Rm")
	ip.DT = viper.GetFloat64("dt")
	ip.Theta = viper.GetFloat64("theta")
	ip.ParallelDegree = viper.GetInt("procs")
	if len(ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(ICFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", ICFile, err)
		}
	}
	err = ip.Validate()
	return
}

func NewMeshFromParameters(mp InputParameters.MeshParameters, verbose bool) (pm *geometry2D.PolyMesh, err error) {
	if len(mp.File) != 0 {
		return readfiles.ReadMesh(mp.File, verbose)
	}
	var mt geometry2D.MeshType
	if mt, err = geometry2D.NewMeshType(mp.Type); err != nil {
		return
	}
	return geometry2D.NewMesh(mt, mp.N, mp.Perturbation, mp.Seed)
}

func RunMHD(m *ModelMHD, ip *InputParameters.MHDParameters, w io.Writer) (err error) {
	var (
		pm *geometry2D.PolyMesh
		ct MHD2D.CaseType
		lt dof.LayoutType
		c  *MHD2D.MHD
		er quadrature.Rule1D
	)
	if m.Verbose {
		ip.Print()
	}
	if pm, err = NewMeshFromParameters(ip.Mesh, m.Verbose); err != nil {
		return
	}
	if m.Plot {
		readfiles.PlotMesh(pm, m.Delay)
	}
	if ct, err = MHD2D.NewCaseType(ip.Case); err != nil {
		return
	}
	if lt, err = dof.NewLayoutType(ip.Layout); err != nil {
		return
	}
	if er, err = quadrature.NewEdgeRule(ip.EdgeRule, ip.EdgePoints); err != nil {
		return
	}
	ac := MHD2D.NewAnalyticCase(ct, ip.Re, ip.Rm)
	if c, err = MHD2D.NewMHD(pm, ip.Re, ip.Rm, ac.U, ac.B, ip.DT, ip.Theta, ip.ParallelDegree, m.Verbose); err != nil {
		return
	}
	c.SetEdgeRule(er, ac.B)
	c.SetElectricAndPressure(ac.E, ac.P, 0)
	c.SetCase(ac)
	c.SetLayout(lt)
	fmt.Fprintf(w, "%s, %s layout, %d unknowns, h = %8.5f\n", ct.Print(), lt, c.NumDOF(), pm.MeshSize())
	fmt.Fprintf(w, "%6s %10s %12s %12s %12s %12s %12s %12s %12s\n",
		"step", "time", "|u|", "|grad u|", "|B|", "|E|", "|p|", "dev |u|", "divB^2")
	nSteps := int(math.Ceil(ip.FinalTime/ip.DT - 1.e-9))
	if nSteps < 1 {
		nSteps = 1
	}
	for step := 0; step < nSteps; step++ {
		t := float64(step) * ip.DT
		if err = c.UpdateBoundary(t); err != nil {
			return
		}
		c.UpdateSources(t)
		tt := c.ThetaTime(t)
		var (
			x      []float64
			dn, rn MHD2D.Norms
			exact  = c.SampleCase(ac, tt)
		)
		if x, err = c.PackFields(exact); err != nil {
			return
		}
		if err = c.UpdateInterior(x); err != nil {
			return
		}
		if dn, err = c.ComputeNorms(c.Snapshot()); err != nil {
			return
		}
		if rn, err = c.ReferenceNorms(ac, tt); err != nil {
			return
		}
		fmt.Fprintf(w, "%6d %10.5f %12.5e %12.5e %12.5e %12.5e %12.5e %12.5e %12.5e\n",
			step, tt, dn.VelocityL2, dn.VelocityH1, dn.MagneticL2, dn.ElectricL2, dn.PressureL2,
			dn.Deviation(rn).VelocityL2, dn.DivBSquared)
	}
	return
}
