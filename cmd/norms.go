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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/model_problems/MHD2D"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type NormStudy struct {
	Families     []string
	Refinements  []int
	Case         string
	Time         float64
	Re, Rm       float64
	Perturbation float64
	Seed         int64
	Procs        int
}

// NormsCmd represents the norms command
var NormsCmd = &cobra.Command{
	Use:   "norms",
	Short: "Discrete norms of an analytic case over mesh families and refinements, as CSV",
	Long: `
For every mesh family and refinement, samples an analytic case into the discrete spaces and
compares the virtual element, mimetic and pressure norms with the exact norms. The CSV output
is read by tools/convOrder.

gomhd norms --case trig --refinements 4,8,16,32 > norms.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ns  = &NormStudy{
				Re:    viper.GetFloat64("Re"),
				Rm:    viper.GetFloat64("Rm"),
				Procs: viper.GetInt("procs"),
			}
			out io.Writer = os.Stdout
		)
		ns.Families, _ = cmd.Flags().GetStringSlice("families")
		ns.Refinements, _ = cmd.Flags().GetIntSlice("refinements")
		ns.Case, _ = cmd.Flags().GetString("case")
		ns.Time, _ = cmd.Flags().GetFloat64("time")
		ns.Perturbation, _ = cmd.Flags().GetFloat64("perturbation")
		ns.Seed, _ = cmd.Flags().GetInt64("seed")
		if fileName, _ := cmd.Flags().GetString("output"); len(fileName) != 0 {
			var f *os.File
			if f, err = os.Create(fileName); err != nil {
				panic(err)
			}
			defer f.Close()
			out = f
		}
		if err = ns.Run(out); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(NormsCmd)
	NormsCmd.Flags().StringSlice("families", []string{"quad", "perturbed", "triangle", "dual"}, "mesh families")
	NormsCmd.Flags().IntSlice("refinements", []int{2, 4, 8, 16}, "N for each N x N mesh")
	NormsCmd.Flags().StringP("case", "c", "trig", "analytic case: quadratic, constant, trig")
	NormsCmd.Flags().Float64P("time", "t", 0, "time at which the case is sampled")
	NormsCmd.Flags().Float64("perturbation", 0.2, "node jitter of the perturbed family, fraction of h")
	NormsCmd.Flags().Int64("seed", 1, "random seed of the perturbed family")
	NormsCmd.Flags().StringP("output", "o", "", "CSV file, default is stdout")
}

var normHeader = []string{"family", "case", "N", "h", "ndof",
	"uL2", "uH1", "BL2", "EL2", "pL2", "divB2"}

// Run writes one CSV row per family and refinement with the deviation of each discrete norm
func (ns *NormStudy) Run(w io.Writer) (err error) {
	var (
		ct MHD2D.CaseType
		cw = csv.NewWriter(w)
		ff = func(v float64) string { return strconv.FormatFloat(v, 'e', 8, 64) }
	)
	if ct, err = MHD2D.NewCaseType(ns.Case); err != nil {
		return
	}
	ac := MHD2D.NewAnalyticCase(ct, ns.Re, ns.Rm)
	if err = cw.Write(normHeader); err != nil {
		return
	}
	for _, family := range ns.Families {
		var mt geometry2D.MeshType
		if mt, err = geometry2D.NewMeshType(family); err != nil {
			return
		}
		for _, N := range ns.Refinements {
			var (
				pm     *geometry2D.PolyMesh
				c      *MHD2D.MHD
				dn, rn MHD2D.Norms
			)
			if pm, err = geometry2D.NewMesh(mt, N, ns.Perturbation, ns.Seed); err != nil {
				return fmt.Errorf("%s mesh N = %d: %w", family, N, err)
			}
			if c, err = MHD2D.NewMHD(pm, ns.Re, ns.Rm, ac.U, ac.B, 1, 0, ns.Procs, false); err != nil {
				return
			}
			if dn, err = c.ComputeNorms(c.SampleCase(ac, ns.Time)); err != nil {
				return
			}
			if rn, err = c.ReferenceNorms(ac, ns.Time); err != nil {
				return
			}
			d := dn.Deviation(rn)
			if err = cw.Write([]string{family, ns.Case, strconv.Itoa(N), ff(pm.MeshSize()),
				strconv.Itoa(c.NumDOF()), ff(d.VelocityL2), ff(d.VelocityH1), ff(d.MagneticL2),
				ff(d.ElectricL2), ff(d.PressureL2), ff(d.DivBSquared)}); err != nil {
				return
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
