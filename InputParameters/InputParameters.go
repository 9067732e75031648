package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Mesh selects a generated mesh family or a mesh file, File takes precedence
type MeshParameters struct {
	Type         string  `json:"Type"`
	N            int     `json:"N"`
	Perturbation float64 `json:"Perturbation"`
	Seed         int64   `json:"Seed"`
	File         string  `json:"File"`
}

// Parameters obtained from the YAML input file
type MHDParameters struct {
	Title          string         `json:"Title"`
	Re             float64        `json:"Re"`
	Rm             float64        `json:"Rm"`
	DT             float64        `json:"DT"`
	Theta          float64        `json:"Theta"`
	FinalTime      float64        `json:"FinalTime"`
	Mesh           MeshParameters `json:"Mesh"`
	Case           string         `json:"Case"`
	Layout         string         `json:"Layout"`
	ParallelDegree int            `json:"ParallelDegree"`
	EdgeRule       string         `json:"EdgeRule"`   // lobatto or legendre, for edge flux sampling
	EdgePoints     int            `json:"EdgePoints"` // Number of edge quadrature points
}

// NewMHDParameters returns the defaults that an input file overrides
func NewMHDParameters() *MHDParameters {
	return &MHDParameters{
		Title:      "MHD",
		Re:         1,
		Rm:         1,
		DT:         0.01,
		Theta:      0.5,
		Mesh:       MeshParameters{Type: "quad", N: 4},
		Case:       "quadratic",
		Layout:     "dirichlet",
		EdgeRule:   "lobatto",
		EdgePoints: 7,
	}
}

func (ip *MHDParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *MHDParameters) Validate() error {
	switch {
	case ip.Re <= 0 || ip.Rm <= 0:
		return fmt.Errorf("Re and Rm must be positive, have %g and %g", ip.Re, ip.Rm)
	case ip.DT <= 0:
		return fmt.Errorf("DT must be positive, have %g", ip.DT)
	case ip.Theta < 0 || ip.Theta > 1:
		return fmt.Errorf("Theta must be in [0,1], have %g", ip.Theta)
	case ip.FinalTime < 0:
		return fmt.Errorf("FinalTime must not be negative, have %g", ip.FinalTime)
	case len(ip.Mesh.File) == 0 && ip.Mesh.N < 1:
		return fmt.Errorf("Mesh.N must be at least 1 for a generated mesh, have %d", ip.Mesh.N)
	case ip.Mesh.Perturbation < 0 || ip.Mesh.Perturbation >= 0.5:
		return fmt.Errorf("Mesh.Perturbation must be in [0,0.5), have %g", ip.Mesh.Perturbation)
	case ip.ParallelDegree < 0:
		return fmt.Errorf("ParallelDegree must not be negative, have %d", ip.ParallelDegree)
	case ip.EdgePoints < 2:
		return fmt.Errorf("EdgePoints must be at least 2, have %d", ip.EdgePoints)
	}
	return nil
}

func (ip *MHDParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Re\n", ip.Re)
	fmt.Printf("%8.5f\t\t= Rm\n", ip.Rm)
	fmt.Printf("%8.5f\t\t= DT\n", ip.DT)
	fmt.Printf("%8.5f\t\t= Theta\n", ip.Theta)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	if len(ip.Mesh.File) != 0 {
		fmt.Printf("[%s]\t\t= Mesh File\n", ip.Mesh.File)
	} else {
		fmt.Printf("[%s] N = %d, Perturbation = %4.2f, Seed = %d\t= Mesh\n",
			ip.Mesh.Type, ip.Mesh.N, ip.Mesh.Perturbation, ip.Mesh.Seed)
	}
	fmt.Printf("[%s]\t\t= Case\n", ip.Case)
	fmt.Printf("[%s]\t\t= Layout\n", ip.Layout)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	fmt.Printf("[%s] %d points\t= Edge Rule\n", ip.EdgeRule, ip.EdgePoints)
}
