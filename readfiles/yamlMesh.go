package readfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/notargets/gomhd/geometry2D"
)

/*
MeshFile is the YAML polygon mesh format:

	Title: "two squares"
	Nodes: [[0, 0], [1, 0], [2, 0], [0, 1], [1, 1], [2, 1]]
	Elements: [[0, 1, 4, 3], [1, 2, 5, 4]]

Element vertex lists may be given in either rotational order.
*/
type MeshFile struct {
	Title    string       `json:"Title,omitempty"`
	Nodes    [][2]float64 `json:"Nodes"`
	Elements [][]int      `json:"Elements"`
}

func (mf *MeshFile) Parse(data []byte) error {
	return yaml.Unmarshal(data, mf)
}

func (mf *MeshFile) ToPolyMesh() (pm *geometry2D.PolyMesh, err error) {
	if len(mf.Nodes) == 0 || len(mf.Elements) == 0 {
		return nil, fmt.Errorf("mesh file %q has %d nodes and %d elements",
			mf.Title, len(mf.Nodes), len(mf.Elements))
	}
	nodes := make([]geometry2D.Point, len(mf.Nodes))
	for i, xy := range mf.Nodes {
		nodes[i] = geometry2D.NewPoint(xy[0], xy[1])
	}
	return geometry2D.NewPolyMeshFromElements(nodes, mf.Elements)
}

// NewMeshFile records the nodes and the counterclockwise vertex loop of each element
func NewMeshFile(title string, pm *geometry2D.PolyMesh) (mf *MeshFile) {
	mf = &MeshFile{Title: title}
	mf.Nodes = make([][2]float64, pm.NumNodes())
	for i, pt := range pm.Nodes {
		mf.Nodes[i] = pt.X
	}
	mf.Elements = make([][]int, pm.NumElements())
	for k := range mf.Elements {
		mf.Elements[k] = append([]int{}, pm.Element(k).Vertices...)
	}
	return
}

func ReadYAMLMesh(filename string, verbose bool) (pm *geometry2D.PolyMesh, err error) {
	var (
		data []byte
		mf   = &MeshFile{}
	)
	if verbose {
		fmt.Printf("Reading YAML mesh file named: %s\n", filename)
	}
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	if err = mf.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", filename, err)
	}
	return mf.ToPolyMesh()
}

func WriteYAMLMesh(filename, title string, pm *geometry2D.PolyMesh) (err error) {
	var (
		data []byte
	)
	if data, err = yaml.Marshal(NewMeshFile(title, pm)); err != nil {
		return
	}
	return os.WriteFile(filename, data, 0644)
}

// ReadMesh dispatches on the file extension, .su2 or .yaml/.yml
func ReadMesh(filename string, verbose bool) (pm *geometry2D.PolyMesh, err error) {
	switch ext := extension(filename); ext {
	case ".su2":
		pm, _, err = ReadSU2(filename, verbose)
	case ".yaml", ".yml":
		pm, err = ReadYAMLMesh(filename, verbose)
	default:
		err = fmt.Errorf("unknown mesh file extension %q", ext)
	}
	return
}

func extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
