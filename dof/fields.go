package dof

import (
	"fmt"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/quadrature"
)

// Boundary, source and initial data are plain functions of position and time
type ScalarField func(x, y, t float64) float64

type VectorField func(x, y, t float64) (vx, vy float64)

func ConstantScalar(c float64) ScalarField {
	return func(x, y, t float64) float64 { return c }
}

func ConstantVector(cx, cy float64) VectorField {
	return func(x, y, t float64) (float64, float64) { return cx, cy }
}

type Kind uint8

const (
	NodeDOF Kind = iota
	EdgeDOF
	MidEdgeDOF
	ElementDOF
)

func (k Kind) String() string {
	switch k {
	case NodeDOF:
		return "node"
	case EdgeDOF:
		return "edge"
	case MidEdgeDOF:
		return "midedge"
	case ElementDOF:
		return "element"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Manager converts between continuous fields, global dof arrays and element local vectors of one mesh
type Manager struct {
	Mesh     *geometry2D.PolyMesh
	EdgeRule quadrature.Rule1D // Used by EdgeCirculation
}

func NewManager(pm *geometry2D.PolyMesh) *Manager {
	return &Manager{Mesh: pm, EdgeRule: quadrature.Lobatto7}
}

// Size is the global length of a dof array of the given kind
func (m *Manager) Size(kind Kind) int {
	switch kind {
	case NodeDOF:
		return m.Mesh.NumNodes()
	case EdgeDOF, MidEdgeDOF:
		return m.Mesh.NumEdges()
	case ElementDOF:
		return m.Mesh.NumElements()
	}
	panic(fmt.Errorf("unknown dof kind %v", kind))
}

// Points are the sample locations of a dof kind, element dofs sit at centroids
func (m *Manager) Points(kind Kind) (pts []geometry2D.Point) {
	switch kind {
	case NodeDOF:
		return m.Mesh.Nodes
	case EdgeDOF, MidEdgeDOF:
		return m.Mesh.MidNodes
	case ElementDOF:
		pts = make([]geometry2D.Point, m.Mesh.NumElements())
		for k := range pts {
			pts[k] = m.Mesh.Element(k).Centroid
		}
		return
	}
	panic(fmt.Errorf("unknown dof kind %v", kind))
}

// SampleNodal evaluates f at each point, in point order
func SampleNodal(f ScalarField, pts []geometry2D.Point, t float64) (v []float64) {
	v = make([]float64, len(pts))
	for i, pt := range pts {
		v[i] = f(pt.X[0], pt.X[1], t)
	}
	return
}

func SampleVector(f VectorField, pts []geometry2D.Point, t float64) (vx, vy []float64) {
	vx, vy = make([]float64, len(pts)), make([]float64, len(pts))
	for i, pt := range pts {
		vx[i], vy[i] = f(pt.X[0], pt.X[1], t)
	}
	return
}

// DecomposeVectorArray splits 2-vectors into their coordinate arrays
func DecomposeVectorArray(pairs [][2]float64) (x, y []float64) {
	x, y = make([]float64, len(pairs)), make([]float64, len(pairs))
	for i, p := range pairs {
		x[i], y[i] = p[0], p[1]
	}
	return
}

/*
EdgeCirculation returns, per edge, the average of f.n along the edge, where n is the unit normal
to the right of the global edge direction. The line integral uses EdgeRule, the 7 point Lobatto
rule unless changed.
*/
func (m *Manager) EdgeCirculation(f VectorField, t float64) (b []float64) {
	var (
		pm = m.Mesh
	)
	b = make([]float64, pm.NumEdges())
	for e := range b {
		var (
			p1, p2 = pm.EdgeEndpoints(e)
			nx, ny = pm.EdgeNormal(e)
		)
		flux := m.EdgeRule.IntegrateEdge(p1.X[0], p1.X[1], p2.X[0], p2.X[1], func(x, y float64) float64 {
			fx, fy := f(x, y, t)
			return fx*nx + fy*ny
		})
		b[e] = flux / pm.EdgeLength(e)
	}
	return
}

// PressureDOFs samples f at element centroids
func (m *Manager) PressureDOFs(f ScalarField, t float64) []float64 {
	return SampleNodal(f, m.Points(ElementDOF), t)
}
