package geometry2D

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Mesh families on [-1,1]x[-1,1]
type MeshType uint8

const (
	StructuredQuads MeshType = iota
	PerturbedQuads
	StructuredTriangles
	MedianDual
	Reference
)

var (
	MeshTypeNames = map[string]MeshType{
		"quad":      StructuredQuads,
		"perturbed": PerturbedQuads,
		"triangle":  StructuredTriangles,
		"dual":      MedianDual,
		"reference": Reference,
	}
	MeshTypePrintNames = []string{"quad", "perturbed", "triangle", "dual", "reference"}
)

func (mt MeshType) String() string { return MeshTypePrintNames[mt] }

func NewMeshType(label string) (mt MeshType, err error) {
	var ok bool
	if mt, ok = MeshTypeNames[label]; !ok {
		err = fmt.Errorf("unknown mesh type %q, choose one of %v", label, MeshTypePrintNames)
	}
	return
}

// NewMesh generates an N x N refinement of the chosen family
func NewMesh(mt MeshType, N int, perturbation float64, seed int64) (pm *PolyMesh, err error) {
	switch mt {
	case StructuredQuads:
		return NewStructuredQuadMesh(N)
	case PerturbedQuads:
		return NewPerturbedQuadMesh(N, perturbation, seed)
	case StructuredTriangles:
		return NewTriangleMesh(N)
	case MedianDual:
		return NewMedianDualMesh(N)
	case Reference:
		return NewReferenceMesh()
	}
	return nil, fmt.Errorf("unknown mesh type %d", mt)
}

func gridNodes(N int) (nodes []Point) {
	var (
		h = 2. / float64(N)
	)
	nodes = make([]Point, (N+1)*(N+1))
	for j := 0; j <= N; j++ {
		for i := 0; i <= N; i++ {
			nodes[i+j*(N+1)] = NewPoint(-1+float64(i)*h, -1+float64(j)*h)
		}
	}
	// Hit the boundary exactly
	for j := 0; j <= N; j++ {
		nodes[N+j*(N+1)].X[0] = 1
		nodes[j+N*(N+1)].X[1] = 1
	}
	return
}

func gridQuads(N int) (EToV [][]int) {
	node := func(i, j int) int { return i + j*(N+1) }
	EToV = make([][]int, 0, N*N)
	for j := 0; j < N; j++ {
		for i := 0; i < N; i++ {
			EToV = append(EToV, []int{node(i, j), node(i+1, j), node(i+1, j+1), node(i, j+1)})
		}
	}
	return
}

func NewStructuredQuadMesh(N int) (pm *PolyMesh, err error) {
	if N < 1 {
		return nil, fmt.Errorf("mesh refinement must be at least 1, have %d", N)
	}
	return NewPolyMeshFromElements(gridNodes(N), gridQuads(N))
}

/*
NewPerturbedQuadMesh moves every interior node of the structured grid by a uniform random offset
of at most perturbation*h in each direction. The same seed always produces the same mesh.
*/
func NewPerturbedQuadMesh(N int, perturbation float64, seed int64) (pm *PolyMesh, err error) {
	if N < 1 {
		return nil, fmt.Errorf("mesh refinement must be at least 1, have %d", N)
	}
	if perturbation < 0 || perturbation >= 0.5 {
		return nil, fmt.Errorf("perturbation must be in [0,0.5), have %g", perturbation)
	}
	var (
		nodes = gridNodes(N)
		h     = 2. / float64(N)
		rnd   = rand.New(rand.NewSource(seed))
	)
	for j := 1; j < N; j++ {
		for i := 1; i < N; i++ {
			n := i + j*(N+1)
			nodes[n].X[0] += perturbation * h * (2*rnd.Float64() - 1)
			nodes[n].X[1] += perturbation * h * (2*rnd.Float64() - 1)
		}
	}
	return NewPolyMeshFromElements(nodes, gridQuads(N))
}

// NewTriangleMesh splits every structured quad along its lower left to upper right diagonal
func NewTriangleMesh(N int) (pm *PolyMesh, err error) {
	if N < 1 {
		return nil, fmt.Errorf("mesh refinement must be at least 1, have %d", N)
	}
	var (
		quads = gridQuads(N)
		EToV  = make([][]int, 0, 2*len(quads))
	)
	for _, q := range quads {
		EToV = append(EToV, []int{q[0], q[1], q[2]}, []int{q[0], q[2], q[3]})
	}
	return NewPolyMeshFromElements(gridNodes(N), EToV)
}

/*
NewMedianDualMesh builds the median dual of the structured triangle mesh: one polygon per triangle
mesh node, bounded by the triangle centroids and edge midpoints around it. Boundary cells also
include the boundary node itself. Cells have between 4 and 12 vertices.
*/
func NewMedianDualMesh(N int) (pm *PolyMesh, err error) {
	var (
		tm *PolyMesh
	)
	if tm, err = NewTriangleMesh(N); err != nil {
		return
	}
	var (
		Nv, Ne, K = tm.NumNodes(), tm.NumEdges(), tm.NumElements()
		// Dual nodes: triangle centroids, then edge midpoints, then boundary nodes
		nodes     = make([]Point, 0, K+Ne+len(tm.BoundaryNodes))
		bndNodeID = make(map[int]int)
		cells     = make([][]int, Nv)
	)
	for k := 0; k < K; k++ {
		nodes = append(nodes, tm.Element(k).Centroid)
	}
	nodes = append(nodes, tm.MidNodes...)
	for _, n := range tm.BoundaryNodes {
		bndNodeID[n] = len(nodes)
		nodes = append(nodes, tm.Nodes[n])
	}
	for e, en := range tm.EdgeNodes {
		for _, n := range en {
			cells[n] = append(cells[n], K+e)
		}
	}
	for k := 0; k < K; k++ {
		for _, v := range tm.Element(k).Vertices {
			cells[v] = append(cells[v], k)
		}
	}
	EToV := make([][]int, Nv)
	for n := 0; n < Nv; n++ {
		var (
			center = tm.Nodes[n]
			verts  = cells[n]
		)
		if tm.IsBoundaryNode(n) {
			// Sort around a point inside the cell so the boundary gap sits between two midpoints
			var c Point
			for _, v := range verts {
				c = c.Plus(nodes[v])
			}
			center = c.Scale(1. / float64(len(verts)))
		}
		angle := func(v int) float64 {
			d := nodes[v].Minus(center)
			return math.Atan2(d.X[1], d.X[0])
		}
		sort.Slice(verts, func(i, j int) bool { return angle(verts[i]) < angle(verts[j]) })
		if tm.IsBoundaryNode(n) {
			if verts, err = insertBoundaryNode(tm, n, verts, K, bndNodeID[n]); err != nil {
				return
			}
		}
		EToV[n] = verts
	}
	return NewPolyMeshFromElements(nodes, EToV)
}

// insertBoundaryNode places the node between the midpoints of its two boundary edges
func insertBoundaryNode(tm *PolyMesh, n int, verts []int, K, nodeID int) (loop []int, err error) {
	var (
		nv = len(verts)
	)
	isBoundaryMid := func(v int) bool {
		if v < K {
			return false
		}
		e := v - K
		en := tm.EdgeNodes[e]
		return tm.IsBoundaryEdge(e) && (en[0] == n || en[1] == n)
	}
	for i := 0; i < nv; i++ {
		if isBoundaryMid(verts[i]) && isBoundaryMid(verts[(i+1)%nv]) {
			loop = make([]int, 0, nv+1)
			for j := 1; j <= nv; j++ {
				loop = append(loop, verts[(i+j)%nv])
			}
			loop = append(loop, nodeID)
			return
		}
	}
	err = fmt.Errorf("boundary node %d: boundary edge midpoints are not adjacent in the dual cell", n)
	return
}

/*
NewReferenceMesh is the 2 x 2 quad mesh of [-1,1]x[-1,1] with a fixed, deliberately irregular edge
numbering and mixed orientations. Element 0 is the unit square [0,1]x[-1,0].
*/
func NewReferenceMesh() (pm *PolyMesh, err error) {
	var (
		nodes = []Point{
			{X: [2]float64{-1, -1}}, {X: [2]float64{0, -1}}, {X: [2]float64{1, -1}},
			{X: [2]float64{-1, 0}}, {X: [2]float64{0, 0}}, {X: [2]float64{1, 0}},
			{X: [2]float64{-1, 1}}, {X: [2]float64{0, 1}}, {X: [2]float64{1, 1}},
		}
		edgeNodes = [][2]int{
			{0, 1}, {4, 1}, {8, 5}, {4, 7}, {7, 8}, {6, 7},
			{3, 6}, {0, 3}, {5, 2}, {1, 2}, {3, 4}, {4, 5},
		}
		elementEdges = [][]int{{9, 8, 11, 1}, {0, 1, 10, 7}, {10, 3, 5, 6}, {11, 2, 4, 3}}
		orientations = [][]int{{1, -1, -1, 1}, {1, -1, -1, -1}, {1, 1, -1, -1}, {1, -1, -1, -1}}
	)
	return NewPolyMesh(nodes, edgeNodes, elementEdges, orientations)
}
