package geometry2D

import (
	"fmt"
	"math"

	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

/*
Element is the geometry of one mesh cell in its own traversal order. Local edge i runs from
Vertices[i] to Vertices[i+1] (wrapping), and Signs[i] is +1 when that traversal agrees with the
global direction EdgeNodes[Edges[i]][0] -> EdgeNodes[Edges[i]][1].
The slices are shared with the mesh and must not be modified.
*/
type Element struct {
	ID       int
	Centroid Point
	Area     float64
	Vertices []int
	Edges    []int
	Signs    []int
	Poly     *Polygon
}

func (el Element) NumEdges() int { return len(el.Edges) }

type PolyMesh struct {
	Nodes         []Point
	EdgeNodes     [][2]int
	ElementEdges  [][]int
	Orientations  [][]int
	MidNodes      []Point
	EdgeElements  [][]int // One or two elements per edge
	BoundaryEdges utils.Index
	InteriorEdges utils.Index
	BoundaryNodes utils.Index
	InteriorNodes utils.Index
	elements      []Element
	isBoundary    []bool // per node
}

/*
NewPolyMesh builds the mesh from explicit connectivity. Element loops, orientations and areas
are validated here and any inconsistency is returned as a *types.GeometryError.
*/
func NewPolyMesh(nodes []Point, edgeNodes [][2]int, elementEdges, orientations [][]int) (pm *PolyMesh, err error) {
	var (
		Nv, Ne, K = len(nodes), len(edgeNodes), len(elementEdges)
	)
	if len(orientations) != K {
		err = types.NewDimensionError("orientations", len(orientations), K)
		return
	}
	for e, en := range edgeNodes {
		if en[0] < 0 || en[0] >= Nv || en[1] < 0 || en[1] >= Nv || en[0] == en[1] {
			err = types.NewGeometryError(-1, "edge %d has invalid nodes %v", e, en)
			return
		}
	}
	pm = &PolyMesh{
		Nodes:        nodes,
		EdgeNodes:    edgeNodes,
		ElementEdges: elementEdges,
		Orientations: orientations,
		MidNodes:     make([]Point, Ne),
		EdgeElements: make([][]int, Ne),
		elements:     make([]Element, K),
	}
	for k := 0; k < K; k++ {
		if pm.elements[k], err = pm.newElement(k); err != nil {
			return nil, err
		}
		for _, e := range elementEdges[k] {
			pm.EdgeElements[e] = append(pm.EdgeElements[e], k)
		}
	}
	for e, en := range edgeNodes {
		pm.MidNodes[e] = nodes[en[0]].Plus(nodes[en[1]]).Scale(0.5)
		switch len(pm.EdgeElements[e]) {
		case 0:
			return nil, types.NewGeometryError(-1, "edge %d belongs to no element", e)
		case 1:
			pm.BoundaryEdges = append(pm.BoundaryEdges, e)
		case 2:
			k1, k2 := pm.EdgeElements[e][0], pm.EdgeElements[e][1]
			if pm.signOf(k1, e)*pm.signOf(k2, e) != -1 {
				return nil, types.NewGeometryError(k2,
					"edge %d is traversed in the same direction by elements %d and %d", e, k1, k2)
			}
		default:
			return nil, types.NewGeometryError(pm.EdgeElements[e][2],
				"edge %d is shared by %d elements", e, len(pm.EdgeElements[e]))
		}
	}
	pm.InteriorEdges = pm.BoundaryEdges.Complement(Ne)
	pm.isBoundary = make([]bool, Nv)
	for _, e := range pm.BoundaryEdges {
		pm.isBoundary[edgeNodes[e][0]] = true
		pm.isBoundary[edgeNodes[e][1]] = true
	}
	for n, bnd := range pm.isBoundary {
		if bnd {
			pm.BoundaryNodes = append(pm.BoundaryNodes, n)
		} else {
			pm.InteriorNodes = append(pm.InteriorNodes, n)
		}
	}
	return
}

func (pm *PolyMesh) newElement(k int) (el Element, err error) {
	var (
		edges = pm.ElementEdges[k]
		signs = pm.Orientations[k]
		n     = len(edges)
		Ne    = len(pm.EdgeNodes)
	)
	if n < 3 {
		err = types.NewGeometryError(k, "%d edges, need at least 3", n)
		return
	}
	if len(signs) != n {
		err = types.NewGeometryError(k, "%d orientations for %d edges", len(signs), n)
		return
	}
	el = Element{
		ID:       k,
		Vertices: make([]int, n),
		Edges:    edges,
		Signs:    signs,
	}
	for i, e := range edges {
		if e < 0 || e >= Ne {
			err = types.NewGeometryError(k, "edge index %d out of range", e)
			return
		}
		switch signs[i] {
		case 1:
			el.Vertices[i] = pm.EdgeNodes[e][0]
		case -1:
			el.Vertices[i] = pm.EdgeNodes[e][1]
		default:
			err = types.NewGeometryError(k, "orientation %d of local edge %d is not +1 or -1", signs[i], i)
			return
		}
	}
	// The end of each local edge must be the start of the next one
	for i, e := range edges {
		end := pm.EdgeNodes[e][1]
		if signs[i] == -1 {
			end = pm.EdgeNodes[e][0]
		}
		if end != el.Vertices[(i+1)%n] {
			err = types.NewGeometryError(k, "local edges %d and %d do not share a vertex", i, (i+1)%n)
			return
		}
	}
	geom := make([]Point, n)
	for i, v := range el.Vertices {
		geom[i] = pm.Nodes[v]
	}
	el.Poly = NewPolygon(geom)
	if i, j, found := el.Poly.SelfIntersection(); found {
		err = types.NewGeometryError(k, "local edges %d and %d intersect, the element is not simple", i, j)
		return
	}
	el.Area = el.Poly.Area()
	h := el.Poly.Box.Diagonal()
	if el.Area <= utils.NODETOL*h*h {
		err = types.NewGeometryError(k, "area %g is not positive, the element is clockwise or degenerate", el.Area)
		return
	}
	el.Centroid = el.Poly.Centroid()
	return
}

func (pm *PolyMesh) signOf(k, e int) int {
	for i, ee := range pm.ElementEdges[k] {
		if ee == e {
			return pm.Orientations[k][i]
		}
	}
	return 0
}

/*
NewPolyMeshFromElements extracts unique edges from element vertex loops. Loops given clockwise
are reversed. The global direction of an edge is the traversal of the first element that visits it.
*/
func NewPolyMeshFromElements(nodes []Point, EToV [][]int) (pm *PolyMesh, err error) {
	var (
		K            = len(EToV)
		edgeIndex    = make(map[types.EdgeKey]int)
		edgeDir      []int
		edgeNodes    [][2]int
		elementEdges = make([][]int, K)
		orientations = make([][]int, K)
	)
	for k, verts := range EToV {
		n := len(verts)
		if n < 3 {
			err = types.NewGeometryError(k, "%d vertices, need at least 3", n)
			return
		}
		for _, v := range verts {
			if v < 0 || v >= len(nodes) {
				err = types.NewGeometryError(k, "vertex index %d out of range", v)
				return
			}
		}
		geom := make([]Point, n)
		for i, v := range verts {
			geom[i] = nodes[v]
		}
		loop := verts
		if NewPolygon(geom).Area() < 0 {
			loop = make([]int, n)
			for i := range verts {
				loop[i] = verts[n-1-i]
			}
		}
		elementEdges[k], orientations[k] = make([]int, n), make([]int, n)
		for i := 0; i < n; i++ {
			ei := types.NewEdgeInt([2]int{loop[i], loop[(i+1)%n]})
			key := ei.GetKey()
			e, ok := edgeIndex[key]
			if !ok {
				e = len(edgeNodes)
				edgeIndex[key] = e
				edgeNodes = append(edgeNodes, [2]int{loop[i], loop[(i+1)%n]})
				edgeDir = append(edgeDir, ei.Sign())
			}
			elementEdges[k][i] = e
			orientations[k][i] = ei.Sign() * edgeDir[e]
		}
	}
	return NewPolyMesh(nodes, edgeNodes, elementEdges, orientations)
}

func (pm *PolyMesh) NumNodes() int    { return len(pm.Nodes) }
func (pm *PolyMesh) NumEdges() int    { return len(pm.EdgeNodes) }
func (pm *PolyMesh) NumElements() int { return len(pm.ElementEdges) }

func (pm *PolyMesh) Element(k int) Element { return pm.elements[k] }

// Centroid returns the element query in tuple form
func (pm *PolyMesh) Centroid(k int) (x, y, area float64, vertices, edges []int) {
	el := pm.elements[k]
	return el.Centroid.X[0], el.Centroid.X[1], el.Area, el.Vertices, el.Edges
}

// EdgeSign is the single orientation convention used by every operator builder
func (pm *PolyMesh) EdgeSign(k, i int) int { return pm.Orientations[k][i] }

func (pm *PolyMesh) EdgeEndpoints(e int) (p1, p2 Point) {
	return pm.Nodes[pm.EdgeNodes[e][0]], pm.Nodes[pm.EdgeNodes[e][1]]
}

func (pm *PolyMesh) EdgeLength(e int) float64 {
	p1, p2 := pm.EdgeEndpoints(e)
	return p1.Distance(p2)
}

// EdgeNormal is the unit normal to the right of the global edge direction
func (pm *PolyMesh) EdgeNormal(e int) (nx, ny float64) {
	p1, p2 := pm.EdgeEndpoints(e)
	L := p1.Distance(p2)
	nx, ny = (p2.X[1]-p1.X[1])/L, (p1.X[0]-p2.X[0])/L
	return
}

func (pm *PolyMesh) IsBoundaryNode(n int) bool { return pm.isBoundary[n] }

func (pm *PolyMesh) IsBoundaryEdge(e int) bool { return len(pm.EdgeElements[e]) == 1 }

// MeshSize is the largest element diameter
func (pm *PolyMesh) MeshSize() (h float64) {
	for _, el := range pm.elements {
		h = math.Max(h, el.Poly.Diameter())
	}
	return
}

func (pm *PolyMesh) TotalArea() (area float64) {
	for _, el := range pm.elements {
		area += el.Area
	}
	return
}

func (pm *PolyMesh) Print() (o string) {
	o = fmt.Sprintf("Nodes = %d, Edges = %d (%d boundary), Elements = %d, h = %5.3f, area = %8.5f\n",
		pm.NumNodes(), pm.NumEdges(), len(pm.BoundaryEdges), pm.NumElements(), pm.MeshSize(), pm.TotalArea())
	return
}
