package geometry2D

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygon(t *testing.T) {
	sq := NewPolygon([]Point{NewPoint(0, -1), NewPoint(1, -1), NewPoint(1, 0), NewPoint(0, 0), NewPoint(0, -1)})
	assert.Equal(t, 4, len(sq.Geometry))
	assert.InDelta(t, 1., sq.Area(), 1.e-15)
	c := sq.Centroid()
	assert.InDelta(t, 0.5, c.X[0], 1.e-15)
	assert.InDelta(t, -0.5, c.X[1], 1.e-15)
	assert.InDelta(t, math.Sqrt2, sq.Diameter(), 1.e-15)
	_, _, found := sq.SelfIntersection()
	assert.False(t, found)
	{ // Moments over [0,1]x[-1,0]
		tol := 1.e-14
		assert.InDelta(t, 1., sq.Moment(0, 0), tol)
		assert.InDelta(t, 0.5, sq.Moment(1, 0), tol)
		assert.InDelta(t, -0.5, sq.Moment(0, 1), tol)
		assert.InDelta(t, 1./3., sq.Moment(2, 0), tol)
		assert.InDelta(t, 1./3., sq.Moment(0, 2), tol)
		assert.InDelta(t, -0.25, sq.Moment(1, 1), tol)
		assert.InDelta(t, 1./5., sq.Moment(4, 0), tol)
		assert.InDelta(t, 1./9., sq.Moment(2, 2), tol)
		assert.InDelta(t, -1./8., sq.Moment(3, 1), tol)
	}
	{ // A regular hexagon: area and second moment about the center
		hex := newNgon(NewPoint(0.3, -0.2), 1, 6)
		area := 3 * math.Sqrt(3) / 2
		assert.InDelta(t, area, hex.Area(), 1.e-14)
		Ixx := hex.Integrate(func(x, y float64) float64 { return (x - 0.3) * (x - 0.3) })
		assert.InDelta(t, 5*math.Sqrt(3)/16, Ixx, 1.e-14)
		x, y, w := hex.QuadraturePoints()
		assert.Equal(t, 36, len(w))
		var sum float64
		for i := range w {
			sum += w[i] * (x[i] + y[i])
		}
		assert.InDelta(t, area*(0.3-0.2), sum, 1.e-14)
	}
	{ // Non convex L shape, counterclockwise
		L := NewPolygon([]Point{NewPoint(0, 0), NewPoint(2, 0), NewPoint(2, 1), NewPoint(1, 1),
			NewPoint(1, 2), NewPoint(0, 2)})
		assert.InDelta(t, 3., L.Area(), 1.e-14)
		// int x^2 over [0,2]x[0,1] plus [0,1]x[1,2]
		assert.InDelta(t, 8./3.+1./3., L.Moment(2, 0), 1.e-13)
		_, _, found = L.SelfIntersection()
		assert.False(t, found)
	}
	{ // Crossing and touching loops are not simple
		bowtie := NewPolygon([]Point{NewPoint(0, 0), NewPoint(3, 0), NewPoint(0, 2), NewPoint(1, 2)})
		i, j, found := bowtie.SelfIntersection()
		assert.True(t, found)
		assert.Equal(t, 1, i)
		assert.Equal(t, 3, j)
		// Vertex 3 sits on edge 0
		touch := NewPolygon([]Point{NewPoint(0, 0), NewPoint(2, 0), NewPoint(2, 1), NewPoint(1, 0), NewPoint(0, 1)})
		i, j, found = touch.SelfIntersection()
		assert.True(t, found)
		assert.Equal(t, 0, i)
		assert.Equal(t, 2, j)
	}
}

func newNgon(centroid Point, radius float64, n int) *Polygon {
	geom := make([]Point, n)
	for i := range geom {
		angle := 2 * math.Pi * float64(i) / float64(n)
		geom[i] = centroid.Plus(NewPoint(math.Cos(angle)*radius, math.Sin(angle)*radius))
	}
	return NewPolygon(geom)
}

func TestReferenceMesh(t *testing.T) {
	pm, err := NewReferenceMesh()
	require.NoError(t, err)
	assert.Equal(t, 9, pm.NumNodes())
	assert.Equal(t, 12, pm.NumEdges())
	assert.Equal(t, 4, pm.NumElements())
	assert.Equal(t, utils.Index{0, 1, 2, 3, 5, 6, 7, 8}, pm.BoundaryNodes)
	assert.Equal(t, utils.Index{4}, pm.InteriorNodes)
	assert.Equal(t, utils.Index{0, 2, 4, 5, 6, 7, 8, 9}, pm.BoundaryEdges)
	assert.Equal(t, utils.Index{1, 3, 10, 11}, pm.InteriorEdges)
	assert.True(t, pm.IsBoundaryEdge(9))
	assert.False(t, pm.IsBoundaryNode(4))

	el := pm.Element(0)
	assert.Equal(t, []int{1, 2, 5, 4}, el.Vertices)
	assert.InDelta(t, 1., el.Area, 1.e-15)
	x, y, area, verts, edges := pm.Centroid(0)
	assert.InDelta(t, 0.5, x, 1.e-15)
	assert.InDelta(t, -0.5, y, 1.e-15)
	assert.InDelta(t, 1., area, 1.e-15)
	assert.Equal(t, []int{1, 2, 5, 4}, verts)
	assert.Equal(t, []int{9, 8, 11, 1}, edges)
	assert.Equal(t, []int{0, 1, 4, 3}, pm.Element(1).Vertices)
	assert.Equal(t, []int{3, 4, 7, 6}, pm.Element(2).Vertices)
	assert.Equal(t, []int{4, 5, 8, 7}, pm.Element(3).Vertices)
	assert.Equal(t, -1, pm.EdgeSign(0, 1))
	assert.InDelta(t, 4., pm.TotalArea(), 1.e-14)
	assert.Contains(t, pm.Print(), "Elements = 4, h = 1.414, area =  4.00000")

	// Global normal is to the right of the edge direction
	nx, ny := pm.EdgeNormal(9) // (0,-1) -> (1,-1)
	assert.InDelta(t, 0., nx, 1.e-15)
	assert.InDelta(t, -1., ny, 1.e-15)
	assert.Equal(t, NewPoint(0.5, -1), pm.MidNodes[9])
	assert.InDelta(t, 1., pm.EdgeLength(4), 1.e-15)
	// Every interior edge is seen with opposite signs from its two elements
	for _, e := range pm.InteriorEdges {
		k1, k2 := pm.EdgeElements[e][0], pm.EdgeElements[e][1]
		assert.Equal(t, -1, pm.signOf(k1, e)*pm.signOf(k2, e))
	}
}

func TestMeshFromElements(t *testing.T) {
	{ // Clockwise input is reversed, edges are unique
		nodes := []Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1), NewPoint(0, 1), NewPoint(2, 0.5)}
		EToV := [][]int{{0, 3, 2, 1}, {1, 4, 2}}
		pm, err := NewPolyMeshFromElements(nodes, EToV)
		require.NoError(t, err)
		assert.Equal(t, 6, pm.NumEdges())
		assert.Equal(t, []int{1, 2, 3, 0}, pm.Element(0).Vertices)
		assert.InDelta(t, 1.5, pm.TotalArea(), 1.e-14)
		assert.Equal(t, utils.Index{0, 1, 2, 3, 4}, pm.BoundaryNodes)
		assert.Equal(t, 1, len(pm.InteriorEdges))
	}
	{ // Degenerate and inconsistent inputs
		nodes := []Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(2, 0)}
		_, err := NewPolyMeshFromElements(nodes, [][]int{{0, 1, 2}})
		assert.True(t, errors.Is(err, types.ErrGeometry))
		var gerr *types.GeometryError
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, 0, gerr.Element)

		nodes = []Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1), NewPoint(0, 1)}
		// Edges do not close into a loop
		_, err = NewPolyMesh(nodes, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			[][]int{{0, 1, 3, 2}}, [][]int{{1, 1, 1, 1}})
		assert.True(t, errors.Is(err, types.ErrGeometry))
		// Clockwise loop given explicitly
		_, err = NewPolyMesh(nodes, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			[][]int{{3, 2, 1, 0}}, [][]int{{-1, -1, -1, -1}})
		assert.True(t, errors.Is(err, types.ErrGeometry))
		_, err = NewPolyMesh(nodes, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			[][]int{{0, 1, 2, 3}}, [][]int{{1, 1, 1, 1}, {1}})
		assert.True(t, errors.Is(err, types.ErrDimensionMismatch))
	}
	{ // A bowtie has positive signed area but is not a simple polygon
		nodes := []Point{NewPoint(0, 0), NewPoint(3, 0), NewPoint(0, 2), NewPoint(1, 2)}
		assert.InDelta(t, 2., NewPolygon(nodes).Area(), 1.e-15)
		pm, err := NewPolyMeshFromElements(nodes, [][]int{{0, 1, 2, 3}})
		assert.Nil(t, pm)
		assert.True(t, errors.Is(err, types.ErrGeometry))
		var gerr *types.GeometryError
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, 0, gerr.Element)
	}
}

func TestGenerators(t *testing.T) {
	check := func(pm *PolyMesh, err error, K int) {
		require.NoError(t, err)
		assert.Equal(t, K, pm.NumElements())
		assert.InDelta(t, 4., pm.TotalArea(), 1.e-12)
		// Euler characteristic of a disk
		assert.Equal(t, 1, pm.NumNodes()-pm.NumEdges()+pm.NumElements())
		for k := 0; k < pm.NumElements(); k++ {
			assert.Greater(t, pm.Element(k).Area, 0.)
		}
	}
	pm, err := NewStructuredQuadMesh(4)
	check(pm, err, 16)
	assert.InDelta(t, math.Sqrt2/2, pm.MeshSize(), 1.e-14)
	assert.Equal(t, 16, len(pm.BoundaryEdges))
	assert.Equal(t, 9, len(pm.InteriorNodes))

	pm, err = NewPerturbedQuadMesh(4, 0.2, 1)
	check(pm, err, 16)
	pm2, _ := NewPerturbedQuadMesh(4, 0.2, 1)
	assert.Equal(t, pm.Nodes, pm2.Nodes)
	_, err = NewPerturbedQuadMesh(4, 0.7, 1)
	assert.Error(t, err)

	pm, err = NewTriangleMesh(4)
	check(pm, err, 32)

	pm, err = NewMedianDualMesh(4)
	check(pm, err, 25)
	maxVerts := 0
	for k := 0; k < pm.NumElements(); k++ {
		if n := pm.Element(k).NumEdges(); n > maxVerts {
			maxVerts = n
		}
	}
	assert.Equal(t, 12, maxVerts)

	for _, name := range MeshTypePrintNames {
		mt, err := NewMeshType(name)
		require.NoError(t, err)
		assert.Equal(t, name, mt.String())
		_, err = NewMesh(mt, 2, 0.1, 3)
		assert.NoError(t, err)
	}
	_, err = NewMeshType("voronoi")
	assert.Error(t, err)
}

func TestToGraphMesh(t *testing.T) {
	pm, err := NewReferenceMesh()
	require.NoError(t, err)
	gm := pm.ToGraphMesh()
	assert.Equal(t, 2*13, len(gm.XY))
	assert.Equal(t, 16, len(gm.TriVerts))
	assert.Equal(t, [3]int64{9, 1, 2}, gm.TriVerts[0])
	assert.Equal(t, float32(0.5), gm.XY[2*9])
	assert.Equal(t, float32(-0.5), gm.XY[2*9+1])
	lines := pm.BoundaryLines()
	assert.Equal(t, 4*len(pm.BoundaryEdges), len(lines))
	for i := 0; i < len(lines); i += 2 {
		x, y := lines[i], lines[i+1]
		assert.True(t, x == -1 || x == 1 || y == -1 || y == 1)
	}
}
