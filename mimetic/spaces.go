package mimetic

import (
	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/utils"
)

/*
EdgeSpace returns the n x 2 consistency and stability matrices for the edge (flux) space of
element k. Row i of N is the outward unit normal of local edge i, the global normal times the
edge sign. Row i of R is the edge midpoint offset from the centroid times the edge length.
With these, N^T R = A I for any polygon.
*/
func EdgeSpace(pm *geometry2D.PolyMesh, k int) (N, R utils.Matrix) {
	var (
		el = pm.Element(k)
		n  = el.NumEdges()
		c  = el.Centroid
	)
	N, R = utils.NewMatrix(n, 2), utils.NewMatrix(n, 2)
	for i, e := range el.Edges {
		var (
			sign   = float64(pm.EdgeSign(k, i))
			nx, ny = pm.EdgeNormal(e)
			L      = pm.EdgeLength(e)
			mid    = pm.MidNodes[e]
		)
		N.Set(i, 0, sign*nx)
		N.Set(i, 1, sign*ny)
		R.Set(i, 0, (mid.X[0]-c.X[0])*L)
		R.Set(i, 1, (mid.X[1]-c.X[1])*L)
	}
	return
}

/*
NodeSpace returns the n x 1 consistency and stability matrices for the nodal space of element k.
N is all ones. R[i] is the exact moment of the piecewise linear hat of vertex i over the two
centroid triangles that touch the vertex, split into the contributions of the incoming and
outgoing edges. The entries sum to the element area.
*/
func NodeSpace(pm *geometry2D.PolyMesh, k int) (N, R utils.Matrix) {
	var (
		el = pm.Element(k)
		n  = el.NumEdges()
		cy = el.Centroid.X[1]
	)
	N, R = utils.NewMatrix(n, 1), utils.NewMatrix(n, 1)
	vertex := func(i int) (x, y float64) {
		pt := pm.Nodes[el.Vertices[(i+n)%n]]
		return pt.X[0], pt.X[1]
	}
	for i := 0; i < n; i++ {
		var (
			xa, ya = vertex(i - 1)
			xb, yb = vertex(i)
			xc, yc = vertex(i + 1)
			// Incoming edge a -> b, then outgoing edge b -> c
			omega2 = (xb - xa) * ((cy - yb) + (2*cy - ya - yb)) / 6
			omega1 = (xc - xb) * ((cy - yb) + (2*cy - yc - yb)) / 6
		)
		N.Set(i, 0, 1)
		R.Set(i, 0, omega1+omega2)
	}
	return
}
