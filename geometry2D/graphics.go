package geometry2D

import (
	"github.com/notargets/avs/geometry"
)

/*
ToGraphMesh converts the centroid fan sub-triangulation of every element into a plottable
triangle mesh. Element centroids are appended after the mesh nodes, so the triangles of
element k all share vertex NumNodes()+k.
*/
func (pm *PolyMesh) ToGraphMesh() (gm geometry.TriMesh) {
	var (
		Nv, K = pm.NumNodes(), pm.NumElements()
	)
	gm = geometry.TriMesh{
		XY: make([]float32, 2*(Nv+K)),
	}
	for i, pt := range pm.Nodes {
		gm.XY[2*i] = float32(pt.X[0])
		gm.XY[2*i+1] = float32(pt.X[1])
	}
	for k := 0; k < K; k++ {
		el := pm.Element(k)
		gm.XY[2*(Nv+k)] = float32(el.Centroid.X[0])
		gm.XY[2*(Nv+k)+1] = float32(el.Centroid.X[1])
		n := len(el.Vertices)
		for i := 0; i < n; i++ {
			gm.TriVerts = append(gm.TriVerts, [3]int64{
				int64(Nv + k), int64(el.Vertices[i]), int64(el.Vertices[(i+1)%n]),
			})
		}
	}
	return
}

// BoundaryLines returns the boundary edges as line segments, x1,y1,x2,y2 per edge
func (pm *PolyMesh) BoundaryLines() (lines []float32) {
	for _, e := range pm.BoundaryEdges {
		p1, p2 := pm.EdgeEndpoints(e)
		lines = append(lines,
			float32(p1.X[0]), float32(p1.X[1]),
			float32(p2.X[0]), float32(p2.X[1]))
	}
	return
}
