package dof

import (
	"github.com/notargets/gomhd/types"
)

/*
RestrictToElement copies the entries of a global array that belong to element k, in the element's
own order: vertices in traversal order for node dofs, edges in element order for edge and
mid-edge dofs. Edge dofs are multiplied by the edge sign. The global array is never modified.
*/
func (m *Manager) RestrictToElement(k int, global []float64, kind Kind) (local []float64, err error) {
	if err = m.CheckLength(kind.String(), global, kind); err != nil {
		return
	}
	var (
		el = m.Mesh.Element(k)
	)
	switch kind {
	case NodeDOF:
		local = make([]float64, len(el.Vertices))
		for i, v := range el.Vertices {
			local[i] = global[v]
		}
	case EdgeDOF:
		local = make([]float64, len(el.Edges))
		for i, e := range el.Edges {
			local[i] = float64(m.Mesh.EdgeSign(k, i)) * global[e]
		}
	case MidEdgeDOF:
		local = make([]float64, len(el.Edges))
		for i, e := range el.Edges {
			local[i] = global[e]
		}
	case ElementDOF:
		local = []float64{global[k]}
	}
	return
}

/*
RestrictVelocity assembles the local velocity vector of element k, ordered
[vx(vertices), vy(vertices), mx(mid-edges), my(mid-edges)].
*/
func (m *Manager) RestrictVelocity(k int, ux, uy, mx, my []float64) (local []float64, err error) {
	var parts [4][]float64
	for i, g := range [][]float64{ux, uy, mx, my} {
		kind := NodeDOF
		if i > 1 {
			kind = MidEdgeDOF
		}
		if parts[i], err = m.RestrictToElement(k, g, kind); err != nil {
			return
		}
	}
	for _, p := range parts {
		local = append(local, p...)
	}
	return
}

func (m *Manager) CheckLength(what string, v []float64, kind Kind) error {
	if want := m.Size(kind); len(v) != want {
		return types.NewDimensionError(what, len(v), want)
	}
	return nil
}
