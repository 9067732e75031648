package vem

import (
	"fmt"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

// VelocitySpace caches one Projector per element of a mesh
type VelocitySpace struct {
	Mesh       *geometry2D.PolyMesh
	Projectors []*Projector
}

func NewVelocitySpace(pm *geometry2D.PolyMesh, ProcLimit int) (vs *VelocitySpace, err error) {
	var (
		K = pm.NumElements()
	)
	vs = &VelocitySpace{
		Mesh:       pm,
		Projectors: make([]*Projector, K),
	}
	pmap := utils.NewElementPartitionMap(ProcLimit, K)
	err = pmap.ParallelFor(func(np, kMin, kMax int) (err error) {
		for k := kMin; k < kMax; k++ {
			if vs.Projectors[k], err = NewProjector(pm, k); err != nil {
				return fmt.Errorf("velocity projector: %w", err)
			}
		}
		return
	})
	if err != nil {
		return nil, err
	}
	return
}

func (vs *VelocitySpace) checkLength(k int, vecs ...[]float64) error {
	for _, u := range vecs {
		if len(u) != 4*vs.Projectors[k].NEdges {
			return types.NewDimensionError(fmt.Sprintf("local velocity of element %d", k),
				len(u), 4*vs.Projectors[k].NEdges)
		}
	}
	return nil
}

func (vs *VelocitySpace) SemiInnerProduct(k int, a, b []float64) (float64, error) {
	if err := vs.checkLength(k, a, b); err != nil {
		return 0, err
	}
	return vs.Projectors[k].SemiInnerProduct(a, b), nil
}

func (vs *VelocitySpace) FullInnerProduct(k int, a, b []float64) (float64, error) {
	if err := vs.checkLength(k, a, b); err != nil {
		return 0, err
	}
	return vs.Projectors[k].FullInnerProduct(a, b), nil
}

func (vs *VelocitySpace) H1InnerProduct(k int, a, b []float64) (float64, error) {
	if err := vs.checkLength(k, a, b); err != nil {
		return 0, err
	}
	return vs.Projectors[k].H1InnerProduct(a, b), nil
}

/*
DivU integrates the outward normal flux of the piecewise quadratic boundary trace of a local
velocity vector with Simpson's rule, exact for the trace. Dividing flux by area gives the mean
divergence over the element.
*/
func (vs *VelocitySpace) DivU(k int, u []float64) (flux, area float64, err error) {
	if err = vs.checkLength(k, u); err != nil {
		return
	}
	var (
		pm = vs.Mesh
		el = pm.Element(k)
		n  = el.NumEdges()
	)
	for i, e := range el.Edges {
		var (
			a, b   = i, (i + 1) % n
			m      = 2*n + i
			sign   = float64(pm.EdgeSign(k, i))
			nx, ny = pm.EdgeNormal(e)
			L      = pm.EdgeLength(e)
		)
		ux := u[a] + 4*u[m] + u[b]
		uy := u[n+a] + 4*u[n+m] + u[n+b]
		flux += sign * L / 6 * (ux*nx + uy*ny)
	}
	area = el.Area
	return
}
