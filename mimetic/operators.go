package mimetic

import (
	"fmt"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

/*
Operators caches the per element mimetic mass matrices for one mesh. Entry k is valid only for
element k of the mesh it was built from; a changed mesh needs a new Operators.
*/
type Operators struct {
	Mesh   *geometry2D.PolyMesh
	MEList []utils.Matrix // Edge space mass matrices, n x n
	MVList []utils.Matrix // Node space mass matrices, n x n
	REList []utils.Matrix // Edge space stability matrices, kept for flux reconstruction
	BDiv   utils.CSR      // Elements x edges
}

func NewOperators(pm *geometry2D.PolyMesh, ProcLimit int) (op *Operators, err error) {
	var (
		K = pm.NumElements()
	)
	op = &Operators{
		Mesh:   pm,
		MEList: make([]utils.Matrix, K),
		MVList: make([]utils.Matrix, K),
		REList: make([]utils.Matrix, K),
	}
	pmap := utils.NewElementPartitionMap(ProcLimit, K)
	err = pmap.ParallelFor(func(np, kMin, kMax int) (err error) {
		for k := kMin; k < kMax; k++ {
			if err = op.buildElement(k); err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return nil, err
	}
	op.BDiv = NewBDiv(pm)
	return
}

func (op *Operators) buildElement(k int) (err error) {
	var (
		el     = op.Mesh.Element(k)
		N, R   = EdgeSpace(op.Mesh, k)
		NV, RV = NodeSpace(op.Mesh, k)
		ME, MV utils.Matrix
	)
	if ME, err = BuildLocalMass(N, R, el.Area); err != nil {
		return fmt.Errorf("edge mass matrix: %w", withElement(err, k))
	}
	if MV, err = BuildLocalMass(NV, RV, el.Area); err != nil {
		return fmt.Errorf("node mass matrix: %w", withElement(err, k))
	}
	op.MEList[k] = ME.SetReadOnly(fmt.Sprintf("ME[%d]", k))
	op.MVList[k] = MV.SetReadOnly(fmt.Sprintf("MV[%d]", k))
	op.REList[k] = R.SetReadOnly(fmt.Sprintf("RE[%d]", k))
	return
}

// EdgeInnerProduct is a^T ME[k] b for local (signed) edge vectors
func (op *Operators) EdgeInnerProduct(k int, a, b []float64) (float64, error) {
	if err := checkLocal(op.MEList, k, "local edge vector", a, b); err != nil {
		return 0, err
	}
	return op.MEList[k].QuadForm(a, b), nil
}

// NodeInnerProduct is a^T MV[k] b for local vertex vectors
func (op *Operators) NodeInnerProduct(k int, a, b []float64) (float64, error) {
	if err := checkLocal(op.MVList, k, "local vertex vector", a, b); err != nil {
		return 0, err
	}
	return op.MVList[k].QuadForm(a, b), nil
}

func checkLocal(list []utils.Matrix, k int, what string, vecs ...[]float64) error {
	n, _ := list[k].Dims()
	for _, v := range vecs {
		if len(v) != n {
			return types.NewDimensionError(fmt.Sprintf("%s of element %d", what, k), len(v), n)
		}
	}
	return nil
}
