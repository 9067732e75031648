package mimetic

import (
	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/utils"
	"gonum.org/v1/gonum/floats"
)

// NewBDiv builds the discrete flux divergence, row k holds edgeSign * length for each edge of element k
func NewBDiv(pm *geometry2D.PolyMesh) utils.CSR {
	var (
		K, Ne = pm.NumElements(), pm.NumEdges()
		D     = utils.NewDOK(K, Ne)
	)
	for k := 0; k < K; k++ {
		for i, e := range pm.Element(k).Edges {
			D.Set(k, e, float64(pm.EdgeSign(k, i))*pm.EdgeLength(e))
		}
	}
	D.SetReadOnly("BDiv")
	return D.ToCSR()
}

// DivB returns the net outward flux of the global edge field through each element
func (op *Operators) DivB(B []float64) []float64 {
	return op.BDiv.MulVec(B)
}

// DivSquared is the sum over elements of the squared net flux
func (op *Operators) DivSquared(B []float64) float64 {
	div := op.DivB(B)
	return floats.Dot(div, div)
}
