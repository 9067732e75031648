package vem

import (
	"fmt"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/quadrature"
	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

/*
Projector holds the velocity space matrices of one element with n edges. Local velocity vectors
are ordered [vx(vertices), vy(vertices), mx(mid-edges), my(mid-edges)], 4n entries.

	K  (12 x 12) volume Gram matrix of the vector basis
	H  (12 x 12) volume Gram matrix of the basis gradients
	G  (12 x 12) boundary Gram matrix, GI its inverse
	B  (12 x 4n) boundary moments of the piecewise quadratic trace of each local dof
	Pi (12 x 4n) GI B, the polynomial coefficients of the projected field
	D  (4n x 12) basis values at the local dof points
*/
type Projector struct {
	Element int
	NEdges  int
	K, H    utils.Matrix
	G, GI   utils.Matrix
	B, Pi   utils.Matrix
	D       utils.Matrix
	SK, SH  float64 // Stabilization scales for the L2 and H1 forms
	// (I - D Pi), applied to a dof vector it gives the part the projection misses
	residual utils.Matrix
}

func NewProjector(pm *geometry2D.PolyMesh, k int) (p *Projector, err error) {
	var (
		el = pm.Element(k)
		n  = el.NumEdges()
	)
	p = &Projector{
		Element: k,
		NEdges:  n,
	}
	p.K, p.H = volumeMoments(el.Poly)
	p.G, p.B = boundaryMoments(pm, el)
	p.D = dofValues(pm, el)
	if ok, ratio := p.G.FullColumnRank(utils.RANKTOL); !ok {
		err = types.NewGeometryError(k, "boundary Gram matrix is singular, singular value ratio %g", ratio)
		return
	}
	if p.GI, err = p.G.Inverse(); err != nil {
		err = types.NewGeometryError(k, "boundary Gram matrix inverse: %v", err)
		return
	}
	p.Pi = p.GI.Mul(p.B)
	p.residual = utils.NewIdentity(4 * n).Subtract(p.D.Mul(p.Pi))
	PiT := p.Pi.Transpose()
	p.SK = PiT.Mul(p.K).Mul(p.Pi).Trace() / float64(4*n)
	p.SH = PiT.Mul(p.H).Mul(p.Pi).Trace() / float64(4*n)
	for _, m := range []*utils.Matrix{&p.K, &p.H, &p.G, &p.GI, &p.B, &p.Pi, &p.D, &p.residual} {
		m.SetReadOnly(fmt.Sprintf("projector[%d]", k))
	}
	return
}

func volumeMoments(poly *geometry2D.Polygon) (K, H utils.Matrix) {
	var (
		X, Y, W = poly.QuadraturePoints()
	)
	K, H = utils.NewMatrix(NBasis, NBasis), utils.NewMatrix(NBasis, NBasis)
	for q, w := range W {
		m := monomials(X[q], Y[q])
		dm := monomialGradients(X[q], Y[q])
		for i := 0; i < NBasis; i++ {
			for j := i; j < NBasis; j++ {
				if i%2 != j%2 {
					continue
				}
				a, b := i/2, j/2
				K.AddAt(i, j, w*m[a]*m[b])
				H.AddAt(i, j, w*(dm[a][0]*dm[b][0]+dm[a][1]*dm[b][1]))
			}
		}
	}
	symmetrize(K)
	symmetrize(H)
	return
}

func boundaryMoments(pm *geometry2D.PolyMesh, el geometry2D.Element) (G, B utils.Matrix) {
	var (
		n    = el.NumEdges()
		rule = quadrature.Lobatto7
	)
	G, B = utils.NewMatrix(NBasis, NBasis), utils.NewMatrix(NBasis, 4*n)
	for i, e := range el.Edges {
		var (
			p1, p2 = pm.Nodes[el.Vertices[i]], pm.Nodes[el.Vertices[(i+1)%n]]
			X, Y   = rule.EdgePoints(p1.X[0], p1.X[1], p2.X[0], p2.X[1])
			halfL  = 0.5 * pm.EdgeLength(e)
			// Dof indices of the start vertex, end vertex and mid-edge for each component
			dofs = [2][3]int{
				{i, (i + 1) % n, 2*n + i},
				{n + i, n + (i+1)%n, 3*n + i},
			}
		)
		for q, t := range rule.X {
			var (
				w                = rule.W[q] * halfL
				m                = monomials(X[q], Y[q])
				phiS, phiM, phiE = edgeTrace(t)
			)
			for ii := 0; ii < NBasis; ii++ {
				for jj := ii; jj < NBasis; jj++ {
					if ii%2 == jj%2 {
						G.AddAt(ii, jj, w*m[ii/2]*m[jj/2])
					}
				}
				c := ii % 2
				B.AddAt(ii, dofs[c][0], w*phiS*m[ii/2])
				B.AddAt(ii, dofs[c][1], w*phiE*m[ii/2])
				B.AddAt(ii, dofs[c][2], w*phiM*m[ii/2])
			}
		}
	}
	symmetrize(G)
	return
}

func dofValues(pm *geometry2D.PolyMesh, el geometry2D.Element) (D utils.Matrix) {
	var (
		n = el.NumEdges()
	)
	D = utils.NewMatrix(4*n, NBasis)
	for i := 0; i < n; i++ {
		v := pm.Nodes[el.Vertices[i]]
		mid := pm.MidNodes[el.Edges[i]]
		mv := monomials(v.X[0], v.X[1])
		mm := monomials(mid.X[0], mid.X[1])
		for a := 0; a < NMonomials; a++ {
			D.Set(i, 2*a, mv[a])
			D.Set(n+i, 2*a+1, mv[a])
			D.Set(2*n+i, 2*a, mm[a])
			D.Set(3*n+i, 2*a+1, mm[a])
		}
	}
	return
}

// symmetrize copies the upper triangle into the lower one
func symmetrize(M utils.Matrix) {
	nr, _ := M.Dims()
	for i := 0; i < nr; i++ {
		for j := i + 1; j < nr; j++ {
			M.Set(j, i, M.At(i, j))
		}
	}
}

// Project returns the basis coefficients of the projection of a local velocity vector
func (p *Projector) Project(u []float64) []float64 {
	return p.Pi.MulVec(u)
}

func (p *Projector) stabilization(a, b []float64) float64 {
	ra, rb := p.residual.MulVec(a), p.residual.MulVec(b)
	var sum float64
	for i := range ra {
		sum += ra[i] * rb[i]
	}
	return sum
}

// SemiInnerProduct is the gradient inner product of the projected fields
func (p *Projector) SemiInnerProduct(a, b []float64) float64 {
	return p.H.QuadForm(p.Project(a), p.Project(b))
}

// FullInnerProduct is the L2 inner product of the projected fields plus the scaled dof residual product
func (p *Projector) FullInnerProduct(a, b []float64) float64 {
	return p.K.QuadForm(p.Project(a), p.Project(b)) + p.SK*p.stabilization(a, b)
}

// H1InnerProduct is the stabilized gradient inner product
func (p *Projector) H1InnerProduct(a, b []float64) float64 {
	return p.SemiInnerProduct(a, b) + p.SH*p.stabilization(a, b)
}
