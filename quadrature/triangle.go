package quadrature

// Rule2D holds nodes (R,S) and weights W on the reference triangle (0,0),(1,0),(0,1).
// The weights sum to the reference area of 1/2.
type Rule2D struct {
	R, S, W []float64
}

var (
	da, dwa = 0.44594849091596488632, 0.22338158967801146570 / 2.
	db, dwb = 0.09157621350977074346, 0.10995174365532186764 / 2.
	// Dunavant6 is the six point symmetric rule, exact to degree 4
	Dunavant6 = Rule2D{
		R: []float64{da, 1 - 2*da, da, db, 1 - 2*db, db},
		S: []float64{da, da, 1 - 2*da, db, db, 1 - 2*db},
		W: []float64{dwa, dwa, dwa, dwb, dwb, dwb},
	}
)

func (r Rule2D) Len() int { return len(r.W) }

// IntegrateReference integrates f(r,s) over the reference triangle
func (r Rule2D) IntegrateReference(f func(r, s float64) float64) (sum float64) {
	for i := range r.W {
		sum += r.W[i] * f(r.R[i], r.S[i])
	}
	return
}

/*
IntegrateTriangle integrates f over the triangle with vertices (X[i],Y[i]) using the affine
map from the reference triangle. A clockwise triangle contributes with negative sign.
*/
func (r Rule2D) IntegrateTriangle(X, Y [3]float64, f func(x, y float64) float64) (sum float64) {
	var (
		jac = (X[1]-X[0])*(Y[2]-Y[0]) - (X[2]-X[0])*(Y[1]-Y[0])
	)
	return jac * r.IntegrateReference(func(rr, ss float64) float64 {
		return f(X[0]+(X[1]-X[0])*rr+(X[2]-X[0])*ss, Y[0]+(Y[1]-Y[0])*rr+(Y[2]-Y[0])*ss)
	})
}

// TrianglePoints returns the physical quadrature points and the Jacobian-scaled weights
func (r Rule2D) TrianglePoints(X, Y [3]float64) (x, y, w []float64) {
	var (
		jac = (X[1]-X[0])*(Y[2]-Y[0]) - (X[2]-X[0])*(Y[1]-Y[0])
		N   = r.Len()
	)
	x, y, w = make([]float64, N), make([]float64, N), make([]float64, N)
	for i := range r.W {
		rr, ss := r.R[i], r.S[i]
		x[i] = X[0] + (X[1]-X[0])*rr + (X[2]-X[0])*ss
		y[i] = Y[0] + (Y[1]-Y[0])*rr + (Y[2]-Y[0])*ss
		w[i] = r.W[i] * jac
	}
	return
}
