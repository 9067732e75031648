package quadrature

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Rule1D holds nodes X and weights W on [-1,1]
type Rule1D struct {
	X, W []float64
}

var (
	sq15 = math.Sqrt(15.)
	l1   = math.Sqrt(5./11. + 2./11.*math.Sqrt(5./3.))
	l2   = math.Sqrt(5./11. - 2./11.*math.Sqrt(5./3.))
	// Lobatto7 includes both endpoints and is exact to degree 9
	Lobatto7 = Rule1D{
		X: []float64{-1, -l1, -l2, 0, l2, l1, 1},
		W: []float64{
			1. / 21.,
			(124. - 7.*sq15) / 350.,
			(124. + 7.*sq15) / 350.,
			256. / 525.,
			(124. + 7.*sq15) / 350.,
			(124. - 7.*sq15) / 350.,
			1. / 21.,
		},
	}
	// Legendre7 is exact to degree 13
	Legendre7 = Rule1D{
		X: []float64{
			-0.9491079123427585245262,
			-0.7415311855993944398639,
			-0.4058451513773971669066,
			0,
			0.4058451513773971669066,
			0.7415311855993944398639,
			0.9491079123427585245262,
		},
		W: []float64{
			0.1294849661688696932706,
			0.2797053914892766679015,
			0.3818300505051189449504,
			0.4179591836734693877551,
			0.3818300505051189449504,
			0.2797053914892766679015,
			0.1294849661688696932706,
		},
	}
)

/*
NewEdgeRule returns the N point "lobatto" or "legendre" rule. The 7 point rules come from the
tabulated constants, other sizes are computed.
*/
func NewEdgeRule(name string, N int) (r Rule1D, err error) {
	if N < 2 {
		return r, fmt.Errorf("edge rules need at least 2 points, have %d", N)
	}
	switch strings.ToLower(name) {
	case "lobatto", "":
		if N == 7 {
			return Lobatto7, nil
		}
		return GaussLobatto(N), nil
	case "legendre":
		if N == 7 {
			return Legendre7, nil
		}
		return GaussLegendre(N), nil
	}
	return r, fmt.Errorf("unknown edge rule %q, use lobatto or legendre", name)
}

func (r Rule1D) Len() int { return len(r.X) }

func (r Rule1D) Integrate(f func(t float64) float64) (sum float64) {
	for i, t := range r.X {
		sum += r.W[i] * f(t)
	}
	return
}

// EdgePoints maps the rule onto the segment from (x1,y1) at t=-1 to (x2,y2) at t=1
func (r Rule1D) EdgePoints(x1, y1, x2, y2 float64) (X, Y []float64) {
	X, Y = make([]float64, len(r.X)), make([]float64, len(r.X))
	for i, t := range r.X {
		X[i] = 0.5 * (x1*(1-t) + x2*(1+t))
		Y[i] = 0.5 * (y1*(1-t) + y2*(1+t))
	}
	return
}

// IntegrateEdge computes the line integral of f along the segment, ds included
func (r Rule1D) IntegrateEdge(x1, y1, x2, y2 float64, f func(x, y float64) float64) (sum float64) {
	var (
		X, Y = r.EdgePoints(x1, y1, x2, y2)
		L    = math.Hypot(x2-x1, y2-y1)
	)
	for i := range X {
		sum += r.W[i] * f(X[i], Y[i])
	}
	sum *= 0.5 * L
	return
}

/*
GaussLegendre computes the N point Gauss rule from the eigen decomposition of the symmetric
tridiagonal Jacobi matrix of the Legendre recurrence (Golub-Welsch).
*/
func GaussLegendre(N int) (r Rule1D) {
	if N == 1 {
		return Rule1D{X: []float64{0}, W: []float64{2}}
	}
	var (
		JJ  = mat.NewSymDense(N, nil)
		eig mat.EigenSym
		VVr = mat.NewDense(N, N, nil)
	)
	for i := 1; i < N; i++ {
		ip := float64(i)
		b := ip / math.Sqrt(4*ip*ip-1)
		JJ.SetSym(i-1, i, b)
	}
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	r.X = eig.Values(nil)
	eig.VectorsTo(VVr)
	r.W = make([]float64, N)
	for i := range r.W {
		v := VVr.At(0, i)
		r.W[i] = 2 * v * v
	}
	return
}

/*
GaussLobatto computes the N point rule containing both endpoints. Interior nodes are the
roots of P'_{N-1}, found by Newton iteration from Chebyshev-Gauss-Lobatto guesses, and
the weights are 2/(N(N-1)P_{N-1}(x)^2).
*/
func GaussLobatto(N int) (r Rule1D) {
	var (
		Np = N - 1
	)
	r.X, r.W = make([]float64, N), make([]float64, N)
	if N < 2 {
		panic("Lobatto rules need at least two points")
	}
	for i := 0; i < N; i++ {
		x := -math.Cos(math.Pi * float64(i) / float64(Np))
		for iter := 0; iter < 100; iter++ {
			p, pm1 := legendre(Np, x)
			// Newton step on (1-x^2)P'_{N-1}(x), written with the recurrence
			dx := (x*p - pm1) / (float64(N) * p)
			x -= dx
			if math.Abs(dx) < 1.e-16 {
				break
			}
		}
		p, _ := legendre(Np, x)
		r.X[i] = x
		r.W[i] = 2. / (float64(Np*N) * p * p)
	}
	return
}

// legendre returns P_n(x) and P_{n-1}(x)
func legendre(n int, x float64) (p, pm1 float64) {
	p, pm1 = 1, 0
	for k := 1; k <= n; k++ {
		pm1, p = p, (float64(2*k-1)*x*p-float64(k-1)*pm1)/float64(k)
	}
	return
}
