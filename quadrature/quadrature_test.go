package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineRules(t *testing.T) {
	var (
		tol = 1.e-13
	)
	{ // Tabulated rules match the computed ones
		lob := GaussLobatto(7)
		leg := GaussLegendre(7)
		for i := 0; i < 7; i++ {
			assert.InDeltaf(t, Lobatto7.X[i], lob.X[i], tol, "Lobatto node %d", i)
			assert.InDeltaf(t, Lobatto7.W[i], lob.W[i], tol, "Lobatto weight %d", i)
			assert.InDeltaf(t, Legendre7.X[i], leg.X[i], tol, "Legendre node %d", i)
			assert.InDeltaf(t, Legendre7.W[i], leg.W[i], tol, "Legendre weight %d", i)
		}
	}
	{ // Polynomial exactness
		moment := func(p int) float64 {
			if p%2 == 1 {
				return 0
			}
			return 2. / float64(p+1)
		}
		for p := 0; p <= 13; p++ {
			f := func(x float64) float64 { return math.Pow(x, float64(p)) }
			assert.InDeltaf(t, moment(p), Legendre7.Integrate(f), tol, "Legendre degree %d", p)
			if p <= 11 {
				assert.InDeltaf(t, moment(p), Lobatto7.Integrate(f), tol, "Lobatto degree %d", p)
			}
		}
		// Lobatto with 7 points is not exact for x^12
		f := func(x float64) float64 { return math.Pow(x, 12) }
		assert.Greater(t, math.Abs(Lobatto7.Integrate(f)-2./13.), 1.e-6)
	}
	{ // Edge integrals carry the edge length
		L := Lobatto7.IntegrateEdge(0, 0, 3, 4, func(x, y float64) float64 { return 1 })
		assert.InDelta(t, 5., L, tol)
		// Integral of x along (0,0)-(1,0) is 1/2
		assert.InDelta(t, 0.5, Lobatto7.IntegrateEdge(0, 0, 1, 0, func(x, y float64) float64 { return x }), tol)
		X, Y := Lobatto7.EdgePoints(0, 1, 2, 1)
		assert.Equal(t, 0., X[0])
		assert.Equal(t, 2., X[6])
		assert.Equal(t, 1., Y[3])
	}
}

func TestNewEdgeRule(t *testing.T) {
	r, err := NewEdgeRule("lobatto", 7)
	assert.NoError(t, err)
	assert.Equal(t, Lobatto7, r)
	r, err = NewEdgeRule("Legendre", 7)
	assert.NoError(t, err)
	assert.Equal(t, Legendre7, r)
	r, err = NewEdgeRule("", 7)
	assert.NoError(t, err)
	assert.Equal(t, Lobatto7, r)
	{ // Computed sizes integrate their exact degree
		r, err = NewEdgeRule("legendre", 4) // Exact to degree 7
		assert.NoError(t, err)
		assert.InDelta(t, 2./7., r.Integrate(func(x float64) float64 { return math.Pow(x, 6) }), 1.e-14)
		r, err = NewEdgeRule("lobatto", 3) // Simpson's rule
		assert.NoError(t, err)
		assert.InDelta(t, 1./3., r.W[0], 1.e-14)
		assert.InDelta(t, 4./3., r.W[1], 1.e-14)
		assert.InDelta(t, 2./3., r.Integrate(func(x float64) float64 { return x * x }), 1.e-14)
	}
	_, err = NewEdgeRule("simpson", 3)
	assert.Error(t, err)
	_, err = NewEdgeRule("lobatto", 1)
	assert.Error(t, err)
}

func TestTriangleRule(t *testing.T) {
	var (
		tol = 1.e-14
	)
	mono := func(a, b int) func(r, s float64) float64 {
		return func(r, s float64) float64 { return math.Pow(r, float64(a)) * math.Pow(s, float64(b)) }
	}
	assert.InDelta(t, 0.5, Dunavant6.IntegrateReference(mono(0, 0)), tol)
	assert.InDelta(t, 1./30., Dunavant6.IntegrateReference(mono(4, 0)), tol)
	assert.InDelta(t, 1./180., Dunavant6.IntegrateReference(mono(2, 2)), tol)
	assert.InDelta(t, 1./120., Dunavant6.IntegrateReference(mono(3, 1)), tol)
	assert.InDelta(t, 1./20., Dunavant6.IntegrateReference(mono(3, 0)), tol)
	assert.InDelta(t, 1./60., Dunavant6.IntegrateReference(mono(2, 1)), tol)
	{ // Physical triangle: unit square half, both orientations
		X, Y := [3]float64{0, 1, 1}, [3]float64{0, 0, 1}
		assert.InDelta(t, 0.5, Dunavant6.IntegrateTriangle(X, Y, func(x, y float64) float64 { return 1 }), tol)
		// int_0^1 int_0^x x^2 y^2 dy dx = int x^5/3 = 1/18
		assert.InDelta(t, 1./18., Dunavant6.IntegrateTriangle(X, Y, func(x, y float64) float64 { return x * x * y * y }), tol)
		Xr, Yr := [3]float64{0, 1, 1}, [3]float64{0, 1, 0}
		assert.InDelta(t, -0.5, Dunavant6.IntegrateTriangle(Xr, Yr, func(x, y float64) float64 { return 1 }), tol)
		x, y, w := Dunavant6.TrianglePoints(X, Y)
		var sum float64
		for i := range w {
			sum += w[i] * x[i] * y[i]
		}
		// int_0^1 int_0^x x y dy dx = 1/8
		assert.InDelta(t, 1./8., sum, tol)
	}
}
