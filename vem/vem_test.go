package vem

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type field func(x, y float64) (ux, uy float64)

// sample returns the local velocity vector of element k in [vx, vy, mx, my] order
func sample(pm *geometry2D.PolyMesh, k int, f field) (u []float64) {
	var (
		el = pm.Element(k)
		n  = el.NumEdges()
	)
	u = make([]float64, 4*n)
	for i := 0; i < n; i++ {
		v := pm.Nodes[el.Vertices[i]]
		m := pm.MidNodes[el.Edges[i]]
		u[i], u[n+i] = f(v.X[0], v.X[1])
		u[2*n+i], u[3*n+i] = f(m.X[0], m.X[1])
	}
	return
}

func referenceSpace(t *testing.T) (vs *VelocitySpace) {
	pm, err := geometry2D.NewReferenceMesh()
	require.NoError(t, err)
	vs, err = NewVelocitySpace(pm, 4)
	require.NoError(t, err)
	return
}

func TestMomentMatrix(t *testing.T) {
	var (
		vs  = referenceSpace(t)
		K   = vs.Projectors[0].K
		tol = 1.e-13
	)
	checks := []struct {
		i, j int
		val  float64
	}{
		{0, 0, 1}, {1, 3, 0.5}, {1, 5, -0.5}, {2, 2, 1. / 3.}, {4, 4, 1. / 3.},
		{2, 4, -0.25}, {6, 6, 0.2}, {8, 8, 0.2}, {10, 10, 1. / 9.}, {8, 10, -1. / 8.},
		{6, 10, -1. / 8.}, {5, 7, -1. / 6.}, {4, 10, 1. / 6.}, {3, 7, 0.25}, {4, 8, -0.25},
		{0, 1, 0}, {2, 3, 0},
	}
	for _, c := range checks {
		assert.InDeltaf(t, c.val, K.At(c.i, c.j), tol, "K[%d][%d]", c.i, c.j)
		assert.InDeltaf(t, c.val, K.At(c.j, c.i), tol, "K[%d][%d]", c.j, c.i)
	}
	H := vs.Projectors[0].H
	assert.InDelta(t, 0., H.At(0, 0), tol)
	assert.InDelta(t, 1., H.At(2, 2), tol)
	assert.InDelta(t, 4./3., H.At(6, 6), tol)
	assert.InDelta(t, 1., H.At(2, 6), tol) // grad x : grad x^2 = 2x
	assert.True(t, vs.Projectors[0].G.IsSymmetric(1.e-14))
	r, c := vs.Projectors[0].B.Dims()
	assert.Equal(t, NBasis, r)
	assert.Equal(t, 16, c)
}

func TestProjectorReproduction(t *testing.T) {
	affine := func(x, y float64) (float64, float64) { return 1 + 2*x - y, 3 - x + 0.5*y }
	affineCoeffs := []float64{1, 3, 2, -1, -1, 0.5, 0, 0, 0, 0, 0, 0}
	quadratic := func(x, y float64) (float64, float64) { return x*y - y*y, 2*x*x + y }
	quadraticCoeffs := []float64{0, 0, 0, 0, 0, 1, 0, 2, -1, 0, 1, 0}

	meshes := []func() (*geometry2D.PolyMesh, error){
		geometry2D.NewReferenceMesh,
		func() (*geometry2D.PolyMesh, error) { return geometry2D.NewPerturbedQuadMesh(3, 0.25, 7) },
		func() (*geometry2D.PolyMesh, error) { return geometry2D.NewTriangleMesh(2) },
		func() (*geometry2D.PolyMesh, error) { return geometry2D.NewMedianDualMesh(2) },
	}
	for _, newMesh := range meshes {
		pm, err := newMesh()
		require.NoError(t, err)
		vs, err := NewVelocitySpace(pm, 0)
		require.NoError(t, err)
		for k := 0; k < pm.NumElements(); k++ {
			p := vs.Projectors[k]
			// GI B is the projection
			c := p.GI.Mul(p.B).MulVec(sample(pm, k, affine))
			for j := range c {
				assert.InDeltaf(t, affineCoeffs[j], c[j], 1.e-9, "element %d coefficient %d", k, j)
			}
			u := sample(pm, k, quadratic)
			c = p.Project(u)
			for j := range c {
				assert.InDeltaf(t, quadraticCoeffs[j], c[j], 1.e-9, "element %d coefficient %d", k, j)
			}
			// Quadratic fields leave no residual for the stabilization
			assert.InDelta(t, 0., p.stabilization(u, u), 1.e-12)
			ux, uy := Evaluate(c, 0.1, -0.3)
			ex, ey := quadratic(0.1, -0.3)
			assert.InDelta(t, ex, ux, 1.e-9)
			assert.InDelta(t, ey, uy, 1.e-9)
		}
	}
}

func TestInnerProducts(t *testing.T) {
	var (
		vs  = referenceSpace(t)
		pm  = vs.Mesh
		tol = 1.e-10
	)
	u := sample(pm, 0, func(x, y float64) (float64, float64) { return x, y })
	assert.InDelta(t, 2., must(t)(vs.SemiInnerProduct(0, u, u)), tol)
	one := sample(pm, 0, func(x, y float64) (float64, float64) { return 1, 1 })
	assert.InDelta(t, 2., must(t)(vs.FullInnerProduct(0, one, one)), tol)
	assert.InDelta(t, 0., must(t)(vs.SemiInnerProduct(0, one, one)), tol)
	{ // Wrong length local vectors are a dimension mismatch
		for _, form := range []func(k int, a, b []float64) (float64, error){
			vs.SemiInnerProduct, vs.FullInnerProduct, vs.H1InnerProduct,
		} {
			_, err := form(0, one[:3], one)
			assert.True(t, errors.Is(err, types.ErrDimensionMismatch))
			var derr *types.DimensionError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, 3, derr.Have)
			assert.Equal(t, 16, derr.Want)
			_, err = form(0, one, one[:15])
			assert.True(t, errors.Is(err, types.ErrDimensionMismatch))
		}
		_, _, err := vs.DivU(0, one[:3])
		assert.True(t, errors.Is(err, types.ErrDimensionMismatch))
	}

	rnd := rand.New(rand.NewSource(11))
	for k := 0; k < pm.NumElements(); k++ {
		v := make([]float64, 16)
		for i := range v {
			v[i] = rnd.Float64() - 0.5
		}
		assert.Greater(t, must(t)(vs.FullInnerProduct(k, v, v)), 0.)
		assert.Greater(t, must(t)(vs.H1InnerProduct(k, v, v)), 0.)
		assert.Greater(t, vs.Projectors[k].SK, 0.)
		assert.Greater(t, vs.Projectors[k].SH, 0.)
	}
}

func TestNormScenario(t *testing.T) {
	f := func(x, y float64) (float64, float64) { return y * y, x * x }
	meshes := []func() (*geometry2D.PolyMesh, error){
		geometry2D.NewReferenceMesh,
		func() (*geometry2D.PolyMesh, error) { return geometry2D.NewStructuredQuadMesh(4) },
		func() (*geometry2D.PolyMesh, error) { return geometry2D.NewPerturbedQuadMesh(4, 0.2, 5) },
		func() (*geometry2D.PolyMesh, error) { return geometry2D.NewTriangleMesh(3) },
		func() (*geometry2D.PolyMesh, error) { return geometry2D.NewMedianDualMesh(3) },
	}
	for im, newMesh := range meshes {
		pm, err := newMesh()
		require.NoError(t, err)
		vs, err := NewVelocitySpace(pm, 2)
		require.NoError(t, err)
		var l2, h1 float64
		for k := 0; k < pm.NumElements(); k++ {
			u := sample(pm, k, f)
			l2 += must(t)(vs.FullInnerProduct(k, u, u))
			h1 += must(t)(vs.H1InnerProduct(k, u, u))
		}
		assert.InDeltaf(t, 8./5., l2, 1.e-9, "mesh %d", im)
		assert.InDeltaf(t, 32./3., h1, 1.e-9, "mesh %d", im)
	}
}

func TestDivU(t *testing.T) {
	pm, err := geometry2D.NewMedianDualMesh(2)
	require.NoError(t, err)
	vs, err := NewVelocitySpace(pm, 1)
	require.NoError(t, err)
	for k := 0; k < pm.NumElements(); k++ {
		u := sample(pm, k, func(x, y float64) (float64, float64) { return y * y, x * x })
		flux, area, err := vs.DivU(k, u)
		require.NoError(t, err)
		assert.InDeltaf(t, 0., flux, 1.e-13, "element %d", k)
		assert.InDelta(t, pm.Element(k).Area, area, 1.e-15)
		u = sample(pm, k, func(x, y float64) (float64, float64) { return x * x, y })
		// div = 2x + 1
		flux, area, err = vs.DivU(k, u)
		require.NoError(t, err)
		exact := 2*pm.Element(k).Poly.Moment(1, 0) + area
		assert.InDeltaf(t, exact, flux, 1.e-12, "element %d", k)
	}
}

// must unwraps a value that is expected to come with a nil error
func must(t *testing.T) func(v float64, err error) float64 {
	return func(v float64, err error) float64 {
		require.NoError(t, err)
		return v
	}
}
