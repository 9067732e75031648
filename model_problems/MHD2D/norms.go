package MHD2D

import (
	"math"

	"github.com/notargets/gomhd/dof"
	"github.com/notargets/gomhd/mimetic"
	"gonum.org/v1/gonum/floats"
)

// elementSum adds f(k) over all elements, one partial sum per partition
func (c *MHD) elementSum(f func(k int) (float64, error)) (sum float64, err error) {
	partial := make([]float64, c.Partitions.ParallelDegree)
	err = c.Partitions.ParallelFor(func(np, kMin, kMax int) (err error) {
		var v float64
		for k := kMin; k < kMax; k++ {
			if v, err = f(k); err != nil {
				return
			}
			partial[np] += v
		}
		return
	})
	sum = floats.Sum(partial)
	return
}

type velocityForm func(k int, a, b []float64) (float64, error)

func (c *MHD) velocityNorm(form velocityForm, ux, uy, mx, my []float64) (norm float64, err error) {
	sum, err := c.elementSum(func(k int) (v float64, err error) {
		var u []float64
		if u, err = c.DOF.RestrictVelocity(k, ux, uy, mx, my); err != nil {
			return
		}
		return form(k, u, u)
	})
	if err != nil {
		return
	}
	return math.Sqrt(sum), nil
}

// TVhL2Norm is the stabilized L2 norm of a discrete velocity
func (c *MHD) TVhL2Norm(ux, uy, mx, my []float64) (float64, error) {
	return c.velocityNorm(c.VS.FullInnerProduct, ux, uy, mx, my)
}

// TVhH1Norm is the stabilized H1 seminorm of a discrete velocity
func (c *MHD) TVhH1Norm(ux, uy, mx, my []float64) (float64, error) {
	return c.velocityNorm(c.VS.H1InnerProduct, ux, uy, mx, my)
}

// TVhH1SemiNorm uses the consistency part of the H1 form only
func (c *MHD) TVhH1SemiNorm(ux, uy, mx, my []float64) (float64, error) {
	return c.velocityNorm(c.VS.SemiInnerProduct, ux, uy, mx, my)
}

// PhInnerProduct is the pressure inner product of element k
func (c *MHD) PhInnerProduct(k int, p, q []float64) float64 {
	return c.Mesh.Element(k).Area * p[k] * q[k]
}

func (c *MHD) PhL2Norm(p []float64) (norm float64, err error) {
	if err = c.DOF.CheckLength("pressure", p, dof.ElementDOF); err != nil {
		return
	}
	sum, err := c.elementSum(func(k int) (float64, error) { return c.PhInnerProduct(k, p, p), nil })
	return math.Sqrt(sum), err
}

// EdgeL2Norm is the mimetic L2 norm of a global edge flux array
func (c *MHD) EdgeL2Norm(b []float64) (norm float64, err error) {
	sum, err := c.elementSum(func(k int) (v float64, err error) {
		var bl []float64
		if bl, err = c.DOF.RestrictToElement(k, b, dof.EdgeDOF); err != nil {
			return
		}
		return c.Ops.EdgeInnerProduct(k, bl, bl)
	})
	return math.Sqrt(sum), err
}

// NodeL2Norm is the mimetic L2 norm of a global nodal array
func (c *MHD) NodeL2Norm(v []float64) (norm float64, err error) {
	sum, err := c.elementSum(func(k int) (s float64, err error) {
		var vl []float64
		if vl, err = c.DOF.RestrictToElement(k, v, dof.NodeDOF); err != nil {
			return
		}
		return c.Ops.NodeInnerProduct(k, vl, vl)
	})
	return math.Sqrt(sum), err
}

// BDivSquared is the sum of squared net element fluxes of the current magnetic field
func (c *MHD) BDivSquared() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Ops.DivSquared(c.B)
}

// DivU returns the mean divergence of the current velocity per element
func (c *MHD) DivU() (div []float64, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	div = make([]float64, c.Mesh.NumElements())
	for k := range div {
		var (
			u          []float64
			flux, area float64
		)
		if u, err = c.localVelocity(k); err != nil {
			return
		}
		if flux, area, err = c.VS.DivU(k, u); err != nil {
			return
		}
		div[k] = flux / area
	}
	return
}

/*
CurrentDensity returns J = E + u x B at the vertices followed by the mid-edges of element k.
B is the constant flux reconstruction and E at a mid-edge is the mean of its end values.
*/
func (c *MHD) CurrentDensity(k int) (J []float64, err error) {
	var (
		u, b []float64
		el   = c.Mesh.Element(k)
		n    = el.NumEdges()
	)
	c.mu.RLock()
	defer c.mu.RUnlock()
	if u, err = c.localVelocity(k); err != nil {
		return
	}
	if b, err = c.localMagnetic(k); err != nil {
		return
	}
	E := make([]float64, 2*n)
	for i, v := range el.Vertices {
		E[i] = c.E[v]
		en := c.Mesh.EdgeNodes[el.Edges[i]]
		E[n+i] = 0.5 * (c.E[en[0]] + c.E[en[1]])
	}
	Bx, By := c.Ops.PiRTB(k, b)
	ux := append(append([]float64{}, u[:n]...), u[2*n:3*n]...)
	uy := append(append([]float64{}, u[n:2*n]...), u[3*n:]...)
	J = mimetic.OhmCurrent(E, ux, uy, Bx, By)
	return
}

// Norms collects the diagnostics of a discrete state
type Norms struct {
	VelocityL2, VelocityH1, VelocitySemiH1 float64
	MagneticL2, ElectricL2, PressureL2     float64
	DivBSquared                            float64
}

func (c *MHD) ComputeNorms(f Fields) (n Norms, err error) {
	if n.VelocityL2, err = c.TVhL2Norm(f.UNx, f.UNy, f.UMx, f.UMy); err != nil {
		return
	}
	if n.VelocityH1, err = c.TVhH1Norm(f.UNx, f.UNy, f.UMx, f.UMy); err != nil {
		return
	}
	if n.VelocitySemiH1, err = c.TVhH1SemiNorm(f.UNx, f.UNy, f.UMx, f.UMy); err != nil {
		return
	}
	if n.MagneticL2, err = c.EdgeL2Norm(f.B); err != nil {
		return
	}
	if n.ElectricL2, err = c.NodeL2Norm(f.E); err != nil {
		return
	}
	if n.PressureL2, err = c.PhL2Norm(f.P); err != nil {
		return
	}
	n.DivBSquared = c.Ops.DivSquared(f.B)
	return
}

// Subtract returns a - b field by field
func (a Fields) Subtract(b Fields) (d Fields) {
	sub := func(x, y []float64) []float64 {
		r := make([]float64, len(x))
		floats.SubTo(r, x, y)
		return r
	}
	return Fields{
		UNx: sub(a.UNx, b.UNx), UNy: sub(a.UNy, b.UNy),
		UMx: sub(a.UMx, b.UMx), UMy: sub(a.UMy, b.UMy),
		B: sub(a.B, b.B), E: sub(a.E, b.E), P: sub(a.P, b.P),
	}
}

/*
ReferenceNorms integrates the exact fields of an analytic case at time t over every element.
Velocity gradients are taken by central differences of step gradStep.
*/
func (c *MHD) ReferenceNorms(ac AnalyticCase, t float64) (n Norms, err error) {
	const gradStep = 1.e-5
	var (
		sq = func(a, b float64) float64 { return a*a + b*b }
		du = func(x, y float64) float64 {
			uxp, uyp := ac.U(x+gradStep, y, t)
			uxm, uym := ac.U(x-gradStep, y, t)
			vxp, vyp := ac.U(x, y+gradStep, t)
			vxm, vym := ac.U(x, y-gradStep, t)
			h2 := 2 * gradStep
			return sq((uxp-uxm)/h2, (vxp-vxm)/h2) + sq((uyp-uym)/h2, (vyp-vym)/h2)
		}
		integrands = []func(x, y float64) float64{
			func(x, y float64) float64 { return sq(ac.U(x, y, t)) },
			du,
			func(x, y float64) float64 { return sq(ac.B(x, y, t)) },
			func(x, y float64) float64 { e := ac.E(x, y, t); return e * e },
			func(x, y float64) float64 { p := ac.P(x, y, t); return p * p },
		}
		sums = make([]float64, len(integrands))
	)
	for i, f := range integrands {
		if sums[i], err = c.elementSum(func(k int) (float64, error) {
			return c.Mesh.Element(k).Poly.Integrate(f), nil
		}); err != nil {
			return
		}
	}
	n = Norms{
		VelocityL2:     math.Sqrt(sums[0]),
		VelocityH1:     math.Sqrt(sums[1]),
		VelocitySemiH1: math.Sqrt(sums[1]),
		MagneticL2:     math.Sqrt(sums[2]),
		ElectricL2:     math.Sqrt(sums[3]),
		PressureL2:     math.Sqrt(sums[4]),
	}
	return
}

// Deviation is |a - b| per norm, DivBSquared is taken from a
func (a Norms) Deviation(b Norms) Norms {
	return Norms{
		VelocityL2:     math.Abs(a.VelocityL2 - b.VelocityL2),
		VelocityH1:     math.Abs(a.VelocityH1 - b.VelocityH1),
		VelocitySemiH1: math.Abs(a.VelocitySemiH1 - b.VelocitySemiH1),
		MagneticL2:     math.Abs(a.MagneticL2 - b.MagneticL2),
		ElectricL2:     math.Abs(a.ElectricL2 - b.ElectricL2),
		PressureL2:     math.Abs(a.PressureL2 - b.PressureL2),
		DivBSquared:    a.DivBSquared,
	}
}
