package mimetic

/*
ReconstructB returns the constant field (1/A) sum_i R_i b_i of element k from local signed edge
fluxes b. The reconstruction is exact for constant fields.
*/
func (op *Operators) ReconstructB(k int, b []float64) (Bx, By float64) {
	var (
		R = op.REList[k]
		A = op.Mesh.Element(k).Area
	)
	for i, bi := range b {
		Bx += R.At(i, 0) * bi
		By += R.At(i, 1) * bi
	}
	Bx /= A
	By /= A
	return
}

// PiRTB evaluates the reconstruction at the element vertices followed by the mid-edges
func (op *Operators) PiRTB(k int, b []float64) (Bx, By []float64) {
	var (
		n      = op.Mesh.Element(k).NumEdges()
		bx, by = op.ReconstructB(k, b)
	)
	Bx, By = make([]float64, 2*n), make([]float64, 2*n)
	for i := range Bx {
		Bx[i], By[i] = bx, by
	}
	return
}

// Cross2Dto1D is the scalar u x B = ux By - uy Bx, pointwise
func Cross2Dto1D(ux, uy, Bx, By []float64) (c []float64) {
	c = make([]float64, len(ux))
	for i := range c {
		c[i] = ux[i]*By[i] - uy[i]*Bx[i]
	}
	return
}

// Cross1Dto2D is the vector J x B = (J By, -J Bx) for an out of plane J, pointwise
func Cross1Dto2D(J, Bx, By []float64) (cx, cy []float64) {
	cx, cy = make([]float64, len(J)), make([]float64, len(J))
	for i, j := range J {
		cx[i] = j * By[i]
		cy[i] = -j * Bx[i]
	}
	return
}

// OhmCurrent is J = E + u x B, pointwise
func OhmCurrent(E, ux, uy, Bx, By []float64) (J []float64) {
	J = Cross2Dto1D(ux, uy, Bx, By)
	for i := range J {
		J[i] += E[i]
	}
	return
}
