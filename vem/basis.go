package vem

// NBasis is the dimension of the vector polynomial space P2 x P2
const (
	NMonomials = 6
	NBasis     = 2 * NMonomials
)

/*
The vector basis is p_j = m_{j/2} e_{j%2} over the scalar monomials m = {1, x, y, x^2, y^2, xy},
in absolute coordinates.
*/
func monomials(x, y float64) [NMonomials]float64 {
	return [NMonomials]float64{1, x, y, x * x, y * y, x * y}
}

func monomialGradients(x, y float64) [NMonomials][2]float64 {
	return [NMonomials][2]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{2 * x, 0},
		{0, 2 * y},
		{y, x},
	}
}

// Evaluate returns the field of the polynomial with basis coefficients c at (x,y)
func Evaluate(c []float64, x, y float64) (ux, uy float64) {
	m := monomials(x, y)
	for j := 0; j < NBasis; j++ {
		if j%2 == 0 {
			ux += c[j] * m[j/2]
		} else {
			uy += c[j] * m[j/2]
		}
	}
	return
}

// edgeTrace holds the quadratic Lagrange functions of the start vertex, mid-edge and end vertex on [-1,1]
func edgeTrace(t float64) (start, mid, end float64) {
	start = 0.5 * t * (t - 1)
	mid = 1 - t*t
	end = 0.5 * t * (t + 1)
	return
}
