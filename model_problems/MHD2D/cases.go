package MHD2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gomhd/dof"
)

type CaseType uint

const (
	QUADRATIC CaseType = iota
	CONSTANT
	TRIG
)

var (
	CaseNames = map[string]CaseType{
		"quadratic": QUADRATIC,
		"constant":  CONSTANT,
		"trig":      TRIG,
	}
	CasePrintNames = []string{"Quadratic Velocity", "Constant State", "Trigonometric Manufactured Solution"}
)

func (ct CaseType) Print() string { return CasePrintNames[ct] }

func NewCaseType(label string) (ct CaseType, err error) {
	var ok bool
	if len(label) == 0 {
		err = fmt.Errorf("empty case type, must be one of %v", CaseNames)
		return
	}
	if ct, ok = CaseNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unable to use case type named %s", label)
	}
	return
}

/*
AnalyticCase is an exact solution of

	u_t + (u.grad)u - (1/Re) lap u - (J z) x B + grad p = F
	B_t + curl E = G
	J - (1/Rm) rot B = H,  J = E + u x B
	div u = 0
*/
type AnalyticCase struct {
	Type CaseType
	U    dof.VectorField
	B    dof.VectorField
	E    dof.ScalarField
	P    dof.ScalarField
	F    dof.VectorField
	G    dof.VectorField
	H    dof.ScalarField
}

func NewAnalyticCase(ct CaseType, Re, Rm float64) (ac AnalyticCase) {
	ac.Type = ct
	zeroV := dof.ConstantVector(0, 0)
	switch ct {
	case QUADRATIC:
		// B = (1,1), E = 0, so J = y^2 - x^2
		ac.U = func(x, y, t float64) (float64, float64) { return y * y, x * x }
		ac.B = dof.ConstantVector(1, 1)
		ac.E = dof.ConstantScalar(0)
		ac.P = func(x, y, t float64) float64 { return 2*x + 2*y }
		ac.F = func(x, y, t float64) (float64, float64) {
			J := y*y - x*x
			return 2*x*x*y - 2/Re + 2 + J, 2*x*y*y - 2/Re + 2 - J
		}
		ac.G = zeroV
		ac.H = func(x, y, t float64) float64 { return y*y - x*x }
	case CONSTANT:
		ac.U = dof.ConstantVector(1, 1)
		ac.B = dof.ConstantVector(1, 1)
		ac.E = dof.ConstantScalar(0)
		ac.P = dof.ConstantScalar(0)
		ac.F = zeroV
		ac.G = zeroV
		ac.H = dof.ConstantScalar(0)
	case TRIG:
		ac.U = func(x, y, t float64) (float64, float64) { return math.Exp(t) * math.Cos(y), 0 }
		ac.B = func(x, y, t float64) (float64, float64) { return 0, math.Cos(x + t) }
		ac.E = func(x, y, t float64) float64 { return math.Cos(x + t) }
		ac.P = func(x, y, t float64) float64 { return -x * math.Cos(y) }
		ac.F = func(x, y, t float64) (float64, float64) {
			var (
				et = math.Exp(t) * math.Cos(y)
				c  = math.Cos(x + t)
				J  = c * (1 + et)
			)
			return et*(1+1/Re) + J*c - math.Cos(y), x * math.Sin(y)
		}
		ac.G = zeroV
		ac.H = func(x, y, t float64) float64 {
			return math.Cos(x+t)*(1+math.Exp(t)*math.Cos(y)) + math.Sin(x+t)/Rm
		}
	}
	return
}
