package mimetic

import (
	"errors"

	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

/*
BuildLocalMass assembles the local mimetic inner product matrix

	M = R (N^T R)^-1 R^T + gamma (I - N (N^T N)^-1 N^T),  gamma = trace(R R^T) / (k A)

for an n x k consistency matrix N and stability matrix R. Rank deficiency of N or N^T R is
reported as a *types.GeometryError with Element -1, callers fill in the element.
*/
func BuildLocalMass(N, R utils.Matrix, A float64) (M utils.Matrix, err error) {
	var (
		n, k   = N.Dims()
		nr, kr = R.Dims()
	)
	if n != nr || k != kr {
		err = types.NewDimensionError("stability matrix rows", nr, n)
		return
	}
	if A <= 0 {
		err = types.NewGeometryError(-1, "non positive area %g", A)
		return
	}
	if ok, ratio := N.FullColumnRank(utils.RANKTOL); !ok {
		err = types.NewGeometryError(-1, "consistency matrix is rank deficient, singular value ratio %g", ratio)
		return
	}
	NtR := N.Transpose().Mul(R)
	if ok, ratio := NtR.FullColumnRank(utils.RANKTOL); !ok {
		err = types.NewGeometryError(-1, "N^T R is singular, singular value ratio %g", ratio)
		return
	}
	var NtRInv, NtNInv utils.Matrix
	if NtRInv, err = NtR.Inverse(); err != nil {
		return
	}
	if NtNInv, err = N.Transpose().Mul(N).Inverse(); err != nil {
		return
	}
	M0 := R.Mul(NtRInv).Mul(R.Transpose())
	gamma := R.Mul(R.Transpose()).Trace() / (float64(k) * A)
	P := N.Mul(NtNInv).Mul(N.Transpose())
	M1 := utils.NewIdentity(n).Subtract(P).Scale(gamma)
	M = M0.Add(M1)
	return
}

// withElement stamps the element index onto a geometry error from BuildLocalMass
func withElement(err error, k int) error {
	var gerr *types.GeometryError
	if errors.As(err, &gerr) {
		return types.NewGeometryError(k, "%s", gerr.Reason)
	}
	return err
}
