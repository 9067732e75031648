package utils

type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// Complement returns the sorted members of [0,N) that are not in I
func (I Index) Complement(N int) (r Index) {
	var (
		mark = make([]bool, N)
	)
	for _, val := range I {
		if val >= 0 && val < N {
			mark[val] = true
		}
	}
	for i, in := range mark {
		if !in {
			r = append(r, i)
		}
	}
	return
}
