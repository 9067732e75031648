package dof

import (
	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

// ValidatePartition checks that interior and boundary cover [0,N) exactly once
func ValidatePartition(kind string, N int, interior, boundary utils.Index) (err error) {
	var (
		seen = make([]bool, N)
	)
	for _, set := range []utils.Index{interior, boundary} {
		for _, i := range set {
			if i < 0 || i >= N {
				return types.NewPartitionError(kind, i, "index out of range")
			}
			if seen[i] {
				return types.NewPartitionError(kind, i, "index is in both sets or repeated")
			}
			seen[i] = true
		}
	}
	for i, s := range seen {
		if !s {
			return types.NewPartitionError(kind, i, "index is in neither set")
		}
	}
	return
}

// Gather copies global[index[i]] into a new array
func Gather(global []float64, index utils.Index) (values []float64, err error) {
	values = make([]float64, len(index))
	for i, ind := range index {
		if ind < 0 || ind >= len(global) {
			return nil, types.NewPartitionError("gather", ind, "index out of range")
		}
		values[i] = global[ind]
	}
	return
}

// Partition splits a global array into its interior and boundary values
func Partition(global []float64, interior, boundary utils.Index) (in, bnd []float64, err error) {
	if err = ValidatePartition("partition", len(global), interior, boundary); err != nil {
		return
	}
	if in, err = Gather(global, interior); err != nil {
		return
	}
	bnd, err = Gather(global, boundary)
	return
}

// Inject writes values into global at the positions of index, in place. Nothing is written
// unless every index is valid.
func Inject(global, values []float64, index utils.Index) (err error) {
	if len(values) != len(index) {
		return types.NewDimensionError("injected values", len(values), len(index))
	}
	for _, ind := range index {
		if ind < 0 || ind >= len(global) {
			return types.NewPartitionError("inject", ind, "index out of range")
		}
	}
	for i, ind := range index {
		global[ind] = values[i]
	}
	return
}
