package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse(t *testing.T) {
	D := NewDOK(2, 3)
	D.Set(0, 0, 1).Set(0, 2, -2).Set(1, 1, 3)
	C := D.ToCSR()
	nr, nc := C.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 3, nc)
	assert.Equal(t, 3, C.NNZ())
	assert.Equal(t, -2., C.At(0, 2))
	assert.Equal(t, []float64{-1, 6}, C.MulVec([]float64{1, 2, 1}))
	assert.Panics(t, func() { C.MulVec([]float64{1, 2}) })
	D.SetReadOnly("D")
	assert.Panics(t, func() { D.Set(1, 1, 0) })
}
