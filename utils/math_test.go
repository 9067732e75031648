package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	assert.Equal(t, 1., POW(3, 0))
	assert.Equal(t, 1024., POW(2, 10))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.Equal(t, -0.125, POW(-0.5, 3))
	assert.InDelta(t, math.Pow(1.5, 20), POW(1.5, 20), 1.e-9)
	assert.Equal(t, []float64{2, 2, 2}, ConstArray(3, 2))
}
