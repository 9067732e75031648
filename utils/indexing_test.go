package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	assert.Equal(t, Index{2, 3, 4}, NewRange(2, 4))
	assert.Equal(t, 0, len(NewRange(3, 2)))
	I := Index{5, 1, 3}
	assert.Equal(t, Index{0, 2, 4, 6}, I.Complement(7))
	assert.Equal(t, Index{0, 1, 2}, Index{-1, 9}.Complement(3))
}
