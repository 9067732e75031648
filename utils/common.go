package utils

const (
	NODETOL = 1.e-12
	// RANKTOL is the smallest accepted ratio of smallest to largest singular value
	RANKTOL = 1.e-12
)
