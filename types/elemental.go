package types

import (
	"fmt"
	"math"
)

const packShift = 32

/*
EdgeKey identifies an undirected mesh edge. The two vertex indices are packed low index first,
so the edges [4,0] and [0,4] share the key.
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) EdgeKey {
	checkPackable(verts, math.MaxUint32)
	lo, hi := verts[0], verts[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return EdgeKey(uint64(lo) | uint64(hi)<<packShift)
}

// Vertices returns the packed indices in ascending order
func (ek EdgeKey) Vertices() [2]int {
	return [2]int{int(ek & math.MaxUint32), int(ek >> packShift)}
}

/*
EdgeInt is a directed mesh edge: the magnitude is the EdgeKey of its vertices and the sign is
negative when the edge is traversed from the higher to the lower vertex index. Element loops
use it to detect the orientation of a shared edge relative to its first owner.
*/
type EdgeInt int64

func NewEdgeInt(verts [2]int) EdgeInt {
	checkPackable(verts, math.MaxUint32>>1)
	e := EdgeInt(NewEdgeKey(verts))
	if verts[0] > verts[1] {
		e = -e
	}
	return e
}

func checkPackable(verts [2]int, limit int) {
	for _, v := range verts {
		if v < 0 || v > limit {
			panic(fmt.Errorf("unable to pack edge vertices %d and %d", verts[0], verts[1]))
		}
	}
}

// GetVertices returns the vertices in traversal order
func (e EdgeInt) GetVertices() (verts [2]int) {
	verts = e.GetKey().Vertices()
	if e < 0 {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (e EdgeInt) GetKey() EdgeKey {
	if e < 0 {
		return EdgeKey(-e)
	}
	return EdgeKey(e)
}

// Sign is +1 when the traversal runs from the lower to the higher vertex index, -1 otherwise
func (e EdgeInt) Sign() int {
	if e < 0 {
		return -1
	}
	return 1
}
