package dof

import (
	"fmt"

	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/types"
)

type Block struct {
	Name string
	Size int
}

// Layout is an ordered packing of unknown blocks into one solver vector
type Layout struct {
	Name   string
	Blocks []Block
}

type LayoutType uint8

const (
	DirichletLayout LayoutType = iota
	FlowLayout
	MHDLayout
)

var (
	LayoutNames = map[string]LayoutType{
		"dirichlet": DirichletLayout,
		"flow":      FlowLayout,
		"mhd":       MHDLayout,
	}
	LayoutPrintNames = []string{"dirichlet", "flow", "mhd"}
)

func (lt LayoutType) String() string { return LayoutPrintNames[lt] }

func NewLayoutType(label string) (lt LayoutType, err error) {
	var ok bool
	if lt, ok = LayoutNames[label]; !ok {
		err = fmt.Errorf("unknown layout %q, choose one of %v", label, LayoutPrintNames)
	}
	return
}

/*
NewLayout sizes a layout for the mesh:

	dirichlet: interior ux, interior uy, B, interior E, p
	flow:      interior ux, interior uy, interior mid-edge ux, interior mid-edge uy, p
	mhd:       interior ux, interior uy, interior mid-edge ux, interior mid-edge uy, B, interior E, p
*/
func NewLayout(lt LayoutType, pm *geometry2D.PolyMesh) (l Layout) {
	var (
		nIn  = len(pm.InteriorNodes)
		eIn  = len(pm.InteriorEdges)
		Ne   = pm.NumEdges()
		K    = pm.NumElements()
		ux   = Block{"ux", nIn}
		uy   = Block{"uy", nIn}
		mx   = Block{"mx", eIn}
		my   = Block{"my", eIn}
		B    = Block{"B", Ne}
		E    = Block{"E", nIn}
		p    = Block{"p", K}
		name = lt.String()
	)
	switch lt {
	case DirichletLayout:
		l = Layout{name, []Block{ux, uy, B, E, p}}
	case FlowLayout:
		l = Layout{name, []Block{ux, uy, mx, my, p}}
	case MHDLayout:
		l = Layout{name, []Block{ux, uy, mx, my, B, E, p}}
	}
	return
}

func (l Layout) NumDOF() (n int) {
	for _, b := range l.Blocks {
		n += b.Size
	}
	return
}

func (l Layout) BlockNames() (names []string) {
	for _, b := range l.Blocks {
		names = append(names, b.Name)
	}
	return
}

// Concatenate packs one array per block, in block order
func (l Layout) Concatenate(parts ...[]float64) (x []float64, err error) {
	if len(parts) != len(l.Blocks) {
		return nil, types.NewDimensionError(l.Name+" layout blocks", len(parts), len(l.Blocks))
	}
	x = make([]float64, 0, l.NumDOF())
	for i, b := range l.Blocks {
		if len(parts[i]) != b.Size {
			return nil, types.NewDimensionError(l.Name+" block "+b.Name, len(parts[i]), b.Size)
		}
		x = append(x, parts[i]...)
	}
	return
}

// Split is the inverse of Concatenate, the returned blocks are copies
func (l Layout) Split(x []float64) (parts [][]float64, err error) {
	if len(x) != l.NumDOF() {
		return nil, types.NewDimensionError(l.Name+" unknown vector", len(x), l.NumDOF())
	}
	var (
		offset int
	)
	parts = make([][]float64, len(l.Blocks))
	for i, b := range l.Blocks {
		parts[i] = make([]float64, b.Size)
		copy(parts[i], x[offset:offset+b.Size])
		offset += b.Size
	}
	return
}
