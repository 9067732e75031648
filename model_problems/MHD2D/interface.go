package MHD2D

import (
	"fmt"

	"github.com/notargets/gomhd/dof"
	"github.com/notargets/gomhd/utils"
	"gonum.org/v1/gonum/floats"
)

// block maps a layout block name to the array of f it packs and the index set it covers
func (c *MHD) block(f Fields, name string) (global []float64, index utils.Index) {
	var (
		pm = c.Mesh
	)
	switch name {
	case "ux":
		return f.UNx, pm.InteriorNodes
	case "uy":
		return f.UNy, pm.InteriorNodes
	case "mx":
		return f.UMx, pm.InteriorEdges
	case "my":
		return f.UMy, pm.InteriorEdges
	case "B":
		return f.B, utils.NewRange(0, pm.NumEdges()-1)
	case "E":
		return f.E, pm.InteriorNodes
	case "p":
		return f.P, utils.NewRange(0, pm.NumElements()-1)
	}
	panic(fmt.Errorf("unknown layout block %s", name))
}

// fields shares the state arrays without copying, the caller holds the lock
func (c *MHD) fields() Fields {
	return Fields{
		UNx: c.UNx, UNy: c.UNy,
		UMx: c.UMx, UMy: c.UMy,
		B: c.B, E: c.E, P: c.P,
	}
}

func (c *MHD) NumDOF() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Layout.NumDOF()
}

// PackFields gathers the solved-for values of f in layout order
func (c *MHD) PackFields(f Fields) (x []float64, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pack(f)
}

func (c *MHD) pack(f Fields) (x []float64, err error) {
	parts := make([][]float64, len(c.Layout.Blocks))
	for i, b := range c.Layout.Blocks {
		global, index := c.block(f, b.Name)
		if parts[i], err = dof.Gather(global, index); err != nil {
			return
		}
	}
	return c.Layout.Concatenate(parts...)
}

// ConcatenateUnknowns packs the solved-for values of the current state in layout order
func (c *MHD) ConcatenateUnknowns() (x []float64, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pack(c.fields())
}

// SplitUnknowns unpacks a solver vector into one array per layout block
func (c *MHD) SplitUnknowns(x []float64) ([][]float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Layout.Split(x)
}

// UpdateInterior writes a solver vector back into the state, boundary values are untouched.
// A vector containing NaN is rejected and leaves the state unchanged.
func (c *MHD) UpdateInterior(x []float64) (err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var parts [][]float64
	if floats.HasNaN(x) {
		return fmt.Errorf("%s unknown vector contains NaN", c.Layout.Name)
	}
	if parts, err = c.Layout.Split(x); err != nil {
		return
	}
	f := c.fields()
	for i, b := range c.Layout.Blocks {
		global, index := c.block(f, b.Name)
		if err = dof.Inject(global, parts[i], index); err != nil {
			return
		}
	}
	return
}
