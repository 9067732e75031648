package MHD2D

import (
	"fmt"

	"github.com/notargets/gomhd/dof"
	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/utils"
)

// BoundaryData holds the Dirichlet data for the velocity and the electric field
type BoundaryData struct {
	U dof.VectorField
	E dof.ScalarField
}

/*
Sources holds the momentum (F), induction (G) and Ohm's law (H) source functions along with their
latest samples: F at nodes and mid-edges, G as edge fluxes, H at nodes.
*/
type Sources struct {
	F, G               dof.VectorField
	H                  dof.ScalarField
	Time               float64 // Evaluation time of the samples
	FNx, FNy, FMx, FMy []float64
	GE                 []float64
	HN                 []float64
}

// SetBoundaryAndSources installs boundary and source data and samples the sources for t = 0
func (c *MHD) SetBoundaryAndSources(ub dof.VectorField, Eb dof.ScalarField, f, g dof.VectorField, h dof.ScalarField) {
	c.mu.Lock()
	c.bc = &BoundaryData{U: ub, E: Eb}
	c.sources = Sources{F: f, G: g, H: h}
	c.mu.Unlock()
	c.UpdateSources(0)
}

// SetCase installs the boundary and source data of an analytic case
func (c *MHD) SetCase(ac AnalyticCase) {
	c.SetBoundaryAndSources(ac.U, ac.E, ac.F, ac.G, ac.H)
}

// UpdateSources re-samples the source functions at t + theta dt
func (c *MHD) UpdateSources(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var (
		s  = &c.sources
		tt = c.ThetaTime(t)
	)
	if s.F == nil {
		return
	}
	s.Time = tt
	s.FNx, s.FNy = dof.SampleVector(s.F, c.DOF.Points(dof.NodeDOF), tt)
	s.FMx, s.FMy = dof.SampleVector(s.F, c.DOF.Points(dof.MidEdgeDOF), tt)
	s.GE = c.DOF.EdgeCirculation(s.G, tt)
	s.HN = dof.SampleNodal(s.H, c.DOF.Points(dof.NodeDOF), tt)
}

func (c *MHD) SourceValues() Sources {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sources
}

/*
UpdateBoundary samples the boundary data at t + theta dt and writes it into the boundary subset of
the velocity (nodes and mid-edges) and electric field arrays. Interior values are untouched.
*/
func (c *MHD) UpdateBoundary(t float64) (err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bc == nil {
		return fmt.Errorf("boundary data is not set")
	}
	var (
		pm   = c.Mesh
		tt   = c.ThetaTime(t)
		bPts = subset(c.DOF.Points(dof.NodeDOF), pm.BoundaryNodes)
		mPts = subset(c.DOF.Points(dof.MidEdgeDOF), pm.BoundaryEdges)
	)
	ux, uy := dof.SampleVector(c.bc.U, bPts, tt)
	mx, my := dof.SampleVector(c.bc.U, mPts, tt)
	E := dof.SampleNodal(c.bc.E, bPts, tt)
	for _, inj := range []struct {
		global, values []float64
		index          utils.Index
	}{
		{c.UNx, ux, pm.BoundaryNodes},
		{c.UNy, uy, pm.BoundaryNodes},
		{c.E, E, pm.BoundaryNodes},
		{c.UMx, mx, pm.BoundaryEdges},
		{c.UMy, my, pm.BoundaryEdges},
	} {
		if err = dof.Inject(inj.global, inj.values, inj.index); err != nil {
			return
		}
	}
	c.Time = t
	return
}

func subset(pts []geometry2D.Point, index utils.Index) (sub []geometry2D.Point) {
	sub = make([]geometry2D.Point, len(index))
	for i, ind := range index {
		sub[i] = pts[ind]
	}
	return
}
