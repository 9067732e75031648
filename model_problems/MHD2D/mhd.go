package MHD2D

import (
	"fmt"
	"sync"

	"github.com/notargets/gomhd/dof"
	"github.com/notargets/gomhd/geometry2D"
	"github.com/notargets/gomhd/mimetic"
	"github.com/notargets/gomhd/quadrature"
	"github.com/notargets/gomhd/utils"
	"github.com/notargets/gomhd/vem"
)

/*
MHD owns the discrete fields of the incompressible resistive MHD system on one polygonal mesh:

	velocity at nodes (UNx, UNy) and at mid-edges (UMx, UMy)
	magnetic flux per edge (B), electric field per node (E), pressure per element (P)

Element operators are built once at construction and are read only afterwards. Field arrays
are guarded by an RWMutex; the solver loop is the only writer.
*/
type MHD struct {
	// Input parameters
	Re, Rm     float64
	DT, Theta  float64
	Time       float64
	Mesh       *geometry2D.PolyMesh
	DOF        *dof.Manager
	Ops        *mimetic.Operators
	VS         *vem.VelocitySpace
	Layout     dof.Layout
	Partitions *utils.PartitionMap
	verbose    bool

	mu       sync.RWMutex
	UNx, UNy []float64
	UMx, UMy []float64
	B        []float64
	E        []float64
	P        []float64

	// Boundary data and sources, sampled at the theta point
	bc      *BoundaryData
	sources Sources
}

func NewMHD(pm *geometry2D.PolyMesh, Re, Rm float64, u0, B0 dof.VectorField, dt, theta float64,
	ProcLimit int, verbose bool) (c *MHD, err error) {
	if err = checkParameters(Re, Rm, dt, theta); err != nil {
		return
	}
	c = &MHD{
		Re:      Re,
		Rm:      Rm,
		DT:      dt,
		Theta:   theta,
		Mesh:    pm,
		DOF:     dof.NewManager(pm),
		Layout:  dof.NewLayout(dof.DirichletLayout, pm),
		verbose: verbose,
	}
	c.Partitions = utils.NewElementPartitionMap(ProcLimit, pm.NumElements())
	if err = c.checkPartitions(); err != nil {
		return nil, err
	}
	c.UNx, c.UNy = dof.SampleVector(u0, c.DOF.Points(dof.NodeDOF), 0)
	c.UMx, c.UMy = dof.SampleVector(u0, c.DOF.Points(dof.MidEdgeDOF), 0)
	c.B = c.DOF.EdgeCirculation(B0, 0)
	c.E = make([]float64, pm.NumNodes())
	c.P = make([]float64, pm.NumElements())

	if c.Ops, err = mimetic.NewOperators(pm, c.Partitions.ParallelDegree); err != nil {
		return nil, err
	}
	if c.VS, err = vem.NewVelocitySpace(pm, c.Partitions.ParallelDegree); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Incompressible Resistive MHD in 2 Dimensions\n")
		fmt.Printf("Using %d go routines in parallel, %d to %d elements each\n", c.Partitions.ParallelDegree,
			c.Partitions.GetBucketDimension(c.Partitions.ParallelDegree-1), c.Partitions.GetBucketDimension(0))
		fmt.Printf("Re = %8.4f, Rm = %8.4f, dt = %8.5g, theta = %5.3f\n", Re, Rm, dt, theta)
		fmt.Printf("%s", pm.Print())
		fmt.Printf("Dirichlet unknowns = %d\n", c.Layout.NumDOF())
		fmt.Printf("%s\n", utils.GetMemUsage())
	}
	return
}

func checkParameters(Re, Rm, dt, theta float64) error {
	switch {
	case Re <= 0 || Rm <= 0:
		return fmt.Errorf("Reynolds numbers must be positive, have Re = %g, Rm = %g", Re, Rm)
	case dt <= 0:
		return fmt.Errorf("time step must be positive, have %g", dt)
	case theta < 0 || theta > 1:
		return fmt.Errorf("theta must be in [0,1], have %g", theta)
	}
	return nil
}

// checkPartitions validates the interior/boundary split of every constrained dof kind once
func (c *MHD) checkPartitions() (err error) {
	var (
		pm = c.Mesh
	)
	for _, kind := range []string{"velocity-x", "velocity-y", "electric"} {
		if err = dof.ValidatePartition(kind, pm.NumNodes(), pm.InteriorNodes, pm.BoundaryNodes); err != nil {
			return
		}
	}
	for _, kind := range []string{"mid-edge velocity-x", "mid-edge velocity-y"} {
		if err = dof.ValidatePartition(kind, pm.NumEdges(), pm.InteriorEdges, pm.BoundaryEdges); err != nil {
			return
		}
	}
	// The magnetic field is solved for on every edge
	return dof.ValidatePartition("magnetic", pm.NumEdges(), utils.NewRange(0, pm.NumEdges()-1), nil)
}

// SetLayout selects the packing used by ConcatenateUnknowns and UpdateInterior
func (c *MHD) SetLayout(lt dof.LayoutType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Layout = dof.NewLayout(lt, c.Mesh)
}

// SetElectricAndPressure replaces E and p with samples of the given fields at time t
func (c *MHD) SetElectricAndPressure(E0, p0 dof.ScalarField, t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.E = dof.SampleNodal(E0, c.DOF.Points(dof.NodeDOF), t)
	c.P = c.DOF.PressureDOFs(p0, t)
}

// ThetaTime is the evaluation point t + theta dt
func (c *MHD) ThetaTime(t float64) float64 {
	return t + c.Theta*c.DT
}

// Fields is a copy of the current discrete state
type Fields struct {
	UNx, UNy, UMx, UMy, B, E, P []float64
}

func (c *MHD) Snapshot() (f Fields) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp := func(v []float64) []float64 { return append([]float64(nil), v...) }
	return Fields{
		UNx: cp(c.UNx), UNy: cp(c.UNy),
		UMx: cp(c.UMx), UMy: cp(c.UMy),
		B: cp(c.B), E: cp(c.E), P: cp(c.P),
	}
}

// SampleCase returns the exact solution of an analytic case at time t in discrete form
func (c *MHD) SampleCase(ac AnalyticCase, t float64) (f Fields) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f.UNx, f.UNy = dof.SampleVector(ac.U, c.DOF.Points(dof.NodeDOF), t)
	f.UMx, f.UMy = dof.SampleVector(ac.U, c.DOF.Points(dof.MidEdgeDOF), t)
	f.B = c.DOF.EdgeCirculation(ac.B, t)
	f.E = dof.SampleNodal(ac.E, c.DOF.Points(dof.NodeDOF), t)
	f.P = c.DOF.PressureDOFs(ac.P, t)
	return
}

// SetEdgeRule changes the quadrature of edge flux sampling and resamples B from B0 at the current time
func (c *MHD) SetEdgeRule(r quadrature.Rule1D, B0 dof.VectorField) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DOF.EdgeRule = r
	c.B = c.DOF.EdgeCirculation(B0, c.Time)
}

// LocalVelocity restricts the current velocity to element k
func (c *MHD) LocalVelocity(k int) ([]float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.localVelocity(k)
}

// LocalMagnetic restricts the current edge fluxes to element k, with edge signs applied
func (c *MHD) LocalMagnetic(k int) ([]float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.localMagnetic(k)
}

// The lower case forms expect the caller to hold the lock
func (c *MHD) localVelocity(k int) ([]float64, error) {
	return c.DOF.RestrictVelocity(k, c.UNx, c.UNy, c.UMx, c.UMy)
}

func (c *MHD) localMagnetic(k int) ([]float64, error) {
	return c.DOF.RestrictToElement(k, c.B, dof.EdgeDOF)
}
