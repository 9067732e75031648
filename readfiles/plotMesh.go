package readfiles

import (
	"time"

	"github.com/notargets/avs/chart2d"
	avsUtils "github.com/notargets/avs/utils"
	"github.com/notargets/gomhd/geometry2D"
)

// PlotMesh draws the element sub-triangulation with the boundary overlaid, then waits
func PlotMesh(pm *geometry2D.PolyMesh, waitTime time.Duration) {
	xMin, xMax, yMin, yMax := plotBox(pm)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax, 1920, 1080,
		avsUtils.WHITE, avsUtils.BLACK, 0.9)
	ch.AddTriMesh(pm.ToGraphMesh())
	ch.AddLine(pm.BoundaryLines(), avsUtils.RED)
	time.Sleep(waitTime)
}

// plotBox is a square box around the mesh nodes with a 5% margin
func plotBox(pm *geometry2D.PolyMesh) (xMin, xMax, yMin, yMax float32) {
	box := geometry2D.NewBoundingBox(pm.Nodes)
	var (
		xRange = box.XMax[0] - box.XMin[0]
		yRange = box.XMax[1] - box.XMin[1]
		xCent  = 0.5 * (box.XMax[0] + box.XMin[0])
		yCent  = 0.5 * (box.XMax[1] + box.XMin[1])
		half   = 0.525 * xRange
	)
	if yRange > xRange {
		half = 0.525 * yRange
	}
	return float32(xCent - half), float32(xCent + half), float32(yCent - half), float32(yCent + half)
}
