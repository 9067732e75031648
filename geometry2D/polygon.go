package geometry2D

import (
	"math"

	"github.com/notargets/gomhd/quadrature"
	"github.com/notargets/gomhd/utils"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

func (pt Point) Minus(rhs Point) Point {
	return Point{X: [2]float64{pt.X[0] - rhs.X[0], pt.X[1] - rhs.X[1]}}
}

func (pt Point) Plus(rhs Point) Point {
	return Point{X: [2]float64{pt.X[0] + rhs.X[0], pt.X[1] + rhs.X[1]}}
}

func (pt Point) Scale(a float64) Point {
	return Point{X: [2]float64{a * pt.X[0], a * pt.X[1]}}
}

func (pt Point) Distance(rhs Point) float64 {
	return math.Hypot(pt.X[0]-rhs.X[0], pt.X[1]-rhs.X[1])
}

type BoundingBox struct {
	XMin, XMax [2]float64
}

func NewBoundingBox(Geometry []Point) (Box *BoundingBox) {
	Box = &BoundingBox{
		XMin: [2]float64{math.MaxFloat64, math.MaxFloat64},
		XMax: [2]float64{-math.MaxFloat64, -math.MaxFloat64},
	}
	for _, pt := range Geometry {
		for i := 0; i < 2; i++ {
			Box.XMin[i] = math.Min(Box.XMin[i], pt.X[i])
			Box.XMax[i] = math.Max(Box.XMax[i], pt.X[i])
		}
	}
	return
}

func (bb *BoundingBox) PointInside(point Point) (within bool) {
	return point.X[0] >= bb.XMin[0] && point.X[0] <= bb.XMax[0] &&
		point.X[1] >= bb.XMin[1] && point.X[1] <= bb.XMax[1]
}

func (bb *BoundingBox) Diagonal() float64 {
	return math.Hypot(bb.XMax[0]-bb.XMin[0], bb.XMax[1]-bb.XMin[1])
}

// Polygon holds an open vertex loop, the closing edge runs from the last vertex to the first
type Polygon struct {
	Geometry []Point
	Box      *BoundingBox
}

func NewPolygon(geom []Point) (poly *Polygon) {
	// Drop a repeated closing vertex
	if len(geom) > 1 && geom[len(geom)-1] == geom[0] {
		geom = geom[:len(geom)-1]
	}
	poly = &Polygon{
		Geometry: geom,
		Box:      NewBoundingBox(geom),
	}
	return
}

func (pg *Polygon) vertex(i int) Point {
	return pg.Geometry[i%len(pg.Geometry)]
}

// Area is the signed area from Green's theorem, positive for counterclockwise loops
func (pg *Polygon) Area() (area float64) {
	for i := range pg.Geometry {
		pt0, pt1 := pg.vertex(i), pg.vertex(i+1)
		area += pt0.X[0]*pt1.X[1] - pt1.X[0]*pt0.X[1]
	}
	return 0.5 * area
}

func (pg *Polygon) Centroid() (centroid Point) {
	/*
		From: https://en.wikipedia.org/wiki/Centroid#Centroid_of_a_polygon
	*/
	var (
		area = pg.Area()
		ct   [2]float64
	)
	for i := range pg.Geometry {
		pt0, pt1 := pg.vertex(i), pg.vertex(i+1)
		x0, y0 := pt0.X[0], pt0.X[1]
		x1, y1 := pt1.X[0], pt1.X[1]
		metric := x0*y1 - y0*x1
		ct[0] += (x0 + x1) * metric
		ct[1] += (y0 + y1) * metric
	}
	for i := 0; i < 2; i++ {
		centroid.X[i] = ct[i] / (6 * area)
	}
	return
}

// Diameter is the largest vertex to vertex distance
func (pg *Polygon) Diameter() (h float64) {
	for i, pi := range pg.Geometry {
		for _, pj := range pg.Geometry[i+1:] {
			h = math.Max(h, pi.Distance(pj))
		}
	}
	return
}

/*
SelfIntersection returns the first pair of non-adjacent edges that cross or touch. Edge i runs
from vertex i to vertex i+1. A polygon with found == false is simple.
*/
func (pg *Polygon) SelfIntersection() (i, j int, found bool) {
	var (
		n = len(pg.Geometry)
	)
	for i = 0; i < n; i++ {
		a, b := pg.vertex(i), pg.vertex(i+1)
		for j = i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // Shares vertex 0
			}
			if segmentsIntersect(a, b, pg.vertex(j), pg.vertex(j+1)) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func orient(p0, p1, p2 Point) float64 {
	return (p1.X[0]-p0.X[0])*(p2.X[1]-p0.X[1]) - (p2.X[0]-p0.X[0])*(p1.X[1]-p0.X[1])
}

func segmentsIntersect(a, b, c, d Point) bool {
	ab, cd := NewBoundingBox([]Point{a, b}), NewBoundingBox([]Point{c, d})
	for i := 0; i < 2; i++ {
		if ab.XMax[i] < cd.XMin[i] || cd.XMax[i] < ab.XMin[i] {
			return false
		}
	}
	var (
		d1, d2 = orient(a, b, c), orient(a, b, d)
		d3, d4 = orient(c, d, a), orient(c, d, b)
	)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	// An end point lying on the other segment
	return (d1 == 0 && ab.PointInside(c)) || (d2 == 0 && ab.PointInside(d)) ||
		(d3 == 0 && cd.PointInside(a)) || (d4 == 0 && cd.PointInside(b))
}

// SubTriangles fans the polygon from its centroid, one triangle per edge
func (pg *Polygon) SubTriangles() (tris [][3]Point) {
	var (
		c = pg.Centroid()
	)
	tris = make([][3]Point, len(pg.Geometry))
	for i := range pg.Geometry {
		tris[i] = [3]Point{c, pg.vertex(i), pg.vertex(i + 1)}
	}
	return
}

/*
Integrate evaluates the area integral of f with the degree 4 triangle rule applied on each fan
triangle. Fan triangles are signed, so the result is exact for polynomials up to degree 4 on
any simple counterclockwise polygon.
*/
func (pg *Polygon) Integrate(f func(x, y float64) float64) (sum float64) {
	for _, tri := range pg.SubTriangles() {
		X := [3]float64{tri[0].X[0], tri[1].X[0], tri[2].X[0]}
		Y := [3]float64{tri[0].X[1], tri[1].X[1], tri[2].X[1]}
		sum += quadrature.Dunavant6.IntegrateTriangle(X, Y, f)
	}
	return
}

// QuadraturePoints returns the fan quadrature points and weights for repeated integration
func (pg *Polygon) QuadraturePoints() (x, y, w []float64) {
	for _, tri := range pg.SubTriangles() {
		X := [3]float64{tri[0].X[0], tri[1].X[0], tri[2].X[0]}
		Y := [3]float64{tri[0].X[1], tri[1].X[1], tri[2].X[1]}
		xx, yy, ww := quadrature.Dunavant6.TrianglePoints(X, Y)
		x, y, w = append(x, xx...), append(y, yy...), append(w, ww...)
	}
	return
}

// Moment returns the integral of x^a y^b over the polygon, a+b <= 4
func (pg *Polygon) Moment(a, b int) float64 {
	return pg.Integrate(func(x, y float64) float64 {
		return utils.POW(x, a) * utils.POW(y, b)
	})
}
