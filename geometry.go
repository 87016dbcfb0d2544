// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// NewBBox creates a bounding box from its lower-left and upper-right
// coordinates. The box is not normalized: ComputeDiagram rejects boxes
// where a minimum is not strictly below the matching maximum.
func NewBBox(xMin, yMin, xMax, yMax float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: xMin, Hi: xMax},
		Y: r1.Interval{Lo: yMin, Hi: yMax},
	}
}

func validBounds(b r2.Rect) bool {
	for _, v := range []float64{b.X.Lo, b.X.Hi, b.Y.Lo, b.Y.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.X.Lo < b.X.Hi && b.Y.Lo < b.Y.Hi
}

// Site is an input point seeding one cell.
type Site struct {
	point r2.Point
	index int
	input int
}

// Point returns the site coordinate, after duplicate perturbation.
func (s *Site) Point() r2.Point { return s.point }

// Index returns the rank of the site in Y, then X order.
func (s *Site) Index() int { return s.index }

// Input returns the position of the site in the slice given to ComputeDiagram.
func (s *Site) Input() int { return s.input }

// For sort interface
type sites []*Site

func (s sites) Len() int      { return len(s) }
func (s sites) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Used for sorting sites along the Y, then X axis
type sitesByYX struct{ sites }

func (s sitesByYX) Less(i, j int) bool {
	a, b := s.sites[i].point, s.sites[j].point
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// endpoint of a bisector: either a resolved vertex or a ray to infinity.
type endpoint struct {
	p        r2.Point
	resolved bool
}

var unbounded = endpoint{}

func resolvedAt(p r2.Point) endpoint {
	return endpoint{p: p, resolved: true}
}

// Side of a bisector a halfedge stands for.
const (
	le = 0
	re = 1
)

// lineEdge is the bisector of reg[0] and reg[1] in implicit form a*x + b*y = c.
// Either a or b is exactly 1.
type lineEdge struct {
	a, b, c float64
	ep      [2]endpoint
	reg     [2]int
	clipped bool
}

// GraphEdge is a finished, clipped edge of the diagram.
type GraphEdge struct {
	p1, p2       r2.Point
	site1, site2 *Site
	cell1, cell2 *Cell

	// IsSolid is a classification flag owned by consumers.
	IsSolid bool
	// OutsideLevel is a classification flag owned by consumers.
	OutsideLevel bool
}

func (e *GraphEdge) Point1() r2.Point { return e.p1 }
func (e *GraphEdge) Point2() r2.Point { return e.p2 }

// Site1 returns the site on one side of the edge.
func (e *GraphEdge) Site1() *Site { return e.site1 }

// Site2 returns the site on the other side, or nil for border edges.
func (e *GraphEdge) Site2() *Site { return e.site2 }

func (e *GraphEdge) Cell1() *Cell { return e.cell1 }
func (e *GraphEdge) Cell2() *Cell { return e.cell2 }

// IsBorder reports whether the edge runs along the bounding box.
func (e *GraphEdge) IsBorder() bool { return e.site2 == nil }

// Center returns the midpoint of the edge.
func (e *GraphEdge) Center() r2.Point {
	return e.p1.Add(e.p2).Mul(0.5)
}

// Length returns the length of the edge.
func (e *GraphEdge) Length() float64 {
	return e.p2.Sub(e.p1).Norm()
}

// sharedPoint returns the endpoint e and o have in common.
func (e *GraphEdge) sharedPoint(o *GraphEdge) (r2.Point, bool) {
	switch {
	case e.p1 == o.p1 || e.p1 == o.p2:
		return e.p1, true
	case e.p2 == o.p1 || e.p2 == o.p2:
		return e.p2, true
	}
	return r2.Point{}, false
}

// segmentsIntersect reports whether segments a1-a2 and b1-b2 cross or touch.
// Parallel segments, including zero-length ones, never intersect.
func segmentsIntersect(a1, a2, b1, b2 r2.Point) bool {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	d := r.Cross(s)
	if d == 0 {
		return false
	}
	w := b1.Sub(a1)
	ua := w.Cross(s) / d
	ub := w.Cross(r) / d
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

func near(a, b r2.Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
