// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// Diagram is the result of ComputeDiagram.
type Diagram struct {
	// Sites in Y, then X order. Site.Index is the position in this slice.
	Sites []*Site
	// Cells holds one cell per site, in the order of Sites.
	Cells []*Cell
	// Edges holds the clipped bisectors followed by the border edges
	// synthesized to close cells.
	Edges []*GraphEdge
	// Bounds is the clipping rectangle.
	Bounds r2.Rect

	byInput []int
	errs    []error
}

// CellOf returns the cell of the i-th input point, or nil if i is out of
// range. Merged duplicates share the cell of the point they were merged into.
func (d *Diagram) CellOf(i int) *Cell {
	if i < 0 || i >= len(d.byInput) {
		return nil
	}
	return d.Cells[d.byInput[i]]
}

// Err returns the per cell construction failures joined together, or nil.
// Use errors.As with *CellError to inspect them.
func (d *Diagram) Err() error {
	return errors.Join(d.errs...)
}

// Vertices returns the distinct endpoints of all edges.
func (d *Diagram) Vertices() []r2.Point {
	seen := make(map[r2.Point]bool, len(d.Edges))
	var out []r2.Point
	for _, e := range d.Edges {
		for _, p := range []r2.Point{e.p1, e.p2} {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// rawEdge is a clipped bisector before welding.
type rawEdge struct {
	p1, p2 r2.Point
	s1, s2 int
}

// sweep runs Fortune's algorithm over an index based beach line. Sites are
// consumed from the bottom (smallest Y) up, circle events fire at the top of
// their circle.
type sweep struct {
	arcs  *beachline
	queue *eventQueue
	box   r2.Rect
	tol   float64

	edges   []rawEdge
	circles int
}

func newSweep(s []*Site, box r2.Rect, tol float64) *sweep {
	arcs := newBeachline(s)
	return &sweep{
		arcs:  arcs,
		queue: newEventQueue(arcs),
		box:   box,
		tol:   tol,
	}
}

func before(p, q r2.Point) bool {
	return p.Y < q.Y || (p.Y == q.Y && p.X < q.X)
}

func (s *sweep) run() {
	b := s.arcs
	// the first site is the bottom site every sentinel refers to
	next := 1
	for {
		switch {
		case next < len(b.sites) && (s.queue.empty() || before(b.sites[next].point, s.queue.min())):
			s.siteEvent(next)
			next++
		case !s.queue.empty():
			s.circleEvent()
		default:
			for he := b.right(b.leftEnd); he != b.rightEnd; he = b.right(he) {
				s.clip(b.nodes[he].edge)
			}
			return
		}
	}
}

// siteEvent splits the arc above site si.
func (s *sweep) siteEvent(si int) {
	b := s.arcs
	p := b.sites[si].point

	lbnd := b.leftBound(p)
	rbnd := b.right(lbnd)
	bot := b.rightSite(lbnd)
	e := b.bisect(bot, si)

	bisector := b.newHalfedge(e, le)
	b.insert(lbnd, bisector)
	if v, ok := b.intersect(lbnd, bisector); ok {
		s.queue.remove(lbnd)
		s.queue.insert(lbnd, v, v.Sub(p).Norm())
	}

	lbnd = bisector
	bisector = b.newHalfedge(e, re)
	b.insert(lbnd, bisector)
	if v, ok := b.intersect(bisector, rbnd); ok {
		s.queue.insert(bisector, v, v.Sub(p).Norm())
	}
}

// circleEvent removes the arc between the two halfedges meeting at the
// earliest pending vertex.
func (s *sweep) circleEvent() {
	b := s.arcs
	s.circles++

	lbnd := s.queue.extractMin()
	llbnd := b.left(lbnd)
	rbnd := b.right(lbnd)
	rrbnd := b.right(rbnd)
	bot := b.leftSite(lbnd)
	top := b.rightSite(rbnd)

	v := b.nodes[lbnd].vertex.p
	s.endpoint(b.nodes[lbnd].edge, b.nodes[lbnd].pm, v)
	s.endpoint(b.nodes[rbnd].edge, b.nodes[rbnd].pm, v)
	b.delete(lbnd)
	s.queue.remove(rbnd)
	b.delete(rbnd)

	pm := le
	if b.sites[bot].point.Y > b.sites[top].point.Y {
		bot, top = top, bot
		pm = re
	}
	e := b.bisect(bot, top)
	bisector := b.newHalfedge(e, pm)
	b.insert(llbnd, bisector)
	s.endpoint(e, re-pm, v)

	bp := b.sites[bot].point
	if w, ok := b.intersect(llbnd, bisector); ok {
		s.queue.remove(llbnd)
		s.queue.insert(llbnd, w, w.Sub(bp).Norm())
	}
	if w, ok := b.intersect(bisector, rrbnd); ok {
		s.queue.insert(bisector, w, w.Sub(bp).Norm())
	}
}

// endpoint resolves side lr of edge e and clips the edge once both sides
// are known.
func (s *sweep) endpoint(e, lr int, v r2.Point) {
	edge := &s.arcs.edges[e]
	edge.ep[lr] = resolvedAt(v)
	if !edge.ep[re-lr].resolved {
		return
	}
	s.clip(e)
}

// clip intersects bisector e with the bounding box. Unresolved endpoints
// extend to the box boundary. Edges outside the box or shorter than the
// tolerance are dropped.
func (s *sweep) clip(ei int) {
	e := &s.arcs.edges[ei]
	if e.clipped {
		return
	}
	e.clipped = true

	xmin, xmax := s.box.X.Lo, s.box.X.Hi
	ymin, ymax := s.box.Y.Lo, s.box.Y.Hi

	s1, s2 := e.ep[0], e.ep[1]
	if e.a == 1 && e.b >= 0 {
		s1, s2 = e.ep[1], e.ep[0]
	}

	var x1, y1, x2, y2 float64
	if e.a == 1 {
		y1 = ymin
		if s1.resolved && s1.p.Y > ymin {
			y1 = s1.p.Y
		}
		if y1 > ymax {
			return
		}
		x1 = e.c - e.b*y1
		y2 = ymax
		if s2.resolved && s2.p.Y < ymax {
			y2 = s2.p.Y
		}
		if y2 < ymin {
			return
		}
		x2 = e.c - e.b*y2
		if (x1 > xmax && x2 > xmax) || (x1 < xmin && x2 < xmin) {
			return
		}
		if x1 > xmax {
			x1 = xmax
			y1 = (e.c - x1) / e.b
		}
		if x1 < xmin {
			x1 = xmin
			y1 = (e.c - x1) / e.b
		}
		if x2 > xmax {
			x2 = xmax
			y2 = (e.c - x2) / e.b
		}
		if x2 < xmin {
			x2 = xmin
			y2 = (e.c - x2) / e.b
		}
	} else {
		x1 = xmin
		if s1.resolved && s1.p.X > xmin {
			x1 = s1.p.X
		}
		if x1 > xmax {
			return
		}
		y1 = e.c - e.a*x1
		x2 = xmax
		if s2.resolved && s2.p.X < xmax {
			x2 = s2.p.X
		}
		if x2 < xmin {
			return
		}
		y2 = e.c - e.a*x2
		if (y1 > ymax && y2 > ymax) || (y1 < ymin && y2 < ymin) {
			return
		}
		if y1 > ymax {
			y1 = ymax
			x1 = (e.c - y1) / e.a
		}
		if y1 < ymin {
			y1 = ymin
			x1 = (e.c - y1) / e.a
		}
		if y2 > ymax {
			y2 = ymax
			x2 = (e.c - y2) / e.a
		}
		if y2 < ymin {
			y2 = ymin
			x2 = (e.c - y2) / e.a
		}
	}

	p1 := s.clamp(r2.Point{X: x1, Y: y1})
	p2 := s.clamp(r2.Point{X: x2, Y: y2})
	if near(p1, p2, s.tol) {
		return
	}
	s.edges = append(s.edges, rawEdge{p1: p1, p2: p2, s1: e.reg[0], s2: e.reg[1]})
}

func (s *sweep) clamp(p r2.Point) r2.Point {
	return r2.Point{
		X: math.Min(math.Max(p.X, s.box.X.Lo), s.box.X.Hi),
		Y: math.Min(math.Max(p.Y, s.box.Y.Lo), s.box.Y.Hi),
	}
}

// ComputeDiagram computes the Voronoi diagram of points clipped to bounds.
//
// Coincident points are resolved according to WithDuplicatePolicy. Zero
// points give an empty diagram, a single point gives one cell covering
// bounds. Cells whose edges cannot be closed are returned open, flagged
// with Cell.Incomplete and reported by Diagram.Err; the returned error is
// reserved for invalid input.
func ComputeDiagram(points []r2.Point, bounds r2.Rect, opts ...Option) (*Diagram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !validBounds(bounds) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, bounds)
	}

	scale := math.Max(bounds.X.Length(), bounds.Y.Length())
	tol := o.tolerance
	if tol <= 0 {
		tol = defaultTolerance * scale
	}
	jitter := o.jitter
	if jitter <= 0 {
		jitter = defaultJitter * scale
	}
	if jitter < 4*tol {
		jitter = 4 * tol
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	set, err := prepareSites(points, o.duplicates, jitter, tol, log)
	if err != nil {
		return nil, err
	}

	d := &Diagram{
		Sites:   set.sites,
		Cells:   make([]*Cell, len(set.sites)),
		Bounds:  bounds,
		byInput: set.byInput,
	}
	for i, s := range set.sites {
		d.Cells[i] = &Cell{site: s}
	}
	if len(set.sites) == 0 {
		return d, nil
	}

	sw := newSweep(set.sites, bounds, tol)
	sw.run()
	log.Debug("sweep finished",
		zap.Int("sites", len(set.sites)),
		zap.Int("bisectors", len(sw.arcs.edges)),
		zap.Int("clipped", len(sw.edges)),
		zap.Int("circleEvents", sw.circles))

	newAssembler(d, tol, log).build(sw.edges, o.closeCells)
	return d, nil
}
