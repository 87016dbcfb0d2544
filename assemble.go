// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// weldPool snaps points closer than tol to the first point seen, so edges
// meeting at a vertex share an identical coordinate.
type weldPool struct {
	tol  float64
	grid map[[2]int64][]r2.Point
}

func newWeldPool(tol float64) *weldPool {
	return &weldPool{tol: tol, grid: make(map[[2]int64][]r2.Point)}
}

func (w *weldPool) weld(p r2.Point) r2.Point {
	kx := int64(math.Floor(p.X / w.tol))
	ky := int64(math.Floor(p.Y / w.tol))
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, q := range w.grid[[2]int64{kx + dx, ky + dy}] {
				if near(p, q, w.tol) {
					return q
				}
			}
		}
	}
	k := [2]int64{kx, ky}
	w.grid[k] = append(w.grid[k], p)
	return p
}

// piece is an edge oriented so that its cell lies on the left.
type piece struct {
	p, q r2.Point
	edge *GraphEdge
}

// assembler turns the clipped bisectors into cells.
type assembler struct {
	d    *Diagram
	box  r2.Rect
	tol  float64
	pool *weldPool
	log  *zap.Logger
}

func newAssembler(d *Diagram, tol float64, log *zap.Logger) *assembler {
	return &assembler{
		d:    d,
		box:  d.Bounds,
		tol:  tol,
		pool: newWeldPool(tol),
		log:  log,
	}
}

func (a *assembler) build(raw []rawEdge, closeCells bool) {
	d := a.d
	perCell := make([][]*GraphEdge, len(d.Cells))
	for _, r := range raw {
		p1, p2 := a.pool.weld(r.p1), a.pool.weld(r.p2)
		if p1 == p2 {
			continue
		}
		e := &GraphEdge{
			p1:    p1,
			p2:    p2,
			site1: d.Sites[r.s1],
			site2: d.Sites[r.s2],
			cell1: d.Cells[r.s1],
			cell2: d.Cells[r.s2],
		}
		d.Edges = append(d.Edges, e)
		perCell[r.s1] = append(perCell[r.s1], e)
		perCell[r.s2] = append(perCell[r.s2], e)
	}

	for i, c := range d.Cells {
		if !closeCells {
			c.edges = sortedByAngle(c.site.point, perCell[i])
			continue
		}
		mark := len(d.Edges)
		if err := a.close(c, perCell[i]); err != nil {
			d.Edges = d.Edges[:mark]
			c.edges = perCell[i]
			c.vertices = nil
			c.incomplete = true
			d.errs = append(d.errs, &CellError{Site: i, Err: err})
			a.log.Warn("cell left open",
				zap.Int("site", i),
				zap.Stringer("point", c.site.point),
				zap.Error(err))
		}
	}
}

// sortedByAngle orders edges counterclockwise around site.
func sortedByAngle(site r2.Point, edges []*GraphEdge) []*GraphEdge {
	angle := func(e *GraphEdge) float64 {
		c := e.Center().Sub(site)
		return math.Atan2(c.Y, c.X)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return angle(edges[i]) < angle(edges[j])
	})
	return edges
}

// close orders the edges of c into a counterclockwise loop, adding border
// edges where the cell is cut by the box.
func (a *assembler) close(c *Cell, edges []*GraphEdge) error {
	if len(edges) == 0 {
		if a.d.nearestSite(a.box.Center()) == c.site.index {
			corner := a.pool.weld(a.box.Lo())
			a.setLoop(c, a.borderPath(c, corner, 0, 4, corner))
		}
		return nil
	}

	site := c.site.point
	pieces := make([]piece, len(edges))
	starts := make(map[r2.Point]int, len(edges))
	ends := make(map[r2.Point]bool, len(edges))
	for i, e := range edges {
		p, q := e.p1, e.p2
		if q.Sub(p).Cross(site.Sub(p)) < 0 {
			p, q = q, p
		}
		pieces[i] = piece{p: p, q: q, edge: e}
		if _, dup := starts[p]; dup {
			return fmt.Errorf("%w: more than two edges meet at %v", ErrOpenCell, p)
		}
		starts[p] = i
		ends[q] = true
	}

	used := make([]bool, len(pieces))
	follow := func(i int) []piece {
		var chain []piece
		for !used[i] {
			used[i] = true
			chain = append(chain, pieces[i])
			j, ok := starts[pieces[i].q]
			if !ok {
				break
			}
			i = j
		}
		return chain
	}

	var chains [][]piece
	for i, pc := range pieces {
		if !ends[pc.p] {
			chains = append(chains, follow(i))
		}
	}
	if len(chains) == 0 {
		loop := follow(0)
		if len(loop) != len(pieces) {
			return fmt.Errorf("%w: %d of %d edges form a loop", ErrOpenCell, len(loop), len(pieces))
		}
		a.setLoop(c, loop)
		return nil
	}
	for i := range used {
		if !used[i] {
			return fmt.Errorf("%w: edge %v-%v is detached", ErrOpenCell, pieces[i].p, pieces[i].q)
		}
	}
	return a.closeChains(c, chains)
}

// closeChains links open chains by walking the box perimeter
// counterclockwise from the end of each chain to the nearest chain start.
func (a *assembler) closeChains(c *Cell, chains [][]piece) error {
	tStart := make([]float64, len(chains))
	tEnd := make([]float64, len(chains))
	for i, ch := range chains {
		var ok bool
		if tStart[i], ok = a.perimeter(ch[0].p); !ok {
			return fmt.Errorf("%w: chain starts inside the box at %v", ErrOpenCell, ch[0].p)
		}
		if tEnd[i], ok = a.perimeter(ch[len(ch)-1].q); !ok {
			return fmt.Errorf("%w: chain ends inside the box at %v", ErrOpenCell, ch[len(ch)-1].q)
		}
	}

	var loop []piece
	visited := make([]bool, len(chains))
	cur := 0
	for !visited[cur] {
		visited[cur] = true
		loop = append(loop, chains[cur]...)

		next, best := -1, math.Inf(1)
		for j := range chains {
			fd := tStart[j] - tEnd[cur]
			if fd < 0 {
				fd += 4
			}
			if fd < best {
				next, best = j, fd
			}
		}
		end := chains[cur][len(chains[cur])-1].q
		loop = append(loop, a.borderPath(c, end, tEnd[cur], best, chains[next][0].p)...)
		cur = next
	}
	if cur != 0 {
		return fmt.Errorf("%w: border walk returned to chain %d", ErrOpenCell, cur)
	}
	for j, ok := range visited {
		if !ok {
			return fmt.Errorf("%w: chain %d not reached by the border walk", ErrOpenCell, j)
		}
	}
	a.setLoop(c, loop)
	return nil
}

// borderPath creates border edges for c from the perimeter point from, at
// parameter t0, counterclockwise over a distance of dist to the point to.
func (a *assembler) borderPath(c *Cell, from r2.Point, t0, dist float64, to r2.Point) []piece {
	corners := a.box.Vertices()
	var path []r2.Point
	for k := math.Floor(t0) + 1; k < t0+dist; k++ {
		path = append(path, a.pool.weld(corners[int(k)%4]))
	}
	path = append(path, to)

	var out []piece
	for _, p := range path {
		if p == from {
			continue
		}
		e := &GraphEdge{p1: from, p2: p, site1: c.site, cell1: c}
		a.d.Edges = append(a.d.Edges, e)
		out = append(out, piece{p: from, q: p, edge: e})
		from = p
	}
	return out
}

// perimeter maps a point on the box boundary to a parameter in [0, 4):
// bottom side left to right, right side upward, top side right to left,
// left side downward.
func (a *assembler) perimeter(p r2.Point) (float64, bool) {
	b, tol := a.box, a.tol
	inX := p.X >= b.X.Lo-tol && p.X <= b.X.Hi+tol
	inY := p.Y >= b.Y.Lo-tol && p.Y <= b.Y.Hi+tol
	frac := func(v, length float64) float64 {
		return math.Min(math.Max(v/length, 0), 1)
	}
	switch {
	case inX && math.Abs(p.Y-b.Y.Lo) <= tol:
		return frac(p.X-b.X.Lo, b.X.Length()), true
	case inY && math.Abs(p.X-b.X.Hi) <= tol:
		return 1 + frac(p.Y-b.Y.Lo, b.Y.Length()), true
	case inX && math.Abs(p.Y-b.Y.Hi) <= tol:
		return 2 + frac(b.X.Hi-p.X, b.X.Length()), true
	case inY && math.Abs(p.X-b.X.Lo) <= tol:
		t := 3 + frac(b.Y.Hi-p.Y, b.Y.Length())
		if t >= 4 {
			t = 0
		}
		return t, true
	}
	return 0, false
}

func (a *assembler) setLoop(c *Cell, loop []piece) {
	c.edges = make([]*GraphEdge, len(loop))
	c.vertices = make([]r2.Point, len(loop))
	for i, pc := range loop {
		c.edges[i] = pc.edge
		c.vertices[i] = pc.p
	}
}
