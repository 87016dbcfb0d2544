// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// none marks a missing arena index.
const none = -1

// halfedge is a breakpoint of the beach line. Links are indices into
// beachline.nodes; slots are never reused, so a deleted halfedge stays
// addressable by stale queue entries.
type halfedge struct {
	left, right int
	// edge is an index into beachline.edges, none for the two sentinels.
	edge    int
	pm      int
	deleted bool
	// pending circle event
	vertex endpoint
	ystar  float64
	gen    uint32
}

// beachline holds the sweep status: a doubly linked list of halfedges
// between two sentinels, a bucket hash over X that seeds searches, and the
// bisectors the halfedges finalize.
type beachline struct {
	nodes []halfedge
	edges []lineEdge
	sites []*Site

	leftEnd, rightEnd int
	bottom            int

	hash   []int
	xmin   float64
	deltax float64
}

func newBeachline(s []*Site) *beachline {
	b := &beachline{
		sites:  s,
		bottom: 0,
		xmin:   math.Inf(1),
	}
	xmax := math.Inf(-1)
	for _, site := range s {
		b.xmin = math.Min(b.xmin, site.point.X)
		xmax = math.Max(xmax, site.point.X)
	}
	b.deltax = xmax - b.xmin
	if b.deltax <= 0 {
		b.deltax = 1
	}

	size := 2 * int(math.Sqrt(float64(len(s)+4)))
	b.hash = make([]int, size)
	for i := range b.hash {
		b.hash[i] = none
	}
	b.leftEnd = b.newHalfedge(none, le)
	b.rightEnd = b.newHalfedge(none, le)
	b.nodes[b.leftEnd].right = b.rightEnd
	b.nodes[b.rightEnd].left = b.leftEnd
	b.hash[0] = b.leftEnd
	b.hash[size-1] = b.rightEnd
	return b
}

func (b *beachline) newHalfedge(edge, pm int) int {
	b.nodes = append(b.nodes, halfedge{
		left:  none,
		right: none,
		edge:  edge,
		pm:    pm,
	})
	return len(b.nodes) - 1
}

// insert links he right of lb.
func (b *beachline) insert(lb, he int) {
	n := &b.nodes[he]
	n.left = lb
	n.right = b.nodes[lb].right
	b.nodes[n.right].left = he
	b.nodes[lb].right = he
}

func (b *beachline) delete(he int) {
	n := &b.nodes[he]
	b.nodes[n.left].right = n.right
	b.nodes[n.right].left = n.left
	n.deleted = true
}

func (b *beachline) left(he int) int  { return b.nodes[he].left }
func (b *beachline) right(he int) int { return b.nodes[he].right }

func (b *beachline) getHash(bucket int) int {
	if bucket < 0 || bucket >= len(b.hash) {
		return none
	}
	he := b.hash[bucket]
	if he == none || !b.nodes[he].deleted {
		return he
	}
	b.hash[bucket] = none
	return none
}

// leftBound returns the halfedge immediately left of p on the beach line.
func (b *beachline) leftBound(p r2.Point) int {
	size := len(b.hash)
	bucket := int((p.X - b.xmin) / b.deltax * float64(size))
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= size {
		bucket = size - 1
	}
	he := b.getHash(bucket)
	for i := 1; he == none; i++ {
		if he = b.getHash(bucket - i); he != none {
			break
		}
		he = b.getHash(bucket + i)
	}

	if he == b.leftEnd || (he != b.rightEnd && b.rightOf(he, p)) {
		for {
			he = b.nodes[he].right
			if he == b.rightEnd || !b.rightOf(he, p) {
				break
			}
		}
		he = b.nodes[he].left
	} else {
		for {
			he = b.nodes[he].left
			if he == b.leftEnd || b.rightOf(he, p) {
				break
			}
		}
	}

	if bucket > 0 && bucket < size-1 {
		b.hash[bucket] = he
	}
	return he
}

// leftSite returns the site of the arc left of he.
func (b *beachline) leftSite(he int) int {
	n := &b.nodes[he]
	if n.edge == none {
		return b.bottom
	}
	return b.edges[n.edge].reg[n.pm]
}

// rightSite returns the site of the arc right of he.
func (b *beachline) rightSite(he int) int {
	n := &b.nodes[he]
	if n.edge == none {
		return b.bottom
	}
	return b.edges[n.edge].reg[re-n.pm]
}

// bisect creates the perpendicular bisector of sites s1 and s2.
func (b *beachline) bisect(s1, s2 int) int {
	p1, p2 := b.sites[s1].point, b.sites[s2].point
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	e := lineEdge{
		reg: [2]int{s1, s2},
		c:   p1.X*dx + p1.Y*dy + (dx*dx+dy*dy)*0.5,
	}
	if math.Abs(dx) > math.Abs(dy) {
		e.a = 1
		e.b = dy / dx
		e.c /= dx
	} else {
		e.b = 1
		e.a = dx / dy
		e.c /= dy
	}
	b.edges = append(b.edges, e)
	return len(b.edges) - 1
}

// intersect returns the point where the bisectors of el1 and el2 meet, if
// that point lies on the parts of the bisectors the halfedges represent.
func (b *beachline) intersect(el1, el2 int) (r2.Point, bool) {
	n1, n2 := &b.nodes[el1], &b.nodes[el2]
	if n1.edge == none || n2.edge == none {
		return r2.Point{}, false
	}
	e1, e2 := &b.edges[n1.edge], &b.edges[n2.edge]
	if e1.reg[1] == e2.reg[1] {
		return r2.Point{}, false
	}
	d := e1.a*e2.b - e1.b*e2.a
	if -1e-10 < d && d < 1e-10 {
		return r2.Point{}, false
	}
	v := r2.Point{
		X: (e1.c*e2.b - e2.c*e1.b) / d,
		Y: (e2.c*e1.a - e1.c*e2.a) / d,
	}

	t1, t2 := b.sites[e1.reg[1]].point, b.sites[e2.reg[1]].point
	n, top := n2, t2
	if t1.Y < t2.Y || (t1.Y == t2.Y && t1.X < t2.X) {
		n, top = n1, t1
	}
	rightOfSite := v.X >= top.X
	if (rightOfSite && n.pm == le) || (!rightOfSite && n.pm == re) {
		return r2.Point{}, false
	}
	return v, true
}

// rightOf reports whether p lies right of halfedge he.
func (b *beachline) rightOf(he int, p r2.Point) bool {
	n := &b.nodes[he]
	e := &b.edges[n.edge]
	top := b.sites[e.reg[1]].point
	rightOfSite := p.X > top.X
	if rightOfSite && n.pm == le {
		return true
	}
	if !rightOfSite && n.pm == re {
		return false
	}

	var above bool
	if e.a == 1 {
		dyp := p.Y - top.Y
		dxp := p.X - top.X
		fast := false
		if (!rightOfSite && e.b < 0) || (rightOfSite && e.b >= 0) {
			above = dyp >= e.b*dxp
			fast = above
		} else {
			above = p.X+p.Y*e.b > e.c
			if e.b < 0 {
				above = !above
			}
			if !above {
				fast = true
			}
		}
		if !fast {
			dxs := top.X - b.sites[e.reg[0]].point.X
			above = e.b*(dxp*dxp-dyp*dyp) < dxs*dyp*(1+2*dxp/dxs+e.b*e.b)
			if e.b < 0 {
				above = !above
			}
		}
	} else {
		yl := e.c - e.a*p.X
		t1 := p.Y - yl
		t2 := p.X - top.X
		t3 := yl - top.Y
		above = t1*t1 > t2*t2+t3*t3
	}
	if n.pm == le {
		return above
	}
	return !above
}
