// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"github.com/golang/geo/r2"
)

// IsPointInside reports whether p lies in the cell: the segment from p to
// the cell center must not cross any edge. Only meaningful for convex
// cells, which Voronoi cells are.
func (c *Cell) IsPointInside(p r2.Point) bool {
	center := c.Center()
	for _, e := range c.edges {
		if segmentsIntersect(p, center, e.p1, e.p2) {
			return false
		}
	}
	return true
}

// AdjacentCell returns the cell on the other side of e from cell, or nil if
// e does not border cell or is a border edge.
func (e *GraphEdge) AdjacentCell(cell *Cell) *Cell {
	if cell == nil {
		return nil
	}
	if e.cell1 == cell {
		return e.cell2
	} else if e.cell2 == cell {
		return e.cell1
	}
	return nil
}

// Normal returns the unit normal of e pointing away from cell. With a nil
// cell the normal is the edge direction rotated clockwise.
func (e *GraphEdge) Normal(cell *Cell) r2.Point {
	dir := e.p1.Sub(e.p2).Normalize()
	normal := r2.Point{X: dir.Y, Y: -dir.X}
	if cell != nil && normal.Dot(e.Center().Sub(cell.Center()).Normalize()) < 0 {
		normal = normal.Mul(-1)
	}
	return normal
}

// CellAt returns the cell containing p, that is the cell of the nearest
// site; ties go to the lower site index. Translations are ignored. It
// returns nil for an empty diagram.
func (d *Diagram) CellAt(p r2.Point) *Cell {
	i := d.nearestSite(p)
	if i < 0 {
		return nil
	}
	return d.Cells[i]
}

func (d *Diagram) nearestSite(p r2.Point) int {
	best, dist := -1, 0.0
	for i, s := range d.Sites {
		v := s.point.Sub(p)
		if dd := v.Dot(v); best < 0 || dd < dist {
			best, dist = i, dd
		}
	}
	return best
}
