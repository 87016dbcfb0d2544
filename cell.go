// Copyright 2013 Przemyslaw Szczepaniak.
// MIT License: See https://github.com/gorhill/Javascript-Voronoi/LICENSE.md

package voronoi

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// CellType classifies a cell. The diagram never sets it; consumers do.
type CellType int

const (
	CellSolid CellType = iota
	CellEmpty
	CellEdge
	CellPath
	CellRemoved
)

func (t CellType) String() string {
	switch t {
	case CellSolid:
		return "solid"
	case CellEmpty:
		return "empty"
	case CellEdge:
		return "edge"
	case CellPath:
		return "path"
	case CellRemoved:
		return "removed"
	}
	return fmt.Sprintf("CellType(%d)", int(t))
}

// Cell of voronoi diagram
type Cell struct {
	site *Site
	// closed counterclockwise loop, unless incomplete
	edges []*GraphEdge
	// vertices[i] is where edges[i] starts when walking the loop
	vertices   []r2.Point
	incomplete bool

	// Type is the consumer assigned classification.
	Type CellType
	// Translation moves the cell center without recomputing the diagram.
	Translation r2.Point
}

// Site returns the site the cell was grown from.
func (c *Cell) Site() *Site { return c.site }

// Edges returns the boundary of the cell in loop order: consecutive edges
// share an endpoint and the last edge meets the first. Cells flagged
// Incomplete, and cells of diagrams computed WithoutCellClosing, hold their
// bisectors only.
func (c *Cell) Edges() []*GraphEdge {
	return append([]*GraphEdge(nil), c.edges...)
}

// Vertices returns the corners of the cell polygon in counterclockwise
// order, or nil when the cell is not closed.
func (c *Cell) Vertices() []r2.Point {
	return append([]r2.Point(nil), c.vertices...)
}

// Incomplete reports whether the edges of the cell could not be closed
// into a loop. Diagram.Err carries the reason.
func (c *Cell) Incomplete() bool { return c.incomplete }

// Center returns the site coordinate moved by Translation.
func (c *Cell) Center() r2.Point {
	return c.site.point.Add(c.Translation)
}

// IsClosed reports whether the edges, walked in order, form a closed loop.
func (c *Cell) IsClosed() bool {
	n := len(c.edges)
	if n < 2 {
		return false
	}
	for i, e := range c.edges {
		if _, ok := e.sharedPoint(c.edges[(i+1)%n]); !ok {
			return false
		}
	}
	return true
}

// Area returns the area of the cell polygon, 0 for open cells.
func (c *Cell) Area() float64 {
	var sum float64
	for i, p := range c.vertices {
		q := c.vertices[(i+1)%len(c.vertices)]
		sum += p.Cross(q)
	}
	return math.Abs(sum) / 2
}

// Neighbors returns the distinct cells sharing an edge with c, in edge order.
func (c *Cell) Neighbors() []*Cell {
	var out []*Cell
	seen := make(map[*Cell]bool)
	for _, e := range c.edges {
		if n := e.AdjacentCell(c); n != nil && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// NewPolygonCell builds a standalone cell from a polygon. The site is the
// mean of the vertices; the cell has no neighbors.
func NewPolygonCell(vertices []r2.Point) (*Cell, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("voronoi: polygon cell needs at least 3 vertices, got %d", len(vertices))
	}
	var mid r2.Point
	for _, v := range vertices {
		mid = mid.Add(v)
	}
	mid = mid.Mul(1 / float64(len(vertices)))

	c := &Cell{
		site:     &Site{point: mid, index: -1, input: -1},
		vertices: append([]r2.Point(nil), vertices...),
	}
	for i, v := range vertices {
		w := vertices[(i+1)%len(vertices)]
		if v == w {
			return nil, fmt.Errorf("voronoi: polygon side %d has zero length", i)
		}
		c.edges = append(c.edges, &GraphEdge{p1: v, p2: w, site1: c.site, cell1: c})
	}
	return c, nil
}
