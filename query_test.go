// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func square(t *testing.T) *Cell {
	t.Helper()
	c, err := NewPolygonCell([]r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewPolygonCell(t *testing.T) {
	c := square(t)
	if got := c.Site().Point(); got != (r2.Point{X: 1, Y: 1}) {
		t.Errorf("site = %v, want (1, 1)", got)
	}
	if !c.IsClosed() {
		t.Error("polygon cell is not closed")
	}
	if got := c.Area(); got != 4 {
		t.Errorf("Area() = %v, want 4", got)
	}
	if len(c.Neighbors()) != 0 {
		t.Error("polygon cell has neighbors")
	}

	if _, err := NewPolygonCell([]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}); err == nil {
		t.Error("NewPolygonCell() accepted two vertices")
	}
	if _, err := NewPolygonCell([]r2.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}); err == nil {
		t.Error("NewPolygonCell() accepted a zero length side")
	}
}

func TestIsPointInside(t *testing.T) {
	c := square(t)
	tests := []struct {
		p    r2.Point
		want bool
	}{
		{r2.Point{X: 1, Y: 1}, true},
		{r2.Point{X: 1.5, Y: 0.25}, true},
		{r2.Point{X: 3, Y: 1}, false},
		{r2.Point{X: -1, Y: -1}, false},
		{r2.Point{X: 1, Y: 2.5}, false},
	}
	for _, tt := range tests {
		if got := c.IsPointInside(tt.p); got != tt.want {
			t.Errorf("IsPointInside(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	// the test segment runs to the translated center
	c.Translation = r2.Point{X: 0.5, Y: 0}
	if got := c.Center(); got != (r2.Point{X: 1.5, Y: 1}) {
		t.Errorf("Center() = %v, want (1.5, 1)", got)
	}
	if !c.IsPointInside(r2.Point{X: 0.25, Y: 1}) {
		t.Error("translated cell lost an inside point")
	}
}

func TestNormal(t *testing.T) {
	c := square(t)
	want := []r2.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for i, e := range c.Edges() {
		n := e.Normal(c)
		if math.Abs(n.X-want[i].X) > 1e-12 || math.Abs(n.Y-want[i].Y) > 1e-12 {
			t.Errorf("edge %d normal = %v, want %v", i, n, want[i])
		}
	}

	e := c.Edges()[0]
	// (0,0)-(2,0) has direction (-1,0) from p2 to p1, rotated clockwise
	if n := e.Normal(nil); n != (r2.Point{X: 0, Y: 1}) {
		t.Errorf("Normal(nil) = %v, want (0, 1)", n)
	}
}

func TestAdjacentCell(t *testing.T) {
	a := &Cell{site: &Site{}}
	b := &Cell{site: &Site{}}
	stranger := &Cell{site: &Site{}}
	e := &GraphEdge{cell1: a, cell2: b, site1: a.site, site2: b.site}

	if e.AdjacentCell(a) != b || e.AdjacentCell(b) != a {
		t.Error("AdjacentCell() does not swap sides")
	}
	if e.AdjacentCell(stranger) != nil {
		t.Error("AdjacentCell() of a cell not on the edge")
	}
	if e.AdjacentCell(nil) != nil {
		t.Error("AdjacentCell(nil) != nil")
	}
	border := &GraphEdge{cell1: a, site1: a.site}
	if border.AdjacentCell(a) != nil {
		t.Error("border edge has an adjacent cell")
	}
}

func TestCellAt(t *testing.T) {
	d, err := ComputeDiagram([]r2.Point{{X: 2, Y: 2}, {X: 8, Y: 8}, {X: 8, Y: 2}}, NewBBox(0, 0, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		p    r2.Point
		want r2.Point
	}{
		{r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2}},
		{r2.Point{X: 9, Y: 9}, r2.Point{X: 8, Y: 8}},
		{r2.Point{X: 9, Y: 0}, r2.Point{X: 8, Y: 2}},
		// outside the box the nearest site still wins
		{r2.Point{X: -50, Y: 2}, r2.Point{X: 2, Y: 2}},
	}
	for _, tt := range tests {
		c := d.CellAt(tt.p)
		if c == nil || c.Site().Point() != tt.want {
			t.Errorf("CellAt(%v) = %v, want the cell of %v", tt.p, c, tt.want)
		}
	}
	// equidistant from (2,2) and (8,2): lower index wins
	if c := d.CellAt(r2.Point{X: 5, Y: 0}); c.Site().Index() != 0 {
		t.Errorf("tie went to site %d", c.Site().Index())
	}
}

func TestCellTypeString(t *testing.T) {
	for ct, want := range map[CellType]string{
		CellSolid:    "solid",
		CellEmpty:    "empty",
		CellEdge:     "edge",
		CellPath:     "path",
		CellRemoved:  "removed",
		CellType(42): "CellType(42)",
	} {
		if got := ct.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestCellError(t *testing.T) {
	err := error(&CellError{Site: 3, Err: ErrOpenCell})
	if got, want := err.Error(), "cell 3: "+ErrOpenCell.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrOpenCell) {
		t.Error("CellError does not unwrap")
	}
}
