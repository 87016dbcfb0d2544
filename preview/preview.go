// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

// Package preview shows a Voronoi diagram in the terminal. Every character
// cell is colored after the diagram cell owning its center.
package preview

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"
	"github.com/zzwx/voronoi/v2"
	"github.com/zzwx/voronoi/v2/render"
	"go.uber.org/zap"
)

// SiteRune marks the character cell holding a site.
const SiteRune = '●'

// Viewer draws one diagram onto a tcell screen.
type Viewer struct {
	screen  tcell.Screen
	diagram *voronoi.Diagram
	palette []tcell.Color
	sites   bool
	log     *zap.Logger
}

// NewViewer returns a viewer using the render palette. The screen must be
// initialized by the caller.
func NewViewer(s tcell.Screen, d *voronoi.Diagram) *Viewer {
	v := &Viewer{
		screen:  s,
		diagram: d,
		sites:   true,
		log:     voronoi.Logger().Named("preview"),
	}
	for _, c := range render.Palette {
		v.palette = append(v.palette, toTcell(c))
	}
	return v
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// point returns the diagram coordinate at the center of character cell
// (x, y) on a w by h screen, leaving the last row for the status line.
func (v *Viewer) point(x, y, w, h int) r2.Point {
	box := v.diagram.Bounds
	rows := max(h-1, 1)
	return r2.Point{
		X: box.X.Lo + (float64(x)+0.5)/float64(w)*box.X.Length(),
		Y: box.Y.Hi - (float64(y)+0.5)/float64(rows)*box.Y.Length(),
	}
}

// cellOf returns the character cell holding diagram point p.
func (v *Viewer) cellOf(p r2.Point, w, h int) (int, int) {
	box := v.diagram.Bounds
	rows := max(h-1, 1)
	x := int((p.X - box.X.Lo) / box.X.Length() * float64(w))
	y := int((box.Y.Hi - p.Y) / box.Y.Length() * float64(rows))
	return min(max(x, 0), w-1), min(max(y, 0), rows-1)
}

// Style returns the style of character cells owned by cell.
func (v *Viewer) Style(cell *voronoi.Cell) tcell.Style {
	bg := v.palette[cell.Site().Index()%len(v.palette)]
	if cell.Type == voronoi.CellRemoved {
		bg = tcell.ColorReset
	}
	return tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
}

// Draw paints the diagram and the status line, then shows the screen.
func (v *Viewer) Draw() {
	s := v.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	d := v.diagram
	if len(d.Cells) > 0 {
		for y := 0; y < max(h-1, 1); y++ {
			for x := 0; x < w; x++ {
				cell := d.CellAt(v.point(x, y, w, h))
				s.SetContent(x, y, ' ', nil, v.Style(cell))
			}
		}
		if v.sites {
			for _, site := range d.Sites {
				p := site.Point()
				if !d.Bounds.ContainsPoint(p) {
					continue
				}
				x, y := v.cellOf(p, w, h)
				s.SetContent(x, y, SiteRune, nil, v.Style(d.Cells[site.Index()]))
			}
		}
	}
	if h > 1 {
		status := fmt.Sprintf("%d sites  %d edges  s: sites  q: quit", len(d.Sites), len(d.Edges))
		for i, r := range []rune(status) {
			if i >= w {
				break
			}
			s.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
		}
	}
	s.Show()
}

// Run draws the diagram and handles events until the user quits with q,
// Escape or Ctrl-C, or the screen is finalized.
func (v *Viewer) Run() error {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			w, h := ev.Size()
			v.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 's':
				v.sites = !v.sites
				v.Draw()
			}
		}
	}
}
