// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

// Package render rasterizes Voronoi diagrams with the gg 2D library.
//
// Cells are filled from a palette, edges stroked on top and sites drawn as
// dots. Diagram Y grows upward, image Y downward, so the bounding box is
// flipped vertically to fill the image.
//
//	d, _ := voronoi.ComputeDiagram(points, voronoi.NewBBox(0, 0, 800, 450))
//	err := render.SavePNG("out.png", d, render.DefaultOptions())
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/golang/geo/r2"
	"github.com/zzwx/voronoi/v2"
	"golang.org/x/image/colornames"
)

// Palette is the default set of cell fill colors.
var Palette = []color.Color{
	colornames.Lightskyblue,
	colornames.Palegreen,
	colornames.Lightsalmon,
	colornames.Khaki,
	colornames.Plum,
	colornames.Paleturquoise,
	colornames.Wheat,
	colornames.Lightpink,
	colornames.Thistle,
	colornames.Lightcoral,
}

// Options controls how a diagram is drawn.
type Options struct {
	Width, Height int

	// Palette colors cells by site index. Empty disables cell fills.
	Palette    []color.Color
	Background color.Color
	EdgeColor  color.Color
	SiteColor  color.Color

	// EdgeWidth is the stroke width in pixels; solid edges use twice that.
	EdgeWidth float64
	// SiteRadius is the dot radius in pixels; 0 hides sites.
	SiteRadius float64
}

// DefaultOptions returns an 800x450 rendering with the default palette.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     450,
		Palette:    Palette,
		Background: colornames.White,
		EdgeColor:  colornames.Darkslategray,
		SiteColor:  colornames.Black,
		EdgeWidth:  1.5,
		SiteRadius: 3,
	}
}

// projection maps diagram coordinates to pixels.
type projection struct {
	box  r2.Rect
	w, h float64
}

func newProjection(box r2.Rect, w, h int) projection {
	return projection{box: box, w: float64(w), h: float64(h)}
}

func (p projection) point(q r2.Point) (x, y float64) {
	x = (q.X - p.box.X.Lo) / p.box.X.Length() * p.w
	y = p.h - (q.Y-p.box.Y.Lo)/p.box.Y.Length()*p.h
	return x, y
}

// Draw paints d onto dc, stretched over the whole context.
func Draw(dc *gg.Context, d *voronoi.Diagram, o Options) error {
	proj := newProjection(d.Bounds, dc.Width(), dc.Height())
	if o.Background != nil {
		dc.ClearWithColor(gg.FromColor(o.Background))
	}

	if len(o.Palette) > 0 {
		for _, cell := range d.Cells {
			vs := cell.Vertices()
			if len(vs) < 3 || cell.Type == voronoi.CellRemoved {
				continue
			}
			for i, v := range vs {
				x, y := proj.point(v)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
			dc.SetColor(o.Palette[cell.Site().Index()%len(o.Palette)])
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	}

	if o.EdgeWidth > 0 && o.EdgeColor != nil {
		dc.SetColor(o.EdgeColor)
		for _, solid := range []bool{false, true} {
			width := o.EdgeWidth
			if solid {
				width *= 2
			}
			dc.SetLineWidth(width)
			for _, e := range d.Edges {
				if e.IsSolid != solid {
					continue
				}
				x1, y1 := proj.point(e.Point1())
				x2, y2 := proj.point(e.Point2())
				dc.MoveTo(x1, y1)
				dc.LineTo(x2, y2)
			}
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}

	if o.SiteRadius > 0 && o.SiteColor != nil {
		dc.SetColor(o.SiteColor)
		for _, s := range d.Sites {
			x, y := proj.point(s.Point())
			dc.DrawCircle(x, y, o.SiteRadius)
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// Image renders d into a new image of o.Width by o.Height pixels.
func Image(d *voronoi.Diagram, o Options) (image.Image, error) {
	dc := gg.NewContext(o.Width, o.Height)
	defer dc.Close()
	if err := Draw(dc, d, o); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders d and encodes it as PNG to w.
func WritePNG(w io.Writer, d *voronoi.Diagram, o Options) error {
	dc := gg.NewContext(o.Width, o.Height)
	defer dc.Close()
	if err := Draw(dc, d, o); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders d to a PNG file at path.
func SavePNG(path string, d *voronoi.Diagram, o Options) error {
	dc := gg.NewContext(o.Width, o.Height)
	defer dc.Close()
	if err := Draw(dc, d, o); err != nil {
		return err
	}
	return dc.SavePNG(path)
}
