package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/zzwx/voronoi/v2"
)

// parseBox reads "xmin,ymin,xmax,ymax".
func parseBox(s string) (r2.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return r2.Rect{}, fmt.Errorf("box %q: want xmin,ymin,xmax,ymax", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r2.Rect{}, fmt.Errorf("box %q: %w", s, err)
		}
		v[i] = f
	}
	return voronoi.NewBBox(v[0], v[1], v[2], v[3]), nil
}

func readSitesFile(path string) ([]r2.Point, error) {
	if path == "-" {
		return readSites(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSites(f)
}

// readSites decodes a JSON array of [x, y] pairs.
func readSites(r io.Reader) ([]r2.Point, error) {
	var raw [][2]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding sites: %w", err)
	}
	sites := make([]r2.Point, len(raw))
	for i, p := range raw {
		sites[i] = r2.Point{X: p[0], Y: p[1]}
	}
	return sites, nil
}

type jsonDiagram struct {
	Bounds [4]float64 `json:"bounds"`
	Cells  []jsonCell `json:"cells"`
	Edges  []jsonEdge `json:"edges"`
}

type jsonCell struct {
	Site       [2]float64   `json:"site"`
	Input      int          `json:"input"`
	Vertices   [][2]float64 `json:"vertices"`
	Neighbors  []int        `json:"neighbors"`
	Incomplete bool         `json:"incomplete,omitempty"`
}

type jsonEdge struct {
	P1 [2]float64 `json:"p1"`
	P2 [2]float64 `json:"p2"`
	// Cells holds the site indices on both sides, -1 outside the box.
	Cells [2]int `json:"cells"`
}

func pair(p r2.Point) [2]float64 { return [2]float64{p.X, p.Y} }

func cellIndex(c *voronoi.Cell) int {
	if c == nil {
		return -1
	}
	return c.Site().Index()
}

func toJSON(d *voronoi.Diagram) jsonDiagram {
	out := jsonDiagram{
		Bounds: [4]float64{d.Bounds.X.Lo, d.Bounds.Y.Lo, d.Bounds.X.Hi, d.Bounds.Y.Hi},
		Cells:  make([]jsonCell, len(d.Cells)),
		Edges:  make([]jsonEdge, len(d.Edges)),
	}
	for i, c := range d.Cells {
		jc := jsonCell{
			Site:       pair(c.Site().Point()),
			Input:      c.Site().Input(),
			Vertices:   [][2]float64{},
			Neighbors:  []int{},
			Incomplete: c.Incomplete(),
		}
		for _, v := range c.Vertices() {
			jc.Vertices = append(jc.Vertices, pair(v))
		}
		for _, n := range c.Neighbors() {
			jc.Neighbors = append(jc.Neighbors, cellIndex(n))
		}
		out.Cells[i] = jc
	}
	for i, e := range d.Edges {
		out.Edges[i] = jsonEdge{
			P1:    pair(e.Point1()),
			P2:    pair(e.Point2()),
			Cells: [2]int{cellIndex(e.Cell1()), cellIndex(e.Cell2())},
		}
	}
	return out
}

func writeJSON(w io.Writer, d *voronoi.Diagram) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(d))
}

func writeJSONFile(path string, d *voronoi.Diagram) error {
	if path == "-" {
		return writeJSON(os.Stdout, d)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeJSON(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
