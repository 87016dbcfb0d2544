// Command voronoi computes a Voronoi diagram from random or JSON sites and
// writes it as PNG, as JSON or to the terminal.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"
	"github.com/zzwx/voronoi/v2"
	"github.com/zzwx/voronoi/v2/preview"
	"github.com/zzwx/voronoi/v2/render"
	"go.uber.org/zap"
)

func main() {
	var (
		count   = flag.Int("n", 50, "number of random sites when no input is given")
		seed    = flag.Int64("seed", 1, "random seed")
		input   = flag.String("in", "", "JSON file with sites as [[x, y], ...] (- for stdin)")
		box     = flag.String("box", "0,0,800,450", "bounding box as xmin,ymin,xmax,ymax")
		merge   = flag.Bool("merge", false, "merge duplicate sites instead of perturbing them")
		open    = flag.Bool("open", false, "keep cells open, without border edges")
		pngOut  = flag.String("png", "", "write a PNG rendering to this file")
		width   = flag.Int("width", 800, "PNG width")
		height  = flag.Int("height", 450, "PNG height")
		jsonOut = flag.String("json", "", "write the diagram as JSON to this file (- for stdout)")
		tui     = flag.Bool("tui", false, "show the diagram in the terminal")
		verbose = flag.Bool("v", false, "development logging at debug level")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Computes a Voronoi diagram clipped to a box.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -n 200 -png cells.png\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -in sites.json -box 0,0,10,10 -json -\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -n 30 -tui\n", os.Args[0])
	}
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	voronoi.SetLogger(log)

	bounds, err := parseBox(*box)
	if err != nil {
		log.Fatal("bad -box", zap.Error(err))
	}

	var sites []r2.Point
	if *input != "" {
		sites, err = readSitesFile(*input)
		if err != nil {
			log.Fatal("reading sites", zap.String("file", *input), zap.Error(err))
		}
	} else {
		sites = randomSites(rand.New(rand.NewSource(*seed)), *count, bounds)
	}

	opts := []voronoi.Option{}
	if *merge {
		opts = append(opts, voronoi.WithDuplicatePolicy(voronoi.MergeDuplicates))
	}
	if *open {
		opts = append(opts, voronoi.WithoutCellClosing())
	}
	d, err := voronoi.ComputeDiagram(sites, bounds, opts...)
	if err != nil {
		log.Fatal("computing diagram", zap.Error(err))
	}
	if err := d.Err(); err != nil {
		log.Warn("diagram has open cells", zap.Error(err))
	}
	log.Info("diagram computed",
		zap.Int("sites", len(d.Sites)),
		zap.Int("cells", len(d.Cells)),
		zap.Int("edges", len(d.Edges)),
		zap.Int("vertices", len(d.Vertices())))

	if *pngOut != "" {
		o := render.DefaultOptions()
		o.Width, o.Height = *width, *height
		if err := render.SavePNG(*pngOut, d, o); err != nil {
			log.Fatal("writing PNG", zap.String("file", *pngOut), zap.Error(err))
		}
		log.Info("PNG saved", zap.String("file", *pngOut))
	}

	if *jsonOut != "" {
		if err := writeJSONFile(*jsonOut, d); err != nil {
			log.Fatal("writing JSON", zap.String("file", *jsonOut), zap.Error(err))
		}
	}

	if *tui {
		if err := runPreview(d); err != nil {
			log.Fatal("terminal preview", zap.Error(err))
		}
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func randomSites(rnd *rand.Rand, n int, bounds r2.Rect) []r2.Point {
	sites := make([]r2.Point, n)
	for i := range sites {
		sites[i] = r2.Point{
			X: bounds.X.Lo + rnd.Float64()*bounds.X.Length(),
			Y: bounds.Y.Lo + rnd.Float64()*bounds.Y.Length(),
		}
	}
	return sites
}

func runPreview(d *voronoi.Diagram) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	return preview.NewViewer(s, d).Run()
}
