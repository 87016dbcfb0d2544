// Package voronoi computes planar Voronoi diagrams (https://en.wikipedia.org/wiki/Voronoi_diagram)
// clipped to a bounding rectangle, using the sweep line method described by Steven J. Fortune.
//
// ComputeDiagram sorts the sites, runs the sweep over an index based beach line with a
// lazily invalidated circle event heap, clips the resulting bisectors to the box and
// finally assembles one closed, convex cell per site with symmetric adjacency.
//
//	d, err := voronoi.ComputeDiagram(points, voronoi.NewBBox(0, 0, 800, 450))
//	if err != nil {
//		return err
//	}
//	for _, cell := range d.Cells {
//		poly := cell.Vertices()
//		...
//	}
//
// The returned geometry is read-only. Cell.Type, Cell.Translation and the
// GraphEdge classification flags are the only fields meant to be changed by callers.
package voronoi
