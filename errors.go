// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned when the bounding box is empty or not finite.
	ErrInvalidBounds = errors.New("voronoi: invalid bounding box")
	// ErrInvalidSite is returned for sites with NaN or infinite coordinates.
	ErrInvalidSite = errors.New("voronoi: invalid site")
	// ErrOpenCell reports a cell whose edges do not close into a single loop.
	ErrOpenCell = errors.New("voronoi: cell edges do not form a closed loop")
)

// CellError is a construction failure local to one cell. The rest of the
// diagram stays valid.
type CellError struct {
	// Site is the rank of the cell's site, see Site.Index.
	Site int
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %d: %v", e.Site, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
