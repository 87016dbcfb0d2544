// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import "go.uber.org/zap"

// DuplicatePolicy selects how coincident sites are resolved before the sweep.
type DuplicatePolicy int

const (
	// PerturbDuplicates moves the k-th copy of a site k*jitter along +X,
	// so every input point keeps a cell of its own.
	PerturbDuplicates DuplicatePolicy = iota
	// MergeDuplicates keeps the first copy (in input order) and maps the
	// others to its cell.
	MergeDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case PerturbDuplicates:
		return "perturb"
	case MergeDuplicates:
		return "merge"
	}
	return "unknown"
}

const (
	// relative to the larger side of the bounding box
	defaultJitter    = 1e-6
	defaultTolerance = 1e-9
)

type options struct {
	closeCells bool
	duplicates DuplicatePolicy
	jitter     float64
	tolerance  float64
	logger     *zap.Logger
}

func defaultOptions() options {
	return options{
		closeCells: true,
		duplicates: PerturbDuplicates,
	}
}

// Option configures ComputeDiagram.
type Option func(*options)

// WithoutCellClosing skips synthesizing border edges. Cells then hold only
// the bisectors they share with other cells, and Diagram.Edges holds only
// bisectors.
func WithoutCellClosing() Option {
	return func(o *options) {
		o.closeCells = false
	}
}

// WithDuplicatePolicy selects how coincident sites are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *options) {
		o.duplicates = p
	}
}

// WithJitter sets the absolute offset between perturbed duplicate sites.
// Non-positive values restore the default of 1e-6 times the larger box side.
func WithJitter(d float64) Option {
	return func(o *options) {
		o.jitter = d
	}
}

// WithTolerance sets the absolute distance under which two points are
// considered the same. Non-positive values restore the default of 1e-9
// times the larger box side.
func WithTolerance(d float64) Option {
	return func(o *options) {
		o.tolerance = d
	}
}

// WithLogger overrides the package logger for a single computation.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
