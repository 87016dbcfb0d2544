// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while diagrams are computed on other goroutines.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by ComputeDiagram when no
// WithLogger option is given. By default the package logs nothing.
// Pass nil to restore the silent default.
//
// Log levels used:
//   - Debug: sweep statistics, perturbed or merged duplicate sites
//   - Warn: cells that could not be closed into a loop
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
