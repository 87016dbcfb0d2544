// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	_, err := ComputeDiagram([]r2.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 5, Y: 5}}, NewBBox(0, 0, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if n := logs.FilterMessage("perturbed duplicate site").Len(); n != 1 {
		t.Errorf("got %d perturbation logs, want 1", n)
	}
	entries := logs.FilterMessage("sweep finished").All()
	if len(entries) != 1 {
		t.Fatalf("got %d sweep logs, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["sites"]; got != int64(3) {
		t.Errorf("sites field = %v, want 3", got)
	}

	SetLogger(nil)
	if Logger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := ComputeDiagram([]r2.Point{{X: 2, Y: 2}, {X: 2, Y: 2}}, NewBBox(0, 0, 10, 10),
		WithDuplicatePolicy(MergeDuplicates),
		WithLogger(zap.New(core)))
	if err != nil {
		t.Fatal(err)
	}
	if n := logs.FilterMessage("merged duplicate site").Len(); n != 1 {
		t.Errorf("got %d merge logs, want 1", n)
	}
}
