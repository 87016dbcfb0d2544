// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

func sitePoints(set *siteSet) []r2.Point {
	out := make([]r2.Point, len(set.sites))
	for i, s := range set.sites {
		out[i] = s.point
	}
	return out
}

func TestPrepareSitesOrder(t *testing.T) {
	points := []r2.Point{{X: 3, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 5, Y: 0}}
	set, err := prepareSites(points, PerturbDuplicates, 0.1, 1e-9, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Point{{X: 5, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}}
	for i, p := range sitePoints(set) {
		if p != want[i] {
			t.Errorf("site %d = %v, want %v", i, p, want[i])
		}
		if set.sites[i].index != i {
			t.Errorf("site %d has index %d", i, set.sites[i].index)
		}
	}
	wantByInput := []int{2, 3, 1, 0}
	for i, r := range set.byInput {
		if r != wantByInput[i] {
			t.Errorf("byInput[%d] = %d, want %d", i, r, wantByInput[i])
		}
	}
}

func TestPrepareSitesRejectsNonFinite(t *testing.T) {
	for _, p := range []r2.Point{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.NaN()},
		{X: math.Inf(-1), Y: 0},
	} {
		if _, err := prepareSites([]r2.Point{{}, p}, PerturbDuplicates, 1, 1e-9, zap.NewNop()); !errors.Is(err, ErrInvalidSite) {
			t.Errorf("prepareSites(%v) error = %v, want ErrInvalidSite", p, err)
		}
	}
}

func TestPerturbDuplicates(t *testing.T) {
	points := []r2.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	set, err := prepareSites(points, PerturbDuplicates, 0.5, 1e-9, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	want := []r2.Point{{X: 1, Y: 1}, {X: 1.5, Y: 1}, {X: 2, Y: 1}}
	for i, p := range sitePoints(set) {
		if p != want[i] {
			t.Errorf("site %d = %v, want %v", i, p, want[i])
		}
		if set.byInput[i] != i {
			t.Errorf("input %d maps to %d", i, set.byInput[i])
		}
	}
}

func TestPerturbDuplicatesCascade(t *testing.T) {
	// the moved copy lands on the third point and has to move again
	points := []r2.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0.25, Y: 0}}
	set, err := prepareSites(points, PerturbDuplicates, 0.25, 1e-9, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	got := sitePoints(set)
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			if near(got[i], got[j], 1e-9) {
				t.Errorf("sites %d and %d still coincide at %v", i, j, got[i])
			}
		}
	}
	if len(got) != 3 {
		t.Fatalf("got %d sites, want 3", len(got))
	}
}

func TestMergeDuplicates(t *testing.T) {
	points := []r2.Point{{X: 5, Y: 5}, {X: 1, Y: 1}, {X: 5, Y: 5 + 1e-12}}
	set, err := prepareSites(points, MergeDuplicates, 1, 1e-9, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(set.sites) != 2 {
		t.Fatalf("got %d sites, want 2", len(set.sites))
	}
	if set.sites[1].input != 0 {
		t.Errorf("kept input %d, want the first copy", set.sites[1].input)
	}
	wantByInput := []int{1, 0, 1}
	for i, r := range set.byInput {
		if r != wantByInput[i] {
			t.Errorf("byInput[%d] = %d, want %d", i, r, wantByInput[i])
		}
	}
}

func TestDuplicatePolicyString(t *testing.T) {
	tests := map[DuplicatePolicy]string{
		PerturbDuplicates:  "perturb",
		MergeDuplicates:    "merge",
		DuplicatePolicy(7): "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(p), got, want)
		}
	}
}
