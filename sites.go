// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// siteSet is the sorted, duplicate free input of a sweep.
type siteSet struct {
	sites []*Site
	// byInput maps the caller's point index to a rank in sites.
	byInput []int
}

// prepareSites validates and sorts the points, then resolves coincident
// sites according to policy. Two sites are coincident when they are within
// tol of each other on both axes.
func prepareSites(points []r2.Point, policy DuplicatePolicy, jitter, tol float64, log *zap.Logger) (*siteSet, error) {
	all := make(sites, len(points))
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: point %d is %v", ErrInvalidSite, i, p)
		}
		all[i] = &Site{point: p, input: i}
	}
	sort.Stable(sitesByYX{all})

	alias := make(map[*Site]*Site)
	switch policy {
	case MergeDuplicates:
		kept := all[:0]
		for i, s := range all {
			if alias[s] != nil {
				continue
			}
			kept = append(kept, s)
			for j := i + 1; j < len(all) && all[j].point.Y-s.point.Y <= tol; j++ {
				if alias[all[j]] == nil && near(s.point, all[j].point, tol) {
					alias[all[j]] = s
					log.Debug("merged duplicate site",
						zap.Int("input", all[j].input),
						zap.Int("into", s.input))
				}
			}
		}
		all = kept
	default:
		// a moved copy may land on another site, so repeat until clean
		for pass := 0; pass <= len(all) && perturbDuplicates(all, jitter, tol, log); pass++ {
			sort.Stable(sitesByYX{all})
		}
	}

	set := &siteSet{
		sites:   all,
		byInput: make([]int, len(points)),
	}
	for i, s := range all {
		s.index = i
		set.byInput[s.input] = i
	}
	for dup, s := range alias {
		set.byInput[dup.input] = s.index
	}
	return set, nil
}

// perturbDuplicates shifts the k-th member of every group of coincident
// sites by k*jitter along +X from the group's first member. It reports
// whether any site moved.
func perturbDuplicates(all []*Site, jitter, tol float64, log *zap.Logger) bool {
	moved := false
	done := make([]bool, len(all))
	for i, s := range all {
		if done[i] {
			continue
		}
		anchor := s.point
		k := 0
		for j := i + 1; j < len(all) && all[j].point.Y-anchor.Y <= tol; j++ {
			if done[j] || !near(anchor, all[j].point, tol) {
				continue
			}
			k++
			done[j] = true
			all[j].point = r2.Point{X: anchor.X + float64(k)*jitter, Y: anchor.Y}
			moved = true
			log.Debug("perturbed duplicate site",
				zap.Int("input", all[j].input),
				zap.Float64("x", all[j].point.X),
				zap.Float64("y", all[j].point.Y))
		}
	}
	return moved
}
