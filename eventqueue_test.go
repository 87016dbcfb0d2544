// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"testing"

	"github.com/golang/geo/r2"
)

func newTestQueue(n int) (*eventQueue, []int) {
	b := newBeachline([]*Site{{point: r2.Point{}}})
	hes := make([]int, n)
	for i := range hes {
		hes[i] = b.newHalfedge(none, le)
	}
	return newEventQueue(b), hes
}

func TestEventQueueOrder(t *testing.T) {
	q, he := newTestQueue(3)
	q.insert(he[0], r2.Point{X: 0, Y: 4}, 1)
	q.insert(he[1], r2.Point{X: 2, Y: 3}, 0)
	q.insert(he[2], r2.Point{X: 1, Y: 3}, 0)

	if got := q.min(); got != (r2.Point{X: 1, Y: 3}) {
		t.Errorf("min() = %v, want (1, 3)", got)
	}
	for _, want := range []int{he[2], he[1], he[0]} {
		if q.empty() {
			t.Fatal("queue drained early")
		}
		if got := q.extractMin(); got != want {
			t.Errorf("extractMin() = %d, want %d", got, want)
		}
	}
	if !q.empty() {
		t.Error("queue not empty")
	}
}

func TestEventQueueLazyRemoval(t *testing.T) {
	q, he := newTestQueue(3)
	q.insert(he[0], r2.Point{X: 0, Y: 5}, 0)
	q.insert(he[1], r2.Point{X: 1, Y: 3}, 0)
	q.insert(he[2], r2.Point{X: 2, Y: 6}, 0)

	q.remove(he[1])
	if got := q.min(); got != (r2.Point{X: 0, Y: 5}) {
		t.Errorf("min() after remove = %v, want (0, 5)", got)
	}
	if q.arcs.nodes[he[1]].vertex.resolved {
		t.Error("removed event still holds a vertex")
	}

	// rescheduling invalidates the earlier entry
	q.insert(he[0], r2.Point{X: 0, Y: 7}, 0)
	if got := q.min(); got != (r2.Point{X: 2, Y: 6}) {
		t.Errorf("min() after reschedule = %v, want (2, 6)", got)
	}

	q.arcs.nodes[he[2]].deleted = true
	if got := q.extractMin(); got != he[0] {
		t.Errorf("extractMin() = %d, want %d", got, he[0])
	}
	if !q.empty() {
		t.Error("stale entries survived")
	}
}

func TestEventQueueRemoveWithoutEvent(t *testing.T) {
	q, he := newTestQueue(1)
	q.remove(he[0])
	if gen := q.arcs.nodes[he[0]].gen; gen != 0 {
		t.Errorf("gen = %d after removing nothing", gen)
	}
	if !q.empty() {
		t.Error("queue not empty")
	}
}
