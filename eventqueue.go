// MIT License: See https://github.com/pzsz/voronoi/LICENSE.md

package voronoi

import (
	"container/heap"

	"github.com/golang/geo/r2"
)

// circleEvent is a predicted vertex: the arc left of halfedge he vanishes
// when the sweep reaches ystar.
type circleEvent struct {
	he    int
	gen   uint32
	x     float64
	ystar float64
}

type circleEvents []circleEvent

func (q circleEvents) Len() int { return len(q) }

func (q circleEvents) Less(i, j int) bool {
	if q[i].ystar != q[j].ystar {
		return q[i].ystar < q[j].ystar
	}
	return q[i].x < q[j].x
}

func (q circleEvents) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *circleEvents) Push(x any) { *q = append(*q, x.(circleEvent)) }

func (q *circleEvents) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	*q = old[:n-1]
	return ev
}

// eventQueue orders circle events by ystar, then x. Removing an event only
// bumps the owning halfedge's generation; entries whose generation no
// longer matches are dropped when they surface. Dropping such an entry
// never has any other effect.
type eventQueue struct {
	heap circleEvents
	arcs *beachline
}

func newEventQueue(arcs *beachline) *eventQueue {
	return &eventQueue{arcs: arcs}
}

// insert schedules the event of halfedge he at vertex v, firing once the
// sweep has moved offset past v.
func (q *eventQueue) insert(he int, v r2.Point, offset float64) {
	q.remove(he)
	h := &q.arcs.nodes[he]
	h.vertex = resolvedAt(v)
	h.ystar = v.Y + offset
	heap.Push(&q.heap, circleEvent{he: he, gen: h.gen, x: v.X, ystar: h.ystar})
}

// remove invalidates the pending event of he, if any.
func (q *eventQueue) remove(he int) {
	h := &q.arcs.nodes[he]
	if h.vertex.resolved {
		h.vertex = unbounded
		h.gen++
	}
}

func (q *eventQueue) stale(ev circleEvent) bool {
	h := &q.arcs.nodes[ev.he]
	return h.deleted || h.gen != ev.gen || !h.vertex.resolved
}

func (q *eventQueue) prune() {
	for len(q.heap) > 0 && q.stale(q.heap[0]) {
		heap.Pop(&q.heap)
	}
}

func (q *eventQueue) empty() bool {
	q.prune()
	return len(q.heap) == 0
}

// min returns the position of the earliest live event. It must not be
// called on an empty queue.
func (q *eventQueue) min() r2.Point {
	q.prune()
	return r2.Point{X: q.heap[0].x, Y: q.heap[0].ystar}
}

// extractMin removes the earliest live event and returns its halfedge.
func (q *eventQueue) extractMin() int {
	q.prune()
	return heap.Pop(&q.heap).(circleEvent).he
}
