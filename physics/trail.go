package physics

import "github.com/tTrmc/Orbit-Simulator/vmath"

// Trail is a fixed-capacity FIFO ring of past positions. Once full, every
// push evicts the oldest point, so the ring always holds the most recent
// positions in insertion order.
type Trail struct {
	points []vmath.Vec2
	head   int // index of the oldest point
	size   int
}

// NewTrail creates a trail holding at most capacity points
func NewTrail(capacity int) *Trail {
	return &Trail{points: make([]vmath.Vec2, capacity)}
}

// Push appends p, evicting the oldest point when the trail is full
func (t *Trail) Push(p vmath.Vec2) {
	if t.size < len(t.points) {
		t.points[(t.head+t.size)%len(t.points)] = p
		t.size++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % len(t.points)
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return t.size
}

// Points returns a copy of the stored points, oldest to newest. The copy is
// safe for the renderer to hold across a subsequent Push.
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.points[(t.head+i)%len(t.points)]
	}
	return out
}
