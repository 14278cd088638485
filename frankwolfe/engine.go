// SPDX-License-Identifier: MIT

package frankwolfe

import "github.com/lvlath-research/triangle-inflation/event"

// Engine is the shared contract both Frank-Wolfe variants satisfy
// (spec.md §4.12).
type Engine interface {
	// MemorizeEventAndQuovec stores e alongside q/denom, converted to a
	// float64 vector of modest magnitude.
	MemorizeEventAndQuovec(e event.Event, q []int64, denom float64) error

	// Solve returns the current candidate certificate.
	Solve() Solution

	// Reset clears all stored vertices but keeps the configured dimension.
	Reset()

	// GetStoredEvents returns the events memorized so far, in storage
	// order.
	GetStoredEvents() []event.Event
}

var (
	_ Engine = (*Pairwise)(nil)
	_ Engine = (*FullyCorrective)(nil)
)

// toFloatVertex divides each component of q by denom, producing the float
// vector memorize_event_and_quovec stores (spec.md §4.12).
func toFloatVertex(q []int64, denom float64) []float64 {
	d := make([]float64, len(q))
	for i, c := range q {
		d[i] = float64(c) / denom
	}
	return d
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
