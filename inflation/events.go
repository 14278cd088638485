// SPDX-License-Identifier: MIT

package inflation

import (
	"math/rand"

	"github.com/lvlath-research/triangle-inflation/event"
)

// Arity returns the length of a full inflation event: one outcome per
// enumerated party.
func (inf *Inflation) Arity() int { return len(inf.parties) }

// AllZeroEvent returns the inflation event with every party assigned
// outcome 0.
func (inf *Inflation) AllZeroEvent() event.Event {
	return make(event.Event, inf.Arity())
}

// AllUnknownEvent returns the bound-aware inflation event with every party
// assigned the UNKNOWN sentinel (value NOutcomes), used to seed the tree
// filler's working event before any party has been assigned (spec.md §4.8).
func (inf *Inflation) AllUnknownEvent() event.Event {
	e := make(event.Event, inf.Arity())
	unknown := event.Outcome(inf.Distribution.Net.NOutcomes)
	for i := range e {
		e[i] = unknown
	}
	return e
}

// RandomEvent draws a uniformly random full inflation event using rng.
func (inf *Inflation) RandomEvent(rng *rand.Rand) event.Event {
	e := make(event.Event, inf.Arity())
	n := inf.Distribution.Net.NOutcomes
	for i := range e {
		e[i] = event.Outcome(rng.Intn(n))
	}
	return e
}
