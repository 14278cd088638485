// SPDX-License-Identifier: MIT

package constraint

import (
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// updateRule ties a change at one global inflation party to the reduced
// permutation it affects, the position within that permutation's marginal
// event, and that position's hashing weight (spec.md §4.7).
type updateRule struct {
	permIndex int
	position  int
	weight    int64
	outcome   *symmetry.OutcomeSym // set by NewEvaluator from the Marginal's reduced permutation
}

// Evaluator tracks, for the current partial inflation event, the hash of
// each reduced permutation's extracted marginal event, updated
// incrementally as outcomes are assigned (spec.md §4.7).
type Evaluator struct {
	marginal *Marginal
	base     int // hashing base n' for the marginal event space

	hashes  []int64
	current []event.Outcome

	// rulesByParty[p] lists the update rules triggered by a change at
	// global inflation party p.
	rulesByParty map[int][]updateRule
}

// DualVectorView is the minimal read interface Evaluator needs from a
// DualVector to evaluate an inner product (spec.md §4.7's
// evaluate_dual_vector).
type DualVectorView interface {
	At(hash uint64) int64
}

// NewEvaluator builds an Evaluator over nParties global inflation parties
// for m, hashing extracted marginal events in the given base. Every global
// party starts at the given initial outcome; MarginalEvaluators always
// seeds the UNKNOWN sentinel (base-1) regardless of search mode, since a
// brute-force caller overwrites every position via SetOutcome before
// evaluating anyway (spec.md §4.7, §4.11).
func NewEvaluator(m *Marginal, nParties, base int, initial event.Outcome) *Evaluator {
	current := make([]event.Outcome, nParties)
	for i := range current {
		current[i] = initial
	}
	ev := &Evaluator{
		marginal:     m,
		base:         base,
		hashes:       make([]int64, len(m.reduced)),
		current:      current,
		rulesByParty: make(map[int][]updateRule),
	}
	// A bound-aware caller hashes in base = n+1 (the plain outcome alphabet
	// plus UNKNOWN), but m.reduced's permutations act only on the plain
	// alphabet. Extend each one to additionally fix UNKNOWN to itself so
	// Image can be called with the UNKNOWN sentinel below and in SetOutcome.
	outcomes := make([]*symmetry.OutcomeSym, len(m.reduced))
	for i, perm := range m.reduced {
		o := perm.Outcome
		if base == o.Len()+1 {
			o = o.WithUnknownFixed()
		}
		outcomes[i] = o
	}

	for permIdx, perm := range m.reduced {
		for k, globalParty := range m.Parties {
			position := perm.Party.Image(k)
			weight := int64(1)
			for i := 0; i < position; i++ {
				weight *= int64(base)
			}
			ev.rulesByParty[globalParty] = append(ev.rulesByParty[globalParty], updateRule{
				permIndex: permIdx,
				position:  position,
				weight:    weight,
				outcome:   outcomes[permIdx],
			})
		}
	}
	for permIdx := range m.reduced {
		if len(m.Parties) == 0 {
			continue
		}
		init := int64(outcomes[permIdx].Image(int(initial)))
		total := int64(0)
		w := int64(1)
		for i := 0; i < len(m.Parties); i++ {
			total += init * w
			w *= int64(base)
		}
		ev.hashes[permIdx] = total
	}
	return ev
}

// Clone returns an independent copy of ev, sharing the immutable Marginal
// and rule table but with its own mutable hash/current state (spec.md
// §4.11's parallel oracle requires evaluators to be cloneable).
func (ev *Evaluator) Clone() *Evaluator {
	cp := &Evaluator{
		marginal:     ev.marginal,
		base:         ev.base,
		hashes:       append([]int64(nil), ev.hashes...),
		current:      append([]event.Outcome(nil), ev.current...),
		rulesByParty: ev.rulesByParty,
	}
	return cp
}

// SetOutcome records that global inflation party p now has the given
// outcome, incrementally updating every reduced permutation's marginal hash
// it affects.
func (ev *Evaluator) SetOutcome(p int, value event.Outcome) {
	old := ev.current[p]
	if old == value {
		return
	}
	for _, rule := range ev.rulesByParty[p] {
		oldT := int64(rule.outcome.Image(int(old)))
		newT := int64(rule.outcome.Image(int(value)))
		ev.hashes[rule.permIndex] += (newT - oldT) * rule.weight
	}
	ev.current[p] = value
}

// EvaluateDualVector returns scale * the inner product of this evaluator's
// current marginal hashes against dv: dv[hash] summed over every reduced
// permutation for a vector marginal, or scale*dv[0] for the scalar (empty
// M) case (spec.md §4.7).
func (ev *Evaluator) EvaluateDualVector(dv DualVectorView, scale int64) int64 {
	if len(ev.marginal.Parties) == 0 {
		return scale * dv.At(0)
	}
	var sum int64
	for _, h := range ev.hashes {
		sum += dv.At(uint64(h))
	}
	return scale * sum
}

// EvaluatorSet bundles several Evaluators, propagating set_outcome to all
// and summing their dual-vector evaluations (spec.md §4.7).
type EvaluatorSet struct {
	Evaluators []*Evaluator
	Scales     []int64
	Vectors    []DualVectorView
}

// SetOutcome propagates p's new outcome to every evaluator in the set.
func (s *EvaluatorSet) SetOutcome(p int, value event.Outcome) {
	for _, ev := range s.Evaluators {
		ev.SetOutcome(p, value)
	}
}

// Evaluate sums every evaluator's scaled dual-vector contribution.
func (s *EvaluatorSet) Evaluate() int64 {
	var total int64
	for i, ev := range s.Evaluators {
		total += ev.EvaluateDualVector(s.Vectors[i], s.Scales[i])
	}
	return total
}

// Clone returns an independent EvaluatorSet with cloned evaluators, sharing
// scales and dual-vector references.
func (s *EvaluatorSet) Clone() *EvaluatorSet {
	clones := make([]*Evaluator, len(s.Evaluators))
	for i, ev := range s.Evaluators {
		clones[i] = ev.Clone()
	}
	return &EvaluatorSet{
		Evaluators: clones,
		Scales:     append([]int64(nil), s.Scales...),
		Vectors:    append([]DualVectorView(nil), s.Vectors...),
	}
}
