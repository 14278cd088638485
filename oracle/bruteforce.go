// SPDX-License-Identifier: MIT

package oracle

import (
	"context"

	"github.com/lvlath-research/triangle-inflation/constraint"
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/inflation"
)

// BruteForce optimizes by looping over every inflation event directly.
// Mostly useful to cross-check TreeSearch on small instances (spec.md
// §4.11, grounded on original_source's bf_opt.cpp).
type BruteForce struct {
	Inflation   *inflation.Inflation
	Constraints *constraint.ConstraintSet
}

// NewBruteForce builds a BruteForce oracle over cs's inflation.
func NewBruteForce(cs *constraint.ConstraintSet) *BruteForce {
	return &BruteForce{Inflation: cs.Inflation, Constraints: cs}
}

// Optimize enumerates every inflation event in lexicographic order,
// tracking the best (minimal) score, and returns it. In Sat mode it stops
// as soon as a non-positive score is found.
func (b *BruteForce) Optimize(ctx context.Context, stopMode StopMode) (Solution, error) {
	n := b.Inflation.NumParties()
	if n == 0 {
		return Solution{}, ErrNoParties
	}
	base := b.Inflation.Distribution.Net.NOutcomes

	evaluators := b.Constraints.MarginalEvaluators()

	size := 1
	for i := 0; i < n; i++ {
		size *= base
	}

	var best Solution
	bestOK := false
	for h := 0; h < size; h++ {
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}
		e := event.Unhash(uint64(h), base, n)
		for i, o := range e {
			evaluators.SetOutcome(i, o)
		}
		score := evaluators.Evaluate()
		candidate := Solution{Score: score, Event: e.Clone()}
		if better(best, bestOK, candidate) {
			best, bestOK = candidate, true
			if stopMode == Sat && best.Score <= 0 {
				break
			}
		}
	}
	return best, nil
}
