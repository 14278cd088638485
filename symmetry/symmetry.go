// SPDX-License-Identifier: MIT

package symmetry

import "github.com/lvlath-research/triangle-inflation/event"

// Symmetry pairs a PartySym and an OutcomeSym to act jointly on events: the
// network and inflation symmetries are both encoded this way (spec.md §3).
type Symmetry struct {
	Party   *PartySym
	Outcome *OutcomeSym
}

// New pairs party and outcome permutations into a Symmetry.
func New(party *PartySym, outcome *OutcomeSym) Symmetry {
	return Symmetry{Party: party, Outcome: outcome}
}

// Identity returns the identity symmetry on k parties and n outcomes.
func Identity(k, n int) Symmetry {
	return Symmetry{Party: IdentityPartySym(k), Outcome: IdentityOutcomeSym(n)}
}

// ActOnEvent computes (sigma_out ∘ e ∘ sigma_party^-1)[i] = sigma_out(e[sigma_party^-1(i)]).
func (s Symmetry) ActOnEvent(e event.Event) event.Event {
	out := make(event.Event, len(e))
	for i := range out {
		out[i] = event.Outcome(s.Outcome.Image(int(e[s.Party.InverseImage(i)])))
	}
	return out
}

// ComposeAfter returns the composition sigma_this ∘ sigma_other, with other
// applied first: party and outcome components compose independently.
func (s Symmetry) ComposeAfter(other Symmetry) (Symmetry, error) {
	party, err := s.Party.ComposeAfter(other.Party)
	if err != nil {
		return Symmetry{}, err
	}
	outcome, err := s.Outcome.ComposeAfter(other.Outcome)
	if err != nil {
		return Symmetry{}, err
	}
	return Symmetry{Party: party, Outcome: outcome}, nil
}

// Equal compares the underlying permutation images of both components.
func (s Symmetry) Equal(other Symmetry) bool {
	return s.Outcome.Equal(other.Outcome) && s.Party.Equal(other.Party)
}

// Less orders symmetries lexicographically on (OutcomeSym, PartySym) images,
// matching the order used to place symmetries into a Group set.
func (s Symmetry) Less(other Symmetry) bool {
	if !s.Outcome.Equal(other.Outcome) {
		return s.Outcome.Less(other.Outcome)
	}
	return s.Party.Less(other.Party)
}
