// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// TargetDistr is a probability distribution over the triangle network,
// together with the symmetry subgroup of the full network group that
// leaves its numerators invariant. Marginals over ordered subsets of
// parties are computed lazily and cached (spec.md §3).
type TargetDistr struct {
	Net     *Network
	Tensor  *event.Tensor
	SymGroup *symmetry.Group

	marginals map[string]*event.Tensor
}

// NewTargetDistr builds a TargetDistr from a probability tensor of arity 3
// over net's outcome base, computing its symmetry subgroup once.
func NewTargetDistr(net *Network, tensor *event.Tensor) (*TargetDistr, error) {
	if tensor.Arity() != 3 || tensor.Base() != net.NOutcomes {
		return nil, ErrBadMarginal
	}
	if !tensor.IsProbabilityDistribution() {
		return nil, ErrNotAProbabilityDistribution
	}
	d := &TargetDistr{Net: net, Tensor: tensor, marginals: make(map[string]*event.Tensor)}
	d.SymGroup = d.computeSymGroup()
	return d, nil
}

func (d *TargetDistr) computeSymGroup() *symmetry.Group {
	full := d.Net.FullGroup().Elements()
	base := d.Net.NOutcomes
	size := base * base * base
	kept := make([]symmetry.Symmetry, 0, len(full))
	for _, sigma := range full {
		invariant := true
		for h := 0; h < size && invariant; h++ {
			e := event.Unhash(uint64(h), base, 3)
			img := sigma.ActOnEvent(e)
			if d.Tensor.Num(img) != d.Tensor.Num(e) {
				invariant = false
			}
		}
		if invariant {
			kept = append(kept, sigma)
		}
	}
	return symmetry.NewGroup(kept)
}

// Marginal returns the marginal distribution over the given ordered subset
// of parties (each in {0,1,2}, no duplicates), simplified to lowest terms
// and cached for subsequent calls.
func (d *TargetDistr) Marginal(parties []int) (*event.Tensor, error) {
	if err := validateMarginalParties(parties); err != nil {
		return nil, err
	}
	key := marginalKey(parties)
	if t, ok := d.marginals[key]; ok {
		return t, nil
	}

	base := d.Net.NOutcomes
	out, err := event.NewTensor(len(parties), base)
	if err != nil {
		return nil, err
	}
	if err := out.SetDenom(d.Tensor.Denom()); err != nil {
		return nil, err
	}

	for h := 0; h < d.Tensor.Size(); h++ {
		e := event.Unhash(uint64(h), base, 3)
		marg := make(event.Event, len(parties))
		for i, p := range parties {
			marg[i] = e[p]
		}
		out.SetNum(marg, out.Num(marg)+d.Tensor.Num(e))
	}
	out.Simplify()
	d.marginals[key] = out
	return out, nil
}

func validateMarginalParties(parties []int) error {
	seen := make(map[int]bool, len(parties))
	for _, p := range parties {
		if p < 0 || p > 2 || seen[p] {
			return ErrBadMarginal
		}
		seen[p] = true
	}
	return nil
}

func marginalKey(parties []int) string {
	return fmt.Sprint(parties)
}
