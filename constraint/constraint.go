// SPDX-License-Identifier: MIT

package constraint

import (
	"strings"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/lvlath-research/triangle-inflation/network"
	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// Constraint assembles one parsed description's marginals, target tensor,
// and dual vectors. The LHS dual vector holds the free coefficients; the
// RHS reduced dual vector is a derived, read-only contraction of the target
// tensor against it (spec.md §4.9).
type Constraint struct {
	Description []string
	Parsed      *ParsedDescription

	LHS *Marginal
	RHS *Marginal

	nOutcomes  int
	boundAware bool

	targetTensor *event.Tensor // tensor product of the F_i marginals, arity = len(LHS.Parties) - len(RHS.Parties)

	LHSVec *DualVector
	RHSVec *DualVector // reduced: arity = len(RHS.Parties), derived from LHSVec + targetTensor

	distrSymsPolicy bool            // inf.UseDistrSyms: whether the inflation group itself depends on the target distribution
	builtAgainst    *symmetry.Group // the distribution symmetry group this constraint was built against (policy=yes only)
}

// New builds the LHS/RHS marginals and dual vectors of an already-parsed
// description against inf, then computes the target tensor and RHS vector
// from distr.
func New(inf *inflation.Inflation, parsed *ParsedDescription, distr *network.TargetDistr, boundAware bool) (*Constraint, error) {
	group := inf.Group()
	c := &Constraint{
		Parsed:          parsed,
		nOutcomes:       distr.Net.NOutcomes,
		boundAware:      boundAware,
		distrSymsPolicy: inf.UseDistrSyms,
	}
	c.LHS = NewMarginal(parsed.LHSParties, group)
	c.RHS = NewMarginal(parsed.RHSParties, group)
	c.LHSVec = NewDualVector(len(parsed.LHSParties), c.nOutcomes, c.LHS.marginalGroup, boundAware, Lower)
	c.RHSVec = NewDualVector(len(parsed.RHSParties), c.nOutcomes, c.RHS.marginalGroup, boundAware, Upper)

	if err := c.SetTargetDistribution(distr); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTargetDistribution recomputes the target tensor (and the derived RHS
// reduced dual vector) from p, after checking p's symmetry group is
// compatible with the one this constraint was built against (spec.md
// §4.9). Under the pure-source policy the inflation group never depends on
// the distribution, so every distribution is accepted.
func (c *Constraint) SetTargetDistribution(p *network.TargetDistr) error {
	if c.distrSymsPolicy && c.builtAgainst != nil {
		cur := p.SymGroup.Elements()
		prev := c.builtAgainst.Elements()
		if len(cur) != len(prev) {
			return ErrSymmetriesChanged
		}
		for i := range cur {
			if !cur[i].Equal(prev[i]) {
				return ErrSymmetriesChanged
			}
		}
	} else {
		c.builtAgainst = p.SymGroup
	}

	tensor, err := c.buildTargetTensor(p)
	if err != nil {
		return err
	}
	c.targetTensor = tensor
	c.refreshRHSVector()
	return nil
}

// buildTargetTensor tensor-products the marginal of p over each F_i's party
// types into the RHS target tensor.
func (c *Constraint) buildTargetTensor(p *network.TargetDistr) (*event.Tensor, error) {
	margs := make([]*event.Tensor, 0, len(c.Parsed.TargetMargins))
	for _, types := range c.Parsed.TargetMargins {
		marg, err := p.Marginal(types)
		if err != nil {
			return nil, err
		}
		margs = append(margs, marg)
	}
	if len(margs) == 0 {
		t, err := event.NewTensor(0, c.nOutcomes)
		if err != nil {
			return nil, err
		}
		t.SetNum(event.Event{}, 1)
		return t, nil
	}
	return event.TensorProduct(c.nOutcomes, margs...)
}

// refreshRHSVector recomputes the RHS reduced dual vector by contracting
// the target tensor with the LHS dual vector restricted to R, amortizing
// the RHS side of every subsequent inner product (spec.md §4.9).
func (c *Constraint) refreshRHSVector() {
	nTarget := c.targetTensor.Arity()
	size := 1
	for i := 0; i < nTarget; i++ {
		size *= c.nOutcomes
	}
	coeffs := make([]int64, c.RHSVec.numNoUnknown)
	for h := 0; h < size; h++ {
		target := event.Unhash(uint64(h), c.nOutcomes, nTarget)
		num := c.targetTensor.Num(target)
		if num == 0 {
			continue
		}
		rSize := pow(c.nOutcomes, len(c.Parsed.RHSParties))
		for rh := 0; rh < rSize; rh++ {
			rPart := event.Unhash(uint64(rh), c.nOutcomes, len(c.Parsed.RHSParties))
			concat := append(append(event.Event{}, target...), rPart...)
			lhsHash := event.Hash(concat, c.LHSVec.base)
			contribution := c.LHSVec.At(lhsHash) * num
			if contribution == 0 {
				continue
			}
			orbit, ok := c.RHSVec.partitionIndex(rPart)
			if !ok {
				continue
			}
			coeffs[orbit] += contribution
		}
	}
	_ = c.RHSVec.SetFromQuovec(coeffs, 0)
}

// PrettyDescription renders the constraint in the certificate shape
// "q(marg_0 , marg_1 , … , R) = p(marg_0) * … * q(R)", omitting the q(R)
// factor when R is empty (spec.md §6).
func (c *Constraint) PrettyDescription() string {
	factors := c.Description[:len(c.Description)-1]
	r := c.Description[len(c.Description)-1]

	args := append([]string{}, factors...)
	if r != "" {
		args = append(args, r)
	}

	terms := make([]string, 0, len(factors)+1)
	for _, f := range factors {
		terms = append(terms, "p("+f+")")
	}
	if r != "" {
		terms = append(terms, "q("+r+")")
	}

	return "q(" + strings.Join(args, " , ") + ") = " + strings.Join(terms, " * ")
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// partitionIndex returns the no-unknown orbit index of a fully-known
// marginal event under this dual vector's own partition (needed internally
// to populate a dual vector without going through SetFromQuovec's usual
// coefficient-vector path).
func (dv *DualVector) partitionIndex(e event.Event) (int, bool) {
	if dv.arity == 0 {
		return 0, true
	}
	h := event.Hash(e, dv.base)
	orig, ok := dv.partition.IndexOf(h)
	if !ok {
		return 0, false
	}
	return dv.remap[orig], true
}
