// SPDX-License-Identifier: MIT

package constraint

import (
	"math/big"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/lvlath-research/triangle-inflation/network"
)

// maxScaledCoefficient is the conservative overflow bound's numerator,
// matching the "INT_MAX" of the original 32-bit-int implementation (spec.md
// §4.10): B_max = maxScaledCoefficient / (10 * s_L[0] * L[0] * 2 * n).
const maxScaledCoefficient int64 = 1<<31 - 1

// ConstraintSet holds one Constraint per parsed description, plus the
// balanced integer scales that let every constraint's inner product be
// summed in one shared integer domain (spec.md §4.10).
type ConstraintSet struct {
	Inflation *inflation.Inflation

	Constraints []*Constraint
	LHSScale    []int64
	RHSScale    []int64
	offsets     []int
	totalLen    int

	QuovecDenom float64
	BMax        int64
}

// NewConstraintSet parses each description against inf, builds one
// Constraint per description, and computes balanced scales.
func NewConstraintSet(inf *inflation.Inflation, descriptions [][]string, distr *network.TargetDistr, boundAware bool) (*ConstraintSet, error) {
	cs := &ConstraintSet{Inflation: inf}
	for _, fields := range descriptions {
		parsed, err := Parse(inf, fields)
		if err != nil {
			return nil, err
		}
		c, err := New(inf, parsed, distr, boundAware)
		if err != nil {
			return nil, err
		}
		c.Description = fields
		cs.Constraints = append(cs.Constraints, c)
	}
	cs.recomputeScales()
	return cs, nil
}

// SetTargetDistribution updates every constraint's target tensor and RHS
// vector, then recomputes scales (spec.md §4.10).
func (cs *ConstraintSet) SetTargetDistribution(p *network.TargetDistr) error {
	for _, c := range cs.Constraints {
		if err := c.SetTargetDistribution(p); err != nil {
			return err
		}
	}
	cs.recomputeScales()
	return nil
}

// recomputeScales balances LHS/RHS denominators across every constraint in
// arbitrary-precision integers, then resets every dual vector to zero
// (spec.md §4.10: rescaling invalidates previously-stored coefficients).
func (cs *ConstraintSet) recomputeScales() {
	n := len(cs.Constraints)
	if n == 0 {
		cs.LHSScale, cs.RHSScale = nil, nil
		cs.offsets, cs.totalLen = nil, 0
		return
	}

	l := make([]*big.Int, n)
	r := make([]*big.Int, n)
	prodLR := big.NewInt(1)
	for i, c := range cs.Constraints {
		l[i] = big.NewInt(int64(c.LHS.Denom()))
		r[i] = big.NewInt(int64(c.RHS.Denom()))
		prodLR.Mul(prodLR, l[i])
		prodLR.Mul(prodLR, r[i])
	}

	sL := make([]*big.Int, n)
	sR := make([]*big.Int, n)
	for i := range cs.Constraints {
		sL[i] = new(big.Int).Div(prodLR, l[i])
		sR[i] = new(big.Int).Div(prodLR, r[i])
	}

	gcd := event.GCDMany(append(append([]*big.Int{}, sL...), sR...)...)

	lhsScale := make([]int64, n)
	rhsScale := make([]int64, n)
	for i := range cs.Constraints {
		lhsScale[i] = new(big.Int).Div(sL[i], gcd).Int64()
		rhsScale[i] = -new(big.Int).Div(sR[i], gcd).Int64()
	}
	cs.LHSScale = lhsScale
	cs.RHSScale = rhsScale

	quovecDenom := new(big.Int).Div(prodLR, gcd)
	qf := new(big.Float).SetInt(quovecDenom)
	cs.QuovecDenom, _ = qf.Float64()

	cs.offsets = make([]int, n)
	off := 0
	for i, c := range cs.Constraints {
		cs.offsets[i] = off
		off += c.QuovecSize()
	}
	cs.totalLen = off

	denom := int64(10) * lhsScale[0] * int64(cs.Constraints[0].LHS.Denom()) * 2 * int64(n)
	if denom <= 0 {
		denom = 1
	}
	cs.BMax = maxScaledCoefficient / denom

	for _, c := range cs.Constraints {
		c.LHSVec.Reset()
		c.RHSVec.Reset()
	}
}

// TotalQuovecLen returns the combined free-coefficient count across every
// constraint.
func (cs *ConstraintSet) TotalQuovecLen() int { return cs.totalLen }

// MarginalEvaluators builds one LHS and one RHS Evaluator per constraint,
// scaled and paired with their dual vectors, ready for a linear-minimization
// oracle to drive via SetOutcome/Evaluate (spec.md §4.11). Every evaluator
// starts with every global party at the UNKNOWN outcome so a tree-search
// oracle can read meaningful bounds before every position is filled; a
// brute-force oracle that assigns every position before evaluating is
// unaffected by the starting value.
func (cs *ConstraintSet) MarginalEvaluators() *EvaluatorSet {
	n := cs.Inflation.NumParties()
	set := &EvaluatorSet{}
	for i, c := range cs.Constraints {
		lhsUnknown := event.Outcome(c.LHSVec.base - 1)
		rhsUnknown := event.Outcome(c.RHSVec.base - 1)
		set.Evaluators = append(set.Evaluators,
			NewEvaluator(c.LHS, n, c.LHSVec.base, lhsUnknown),
			NewEvaluator(c.RHS, n, c.RHSVec.base, rhsUnknown))
		set.Scales = append(set.Scales, cs.LHSScale[i], cs.RHSScale[i])
		set.Vectors = append(set.Vectors, DualVectorView(c.LHSVec), DualVectorView(c.RHSVec))
	}
	return set
}

// SetDualVectorFromQuovec forwards coeffs[offset_i:...] to constraint i's
// LHS dual vector and refreshes its derived RHS vector.
func (cs *ConstraintSet) SetDualVectorFromQuovec(coeffs []int64) error {
	for i, c := range cs.Constraints {
		if err := c.LHSVec.SetFromQuovec(coeffs, cs.offsets[i]); err != nil {
			return err
		}
		c.refreshRHSVector()
		if err := c.LHSVec.HardAssertWithinBound(cs.BMax); err != nil {
			return err
		}
	}
	return nil
}

// DualVectorCoefficients returns the current LHS dual-vector coefficients
// of every constraint, concatenated in the same offset order
// SetDualVectorFromQuovec expects (spec.md §6's certificate IO).
func (cs *ConstraintSet) DualVectorCoefficients() []int64 {
	out := make([]int64, 0, cs.totalLen)
	for _, c := range cs.Constraints {
		out = append(out, c.LHSVec.Coefficients()...)
	}
	return out
}

// GetInflationEventQuovec computes the full quovec for e across every
// constraint in the set.
func (cs *ConstraintSet) GetInflationEventQuovec(e event.Event) []int64 {
	ret := make([]int64, cs.totalLen)
	for i, c := range cs.Constraints {
		c.ComputeInflationEventQuovec(e, ret, cs.offsets[i], cs.LHSScale[i], cs.RHSScale[i])
	}
	return ret
}
