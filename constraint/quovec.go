// SPDX-License-Identifier: MIT

package constraint

import "github.com/lvlath-research/triangle-inflation/event"

// gather extracts the sub-event at the given global party indices, in
// order.
func gather(e event.Event, parties []int) event.Event {
	out := make(event.Event, len(parties))
	for i, p := range parties {
		out[i] = e[p]
	}
	return out
}

// ComputeInflationEventQuovec computes this constraint's contribution to
// the global quovec: the vector q_c(e) such that
// s_L * sum_{pi_L} LHS(pi_L . e) + s_R * sum_{pi_R,tau} T(tau) * RHS(tau ++ pi_R . e)
// equals sum_i coeffs_i * ret_i, accumulating into ret[offset:] (spec.md
// §4.9).
func (c *Constraint) ComputeInflationEventQuovec(e event.Event, ret []int64, offset int, lhsScale, rhsScale int64) {
	lhsSub := gather(e, c.Parsed.LHSParties)
	for _, pi := range c.LHS.Reduced() {
		transformed := pi.ActOnEvent(lhsSub)
		idx, ok := c.LHSVec.partitionIndex(transformed)
		if !ok {
			continue
		}
		ret[offset+idx] += lhsScale
	}

	nTarget := c.targetTensor.Arity()
	targetSize := 1
	for i := 0; i < nTarget; i++ {
		targetSize *= c.nOutcomes
	}

	if len(c.Parsed.RHSParties) == 0 {
		for h := 0; h < targetSize; h++ {
			tau := event.Unhash(uint64(h), c.nOutcomes, nTarget)
			num := c.targetTensor.Num(tau)
			if num == 0 {
				continue
			}
			idx, ok := c.LHSVec.partitionIndex(tau)
			if !ok {
				continue
			}
			ret[offset+idx] += rhsScale * num
		}
		return
	}

	rSub := gather(e, c.Parsed.RHSParties)
	for h := 0; h < targetSize; h++ {
		tau := event.Unhash(uint64(h), c.nOutcomes, nTarget)
		num := c.targetTensor.Num(tau)
		if num == 0 {
			continue
		}
		for _, piR := range c.RHS.Reduced() {
			transformedR := piR.ActOnEvent(rSub)
			concat := append(append(event.Event{}, tau...), transformedR...)
			idx, ok := c.LHSVec.partitionIndex(concat)
			if !ok {
				continue
			}
			ret[offset+idx] += rhsScale * num
		}
	}
}

// QuovecSize returns the number of free coefficients this constraint
// contributes to the global quovec (its LHS dual vector's no-unknown orbit
// count).
func (c *Constraint) QuovecSize() int { return c.LHSVec.NumNoUnknown() }
