// SPDX-License-Identifier: MIT

package constraint

import (
	"encoding/binary"
	"io"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/orbit"
	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// BoundKind selects how a with-unknown orbit's coefficient is derived from
// its no-unknown descendants: Lower picks the minimum (sound for
// lower-bound dual vectors, e.g. the LHS), Upper picks the maximum (sound
// for upper-bound dual vectors, e.g. the reduced RHS) (spec.md §4.8).
type BoundKind int

const (
	Lower BoundKind = iota
	Upper
)

// boundRule derives a with-unknown orbit's coefficient from the min/max of
// the no-unknown orbits reachable by resolving its UNKNOWN positions.
type boundRule struct {
	target  int
	sources []int
}

// DualVector holds one exact-integer coefficient per orbit of the extracted
// marginal event space under the marginal symmetry group, optionally
// extended to bound-aware (UNKNOWN-inclusive) orbits (spec.md §4.8).
type DualVector struct {
	arity      int
	base       int // n (plain) or n+1 (bound-aware)
	boundAware bool
	kind       BoundKind

	partition    *orbit.Partition
	remap        []int // original orbit index -> renumbered index (no-unknown first)
	numNoUnknown int
	total        int

	coeffs []int64
	rules  []boundRule
}

// NewDualVector builds the orbit structure for a marginal of the given
// arity under marginalGroup. When boundAware, the outcome component of
// every group element is extended with the UNKNOWN-fixed identity action
// and the alphabet grows to n+1.
func NewDualVector(arity, n int, marginalGroup []symmetry.Symmetry, boundAware bool, kind BoundKind) *DualVector {
	base := n
	group := marginalGroup
	if boundAware {
		base = n + 1
		group = make([]symmetry.Symmetry, len(marginalGroup))
		for i, s := range marginalGroup {
			group[i] = symmetry.New(s.Party, s.Outcome.WithUnknownFixed())
		}
	}

	dv := &DualVector{arity: arity, base: base, boundAware: boundAware, kind: kind}
	if arity == 0 {
		dv.coeffs = make([]int64, 1)
		dv.total = 1
		dv.numNoUnknown = 1
		return dv
	}

	part := orbit.Compute(group, arity, base)
	dv.partition = part

	unknown := event.Outcome(n)
	var noUnknown, withUnknown []int
	for i := 0; i < part.NumOrbits(); i++ {
		rep := part.Representative(i)
		hasUnknown := false
		for _, o := range rep {
			if o == unknown {
				hasUnknown = true
				break
			}
		}
		if hasUnknown {
			withUnknown = append(withUnknown, i)
		} else {
			noUnknown = append(noUnknown, i)
		}
	}

	dv.remap = make([]int, part.NumOrbits())
	next := 0
	for _, orig := range noUnknown {
		dv.remap[orig] = next
		next++
	}
	dv.numNoUnknown = next
	for _, orig := range withUnknown {
		dv.remap[orig] = next
		next++
	}
	dv.total = next
	dv.coeffs = make([]int64, dv.total)

	if boundAware {
		dv.rules = buildBoundRules(part, dv.remap, withUnknown, n, unknown)
	}
	return dv
}

// buildBoundRules derives, for each with-unknown orbit, the set of
// no-unknown orbits reachable by resolving its representative's UNKNOWN
// positions to every possible real outcome.
func buildBoundRules(part *orbit.Partition, remap []int, withUnknown []int, n int, unknown event.Outcome) []boundRule {
	base := n + 1
	var rules []boundRule
	for _, orig := range withUnknown {
		rep := part.Representative(orig)
		var unknownPos []int
		for i, o := range rep {
			if o == unknown {
				unknownPos = append(unknownPos, i)
			}
		}
		sourceSet := make(map[int]bool)
		realization := rep.Clone()
		var rec func(k int)
		rec = func(k int) {
			if k == len(unknownPos) {
				h := event.Hash(realization, base)
				if origOrbit, ok := part.IndexOf(h); ok {
					sourceSet[remap[origOrbit]] = true
				}
				return
			}
			for v := 0; v < n; v++ {
				realization[unknownPos[k]] = event.Outcome(v)
				rec(k + 1)
			}
		}
		rec(0)
		sources := make([]int, 0, len(sourceSet))
		for s := range sourceSet {
			sources = append(sources, s)
		}
		rules = append(rules, boundRule{target: remap[orig], sources: sources})
	}
	return rules
}

// SetFromQuovec assigns the M no-unknown orbit coefficients from
// coeffs[offset:offset+M], then (if bound-aware) propagates bound rules to
// derive every with-unknown orbit's coefficient (spec.md §4.8).
func (dv *DualVector) SetFromQuovec(coeffs []int64, offset int) error {
	if offset < 0 || offset+dv.numNoUnknown > len(coeffs) {
		return ErrBadQuovecOffset
	}
	if dv.arity == 0 {
		dv.coeffs[0] = coeffs[offset]
		return nil
	}
	for j := 0; j < dv.numNoUnknown; j++ {
		dv.coeffs[j] = coeffs[offset+j]
	}
	for _, r := range dv.rules {
		if len(r.sources) == 0 {
			dv.coeffs[r.target] = 0
			continue
		}
		best := dv.coeffs[r.sources[0]]
		for _, s := range r.sources[1:] {
			v := dv.coeffs[s]
			if (dv.kind == Lower && v < best) || (dv.kind == Upper && v > best) {
				best = v
			}
		}
		dv.coeffs[r.target] = best
	}
	return nil
}

// NumNoUnknown returns the number of no-unknown orbits (the serialized
// coefficient count).
func (dv *DualVector) NumNoUnknown() int { return dv.numNoUnknown }

// Coefficients returns a copy of the no-unknown orbit coefficients, in the
// same order SetFromQuovec/Encode use (spec.md §6's certificate IO).
func (dv *DualVector) Coefficients() []int64 {
	out := make([]int64, dv.numNoUnknown)
	copy(out, dv.coeffs[:dv.numNoUnknown])
	return out
}

// Reset zeroes every orbit coefficient (spec.md §4.10: rescaling the
// constraint set invalidates previously-stored dual vectors).
func (dv *DualVector) Reset() {
	for i := range dv.coeffs {
		dv.coeffs[i] = 0
	}
}

// At returns the coefficient for the orbit containing the given raw event
// hash (hashed in this DualVector's base).
func (dv *DualVector) At(hash uint64) int64 {
	if dv.arity == 0 {
		return dv.coeffs[0]
	}
	orig, ok := dv.partition.IndexOf(hash)
	if !ok {
		return 0
	}
	return dv.coeffs[dv.remap[orig]]
}

// HardAssertWithinBound reports ErrOverflowRisk if any no-unknown orbit's
// coefficient has absolute value >= B (spec.md §4.8).
func (dv *DualVector) HardAssertWithinBound(b int64) error {
	for j := 0; j < dv.numNoUnknown; j++ {
		v := dv.coeffs[j]
		if v < 0 {
			v = -v
		}
		if v >= b {
			return ErrOverflowRisk
		}
	}
	return nil
}

// Encode writes the no-unknown orbit coefficients in order.
func (dv *DualVector) Encode(w io.Writer) error {
	for j := 0; j < dv.numNoUnknown; j++ {
		if err := binary.Write(w, binary.LittleEndian, dv.coeffs[j]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads numNoUnknown coefficients written by Encode and reconstructs
// every orbit coefficient via SetFromQuovec.
func (dv *DualVector) Decode(r io.Reader) error {
	coeffs := make([]int64, dv.numNoUnknown)
	for j := range coeffs {
		if err := binary.Read(r, binary.LittleEndian, &coeffs[j]); err != nil {
			return err
		}
	}
	return dv.SetFromQuovec(coeffs, 0)
}
