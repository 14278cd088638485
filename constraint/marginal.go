// SPDX-License-Identifier: MIT

package constraint

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// Marginal derives, for an ordered party list M within an inflation
// symmetry group, the marginal symmetry group and the deduplicated set of
// lex-smallest reduced permutations used to symmetrize any event extracted
// onto M (spec.md §4.7).
type Marginal struct {
	Parties []int // inflation party indices, in order

	marginalGroup []symmetry.Symmetry // stabilizer of Parties (as a set), compressed to act on |Parties|
	reduced       []symmetry.Symmetry // lex-smallest representatives, one per orbit
}

// NewMarginal builds the Marginal for parties within the given inflation
// symmetry group.
func NewMarginal(parties []int, group *symmetry.Group) *Marginal {
	m := &Marginal{Parties: append([]int(nil), parties...)}
	m.marginalGroup = compressStabilizer(parties, group)
	m.reduced = reduceOrbitRepresentatives(m.marginalGroup)
	return m
}

// Denom is the reduced-permutation count (or 1 for the scalar, empty-M
// case), used as the marginal's normalizing denominator.
func (m *Marginal) Denom() int {
	if len(m.Parties) == 0 {
		return 1
	}
	return len(m.reduced)
}

// Reduced returns the reduced marginal permutations.
func (m *Marginal) Reduced() []symmetry.Symmetry { return m.reduced }

// indexWithin returns the position of global party p within parties, or -1.
func indexWithin(parties []int, p int) int {
	for i, q := range parties {
		if q == p {
			return i
		}
	}
	return -1
}

// compressStabilizer keeps only the symmetries whose party action maps
// parties onto itself (setwise), and compresses each such party permutation
// to act on indices within parties alone.
func compressStabilizer(parties []int, group *symmetry.Group) []symmetry.Symmetry {
	var out []symmetry.Symmetry
	for _, sigma := range group.Elements() {
		fwd := make([]int, len(parties))
		stabilizes := true
		for i, p := range parties {
			img := sigma.Party.Image(p)
			j := indexWithin(parties, img)
			if j < 0 {
				stabilizes = false
				break
			}
			fwd[i] = j
		}
		if !stabilizes {
			continue
		}
		partyM, err := symmetry.NewPartySym(fwd, true)
		if err != nil {
			continue // not a valid permutation on M: skip (shouldn't happen if sigma is a bijection on the set)
		}
		out = append(out, symmetry.New(partyM, sigma.Outcome))
	}
	return out
}

// symKey renders a (PartySym, OutcomeSym) pair to a unique string for set
// membership tests.
func symKey(s symmetry.Symmetry) string {
	var b strings.Builder
	for _, v := range s.Party.Bare() {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, v := range s.Outcome.Bare() {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}

// reduceOrbitRepresentatives computes, for each element of the marginal
// group (viewed as a pair under the twisted action
// (tau_out,tau_party)*(sigma_out,sigma_party) =
// (sigma_out ∘ tau_out^-1, tau_party(sigma_party))), the lex-smallest member
// of its orbit, returning one representative per orbit (spec.md §4.7).
func reduceOrbitRepresentatives(group []symmetry.Symmetry) []symmetry.Symmetry {
	if len(group) == 0 {
		return nil
	}
	visited := make(map[string]bool, len(group))
	var reduced []symmetry.Symmetry

	for _, sigma := range group {
		if visited[symKey(sigma)] {
			continue
		}
		orbit := make([]symmetry.Symmetry, 0, len(group))
		for _, tau := range group {
			outInv := tau.Outcome.Inverse()
			newOut, err := sigma.Outcome.ComposeAfter(outInv)
			if err != nil {
				continue
			}
			newParty, err := tau.Party.ComposeAfter(sigma.Party)
			if err != nil {
				continue
			}
			orbit = append(orbit, symmetry.New(newParty, newOut))
		}
		best := orbit[0]
		for _, o := range orbit[1:] {
			if o.Less(best) {
				best = o
			}
		}
		for _, o := range orbit {
			visited[symKey(o)] = true
		}
		reduced = append(reduced, best)
	}

	sort.Slice(reduced, func(i, j int) bool { return reduced[i].Less(reduced[j]) })
	return reduced
}
