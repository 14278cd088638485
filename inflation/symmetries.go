// SPDX-License-Identifier: MIT

package inflation

import (
	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// sourceInducedPartySyms enumerates every independent relabeling of source
// copies (n_alpha! * n_beta! * n_gamma! of them) as PartySym values acting on
// the enumerated inflation parties: a triple of copy-permutations (one per
// source) maps party (t,j,k) to (t, permLeft(t)[j], permRight(t)[k])
// (spec.md §4.3).
func (inf *Inflation) sourceInducedPartySyms() []*symmetry.PartySym {
	permsPerSource := make([][][]int, 3)
	for s := 0; s < 3; s++ {
		permsPerSource[s] = allIndexPermutations(inf.Size[s])
	}

	var out []*symmetry.PartySym
	var rec func(source int, chosen [3][]int)
	rec = func(source int, chosen [3][]int) {
		if source == 3 {
			out = append(out, inf.buildSourcePermSym(chosen))
			return
		}
		for _, perm := range permsPerSource[source] {
			chosen[source] = perm
			rec(source+1, chosen)
		}
	}
	rec(0, [3][]int{})
	return out
}

// buildSourcePermSym turns a choice of per-source copy permutations into the
// PartySym acting on the full inflation party index space.
func (inf *Inflation) buildSourcePermSym(copyPerm [3][]int) *symmetry.PartySym {
	fwd := make([]int, len(inf.parties))
	for idx, p := range inf.parties {
		lt, rt := leftSourceType(p.Type), rightSourceType(p.Type)
		newJ := copyPerm[lt][p.J]
		newK := copyPerm[rt][p.K]
		newIdx, ok := inf.partyIndex[Party{Type: p.Type, J: newJ, K: newK}]
		if !ok {
			panic("inflation: source-induced permutation left the party set") // unreachable: copyPerm is a bijection per source
		}
		fwd[idx] = newIdx
	}
	sym, err := symmetry.NewPartySym(fwd, true)
	if err != nil {
		panic(err) // unreachable: fwd is a bijection by construction
	}
	return sym
}

// allIndexPermutations returns every permutation of {0,...,n-1} as image
// lists, in lexicographic order.
func allIndexPermutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var rec func(prefix []int, rest []int)
	rec = func(prefix []int, rest []int) {
		if len(rest) == 0 {
			cp := make([]int, len(prefix))
			copy(cp, prefix)
			out = append(out, cp)
			return
		}
		for i, v := range rest {
			next := append(append([]int{}, rest[:i]...), rest[i+1:]...)
			rec(append(prefix, v), next)
		}
	}
	rec(nil, base)
	return out
}

// isApplicable reports whether the network party symmetry's permutation of
// {Alice,Bob,Charlie} fixes the inflation size vector: source index s is
// naturally identified with the party index it does NOT feed (spec.md §3),
// so the same permutation acts on both, and lifting only makes sense when it
// only ever pairs sources of equal size.
func (inf *Inflation) isApplicable(partySym *symmetry.PartySym) bool {
	for s := 0; s < 3; s++ {
		if inf.Size[partySym.Image(s)] != inf.Size[s] {
			return false
		}
	}
	return true
}

// liftNetworkPartySym lifts an applicable network party permutation to a
// PartySym on inflation parties. Even permutations carry (t,j,k) to
// (sigma(t),j,k); odd permutations additionally transpose the left/right
// source of every party, carrying (t,j,k) to (sigma(t),k,j) (verified
// against the triangle's source/party correspondence; see DESIGN.md).
func (inf *Inflation) liftNetworkPartySym(partySym *symmetry.PartySym) (*symmetry.PartySym, error) {
	fwd := make([]int, len(inf.parties))
	for idx, p := range inf.parties {
		newType := partySym.Image(p.Type)
		newJ, newK := p.J, p.K
		if !partySym.IsEven() {
			newJ, newK = p.K, p.J
		}
		newIdx, ok := inf.partyIndex[Party{Type: newType, J: newJ, K: newK}]
		if !ok {
			return nil, ErrUnknownParty // not applicable: caller must filter first
		}
		fwd[idx] = newIdx
	}
	return symmetry.NewPartySym(fwd, partySym.IsEven())
}

// buildSymmetryGroup computes the inflation symmetry group per the
// UseDistrSyms policy (spec.md §4.3):
//   - pure-source: the n_alpha!*n_beta!*n_gamma! source-induced party
//     permutations, each paired with the identity outcome permutation;
//   - distribution-lifted: for every applicable symmetry in the
//     distribution's symmetry group and every source-induced permutation
//     sigma_s, the pair (sigma_s ∘ lift(nu.Party), nu.Outcome).
func (inf *Inflation) buildSymmetryGroup() (*symmetry.Group, error) {
	sourceSyms := inf.sourceInducedPartySyms()
	identityOutcome := symmetry.IdentityOutcomeSym(inf.Distribution.Net.NOutcomes)

	if !inf.UseDistrSyms {
		syms := make([]symmetry.Symmetry, len(sourceSyms))
		for i, s := range sourceSyms {
			syms[i] = symmetry.New(s, identityOutcome)
		}
		return symmetry.NewGroup(syms), nil
	}

	var syms []symmetry.Symmetry
	for _, nu := range inf.Distribution.SymGroup.Elements() {
		if !inf.isApplicable(nu.Party) {
			continue
		}
		lifted, err := inf.liftNetworkPartySym(nu.Party)
		if err != nil {
			return nil, err
		}
		for _, sigmaS := range sourceSyms {
			combined, err := sigmaS.ComposeAfter(lifted)
			if err != nil {
				return nil, err
			}
			syms = append(syms, symmetry.New(combined, nu.Outcome))
		}
	}
	return symmetry.NewGroup(syms), nil
}
