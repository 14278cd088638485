// SPDX-License-Identifier: MIT

package inflation

// sourceCopy identifies one physical source copy: its source type and copy
// index.
type sourceCopy struct {
	sourceType int
	copy       int
}

// parentsOf returns the set of source copies feeding any party in marg.
func (inf *Inflation) parentsOf(marg []int) map[sourceCopy]bool {
	out := make(map[sourceCopy]bool)
	for _, idx := range marg {
		p := inf.parties[idx]
		out[sourceCopy{leftSourceType(p.Type), p.J}] = true
		out[sourceCopy{rightSourceType(p.Type), p.K}] = true
	}
	return out
}

// AreDSeparated reports whether the two marginals (given as party indices)
// share no common source: no inflation event can correlate them through a
// hidden common cause (spec.md §3, §4.6).
func (inf *Inflation) AreDSeparated(marg1, marg2 []int) bool {
	left := inf.parentsOf(marg1)
	for sc := range inf.parentsOf(marg2) {
		if left[sc] {
			return false
		}
	}
	return true
}

// IsInjectableSet reports whether marg is an injectable set: there exists an
// inflation symmetry mapping every source copy feeding marg to copy 0 of its
// source type. This holds iff, for every source type, at most one distinct
// copy index among marg's parents is required (spec.md §4.6): a symmetry
// sending that single copy to 0 (and permuting the rest arbitrarily) always
// exists, since source-induced symmetries realize every permutation of each
// source's copies independently.
func (inf *Inflation) IsInjectableSet(marg []int) bool {
	required := make(map[int]int) // sourceType -> required copy index
	for _, idx := range marg {
		p := inf.parties[idx]
		for _, sc := range [2]sourceCopy{
			{leftSourceType(p.Type), p.J},
			{rightSourceType(p.Type), p.K},
		} {
			if prev, ok := required[sc.sourceType]; ok && prev != sc.copy {
				return false
			}
			required[sc.sourceType] = sc.copy
		}
	}
	return true
}
