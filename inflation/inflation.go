// SPDX-License-Identifier: MIT

package inflation

import (
	"fmt"

	"github.com/lvlath-research/triangle-inflation/network"
	"github.com/lvlath-research/triangle-inflation/symmetry"
)

// Inflation is a triangle inflation of a given size over a target
// distribution: the enumerated inflation parties plus the symmetry group
// that acts on inflation events (spec.md §3, §4.3).
type Inflation struct {
	Distribution *network.TargetDistr
	Size         Size
	UseDistrSyms bool

	parties    []Party
	partyIndex map[Party]int
	nameIndex  map[string]int

	group *symmetry.Group
}

// New builds the inflation of the given size over distr, with its full
// symmetry group computed once up front (pure-source if useDistrSyms is
// false, else lifted network symmetries composed with source symmetries).
func New(distr *network.TargetDistr, size Size, useDistrSyms bool) (*Inflation, error) {
	if !size.Valid() {
		return nil, ErrBadSize
	}
	if distr.Net.NOutcomes <= 0 {
		return nil, ErrIncompatibleDistribution
	}

	inf := &Inflation{
		Distribution: distr,
		Size:         size,
		UseDistrSyms: useDistrSyms,
	}
	inf.enumerateParties()
	group, err := inf.buildSymmetryGroup()
	if err != nil {
		return nil, err
	}
	inf.group = group
	return inf, nil
}

// countOfType returns the number of inflation parties of the given type for
// size s: the product of the sizes of its two feeding sources.
func countOfType(partyType int, s Size) int {
	return s[leftSourceType(partyType)] * s[rightSourceType(partyType)]
}

// enumerateParties builds the party list incrementally across inflation-size
// steps (1,1,1) up to Size, so that earlier steps' parties keep a stable
// prefix of indices: the order has no bearing on correctness, only on which
// parties appear "first" in diagnostics (spec.md §3).
func (inf *Inflation) enumerateParties() {
	inf.partyIndex = make(map[Party]int)
	inf.nameIndex = make(map[string]int)

	maxStep := inf.Size[0]
	if inf.Size[1] > maxStep {
		maxStep = inf.Size[1]
	}
	if inf.Size[2] > maxStep {
		maxStep = inf.Size[2]
	}

	addIfNew := func(p Party) {
		if _, ok := inf.partyIndex[p]; ok {
			return
		}
		idx := len(inf.parties)
		inf.parties = append(inf.parties, p)
		inf.partyIndex[p] = idx
		inf.nameIndex[p.Name()] = idx
	}

	clampMin := func(a, b int) int {
		if a < b {
			return a
		}
		return b
	}

	for step := 1; step <= maxStep; step++ {
		for typ := 0; typ < 3; typ++ {
			lSize := clampMin(step, inf.Size[leftSourceType(typ)])
			rSize := clampMin(step, inf.Size[rightSourceType(typ)])
			for j := 0; j < lSize; j++ {
				for k := 0; k < rSize; k++ {
					addIfNew(Party{Type: typ, J: j, K: k})
				}
			}
		}
	}
}

// NumParties returns the number of enumerated inflation parties.
func (inf *Inflation) NumParties() int { return len(inf.parties) }

// PartyAt returns the party at the given enumeration index.
func (inf *Inflation) PartyAt(i int) Party { return inf.parties[i] }

// IndexOf returns the enumeration index of p, or an error if p is not part
// of this inflation.
func (inf *Inflation) IndexOf(p Party) (int, error) {
	idx, ok := inf.partyIndex[p]
	if !ok {
		return 0, ErrUnknownParty
	}
	return idx, nil
}

// IndexOfName resolves a party name (e.g. "A01") to its enumeration index.
func (inf *Inflation) IndexOfName(name string) (int, error) {
	idx, ok := inf.nameIndex[name]
	if !ok {
		return 0, ErrUnknownParty
	}
	return idx, nil
}

// Group returns the inflation symmetry group (spec.md §4.3).
func (inf *Inflation) Group() *symmetry.Group { return inf.group }

// Metadata renders a short human-readable summary of the inflation, used in
// certificate headers (spec.md §6).
func (inf *Inflation) Metadata() string {
	policy := "pure-source"
	if inf.UseDistrSyms {
		policy = "distribution-lifted"
	}
	return fmt.Sprintf("triangle inflation size=(%d,%d,%d) outcomes=%d parties=%d policy=%s |group|=%d",
		inf.Size[0], inf.Size[1], inf.Size[2], inf.Distribution.Net.NOutcomes,
		len(inf.parties), policy, inf.group.Len())
}
