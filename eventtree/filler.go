// SPDX-License-Identifier: MIT

package eventtree

import (
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/inflation"
)

// TreeFiller builds the compressed symmetric event tree of canonical
// inflation-event representatives by pruned depth-first search, maintaining
// at each depth a "live" subset of inflation symmetries that have not yet
// demonstrably broken canonicity of the current prefix (spec.md §4.5).
type TreeFiller struct {
	inf *inflation.Inflation

	invPartySyms [][]int // per symmetry index, sigma_party^-1 image array
	outcomeSyms  [][]int // per symmetry index, sigma_out image array

	nParties  int
	nOutcomes int
	unknown   event.Outcome

	working     event.Event
	currentSyms [][]int32 // currentSyms[depth] = live symmetry indices on entry to depth
}

// NewTreeFiller flattens inf's symmetry group into the representation the
// filler walks repeatedly, and seeds the root's live set with every
// symmetry.
func NewTreeFiller(inf *inflation.Inflation) *TreeFiller {
	syms := inf.Group().Elements()
	nParties := inf.NumParties()

	invPartySyms := make([][]int, len(syms))
	outcomeSyms := make([][]int, len(syms))
	for i, s := range syms {
		invPartySyms[i] = append([]int(nil), s.Party.InverseBare()...)
		outcomeSyms[i] = append([]int(nil), s.Outcome.Bare()...)
	}

	f := &TreeFiller{
		inf:          inf,
		invPartySyms: invPartySyms,
		outcomeSyms:  outcomeSyms,
		nParties:     nParties,
		nOutcomes:    inf.Distribution.Net.NOutcomes,
		unknown:      event.Outcome(inf.Distribution.Net.NOutcomes),
		working:      inf.AllUnknownEvent(),
		currentSyms:  make([][]int32, nParties),
	}
	root := make([]int32, len(syms))
	for i := range root {
		root[i] = int32(i)
	}
	f.currentSyms[0] = root
	return f
}

// Fill runs the filler to completion and returns the resulting tree.
func (f *TreeFiller) Fill() *Tree {
	tree := NewTree(f.nParties)
	f.findChildren(tree, 0)
	tree.FinishInitialization()
	return tree
}

// findChildren implements spec.md §4.5's per-depth canonicity scan: for each
// candidate outcome at `depth`, replay every live symmetry against the
// filled prefix to decide whether the prefix is still a canonical
// (lex-smallest-in-orbit) representative, recursing on success.
func (f *TreeFiller) findChildren(tree *Tree, depth int) []int32 {
	var childNodes []int32

	currentSyms := f.currentSyms[depth]
	notAtLastDepth := depth < f.nParties-1

	for outcome := 0; outcome < f.nOutcomes; outcome++ {
		f.working[depth] = event.Outcome(outcome)
		isSymmetrized := true

		var nextSyms []int32
		if notAtLastDepth {
			nextSyms = f.currentSyms[depth+1][:0]
		}

		for _, symIdx := range currentSyms {
			invParty := f.invPartySyms[symIdx]
			outcomeSym := f.outcomeSyms[symIdx]

			for i := 0; i < f.nParties; i++ {
				srcOutcome := f.working[invParty[i]]
				if srcOutcome == f.unknown {
					if notAtLastDepth {
						nextSyms = append(nextSyms, symIdx)
					}
					break
				}
				baseOutcome := f.working[i]
				transformed := event.Outcome(outcomeSym[int(srcOutcome)])
				if transformed < baseOutcome {
					isSymmetrized = false
					break
				}
				if transformed > baseOutcome {
					break
				}
				// equal: continue scanning this symmetry
			}

			if !isSymmetrized {
				break
			}
		}

		if notAtLastDepth {
			f.currentSyms[depth+1] = nextSyms
		}

		if !isSymmetrized {
			continue
		}

		var children []int32
		if notAtLastDepth {
			children = f.findChildren(tree, depth+1)
			if len(children) == 0 {
				continue
			}
		}

		idx, err := tree.InsertNode(depth, byte(outcome), children)
		if err != nil {
			panic(err) // unreachable: outcome count is bounded by 255 per spec.md's Non-goals
		}
		childNodes = append(childNodes, idx)
	}

	f.working[depth] = f.unknown
	return childNodes
}
