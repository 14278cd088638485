// SPDX-License-Identifier: MIT

package network

import "github.com/lvlath-research/triangle-inflation/symmetry"

// Party indices for the triangle network: Alice=0, Bob=1, Charlie=2.
const (
	Alice = 0
	Bob   = 1
	Charlie = 2
)

// Network is the fixed triangle causal network: three parties, each
// observing one of NOutcomes outcomes. All 6 party permutations (S3) are
// network automorphisms, and all NOutcomes! outcome permutations apply, for
// a full symmetry group of size 6*n! (spec.md §3).
type Network struct {
	NOutcomes int
}

// New validates n and returns the triangle network over n outcomes.
func New(n int) (*Network, error) {
	if n <= 0 || n > 255 {
		return nil, ErrBadOutcomeCount
	}
	return &Network{NOutcomes: n}, nil
}

// partyPermS3 lists the image lists of the 6 permutations of {A,B,C};
// permutationParity computes each one's parity.
func partyPermS3() [][3]int {
	return [][3]int{
		{0, 1, 2}, {1, 0, 2}, {0, 2, 1},
		{2, 1, 0}, {1, 2, 0}, {2, 0, 1},
	}
}

func permutationParity(images []int) bool {
	n := len(images)
	visited := make([]bool, n)
	cycles := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = images[j] {
			visited[j] = true
		}
	}
	// A permutation decomposes into `cycles` cycles; its parity is even iff
	// n - cycles is even.
	return (n-cycles)%2 == 0
}

// allPermutations returns every permutation of {0,...,n-1}, in lexicographic
// order, as their image lists.
func allPermutations(n int) [][]int {
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

// PartyAutomorphisms returns the 6 party permutations of the triangle
// network, each tagged with its parity.
func (net *Network) PartyAutomorphisms() []*symmetry.PartySym {
	perms := partyPermS3()
	out := make([]*symmetry.PartySym, len(perms))
	for i, images := range perms {
		p, err := symmetry.NewPartySym(images[:], permutationParity(images[:]))
		if err != nil {
			panic(err) // unreachable: partyPermS3 only lists valid permutations
		}
		out[i] = p
	}
	return out
}

// OutcomeAutomorphisms returns all NOutcomes! outcome permutations.
func (net *Network) OutcomeAutomorphisms() []*symmetry.OutcomeSym {
	perms := allPermutations(net.NOutcomes)
	out := make([]*symmetry.OutcomeSym, len(perms))
	for i, images := range perms {
		o, err := symmetry.NewOutcomeSym(images)
		if err != nil {
			panic(err)
		}
		out[i] = o
	}
	return out
}

// FullGroup returns the full network symmetry group of size 6*n!.
func (net *Network) FullGroup() *symmetry.Group {
	parties := net.PartyAutomorphisms()
	outcomes := net.OutcomeAutomorphisms()
	syms := make([]symmetry.Symmetry, 0, len(parties)*len(outcomes))
	for _, p := range parties {
		for _, o := range outcomes {
			syms = append(syms, symmetry.New(p, o))
		}
	}
	return symmetry.NewGroup(syms)
}

// TrivialGroup returns the one-element group containing only the identity.
func (net *Network) TrivialGroup() *symmetry.Group {
	return symmetry.NewGroup([]symmetry.Symmetry{symmetry.Identity(3, net.NOutcomes)})
}
