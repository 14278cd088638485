// SPDX-License-Identifier: MIT

package symmetry

import "fmt"

// PartySym is a bijection on {0,...,k-1} together with a parity bit. The
// parity distinguishes even from odd permutations: it is irrelevant to the
// action on events, but it is needed to lift network party symmetries to
// inflation party symmetries, where an odd network permutation transposes
// the left/right source of every inflation party (see
// Inflation.liftNetworkPartySym in package inflation).
type PartySym struct {
	fwd  []int // fwd[i] = sigma(i)
	inv  []int // inv[i] = sigma^{-1}(i)
	even bool
}

// NewPartySym builds a PartySym from the image list (sigma(0), sigma(1), ...).
// It validates that images is a permutation of {0,...,len(images)-1}.
func NewPartySym(images []int, even bool) (*PartySym, error) {
	inv, err := invertPermutation(images)
	if err != nil {
		return nil, err
	}
	fwd := make([]int, len(images))
	copy(fwd, images)
	return &PartySym{fwd: fwd, inv: inv, even: even}, nil
}

// IdentityPartySym returns the identity permutation on {0,...,k-1}.
func IdentityPartySym(k int) *PartySym {
	fwd := make([]int, k)
	for i := range fwd {
		fwd[i] = i
	}
	inv := make([]int, k)
	copy(inv, fwd)
	return &PartySym{fwd: fwd, inv: inv, even: true}
}

func invertPermutation(images []int) ([]int, error) {
	n := len(images)
	inv := make([]int, n)
	seen := make([]bool, n)
	for i, v := range images {
		if v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("index %d -> %d: %w", i, v, ErrNotAPermutation)
		}
		seen[v] = true
		inv[v] = i
	}
	return inv, nil
}

// Len returns the size k of the set {0,...,k-1} the permutation acts on.
func (p *PartySym) Len() int { return len(p.fwd) }

// IsEven reports whether the permutation has even parity.
func (p *PartySym) IsEven() bool { return p.even }

// Image returns sigma(i).
func (p *PartySym) Image(i int) int { return p.fwd[i] }

// InverseImage returns sigma^{-1}(i).
func (p *PartySym) InverseImage(i int) int { return p.inv[i] }

// Bare returns the raw image slice (sigma(0), sigma(1), ...). Callers must
// not mutate the result.
func (p *PartySym) Bare() []int { return p.fwd }

// InverseBare returns the raw inverse image slice. Callers must not mutate
// the result.
func (p *PartySym) InverseBare() []int { return p.inv }

// ActEntrywise applies the permutation entrywise to a list of indices,
// writing output[i] = sigma(input[i]). input and output may alias.
func (p *PartySym) ActEntrywise(input []int, output []int) error {
	if len(input) != len(output) {
		return ErrLengthMismatch
	}
	tmp := make([]int, len(input))
	for i, v := range input {
		tmp[i] = p.fwd[v]
	}
	copy(output, tmp)
	return nil
}

// ComposeAfter returns the composition sigma_this ∘ sigma_other, i.e. other
// is applied first. Parity of a composition is the XOR of the two parities.
func (p *PartySym) ComposeAfter(other *PartySym) (*PartySym, error) {
	if p.Len() != other.Len() {
		return nil, ErrLengthMismatch
	}
	fwd := make([]int, p.Len())
	for i := range fwd {
		fwd[i] = p.fwd[other.fwd[i]]
	}
	return NewPartySym(fwd, p.even == other.even)
}

// Equal compares the underlying permutation images (parity is not part of
// equality: it only matters while constructing inflation symmetries).
func (p *PartySym) Equal(other *PartySym) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i := range p.fwd {
		if p.fwd[i] != other.fwd[i] {
			return false
		}
	}
	return true
}

// Less gives the lexicographic order on the image list, used to place
// PartySym values in a Group set.
func (p *PartySym) Less(other *PartySym) bool {
	n := p.Len()
	if other.Len() < n {
		n = other.Len()
	}
	for i := 0; i < n; i++ {
		if p.fwd[i] != other.fwd[i] {
			return p.fwd[i] < other.fwd[i]
		}
	}
	return p.Len() < other.Len()
}
