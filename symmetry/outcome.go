// SPDX-License-Identifier: MIT

package symmetry

// OutcomeSym is a bijection on {0,...,n-1}, the outcome alphabet. It applies
// simultaneously to every party of an event.
type OutcomeSym struct {
	fwd []int
	inv []int
}

// NewOutcomeSym builds an OutcomeSym from its image list.
func NewOutcomeSym(images []int) (*OutcomeSym, error) {
	inv, err := invertPermutation(images)
	if err != nil {
		return nil, err
	}
	fwd := make([]int, len(images))
	copy(fwd, images)
	return &OutcomeSym{fwd: fwd, inv: inv}, nil
}

// IdentityOutcomeSym returns the identity permutation on {0,...,n-1}.
func IdentityOutcomeSym(n int) *OutcomeSym {
	fwd := make([]int, n)
	for i := range fwd {
		fwd[i] = i
	}
	inv := make([]int, n)
	copy(inv, fwd)
	return &OutcomeSym{fwd: fwd, inv: inv}
}

// Len returns the outcome alphabet size n.
func (o *OutcomeSym) Len() int { return len(o.fwd) }

// Image returns sigma(a).
func (o *OutcomeSym) Image(a int) int { return o.fwd[a] }

// InverseImage returns sigma^{-1}(a).
func (o *OutcomeSym) InverseImage(a int) int { return o.inv[a] }

// Bare returns the raw image slice. Callers must not mutate the result.
func (o *OutcomeSym) Bare() []int { return o.fwd }

// InverseBare returns the raw inverse image slice. Callers must not mutate
// the result.
func (o *OutcomeSym) InverseBare() []int { return o.inv }

// ComposeAfter returns sigma_this ∘ sigma_other (other applied first).
func (o *OutcomeSym) ComposeAfter(other *OutcomeSym) (*OutcomeSym, error) {
	if o.Len() != other.Len() {
		return nil, ErrLengthMismatch
	}
	fwd := make([]int, o.Len())
	for i := range fwd {
		fwd[i] = o.fwd[other.fwd[i]]
	}
	return NewOutcomeSym(fwd)
}

// Inverse returns sigma^{-1}.
func (o *OutcomeSym) Inverse() *OutcomeSym {
	return &OutcomeSym{fwd: append([]int(nil), o.inv...), inv: append([]int(nil), o.fwd...)}
}

// IsTrivial reports whether the permutation is the identity.
func (o *OutcomeSym) IsTrivial() bool {
	for i, v := range o.fwd {
		if i != v {
			return false
		}
	}
	return true
}

// Equal compares the underlying permutation images.
func (o *OutcomeSym) Equal(other *OutcomeSym) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i := range o.fwd {
		if o.fwd[i] != other.fwd[i] {
			return false
		}
	}
	return true
}

// Less gives the lexicographic order on the image list.
func (o *OutcomeSym) Less(other *OutcomeSym) bool {
	n := o.Len()
	if other.Len() < n {
		n = other.Len()
	}
	for i := 0; i < n; i++ {
		if o.fwd[i] != other.fwd[i] {
			return o.fwd[i] < other.fwd[i]
		}
	}
	return o.Len() < other.Len()
}

// WithUnknownFixed extends the permutation to n+1 outcomes, appending the
// identity action on the UNKNOWN = n sentinel. Used when lifting a plain
// orbit-marginal symmetry into a bound-aware one (spec.md §4.8).
func (o *OutcomeSym) WithUnknownFixed() *OutcomeSym {
	n := o.Len()
	fwd := make([]int, n+1)
	copy(fwd, o.fwd)
	fwd[n] = n
	sym, _ := NewOutcomeSym(fwd)
	return sym
}
