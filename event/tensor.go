// SPDX-License-Identifier: MIT

package event

import "math/big"

// Tensor is a dense rational-valued function over Base^K events: integer
// numerators indexed by event hash, plus one shared positive Denom. A
// Tensor is scalar when K == 0 (a single numerator, spec.md §3/§4.1).
type Tensor struct {
	k, base int
	num     []int64
	denom   int64
}

// NewTensor allocates a zero Tensor of arity k over the given outcome base
// (n or n+1 for bound-aware tensors), with denominator 1.
func NewTensor(k, base int) (*Tensor, error) {
	if base <= 0 || base > 256 {
		return nil, ErrBadBase
	}
	if k < 0 {
		return nil, ErrBadLength
	}
	size := 1
	for i := 0; i < k; i++ {
		size *= base
		if size < 0 {
			return nil, ErrBadLength
		}
	}
	return &Tensor{k: k, base: base, num: make([]int64, size), denom: 1}, nil
}

// Arity returns k, the number of parties the tensor is defined over.
func (t *Tensor) Arity() int { return t.k }

// Base returns the outcome alphabet size used for hashing.
func (t *Tensor) Base() int { return t.base }

// Denom returns the shared denominator.
func (t *Tensor) Denom() int64 { return t.denom }

// SetDenom overwrites the shared denominator; it must be strictly positive.
func (t *Tensor) SetDenom(d int64) error {
	if d <= 0 {
		return ErrZeroDenominator
	}
	t.denom = d
	return nil
}

// Size returns base^k, the number of distinct event hashes.
func (t *Tensor) Size() int { return len(t.num) }

// NumByHash returns the numerator stored at the given event hash.
func (t *Tensor) NumByHash(h uint64) int64 { return t.num[h] }

// SetNumByHash overwrites the numerator at the given event hash.
func (t *Tensor) SetNumByHash(h uint64, v int64) { t.num[h] = v }

// Num returns the numerator for the given event (hashed with the tensor's
// own base).
func (t *Tensor) Num(e Event) int64 { return t.num[Hash(e, t.base)] }

// SetNum overwrites the numerator for the given event.
func (t *Tensor) SetNum(e Event, v int64) { t.num[Hash(e, t.base)] = v }

// IsScalar reports whether the tensor has arity 0 (a single numerator).
func (t *Tensor) IsScalar() bool { return t.k == 0 }

// Simplify divides every numerator and the denominator by their GCD,
// reducing the represented rationals to lowest terms. A tensor that is
// identically zero is left with denominator 1.
func (t *Tensor) Simplify() {
	g := t.denom
	for _, v := range t.num {
		g = gcdInt64(g, v)
		if g == 1 {
			break
		}
	}
	if g <= 1 {
		return
	}
	for i := range t.num {
		t.num[i] /= g
	}
	t.denom /= g
}

// IsProbabilityDistribution reports whether every numerator is non-negative
// and the numerators sum to the denominator.
func (t *Tensor) IsProbabilityDistribution() bool {
	var sum int64
	for _, v := range t.num {
		if v < 0 {
			return false
		}
		sum += v
	}
	return sum == t.denom
}

// TensorProduct builds the tensor product of the given tensors, in order:
// party axes are concatenated, numerators multiplied, denominators
// multiplied. All inputs must share the same base.
func TensorProduct(base int, tensors ...*Tensor) (*Tensor, error) {
	totalK := 0
	for _, t := range tensors {
		if t.base != base {
			return nil, ErrDimensionMismatch
		}
		totalK += t.k
	}
	out, err := NewTensor(totalK, base)
	if err != nil {
		return nil, err
	}
	var denom int64 = 1
	for _, t := range tensors {
		denom *= t.denom
	}
	if err := out.SetDenom(denom); err != nil {
		return nil, err
	}

	// Fill by recursive cartesian enumeration over each factor's own hash
	// space, accumulating the combined hash with increasing base powers.
	weight := uint64(1)
	type axis struct {
		t *Tensor
		w uint64
	}
	axes := make([]axis, len(tensors))
	for i, t := range tensors {
		axes[i] = axis{t: t, w: weight}
		for j := 0; j < t.k; j++ {
			weight *= uint64(base)
		}
	}

	var rec func(idx int, hash uint64, prod int64)
	rec = func(idx int, hash uint64, prod int64) {
		if idx == len(axes) {
			out.num[hash] = prod
			return
		}
		t := axes[idx].t
		for h := 0; h < t.Size(); h++ {
			rec(idx+1, hash+uint64(h)*axes[idx].w, prod*t.num[h])
		}
	}
	rec(0, 0, 1)
	return out, nil
}

func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// GCDMany is a convenience wrapper around math/big used by the constraint
// set's scale-balancing computation (spec.md §4.10), which requires
// arbitrary-precision GCDs over products of denominators.
func GCDMany(values ...*big.Int) *big.Int {
	g := big.NewInt(0)
	for _, v := range values {
		g.GCD(nil, nil, g, new(big.Int).Abs(v))
	}
	if g.Sign() == 0 {
		g.SetInt64(1)
	}
	return g
}
