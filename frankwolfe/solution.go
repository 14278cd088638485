// SPDX-License-Identifier: MIT

package frankwolfe

// Solution is the outcome of one Solve call: a candidate certificate
// direction Vec (unit-norm from FullyCorrective; from Pairwise it is the
// convex-combination point x itself, with ‖Vec‖ = S), the dual objective
// value S ≥ 0, and Valid
// reporting whether S > 0 and ⟨Vec, v⟩ > 0 for every stored vertex v
// (spec.md §4.12).
type Solution struct {
	S     float64
	Vec   []float64
	Valid bool
}
