// SPDX-License-Identifier: MIT

package feas

import "math"

// roundAndRescale scales vec by 0.95*bMax/max(|component|), truncates to
// integers, and divides by their GCD — preserving sign structure while
// guaranteeing every component's magnitude stays within bMax (spec.md
// §4.13).
func roundAndRescale(vec []float64, bMax int64) []int64 {
	maxAbs := 0.0
	for _, v := range vec {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	ints := make([]int64, len(vec))
	if maxAbs == 0 {
		return ints
	}

	scale := 0.95 * float64(bMax) / maxAbs
	for i, v := range vec {
		ints[i] = int64(v * scale)
	}

	if g := gcdAll(ints); g > 1 {
		for i := range ints {
			ints[i] /= g
		}
	}
	return ints
}

// gcdAll runs a plain running Euclidean GCD over vals, with no early
// zero-to-1 folding: a leading zero must not lock the running GCD to 1
// before later nonzero components are accumulated.
func gcdAll(vals []int64) int64 {
	var g int64
	for _, v := range vals {
		g = gcd64(g, v)
	}
	if g == 0 {
		return 1
	}
	return g
}

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
