// SPDX-License-Identifier: MIT

package frankwolfe

import (
	"math"

	"github.com/lvlath-research/triangle-inflation/event"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// softMinBeta controls how sharply the smooth surrogate tracks the true
// min_mu ⟨w, d_mu⟩ as β grows; the corpus carries no SOCP solver, so this
// soft-min (log-sum-exp) objective is what FullyCorrective.Solve actually
// maximizes (SPEC_FULL.md §4, recorded in DESIGN.md).
const softMinBeta = 64.0

// FullyCorrective re-solves, on every call, for the direction w on the
// unit ball maximizing s = min_mu ⟨w, d_mu⟩ over every stored vertex d_mu
// (spec.md §4.12's fully-corrective variant). No SOCP package exists in
// the corpus, so the unit-ball constraint is eliminated by optimizing over
// a raw direction p with w = p/‖p‖, and the max-min objective is replaced
// by a smooth soft-min surrogate solved with gonum/optimize's BFGS.
type FullyCorrective struct {
	dim      int
	vertices [][]float64
	events   []event.Event

	lastP []float64 // warm start across calls
}

// NewFullyCorrective builds an empty FullyCorrective engine for vectors of
// the given dimension.
func NewFullyCorrective(dim int) *FullyCorrective {
	return &FullyCorrective{dim: dim}
}

// MemorizeEventAndQuovec stores a new linear lower-bound constraint
// s ≤ ⟨w, d⟩ for the model.
func (fc *FullyCorrective) MemorizeEventAndQuovec(e event.Event, q []int64, denom float64) error {
	if len(q) != fc.dim {
		return ErrDimensionMismatch
	}
	fc.vertices = append(fc.vertices, toFloatVertex(q, denom))
	fc.events = append(fc.events, e.Clone())
	return nil
}

// Solve maximizes min_mu ⟨w, d_mu⟩ over ‖w‖ ≤ 1 via a smooth surrogate,
// kept warm by re-solving from the previous optimum (spec.md §4.12).
func (fc *FullyCorrective) Solve() Solution {
	n := len(fc.vertices)
	if n == 0 {
		return Solution{}
	}

	p0 := fc.lastP
	if p0 == nil || len(p0) != fc.dim {
		p0 = append([]float64(nil), fc.vertices[0]...)
		if dot(p0, p0) == 0 {
			p0[0] = 1
		}
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 { return negSoftMin(p, fc.vertices, softMinBeta) },
		Grad: func(grad, p []float64) { negSoftMinGrad(grad, p, fc.vertices, softMinBeta) },
	}

	result, err := optimize.Minimize(problem, p0, &optimize.Settings{MajorIterations: 200}, &optimize.BFGS{})
	if err != nil && result == nil {
		return Solution{}
	}

	p := result.X
	fc.lastP = append([]float64(nil), p...)

	w := normalized(p)
	s := math.Inf(1)
	for _, d := range fc.vertices {
		if v := dot(w, d); v < s {
			s = v
		}
	}

	// w = 0 is feasible in the unit ball, so the max-min value is never
	// below zero.
	return Solution{S: math.Max(s, 0), Vec: w, Valid: s > 0}
}

// Reset clears all stored vertices but keeps the configured dimension.
func (fc *FullyCorrective) Reset() {
	fc.vertices = nil
	fc.events = nil
	fc.lastP = nil
}

// GetStoredEvents returns the events memorized so far, in storage order.
func (fc *FullyCorrective) GetStoredEvents() []event.Event {
	out := make([]event.Event, len(fc.events))
	copy(out, fc.events)
	return out
}

// normalized returns p/‖p‖ as a gonum-backed vector divided back into a
// plain slice, or a copy of p itself when p is (numerically) zero.
func normalized(p []float64) []float64 {
	v := mat.NewVecDense(len(p), p)
	norm := mat.Norm(v, 2)
	out := make([]float64, len(p))
	if norm == 0 {
		copy(out, p)
		return out
	}
	for i, x := range p {
		out[i] = x / norm
	}
	return out
}

// negSoftMin computes (1/β) log Σ_mu exp(-β ⟨w(p), d_mu⟩), a smooth
// surrogate for -min_mu ⟨w(p), d_mu⟩ that gonum/optimize minimizes in
// place of the true (non-smooth) max-min objective.
func negSoftMin(p []float64, vertices [][]float64, beta float64) float64 {
	w := normalized(p)
	maxArg := math.Inf(-1)
	xs := make([]float64, len(vertices))
	for i, d := range vertices {
		xs[i] = -beta * dot(w, d)
		if xs[i] > maxArg {
			maxArg = xs[i]
		}
	}
	var sum float64
	for _, x := range xs {
		sum += math.Exp(x - maxArg)
	}
	return (maxArg + math.Log(sum)) / beta
}

// negSoftMinGrad fills grad with the gradient of negSoftMin at p, derived
// via the chain rule through the softmax weighting and the unit-vector
// normalization w = p/‖p‖.
func negSoftMinGrad(grad, p []float64, vertices [][]float64, beta float64) {
	w := normalized(p)
	norm := math.Sqrt(dot(p, p))
	if norm == 0 {
		norm = 1
	}

	xs := make([]float64, len(vertices))
	maxArg := math.Inf(-1)
	for i, d := range vertices {
		xs[i] = -beta * dot(w, d)
		if xs[i] > maxArg {
			maxArg = xs[i]
		}
	}
	weights := make([]float64, len(vertices))
	var z float64
	for i, x := range xs {
		weights[i] = math.Exp(x - maxArg)
		z += weights[i]
	}

	// dh/dw = -Σ_mu softmax_mu * d_mu
	dhdw := make([]float64, len(p))
	for i, d := range vertices {
		wt := weights[i] / z
		for k := range dhdw {
			dhdw[k] -= wt * d[k]
		}
	}

	// dw/dp projects out the radial component: dh/dp = (dh/dw - w·<w,dh/dw>)/‖p‖
	proj := dot(w, dhdw)
	for k := range grad {
		grad[k] = (dhdw[k] - w[k]*proj) / norm
	}
}
