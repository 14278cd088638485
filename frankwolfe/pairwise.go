// SPDX-License-Identifier: MIT

package frankwolfe

import (
	"math"

	"github.com/lvlath-research/triangle-inflation/event"
)

const (
	// inconclusiveTol bounds how close to the origin x can get before a
	// pairwise solve gives up rather than report a numerically meaningless
	// direction (spec.md §4.12).
	inconclusiveTol = 1e-12

	// cleanupTol is the weight below which a vertex is swap-removed.
	cleanupTol = 1e-10

	// lazyK divides the very first iteration's lazy tolerance Φ.
	lazyK = 8.0
)

// SelectionMode picks how Pairwise.Solve chooses the Frank-Wolfe and away
// vertex at each iteration.
type SelectionMode int

const (
	// Classical selects the minimum and maximum of ⟨x, d_mu⟩ directly.
	Classical SelectionMode = iota
	// MaxGapRatio selects the ordered pair maximizing the normalized gap
	// (⟨x, d_i⟩ − ⟨x, d_j⟩) / ‖d_i − d_j‖ (spec.md §4.12's alternative).
	MaxGapRatio
)

// Pairwise is the self-contained Frank-Wolfe variant: it maintains a convex
// combination x = Σ q_mu d_mu of stored vertices and moves weight between a
// pair of vertices on each iteration (spec.md §4.12).
type Pairwise struct {
	Selection SelectionMode

	dim      int
	vertices [][]float64
	events   []event.Event
	weights  []float64

	x        []float64
	normXSq  float64
	xDotD    []float64
	dDotD    map[[2]int]float64
	phi      float64
}

// NewPairwise builds an empty Pairwise engine for vectors of the given
// dimension.
func NewPairwise(dim int) *Pairwise {
	return &Pairwise{
		dim:   dim,
		x:     make([]float64, dim),
		dDotD: make(map[[2]int]float64),
	}
}

func triKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// MemorizeEventAndQuovec appends a new vertex, weighted 1 if it is the
// first stored vertex and 0 otherwise, and updates every cached quantity
// (spec.md §4.12).
func (p *Pairwise) MemorizeEventAndQuovec(e event.Event, q []int64, denom float64) error {
	if len(q) != p.dim {
		return ErrDimensionMismatch
	}
	d := toFloatVertex(q, denom)
	idx := len(p.vertices)
	p.vertices = append(p.vertices, d)
	p.events = append(p.events, e.Clone())

	ddd := dot(d, d)
	p.dDotD[triKey(idx, idx)] = ddd
	for k := 0; k < idx; k++ {
		p.dDotD[triKey(idx, k)] = dot(d, p.vertices[k])
	}

	if idx == 0 {
		p.weights = append(p.weights, 1)
		copy(p.x, d)
		p.normXSq = ddd
		p.xDotD = []float64{ddd}
		p.phi = 0.5 * ddd
		return nil
	}

	p.weights = append(p.weights, 0)
	p.xDotD = append(p.xDotD, dot(p.x, d))
	return nil
}

// Solve runs the lazified pairwise Frank-Wolfe loop to (near-)convergence
// and returns the current candidate certificate (spec.md §4.12).
func (p *Pairwise) Solve() Solution {
	if len(p.vertices) == 0 {
		return Solution{}
	}
	if len(p.vertices) == 1 {
		return p.currentSolution()
	}

	firstIter := true
	for {
		if p.normXSq < inconclusiveTol {
			return Solution{S: math.Sqrt(math.Max(p.normXSq, 0)), Vec: append([]float64(nil), p.x...), Valid: false}
		}

		iMin, iMax := p.selectPair()
		gap := p.xDotD[iMax] - p.xDotD[iMin]

		if firstIter {
			if gap < p.phi/lazyK {
				p.phi /= 2
			}
			firstIter = false
		}
		if gap < p.phi {
			break
		}

		p.step(iMin, iMax)
	}

	return p.currentSolution()
}

// selectPair picks the away vertex (iMax) and Frank-Wolfe vertex (iMin) per
// p.Selection.
func (p *Pairwise) selectPair() (iMin, iMax int) {
	switch p.Selection {
	case MaxGapRatio:
		bestRatio := math.Inf(-1)
		for i := range p.vertices {
			for j := range p.vertices {
				if i == j {
					continue
				}
				normSq := p.dDotD[triKey(i, i)] + p.dDotD[triKey(j, j)] - 2*p.dDotD[triKey(i, j)]
				if normSq <= 0 {
					continue
				}
				ratio := (p.xDotD[i] - p.xDotD[j]) / math.Sqrt(normSq)
				if ratio > bestRatio {
					bestRatio, iMax, iMin = ratio, i, j
				}
			}
		}
		return iMin, iMax
	default:
		iMin, iMax = 0, 0
		for i := range p.xDotD {
			if p.xDotD[i] < p.xDotD[iMin] {
				iMin = i
			}
			if p.xDotD[i] > p.xDotD[iMax] {
				iMax = i
			}
		}
		return iMin, iMax
	}
}

// step takes a pairwise step moving weight from the away vertex iMax to
// the Frank-Wolfe vertex iMin, updating x and every cache exactly, then
// swap-removes iMax if its weight falls below cleanupTol (spec.md §4.12).
func (p *Pairwise) step(iMin, iMax int) {
	dSq := p.dDotD[triKey(iMin, iMin)] + p.dDotD[triKey(iMax, iMax)] - 2*p.dDotD[triKey(iMin, iMax)]
	if dSq <= 0 {
		return
	}
	gamma := (p.xDotD[iMax] - p.xDotD[iMin]) / dSq
	if gamma < 0 {
		gamma = 0
	}
	if qMax := p.weights[iMax]; gamma > qMax {
		gamma = qMax
	}

	aMin, aMax := p.xDotD[iMin], p.xDotD[iMax]
	for nu := range p.xDotD {
		p.xDotD[nu] += gamma * (p.dDotD[triKey(iMin, nu)] - p.dDotD[triKey(iMax, nu)])
	}
	p.normXSq += 2*gamma*(aMin-aMax) + gamma*gamma*dSq

	dMin, dMax := p.vertices[iMin], p.vertices[iMax]
	for k := range p.x {
		p.x[k] += gamma * (dMin[k] - dMax[k])
	}

	p.weights[iMin] += gamma
	p.weights[iMax] -= gamma

	if p.weights[iMax] < cleanupTol {
		p.removeVertex(iMax)
	}
}

// removeVertex swap-removes idx: the last vertex takes its slot, and every
// cache entry referencing the old last index is rekeyed to idx.
func (p *Pairwise) removeVertex(idx int) {
	last := len(p.vertices) - 1
	if idx != last {
		p.vertices[idx] = p.vertices[last]
		p.events[idx] = p.events[last]
		p.weights[idx] = p.weights[last]
		p.xDotD[idx] = p.xDotD[last]
		for k := 0; k < last; k++ {
			if k == idx {
				continue
			}
			p.dDotD[triKey(idx, k)] = p.dDotD[triKey(last, k)]
		}
		p.dDotD[triKey(idx, idx)] = p.dDotD[triKey(last, last)]
	}
	for k := 0; k < last; k++ {
		delete(p.dDotD, triKey(last, k))
	}
	delete(p.dDotD, triKey(last, last))

	p.vertices = p.vertices[:last]
	p.events = p.events[:last]
	p.weights = p.weights[:last]
	p.xDotD = p.xDotD[:last]
}

// currentSolution reads off Solution from the engine's current cached
// state without iterating further.
func (p *Pairwise) currentSolution() Solution {
	minDot := math.Inf(1)
	for _, d := range p.xDotD {
		if d < minDot {
			minDot = d
		}
	}
	s := math.Sqrt(math.Max(p.normXSq, 0))
	return Solution{
		S:     s,
		Vec:   append([]float64(nil), p.x...),
		Valid: s > 0 && minDot > 0,
	}
}

// Reset clears all stored vertices but keeps the configured dimension.
func (p *Pairwise) Reset() {
	p.vertices = nil
	p.events = nil
	p.weights = nil
	p.x = make([]float64, p.dim)
	p.normXSq = 0
	p.xDotD = nil
	p.dDotD = make(map[[2]int]float64)
	p.phi = 0
}

// GetStoredEvents returns the events memorized so far, in storage order.
func (p *Pairwise) GetStoredEvents() []event.Event {
	out := make([]event.Event, len(p.events))
	copy(out, p.events)
	return out
}
