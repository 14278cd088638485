// SPDX-License-Identifier: MIT

package oracle

import (
	"context"

	"github.com/lvlath-research/triangle-inflation/constraint"
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/eventtree"
	"github.com/lvlath-research/triangle-inflation/inflation"
	"golang.org/x/sync/errgroup"
)

// TreeSearch optimizes by depth-first traversal of the precomputed
// compressed symmetric event tree, pruning subtrees via branch-and-bound
// once a bound-aware evaluator's current value can no longer beat the best
// score found so far. With NThreads > 1, root-level subtrees are
// partitioned into contiguous, disjoint groups and explored concurrently,
// each worker owning its own cloned evaluator set; results are reduced by
// picking the minimum-scoring event (spec.md §4.11, §5).
type TreeSearch struct {
	Inflation   *inflation.Inflation
	Constraints *constraint.ConstraintSet
	Tree        *eventtree.Tree
	NThreads    int
}

// NewTreeSearch builds a TreeSearch oracle over cs's inflation, using the
// given precomputed tree and worker count.
func NewTreeSearch(cs *constraint.ConstraintSet, tree *eventtree.Tree, nThreads int) (*TreeSearch, error) {
	if nThreads <= 0 {
		return nil, ErrBadThreadCount
	}
	return &TreeSearch{
		Inflation:   cs.Inflation,
		Constraints: cs,
		Tree:        tree,
		NThreads:    nThreads,
	}, nil
}

// Optimize partitions the tree's root-level subtrees across NThreads
// workers and reduces their best solutions to a single minimum-scoring
// event.
func (ts *TreeSearch) Optimize(ctx context.Context, stopMode StopMode) (Solution, error) {
	nRoots := ts.Tree.LevelLen(0)
	if ts.Inflation.NumParties() == 0 || nRoots == 0 {
		return Solution{}, ErrNoParties
	}

	groups := partitionRoots(nRoots, ts.NThreads)

	callerCtx := ctx
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	results := make([]Solution, len(groups))
	oks := make([]bool, len(groups))

	for gi, roots := range groups {
		gi, roots := gi, roots
		if len(roots) == 0 {
			continue
		}
		g.Go(func() error {
			evaluators := ts.Constraints.MarginalEvaluators()
			worker := &treeSearchWorker{
				tree:       ts.Tree,
				nParties:   ts.Inflation.NumParties(),
				evaluators: evaluators,
				stopMode:   stopMode,
				working:    make(event.Event, ts.Inflation.NumParties()),
			}
			// A worker that stops because the shared context was
			// canceled (our own Sat-mode short-circuit, or the
			// caller's ctx) is not an error: it just contributes
			// whatever best it had found so far.
			sol, ok := worker.run(gctx, roots)
			results[gi], oks[gi] = sol, ok
			// In Sat mode, a non-positive witness from any worker
			// satisfies the whole search: cancel the shared context so
			// siblings still in flight stop promptly.
			if ok && stopMode == Sat && sol.Score <= 0 {
				cancel()
			}
			return nil
		})
	}

	_ = g.Wait() // workers never return a real error; see run/visit

	// Only the caller's own context can make this a real failure: our
	// internal Sat-mode cancel() cancels runCtx/gctx but leaves callerCtx
	// untouched.
	if err := callerCtx.Err(); err != nil {
		return Solution{}, err
	}

	var best Solution
	bestOK := false
	for i, ok := range oks {
		if !ok {
			continue
		}
		if better(best, bestOK, results[i]) {
			best, bestOK = results[i], true
		}
	}
	if !bestOK {
		return Solution{}, ErrNoParties
	}
	return best, nil
}

// partitionRoots splits [0, nRoots) into up to nThreads contiguous,
// disjoint, prefix-closed groups of as-equal-as-possible size (spec.md
// §4.11's path-partition, specialized to depth-0 prefixes).
func partitionRoots(nRoots, nThreads int) [][]int {
	if nThreads > nRoots {
		nThreads = nRoots
	}
	groups := make([][]int, nThreads)
	base := nRoots / nThreads
	rem := nRoots % nThreads
	start := 0
	for i := 0; i < nThreads; i++ {
		size := base
		if i < rem {
			size++
		}
		group := make([]int, size)
		for j := 0; j < size; j++ {
			group[j] = start + j
		}
		groups[i] = group
		start += size
	}
	return groups
}

// treeSearchWorker owns one cloned evaluator set and explores an assigned
// set of root-level subtrees.
type treeSearchWorker struct {
	tree       *eventtree.Tree
	nParties   int
	evaluators *constraint.EvaluatorSet
	stopMode   StopMode
	working    event.Event

	best     Solution
	bestOK   bool
	abortSat bool
}

// run explores the worker's assigned root-level subtrees in turn, stopping
// early (without error) once abortSat fires or ctx is canceled — by our own
// Sat-mode short-circuit in a sibling worker, or by the caller.
func (w *treeSearchWorker) run(ctx context.Context, roots []int) (Solution, bool) {
	for _, r := range roots {
		if w.abortSat || ctx.Err() != nil {
			break
		}
		w.visit(ctx, 0, int32(r))
	}
	return w.best, w.bestOK
}

// visit descends into the node at (depth, idx), pruning via
// branch-and-bound and recording a new best at leaves.
func (w *treeSearchWorker) visit(ctx context.Context, depth int, idx int32) {
	if w.abortSat || ctx.Err() != nil {
		return
	}

	node := w.tree.NodeAt(depth, int(idx))
	w.working[depth] = node.Outcome
	w.evaluators.SetOutcome(depth, node.Outcome)
	score := w.evaluators.Evaluate()

	if w.bestOK && score >= w.best.Score {
		return // branch-and-bound prune
	}

	if depth == w.nParties-1 {
		candidate := Solution{Score: score, Event: w.working.Clone()}
		if better(w.best, w.bestOK, candidate) {
			w.best, w.bestOK = candidate, true
			if w.stopMode == Sat && w.best.Score <= 0 {
				w.abortSat = true
			}
		}
		return
	}

	for _, child := range node.Children {
		w.visit(ctx, depth+1, child)
		if w.abortSat || ctx.Err() != nil {
			break
		}
	}
}
