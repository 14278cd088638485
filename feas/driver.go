// SPDX-License-Identifier: MIT

package feas

import (
	"context"

	"github.com/lvlath-research/triangle-inflation/constraint"
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/eventtree"
	"github.com/lvlath-research/triangle-inflation/frankwolfe"
	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/lvlath-research/triangle-inflation/network"
	"github.com/lvlath-research/triangle-inflation/oracle"
)

// maxIterations bounds the feasibility loop defensively; every worked
// example converges in far fewer iterations, and termination otherwise
// relies entirely on FW.Solve's Valid flag rather than an iteration cap.
const maxIterations = 100000

// FeasibilityDriver runs the main feasibility loop of spec.md §4.13: it
// owns the inflation, constraint set, Frank-Wolfe engine, and oracle, and
// alternates them until either the engine can't separate the origin from
// its stored vertices (Inconclusive) or the oracle finds a strictly
// positive score (Nonlocal).
type FeasibilityDriver struct {
	Options FeasOptions

	Inflation   *inflation.Inflation
	Constraints *constraint.ConstraintSet
	FW          frankwolfe.Engine

	tree   *eventtree.Tree
	oracle oracleFunc
}

type oracleFunc func(ctx context.Context, stopMode oracle.StopMode) (oracle.Solution, error)

// NewFeasibilityDriver builds every component from opts against distr.
func NewFeasibilityDriver(opts FeasOptions, distr *network.TargetDistr) (*FeasibilityDriver, error) {
	inf, err := inflation.New(distr, opts.InflationSize, opts.UseDistrSymmetries)
	if err != nil {
		return nil, err
	}

	cs, err := constraint.NewConstraintSet(inf, opts.ConstraintDescriptions, distr, true)
	if err != nil {
		return nil, err
	}
	if opts.BmaxOverride != 0 {
		cs.BMax = opts.BmaxOverride
	}

	fw, err := newEngine(opts.FWAlgo, cs.TotalQuovecLen())
	if err != nil {
		return nil, err
	}

	d := &FeasibilityDriver{
		Options:     opts,
		Inflation:   inf,
		Constraints: cs,
		FW:          fw,
	}
	if err := d.seedZeroEvent(); err != nil {
		return nil, err
	}

	switch opts.SearchMode {
	case SearchBruteForce:
		bf := oracle.NewBruteForce(cs)
		d.oracle = bf.Optimize
	case SearchTreeSearch:
		tree, err := d.loadOrBuildSymtree(inf, opts)
		if err != nil {
			return nil, err
		}
		nThreads := opts.NThreads
		if nThreads <= 0 {
			nThreads = 1
		}
		ts, err := oracle.NewTreeSearch(cs, tree, nThreads)
		if err != nil {
			return nil, err
		}
		d.tree = tree
		d.oracle = ts.Optimize
	default:
		return nil, ErrBadSearchMode
	}

	return d, nil
}

// loadOrBuildSymtree honors opts.SymtreeIO (spec.md §6): on SymtreeRead it
// loads and validates the cached tree at opts.SymtreePath against inf's
// metadata; on SymtreeWrite it builds the tree and caches it to disk; on
// SymtreeNone it just builds the tree in memory.
func (d *FeasibilityDriver) loadOrBuildSymtree(inf *inflation.Inflation, opts FeasOptions) (*eventtree.Tree, error) {
	if opts.SymtreeIO == SymtreeRead {
		return readSymtreeCache(opts.SymtreePath, inf.Metadata())
	}

	tree := eventtree.NewTreeFiller(inf).Fill()
	if opts.SymtreeIO == SymtreeWrite {
		if err := writeSymtreeCache(opts.SymtreePath, inf.Metadata(), tree); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func newEngine(algo FWAlgo, dim int) (frankwolfe.Engine, error) {
	switch algo {
	case FWFullyCorrective:
		return frankwolfe.NewFullyCorrective(dim), nil
	case FWPairwise:
		return frankwolfe.NewPairwise(dim), nil
	default:
		return nil, ErrBadFWAlgo
	}
}

// seedZeroEvent memorizes the all-zero inflation event and its quovec, the
// one-time setup step ahead of the main loop (spec.md §4.13). Scaled by the
// same 0.001*QuovecDenom denom the main loop uses for every later vertex, so
// every stored vertex shares one consistent magnitude.
func (d *FeasibilityDriver) seedZeroEvent() error {
	zero := make(event.Event, d.Inflation.NumParties())
	return d.FW.MemorizeEventAndQuovec(zero, d.Constraints.GetInflationEventQuovec(zero), 0.001*d.Constraints.QuovecDenom)
}

// Run executes the main loop until a verdict is reached (spec.md §4.13).
func (d *FeasibilityDriver) Run(ctx context.Context) (Result, error) {
	for iter := 0; iter < maxIterations; iter++ {
		sol := d.FW.Solve()
		if !sol.Valid {
			return Result{Outcome: Inconclusive, Iterations: iter + 1}, nil
		}

		qInt := roundAndRescale(sol.Vec, d.Constraints.BMax)
		if err := d.Constraints.SetDualVectorFromQuovec(qInt); err != nil {
			return Result{}, err
		}

		opt, err := d.oracle(ctx, d.Options.StopMode)
		if err != nil {
			return Result{}, err
		}
		if opt.Score > 0 {
			return Result{Outcome: Nonlocal, Iterations: iter + 1, Certificate: opt}, nil
		}

		q := d.Constraints.GetInflationEventQuovec(opt.Event)
		if err := d.FW.MemorizeEventAndQuovec(opt.Event, q, 0.001*d.Constraints.QuovecDenom); err != nil {
			return Result{}, err
		}
	}

	return Result{Outcome: Inconclusive, Iterations: maxIterations}, nil
}

// SetTargetDistribution applies spec.md §4.13's target-distribution
// update: checks symmetry compatibility, re-tensors every constraint's RHS
// and recomputes scales, and either resets the Frank-Wolfe engine or
// replays its previously stored events against the new quovecs.
func (d *FeasibilityDriver) SetTargetDistribution(p *network.TargetDistr, retain RetainEvents) error {
	stored := d.FW.GetStoredEvents()

	if err := d.Constraints.SetTargetDistribution(p); err != nil {
		return err
	}

	d.FW.Reset()
	if retain == DiscardEvents {
		return d.seedZeroEvent()
	}

	for _, e := range stored {
		q := d.Constraints.GetInflationEventQuovec(e)
		if err := d.FW.MemorizeEventAndQuovec(e, q, 0.001*d.Constraints.QuovecDenom); err != nil {
			return err
		}
	}
	return nil
}
