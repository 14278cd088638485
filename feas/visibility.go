// SPDX-License-Identifier: MIT

package feas

import (
	"context"

	"github.com/lvlath-research/triangle-inflation/network"
)

// DistrFamily maps a visibility parameter v to its target distribution
// (spec.md §4.14).
type DistrFamily func(v int) (*network.TargetDistr, error)

// VisOptions configures one visibility search.
type VisOptions struct {
	VMin, VMax int
	Retain     RetainEvents
}

// VisibilityDriver runs the dichotomic search of spec.md §4.14 over a
// parameterized family of target distributions, driving the same
// FeasibilityDriver at each midpoint.
type VisibilityDriver struct {
	Driver *FeasibilityDriver
	Family DistrFamily
}

// NewVisibilityDriver builds a VisibilityDriver over driver, trying
// distributions from family.
func NewVisibilityDriver(driver *FeasibilityDriver, family DistrFamily) *VisibilityDriver {
	return &VisibilityDriver{Driver: driver, Family: family}
}

// feasibleAt updates the driver's target distribution to family(v) and
// runs it to a verdict; any non-Nonlocal verdict (Inconclusive counts as
// compatible, per spec.md §4.14's invariant) is treated as feasible.
func (vd *VisibilityDriver) feasibleAt(ctx context.Context, v int, retain RetainEvents) (bool, error) {
	distr, err := vd.Family(v)
	if err != nil {
		return false, err
	}
	if err := vd.Driver.SetTargetDistribution(distr, retain); err != nil {
		return false, err
	}
	res, err := vd.Driver.Run(ctx)
	if err != nil {
		return false, err
	}
	return res.Outcome != Nonlocal, nil
}

// Search brackets (maxFeas, minInfeas) within [opts.VMin, opts.VMax] and
// contracts the bracket by bisection until maxFeas+1 == minInfeas (spec.md
// §4.14). Returns ErrNoVisibilityBracket if VMin is already nonlocal or
// VMax is still feasible, since the invariant's v_0/v_1 then fall outside
// the given range.
func (vd *VisibilityDriver) Search(ctx context.Context, opts VisOptions) (maxFeas, minInfeas int, err error) {
	loFeas, err := vd.feasibleAt(ctx, opts.VMin, opts.Retain)
	if err != nil {
		return 0, 0, err
	}
	if !loFeas {
		return 0, 0, ErrNoVisibilityBracket
	}

	hiFeas, err := vd.feasibleAt(ctx, opts.VMax, opts.Retain)
	if err != nil {
		return 0, 0, err
	}
	if hiFeas {
		return 0, 0, ErrNoVisibilityBracket
	}

	lo, hi := opts.VMin, opts.VMax
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		feas, err := vd.feasibleAt(ctx, mid, opts.Retain)
		if err != nil {
			return 0, 0, err
		}
		if feas {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, hi, nil
}
