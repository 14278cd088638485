// SPDX-License-Identifier: MIT

package feas

import (
	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/lvlath-research/triangle-inflation/oracle"
)

// SearchMode selects which oracle implementation FeasibilityDriver drives
// (spec.md §6's FeasOptions.search_mode).
type SearchMode int

const (
	SearchBruteForce SearchMode = iota
	SearchTreeSearch
)

// FWAlgo selects which Frank-Wolfe engine FeasibilityDriver drives
// (spec.md §6's FeasOptions.fw_algo).
type FWAlgo int

const (
	FWFullyCorrective FWAlgo = iota
	FWPairwise
)

// RetainEvents selects whether a target-distribution update replays
// previously stored Frank-Wolfe events against the new distribution
// instead of starting the engine from scratch (spec.md §4.13-§4.14).
type RetainEvents int

const (
	DiscardEvents RetainEvents = iota
	RetainEventsYes
)

// SymtreeIO selects whether FeasibilityDriver reads or writes a cached
// symmetric event tree instead of (re)computing it in memory (spec.md §6).
type SymtreeIO int

const (
	SymtreeNone SymtreeIO = iota
	SymtreeRead
	SymtreeWrite
)

// FeasOptions configures one feasibility run (spec.md §6's programmatic
// problem description).
type FeasOptions struct {
	InflationSize          inflation.Size
	ConstraintDescriptions [][]string
	SearchMode             SearchMode
	UseDistrSymmetries     bool
	StopMode               oracle.StopMode
	FWAlgo                 FWAlgo
	StoreBounds            bool
	NThreads               int
	SymtreeIO              SymtreeIO
	SymtreePath            string

	// BmaxOverride, when non-zero, overrides the constraint set's own
	// computed overflow bound B_max (primarily for tests exercising the
	// overflow-risk error path without constructing huge constraint sets).
	BmaxOverride int64
}
