// SPDX-License-Identifier: MIT

package constraint

import "errors"

// ErrBadPartyName is returned when a constraint description names a
// well-formed party that does not belong to the inflation; a name that does
// not parse at all surfaces inflation.ErrBadPartyName instead.
var ErrBadPartyName = errors.New("constraint: malformed party name")

// ErrDuplicateParty is returned when a single list names the same party
// twice.
var ErrDuplicateParty = errors.New("constraint: duplicate party in list")

// ErrNotDSeparated is returned when two of the parser's lists share a
// common parent source.
var ErrNotDSeparated = errors.New("constraint: lists are not D-separated")

// ErrNotInjectable is returned when an F_i list is not an injectable set.
var ErrNotInjectable = errors.New("constraint: factor set is not injectable")

// ErrEmptyDescription is returned when a constraint description has no
// fields at all.
var ErrEmptyDescription = errors.New("constraint: description must list at least one factor and an R field")

// ErrNoFactorSets is returned when a description names only an R field and
// no F_i factor lists (spec.md §4.6/§7, mirroring
// original_source's constraint_parser requirement of at least one factor
// set before the residual).
var ErrNoFactorSets = errors.New("constraint: description must name at least one factor set")

// ErrSymmetriesChanged is returned by Constraint.SetTargetDistribution when
// the new distribution's symmetry group is incompatible with the one the
// constraint was built against.
var ErrSymmetriesChanged = errors.New("constraint: target distribution symmetries changed")

// ErrOverflowRisk is returned by HardAssertWithinBound when a coefficient
// would risk overflowing the scaled constraint-set arithmetic.
var ErrOverflowRisk = errors.New("constraint: coefficient exceeds overflow-safety bound")

// ErrBadQuovecOffset is returned by SetFromQuovec when the offset plus the
// expected coefficient count would run past the input slice.
var ErrBadQuovecOffset = errors.New("constraint: quovec offset out of range")
