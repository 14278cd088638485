// SPDX-License-Identifier: MIT

package constraint

import (
	"strings"

	"github.com/lvlath-research/triangle-inflation/inflation"
)

// ParsedDescription is the parser's output (spec.md §4.6): the concatenated
// LHS party-index list (F_0 ∪ ... ∪ F_{k-1} ∪ R, in order), the RHS list (R
// alone), and the target-distribution marginal for each F_i (its parties
// stripped of copy indices, as party-type indices, e.g. [0, 1] for A, B).
type ParsedDescription struct {
	LHSParties    []int
	RHSParties    []int
	TargetMargins [][]int // one party-type list per F_i, e.g. [0,1] for "A,B"
}

// Parse validates and assembles a constraint description of the form
// [F_0, ..., F_{k-1}, R] against inf (spec.md §4.6).
func Parse(inf *inflation.Inflation, fields []string) (*ParsedDescription, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyDescription
	}
	if len(fields) < 2 {
		return nil, ErrNoFactorSets
	}
	factorFields := fields[:len(fields)-1]
	rField := fields[len(fields)-1]

	factorLists := make([][]int, len(factorFields))
	factorTypes := make([][]int, len(factorFields))
	for i, f := range factorFields {
		parties, types, err := parseList(inf, f)
		if err != nil {
			return nil, err
		}
		factorLists[i] = parties
		factorTypes[i] = types
	}
	rList, _, err := parseList(inf, rField)
	if err != nil {
		return nil, err
	}

	allLists := append(append([][]int{}, factorLists...), rList)
	for i := 0; i < len(allLists); i++ {
		for j := i + 1; j < len(allLists); j++ {
			if !inf.AreDSeparated(allLists[i], allLists[j]) {
				return nil, ErrNotDSeparated
			}
		}
	}
	for _, f := range factorLists {
		if !inf.IsInjectableSet(f) {
			return nil, ErrNotInjectable
		}
	}

	lhs := make([]int, 0)
	for _, f := range factorLists {
		lhs = append(lhs, f...)
	}
	lhs = append(lhs, rList...)

	return &ParsedDescription{
		LHSParties:    lhs,
		RHSParties:    rList,
		TargetMargins: factorTypes,
	}, nil
}

// parseList splits a comma-separated, whitespace-insensitive party-name
// list, validates uniqueness and bounds, and returns both the inflation
// party indices and their underlying party types (for target-marginal
// naming).
func parseList(inf *inflation.Inflation, field string) ([]int, []int, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, nil, nil
	}
	rawNames := strings.Split(field, ",")
	indices := make([]int, 0, len(rawNames))
	types := make([]int, 0, len(rawNames))
	seen := make(map[int]bool, len(rawNames))
	for _, raw := range rawNames {
		name := strings.TrimSpace(raw)
		p, err := inflation.ParsePartyName(name)
		if err != nil {
			return nil, nil, err
		}
		idx, err := inf.IndexOf(p)
		if err != nil {
			return nil, nil, ErrBadPartyName
		}
		if seen[idx] {
			return nil, nil, ErrDuplicateParty
		}
		seen[idx] = true
		indices = append(indices, idx)
		types = append(types, p.Type)
	}
	return indices, types, nil
}
