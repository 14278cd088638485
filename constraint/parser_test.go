// SPDX-License-Identifier: MIT

package constraint

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/inflation"
	"github.com/stretchr/testify/require"
)

// TestParseAcceptsDSeparatedInjectableFactors uses a {1,1,2} inflation, the
// smallest size exposing two D-separated, individually-injectable
// single-party marginals (A00 and B10 share no source copy: A00's parents
// are beta-0 and gamma-0, B10's are gamma-1 and alpha-0).
func TestParseAcceptsDSeparatedInjectableFactors(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 2}, false)
	require.NoError(t, err)

	parsed, err := Parse(inf, []string{"A00", "B10"})
	require.NoError(t, err)
	require.Len(t, parsed.LHSParties, 2)
	require.Len(t, parsed.RHSParties, 1)
	require.Equal(t, [][]int{{0}}, parsed.TargetMargins)
}

func TestParseRejectsNonDSeparatedFactors(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 1}, false)
	require.NoError(t, err)

	_, err = Parse(inf, []string{"A00", "B00"})
	require.ErrorIs(t, err, ErrNotDSeparated)
}

func TestParseRejectsBadPartyName(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 2}, false)
	require.NoError(t, err)

	_, err = Parse(inf, []string{"Z99", "B10"})
	require.Error(t, err)
}

func TestParseRejectsTooFewFields(t *testing.T) {
	d := sharedRandomBitDistr(t)
	inf, err := inflation.New(d, inflation.Size{1, 1, 2}, false)
	require.NoError(t, err)

	_, err = Parse(inf, []string{"A00"})
	require.ErrorIs(t, err, ErrNoFactorSets)
}
