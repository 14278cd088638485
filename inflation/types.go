// SPDX-License-Identifier: MIT

package inflation

import (
	"strconv"
	"strings"
)

// Source type indices. Each source feeds exactly the two parties it is not
// named after: alpha feeds {Bob, Charlie}, beta feeds {Alice, Charlie},
// gamma feeds {Alice, Bob} (spec.md §3's triangle network).
const (
	SourceAlpha = 0
	SourceBeta  = 1
	SourceGamma = 2
)

// Size is the inflation size vector (n_alpha, n_beta, n_gamma): the number
// of copies of each source.
type Size [3]int

// Valid reports whether every entry of s is positive.
func (s Size) Valid() bool {
	return s[0] > 0 && s[1] > 0 && s[2] > 0
}

// leftSourceType and rightSourceType give the two source types feeding a
// party of the given type (0=Alice,1=Bob,2=Charlie). A party's left source
// is the one whose copy index is conventionally written first in its name.
func leftSourceType(partyType int) int  { return (partyType + 1) % 3 }
func rightSourceType(partyType int) int { return (partyType + 2) % 3 }

// Party identifies one inflation party: a copy of network party Type,
// fed by copy J of its left source and copy K of its right source.
type Party struct {
	Type int
	J    int
	K    int
}

var partyLetters = [3]byte{'A', 'B', 'C'}

// letterDigit encodes i in [0,36) as a base-36 digit (0-9 then a-z). The
// inflation party name format "Xjk" therefore supports up to 36 copies per
// source, comfortably above the sizes used in practice (spec.md's examples
// never exceed single-digit inflation sizes).
func letterDigit(i int) byte {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	return alphabet[i]
}

// Name renders p in the canonical "Xjk" form, e.g. "A01" for Alice's party
// fed by left-source copy 0 and right-source copy 1.
func (p Party) Name() string {
	var b strings.Builder
	b.WriteByte(partyLetters[p.Type])
	b.WriteByte(letterDigit(p.J))
	b.WriteByte(letterDigit(p.K))
	return b.String()
}

// ParsePartyName parses a canonical "Xjk" party name back into its
// components, without validating against any particular inflation's bounds.
func ParsePartyName(name string) (Party, error) {
	if len(name) != 3 {
		return Party{}, ErrBadPartyName
	}
	var typ int
	switch name[0] {
	case 'A':
		typ = 0
	case 'B':
		typ = 1
	case 'C':
		typ = 2
	default:
		return Party{}, ErrBadPartyName
	}
	j, err := strconv.ParseInt(string(name[1]), 36, 64)
	if err != nil {
		return Party{}, ErrBadPartyName
	}
	k, err := strconv.ParseInt(string(name[2]), 36, 64)
	if err != nil {
		return Party{}, ErrBadPartyName
	}
	return Party{Type: typ, J: int(j), K: int(k)}, nil
}
