// SPDX-License-Identifier: MIT

package distributions

import (
	"strconv"

	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/network"
)

// SRBNetwork returns the triangle network with 2 outcomes per party, the
// scenario the noisy shared random bit lives in.
func SRBNetwork() (*network.Network, error) {
	return network.New(2)
}

// NoisySRB builds the noisy shared random bit distribution
//
//	p = (visibility/denom) * ([000]+[111])/2 + (1-visibility/denom) * uniform/8
//
// over the triangle network with 2 outcomes, for visibility in [0, denom].
func NoisySRB(visibility, denom int64) (*network.TargetDistr, error) {
	if denom <= 0 || visibility < 0 || visibility > denom {
		return nil, ErrBadVisibility
	}

	net, err := SRBNetwork()
	if err != nil {
		return nil, err
	}

	noiseLevel := denom - visibility

	tensor, err := event.NewTensor(3, 2)
	if err != nil {
		return nil, err
	}
	if err := tensor.SetDenom(denom * 8); err != nil {
		return nil, err
	}

	for h := 0; h < tensor.Size(); h++ {
		e := event.Unhash(uint64(h), 2, 3)
		num := noiseLevel
		if e[0] == e[1] && e[1] == e[2] {
			num += visibility * 4
		}
		tensor.SetNumByHash(uint64(h), num)
	}

	return network.NewTargetDistr(net, tensor)
}

// NoisySRBFamily returns a distribution family suitable for feas's
// dichotomic visibility search, parameterizing NoisySRB by its integer
// visibility numerator over the fixed denom.
func NoisySRBFamily(denom int64) func(v int) (*network.TargetDistr, error) {
	return func(v int) (*network.TargetDistr, error) {
		return NoisySRB(int64(v), denom)
	}
}

// VisibilityToString renders a visibility fraction as a percentage string,
// matching the certificate-metadata phrasing of spec.md §6.
func VisibilityToString(visibility, denom int64) string {
	pct := float64(visibility) / float64(denom) * 100
	return strconv.FormatFloat(pct, 'f', 4, 64) + "%"
}
