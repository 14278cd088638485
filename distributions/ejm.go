// SPDX-License-Identifier: MIT

package distributions

import (
	"github.com/lvlath-research/triangle-inflation/event"
	"github.com/lvlath-research/triangle-inflation/network"
)

// EJMNetwork returns the triangle network with 4 outcomes per party, the
// scenario the Elegant Joint Measurement distribution lives in.
func EJMNetwork() (*network.Network, error) {
	return network.New(4)
}

// eventClass classifies a 3-outcome event into one of the three orbits the
// EJM-style distributions are constant on: all outcomes equal, all
// distinct, or exactly two equal.
func eventClass(e event.Event) int {
	switch {
	case e[0] == e[1] && e[1] == e[2]:
		return 0 // 111
	case e[0] != e[1] && e[1] != e[2] && e[2] != e[0]:
		return 1 // 123
	default:
		return 2 // 112
	}
}

// SymmetricEJM builds the distribution assigning weight s111/s112/s123
// (over a common s_denom) to the all-equal / two-equal / all-distinct event
// classes respectively, over the 4-outcome triangle network.
func SymmetricEJM(s111, s112, s123, sDenom int64) (*network.TargetDistr, error) {
	if s111+s112+s123 != sDenom {
		return nil, ErrBadSplit
	}

	net, err := EJMNetwork()
	if err != nil {
		return nil, err
	}

	// lcm(4,36,24) = 72: 1/4 = 18/72, 1/36 = 2/72, 1/24 = 3/72.
	dDenom := sDenom * 72

	tensor, err := event.NewTensor(3, 4)
	if err != nil {
		return nil, err
	}
	if err := tensor.SetDenom(dDenom); err != nil {
		return nil, err
	}

	weights := [3]int64{s111 * 18, s123 * 3, s112 * 2} // indexed by eventClass: 0=111, 1=123, 2=112
	for h := 0; h < tensor.Size(); h++ {
		e := event.Unhash(uint64(h), 4, 3)
		tensor.SetNumByHash(uint64(h), weights[eventClass(e)])
	}

	return network.NewTargetDistr(net, tensor)
}

// NoisyPureEJM builds the purified EJM distribution mixed with white noise
// at the given visibility:
//
//	p(a,b,c) = (1-vis/denom)/64 + (vis/denom) * pureEJM(a,b,c)
//
// where pureEJM assigns 1/8 to the all-equal class, 1/48 to the
// all-distinct class, and 0 to the two-equal class.
func NoisyPureEJM(vis, visDenom int64) (*network.TargetDistr, error) {
	if visDenom <= 0 || vis < 0 || vis > visDenom {
		return nil, ErrBadVisibility
	}

	net, err := EJMNetwork()
	if err != nil {
		return nil, err
	}

	dDenom := visDenom * 192

	tensor, err := event.NewTensor(3, 4)
	if err != nil {
		return nil, err
	}
	if err := tensor.SetDenom(dDenom); err != nil {
		return nil, err
	}

	noise := visDenom - vis
	weights := [3]int64{noise*3 + vis*24, noise*3 + vis*4, noise * 3} // indexed by eventClass: 0=111, 1=123, 2=112
	for h := 0; h < tensor.Size(); h++ {
		e := event.Unhash(uint64(h), 4, 3)
		tensor.SetNumByHash(uint64(h), weights[eventClass(e)])
	}

	return network.NewTargetDistr(net, tensor)
}

// NoisyPureEJMFamily returns a distribution family suitable for feas's
// dichotomic visibility search over NoisyPureEJM.
func NoisyPureEJMFamily(denom int64) func(v int) (*network.TargetDistr, error) {
	return func(v int) (*network.TargetDistr, error) {
		return NoisyPureEJM(int64(v), denom)
	}
}

// EJMDistribution builds the (noiseless) Elegant Joint Measurement
// distribution: weight 25/256 on the all-equal class, 5/256 on the
// all-distinct class, and 1/256 on the two-equal class.
func EJMDistribution() (*network.TargetDistr, error) {
	net, err := EJMNetwork()
	if err != nil {
		return nil, err
	}

	tensor, err := event.NewTensor(3, 4)
	if err != nil {
		return nil, err
	}
	if err := tensor.SetDenom(256); err != nil {
		return nil, err
	}

	weights := [3]int64{25, 5, 1} // indexed by eventClass: 0=111, 1=123, 2=112
	for h := 0; h < tensor.Size(); h++ {
		e := event.Unhash(uint64(h), 4, 3)
		tensor.SetNumByHash(uint64(h), weights[eventClass(e)])
	}

	return network.NewTargetDistr(net, tensor)
}
