// SPDX-License-Identifier: MIT

package distributions

import (
	"testing"

	"github.com/lvlath-research/triangle-inflation/event"
)

func TestNoisySRBIsAProbabilityDistribution(t *testing.T) {
	for _, vis := range []int64{0, 1, 500, 999, 1000} {
		d, err := NoisySRB(vis, 1000)
		if err != nil {
			t.Fatalf("vis=%d: %v", vis, err)
		}
		if !d.Tensor.IsProbabilityDistribution() {
			t.Fatalf("vis=%d: not a probability distribution", vis)
		}
	}
}

func TestNoisySRBFullVisibilityIsPureCorrelation(t *testing.T) {
	d, err := NoisySRB(1000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	for h := 0; h < d.Tensor.Size(); h++ {
		e := event.Unhash(uint64(h), d.Net.NOutcomes, 3)
		want := int64(0)
		if e[0] == e[1] && e[1] == e[2] {
			want = d.Tensor.Denom() / 2
		}
		if got := d.Tensor.NumByHash(uint64(h)); got != want {
			t.Errorf("event %v: got %d, want %d", e, got, want)
		}
	}
}

func TestNoisySRBRejectsOutOfRangeVisibility(t *testing.T) {
	if _, err := NoisySRB(-1, 1000); err == nil {
		t.Error("expected error for negative visibility")
	}
	if _, err := NoisySRB(1001, 1000); err == nil {
		t.Error("expected error for visibility above denom")
	}
}

func TestNoisySRBFamilyMatchesDirectCall(t *testing.T) {
	family := NoisySRBFamily(1000)
	viaFamily, err := family(300)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := NoisySRB(300, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if viaFamily.Tensor.Denom() != direct.Tensor.Denom() {
		t.Errorf("denom mismatch: %d vs %d", viaFamily.Tensor.Denom(), direct.Tensor.Denom())
	}
}

func TestSymmetricEJMIsAProbabilityDistribution(t *testing.T) {
	d, err := SymmetricEJM(10, 20, 70, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Tensor.IsProbabilityDistribution() {
		t.Fatal("not a probability distribution")
	}
}

func TestSymmetricEJMRejectsBadSplit(t *testing.T) {
	if _, err := SymmetricEJM(10, 20, 71, 100); err == nil {
		t.Error("expected error when shares don't sum to denom")
	}
}

func TestEJMDistributionIsAProbabilityDistribution(t *testing.T) {
	d, err := EJMDistribution()
	if err != nil {
		t.Fatal(err)
	}
	if !d.Tensor.IsProbabilityDistribution() {
		t.Fatal("not a probability distribution")
	}
	if d.Tensor.Denom() != 256 {
		t.Errorf("got denom %d, want 256", d.Tensor.Denom())
	}
}

func TestNoisyPureEJMIsAProbabilityDistribution(t *testing.T) {
	for _, vis := range []int64{0, 1, 50, 99, 100} {
		d, err := NoisyPureEJM(vis, 100)
		if err != nil {
			t.Fatalf("vis=%d: %v", vis, err)
		}
		if !d.Tensor.IsProbabilityDistribution() {
			t.Fatalf("vis=%d: not a probability distribution", vis)
		}
	}
}
