package libcyc_test

import (
	"testing"

	"github.com/curve-systems/gocyc/gocyc"
	"github.com/curve-systems/gocyc/libcyc"
)

func TestACCheck(t *testing.T) {
	cases := []struct {
		name   string
		r      int
		branch gocyc.BranchSpec
		combo  gocyc.Combination
		want   bool
	}{
		// Z_5 on a genus 2 curve: three totally ramified points over P^1.
		{"degree 5 cover", 5, nil, gocyc.Combination{3}, true},
		// A single point with stabilizer of order 2 cannot balance mod 4.
		{"lone half point", 4, nil, gocyc.Combination{1, 0}, false},
		// Exponent sum is 1 mod 3, so never 0 mod 9.
		{"order 9 imbalance", 9, nil, gocyc.Combination{2, 1}, false},
		// Z_8: one point of order 2, two totally ramified.
		{"order 8 classical", 8, nil, gocyc.Combination{1, 0, 2}, true},
		{"order 8 three halves", 8, nil, gocyc.Combination{0, 3, 0}, false},
		// Prescribed branching only: stabilizer orders come from the spec.
		{"prescribed odd", 6, gocyc.BranchSpec{0, 0, 1}, gocyc.Combination{0, 0, 0}, false},
		{"prescribed pair", 6, gocyc.BranchSpec{0, 0, 2}, gocyc.Combination{0, 0, 0}, true},
		// No ramification at all: the degree equation is trivially solvable.
		{"unramified", 6, nil, gocyc.Combination{0, 0, 0}, true},
	}
	for _, c := range cases {
		disc := libcyc.Discrepancies(c.r)
		if got := libcyc.ACCheck(c.r, c.branch, disc, c.combo); got != c.want {
			t.Errorf("%s: ACCheck(%d, %v, %v, %v) = %v, want %v",
				c.name, c.r, c.branch, disc, c.combo, got, c.want)
		}
	}
}
