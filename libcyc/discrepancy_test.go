package libcyc_test

import (
	"reflect"
	"testing"

	"github.com/curve-systems/gocyc/gocyc"
	"github.com/curve-systems/gocyc/libcyc"
)

func TestDiscrepancies(t *testing.T) {
	cases := []struct {
		r    int
		want []int
	}{
		{1, nil},
		{2, []int{1}},
		{5, []int{4}},
		{6, []int{3, 4, 5}},
		{12, []int{6, 8, 9, 10, 11}},
	}
	for _, c := range cases {
		if got := libcyc.Discrepancies(c.r); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Discrepancies(%d) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestAllDiscrepancies(t *testing.T) {
	cases := []struct {
		disc []int
		Q    int
		want []gocyc.Combination
	}{
		{[]int{3, 4, 5}, 0, []gocyc.Combination{{0, 0, 0}}},
		{[]int{2}, 6, []gocyc.Combination{{3}}},
		{[]int{2, 3}, 6, []gocyc.Combination{{3, 0}, {0, 2}}},
		{nil, 0, []gocyc.Combination{{}}},
		{nil, 3, nil},
		{[]int{4}, 2, nil},
	}
	for _, c := range cases {
		if got := libcyc.AllDiscrepancies(c.disc, c.Q); !reflect.DeepEqual(got, c.want) {
			t.Errorf("AllDiscrepancies(%v, %d) = %v, want %v", c.disc, c.Q, got, c.want)
		}
	}
}

// Every combination must sum back to the budget it was generated for.
func TestAllDiscrepanciesRoundTrip(t *testing.T) {
	for _, r := range []int{6, 8, 12} {
		disc := libcyc.Discrepancies(r)
		for Q := 0; Q <= 30; Q++ {
			for _, combo := range libcyc.AllDiscrepancies(disc, Q) {
				if got := combo.SumWith(disc); got != Q {
					t.Fatalf("r=%d Q=%d: combination %v sums to %d", r, Q, combo, got)
				}
				if len(combo) != len(disc) {
					t.Fatalf("r=%d Q=%d: combination %v has length %d, want %d",
						r, Q, combo, len(combo), len(disc))
				}
			}
		}
	}
}
