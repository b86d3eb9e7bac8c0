package gocyc_test

import (
	"reflect"
	"testing"

	"github.com/curve-systems/gocyc/gocyc"
)

// Iteration order must be canonical (r ascending, h descending) no matter the
// insertion order.
func TestResultsOrdering(t *testing.T) {
	rs := gocyc.NewResults(2, nil)
	disc := []int{1}
	rs.Insert(5, 0, []int{4}, gocyc.Combination{3})
	rs.Insert(2, 0, disc, gocyc.Combination{6})
	rs.Insert(2, 1, disc, gocyc.Combination{2})

	if got := rs.Orders(); !reflect.DeepEqual(got, []int{2, 5}) {
		t.Fatalf("Orders() = %v, want [2 5]", got)
	}

	or, ok := rs.Order(2)
	if !ok {
		t.Fatal("Order(2) missing")
	}
	var genera []int
	or.Walk(func(gg *gocyc.GenusGroup) {
		genera = append(genera, gg.QuotientGenus)
	})
	if !reflect.DeepEqual(genera, []int{1, 0}) {
		t.Fatalf("genera for r=2 = %v, want [1 0]", genera)
	}
	if or.NumCombos() != 2 || or.NumGenera() != 2 {
		t.Fatalf("NumCombos=%d NumGenera=%d, want 2 and 2", or.NumCombos(), or.NumGenera())
	}

	if _, ok := rs.Order(3); ok {
		t.Fatal("Order(3) unexpectedly present")
	}
	if rs.NumOrders() != 2 {
		t.Fatalf("NumOrders = %d, want 2", rs.NumOrders())
	}
}

func TestResultsCombosAppendInOrder(t *testing.T) {
	rs := gocyc.NewResults(2, nil)
	disc := []int{2, 3}
	rs.Insert(4, 0, disc, gocyc.Combination{0, 2})
	rs.Insert(4, 0, disc, gocyc.Combination{2, 0})

	or, _ := rs.Order(4)
	gg, ok := or.Genus(0)
	if !ok {
		t.Fatal("Genus(0) missing")
	}
	want := []gocyc.Combination{{0, 2}, {2, 0}}
	if !reflect.DeepEqual(gg.Combos, want) {
		t.Fatalf("Combos = %v, want %v", gg.Combos, want)
	}
}
