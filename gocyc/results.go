package gocyc

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Results holds every admissible action found by a search: for each valid
// group order r, for each valid quotient genus h, the discrepancy list used
// and all surviving combinations of additional branch points.
//
// Iteration order is canonical regardless of insertion order: orders ascend
// and quotient genera descend, which is the order the report renderers expect.
// A Results is built once by the search driver and read-only afterward.
type Results struct {
	Genus  int        // genus of the curve above
	Branch BranchSpec // prescribed branching of the quotient map

	byOrder *redblacktree.Tree // int (r, ascending) -> *OrderResults
}

// OrderResults collects everything found for one group order.
type OrderResults struct {
	Order int   // the group order r
	Disc  []int // discrepancy list the combinations are aligned with

	byGenus *redblacktree.Tree // int (h, descending) -> *GenusGroup
}

// GenusGroup collects the combinations found for one (order, quotient genus).
type GenusGroup struct {
	QuotientGenus int
	Combos        []Combination
}

func NewResults(g int, branch BranchSpec) *Results {
	return &Results{
		Genus:  g,
		Branch: append(BranchSpec{}, branch...),
		byOrder: redblacktree.NewWith(func(A, B interface{}) int {
			return A.(int) - B.(int)
		}),
	}
}

// Insert records one surviving (r, h, combination) triple.
// Used by the search driver while a run is in flight.
func (rs *Results) Insert(r, h int, disc []int, combo Combination) {
	var or *OrderResults
	if v, found := rs.byOrder.Get(r); found {
		or = v.(*OrderResults)
	} else {
		or = &OrderResults{
			Order: r,
			Disc:  disc,
			byGenus: redblacktree.NewWith(func(A, B interface{}) int {
				return B.(int) - A.(int) // descending
			}),
		}
		rs.byOrder.Put(r, or)
	}

	var gg *GenusGroup
	if v, found := or.byGenus.Get(h); found {
		gg = v.(*GenusGroup)
	} else {
		gg = &GenusGroup{QuotientGenus: h}
		or.byGenus.Put(h, gg)
	}
	gg.Combos = append(gg.Combos, combo)
}

// NumOrders returns the number of valid group orders found.
func (rs *Results) NumOrders() int {
	return rs.byOrder.Size()
}

// Orders returns the valid group orders in ascending order.
func (rs *Results) Orders() []int {
	orders := make([]int, 0, rs.byOrder.Size())
	itr := rs.byOrder.Iterator()
	for itr.Next() {
		orders = append(orders, itr.Key().(int))
	}
	return orders
}

// Order returns the results for a single group order, if present.
func (rs *Results) Order(r int) (*OrderResults, bool) {
	if v, found := rs.byOrder.Get(r); found {
		return v.(*OrderResults), true
	}
	return nil, false
}

// Walk visits each order's results in ascending order of r.
func (rs *Results) Walk(visit func(or *OrderResults)) {
	itr := rs.byOrder.Iterator()
	for itr.Next() {
		visit(itr.Value().(*OrderResults))
	}
}

// NumGenera returns the number of valid quotient genera for this order.
func (or *OrderResults) NumGenera() int {
	return or.byGenus.Size()
}

// NumCombos returns the total number of combinations across all genera.
func (or *OrderResults) NumCombos() int {
	n := 0
	itr := or.byGenus.Iterator()
	for itr.Next() {
		n += len(itr.Value().(*GenusGroup).Combos)
	}
	return n
}

// Genus returns the group for a single quotient genus, if present.
func (or *OrderResults) Genus(h int) (*GenusGroup, bool) {
	if v, found := or.byGenus.Get(h); found {
		return v.(*GenusGroup), true
	}
	return nil, false
}

// Walk visits each genus group in descending order of h.
func (or *OrderResults) Walk(visit func(gg *GenusGroup)) {
	itr := or.byGenus.Iterator()
	for itr.Next() {
		visit(itr.Value().(*GenusGroup))
	}
}
