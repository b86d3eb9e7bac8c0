package libcyc

import (
	"github.com/curve-systems/gocyc/gocyc"
)

// Discrepancies returns every possible contribution to the discrepancy coming
// from one additional branch point on the quotient curve, for a cyclic group
// of order r. There is one entry per divisor i of r in [2, r] -- the possible
// stabilizer orders -- with value (i-1)*r/i, ascending in i. Returns nil for
// r < 2.
func Discrepancies(r int) []int {
	if r < 2 {
		return nil
	}
	divs := Divisors(r)
	disc := make([]int, 0, len(divs)-1)
	for _, i := range divs {
		if i < 2 {
			continue
		}
		disc = append(disc, (i-1)*r/i)
	}
	return disc
}

// AllDiscrepancies enumerates every way of writing the budget Q as a
// non-negative integer combination of the given discrepancy values.
// Each returned combination c satisfies sum(c[j]*disc[j]) == Q.
// The coefficient of disc[0] descends across the returned combinations.
func AllDiscrepancies(disc []int, Q int) []gocyc.Combination {
	return sumsTo(disc, Q, 0)
}

// sumsTo solves the budget over positions start..len(disc)-1.
func sumsTo(disc []int, Q, start int) []gocyc.Combination {
	remain := len(disc) - start
	if Q == 0 {
		return []gocyc.Combination{make(gocyc.Combination, remain)}
	}
	if remain <= 0 {
		return nil
	}

	var combos []gocyc.Combination
	cur := disc[start]
	for c := Q / cur; c >= 0; c-- {
		for _, tail := range sumsTo(disc, Q-c*cur, start+1) {
			combo := make(gocyc.Combination, 0, remain)
			combo = append(combo, c)
			combo = append(combo, tail...)
			combos = append(combos, combo)
		}
	}
	return combos
}
