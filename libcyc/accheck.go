package libcyc

import (
	"sort"

	"github.com/curve-systems/gocyc/gocyc"
)

// ACCheck tests a consequence of the abelian cover condition: if a cyclic
// cover exists with points P_1..P_k whose counterimages are stabilized by
// subgroups of order a_1..a_k, then there is a line bundle L on the quotient
// and exponents n_1..n_k with gcd(n_i, a_i) = 1 such that
// rL = sum n_i * r * P_i / a_i. ACCheck reports whether that equation has a
// solution at the level of degrees.
//
// This is a necessary condition only: a true result does not guarantee the
// action is geometrically realizable.
//
// branch is the prescribed branching, combo the additional branch points
// aligned with disc = Discrepancies(r). Points with trivial stabilizer
// (stabilizer index r) do not enter the degree equation.
func ACCheck(r int, branch gocyc.BranchSpec, disc []int, combo gocyc.Combination) bool {
	var a []int
	for idx, f := range branch {
		if idx+1 == r {
			continue
		}
		for k := 0; k < f; k++ {
			a = append(a, r/(idx+1))
		}
	}
	for idx, f := range combo {
		if r-disc[idx] == r {
			continue
		}
		for k := 0; k < f; k++ {
			a = append(a, r/(r-disc[idx]))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(a)))
	return degreeCheck(r, a, 0, 0)
}

// degreeCheck searches depth-first for exponents solving the degree equation
// mod r. The first exponent can always be fixed to 1 since some automorphism
// of C_r sends n_1 to 1.
func degreeCheck(r int, a []int, start, total int) bool {
	if start >= len(a) {
		return total%r == 0
	}
	if start == 0 {
		return degreeCheck(r, a, 1, r/a[0])
	}
	for n := 1; n < a[start]; n++ {
		if GCD(n, a[start]) != 1 {
			continue
		}
		if degreeCheck(r, a, start+1, total+n*r/a[start]) {
			return true
		}
	}
	return false
}
