package libcyc

import "sort"

// GCD returns the greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
// Neither argument may be 0.
func LCM(a, b int) int {
	return a * b / GCD(a, b)
}

// Divisors returns the positive divisors of n in ascending order.
func Divisors(n int) []int {
	var divs []int
	for j := 1; j*j <= n; j++ {
		if n%j != 0 {
			continue
		}
		divs = append(divs, j)
		if j*j != n {
			divs = append(divs, n/j)
		}
	}
	sort.Ints(divs)
	return divs
}

// floorDiv is integer division rounding toward negative infinity.
// The genus bound h_num/h_den must floor, not truncate, when h_num < 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
