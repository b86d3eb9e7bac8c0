package gocyc

// BranchSpec prescribes the branching of the quotient map of a cyclic action.
// Entry i is the number of points on the quotient curve whose counterimage
// consists of exactly i+1 points. All entries are non-negative; a nil or empty
// spec means the action is unramified at every prescribed point.
type BranchSpec []int

// TotalPoints returns the total number of prescribed branch points.
func (br BranchSpec) TotalPoints() int {
	n := 0
	for _, f := range br {
		n += f
	}
	return n
}

// LastNonZero returns the largest index with a non-zero count, or -1.
func (br BranchSpec) LastNonZero() int {
	last := -1
	for i, f := range br {
		if f != 0 {
			last = i
		}
	}
	return last
}

// Combination counts additional branch points on the quotient curve.
// It is aligned with a discrepancy list for some group order r: entry j is the
// number of additional branch points contributing discrepancy disc[j] each.
type Combination []int

// SumWith returns the total discrepancy this combination contributes,
// given the discrepancy list it is aligned with.
func (c Combination) SumWith(disc []int) int {
	total := 0
	for j, count := range c {
		total += count * disc[j]
	}
	return total
}
