package libcyc

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/curve-systems/gocyc/gocyc"
)

// Run enumerates every admissible faithful action of a non-trivial cyclic
// group on a curve of genus g realizing the prescribed branching, subject to
// the Riemann-Hurwitz formula and the abelian cover degree condition.
//
// Candidate group orders are multiples of the lcm of the prescribed
// ramification indices, capped by Wiman's bound 2(2g+1) and, when the
// prescribed points allow, by the tighter orbifold bound. For each candidate
// order r and quotient genus h the residual discrepancy budget is partitioned
// over the possible per-point discrepancies, and each partition is kept only
// if it passes ACCheck. A surviving triple is therefore consistent with the
// Riemann-Hurwitz formula but not proven geometrically realizable.
//
// Run is pure: it holds no state across calls and performs no I/O beyond
// V-level logging.
func Run(g int, branch gocyc.BranchSpec) (*gocyc.Results, error) {
	if g < 0 {
		return nil, errors.Wrapf(gocyc.ErrInvalidInput, "genus %d", g)
	}
	for i, f := range branch {
		if f < 0 {
			return nil, errors.Wrapf(gocyc.ErrInvalidInput,
				"%d points with counterimage with %d points", f, i+1)
		}
	}

	lcm := 1 // lcm of the prescribed ramification indices
	N := 0   // total number of prescribed branch points
	c := 0   // total number of their counterimage points
	for i, f := range branch {
		if f != 0 {
			lcm = LCM(lcm, i+1)
			N += f
			c += (i + 1) * f
		}
	}
	cp := 2*g - 2 + c

	upperLimit := 2 * (2*g + 1) // Wiman
	if N > 2 {
		if b := floorDiv(cp, N-2); b < upperLimit {
			upperLimit = b
		}
	} else if N == 2 {
		if b := 2 * cp; b < upperLimit {
			upperLimit = b
		}
	}

	first := lcm
	if first < 2 {
		first = 2
	}
	klog.V(2).Infof("genus %d: scanning orders %d..%d in steps of %d",
		g, first, upperLimit, lcm)

	results := gocyc.NewResults(g, branch)
	for r := first; r <= upperLimit; r += lcm {
		disc := Discrepancies(r)
		hDen := 2 * r
		hNum := (2-N)*r + cp

		kept, tried := 0, 0
		for h := floorDiv(hNum, hDen); h >= 0; h-- {
			Q := hNum - hDen*h
			for _, combo := range AllDiscrepancies(disc, Q) {
				tried++
				if !ACCheck(r, branch, disc, combo) {
					continue
				}
				results.Insert(r, h, disc, combo)
				kept++
			}
		}
		klog.V(2).Infof("order %d: kept %d of %d combinations", r, kept, tried)
	}

	return results, nil
}
