package libcyc

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/curve-systems/gocyc/gocyc"
)

// BranchExpr is a compact branch pattern: whitespace- or comma-separated
// terms of the form "count^ram" (count points of ramification index ram) or a
// bare "ram" (a single point). "3^2 5" prescribes three points whose
// counterimage has 2 points plus one point whose counterimage has 5.
type BranchExpr struct {
	Terms []*BranchTerm `parser:"(@@ (\",\"? @@)*)?"`
}

type BranchTerm struct {
	First int  `parser:"@Int"`
	Caret bool `parser:"(@\"^\""`
	Ram   int  `parser:"@Int)?"`
}

var parseBranchExpr = participle.MustBuild[BranchExpr]()

// ParseBranchExpr parses a branch pattern expression into a BranchSpec.
func ParseBranchExpr(expr string) (gocyc.BranchSpec, error) {
	ast, err := parseBranchExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrap(gocyc.ErrBadBranchExpr, err.Error())
	}

	var spec gocyc.BranchSpec
	for ti, term := range ast.Terms {
		count, ram := 1, term.First
		if term.Caret {
			count, ram = term.First, term.Ram
		}
		if count < 1 {
			return nil, errors.Wrapf(gocyc.ErrBadBranchExpr,
				"term #%d: point count must be positive", ti+1)
		}
		if ram < 1 {
			return nil, errors.Wrapf(gocyc.ErrBadBranchExpr,
				"term #%d: counterimage size must be positive", ti+1)
		}
		for len(spec) < ram {
			spec = append(spec, 0)
		}
		spec[ram-1] += count
	}
	return spec, nil
}
