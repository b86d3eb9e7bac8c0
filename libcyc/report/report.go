// Package report renders the results of a cyclic action search as plain text
// or as a LaTeX table. It only consumes the results structure; it never
// recomputes anything.
package report

import (
	"fmt"
	"strings"

	"github.com/curve-systems/gocyc/gocyc"
)

// ToText renders a plain-text report: a header describing the genus and the
// prescribed branching, then one line per surviving combination, grouped by
// ascending group order and descending quotient genus. Each combination entry
// prints as a parenthesized run of '*' (one per counterimage point), raised to
// the point count when above 1.
func ToText(rs *gocyc.Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Faithful actions of non-trivial cyclic groups on a curve of genus %d", rs.Genus)
	if rs.Branch.TotalPoints() != 0 {
		b.WriteString(" with:\n")
		last := rs.Branch.LastNonZero()
		for i, f := range rs.Branch {
			if f == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %d points with counterimage with %d points", f, i+1)
			if i != last {
				b.WriteString(",\n")
			}
		}
	}
	b.WriteString(".\n\n")

	lastOrder := rs.NumOrders() - 1
	rIdx := 0
	rs.Walk(func(or *gocyc.OrderResults) {
		or.Walk(func(gg *gocyc.GenusGroup) {
			for _, combo := range gg.Combos {
				fmt.Fprintf(&b, "Z_%d, h = %d: %s\n",
					or.Order, gg.QuotientGenus, comboString(or, combo, "*"))
			}
		})
		if rIdx != lastOrder {
			b.WriteString("\n")
		}
		rIdx++
	})

	return b.String()
}

// ToLaTeX renders the results as a booktabs table with three columns (group
// order, quotient genus, additional ramification), merging repeated order and
// genus cells with \multirow and separating groups with \cmidrule / \midrule.
func ToLaTeX(rs *gocyc.Results) string {
	var b strings.Builder

	b.WriteString(`\begin{table}
  \centering
  \begin{tabular}{lll}
    \toprule
    $r$ & $h$ & Additional ramification\\
    \midrule[1pt]
`)

	lastOrder := rs.NumOrders() - 1
	rIdx := 0
	rs.Walk(func(or *gocyc.OrderResults) {
		sizeR := or.NumCombos()
		lastGenus := or.NumGenera() - 1
		hIdx := 0
		or.Walk(func(gg *gocyc.GenusGroup) {
			for xIdx, combo := range gg.Combos {
				b.WriteString("    ")
				if hIdx == 0 && xIdx == 0 {
					fmt.Fprintf(&b, "\\multirow{%d}{*}{$%d$} ", sizeR, or.Order)
				}
				b.WriteString("& ")
				if xIdx == 0 {
					fmt.Fprintf(&b, "\\multirow{%d}{*}{$%d$} ", len(gg.Combos), gg.QuotientGenus)
				}
				b.WriteString("& ")
				fmt.Fprintf(&b, "$%s$\\\\\n", comboString(or, combo, "\\bullet"))
			}
			if hIdx != lastGenus {
				b.WriteString("    \\cmidrule{2-3}\n")
			}
			hIdx++
		})
		if rIdx != lastOrder {
			b.WriteString("    \\midrule\n")
		}
		rIdx++
	})

	caption := fmt.Sprintf("Cyclic groups acting on a curve of genus $%d$", rs.Genus)
	if rs.Branch.TotalPoints() != 0 {
		caption += " with"
		last := rs.Branch.LastNonZero()
		for i, f := range rs.Branch {
			if f == 0 {
				continue
			}
			caption += fmt.Sprintf(" $%d$ points with counterimage consisting of $%d$ points", f, i+1)
			if i != last {
				caption += ","
			}
		}
	}
	caption += "."

	fmt.Fprintf(&b, `    \bottomrule
  \end{tabular}
  \caption{%s}
  \label{tab:cyclic_group_actions}
\end{table}
`, caption)

	return b.String()
}

// comboString renders one combination: each entry with count > 0 becomes a
// parenthesized run of marks, one mark per counterimage point (the group
// order minus the entry's discrepancy), raised to the count when above 1.
func comboString(or *gocyc.OrderResults, combo gocyc.Combination, mark string) string {
	var b strings.Builder
	for j, count := range combo {
		counterImages := or.Order - or.Disc[j]
		marks := strings.Repeat(mark, counterImages)
		if count == 1 {
			fmt.Fprintf(&b, "(%s)", marks)
		} else if count > 1 {
			fmt.Fprintf(&b, "(%s)^%d", marks, count)
		}
	}
	return b.String()
}
