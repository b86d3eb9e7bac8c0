package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/plan-systems/klog"

	"github.com/curve-systems/gocyc/gocyc"
	"github.com/curve-systems/gocyc/libcyc"
	"github.com/curve-systems/gocyc/libcyc/report"
)

var (
	latexLong  = flag.Bool("latex", false, "print the report as a LaTeX table instead of plain text")
	latexShort = flag.Bool("l", false, "shorthand for -latex")
	branchExpr = flag.String("expr", "", `branch pattern expression, e.g. "3^2 5" for three points of ramification index 2 plus one of index 5`)
)

func usage() {
	fmt.Fprint(os.Stderr, `usage: gocyc [-l|-latex] [-expr <pattern>] <genus> [branch_counts...]

Computes all possible actions of a non-trivial cyclic group on a curve of the
given genus. The i-th branch count is the number of points on the quotient
curve with i+1 points in the counterimage.

`)
	flag.PrintDefaults()
}

func fail(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "gocyc: %v\n\n", err)
	}
	usage()
	klog.Flush()
	os.Exit(2)
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		fail(nil)
	}
	genus, err := strconv.Atoi(flag.Arg(0))
	if err != nil || genus < 0 {
		fail(fmt.Errorf("genus must be a non-negative integer, got %q", flag.Arg(0)))
	}

	var branch gocyc.BranchSpec
	if *branchExpr != "" {
		if flag.NArg() > 1 {
			fail(fmt.Errorf("-expr and positional branch counts are mutually exclusive"))
		}
		branch, err = libcyc.ParseBranchExpr(*branchExpr)
		if err != nil {
			fail(err)
		}
	} else {
		for _, arg := range flag.Args()[1:] {
			f, err := strconv.Atoi(arg)
			if err != nil || f < 0 {
				fail(fmt.Errorf("branch counts must be non-negative integers, got %q", arg))
			}
			branch = append(branch, f)
		}
	}

	results, err := libcyc.Run(genus, branch)
	if err != nil {
		fail(err)
	}

	if *latexLong || *latexShort {
		fmt.Println(report.ToLaTeX(results))
	} else {
		fmt.Println(report.ToText(results))
	}
	klog.Flush()
}
