package gocyc

import "errors"

// Errors
var (
	ErrInvalidInput  = errors.New("invalid genus or branch specification")
	ErrBadBranchExpr = errors.New("bad branch pattern expression")
)
