package render

import "errors"

var (
	// ErrNilResult indicates that a renderer received no alignment.
	ErrNilResult = errors.New("render: nil result")

	// ErrBadOption indicates a non-positive limit, step or stride.
	ErrBadOption = errors.New("render: invalid option")

	// ErrPathMismatch indicates a path that indexes outside the given sequences.
	ErrPathMismatch = errors.New("render: path does not match sequences")
)
