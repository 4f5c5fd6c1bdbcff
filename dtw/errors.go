package dtw

import "errors"

// Sentinel errors returned by the dtw package. Match them with errors.Is;
// returned errors may wrap them with positional context.
var (
	// ErrInvalidInput indicates an empty sequence, or a sample that is NaN or ±Inf.
	ErrInvalidInput = errors.New("dtw: invalid input sequence")

	// ErrInvalidMatrix indicates a cost matrix that is not an (n+1)×(m+1) grid
	// with a zero origin, +Inf borders and non-negative interior.
	ErrInvalidMatrix = errors.New("dtw: invalid cost matrix")

	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("dtw: index out of range")
)
