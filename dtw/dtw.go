package dtw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DTW — Dynamic Time Warping
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m:
//     cost    = |a[i-1] - b[j-1]|
//     D[i][j] = cost + min(D[i-1][j-1], D[i-1][j], D[i][j-1])
//  4. score = D[n][m].
//  5. Backtrack from (n,m) to (1,1) following the predecessor with minimal
//     D-value, ties resolved Diagonal > Up > Left.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)

// Build fills the cumulative cost matrix for sequences a and b.
//
// The result has len(a)+1 rows and len(b)+1 columns. Neither input is
// retained or modified.
//
// Errors:
//   - ErrInvalidInput if either sequence is empty or holds a NaN/±Inf sample,
//     or if a sample distance or the total cost overflows float64.
func Build(a, b []float64) (*CostMatrix, error) {
	if err := checkSequence("a", a); err != nil {
		return nil, err
	}
	if err := checkSequence("b", b); err != nil {
		return nil, err
	}
	// the widest pair bounds every |a[i]-b[j]|
	if spread := max(floats.Max(a)-floats.Min(b), floats.Max(b)-floats.Min(a)); math.IsInf(spread, 1) {
		return nil, fmt.Errorf("%w: sample distance overflows", ErrInvalidInput)
	}

	n, m := len(a), len(b)
	cm := newCostMatrix(n+1, m+1)
	cols := m + 1
	d := cm.data

	for i := 1; i <= n; i++ {
		ai := a[i-1]
		prev := (i - 1) * cols // start of row i-1
		curr := i * cols       // start of row i
		for j := 1; j <= m; j++ {
			cost := math.Abs(ai - b[j-1])
			d[curr+j] = cost + min3(d[prev+j-1], d[prev+j], d[curr+j-1])
		}
	}
	if math.IsInf(cm.Score(), 1) {
		return nil, fmt.Errorf("%w: cumulative cost overflows", ErrInvalidInput)
	}

	return cm, nil
}

// Align runs Build and Backtrack and returns the combined Result.
// The score is read once from the finished matrix.
//
// Example:
//
//	res, err := Align([]float64{0, 1}, []float64{0, 1, 1})
//	// res.Score == 0, len(res.Path) == 3
func Align(a, b []float64) (*Result, error) {
	cm, err := Build(a, b)
	if err != nil {
		return nil, err
	}
	path, err := Backtrack(cm)
	if err != nil {
		return nil, err
	}

	return &Result{Matrix: cm, Path: path, Score: cm.Score()}, nil
}

// checkSequence rejects empty sequences and non-finite samples.
func checkSequence(name string, s []float64) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: sequence %s is empty", ErrInvalidInput, name)
	}
	for k, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: sequence %s sample %d is %v", ErrInvalidInput, name, k, v)
		}
	}

	return nil
}

// min3 returns the minimum of three float64 values.
// +Inf operands lose to any finite operand.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
