package dtw

import (
	"fmt"
	"math"
)

// costErrorf wraps an underlying error with CostMatrix method context.
func costErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CostMatrix.%s(%d,%d): %w", method, row, col, err)
}

// CostMatrix is the dense (n+1)×(m+1) cumulative cost grid of one alignment.
// Cells are stored row-major in a flat slice. Row 0 and column 0 are +Inf
// sentinels except the origin (0,0), which is 0.
//
// A CostMatrix is read-only once built: all accessors return copies.
type CostMatrix struct {
	r, c int       // number of rows (n+1) and columns (m+1)
	data []float64 // flat backing storage, length == r*c
}

// newCostMatrix allocates an r×c grid with the DTW boundary already set:
// every cell +Inf except the origin.
// Complexity: O(r*c) time and memory.
func newCostMatrix(rows, cols int) *CostMatrix {
	data := make([]float64, rows*cols)
	inf := math.Inf(1)
	for k := 1; k < len(data); k++ {
		data[k] = inf
	}

	return &CostMatrix{r: rows, c: cols, data: data}
}

// NewCostMatrix copies a caller-supplied grid into a CostMatrix, for example
// to replay a stored matrix through Backtrack. The grid must be non-empty and
// rectangular; its contents are validated later by Backtrack.
func NewCostMatrix(rows [][]float64) (*CostMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidMatrix)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidMatrix, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return &CostMatrix{r: len(rows), c: cols, data: data}, nil
}

// Rows returns the number of rows, n+1.
func (m *CostMatrix) Rows() int {
	return m.r
}

// Cols returns the number of columns, m+1.
func (m *CostMatrix) Cols() int {
	return m.c
}

// At returns the cumulative cost at cell (row, col).
// Cell indices are 1-based with respect to samples: cell (i, j) covers the
// first i samples of A and the first j samples of B.
func (m *CostMatrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, costErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
func (m *CostMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, costErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Block returns a copy of the top-left sub-block of at most rows×cols cells.
// Requests larger than the matrix are clamped; non-positive sizes yield nil.
// Presentation code uses it for tabular previews of large matrices.
func (m *CostMatrix) Block(rows, cols int) [][]float64 {
	rows, cols = min(rows, m.r), min(cols, m.c)
	if rows <= 0 || cols <= 0 {
		return nil
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		copy(out[i], m.data[i*m.c:i*m.c+cols])
	}

	return out
}

// Score returns the bottom-right cell, the total minimal cumulative cost.
// A zero-value matrix has no score and yields +Inf.
func (m *CostMatrix) Score() float64 {
	if len(m.data) == 0 {
		return math.Inf(1)
	}

	return m.data[len(m.data)-1]
}

// String implements fmt.Stringer for debugging; it prints the shape only.
func (m *CostMatrix) String() string {
	return fmt.Sprintf("CostMatrix(%dx%d)", m.r, m.c)
}

// at is the unchecked accessor used by the hot loops.
func (m *CostMatrix) at(i, j int) float64 {
	return m.data[i*m.c+j]
}

// validate checks the invariants Backtrack relies on.
// Order: nil/shape -> origin -> borders -> interior.
func (m *CostMatrix) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix", ErrInvalidMatrix)
	}
	if m.r < 2 || m.c < 2 || len(m.data) != m.r*m.c {
		return fmt.Errorf("%w: shape %dx%d, need at least 2x2", ErrInvalidMatrix, m.r, m.c)
	}
	if m.data[0] != 0 {
		return fmt.Errorf("%w: origin is %v, want 0", ErrInvalidMatrix, m.data[0])
	}
	for j := 1; j < m.c; j++ {
		if !math.IsInf(m.at(0, j), 1) {
			return fmt.Errorf("%w: border cell (0,%d) is not +Inf", ErrInvalidMatrix, j)
		}
	}
	for i := 1; i < m.r; i++ {
		if !math.IsInf(m.at(i, 0), 1) {
			return fmt.Errorf("%w: border cell (%d,0) is not +Inf", ErrInvalidMatrix, i)
		}
		for j := 1; j < m.c; j++ {
			if v := m.at(i, j); math.IsNaN(v) || v < 0 {
				return fmt.Errorf("%w: cell (%d,%d) = %v", ErrInvalidMatrix, i, j, v)
			}
		}
	}

	return nil
}
