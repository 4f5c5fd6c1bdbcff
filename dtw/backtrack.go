package dtw

// Backtrack recovers the optimal warping path from a cost matrix built by
// Build (or supplied through NewCostMatrix).
//
// The walk starts at the bottom-right cell (n, m) and records the sample pair
// (i-1, j-1) for every visited cell, stopping after cell (1,1). The origin
// sentinel (0,0) is never recorded. The collected pairs are reversed, so the
// returned path runs from (0,0) to (n-1, m-1).
//
// Move selection:
//   - on row 1 the only valid move is Left, on column 1 the only valid move is Up;
//   - elsewhere the predecessor with the smallest cumulative cost wins, and
//     exact ties are resolved Diagonal > Up > Left (TieBreakOrder).
//
// Backtrack only reads the matrix. Identical matrices always produce
// identical paths.
//
// Errors:
//   - ErrInvalidMatrix if m is nil, smaller than 2×2, has a non-zero origin,
//     a finite border cell, or a NaN/negative interior cell.
//
// Complexity: O(n·m) for validation, O(n+m) for the walk.
func Backtrack(m *CostMatrix) (Path, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	i, j := m.r-1, m.c-1
	path := make(Path, 0, i+j-1)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		switch step(m, i, j) {
		case Diagonal:
			i--
			j--
		case Up:
			i--
		case Left:
			j--
		}
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// step picks the predecessor move out of cell (i, j), i, j ≥ 1 and not both 1.
func step(m *CostMatrix, i, j int) Direction {
	switch {
	case i == 1:
		return Left
	case j == 1:
		return Up
	}
	diag, up, left := m.at(i-1, j-1), m.at(i-1, j), m.at(i, j-1)
	if diag <= up && diag <= left {
		return Diagonal
	}
	if up <= left {
		return Up
	}

	return Left
}
