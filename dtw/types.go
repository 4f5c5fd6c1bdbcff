package dtw

// Coord is one sample correspondence on the warping path.
// I indexes the first sequence and J the second; both are 0-based.
type Coord struct {
	I, J int
}

// Path is an ordered warping path from (0,0) to (n-1,m-1).
// Every step advances I, J, or both by exactly one.
type Path []Coord

// Direction names a predecessor move taken while backtracking.
//
//   - Diagonal — (i-1, j-1): both samples advance, a one-to-one match.
//   - Up       — (i-1, j):   only the first sequence advances.
//   - Left     — (i, j-1):   only the second sequence advances.
type Direction int

const (
	// Diagonal moves to (i-1, j-1).
	Diagonal Direction = iota
	// Up moves to (i-1, j).
	Up
	// Left moves to (i, j-1).
	Left
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// TieBreakOrder is the preference Backtrack applies when predecessor cells
// hold exactly equal costs: earlier entries win.
var TieBreakOrder = [3]Direction{Diagonal, Up, Left}

// Steps returns the direction of every move along p, in path order.
// A path of k points yields k-1 directions.
func (p Path) Steps() []Direction {
	if len(p) < 2 {
		return nil
	}
	out := make([]Direction, 0, len(p)-1)
	for k := 1; k < len(p); k++ {
		di, dj := p[k].I-p[k-1].I, p[k].J-p[k-1].J
		switch {
		case di == 1 && dj == 1:
			out = append(out, Diagonal)
		case di == 1:
			out = append(out, Up)
		default:
			out = append(out, Left)
		}
	}

	return out
}

// Result bundles one alignment: the cost matrix, the optimal path and the
// score read from the matrix's bottom-right cell. A Result is a snapshot and
// is never modified after Align returns it.
type Result struct {
	Matrix *CostMatrix
	Path   Path
	Score  float64
}
