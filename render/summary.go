package render

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gaitwarp/dtw"
)

// Summary condenses one alignment into a few diagnostic numbers.
type Summary struct {
	Rows, Cols    int     // matrix shape
	PathLength    int     // number of correspondences
	Diagonal      int     // one-to-one steps
	Up            int     // steps advancing only the reference
	Left          int     // steps advancing only the patient
	DiagonalRatio float64 // Diagonal / (PathLength-1); 1 for a single-point path
	MeanCost      float64 // mean |a[i]-b[j]| over the path
	MaxCost       float64 // largest |a[i]-b[j]| on the path
	Score         float64
}

// Summarize reads res together with the sequences it was built from.
func Summarize(res *dtw.Result, a, b []float64) (Summary, error) {
	if res == nil || res.Matrix == nil {
		return Summary{}, ErrNilResult
	}
	if err := checkPath(res.Path, len(a), len(b)); err != nil {
		return Summary{}, err
	}

	costs := make([]float64, len(res.Path))
	for k, c := range res.Path {
		costs[k] = math.Abs(a[c.I] - b[c.J])
	}

	s := Summary{
		Rows:          res.Matrix.Rows(),
		Cols:          res.Matrix.Cols(),
		PathLength:    len(res.Path),
		DiagonalRatio: 1,
		MeanCost:      stat.Mean(costs, nil),
		MaxCost:       floats.Max(costs),
		Score:         res.Score,
	}
	for _, d := range res.Path.Steps() {
		switch d {
		case dtw.Diagonal:
			s.Diagonal++
		case dtw.Up:
			s.Up++
		case dtw.Left:
			s.Left++
		}
	}
	if steps := s.PathLength - 1; steps > 0 {
		s.DiagonalRatio = float64(s.Diagonal) / float64(steps)
	}

	return s, nil
}

// String formats the summary on one line for logs and terminals.
func (s Summary) String() string {
	return fmt.Sprintf("matrix=%dx%d path=%d diag=%d up=%d left=%d diag_ratio=%.2f mean_cost=%.3f max_cost=%.3f score=%.2f",
		s.Rows, s.Cols, s.PathLength, s.Diagonal, s.Up, s.Left, s.DiagonalRatio, s.MeanCost, s.MaxCost, s.Score)
}
