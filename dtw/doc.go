// Package dtw computes Dynamic Time Warping (DTW) alignments between two
// scalar time series: the full cumulative cost matrix, the optimal warping
// path and the total alignment score.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It’s widely used in:
//	  • Gait and motion analysis (healthy vs. patient sensor traces)
//	  • Speech recognition & audio alignment
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - dense (n+1)×(m+1) cost matrix kept for scoring and visualization
//   - deterministic backtracking with a documented tie-break policy
//   - explicit sentinel errors, never partial results
//   - no package state: every call owns its matrix and path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gaitwarp/dtw"
//
//	res, err := dtw.Align(reference, patient)
//	if err != nil {
//	  // handle ErrInvalidInput
//	}
//	fmt.Printf("Score: %.2f, path length %d\n", res.Score, len(res.Path))
//
// The two stages are also exposed separately:
//
//	m, err := dtw.Build(a, b)    // cumulative cost matrix
//	path, err := dtw.Backtrack(m) // optimal warping path
//
// Tie-break policy:
//
//	When two or more predecessor cells hold exactly the same cumulative cost,
//	Backtrack prefers Diagonal over Up over Left (see TieBreakOrder). The path
//	is therefore biased toward one-to-one matches and is reproducible.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M), one flat allocation for the matrix plus O(N+M) for the path
package dtw
