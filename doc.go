// Package gaitwarp compares a healthy reference gait signal with a patient
// recording using Dynamic Time Warping, and turns the alignment into
// something a clinician can read.
//
// 🚀 What is gaitwarp?
//
//	A small toolkit built around one deterministic DTW engine:
//		• Engine: full cost matrix, optimal warping path, alignment score
//		• Signals: synthetic gait cases and CSV recordings
//		• Rendering: text table, HTML heatmap, PNG plots, path frames
//		• CLI: align, cases, stress
//
// ✨ Why gaitwarp?
//
//   - Deterministic – same input, same matrix, same path
//   - Explicit errors – empty or non-finite input never yields a partial result
//   - Stateless engine – safe to run many alignments concurrently
//
// Packages:
//
//	dtw/             — cost matrix, backtracking, Align
//	signal/          — synthetic cases (match, slow, severe, tremor) and CSV input
//	render/          — table, heatmap, plots, frames, summary statistics
//	internal/config/ — YAML configuration and length guards
//	cmd/gaitwarp/    — command-line front end
//	examples/        — runnable scenarios
//
// Quick ASCII example:
//
//	healthy:  ╱╲╱╲
//	patient:  ╱ ╲ ╱ ╲   (same shape, slower pace)
//
//	DTW stretches the healthy trace along the patient's time axis, so a
//	slower but otherwise healthy gait scores close to zero.
//
//	go install github.com/katalvlaran/gaitwarp/cmd/gaitwarp@latest
package gaitwarp
