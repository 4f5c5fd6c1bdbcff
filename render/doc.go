// Package render turns a dtw.Result into artifacts for people: a text table of
// the cost matrix, an HTML heatmap, PNG plots and progressive path frames.
//
// Renderers only read the Result. They never recompute the alignment and
// never modify the matrix or the path.
//
//	res, _ := dtw.Align(ref, patient)
//	_ = render.Table(os.Stdout, res, render.DefaultTableLimit)
//	_ = render.Heatmap(f, res, "slow walker")
//	_ = render.AlignmentPlot("align.png", ref, patient, res.Path, render.DefaultPlotOptions())
package render
