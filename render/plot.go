package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gaitwarp/dtw"
)

// PlotOptions configures the PNG plots.
//
//   - Offset         — vertical shift of the patient trace in AlignmentPlot.
//   - ConnectorEvery — draw one correspondence line per this many path points.
//   - Width, Height  — canvas size.
type PlotOptions struct {
	Offset         float64
	ConnectorEvery int
	Width, Height  vg.Length
}

// DefaultPlotOptions mirrors the diagnostic layout: offset 3, every 5th
// correspondence, 8×4 inches.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Offset: 3, ConnectorEvery: 5, Width: 8 * vg.Inch, Height: 4 * vg.Inch}
}

var (
	healthyColor = color.RGBA{G: 128, A: 255}
	patientColor = color.RGBA{R: 255, G: 165, A: 255}
	linkColor    = color.RGBA{R: 128, G: 128, B: 128, A: 90}
	pathColor    = color.RGBA{R: 255, A: 255}
)

// AlignmentPlot draws both traces, the patient shifted up by Offset, linked by
// dashed lines for every ConnectorEvery-th path point, and saves it to file.
// The image format follows the file extension (png, svg, pdf...).
func AlignmentPlot(file string, ref, patient []float64, path dtw.Path, o PlotOptions) error {
	if o.ConnectorEvery <= 0 {
		return fmt.Errorf("%w: connector stride %d", ErrBadOption, o.ConnectorEvery)
	}
	if err := checkPath(path, len(ref), len(patient)); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Biomedical Signal Alignment"
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = "Amplitude"

	for k := 0; k < len(path); k += o.ConnectorEvery {
		c := path[k]
		link, err := plotter.NewLine(plotter.XYs{
			{X: float64(c.I), Y: ref[c.I]},
			{X: float64(c.J), Y: patient[c.J] + o.Offset},
		})
		if err != nil {
			return fmt.Errorf("render: connector %d: %w", k, err)
		}
		link.Color = linkColor
		link.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(link)
	}

	refLine, err := plotter.NewLine(series(ref, 0))
	if err != nil {
		return fmt.Errorf("render: reference line: %w", err)
	}
	refLine.Color = healthyColor
	refLine.Width = vg.Points(1.5)

	patLine, err := plotter.NewLine(series(patient, o.Offset))
	if err != nil {
		return fmt.Errorf("render: patient line: %w", err)
	}
	patLine.Color = patientColor
	patLine.Width = vg.Points(1.5)

	p.Add(refLine, patLine)
	p.Legend.Add("Healthy", refLine)
	p.Legend.Add("Patient", patLine)
	p.Legend.Top = true

	return p.Save(o.Width, o.Height, file)
}

// CostPlot draws the matrix interior as a heatmap with the warping path on
// top and saves it to file. Columns are patient samples, rows reference
// samples, with the origin at the bottom left.
func CostPlot(file string, res *dtw.Result, o PlotOptions) error {
	if res == nil || res.Matrix == nil {
		return ErrNilResult
	}
	g, err := newCostGrid(res.Matrix)
	if err != nil {
		return err
	}
	if err := checkPath(res.Path, g.rows, g.cols); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "DTW Cost Matrix & Optimal Path"
	p.X.Label.Text = "Patient sample"
	p.Y.Label.Text = "Reference sample"

	hm := plotter.NewHeatMap(g, palette.Heat(64, 1))
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	xys := make(plotter.XYs, len(res.Path))
	for k, c := range res.Path {
		xys[k] = plotter.XY{X: float64(c.J), Y: float64(c.I)}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("render: path line: %w", err)
	}
	line.Color = pathColor
	line.Width = vg.Points(2)
	p.Add(line)

	// square canvas so cells keep their aspect
	return p.Save(o.Width, o.Width, file)
}

// costGrid adapts the matrix interior to plotter.GridXYZ.
type costGrid struct {
	rows, cols int
	z          [][]float64
}

func newCostGrid(m *dtw.CostMatrix) (*costGrid, error) {
	block := m.Block(m.Rows(), m.Cols())
	if len(block) < 2 || len(block[0]) < 2 {
		return nil, fmt.Errorf("%w: empty matrix", ErrNilResult)
	}
	z := make([][]float64, len(block)-1)
	for i := range z {
		z[i] = block[i+1][1:]
	}

	return &costGrid{rows: len(z), cols: len(z[0]), z: z}, nil
}

func (g *costGrid) Dims() (c, r int)   { return g.cols, g.rows }
func (g *costGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g *costGrid) X(c int) float64    { return float64(c) }
func (g *costGrid) Y(r int) float64    { return float64(r) }

// series converts samples to plot points shifted by offset.
func series(s []float64, offset float64) plotter.XYs {
	xys := make(plotter.XYs, len(s))
	for i, v := range s {
		xys[i] = plotter.XY{X: float64(i), Y: v + offset}
	}

	return xys
}

// checkPath verifies every path point indexes inside n×m samples.
func checkPath(path dtw.Path, n, m int) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrPathMismatch)
	}
	for _, c := range path {
		if c.I < 0 || c.I >= n || c.J < 0 || c.J >= m {
			return fmt.Errorf("%w: point %v outside %dx%d", ErrPathMismatch, c, n, m)
		}
	}

	return nil
}
