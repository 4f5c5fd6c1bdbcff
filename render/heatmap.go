package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/gaitwarp/dtw"
)

// viridis is the color ramp shared by the HTML heatmap views.
var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// HeatmapOptions configures Heatmap.
//
//   - Title   — chart title; the subtitle always reports shape and score.
//   - MaxAxis — maximum cells drawn per axis. Larger matrices are sampled with
//     a uniform stride so the page stays responsive.
type HeatmapOptions struct {
	Title   string
	MaxAxis int
}

// DefaultHeatmapOptions returns a 200-cells-per-axis heatmap.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{Title: "DTW Cost Matrix & Optimal Path", MaxAxis: 200}
}

// Heatmap writes an interactive HTML heatmap of the matrix interior
// (rows and columns from 1) with the warping path overlaid.
// The x axis is the patient sample, the y axis the reference sample.
func Heatmap(w io.Writer, res *dtw.Result, o HeatmapOptions) error {
	if res == nil || res.Matrix == nil {
		return ErrNilResult
	}
	if o.MaxAxis <= 0 {
		return fmt.Errorf("%w: heatmap max axis %d", ErrBadOption, o.MaxAxis)
	}
	n, m := res.Matrix.Rows()-1, res.Matrix.Cols()-1
	if n < 1 || m < 1 {
		return fmt.Errorf("%w: empty matrix", ErrNilResult)
	}
	si, sj := stride(n, o.MaxAxis), stride(m, o.MaxAxis)

	xLabels := axisLabels(m, sj)
	yLabels := axisLabels(n, si)
	cells := make([]opts.HeatMapData, 0, len(xLabels)*len(yLabels))
	var maxCost float64
	for y := range yLabels {
		row, err := res.Matrix.Row(y*si + 1)
		if err != nil {
			return err
		}
		for x := range xLabels {
			v := row[x*sj+1]
			maxCost = max(maxCost, v)
			cells = append(cells, opts.HeatMapData{Value: [3]interface{}{x, y, v}})
		}
	}
	if maxCost == 0 {
		maxCost = 1
	}

	trace := make([]opts.ScatterData, 0, len(res.Path))
	for _, c := range res.Path {
		trace = append(trace, opts.ScatterData{Value: []interface{}{c.J / sj, c.I / si}})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: fmt.Sprintf("matrix=%dx%d path=%d score=%.2f stride=%d/%d", n+1, m+1, len(res.Path), res.Score, si, sj),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "patient sample", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "reference sample", NameLocation: "middle", NameGap: 35, Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCost),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("cost", cells)

	path := charts.NewScatter()
	path.AddSeries("path", trace,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ff5252"}),
	)
	hm.Overlap(path)

	return hm.Render(w)
}

// stride returns the sampling step that keeps n cells within limit.
func stride(n, limit int) int {
	if n <= limit {
		return 1
	}

	return (n + limit - 1) / limit
}

// axisLabels names every sampled index along one axis.
func axisLabels(n, step int) []string {
	out := make([]string, 0, (n+step-1)/step)
	for k := 0; k < n; k += step {
		out = append(out, strconv.Itoa(k))
	}

	return out
}
