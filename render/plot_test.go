package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaitwarp/dtw"
	"github.com/katalvlaran/gaitwarp/render"
)

func sine(n int, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = scale * math.Sin(4*math.Pi*float64(i)/float64(n-1))
	}

	return out
}

func TestAlignmentPlot(t *testing.T) {
	a, b := sine(50, 1), sine(70, 0.8)
	res := mustAlign(t, a, b)

	file := filepath.Join(t.TempDir(), "align.png")
	require.NoError(t, render.AlignmentPlot(file, a, b, res.Path, render.DefaultPlotOptions()))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestAlignmentPlot_Errors(t *testing.T) {
	a, b := sine(10, 1), sine(12, 1)
	res := mustAlign(t, a, b)
	file := filepath.Join(t.TempDir(), "align.png")

	o := render.DefaultPlotOptions()
	o.ConnectorEvery = 0
	assert.ErrorIs(t, render.AlignmentPlot(file, a, b, res.Path, o), render.ErrBadOption)

	assert.ErrorIs(t, render.AlignmentPlot(file, a[:5], b, res.Path, render.DefaultPlotOptions()), render.ErrPathMismatch)
	assert.ErrorIs(t, render.AlignmentPlot(file, a, b, nil, render.DefaultPlotOptions()), render.ErrPathMismatch)
}

func TestCostPlot(t *testing.T) {
	res := mustAlign(t, sine(30, 1), sine(40, 1))
	file := filepath.Join(t.TempDir(), "cost.png")
	require.NoError(t, render.CostPlot(file, res, render.DefaultPlotOptions()))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.ErrorIs(t, render.CostPlot(file, nil, render.DefaultPlotOptions()), render.ErrNilResult)
}

func TestHeatmap(t *testing.T) {
	res := mustAlign(t, sine(30, 1), sine(40, 0.9))

	var buf bytes.Buffer
	o := render.DefaultHeatmapOptions()
	o.Title = "slow walker"
	require.NoError(t, render.Heatmap(&buf, res, o))
	out := buf.String()
	assert.Contains(t, out, "slow walker")
	assert.Contains(t, out, "heatmap")
	assert.Contains(t, out, "path")
}

func TestHeatmap_Strided(t *testing.T) {
	res := mustAlign(t, sine(120, 1), sine(90, 1))

	var buf bytes.Buffer
	require.NoError(t, render.Heatmap(&buf, res, render.HeatmapOptions{Title: "big", MaxAxis: 25}))
	assert.Contains(t, buf.String(), "stride=5/4")
}

func TestHeatmap_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Heatmap(&buf, nil, render.DefaultHeatmapOptions()), render.ErrNilResult)
	assert.ErrorIs(t, render.Heatmap(&buf, &dtw.Result{Matrix: &dtw.CostMatrix{}}, render.DefaultHeatmapOptions()), render.ErrNilResult)

	res := mustAlign(t, []float64{1}, []float64{2})
	assert.ErrorIs(t, render.Heatmap(&buf, res, render.HeatmapOptions{MaxAxis: 0}), render.ErrBadOption)
}
