package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaitwarp/dtw"
)

func TestCostMatrix_AtOutOfRange(t *testing.T) {
	m, err := dtw.Build([]float64{1, 2}, []float64{3})
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, err := m.At(rc[0], rc[1])
		assert.ErrorIs(t, err, dtw.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
	_, err = m.Row(3)
	assert.ErrorIs(t, err, dtw.ErrOutOfRange)
}

func TestCostMatrix_RowIsCopy(t *testing.T) {
	m, err := dtw.Build([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(row[0], 1))
	row[1] = -100

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "mutating a returned row must not touch the matrix")
}

func TestCostMatrix_BlockClamps(t *testing.T) {
	m, err := dtw.Build([]float64{1, 2, 3}, []float64{1, 2})
	require.NoError(t, err)

	b := m.Block(16, 16)
	require.Len(t, b, 4)
	assert.Len(t, b[0], 3)

	b = m.Block(2, 1)
	require.Len(t, b, 2)
	assert.Equal(t, []float64{0}, b[0])

	assert.Nil(t, m.Block(0, 5))
}

func TestCostMatrix_ZeroValueScore(t *testing.T) {
	var m dtw.CostMatrix
	assert.True(t, math.IsInf(m.Score(), 1))
	assert.Equal(t, "CostMatrix(0x0)", m.String())
}
