package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaitwarp/dtw"
	"github.com/katalvlaran/gaitwarp/render"
)

func TestFrames(t *testing.T) {
	path := make(dtw.Path, 12)
	for k := range path {
		path[k] = dtw.Coord{I: k, J: k}
	}

	frames, err := render.Frames(path, 5)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Len(t, frames[0], 5)
	assert.Len(t, frames[1], 10)
	assert.Equal(t, path, frames[2])

	// appending to a frame must not clobber the path
	_ = append(frames[0], dtw.Coord{I: -1, J: -1})
	assert.Equal(t, dtw.Coord{I: 5, J: 5}, path[5])
}

func TestFrames_ExactMultipleAndEdges(t *testing.T) {
	path := dtw.Path{{I: 0, J: 0}, {I: 1, J: 1}, {I: 2, J: 2}, {I: 3, J: 3}}
	frames, err := render.Frames(path, 2)
	require.NoError(t, err)
	assert.Len(t, frames, 2)

	frames, err = render.Frames(path, 100)
	require.NoError(t, err)
	assert.Equal(t, []dtw.Path{path}, frames)

	frames, err = render.Frames(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, frames)

	_, err = render.Frames(path, 0)
	assert.ErrorIs(t, err, render.ErrBadOption)
}
