package render

import (
	"fmt"

	"github.com/katalvlaran/gaitwarp/dtw"
)

// DefaultFrameStep is the number of path points added per animation frame.
const DefaultFrameStep = 5

// Frames splits a path into growing prefixes for progressive drawing.
// Frame k holds the first (k+1)*step points; the last frame is always the
// complete path. Frames share the path's backing array but are capped, so
// appending to a frame never writes into the path.
func Frames(path dtw.Path, step int) ([]dtw.Path, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: frame step %d", ErrBadOption, step)
	}
	if len(path) == 0 {
		return nil, nil
	}

	out := make([]dtw.Path, 0, (len(path)+step-1)/step)
	for k := step; ; k += step {
		k = min(k, len(path))
		out = append(out, path[:k:k])
		if k == len(path) {
			break
		}
	}

	return out, nil
}
