package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaitwarp/internal/config"
	"github.com/katalvlaran/gaitwarp/signal"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestAlign_Case(t *testing.T) {
	out, err := run(t, "align", "--case", "slow", "--table", "--frames", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded: slow")
	assert.Contains(t, out, "Score: ")
	assert.Contains(t, out, "matrix=101x141")
	assert.Contains(t, out, "Ref")
	assert.Contains(t, out, "frame 1/")
}

func TestAlign_UnknownCase(t *testing.T) {
	_, err := run(t, "align", "--case", "limp", "--log-level", "warn")
	assert.ErrorIs(t, err, signal.ErrUnknownCase)
}

func TestAlign_CSV(t *testing.T) {
	dir := t.TempDir()
	fa := filepath.Join(dir, "a.csv")
	fb := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(fa, []byte("v\n0\n1\n"), 0o600))
	require.NoError(t, os.WriteFile(fb, []byte("v\n0\n1\n1\n"), 0o600))

	html := filepath.Join(dir, "cost.html")
	out, err := run(t, "align", "--a", fa, "--b", fb, "--heatmap", html, "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 0.00")
	assert.Contains(t, out, "path=3")

	info, err := os.Stat(html)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestAlign_CSVNeedsBothFiles(t *testing.T) {
	_, err := run(t, "align", "--a", "only.csv", "--log-level", "warn")
	assert.Error(t, err)
}

func TestAlign_LengthGuard(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "gaitwarp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("engine:\n  max_samples: 120\n"), 0o600))

	_, err := run(t, "align", "--case", "slow", "--config", cfgPath, "--log-level", "warn")
	assert.ErrorIs(t, err, config.ErrSequenceTooLong)

	_, err = run(t, "align", "--case", "match", "--config", cfgPath, "--log-level", "warn")
	assert.NoError(t, err)
}

func TestCases(t *testing.T) {
	out, err := run(t, "cases", "--log-level", "warn")
	require.NoError(t, err)
	for _, c := range signal.Cases() {
		assert.Contains(t, out, string(c))
	}
	assert.Contains(t, out, "Mean cost")
}

func TestStress(t *testing.T) {
	if testing.Short() {
		t.Skip("stress scenario skipped in -short mode")
	}
	out, err := run(t, "stress", "--log-level", "warn")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "test passed matrix size: 1001x1201"), out)
}

func TestStress_BadLength(t *testing.T) {
	_, err := run(t, "stress", "--n", "0", "--log-level", "warn")
	assert.ErrorIs(t, err, errStressFailed)
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, err := run(t, "cases", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
