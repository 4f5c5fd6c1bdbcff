package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaitwarp/dtw"
	"github.com/katalvlaran/gaitwarp/signal"
)

var errStressFailed = errors.New("stress test failed")

func newStressCmd(a *app) *cobra.Command {
	var (
		n, m int
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Align two large uniform random sequences and check the result shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 || m < 1 {
				return fmt.Errorf("%w: lengths must be positive, got %d and %d", errStressFailed, n, m)
			}
			if err := a.cfg.CheckLength("a", n); err != nil {
				return err
			}
			if err := a.cfg.CheckLength("b", m); err != nil {
				return err
			}

			a.log.Info().Int("n", n).Int("m", m).Msg("running stress test")
			seqA, seqB := signal.Random(n, seed, 1), signal.Random(m, seed, 2)

			start := time.Now()
			res, err := dtw.Align(seqA, seqB)
			if err != nil {
				return fmt.Errorf("%w: %w", errStressFailed, err)
			}
			elapsed := time.Since(start)

			rows, cols := res.Matrix.Rows(), res.Matrix.Cols()
			if rows != n+1 || cols != m+1 {
				return fmt.Errorf("%w: matrix %dx%d, want %dx%d", errStressFailed, rows, cols, n+1, m+1)
			}
			if l := len(res.Path); l < max(n, m) || l > n+m-1 {
				return fmt.Errorf("%w: path length %d outside [%d, %d]", errStressFailed, l, max(n, m), n+m-1)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "test passed matrix size: %dx%d path length: %d score: %.2f elapsed: %s\n",
				rows, cols, len(res.Path), res.Score, elapsed.Round(time.Millisecond))
			a.log.Info().Dur("elapsed", elapsed).Msg("stress test passed")

			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 1000, "length of the first sequence")
	cmd.Flags().IntVar(&m, "m", 1200, "length of the second sequence")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	return cmd
}
