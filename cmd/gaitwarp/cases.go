package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gaitwarp/dtw"
	"github.com/katalvlaran/gaitwarp/render"
	"github.com/katalvlaran/gaitwarp/signal"
)

// caseRow is one line of the cases summary.
type caseRow struct {
	c       signal.Case
	n, m    int
	summary render.Summary
}

func newCasesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "Align every synthetic case concurrently and compare scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := signal.Cases()
			rows := make([]caseRow, len(cases))

			g, ctx := errgroup.WithContext(cmd.Context())
			for i, c := range cases {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					pair, err := signal.Generate(c, a.signalOptions())
					if err != nil {
						return err
					}
					res, err := dtw.Align(pair.Reference, pair.Patient)
					if err != nil {
						return fmt.Errorf("align %s: %w", c, err)
					}
					sum, err := render.Summarize(res, pair.Reference, pair.Patient)
					if err != nil {
						return err
					}
					rows[i] = caseRow{c: c, n: len(pair.Reference), m: len(pair.Patient), summary: sum}
					a.log.Debug().Str("case", string(c)).Float64("score", res.Score).Msg("case aligned")

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			t := render.NewTextTable(cmd.OutOrStdout())
			t.Header("Case", "Reference", "Patient", "Score", "Path", "Diagonal", "Mean cost")
			data := make([][]string, 0, len(rows))
			for _, r := range rows {
				data = append(data, []string{
					string(r.c),
					fmt.Sprint(r.n),
					fmt.Sprint(r.m),
					fmt.Sprintf("%.2f", r.summary.Score),
					fmt.Sprint(r.summary.PathLength),
					fmt.Sprintf("%.2f", r.summary.DiagonalRatio),
					fmt.Sprintf("%.3f", r.summary.MeanCost),
				})
			}
			if err := t.Bulk(data); err != nil {
				return fmt.Errorf("cases table: %w", err)
			}
			if err := t.Render(); err != nil {
				return fmt.Errorf("cases table: %w", err)
			}
			a.log.Info().Int("cases", len(rows)).Msg("cases compared")

			return nil
		},
	}
}
