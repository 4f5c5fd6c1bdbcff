package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaitwarp/dtw"
	"github.com/katalvlaran/gaitwarp/render"
	"github.com/katalvlaran/gaitwarp/signal"
)

type alignFlags struct {
	caseName string
	fileA    string
	fileB    string
	column   int
	table    bool
	heatmap  string
	plot     string
	costPlot string
	frames   bool
}

func newAlignCmd(a *app) *cobra.Command {
	var f alignFlags
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align a synthetic case or two CSV recordings",
		Example: `  gaitwarp align --case slow --table
  gaitwarp align --a healthy.csv --b patient.csv --column 1 --heatmap cost.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, patient, label, err := a.loadPair(f)
			if err != nil {
				return err
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			a.log.Debug().Str("source", label).Int("n", len(ref)).Int("m", len(patient)).Msg("aligning")
			res, err := dtw.Align(ref, patient)
			if err != nil {
				return fmt.Errorf("align %s: %w", label, err)
			}
			sum, err := render.Summarize(res, ref, patient)
			if err != nil {
				return err
			}
			a.log.Info().Str("source", label).Float64("score", res.Score).Int("path", len(res.Path)).Msg("aligned")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loaded: %s\nScore: %.2f\n%s\n", label, res.Score, sum)

			return a.present(out, f, ref, patient, res)
		},
	}
	cmd.Flags().StringVar(&f.caseName, "case", string(signal.Match), "synthetic case: match|slow|severe|tremor")
	cmd.Flags().StringVar(&f.fileA, "a", "", "CSV file with the reference sequence")
	cmd.Flags().StringVar(&f.fileB, "b", "", "CSV file with the comparison sequence")
	cmd.Flags().IntVar(&f.column, "column", 0, "0-based CSV column to read")
	cmd.Flags().BoolVar(&f.table, "table", false, "print the top-left corner of the cost matrix")
	cmd.Flags().StringVar(&f.heatmap, "heatmap", "", "write an HTML heatmap to this file")
	cmd.Flags().StringVar(&f.plot, "plot", "", "write the signal alignment plot to this image file")
	cmd.Flags().StringVar(&f.costPlot, "cost-plot", "", "write the cost matrix plot to this image file")
	cmd.Flags().BoolVar(&f.frames, "frames", false, "print the progressive path frames")

	return cmd
}

// loadPair returns the two sequences to align and a label for logs.
// CSV files win over --case when both --a and --b are given.
func (a *app) loadPair(f alignFlags) (ref, patient []float64, label string, err error) {
	switch {
	case f.fileA != "" && f.fileB != "":
		if ref, err = signal.ReadCSVFile(f.fileA, f.column); err != nil {
			return nil, nil, "", err
		}
		if patient, err = signal.ReadCSVFile(f.fileB, f.column); err != nil {
			return nil, nil, "", err
		}
		label = f.fileA + " vs " + f.fileB
	case f.fileA != "" || f.fileB != "":
		return nil, nil, "", fmt.Errorf("both --a and --b are required for csv input")
	default:
		c, err := signal.ParseCase(f.caseName)
		if err != nil {
			return nil, nil, "", err
		}
		pair, err := signal.Generate(c, a.signalOptions())
		if err != nil {
			return nil, nil, "", err
		}
		ref, patient, label = pair.Reference, pair.Patient, string(c)
	}

	if err := a.cfg.CheckLength("reference", len(ref)); err != nil {
		return nil, nil, "", err
	}
	if err := a.cfg.CheckLength("patient", len(patient)); err != nil {
		return nil, nil, "", err
	}

	return ref, patient, label, nil
}

// present writes every artifact requested by the flags.
func (a *app) present(out io.Writer, f alignFlags, ref, patient []float64, res *dtw.Result) error {
	rc := a.cfg.Render
	if f.table {
		if err := render.Table(out, res, rc.TableLimit); err != nil {
			return err
		}
	}
	if f.frames {
		frames, err := render.Frames(res.Path, rc.FrameStep)
		if err != nil {
			return err
		}
		for k, fr := range frames {
			last := fr[len(fr)-1]
			fmt.Fprintf(out, "frame %d/%d points=%d head=(%d,%d)\n", k+1, len(frames), len(fr), last.I, last.J)
		}
	}

	po := render.DefaultPlotOptions()
	po.Offset = rc.Offset
	po.ConnectorEvery = rc.ConnectorEvery
	if f.plot != "" {
		if err := render.AlignmentPlot(f.plot, ref, patient, res.Path, po); err != nil {
			return err
		}
		a.log.Info().Str("file", f.plot).Msg("alignment plot written")
	}
	if f.costPlot != "" {
		if err := render.CostPlot(f.costPlot, res, po); err != nil {
			return err
		}
		a.log.Info().Str("file", f.costPlot).Msg("cost plot written")
	}
	if f.heatmap != "" {
		if err := writeHeatmap(f.heatmap, res, render.HeatmapOptions{
			Title:   "DTW Cost Matrix & Optimal Path",
			MaxAxis: rc.HeatmapAxis,
		}); err != nil {
			return err
		}
		a.log.Info().Str("file", f.heatmap).Msg("heatmap written")
	}

	return nil
}

func writeHeatmap(path string, res *dtw.Result, o render.HeatmapOptions) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heatmap file: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return render.Heatmap(fh, res, o)
}

func (a *app) signalOptions() signal.Options {
	return signal.Options{
		Seed:             a.cfg.Signal.Seed,
		ReferenceSamples: a.cfg.Signal.ReferenceSamples,
		SlowSamples:      a.cfg.Signal.SlowSamples,
	}
}
