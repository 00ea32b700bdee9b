package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/http-server-bench/benchtools/model/benchmark"
	"github.com/http-server-bench/benchtools/module/aggregator"
	"github.com/http-server-bench/benchtools/module/report"
)

// run with `benchtools compare keep-alive 10 /echo --languages rust,c`
func newCompareCmd(s *state) *cobra.Command {
	var flagQuiet bool

	compareCmd := &cobra.Command{
		Use:   "compare <mode> <num_runs> <endpoint>",
		Short: "compare the mean of median times of several languages and render charts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			experiment, err := parseExperiment(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if len(s.cfg.Languages) == 0 {
				return fmt.Errorf("at least one language is required")
			}

			out := cmd.OutOrStdout()
			if flagQuiet {
				out = io.Discard
			}

			bar := progressbar.NewOptions(len(s.cfg.Languages),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("collecting"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			agg := aggregator.New(s.log, s.cfg.TestsDir, s.cfg.Concurrency)
			renderer := report.NewChartRenderer(s.log, s.cfg.ResultsDir)
			paths, err := compare(out, s.log, agg, renderer, s.cfg.Languages, experiment, bar)
			if err != nil {
				return err
			}

			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	compareCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "do not print the per language reports")

	return compareCmd
}

// compare collects every language in order and renders the comparison charts.
// Languages without an experiment directory take part with an empty collection.
// It returns the paths of the written charts, none if the first language has nothing to plot.
func compare(
	out io.Writer,
	log zerolog.Logger,
	agg *aggregator.Aggregator,
	renderer *report.ChartRenderer,
	languages []string,
	experiment benchmark.Experiment,
	bar *progressbar.ProgressBar,
) ([]string, error) {
	collections := make([]*benchmark.Collection, 0, len(languages))
	for _, language := range languages {
		collection, err := collect(out, log, agg, language, experiment)
		if err != nil {
			return nil, err
		}
		if collection == nil {
			collection = benchmark.NewCollection(language, experiment)
		}
		collections = append(collections, collection)

		if err := bar.Add(1); err != nil {
			return nil, fmt.Errorf("could not update progress: %w", err)
		}
	}

	comparison := report.NewComparison(experiment, collections...)
	log.Info().
		Strs("languages", languages).
		Ints("levels", comparison.Levels()).
		Str("experiment", experiment.String()).
		Msg("collected comparison")

	paths, err := renderer.Render(comparison)
	if errors.Is(err, report.ErrNothingToPlot) {
		log.Warn().Str("language", languages[0]).Msg("no median times to compare, skipping charts")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not render charts: %w", err)
	}
	return paths, nil
}
