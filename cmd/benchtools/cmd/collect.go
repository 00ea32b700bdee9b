package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/http-server-bench/benchtools/model/benchmark"
	"github.com/http-server-bench/benchtools/module/aggregator"
	"github.com/http-server-bench/benchtools/module/report"
)

// run with `benchtools collect rust keep-alive 10 /echo`
func newCollectCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "collect <language> <mode> <num_runs> <endpoint>",
		Short: "print median latency and throughput per concurrency level of one language",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			experiment, err := parseExperiment(args[1], args[2], args[3])
			if err != nil {
				return err
			}

			agg := aggregator.New(s.log, s.cfg.TestsDir, s.cfg.Concurrency)
			_, err = collect(cmd.OutOrStdout(), s.log, agg, args[0], experiment)
			return err
		},
	}
}

// collect summarizes the logs of one language and writes the text report to out.
// A missing experiment directory is reported on out and results in a nil collection.
func collect(
	out io.Writer,
	log zerolog.Logger,
	agg *aggregator.Aggregator,
	language string,
	experiment benchmark.Experiment,
) (*benchmark.Collection, error) {
	collection, err := agg.Collect(language, experiment)
	if benchmark.IsMissingDirectoryError(err) {
		log.Warn().Err(err).Str("language", language).Msg("nothing to collect")
		return nil, report.WriteMissingDirectory(out)
	}
	if err != nil {
		return nil, fmt.Errorf("could not collect %s: %w", language, err)
	}

	if err := report.WriteCollection(out, collection); err != nil {
		return nil, fmt.Errorf("could not write report: %w", err)
	}

	if problems := collection.Err(); problems != nil {
		log.Warn().
			Err(problems).
			Str("language", language).
			Msg("some concurrency levels could not be summarized")
	}
	return collection, nil
}
