package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/http-server-bench/benchtools/config"
	"github.com/http-server-bench/benchtools/model/benchmark"
)

// state is shared by the commands of one command tree. It is filled in by the
// root command before any sub command runs.
type state struct {
	flagConfigFile string

	cfg *config.Config
	log zerolog.Logger
}

// newRootCmd builds the complete command tree. Every call returns fresh flags.
func newRootCmd() *cobra.Command {
	s := &state{}

	rootCmd := &cobra.Command{
		Use:           "benchtools",
		Short:         "Summarize HTTP server benchmark logs and compare implementations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags(), s.flagConfigFile)
			if err != nil {
				return err
			}

			s.cfg = cfg
			s.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				With().
				Timestamp().
				Logger().
				Level(cfg.Level())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.flagConfigFile, "config", "", "optional config file (yaml, toml or json)")
	config.InitializeFlags(rootCmd.PersistentFlags(), config.DefaultConfig())

	rootCmd.AddCommand(newCollectCmd(s))
	rootCmd.AddCommand(newCompareCmd(s))

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error", err)
		os.Exit(1)
	}
}

// parseExperiment builds an experiment from the mode, num_runs and endpoint arguments.
func parseExperiment(mode string, numRuns string, endpoint string) (benchmark.Experiment, error) {
	runs, err := strconv.Atoi(numRuns)
	if err != nil {
		return benchmark.Experiment{}, fmt.Errorf("invalid number of runs %q: %w", numRuns, err)
	}
	return benchmark.Experiment{
		Mode:     mode,
		Runs:     runs,
		Endpoint: endpoint,
	}, nil
}
