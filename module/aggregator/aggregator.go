package aggregator

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"

	"github.com/http-server-bench/benchtools/model/benchmark"
	"github.com/http-server-bench/benchtools/utils/io"
)

// Aggregator collects the benchmark logs of an experiment, one file per concurrency level.
type Aggregator struct {
	log      zerolog.Logger
	testsDir string
	levels   []int
}

// New returns an aggregator reading logs below testsDir for the given concurrency levels.
// Levels are processed in the given order.
func New(log zerolog.Logger, testsDir string, levels []int) *Aggregator {
	return &Aggregator{
		log:      log.With().Str("component", "aggregator").Logger(),
		testsDir: testsDir,
		levels:   levels,
	}
}

// ExperimentDir returns the directory holding the logs of the experiment.
func (a *Aggregator) ExperimentDir(experiment benchmark.Experiment) string {
	return filepath.Join(a.testsDir, experiment.EndpointDir())
}

// Collect summarizes the logs of one language for every concurrency level.
// A missing experiment directory aborts the collection with a MissingDirectoryError.
// Missing files and files without medians are recorded in the returned collection
// and do not stop the remaining levels from being processed.
func (a *Aggregator) Collect(language string, experiment benchmark.Experiment) (*benchmark.Collection, error) {
	dir := a.ExperimentDir(experiment)
	lg := a.log.With().
		Str("language", language).
		Str("mode", experiment.Mode).
		Int("runs", experiment.Runs).
		Str("endpoint", experiment.Endpoint).
		Logger()

	if !io.DirExists(dir) {
		return nil, benchmark.NewMissingDirectoryError(dir)
	}

	collection := benchmark.NewCollection(language, experiment)
	for _, concurrency := range a.levels {
		key := experiment.Key(language, concurrency)
		path := filepath.Join(dir, key.FileName())
		level := benchmark.Level{
			Concurrency: concurrency,
			FileName:    key.FileName(),
			Path:        path,
		}

		summary, err := SummarizeFile(path, concurrency)
		switch {
		case benchmark.IsFileNotFoundError(err):
			lg.Warn().Str("path", path).Msg("benchmark log does not exist")
			level.Err = err
		case err != nil:
			return nil, fmt.Errorf("could not summarize %s: %w", path, err)
		case !summary.HasMedians():
			lg.Warn().
				Str("file", key.FileName()).
				Int("failed", summary.Failed).
				Msg("no median times found")
			level.Summary = summary
			level.Err = benchmark.NewNoMedianFoundError(key.FileName(), summary.Failed)
		default:
			lg.Debug().
				Str("file", key.FileName()).
				Int("concurrency", concurrency).
				Int("medians", len(summary.Medians)).
				Int("throughputs", len(summary.Throughputs)).
				Int("failed", summary.Failed).
				Float64("mean_of_medians", summary.MeanOfMedians).
				Float64("mean_throughput", summary.MeanThroughput).
				Msg("summarized benchmark log")
			level.Summary = summary
		}

		collection.Add(level)
	}

	return collection, nil
}

// SummarizeFile extracts the samples of one benchmark log and computes their means.
// It returns a FileNotFoundError if path does not exist.
func SummarizeFile(path string, concurrency int) (*benchmark.ConcurrencySummary, error) {
	data, err := io.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, benchmark.NewFileNotFoundError(path)
		}
		return nil, err
	}

	return Summarize(filepath.Base(path), concurrency, string(data))
}

// Summarize builds the summary of an already loaded benchmark log.
func Summarize(fileName string, concurrency int, contents string) (*benchmark.ConcurrencySummary, error) {
	summary := &benchmark.ConcurrencySummary{
		FileName:    fileName,
		Concurrency: concurrency,
		Samples:     ExtractSamples(contents),
	}

	if len(summary.Medians) > 0 {
		mean, err := stats.Mean(stats.LoadRawData(summary.Medians))
		if err != nil {
			return nil, fmt.Errorf("could not compute mean of medians: %w", err)
		}
		summary.MeanOfMedians = mean
	}

	if len(summary.Throughputs) > 0 {
		mean, err := stats.Mean(summary.Throughputs)
		if err != nil {
			return nil, fmt.Errorf("could not compute mean throughput: %w", err)
		}
		summary.MeanThroughput = mean
	}

	return summary, nil
}
