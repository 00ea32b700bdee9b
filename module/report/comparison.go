package report

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/http-server-bench/benchtools/model/benchmark"
)

// Metric selects the per level mean a chart is drawn from.
type Metric int

const (
	MeanOfMedians Metric = iota
	MeanThroughput
)

func (m Metric) String() string {
	switch m {
	case MeanOfMedians:
		return "Mean of Median Times"
	case MeanThroughput:
		return "Mean Throughput"
	default:
		return "unknown"
	}
}

// Means returns the metric for every concurrency level of the collection that reported medians.
func (m Metric) Means(collection *benchmark.Collection) map[int]float64 {
	means := make(map[int]float64)
	for _, summary := range collection.Summaries() {
		switch m {
		case MeanOfMedians:
			means[summary.Concurrency] = summary.MeanOfMedians
		case MeanThroughput:
			means[summary.Concurrency] = summary.MeanThroughput
		}
	}
	return means
}

// MeansOfMedians returns the mean of median latencies by concurrency level.
func MeansOfMedians(collection *benchmark.Collection) map[int]float64 {
	return MeanOfMedians.Means(collection)
}

// MeanThroughputs returns the mean throughput by concurrency level.
func MeanThroughputs(collection *benchmark.Collection) map[int]float64 {
	return MeanThroughput.Means(collection)
}

// Comparison holds the collections of several languages for the same experiment.
// The first collection is the reference: its concurrency levels define the x axis.
type Comparison struct {
	Experiment  benchmark.Experiment
	Collections []*benchmark.Collection
}

func NewComparison(experiment benchmark.Experiment, collections ...*benchmark.Collection) *Comparison {
	return &Comparison{
		Experiment:  experiment,
		Collections: collections,
	}
}

// Levels returns the sorted concurrency levels of the reference collection that have a mean.
func (c *Comparison) Levels() []int {
	if len(c.Collections) == 0 {
		return nil
	}
	levels := maps.Keys(MeansOfMedians(c.Collections[0]))
	slices.Sort(levels)
	return levels
}

// Series returns one value per level for each collection, in collection order.
// A language that has no mean for a level contributes 0.
func (c *Comparison) Series(metric Metric) [][]float64 {
	levels := c.Levels()
	series := make([][]float64, len(c.Collections))
	for i, collection := range c.Collections {
		means := metric.Means(collection)
		values := make([]float64, len(levels))
		for j, level := range levels {
			values[j] = means[level]
		}
		series[i] = values
	}
	return series
}

// Labels returns the display names of the compared languages, e.g. "Rust" and "C".
func (c *Comparison) Labels() []string {
	caser := cases.Title(language.English)
	labels := make([]string, len(c.Collections))
	for i, collection := range c.Collections {
		labels[i] = caser.String(collection.Language)
	}
	return labels
}

// Title returns the chart title for metric.
func (c *Comparison) Title(metric Metric) string {
	return fmt.Sprintf("Comparison of %s for %s - endpoint %s\nMode: %s, Runs: %d",
		metric, strings.Join(c.Labels(), " and "), c.Experiment.Endpoint, c.Experiment.Mode, c.Experiment.Runs)
}
