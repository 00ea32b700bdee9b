package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/http-server-bench/benchtools/model/benchmark"
)

var rule = strings.Repeat("---", 20)

// WriteHeader writes the experiment description printed before the levels of a language.
func WriteHeader(w io.Writer, language string, experiment benchmark.Experiment) error {
	_, err := fmt.Fprintf(w, "Language: %s\nMode: %s\nNumber of runs: %d\nEndpoint: %s\n%s\n",
		language, experiment.Mode, experiment.Runs, experiment.Endpoint, rule)
	return err
}

// WriteCollection writes the human readable report of a collection: the header followed
// by medians, throughputs, their means and the failed tries of every concurrency level.
func WriteCollection(w io.Writer, collection *benchmark.Collection) error {
	if err := WriteHeader(w, collection.Language, collection.Experiment); err != nil {
		return err
	}

	for _, level := range collection.Levels {
		if err := writeLevel(w, level); err != nil {
			return err
		}
	}
	return nil
}

// WriteMissingDirectory writes the diagnostic for an experiment without a tests directory.
func WriteMissingDirectory(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Experiment directory does not exist")
	return err
}

func writeLevel(w io.Writer, level benchmark.Level) error {
	var b strings.Builder

	summary := level.Summary
	switch {
	case summary == nil:
		fmt.Fprintf(&b, "File %s does not exist.\n", level.Path)
	case summary.HasMedians():
		fmt.Fprintf(&b, "Median times for %s: %s\n", level.FileName, formatInts(summary.Medians))
		fmt.Fprintf(&b, "Mean of median times for concurrency level %d: %s\n", level.Concurrency, formatFloat(summary.MeanOfMedians))
		fmt.Fprintf(&b, "Throughputs for %s: %s\n", level.FileName, formatFloats(summary.Throughputs))
		fmt.Fprintf(&b, "Mean throughput for concurrency level %d: %s Requests/sec\n", level.Concurrency, formatMeanThroughput(summary))
		fmt.Fprintf(&b, "Number of failed tries for %s: %d\n", level.FileName, summary.Failed)
	default:
		fmt.Fprintf(&b, "No median times found for %s.\n", level.FileName)
		fmt.Fprintf(&b, "Number of failed tries for %s: %d\n", level.FileName, summary.Failed)
	}
	b.WriteString(rule)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDecimal always keeps a decimal point, so a measured 950 req/s reads 950.0.
func formatDecimal(v float64) string {
	s := formatFloat(v)
	if strings.ContainsAny(s, ".eE") || math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	return s + ".0"
}

// formatMeanThroughput prints a plain 0 when the log had no throughput at all.
func formatMeanThroughput(summary *benchmark.ConcurrencySummary) string {
	if len(summary.Throughputs) == 0 {
		return "0"
	}
	return formatDecimal(summary.MeanThroughput)
}

func formatInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func formatFloats(values []float64) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = formatDecimal(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
