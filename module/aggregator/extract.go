package aggregator

import (
	"regexp"
	"strconv"

	"github.com/http-server-bench/benchtools/model/benchmark"
)

var (
	runMarker         = regexp.MustCompile(`Run \d+:`)
	medianPattern     = regexp.MustCompile(`50%\s+(\d+)`)
	throughputPattern = regexp.MustCompile(`Requests per second:\s+([\d.]+)`)
)

// ExtractSamples splits a benchmark log into its runs and extracts the median
// latency and throughput of each run, in file order.
// Text before the first "Run N:" marker is ignored. A run without a median counts
// as failed; a run without a throughput is only left out of the throughputs.
func ExtractSamples(contents string) benchmark.Samples {
	var samples benchmark.Samples

	spans := runMarker.Split(contents, -1)
	for _, span := range spans[1:] {
		median, ok := extractMedian(span)
		if ok {
			samples.Medians = append(samples.Medians, median)
		} else {
			samples.Failed++
		}

		throughput, ok := extractThroughput(span)
		if ok {
			samples.Throughputs = append(samples.Throughputs, throughput)
		}
	}

	return samples
}

func extractMedian(span string) (int, bool) {
	match := medianPattern.FindStringSubmatch(span)
	if match == nil {
		return 0, false
	}
	median, err := strconv.Atoi(match[1])
	if err != nil {
		// digits only, so this is an overflow
		return 0, false
	}
	return median, true
}

func extractThroughput(span string) (float64, bool) {
	match := throughputPattern.FindStringSubmatch(span)
	if match == nil {
		return 0, false
	}
	throughput, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return throughput, true
}
