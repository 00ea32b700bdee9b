package benchmark

// Samples holds the values extracted from the runs of one log file, in file order.
// Medians and Throughputs are independent sequences: a run without a throughput
// figure is dropped from Throughputs only, a run without a median is counted in Failed.
type Samples struct {
	Medians     []int
	Throughputs []float64
	Failed      int
}

// ConcurrencySummary aggregates one log file, i.e. one concurrency level of a language.
type ConcurrencySummary struct {
	FileName    string
	Concurrency int
	Samples

	// MeanOfMedians is only meaningful when HasMedians returns true.
	MeanOfMedians float64
	// MeanThroughput is 0 when no throughput was found.
	MeanThroughput float64
}

// HasMedians returns true if at least one run reported a median latency.
func (s *ConcurrencySummary) HasMedians() bool {
	return len(s.Medians) > 0
}
