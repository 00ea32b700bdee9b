package unittest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RunFixture describes one run of a benchmark log. A nil field is left out of the
// generated output, which is how the load tool reports a run that did not complete.
type RunFixture struct {
	Median     *int
	Throughput *float64
}

func MedianRun(median int, throughput float64) RunFixture {
	return RunFixture{Median: &median, Throughput: &throughput}
}

func RunWithoutMedian(throughput float64) RunFixture {
	return RunFixture{Throughput: &throughput}
}

func RunWithoutThroughput(median int) RunFixture {
	return RunFixture{Median: &median}
}

// BenchmarkLog renders runs the way the load testing wrapper script writes them:
// a "Run N:" header followed by the ApacheBench report of that run.
func BenchmarkLog(concurrency int, runs ...RunFixture) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Benchmarking with concurrency %d\n", concurrency)
	for i, run := range runs {
		fmt.Fprintf(&b, "Run %d:\n", i+1)
		b.WriteString("This is ApacheBench, Version 2.3 <$Revision: 1903618 $>\n\n")
		b.WriteString("Server Hostname:        127.0.0.1\n")
		fmt.Fprintf(&b, "Concurrency Level:      %d\n", concurrency)
		b.WriteString("Complete requests:      10000\n")
		if run.Throughput != nil {
			fmt.Fprintf(&b, "Requests per second:    %.2f [#/sec] (mean)\n", *run.Throughput)
		}
		b.WriteString("Time per request:       30.851 [ms] (mean)\n\n")
		if run.Median != nil {
			b.WriteString("Percentage of the requests served within a certain time (ms)\n")
			fmt.Fprintf(&b, "  50%%    %d\n", *run.Median)
			fmt.Fprintf(&b, "  66%%    %d\n", *run.Median+2)
			fmt.Fprintf(&b, " 100%%    %d (longest request)\n", *run.Median*3)
		} else {
			b.WriteString("apr_socket_recv: Connection reset by peer (104)\n")
		}
	}
	return b.String()
}

// WriteBenchmarkLog writes content to dir/name, creating dir if needed, and returns the path.
func WriteBenchmarkLog(t testing.TB, dir string, name string, content string) string {
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
