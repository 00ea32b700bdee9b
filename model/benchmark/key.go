package benchmark

import (
	"fmt"
	"strings"
)

// DefaultConcurrencyLevels are the client counts every benchmark is run with.
var DefaultConcurrencyLevels = []int{250, 500, 750}

// Experiment identifies one benchmark series independent of the server implementation.
type Experiment struct {
	Mode     string
	Runs     int
	Endpoint string
}

func (e Experiment) String() string {
	return fmt.Sprintf("mode=%s runs=%d endpoint=%s", e.Mode, e.Runs, e.Endpoint)
}

// EndpointDir returns the endpoint as a relative directory name, e.g. "/echo" -> "echo".
func (e Experiment) EndpointDir() string {
	return strings.TrimLeft(e.Endpoint, "/")
}

// ChartFileName returns the name of a rendered chart for this experiment,
// for instance comparison_keep-alive_10__echo.png.
func (e Experiment) ChartFileName(prefix string) string {
	return fmt.Sprintf("%s_%s_%d_%s.png", prefix, e.Mode, e.Runs, strings.ReplaceAll(e.Endpoint, "/", "_"))
}

// Key returns the file key of this experiment for the given language and concurrency level.
func (e Experiment) Key(language string, concurrency int) FileKey {
	return FileKey{
		Language:    language,
		Mode:        e.Mode,
		Concurrency: concurrency,
		Runs:        e.Runs,
	}
}

// FileKey identifies a single benchmark log file.
type FileKey struct {
	Language    string
	Mode        string
	Concurrency int
	Runs        int
}

// FileName renders {language}_{mode}_{concurrency}_{runs}.txt
func (k FileKey) FileName() string {
	return fmt.Sprintf("%s_%s_%d_%d.txt", k.Language, k.Mode, k.Concurrency, k.Runs)
}
