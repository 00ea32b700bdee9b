package benchmark

import (
	"github.com/hashicorp/go-multierror"
)

// Level is the outcome for one concurrency level of a collection.
// Exactly one of Summary and Err is set, except for levels without medians
// which carry both the summary and a NoMedianFoundError.
type Level struct {
	Concurrency int
	FileName    string
	Path        string
	Summary     *ConcurrencySummary
	Err         error
}

// Collection is everything collected for one language of an experiment.
type Collection struct {
	Language   string
	Experiment Experiment
	Levels     []Level
}

// NewCollection returns an empty collection for the given language.
func NewCollection(language string, experiment Experiment) *Collection {
	return &Collection{
		Language:   language,
		Experiment: experiment,
	}
}

// Add appends the outcome of one concurrency level.
func (c *Collection) Add(level Level) {
	c.Levels = append(c.Levels, level)
}

// Summaries returns the summaries that have at least one median, in level order.
func (c *Collection) Summaries() []*ConcurrencySummary {
	summaries := make([]*ConcurrencySummary, 0, len(c.Levels))
	for _, level := range c.Levels {
		if level.Summary != nil && level.Summary.HasMedians() {
			summaries = append(summaries, level.Summary)
		}
	}
	return summaries
}

// Err combines the problems of all levels. It returns nil if every level was summarized.
func (c *Collection) Err() error {
	var result *multierror.Error
	for _, level := range c.Levels {
		if level.Err != nil {
			result = multierror.Append(result, level.Err)
		}
	}
	return result.ErrorOrNil()
}
