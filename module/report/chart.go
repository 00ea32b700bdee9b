package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/http-server-bench/benchtools/utils/io"
)

// ErrNothingToPlot is returned when the reference language has no level with a mean.
var ErrNothingToPlot = errors.New("no concurrency level with median times to plot")

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
	// width of one bar; a group of bars per concurrency level
	barWidth = vg.Length(28)
)

// chart describes one rendered image.
type chart struct {
	prefix string
	metric Metric
	yLabel string
}

var charts = []chart{
	{prefix: "comparison", metric: MeanOfMedians, yLabel: "Mean of Median Times (ms)"},
	{prefix: "throughput", metric: MeanThroughput, yLabel: "Mean Throughput (Requests/sec)"},
}

// ChartRenderer renders grouped bar charts of a comparison into a results directory.
type ChartRenderer struct {
	log        zerolog.Logger
	resultsDir string
}

func NewChartRenderer(log zerolog.Logger, resultsDir string) *ChartRenderer {
	return &ChartRenderer{
		log:        log.With().Str("component", "chart_renderer").Logger(),
		resultsDir: resultsDir,
	}
}

// Render writes one chart per metric and returns the paths of the written files.
// The results directory is created if needed and locked while the charts are written.
func (r *ChartRenderer) Render(comparison *Comparison) ([]string, error) {
	levels := comparison.Levels()
	if len(levels) == 0 {
		return nil, ErrNothingToPlot
	}

	var paths []string
	err := io.WithLock(r.resultsDir, func() error {
		for _, c := range charts {
			path := filepath.Join(r.resultsDir, comparison.Experiment.ChartFileName(c.prefix))
			if err := r.renderChart(comparison, levels, c, path); err != nil {
				return fmt.Errorf("could not render %s: %w", path, err)
			}
			r.log.Info().Str("path", path).Str("metric", c.metric.String()).Msg("wrote chart")
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func (r *ChartRenderer) renderChart(comparison *Comparison, levels []int, c chart, path string) error {
	p := plot.New()
	p.Title.Text = comparison.Title(c.metric)
	p.X.Label.Text = "Concurrency Level"
	p.Y.Label.Text = c.yLabel
	p.Add(plotter.NewGrid())

	series := comparison.Series(c.metric)
	labels := comparison.Labels()
	for i, values := range series {
		bars, err := plotter.NewBarChart(plotter.Values(values), barWidth)
		if err != nil {
			return fmt.Errorf("could not create bars for %s: %w", labels[i], err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		// center the group of bars on the level tick
		bars.Offset = vg.Length(float64(i)-float64(len(series)-1)/2) * barWidth

		p.Add(bars)
		p.Legend.Add(labels[i], bars)
	}
	p.Legend.Top = true

	ticks := make([]string, len(levels))
	for i, level := range levels {
		ticks[i] = strconv.Itoa(level)
	}
	p.NominalX(ticks...)

	return p.Save(chartWidth, chartHeight, path)
}
