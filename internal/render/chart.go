package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// BeamChart builds the beam profile chart from a collector's artifacts:
// raw intensity, running mean and the acceptance line (mean + Hmin) per
// bin, with a scatter mark at each bin where a peak run closed. This is
// the calibration plot for judging whether Hmin and the mean window
// separate objects from background on a given recording.
func BeamChart(c *Collector, hmin int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Beam %d profile", c.ProfileBeam()),
			Subtitle: fmt.Sprintf("Hmin=%d, %d peaks", hmin, len(c.Peaks)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "bin"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "intensity"}),
	)

	xs := make([]string, len(c.Profile))
	intensity := make([]opts.LineData, len(c.Profile))
	mean := make([]opts.LineData, len(c.Profile))
	accept := make([]opts.LineData, len(c.Profile))
	for i, s := range c.Profile {
		xs[i] = strconv.Itoa(s.Bin)
		intensity[i] = opts.LineData{Value: s.Intensity}
		mean[i] = opts.LineData{Value: s.Mean}
		accept[i] = opts.LineData{Value: s.Mean + hmin}
	}

	line.SetXAxis(xs).
		AddSeries("intensity", intensity).
		AddSeries("mean", mean).
		AddSeries("accept", accept)

	if len(c.Peaks) > 0 {
		// Sparse series aligned to the bin axis: null everywhere except
		// where a run closed, marked at its extraction threshold.
		marks := make([]opts.ScatterData, len(c.Profile))
		for _, p := range c.Peaks {
			if p.ClosedBin >= 0 && p.ClosedBin < len(marks) {
				marks[p.ClosedBin] = opts.ScatterData{Value: p.Record.Threshold}
			}
		}
		scatter := charts.NewScatter()
		scatter.SetXAxis(xs).AddSeries("peak threshold", marks)
		line.Overlap(scatter)
	}

	return line
}

// SaveBeamChart renders the chart as a standalone HTML page.
func SaveBeamChart(path string, c *Collector, hmin int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := BeamChart(c, hmin).Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
