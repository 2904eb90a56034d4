package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/tamirms/radixsort"
)

func (e *env) handlePlot(c *cli.Context) error {
	kind, err := radixsort.ParseKind(c.String("kind"))
	if err != nil {
		return err
	}
	if c.NArg() != 1 {
		return fmt.Errorf("plot: exactly one input file expected, got %d", c.NArg())
	}
	path, round := c.Args().First(), c.Int("round")

	counts, res, err := radixsort.HistogramFile(path, kind, round)
	if err != nil {
		return err
	}
	if err := plotHistogram(counts, fmt.Sprintf("%s: round %d of %d (%v)", path, round, kind.Width(), kind), c.String("output")); err != nil {
		return err
	}

	nonEmpty, largest := 0, 0
	for _, n := range counts {
		if n > 0 {
			nonEmpty++
		}
		largest = max(largest, n)
	}
	e.logger.Info("plotted histogram",
		zap.String("path", path),
		zap.Int("round", round),
		zap.Int("elements", res.Elements),
		zap.Int("buckets", nonEmpty),
		zap.Int("largestBucket", largest),
		zap.String("output", c.String("output")),
	)
	return nil
}

// plotHistogram writes a bar chart of the 256 bucket counts to filename.
func plotHistogram(counts [256]int, title, filename string) (err error) {
	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, n := range counts {
		labels[i] = fmt.Sprintf("%02x", i)
		data[i] = opts.BarData{Value: n}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Radix round histogram",
			Width:     "180vh",
			Height:    "90vh",
			Theme:     types.ThemeVintage,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "bucket",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "elements",
		}),
	)
	bar.SetXAxis(labels).AddSeries("elements", data)

	page := components.NewPage()
	page.AddCharts(bar)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create plot file %s: %w", filename, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering histogram: %w", err)
	}
	return nil
}
