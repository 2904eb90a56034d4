package main

import (
	"fmt"
	"time"

	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/radixsort"
	"github.com/tamirms/radixsort/internal/config"
	"github.com/tamirms/radixsort/internal/logutil"
)

// env is what the Before hook builds from the config file and global flags.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

// sorter returns a Sorter with the configured thresholds, verifying when the
// config or the command's --verify flag asks for it.
func (e *env) sorter(c *cli.Context) *radixsort.Sorter {
	opts := []radixsort.Option{radixsort.WithThresholds(e.cfg.Thresholds.Thresholds())}
	if e.cfg.Sort.Verify || c.Bool("verify") {
		opts = append(opts, radixsort.WithVerify())
	}
	return radixsort.New(opts...)
}

func (e *env) jobs(c *cli.Context) int {
	if c.IsSet("jobs") {
		return max(c.Int("jobs"), 1)
	}
	return e.cfg.Sort.Jobs
}

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a TOML configuration file",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error); overrides the config file",
	}
	logFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format (console, json); overrides the config file",
	}

	kindFlag = &cli.StringFlag{
		Name:     "kind",
		Usage:    "Element type: uint8, int8, uint16, int16, uint32, int32",
		Required: true,
	}
	verifyFlag = &cli.BoolFlag{
		Name:  "verify",
		Usage: "Check order and multiset digest after sorting",
	}
	jobsFlag = &cli.IntFlag{
		Name:  "jobs",
		Usage: "Number of files processed at once (default from config: GOMAXPROCS)",
	}
	outputFlag = &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Output file",
		Required: true,
	}
)

func newApp() *cli.App {
	e := &env{}
	return &cli.App{
		Name:  "radixsort",
		Usage: "In-place radix sorting of binary and text files",
		Flags: []cli.Flag{configFlag, logLevelFlag, logFormatFlag},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.Log.Level = c.String("log-level")
			}
			if c.IsSet("log-format") {
				cfg.Log.Format = c.String("log-format")
			}
			logger, _, err := logutil.New(cfg.Log)
			if err != nil {
				return err
			}
			e.cfg, e.logger = cfg, logger
			return nil
		},
		After: func(c *cli.Context) error {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "Sort binary files of packed little-endian integers in place",
				ArgsUsage: "FILE...",
				Flags:     []cli.Flag{kindFlag, verifyFlag, jobsFlag},
				Action:    e.handleSort,
			},
			{
				Name:      "lines",
				Usage:     "Sort the lines of a text file",
				ArgsUsage: "IN",
				Flags:     []cli.Flag{outputFlag, verifyFlag},
				Action:    e.handleLines,
			},
			{
				Name:      "verify",
				Usage:     "Check that binary files are sorted",
				ArgsUsage: "FILE...",
				Flags:     []cli.Flag{kindFlag, jobsFlag},
				Action:    e.handleVerify,
			},
			{
				Name:      "plot",
				Usage:     "Render the bucket histogram of one radix round as HTML",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					kindFlag,
					outputFlag,
					&cli.IntFlag{Name: "round", Usage: "Radix round, 0 is the most significant byte"},
				},
				Action: e.handlePlot,
			},
			{
				Name:  "gen",
				Usage: "Write a generated dataset",
				Flags: []cli.Flag{
					outputFlag,
					&cli.StringFlag{Name: "kind", Usage: "Element type, or \"lines\" for text", Value: "uint32"},
					&cli.StringFlag{Name: "pattern", Usage: "uniform, sorted, reverse, dups, few, collide", Value: "uniform"},
					&cli.IntFlag{Name: "count", Usage: "Number of elements", Value: 1_000_000},
					&cli.UintFlag{Name: "seed", Usage: "Generator seed", Value: 1},
					&cli.IntFlag{Name: "max-len", Usage: "Maximum line length for --kind lines", Value: 16},
					jobsFlag,
				},
				Action: e.handleGen,
			},
		},
	}
}

func (e *env) handleSort(c *cli.Context) error {
	kind, err := radixsort.ParseKind(c.String("kind"))
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return fmt.Errorf("sort: no files given")
	}
	s := e.sorter(c)

	var g errgroup.Group
	g.SetLimit(e.jobs(c))
	for _, path := range c.Args().Slice() {
		g.Go(func() error {
			start := time.Now()
			res, err := s.SortFile(path, kind)
			if err != nil {
				e.logger.Error("sort failed", zap.String("path", path), zap.Error(err))
				return err
			}
			e.logger.Info("sorted",
				zap.String("path", res.Path),
				zap.Stringer("kind", kind),
				zap.Int("elements", res.Elements),
				zap.Int64("bytes", res.Bytes),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		})
	}
	return g.Wait()
}

func (e *env) handleLines(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("lines: exactly one input file expected, got %d", c.NArg())
	}
	in, out := c.Args().First(), c.String("output")

	start := time.Now()
	res, err := e.sorter(c).SortLines(in, out)
	if err != nil {
		return err
	}
	e.logger.Info("sorted lines",
		zap.String("input", in),
		zap.String("output", res.Path),
		zap.Int("lines", res.Elements),
		zap.Int64("bytes", res.Bytes),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (e *env) handleVerify(c *cli.Context) error {
	kind, err := radixsort.ParseKind(c.String("kind"))
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return fmt.Errorf("verify: no files given")
	}

	var g errgroup.Group
	g.SetLimit(e.jobs(c))
	for _, path := range c.Args().Slice() {
		g.Go(func() error {
			res, err := radixsort.CheckFile(path, kind)
			if err != nil {
				e.logger.Warn("not sorted", zap.String("path", path), zap.Error(err))
				return err
			}
			e.logger.Info("sorted",
				zap.String("path", path),
				zap.Int("elements", res.Elements),
				zap.String("digest", fmt.Sprintf("%016x%016x", res.Before.Sum, res.Before.Xor)),
			)
			return nil
		})
	}
	return g.Wait()
}
