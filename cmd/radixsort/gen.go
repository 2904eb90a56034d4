package main

import (
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/radixsort"
	"github.com/tamirms/radixsort/internal/dataset"
)

// genChunk is the number of elements one generator goroutine produces.
const genChunk = 1 << 16

func (e *env) handleGen(c *cli.Context) error {
	pattern, err := dataset.ParsePattern(c.String("pattern"))
	if err != nil {
		return err
	}
	n := c.Int("count")
	if n < 0 {
		return fmt.Errorf("gen: negative count %d", n)
	}
	seed := uint32(c.Uint("seed"))
	out := c.String("output")

	var buf []byte
	if c.String("kind") == "lines" {
		var b strings.Builder
		for _, s := range dataset.Strings(pattern, n, c.Int("max-len"), seed) {
			b.WriteString(s)
			b.WriteByte('\n')
		}
		buf = []byte(b.String())
	} else {
		kind, err := radixsort.ParseKind(c.String("kind"))
		if err != nil {
			return err
		}
		buf, err = e.genFixed(c, pattern, kind, n, seed)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(out, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	e.logger.Info("generated",
		zap.String("output", out),
		zap.String("kind", c.String("kind")),
		zap.String("pattern", string(pattern)),
		zap.Int("elements", n),
		zap.Int("bytes", len(buf)),
	)
	return nil
}

// genFixed fills the packed output in independent chunks.
func (e *env) genFixed(c *cli.Context, pattern dataset.Pattern, kind radixsort.Kind, n int, seed uint32) ([]byte, error) {
	width := kind.Width()
	buf := make([]byte, n*width)

	var g errgroup.Group
	g.SetLimit(e.jobs(c))
	for lo := 0; lo < n; lo += genChunk {
		hi := min(lo+genChunk, n)
		g.Go(func() error {
			words := make([]uint32, hi-lo)
			dataset.FillWords(words, pattern, lo, n, seed)
			dataset.PutFixed(buf[lo*width:hi*width], words, width)
			return nil
		})
	}
	return buf, g.Wait()
}
