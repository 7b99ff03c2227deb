package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dalibo/xprod/internal/config"
	"github.com/dalibo/xprod/internal/perf"
	"github.com/dalibo/xprod/internal/product"
	"github.com/dalibo/xprod/internal/render"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// Check context every this number of combinations.
const checkEvery = 1024

func xprod(ctx context.Context, flags *pflag.FlagSet, stdout io.Writer) (err error) {
	start := time.Now()
	slog.Info("Starting xprod.",
		"version", version(),
		"runtime", runtime.Version(),
		"commit", commit,
		"pid", os.Getpid(),
	)
	if strings.Contains(version(), "-") {
		slog.Warn("Running a prerelease! Use at your own risks!")
	}

	c, err := config.Load(flags)
	if err != nil {
		return
	}
	t, err := render.NewTemplate(c.Format, c.Names())
	if err != nil {
		return
	}

	sequences, err := openAll(ctx, c)
	if err != nil {
		return
	}

	var w render.Writer
	if !c.Count {
		w, err = render.New(c.Output, stdout, t)
		if err != nil {
			return
		}
	}

	var watch perf.StopWatch
	var count int
	watch.TimeIt(func() {
		count, err = generate(ctx, product.New(sequences...), w, c.Limit)
	})
	if w != nil {
		// Flush what was generated, even on error.
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return
	}
	if c.Count {
		fmt.Fprintf(stdout, "%d\n", count)
	}

	vmPeak := perf.ReadVMPeak()
	slog.Info("Generation complete.",
		"elapsed", time.Since(start),
		"combinations", count,
		"rate", fmt.Sprintf("%.0f/s", watch.Rate(count)),
		"mempeak", perf.FormatBytes(vmPeak*1024),
	)

	if count == 0 && c.FailEmpty {
		return errEmpty
	}
	return
}

// openAll builds dimension sequences, checking concurrently that each one
// opens. This reports a missing file before printing anything.
func openAll(ctx context.Context, c config.Config) ([]product.Sequence[string], error) {
	sequences := make([]product.Sequence[string], len(c.Dimensions))
	g, ctx := errgroup.WithContext(ctx)
	for i, d := range c.Dimensions {
		g.Go(func() error {
			seq, err := d.Sequence(c.Retries)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			cursor, err := seq.Open()
			if err != nil {
				return fmt.Errorf("dimension %s: %w", d.Name, err)
			}
			if err := cursor.Close(); err != nil {
				return fmt.Errorf("dimension %s: %w", d.Name, err)
			}
			slog.Debug("Dimension ready.", "index", i, "name", d.Name)
			sequences[i] = seq
			return nil
		})
	}
	return sequences, g.Wait()
}

// generate writes combinations up to limit. A nil w only counts.
func generate(ctx context.Context, p product.CrossProduct[string], w render.Writer, limit int) (count int, err error) {
	for values, err := range p.All() {
		if err != nil {
			return count, err
		}
		if count%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
		if w != nil {
			if err := w.Write(values); err != nil {
				return count, fmt.Errorf("write: %w", err)
			}
		}
		count++
		if limit > 0 && count >= limit {
			slog.Debug("Limit reached.", "limit", limit)
			break
		}
	}
	return count, nil
}
