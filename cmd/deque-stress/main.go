// Command deque-stress runs concurrent push/pop pairs against one bounded
// deque and verifies that nothing was lost or duplicated.
//
// Usage:
//
//	go run ./cmd/deque-stress -workers 8 -pairs 1000000 -capacity 64 -mode mixed -metrics
//
// The exit status is 1 if verification fails or the run errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"braces.dev/errtrace"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/randomizedcoder/bounded-deque/internal/deque"
	"github.com/randomizedcoder/bounded-deque/internal/log"
	"github.com/randomizedcoder/bounded-deque/internal/metrics"
	"github.com/randomizedcoder/bounded-deque/internal/stress"
)

type config struct {
	workers  int
	pairs    int
	capacity int
	mode     string
	timeout  time.Duration
	progress time.Duration
	logFmt   string
	debug    bool
	metrics  bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.workers, "workers", 8, "number of concurrent workers")
	flag.IntVar(&cfg.pairs, "pairs", 1_000_000, "push/pop pairs per worker")
	flag.IntVar(&cfg.capacity, "capacity", 64, "deque capacity")
	flag.StringVar(&cfg.mode, "mode", string(stress.ModeMixed), "deque ends used: stack, queue or mixed")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "stop the run after this long (0 = no limit)")
	flag.DurationVar(&cfg.progress, "progress", time.Second, "progress log interval (0 = off)")
	flag.StringVar(&cfg.logFmt, "log", log.FormatConsole, "log format: console, dev or none")
	flag.BoolVar(&cfg.debug, "debug", false, "log deque failures at debug level")
	flag.BoolVar(&cfg.metrics, "metrics", false, "print collected metrics after the run")
	flag.Parse()

	lvl := slog.LevelInfo
	if cfg.debug {
		lvl = slog.LevelDebug
	}
	logger, err := log.New(cfg.logFmt, os.Stderr, lvl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("stress run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, out io.Writer) error {
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		return errtrace.Wrap(err)
	}

	const name = "stress"
	d, err := deque.Make[uint64](cfg.capacity,
		deque.WithName(name),
		deque.WithLogger(logger),
		deque.WithObserver(m.Observer(name)),
	)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer d.Close()

	res, err := stress.Run(ctx, d, stress.Config{
		Workers:  cfg.workers,
		Pairs:    cfg.pairs,
		Mode:     stress.Mode(cfg.mode),
		Progress: cfg.progress,
		Logger:   logger,
	})
	if err != nil {
		return errtrace.Wrap(err)
	}

	printResult(out, cfg, res)
	if cfg.metrics {
		if err := printMetrics(out, reg); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return errtrace.Wrap(res.Verify())
}

func printResult(w io.Writer, cfg config, res stress.Result) {
	pairs := res.Popped.Count - uint64(res.Drained)
	perPair := float64(res.Elapsed.Nanoseconds()) / float64(max(pairs, 1))

	fmt.Fprintf(w, "Stress run: %d workers x %d pairs, capacity=%d, mode=%s\n", cfg.workers, cfg.pairs, cfg.capacity, cfg.mode)
	fmt.Fprintln(w, "─────────────────────────────────────────────────")
	fmt.Fprintf(w, "  Pushed:    %d (sum=%#x xor=%#x)\n", res.Pushed.Count, res.Pushed.Sum, res.Pushed.Xor)
	fmt.Fprintf(w, "  Popped:    %d (sum=%#x xor=%#x)\n", res.Popped.Count, res.Popped.Sum, res.Popped.Xor)
	fmt.Fprintf(w, "  Drained:   %d\n", res.Drained)
	fmt.Fprintf(w, "  Full:      %d rejected pushes\n", res.Full)
	fmt.Fprintf(w, "  Empty:     %d rejected pops\n", res.Empty)
	fmt.Fprintf(w, "  Elapsed:   %v (%.2f ns/pair across all workers)\n", res.Elapsed, perPair)
	if res.Canceled {
		fmt.Fprintln(w, "  Canceled:  yes")
	}
	if err := res.Verify(); err != nil {
		fmt.Fprintf(w, "\n  FAILED: %v\n", err)
		return
	}
	fmt.Fprintln(w, "\n  OK: every pushed value was popped exactly once")
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errtrace.Wrap(err)
	}

	fmt.Fprintln(w, "\nMetrics:")
	for _, mf := range mfs {
		lines := make([]string, 0, len(mf.GetMetric()))
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			var v float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				v = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s{%s} %g", mf.GetName(), strings.Join(labels, ","), v))
		}
		sort.Strings(lines)
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
	}
	return nil
}
