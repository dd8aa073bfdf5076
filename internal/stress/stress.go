// Package stress drives a deque from many goroutines and verifies that no
// element is lost or duplicated.
//
// Every worker performs push/pop pairs. A value is pushed, then some value
// (not necessarily the same one) is popped. Values encode the worker and the
// iteration so they are unique across the run. At the end the deque is
// drained and the count, sum and xor of everything pushed must equal those
// of everything popped.
package stress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/bounded-deque/internal/deque"
	"github.com/randomizedcoder/bounded-deque/internal/log"
)

// Mode selects which ends of the deque the workers use.
type Mode string

const (
	// ModeStack pushes and pops at the back.
	ModeStack Mode = "stack"
	// ModeQueue pushes at the back and pops at the front.
	ModeQueue Mode = "queue"
	// ModeMixed rotates through all four push/pop combinations.
	ModeMixed Mode = "mixed"
)

// ErrMismatch is returned by Result.Verify when the pushed and popped
// totals differ.
var ErrMismatch = errors.New("stress: pushed and popped values differ")

// Config describes a stress run.
type Config struct {
	Workers  int
	Pairs    int
	Mode     Mode
	Progress time.Duration // progress log interval, 0 disables
	Logger   *slog.Logger
}

func (c Config) validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("stress: workers must be positive, got %d", c.Workers)
	case c.Pairs <= 0:
		return fmt.Errorf("stress: pairs must be positive, got %d", c.Pairs)
	case int64(c.Pairs) > 1<<32-2:
		return fmt.Errorf("stress: pairs must fit in 32 bits, got %d", c.Pairs)
	}
	switch c.Mode {
	case ModeStack, ModeQueue, ModeMixed, "":
		return nil
	default:
		return fmt.Errorf("stress: unknown mode %q", c.Mode)
	}
}

// Totals summarizes one side of the run.
type Totals struct {
	Count uint64
	Sum   uint64
	Xor   uint64
}

func (t *Totals) add(v uint64) {
	t.Count++
	t.Sum += v
	t.Xor ^= v
}

func (t *Totals) merge(o Totals) {
	t.Count += o.Count
	t.Sum += o.Sum
	t.Xor ^= o.Xor
}

// Result is the outcome of a run.
type Result struct {
	Pushed   Totals
	Popped   Totals // includes Drained
	Drained  int    // elements left in the deque when the workers stopped
	Full     uint64 // push attempts rejected with ErrFull
	Empty    uint64 // pop attempts rejected with ErrEmpty
	Elapsed  time.Duration
	Canceled bool
}

// Verify checks that everything pushed was popped exactly once.
func (r Result) Verify() error {
	if r.Pushed != r.Popped {
		return fmt.Errorf("%w: pushed %+v, popped %+v", ErrMismatch, r.Pushed, r.Popped)
	}
	return nil
}

type worker struct {
	id    int
	d     *deque.Deque[uint64]
	pairs int
	mode  Mode
	done  *atomic.Uint64

	pushed, popped Totals
	full, empty    uint64
}

type pushFunc func(*deque.Deque[uint64], uint64) error
type popFunc func(*deque.Deque[uint64]) (uint64, error)

var combos = [...]struct {
	push pushFunc
	pop  popFunc
}{
	{(*deque.Deque[uint64]).PushBack, (*deque.Deque[uint64]).PopBack},
	{(*deque.Deque[uint64]).PushBack, (*deque.Deque[uint64]).PopFront},
	{(*deque.Deque[uint64]).PushFront, (*deque.Deque[uint64]).PopBack},
	{(*deque.Deque[uint64]).PushFront, (*deque.Deque[uint64]).PopFront},
}

func (w *worker) run(ctx context.Context) error {
	for j := 0; j < w.pairs; j++ {
		c := combos[w.combo(j)]
		v := uint64(w.id)<<32 | uint64(j+1)

		for {
			err := c.push(w.d, v)
			if err == nil {
				w.pushed.add(v)
				break
			}
			if !errors.Is(err, deque.ErrFull) {
				return errtrace.Wrap(err)
			}
			w.full++
			if err := ctx.Err(); err != nil {
				return errtrace.Wrap(err)
			}
		}

		for {
			got, err := c.pop(w.d)
			if err == nil {
				w.popped.add(got)
				break
			}
			if !errors.Is(err, deque.ErrEmpty) {
				return errtrace.Wrap(err)
			}
			w.empty++
			if err := ctx.Err(); err != nil {
				return errtrace.Wrap(err)
			}
		}

		w.done.Add(1)
		if err := ctx.Err(); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (w *worker) combo(j int) int {
	switch w.mode {
	case ModeQueue:
		return 1
	case ModeMixed:
		return (w.id + j) % len(combos)
	default:
		return 0
	}
}

// Run executes cfg against d, which must be initialized and empty.
//
// Cancellation of ctx stops the workers early; the result is still
// verifiable because the deque is drained after the workers stop.
func Run(ctx context.Context, d *deque.Deque[uint64], cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, errtrace.Wrap(err)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeMixed
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Noop
	}
	if d.Cap() == 0 {
		return Result{}, errtrace.Wrap(deque.ErrNotInitialized)
	}
	if n := d.Len(); n != 0 {
		return Result{}, fmt.Errorf("stress: deque must start empty, has %d elements", n)
	}

	var done atomic.Uint64
	workers := make([]*worker, cfg.Workers)
	for i := range workers {
		workers[i] = &worker{id: i, d: d, pairs: cfg.Pairs, mode: cfg.Mode, done: &done}
	}

	logger.Info("stress run started",
		"deque", d.Name(),
		"workers", cfg.Workers,
		"pairs", cfg.Pairs,
		"mode", cfg.Mode,
		"capacity", d.Cap(),
	)

	start := time.Now()
	stop := make(chan struct{})
	var progress sync.WaitGroup
	if cfg.Progress > 0 {
		progress.Add(1)
		go func() {
			defer progress.Done()
			reportProgress(logger, cfg.Progress, stop, &done, uint64(cfg.Workers*cfg.Pairs), start)
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error { return w.run(gctx) })
	}
	err := g.Wait()
	close(stop)
	progress.Wait()

	res := Result{Elapsed: time.Since(start)}
	for _, w := range workers {
		res.Pushed.merge(w.pushed)
		res.Popped.merge(w.popped)
		res.Full += w.full
		res.Empty += w.empty
	}
	for {
		v, perr := d.PopFront()
		if perr != nil {
			break
		}
		res.Popped.add(v)
		res.Drained++
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return res, errtrace.Wrap(err)
		}
		res.Canceled = true
		logger.Warn("stress run canceled", "error", err, "completed_pairs", done.Load())
	}

	logger.Info("stress run finished",
		"deque", d.Name(),
		"pushed", res.Pushed.Count,
		"popped", res.Popped.Count,
		"drained", res.Drained,
		"full", res.Full,
		"empty", res.Empty,
		"elapsed", res.Elapsed,
	)
	return res, nil
}

func reportProgress(logger *slog.Logger, every time.Duration, stop <-chan struct{}, done *atomic.Uint64, total uint64, start time.Time) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			n := done.Load()
			logger.Info("stress progress",
				"completed_pairs", n,
				"total_pairs", total,
				"percent", float64(n)*100/float64(total),
				"elapsed", time.Since(start),
			)
		}
	}
}
