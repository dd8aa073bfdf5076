package deque

import "log/slog"

// Op identifies a deque operation in observer callbacks and log records.
type Op uint8

const (
	OpInit Op = iota
	OpPushBack
	OpPushFront
	OpPopBack
	OpPopFront
	OpAt
	OpFront
	OpBack
	OpClear
	OpClose
)

var opNames = [...]string{
	OpInit:      "init",
	OpPushBack:  "push_back",
	OpPushFront: "push_front",
	OpPopBack:   "pop_back",
	OpPopFront:  "pop_front",
	OpAt:        "at",
	OpFront:     "front",
	OpBack:      "back",
	OpClear:     "clear",
	OpClose:     "close",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Observer receives the outcome of every deque operation.
//
// Observe is called after the lock is released, with n set to the number of
// elements the operation left behind and err set to its failure (nil on
// success). Implementations must be safe for concurrent use.
type Observer interface {
	Observe(op Op, n int, err error)
}

// Option configures a Deque.
type Option func(*options)

type options struct {
	name     string
	logger   *slog.Logger
	observer Observer
}

// WithName sets the name attached to log records and observer labels.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger for diagnostics. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver sets an observer notified after every operation.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}
