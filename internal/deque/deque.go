package deque

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/randomizedcoder/bounded-deque/internal/log"
	"github.com/randomizedcoder/bounded-deque/internal/spinlock"
)

// MaxCapacity is the largest capacity Init accepts.
const MaxCapacity = 1<<31 - 1

// Deque is a bounded double-ended queue safe for concurrent use.
//
// The zero value is an uninitialized deque with default options.
// A Deque must not be copied after first use.
type Deque[T any] struct {
	lock spinlock.SpinLock

	// Guarded by lock. Positions [0, count) map to buf[(head+i) % len(buf)].
	buf    []T
	head   int
	count  int
	ready  bool
	closed bool

	opts options
}

// New returns an uninitialized deque configured by opts.
func New[T any](opts ...Option) *Deque[T] {
	d := &Deque[T]{}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Make returns a deque that is already initialized with the given capacity.
func Make[T any](capacity int, opts ...Option) (*Deque[T], error) {
	d := New[T](opts...)
	if err := d.Init(capacity); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return d, nil
}

// Init allocates the buffer for capacity elements and makes the deque ready.
//
// Calling Init again after it succeeded leaves the deque untouched and
// returns nil; the repeat is logged and reported to the observer as
// ErrAlreadyInitialized. Init fails with ErrInvalidCapacity, ErrAllocation or
// ErrClosed without changing state.
func (d *Deque[T]) Init(capacity int) error {
	d.lock.Lock()
	err := d.initLocked(capacity)
	n := d.count
	d.lock.Unlock()

	d.report(OpInit, n, err)
	switch {
	case err == nil:
		d.logger().Debug("deque initialized", "deque", d.opts.name, "capacity", capacity)
	case errors.Is(err, ErrAlreadyInitialized):
		return nil
	}
	return errtrace.Wrap(err)
}

func (d *Deque[T]) initLocked(capacity int) error {
	switch {
	case d.closed:
		return ErrClosed
	case d.ready:
		return ErrAlreadyInitialized
	case capacity <= 0 || capacity > MaxCapacity:
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	buf, err := allocate[T](capacity)
	if err != nil {
		return err
	}
	d.buf = buf
	d.head, d.count = 0, 0
	d.ready = true
	return nil
}

// allocate converts the runtime's refusal to build the slice into an error.
func allocate[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %d slots: %v", ErrAllocation, n, r)
		}
	}()
	return make([]T, n), nil
}

// Close releases the buffer. Every later operation fails with ErrClosed.
// Close is safe on a deque in any state and always returns nil.
func (d *Deque[T]) Close() error {
	d.lock.Lock()
	if d.buf != nil {
		clear(d.buf)
		d.buf = nil
	}
	d.head, d.count = 0, 0
	d.ready = false
	d.closed = true
	d.lock.Unlock()

	d.report(OpClose, 0, nil)
	return nil
}

// PushBack appends v after the last element.
func (d *Deque[T]) PushBack(v T) error {
	d.lock.Lock()
	err := d.usableLocked()
	if err == nil {
		if d.count == len(d.buf) {
			err = ErrFull
		} else {
			d.buf[d.slot(d.count)] = v
			d.count++
		}
	}
	n := d.count
	d.lock.Unlock()

	d.report(OpPushBack, n, err)
	return err
}

// PushFront inserts v before the first element.
func (d *Deque[T]) PushFront(v T) error {
	d.lock.Lock()
	err := d.usableLocked()
	if err == nil {
		if d.count == len(d.buf) {
			err = ErrFull
		} else {
			if d.head == 0 {
				d.head = len(d.buf)
			}
			d.head--
			d.buf[d.head] = v
			d.count++
		}
	}
	n := d.count
	d.lock.Unlock()

	d.report(OpPushFront, n, err)
	return err
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) {
	var v T

	d.lock.Lock()
	err := d.usableLocked()
	if err == nil {
		if d.count == 0 {
			err = ErrEmpty
		} else {
			i := d.slot(d.count - 1)
			v = d.buf[i]
			var zero T
			d.buf[i] = zero
			d.count--
		}
	}
	n := d.count
	d.lock.Unlock()

	d.report(OpPopBack, n, err)
	return v, err
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) {
	var v T

	d.lock.Lock()
	err := d.usableLocked()
	if err == nil {
		if d.count == 0 {
			err = ErrEmpty
		} else {
			v = d.buf[d.head]
			var zero T
			d.buf[d.head] = zero
			d.head = d.slot(1)
			d.count--
		}
	}
	n := d.count
	d.lock.Unlock()

	d.report(OpPopFront, n, err)
	return v, err
}

// At returns the element at position i, where 0 is the front and Len()-1
// is the back. The deque is not modified.
func (d *Deque[T]) At(i int) (T, error) {
	var v T

	d.lock.Lock()
	err := d.usableLocked()
	if err == nil {
		if i < 0 || i >= d.count {
			err = ErrIndexOutOfRange
		} else {
			v = d.buf[d.slot(i)]
		}
	}
	n := d.count
	d.lock.Unlock()

	d.report(OpAt, n, err)
	return v, err
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, error) {
	return d.peek(OpFront, 0)
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, error) {
	return d.peek(OpBack, -1)
}

// peek reads the element at pos; a negative pos counts from the back.
func (d *Deque[T]) peek(op Op, pos int) (T, error) {
	var v T

	d.lock.Lock()
	err := d.usableLocked()
	if err == nil {
		if d.count == 0 {
			err = ErrEmpty
		} else {
			if pos < 0 {
				pos += d.count
			}
			v = d.buf[d.slot(pos)]
		}
	}
	n := d.count
	d.lock.Unlock()

	d.report(op, n, err)
	return v, err
}

// Clear removes all elements and keeps the buffer.
func (d *Deque[T]) Clear() error {
	d.lock.Lock()
	err := d.usableLocked()
	if err == nil {
		clear(d.buf)
		d.head, d.count = 0, 0
	}
	d.lock.Unlock()

	d.report(OpClear, 0, err)
	return err
}

// Len returns the number of elements, or 0 if the deque is not ready.
func (d *Deque[T]) Len() int {
	d.lock.Lock()
	n := d.count
	d.lock.Unlock()
	return n
}

// Cap returns the capacity, or 0 if the deque is not ready.
func (d *Deque[T]) Cap() int {
	d.lock.Lock()
	n := len(d.buf)
	d.lock.Unlock()
	return n
}

// Name returns the name set with WithName.
func (d *Deque[T]) Name() string {
	return d.opts.name
}

func (d *Deque[T]) usableLocked() error {
	switch {
	case d.closed:
		return ErrClosed
	case !d.ready:
		return ErrNotInitialized
	}
	return nil
}

// slot maps logical position i in [0, len(buf)) to a buffer index.
func (d *Deque[T]) slot(i int) int {
	j := d.head + i
	if j >= len(d.buf) {
		j -= len(d.buf)
	}
	return j
}

func (d *Deque[T]) logger() *slog.Logger {
	if d.opts.logger == nil {
		return log.Noop
	}
	return d.opts.logger
}

func (d *Deque[T]) report(op Op, n int, err error) {
	if d.opts.observer != nil {
		d.opts.observer.Observe(op, n, err)
	}
	if err == nil || d.opts.logger == nil {
		return
	}
	d.opts.logger.Log(context.Background(), levelOf(err), "deque operation failed",
		"deque", d.opts.name,
		"op", op,
		"len", n,
		"error", err,
	)
}

// levelOf ranks failures: routine full/empty/range rejections are debug noise
// for a non-blocking container, caller mistakes are warnings.
func levelOf(err error) slog.Level {
	switch {
	case errors.Is(err, ErrAllocation):
		return slog.LevelError
	case errors.Is(err, ErrInvalidCapacity), errors.Is(err, ErrNotInitialized), errors.Is(err, ErrClosed):
		return slog.LevelWarn
	case errors.Is(err, ErrAlreadyInitialized):
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
