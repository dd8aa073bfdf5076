// Package spinlock provides a busy-waiting mutual exclusion lock for very
// short critical sections.
//
// A SpinLock never parks the calling goroutine in the runtime's semaphore
// queue. Lock spins on an atomic load until the lock looks free, then tries a
// single compare-and-swap. After spinLimit failed rounds it yields the
// processor with runtime.Gosched so that a holder preempted on the same P can
// make progress (important with GOMAXPROCS=1).
//
// Use it only where the lock is held for a bounded, small amount of work.
package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// spinLimit is the number of load rounds before yielding the processor.
const spinLimit = 64

const (
	unlocked uint32 = iota
	locked
)

// Ensure compile-time interface compliance.
var _ sync.Locker = (*SpinLock)(nil)

// SpinLock is a test-and-test-and-set spin lock.
//
// The zero value is an unlocked lock. A SpinLock must not be copied after
// first use.
type SpinLock struct {
	_     cpu.CacheLinePad
	state atomic.Uint32
	_     cpu.CacheLinePad
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	for {
		if l.TryLock() {
			return
		}
		for i := 0; l.state.Load() == locked; i++ {
			if i >= spinLimit {
				runtime.Gosched()
				i = 0
			}
		}
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.state.Load() == unlocked && l.state.CompareAndSwap(unlocked, locked)
}

// Unlock releases the lock.
//
// It is a run-time error if l is not locked on entry to Unlock.
func (l *SpinLock) Unlock() {
	if l.state.Swap(unlocked) != locked {
		panic("spinlock: unlock of unlocked SpinLock")
	}
}

// Locked reports whether the lock is currently held. The answer may be stale
// by the time the caller looks at it; use it for diagnostics only.
func (l *SpinLock) Locked() bool {
	return l.state.Load() == locked
}
