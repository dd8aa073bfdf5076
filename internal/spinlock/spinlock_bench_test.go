package spinlock_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/bounded-deque/internal/spinlock"
)

var sinkInt int

func BenchmarkLock_Mutex_Uncontended(b *testing.B) {
	var mu sync.Mutex
	b.ReportAllocs()
	b.ResetTimer()

	n := 0
	for i := 0; i < b.N; i++ {
		mu.Lock()
		n++
		mu.Unlock()
	}
	sinkInt = n
}

func BenchmarkLock_SpinLock_Uncontended(b *testing.B) {
	var l spinlock.SpinLock
	b.ReportAllocs()
	b.ResetTimer()

	n := 0
	for i := 0; i < b.N; i++ {
		l.Lock()
		n++
		l.Unlock()
	}
	sinkInt = n
}

func BenchmarkLock_Mutex_Parallel(b *testing.B) {
	var mu sync.Mutex
	n := 0
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			n++
			mu.Unlock()
		}
	})
	sinkInt = n
}

func BenchmarkLock_SpinLock_Parallel(b *testing.B) {
	var l spinlock.SpinLock
	n := 0
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			n++
			l.Unlock()
		}
	})
	sinkInt = n
}
