package queue_test

import (
	"testing"

	"github.com/randomizedcoder/bounded-deque/internal/deque"
	"github.com/randomizedcoder/bounded-deque/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkBool bool

func benchDeque(b *testing.B, size int) *deque.Deque[int] {
	b.Helper()
	d, err := deque.Make[int](size)
	if err != nil {
		b.Fatal(err)
	}
	return d
}

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_FIFO_PushPop_Direct(b *testing.B) {
	q := queue.NewFIFO(benchDeque(b, 1024))
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkQueue_LIFO_PushPop_Direct(b *testing.B) {
	q := queue.NewLIFO(benchDeque(b, 1024))
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_FIFO_PushPop_Interface(b *testing.B) {
	var q queue.Queue[int] = queue.NewFIFO(benchDeque(b, 1024))
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

// Push-only benchmarks

func BenchmarkQueue_FIFO_Push(b *testing.B) {
	// Ensure buffer is large enough
	size := b.N
	if size < 1024 {
		size = 1024
	}
	q := queue.NewFIFO(benchDeque(b, size))
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = q.Push(i)
	}
	sinkBool = ok
}

// Contended benchmarks

func BenchmarkQueue_FIFO_PushPop_Parallel(b *testing.B) {
	q := queue.NewFIFO(benchDeque(b, 1024))
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			q.Push(i)
			q.Pop()
			i++
		}
	})
}
