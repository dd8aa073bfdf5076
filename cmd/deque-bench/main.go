// Command deque-bench measures single-goroutine deque latency.
//
// It times push+pop pairs at both ends of the deque and compares them with
// a buffered channel used as a non-blocking queue.
//
// Usage:
//
//	go run ./cmd/deque-bench -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/randomizedcoder/bounded-deque/internal/deque"
	"github.com/randomizedcoder/bounded-deque/internal/queue"
)

type result struct {
	name string
	dur  time.Duration
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "deque capacity")
	fill := flag.Int("fill", 0, "elements resident in the deque during the run")
	flag.Parse()

	if *fill < 0 || *fill >= *size {
		fmt.Fprintf(os.Stderr, "fill must be in [0, size), got %d\n", *fill)
		os.Exit(2)
	}

	d, err := deque.Make[int](*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i := 0; i < *fill; i++ {
		_ = d.PushBack(i)
	}

	fmt.Printf("Benchmarking bounded deque (%d iterations, size=%d, fill=%d)\n", *iterations, *size, *fill)
	fmt.Println("─────────────────────────────────────────────────")

	results := []result{
		{"PushBack/PopBack", timeIt(*iterations, func(i int) {
			_ = d.PushBack(i)
			_, _ = d.PopBack()
		})},
		{"PushFront/PopFront", timeIt(*iterations, func(i int) {
			_ = d.PushFront(i)
			_, _ = d.PopFront()
		})},
		{"PushBack/PopFront", timeIt(*iterations, func(i int) {
			_ = d.PushBack(i)
			_, _ = d.PopFront()
		})},
	}

	// The queue view adds one level of dispatch over PushBack/PopFront.
	var q queue.Queue[int] = queue.NewFIFO(d)
	results = append(results, result{"FIFO view", timeIt(*iterations, func(i int) {
		q.Push(i)
		q.Pop()
	})})

	ch := make(chan int, *size)
	for i := 0; i < *fill; i++ {
		ch <- i
	}
	results = append(results, result{"Channel", timeIt(*iterations, func(i int) {
		select {
		case ch <- i:
		default:
		}
		select {
		case <-ch:
		default:
		}
	})})

	// Results
	fmt.Printf("\nResults (push + pop per iteration):\n")
	for _, r := range results {
		fmt.Printf("  %-20s %v (%.2f ns/op)\n", r.name+":", r.dur, perOp(r.dur, *iterations))
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	for _, r := range results {
		fmt.Printf("  %-20s %.2f M ops/sec\n", r.name+":", 1000/perOp(r.dur, *iterations))
	}

	if d.Len() != *fill {
		fmt.Fprintf(os.Stderr, "\nunexpected deque length %d after run, want %d\n", d.Len(), *fill)
		os.Exit(1)
	}
	_ = d.Close()
}

func timeIt(n int, fn func(i int)) time.Duration {
	start := time.Now()
	for i := 0; i < n; i++ {
		fn(i)
	}
	return time.Since(start)
}

func perOp(d time.Duration, n int) float64 {
	return float64(d.Nanoseconds()) / float64(n)
}
