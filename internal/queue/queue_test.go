package queue_test

import (
	"testing"

	"github.com/randomizedcoder/bounded-deque/internal/deque"
	"github.com/randomizedcoder/bounded-deque/internal/queue"
)

func newDeque(t *testing.T, size int) *deque.Deque[int] {
	t.Helper()

	d, err := deque.Make[int](size)
	if err != nil {
		t.Fatalf("deque.Make(%d) error = %v", size, err)
	}
	return d
}

func testQueue[T comparable](t *testing.T, q queue.Queue[T], val T, name string) {
	t.Helper()

	// Empty queue returns false
	if _, ok := q.Pop(); ok {
		t.Errorf("%s: expected Pop() = false on empty queue", name)
	}

	// Push succeeds
	if !q.Push(val) {
		t.Errorf("%s: expected Push() = true", name)
	}

	// Pop returns pushed value
	got, ok := q.Pop()
	if !ok {
		t.Errorf("%s: expected Pop() = true after Push()", name)
	}
	if got != val {
		t.Errorf("%s: expected %v, got %v", name, val, got)
	}

	// Queue is empty again
	if _, ok := q.Pop(); ok {
		t.Errorf("%s: expected Pop() = false after draining", name)
	}
}

// Test that both views satisfy the interface
func TestQueueInterface(t *testing.T) {
	testCases := []struct {
		name string
		q    queue.Queue[int]
	}{
		{"FIFO", queue.NewFIFO(newDeque(t, 8))},
		{"LIFO", queue.NewLIFO(newDeque(t, 8))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testQueue(t, tc.q, 42, tc.name)
		})
	}
}

func TestFIFO_Full(t *testing.T) {
	q := queue.NewFIFO(newDeque(t, 2))
	if !q.Push(1) {
		t.Error("expected Push(1) = true")
	}
	if !q.Push(2) {
		t.Error("expected Push(2) = true")
	}
	if q.Push(3) {
		t.Error("expected Push(3) = false on full queue")
	}
}

func TestFIFO_Order(t *testing.T) {
	q := queue.NewFIFO(newDeque(t, 8))

	for i := 0; i < 5; i++ {
		if !q.Push(i) {
			t.Fatalf("expected Push(%d) = true", i)
		}
	}

	for i := 0; i < 5; i++ {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("expected Pop() = true for item %d", i)
		}
		if got != i {
			t.Errorf("FIFO violation: expected %d, got %d", i, got)
		}
	}
}

func TestLIFO_Order(t *testing.T) {
	q := queue.NewLIFO(newDeque(t, 8))

	for i := 0; i < 5; i++ {
		if !q.Push(i) {
			t.Fatalf("expected Push(%d) = true", i)
		}
	}

	for i := 4; i >= 0; i-- {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("expected Pop() = true for item %d", i)
		}
		if got != i {
			t.Errorf("LIFO violation: expected %d, got %d", i, got)
		}
	}
}

func TestFIFO_LenCap(t *testing.T) {
	q := queue.NewFIFO(newDeque(t, 8))

	if q.Len() != 0 {
		t.Errorf("expected Len() = 0, got %d", q.Len())
	}
	if q.Cap() != 8 {
		t.Errorf("expected Cap() = 8, got %d", q.Cap())
	}

	q.Push(1)
	q.Push(2)

	if q.Len() != 2 {
		t.Errorf("expected Len() = 2, got %d", q.Len())
	}
}

func TestViews_ShareDeque(t *testing.T) {
	d := newDeque(t, 4)
	fifo := queue.NewFIFO(d)
	lifo := queue.NewLIFO(d)

	fifo.Push(1)
	fifo.Push(2)
	lifo.Push(3)

	if got, _ := lifo.Pop(); got != 3 {
		t.Errorf("expected LIFO Pop() = 3, got %d", got)
	}
	if got, _ := fifo.Pop(); got != 1 {
		t.Errorf("expected FIFO Pop() = 1, got %d", got)
	}
	if lifo.Len() != 1 || fifo.Len() != 1 {
		t.Errorf("expected both views to report Len() = 1, got %d and %d", lifo.Len(), fifo.Len())
	}
}

func TestFIFO_Uninitialized(t *testing.T) {
	q := queue.NewFIFO(deque.New[int]())

	if q.Push(1) {
		t.Error("expected Push() = false on uninitialized deque")
	}
	if _, ok := q.Pop(); ok {
		t.Error("expected Pop() = false on uninitialized deque")
	}
	if q.Cap() != 0 {
		t.Errorf("expected Cap() = 0, got %d", q.Cap())
	}
}
