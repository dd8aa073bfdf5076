// Package deque provides a fixed-capacity, thread-safe double-ended queue.
//
// A Deque owns one buffer of exactly Cap() slots, allocated once by Init and
// never grown. Every operation takes a spin lock, does O(1) work on the
// buffer and releases the lock, so operations are linearizable and none of
// them ever waits for space or for an item: a push into a full deque fails
// with ErrFull, a pop from an empty one fails with ErrEmpty.
//
// # Lifecycle
//
// The zero value (or New) is uninitialized and every operation except Init
// and Close fails with ErrNotInitialized. Init moves it to ready exactly once;
// repeating Init is a logged no-op. Close releases the buffer and is safe to
// call in any state, any number of times.
//
//	d := deque.New[int](deque.WithLogger(log.Def))
//	if err := d.Init(128); err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	_ = d.PushBack(1)
//	_ = d.PushFront(0)
//	v, err := d.PopBack() // 1, nil
//
// # Indexing
//
// At uses 0-based positions: At(0) is the front, At(Len()-1) is the back.
//
// # Layout
//
// Elements live in a ring: head marks the front slot and positions wrap
// modulo the capacity. Head and tail insertion and removal are all O(1).
package deque
