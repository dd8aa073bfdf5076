package deque

// Error is a string type that implements the error interface.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrNotInitialized is returned by operations on a deque before Init succeeded.
	ErrNotInitialized Error = "deque: not initialized"
	// ErrInvalidCapacity is returned by Init for a capacity outside [1, MaxCapacity].
	ErrInvalidCapacity Error = "deque: invalid capacity"
	// ErrAllocation is returned by Init when the buffer could not be allocated.
	ErrAllocation Error = "deque: buffer allocation failed"
	// ErrAlreadyInitialized is reported (never returned) when Init is repeated.
	ErrAlreadyInitialized Error = "deque: already initialized"
	// ErrFull is returned by a push into a deque holding Cap() elements.
	ErrFull Error = "deque: full"
	// ErrEmpty is returned by a pop or peek on an empty deque.
	ErrEmpty Error = "deque: empty"
	// ErrIndexOutOfRange is returned by At for a position outside [0, Len()).
	ErrIndexOutOfRange Error = "deque: index out of range"
	// ErrClosed is returned by every operation after Close.
	ErrClosed Error = "deque: closed"
)
