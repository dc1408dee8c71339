package pinned

type onceSlot[T any] struct {
	val    T
	filled bool
}

// OnceArray is a fixed-capacity array whose slots are each written at most
// once. The backing storage is allocated at construction and never resized,
// so a pointer returned by Get stays valid for the array's lifetime no
// matter which other slots are filled later.
//
// A filled slot can never be overwritten or cleared, so the value behind a
// returned pointer never changes either. The intended use is decoding a
// table of records whose entries arrive in arbitrary order: size the array
// to the record count, Set each index exactly once as records are decoded,
// and Get dependencies whenever they are needed.
type OnceArray[T any] struct {
	slots []onceSlot[T]
	fill  int
}

// NewOnceArray creates an array with the given number of empty slots.
// It panics if capacity is negative.
func NewOnceArray[T any](capacity int) *OnceArray[T] {
	return &OnceArray[T]{slots: make([]onceSlot[T], capacity)}
}

// Cap returns the slot count fixed at construction.
func (a *OnceArray[T]) Cap() int { return len(a.slots) }

// Filled returns how many slots hold a value.
func (a *OnceArray[T]) Filled() int { return a.fill }

// Set fills slot i with v. It returns ErrIndexOutOfRange if i is outside
// the array and ErrAlreadyFilled if the slot was filled before; in the
// latter case the stored value is untouched and v is discarded.
func (a *OnceArray[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.slots) {
		return ErrIndexOutOfRange
	}
	s := &a.slots[i]
	if s.filled {
		return ErrAlreadyFilled
	}
	s.val = v
	s.filled = true
	a.fill++
	return nil
}

// Get returns a pointer to the value in slot i, or nil if the slot is
// still empty. The pointer stays valid for the array's lifetime. Writing
// through it results in undefined behaviour.
func (a *OnceArray[T]) Get(i int) (*T, error) {
	if i < 0 || i >= len(a.slots) {
		return nil, ErrIndexOutOfRange
	}
	s := &a.slots[i]
	if !s.filled {
		return nil, nil
	}
	return &s.val, nil
}

// GetOrSet fills slot i with v if it is still empty and returns a pointer
// to whatever the slot holds afterwards. Unlike Set, calling it on a
// filled slot is not an error: the existing value wins and v is discarded.
func (a *OnceArray[T]) GetOrSet(i int, v T) (*T, error) {
	if i < 0 || i >= len(a.slots) {
		return nil, ErrIndexOutOfRange
	}
	s := &a.slots[i]
	if !s.filled {
		s.val = v
		s.filled = true
		a.fill++
	}
	return &s.val, nil
}
