package pinned

import "math/bits"

// seqBaseCap is the capacity of the first block. Block k holds
// seqBaseCap<<k elements, so the cumulative capacity of blocks 0..k-1 is
// seqBaseCap*((1<<k)-1). Must be a power of two for locate to hold.
const seqBaseCap = 32

// Seq is an append-only sequence. Elements are stored in fixed-capacity
// blocks that are allocated once and never resized or moved, so a pointer
// returned by Get stays valid and unchanged for the sequence's lifetime,
// however many values are pushed afterwards.
//
// The zero value is not usable; create with NewSeq.
type Seq[T any] struct {
	blocks [][]T
	length int
}

// NewSeq creates an empty sequence. No block is allocated until the first
// Push.
func NewSeq[T any]() *Seq[T] { return &Seq[T]{} }

// locate maps a global index to its (block, offset) pair in closed form.
// With doubling block capacities the block number is the bit length of
// i/seqBaseCap+1 minus one, and the offset is what remains after the
// cumulative capacity of the blocks before it.
func locate(i int) (block, offset int) {
	n := uint(i/seqBaseCap) + 1
	k := bits.Len(n) - 1
	return k, i - seqBaseCap*((1<<k)-1)
}

// Push stores v and returns its index, which equals the length before the
// call. Pushing never invalidates a previously returned index or pointer:
// growing appends a fresh block and only the outer list of block headers
// is reallocated, never the element arrays themselves.
func (s *Seq[T]) Push(v T) int {
	i := s.length
	b, off := locate(i)
	if b == len(s.blocks) {
		s.blocks = append(s.blocks, make([]T, seqBaseCap<<b))
	}
	s.blocks[b][off] = v
	s.length++
	return i
}

// Get returns a pointer to the element at index i, valid for the
// sequence's lifetime, or false if i has not been assigned by a Push.
// Writing through the pointer results in undefined behaviour.
func (s *Seq[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= s.length {
		return nil, false
	}
	b, off := locate(i)
	return &s.blocks[b][off], true
}

// Len returns the number of elements pushed so far.
func (s *Seq[T]) Len() int { return s.length }

// IsEmpty reports whether nothing has been pushed yet.
func (s *Seq[T]) IsEmpty() bool { return s.length == 0 }
