package store

import (
	"iter"

	"github.com/hupe1980/booklist/book"
)

// Compile time check to ensure Bounded satisfies the Sequence interface.
var _ Sequence = (*Bounded)(nil)

// Bounded is contiguous storage with a hard capacity fixed at construction.
// The slice length never changes; the number of live elements is tracked
// separately because the storage itself is not self-describing.
type Bounded struct {
	items []book.Book
	size  int
}

// NewBounded creates an empty bounded store with the given capacity.
func NewBounded(capacity int) *Bounded {
	if capacity < 0 {
		capacity = 0
	}
	return &Bounded{items: make([]book.Book, capacity)}
}

// Len returns the tracked element count.
func (s *Bounded) Len() int { return s.size }

// Cap returns the fixed capacity.
func (s *Bounded) Cap() int { return len(s.items) }

// Full reports whether another insert would exceed the capacity.
func (s *Bounded) Full() bool { return s.size >= len(s.items) }

// InsertAt shifts every element at or after offset one slot toward the back,
// writes b at offset, and bumps the tracked size.
func (s *Bounded) InsertAt(offset int, b book.Book) error {
	if offset < 0 || offset > s.size {
		return &OffsetOutOfRangeError{Offset: offset, Len: s.size}
	}
	if s.Full() {
		return &CapacityError{Capacity: len(s.items)}
	}

	for i := s.size; i > offset; i-- {
		s.items[i] = s.items[i-1]
	}
	s.items[offset] = b
	s.size++

	return nil
}

// RemoveAt shifts every element after offset one slot toward the front and
// drops the tracked size.
func (s *Bounded) RemoveAt(offset int) error {
	if offset < 0 || offset >= s.size {
		return &OffsetOutOfRangeError{Offset: offset, Len: s.size}
	}

	copy(s.items[offset:s.size-1], s.items[offset+1:s.size])
	s.size--
	s.items[s.size] = book.Book{} // clear the vacated slot

	return nil
}

// All iterates the live elements front to back.
func (s *Bounded) All() iter.Seq[book.Book] {
	return func(yield func(book.Book) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same capacity and contents.
func (s *Bounded) Clone() Sequence {
	c := NewBounded(len(s.items))
	copy(c.items, s.items)
	c.size = s.size
	return c
}
