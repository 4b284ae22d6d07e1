package store

import (
	"iter"
	"slices"

	"github.com/hupe1980/booklist/book"
)

// Compile time check to ensure Dynamic satisfies the Sequence interface.
var _ Sequence = (*Dynamic)(nil)

// Dynamic is growable contiguous storage with positional insert/remove.
type Dynamic struct {
	items []book.Book
}

// NewDynamic creates an empty dynamic store.
func NewDynamic() *Dynamic {
	return &Dynamic{}
}

// Len returns the element count.
func (s *Dynamic) Len() int { return len(s.items) }

// InsertAt inserts b before the element currently at offset.
func (s *Dynamic) InsertAt(offset int, b book.Book) error {
	if offset < 0 || offset > len(s.items) {
		return &OffsetOutOfRangeError{Offset: offset, Len: len(s.items)}
	}

	s.items = slices.Insert(s.items, offset, b)

	return nil
}

// RemoveAt erases the element at offset.
func (s *Dynamic) RemoveAt(offset int) error {
	if offset < 0 || offset >= len(s.items) {
		return &OffsetOutOfRangeError{Offset: offset, Len: len(s.items)}
	}

	s.items = slices.Delete(s.items, offset, offset+1)

	return nil
}

// All iterates the elements front to back.
func (s *Dynamic) All() iter.Seq[book.Book] {
	return func(yield func(book.Book) bool) {
		for _, b := range s.items {
			if !yield(b) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (s *Dynamic) Clone() Sequence {
	return &Dynamic{items: slices.Clone(s.items)}
}
