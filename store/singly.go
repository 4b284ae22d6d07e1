package store

import (
	"iter"

	"github.com/hupe1980/booklist/book"
)

// Compile time check to ensure SinglyLinked satisfies the Sequence interface.
var _ Sequence = (*SinglyLinked)(nil)

type slNode struct {
	book book.Book
	next *slNode
}

// SinglyLinked is a forward-only linked store. Positions are reached
// exclusively by hopping forward from a head sentinel; there is deliberately
// no backward capability anywhere in its API.
type SinglyLinked struct {
	head slNode // before-begin sentinel
}

// NewSinglyLinked creates an empty singly-linked store.
func NewSinglyLinked() *SinglyLinked {
	return &SinglyLinked{}
}

// Len counts the nodes by traversal. The list does not track its size.
func (s *SinglyLinked) Len() int {
	n := 0
	for cur := s.head.next; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// before advances offset hops from the sentinel and returns the node after
// which an insert (or unlink of the successor) takes place. Returns nil when
// the walk runs off the list.
func (s *SinglyLinked) before(offset int) *slNode {
	if offset < 0 {
		return nil
	}
	cur := &s.head
	for i := 0; i < offset; i++ {
		cur = cur.next
		if cur == nil {
			return nil
		}
	}
	return cur
}

// InsertAt links a new node after the node offset hops from the sentinel.
func (s *SinglyLinked) InsertAt(offset int, b book.Book) error {
	cur := s.before(offset)
	if cur == nil {
		return &OffsetOutOfRangeError{Offset: offset, Len: s.Len()}
	}

	cur.next = &slNode{book: b, next: cur.next}

	return nil
}

// RemoveAt advances to the predecessor of the target and unlinks the
// successor.
func (s *SinglyLinked) RemoveAt(offset int) error {
	cur := s.before(offset)
	if cur == nil || cur.next == nil {
		return &OffsetOutOfRangeError{Offset: offset, Len: s.Len()}
	}

	cur.next = cur.next.next

	return nil
}

// All iterates front to back.
func (s *SinglyLinked) All() iter.Seq[book.Book] {
	return func(yield func(book.Book) bool) {
		for cur := s.head.next; cur != nil; cur = cur.next {
			if !yield(cur.book) {
				return
			}
		}
	}
}

// Clone rebuilds the chain in order.
func (s *SinglyLinked) Clone() Sequence {
	c := NewSinglyLinked()
	tail := &c.head
	for cur := s.head.next; cur != nil; cur = cur.next {
		tail.next = &slNode{book: cur.book}
		tail = tail.next
	}
	return c
}
