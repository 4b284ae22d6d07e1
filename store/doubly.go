package store

import (
	"iter"

	"github.com/hupe1980/booklist/book"
)

// Compile time check to ensure DoublyLinked satisfies the Sequence interface.
var _ Sequence = (*DoublyLinked)(nil)

type dlNode struct {
	book book.Book
	prev *dlNode
	next *dlNode
}

// DoublyLinked is a linked store with a sentinel ring, traversable from
// either end. Positional access walks from whichever end is closer.
type DoublyLinked struct {
	root dlNode // sentinel: root.next is front, root.prev is back
	size int
}

// NewDoublyLinked creates an empty doubly-linked store.
func NewDoublyLinked() *DoublyLinked {
	d := &DoublyLinked{}
	d.root.next = &d.root
	d.root.prev = &d.root
	return d
}

// Len returns the element count.
func (s *DoublyLinked) Len() int { return s.size }

// nodeAt returns the node at offset; offset == size yields the sentinel,
// which is the insert-before target for an append.
func (s *DoublyLinked) nodeAt(offset int) *dlNode {
	if offset <= s.size/2 {
		cur := s.root.next
		for i := 0; i < offset; i++ {
			cur = cur.next
		}
		return cur
	}
	cur := &s.root
	for i := s.size; i > offset; i-- {
		cur = cur.prev
	}
	return cur
}

// InsertAt splices a new node in before the node currently at offset.
func (s *DoublyLinked) InsertAt(offset int, b book.Book) error {
	if offset < 0 || offset > s.size {
		return &OffsetOutOfRangeError{Offset: offset, Len: s.size}
	}

	at := s.nodeAt(offset)
	n := &dlNode{book: b, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	s.size++

	return nil
}

// RemoveAt unlinks the node at offset.
func (s *DoublyLinked) RemoveAt(offset int) error {
	if offset < 0 || offset >= s.size {
		return &OffsetOutOfRangeError{Offset: offset, Len: s.size}
	}

	n := s.nodeAt(offset)
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil // avoid lingering references
	s.size--

	return nil
}

// All iterates front to back.
func (s *DoublyLinked) All() iter.Seq[book.Book] {
	return func(yield func(book.Book) bool) {
		for cur := s.root.next; cur != &s.root; cur = cur.next {
			if !yield(cur.book) {
				return
			}
		}
	}
}

// Clone rebuilds the ring in order.
func (s *DoublyLinked) Clone() Sequence {
	c := NewDoublyLinked()
	for cur := s.root.next; cur != &s.root; cur = cur.next {
		_ = c.InsertAt(c.size, cur.book)
	}
	return c
}
