package store

import (
	"fmt"
	"iter"

	"github.com/hupe1980/booklist/book"
)

// Sequence is the positional capability shared by all four backing stores.
// The coordinating collection is written once against this interface; only
// the low-level index/pointer arithmetic differs per implementation.
type Sequence interface {
	// Len returns the number of stored books.
	Len() int

	// InsertAt inserts b before the element currently at offset. An offset
	// equal to Len appends. Out-of-range offsets return
	// *OffsetOutOfRangeError; a full bounded store returns *CapacityError
	// before mutating.
	InsertAt(offset int, b book.Book) error

	// RemoveAt removes the element at offset. Out-of-range offsets return
	// *OffsetOutOfRangeError.
	RemoveAt(offset int) error

	// All iterates the stored books front to back.
	All() iter.Seq[book.Book]

	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Sequence
}

// OffsetOutOfRangeError indicates a positional argument outside the valid
// range of a store.
type OffsetOutOfRangeError struct {
	Offset int
	Len    int
}

func (e *OffsetOutOfRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range for length %d", e.Offset, e.Len)
}

// CapacityError indicates an insert into a full fixed-capacity store.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity %d exceeded", e.Capacity)
}
