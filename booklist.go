package booklist

import (
	"slices"

	"github.com/hupe1980/booklist/book"
	"github.com/hupe1980/booklist/store"
)

// List is an ordered, duplicate-free collection of books that is maintained
// simultaneously in four structurally different stores: a fixed-capacity
// array, a dynamic array, a singly-linked list, and a doubly-linked list.
//
// Every mutation applies the same logical edit to all four stores and then
// re-verifies that they still agree; every query re-verifies first. A
// disagreement is reported as *InconsistentStateError and indicates a bug in
// the coordination logic, never caller error.
//
// A List is not safe for concurrent use; callers must serialize access.
type List struct {
	arr *store.Bounded
	dyn *store.Dynamic
	sll *store.SinglyLinked
	dll *store.DoublyLinked

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty collection.
func New(opts ...Option) *List {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &List{
		arr:     store.NewBounded(o.capacity),
		dyn:     store.NewDynamic(),
		sll:     store.NewSinglyLinked(),
		dll:     store.NewDoublyLinked(),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// NewFromBooks creates a collection holding the given books, each inserted at
// the bottom in listed order. Duplicates in the input are silently dropped.
func NewFromBooks(books []book.Book, opts ...Option) (*List, error) {
	l := New(opts...)
	if err := l.Append(books...); err != nil {
		return nil, err
	}
	return l, nil
}

// Capacity returns the hard capacity of the fixed-size store.
func (l *List) Capacity() int { return l.arr.Cap() }

func (l *List) sequences() []store.Sequence {
	return []store.Sequence{l.arr, l.dyn, l.sll, l.dll}
}

// check runs the consistency oracle across all four stores and returns an
// internal-state error naming op when they diverge.
func (l *List) check(op string) error {
	ok := store.Consistent(l.sequences()...)
	l.metrics.RecordConsistencyCheck(ok)
	if !ok {
		err := &InconsistentStateError{Op: op}
		l.logger.Error("consistency check failed", "op", op)
		return err
	}
	return nil
}

// Size returns the element count. The oracle runs first, so every size query
// doubles as a health check; although the count itself is O(1), each call
// costs O(n) for the cross-store verification.
func (l *List) Size() (int, error) {
	if err := l.check("size"); err != nil {
		return 0, err
	}
	return l.dyn.Len(), nil
}

// Find returns the zero-based offset of the first book equal to b, scanning
// the dynamic store from the front. When b is absent the returned offset
// equals the collection size; absence is not an error.
func (l *List) Find(b book.Book) (int, error) {
	if err := l.check("find"); err != nil {
		return 0, err
	}

	i := 0
	for have := range l.dyn.All() {
		if have == b {
			return i, nil
		}
		i++
	}
	return l.dyn.Len(), nil
}

// Contains reports whether b is present.
func (l *List) Contains(b book.Book) (bool, error) {
	idx, err := l.Find(b)
	if err != nil {
		return false, err
	}
	return idx != l.dyn.Len(), nil
}

// Books returns a defensive copy of the sequence, front to back.
func (l *List) Books() ([]book.Book, error) {
	if err := l.check("books"); err != nil {
		return nil, err
	}
	return slices.Collect(l.dyn.All()), nil
}

// Insert adds b at a symbolic position: Top is offset 0, Bottom is the
// current size.
func (l *List) Insert(b book.Book, pos Position) error {
	switch pos {
	case Top:
		return l.InsertAt(b, 0)
	default:
		size, err := l.Size()
		if err != nil {
			return err
		}
		return l.InsertAt(b, size)
	}
}

// InsertAt adds b before the book currently at offset; offset == size
// appends. Offsets outside [0, size] return *InvalidOffsetError.
//
// If an equal book is already present anywhere in the collection the call is
// a silent no-op: no error, no change. This mirrors the insert contract of
// the remove side's no-op policy, but note the asymmetry — a bad insert
// offset is an error while a bad remove offset is not.
//
// All preconditions (offset, duplicate, capacity of the fixed store) are
// validated before any store mutates, so a rejected insert leaves all four
// stores untouched.
func (l *List) InsertAt(b book.Book, offset int) error {
	size, err := l.Size()
	if err != nil {
		l.metrics.RecordInsert(false, err)
		return err
	}

	if offset < 0 || offset > size {
		err := &InvalidOffsetError{Offset: offset, Size: size}
		l.metrics.RecordInsert(false, err)
		l.logger.LogInsert(b.Title, offset, err)
		return err
	}

	idx, err := l.Find(b)
	if err != nil {
		l.metrics.RecordInsert(false, err)
		return err
	}
	if idx != size {
		l.metrics.RecordInsert(true, nil)
		l.logger.LogDuplicate(b.Title)
		return nil
	}

	// Capacity is checked up front so the whole insert is all-or-nothing:
	// the fixed store must never reject after a sibling store has mutated.
	if l.arr.Full() {
		err := &CapacityExceededError{Capacity: l.arr.Cap()}
		l.metrics.RecordInsert(false, err)
		l.logger.LogInsert(b.Title, offset, err)
		return err
	}

	for _, s := range l.sequences() {
		if serr := s.InsertAt(offset, b); serr != nil {
			err := translateStoreError(serr)
			l.metrics.RecordInsert(false, err)
			l.logger.LogInsert(b.Title, offset, err)
			return err
		}
	}

	if err := l.check("insert"); err != nil {
		l.metrics.RecordInsert(false, err)
		return err
	}

	l.metrics.RecordInsert(false, nil)
	l.logger.LogInsert(b.Title, offset, nil)
	return nil
}

// Remove removes the first book equal to b. Absence is a silent no-op.
func (l *List) Remove(b book.Book) error {
	idx, err := l.Find(b)
	if err != nil {
		return err
	}
	return l.RemoveAt(idx)
}

// RemoveAt removes the book at offset from all four stores. Offsets outside
// [0, size) — including negative ones — are a silent no-op, unlike the insert
// side where they are an error.
func (l *List) RemoveAt(offset int) error {
	size, err := l.Size()
	if err != nil {
		l.metrics.RecordRemove(false, err)
		return err
	}

	if offset < 0 || offset >= size {
		l.metrics.RecordRemove(false, nil)
		return nil
	}

	for _, s := range l.sequences() {
		if serr := s.RemoveAt(offset); serr != nil {
			err := translateStoreError(serr)
			l.metrics.RecordRemove(false, err)
			l.logger.LogRemove(offset, err)
			return err
		}
	}

	if err := l.check("remove"); err != nil {
		l.metrics.RecordRemove(false, err)
		return err
	}

	l.metrics.RecordRemove(true, nil)
	l.logger.LogRemove(offset, nil)
	return nil
}

// MoveToTop moves b to offset 0, preserving the relative order of everything
// else. Absence is a no-op.
func (l *List) MoveToTop(b book.Book) error {
	idx, err := l.Find(b)
	if err != nil {
		l.metrics.RecordMoveToTop(err)
		return err
	}

	if idx != l.dyn.Len() {
		if err := l.RemoveAt(idx); err != nil {
			l.metrics.RecordMoveToTop(err)
			return err
		}
		if err := l.InsertAt(b, 0); err != nil {
			l.metrics.RecordMoveToTop(err)
			return err
		}
	}

	if err := l.check("move to top"); err != nil {
		l.metrics.RecordMoveToTop(err)
		return err
	}

	l.metrics.RecordMoveToTop(nil)
	l.logger.LogMoveToTop(b.Title, nil)
	return nil
}

// Append inserts every given book at the bottom in argument order, applying
// the same duplicate suppression as single inserts.
func (l *List) Append(books ...book.Book) error {
	for _, b := range books {
		if err := l.Insert(b, Bottom); err != nil {
			return err
		}
	}
	return l.check("append")
}

// AppendList appends every book of other, in its iteration order, to the
// bottom of l. Appending a list to itself adds nothing: every element is
// already present.
func (l *List) AppendList(other *List) error {
	books, err := other.Books()
	if err != nil {
		return err
	}
	return l.Append(books...)
}

// Clone returns a deep copy. The copy shares no storage with the receiver
// and keeps the receiver's logger and metrics collector.
func (l *List) Clone() *List {
	return &List{
		arr:     l.arr.Clone().(*store.Bounded),
		dyn:     l.dyn.Clone().(*store.Dynamic),
		sll:     l.sll.Clone().(*store.SinglyLinked),
		dll:     l.dll.Clone().(*store.DoublyLinked),
		logger:  l.logger,
		metrics: l.metrics,
	}
}

// Swap exchanges the four stores of two collections in constant time without
// copying elements. Logger and metrics stay with their instance. Swapping a
// collection with itself is a no-op.
func (l *List) Swap(other *List) {
	if l == other {
		return
	}

	l.arr, other.arr = other.arr, l.arr
	l.dyn, other.dyn = other.dyn, l.dyn
	l.sll, other.sll = other.sll, l.sll
	l.dll, other.dll = other.dll, l.dll
}
