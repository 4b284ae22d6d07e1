package booklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/booklist"
	"github.com/hupe1980/booklist/book"
)

var (
	bookA = book.New("A", "Author A", "111", 10.00)
	bookB = book.New("B", "Author B", "222", 20.00)
	bookC = book.New("C", "Author C", "333", 30.00)
	bookD = book.New("D", "Author D", "444", 40.00)
)

func books(t *testing.T, l *booklist.List) []book.Book {
	t.Helper()

	bs, err := l.Books()
	require.NoError(t, err)
	return bs
}

func size(t *testing.T, l *booklist.List) int {
	t.Helper()

	n, err := l.Size()
	require.NoError(t, err)
	return n
}

func TestList(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		l := booklist.New()
		assert.Equal(t, 0, size(t, l))
		assert.Empty(t, books(t, l))
	})

	t.Run("InsertTopBottom", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.Insert(bookB, booklist.Bottom))
		require.NoError(t, l.Insert(bookA, booklist.Top))
		require.NoError(t, l.Insert(bookC, booklist.Bottom))

		assert.Equal(t, []book.Book{bookA, bookB, bookC}, books(t, l))
	})

	t.Run("InsertAtOffset", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.InsertAt(bookA, 0))
		require.NoError(t, l.InsertAt(bookC, 1))
		require.NoError(t, l.InsertAt(bookB, 1)) // before C

		assert.Equal(t, []book.Book{bookA, bookB, bookC}, books(t, l))
	})

	t.Run("InsertInvalidOffset", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.InsertAt(bookA, 0))

		var ioe *booklist.InvalidOffsetError

		err := l.InsertAt(bookB, 2)
		require.ErrorAs(t, err, &ioe)
		assert.Equal(t, 2, ioe.Offset)
		assert.Equal(t, 1, ioe.Size)

		require.ErrorAs(t, l.InsertAt(bookB, -1), &ioe)

		assert.Equal(t, []book.Book{bookA}, books(t, l))
	})

	t.Run("DuplicateInsertIsNoop", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.Append(bookA, bookB, bookC))

		// Re-inserting anywhere never changes size or order.
		require.NoError(t, l.Insert(bookB, booklist.Top))
		require.NoError(t, l.InsertAt(bookC, 0))
		require.NoError(t, l.Insert(bookA, booklist.Bottom))

		assert.Equal(t, []book.Book{bookA, bookB, bookC}, books(t, l))
	})

	t.Run("Find", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.Append(bookA, bookB, bookC))

		idx, err := l.Find(bookB)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)

		// Absent book reports the collection size, not an error.
		idx, err = l.Find(bookD)
		require.NoError(t, err)
		assert.Equal(t, 3, idx)

		present, err := l.Contains(bookA)
		require.NoError(t, err)
		assert.True(t, present)

		present, err = l.Contains(bookD)
		require.NoError(t, err)
		assert.False(t, present)
	})

	t.Run("RemoveByValue", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.Append(bookA, bookB, bookC))

		require.NoError(t, l.Remove(bookB))
		assert.Equal(t, []book.Book{bookA, bookC}, books(t, l))

		// Removing an absent book is a no-op.
		require.NoError(t, l.Remove(bookD))
		assert.Equal(t, []book.Book{bookA, bookC}, books(t, l))
	})

	t.Run("RemoveAtOutOfRangeIsNoop", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.Append(bookA, bookB))

		require.NoError(t, l.RemoveAt(2))
		require.NoError(t, l.RemoveAt(-1))
		assert.Equal(t, []book.Book{bookA, bookB}, books(t, l))
	})

	t.Run("InsertFindRemoveRestores", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.Append(bookA, bookB, bookC))
		before := books(t, l)

		require.NoError(t, l.InsertAt(bookD, 1))

		idx, err := l.Find(bookD)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)

		require.NoError(t, l.RemoveAt(idx))
		assert.Equal(t, before, books(t, l))
	})

	t.Run("MoveToTop", func(t *testing.T) {
		l := booklist.New()
		require.NoError(t, l.Append(bookA, bookB, bookC))

		require.NoError(t, l.MoveToTop(bookC))
		assert.Equal(t, []book.Book{bookC, bookA, bookB}, books(t, l))

		// Absent book: no-op.
		require.NoError(t, l.MoveToTop(bookD))
		assert.Equal(t, []book.Book{bookC, bookA, bookB}, books(t, l))

		// Already on top: order unchanged.
		require.NoError(t, l.MoveToTop(bookC))
		assert.Equal(t, []book.Book{bookC, bookA, bookB}, books(t, l))
	})

	t.Run("Scenario", func(t *testing.T) {
		// Start empty; A, B, C at the bottom; C to top; remove A.
		l := booklist.New()
		require.NoError(t, l.Append(bookA, bookB, bookC))
		require.NoError(t, l.MoveToTop(bookC))
		require.NoError(t, l.Remove(bookA))

		idx, err := l.Find(bookB)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 2, size(t, l))
		assert.Equal(t, []book.Book{bookC, bookB}, books(t, l))
	})

	t.Run("CapacityExceededIsAtomic", func(t *testing.T) {
		l := booklist.New(booklist.WithCapacity(3))
		require.NoError(t, l.Append(bookA, bookB, bookC))

		var capErr *booklist.CapacityExceededError
		err := l.Insert(bookD, booklist.Bottom)
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 3, capErr.Capacity)

		// The failed insert must leave all stores untouched; any divergence
		// would trip the oracle on the next query.
		assert.Equal(t, []book.Book{bookA, bookB, bookC}, books(t, l))
		assert.Equal(t, 3, size(t, l))

		// Freeing a slot makes inserts possible again.
		require.NoError(t, l.Remove(bookB))
		require.NoError(t, l.Insert(bookD, booklist.Bottom))
		assert.Equal(t, []book.Book{bookA, bookC, bookD}, books(t, l))
	})

	t.Run("NewFromBooks", func(t *testing.T) {
		l, err := booklist.NewFromBooks([]book.Book{bookA, bookB, bookA})
		require.NoError(t, err)
		assert.Equal(t, []book.Book{bookA, bookB}, books(t, l))

		_, err = booklist.NewFromBooks([]book.Book{bookA, bookB, bookC}, booklist.WithCapacity(2))
		var capErr *booklist.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
	})

	t.Run("AppendList", func(t *testing.T) {
		l, err := booklist.NewFromBooks([]book.Book{bookA, bookB})
		require.NoError(t, err)
		r, err := booklist.NewFromBooks([]book.Book{bookB, bookC})
		require.NoError(t, err)

		require.NoError(t, l.AppendList(r))
		assert.Equal(t, []book.Book{bookA, bookB, bookC}, books(t, l))

		// The source is untouched.
		assert.Equal(t, []book.Book{bookB, bookC}, books(t, r))

		// Appending a list to itself adds nothing.
		require.NoError(t, l.AppendList(l))
		assert.Equal(t, []book.Book{bookA, bookB, bookC}, books(t, l))
	})

	t.Run("Clone", func(t *testing.T) {
		l, err := booklist.NewFromBooks([]book.Book{bookA, bookB})
		require.NoError(t, err)

		c := l.Clone()
		equal, err := c.Equal(l)
		require.NoError(t, err)
		assert.True(t, equal)

		// Deep copy: mutating the clone leaves the source alone.
		require.NoError(t, c.Remove(bookA))
		assert.Equal(t, []book.Book{bookA, bookB}, books(t, l))
		assert.Equal(t, []book.Book{bookB}, books(t, c))
	})

	t.Run("Swap", func(t *testing.T) {
		l, err := booklist.NewFromBooks([]book.Book{bookA}, booklist.WithCapacity(5))
		require.NoError(t, err)
		r, err := booklist.NewFromBooks([]book.Book{bookB, bookC}, booklist.WithCapacity(9))
		require.NoError(t, err)

		l.Swap(r)
		assert.Equal(t, []book.Book{bookB, bookC}, books(t, l))
		assert.Equal(t, []book.Book{bookA}, books(t, r))

		// Capacity travels with the stores.
		assert.Equal(t, 9, l.Capacity())
		assert.Equal(t, 5, r.Capacity())

		// Self-swap is a no-op.
		l.Swap(l)
		assert.Equal(t, []book.Book{bookB, bookC}, books(t, l))
	})

	t.Run("Metrics", func(t *testing.T) {
		collector := &booklist.BasicMetricsCollector{}
		l := booklist.New(booklist.WithMetrics(collector))

		require.NoError(t, l.Insert(bookA, booklist.Bottom))
		require.NoError(t, l.Insert(bookA, booklist.Bottom)) // duplicate
		require.NoError(t, l.RemoveAt(5))                    // no-op

		assert.GreaterOrEqual(t, collector.InsertCount.Load(), int64(2))
		assert.Equal(t, int64(1), collector.InsertDuplicates.Load())
		assert.Equal(t, int64(1), collector.RemoveNoops.Load())
		assert.Zero(t, collector.ConsistencyFailures.Load())
	})
}

// TestOracleHoldsUnderChurn hammers the collection with a fixed mixed
// workload; every operation re-verifies all four stores, so any coordination
// slip fails the test immediately.
func TestOracleHoldsUnderChurn(t *testing.T) {
	l := booklist.New(booklist.WithCapacity(64))

	all := []book.Book{bookA, bookB, bookC, bookD}
	for i := 0; i < 200; i++ {
		b := all[i%len(all)]
		switch i % 5 {
		case 0:
			require.NoError(t, l.Insert(b, booklist.Top))
		case 1:
			require.NoError(t, l.Insert(b, booklist.Bottom))
		case 2:
			require.NoError(t, l.MoveToTop(b))
		case 3:
			require.NoError(t, l.Remove(b))
		case 4:
			require.NoError(t, l.RemoveAt(i%3))
		}

		_, err := l.Size()
		require.NoError(t, err)
	}
}
