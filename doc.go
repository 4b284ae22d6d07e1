// Package booklist provides an ordered, duplicate-free collection of book
// records that is redundantly maintained in four structurally different
// stores and continuously cross-checked for consistency.
//
// The four stores — a fixed-capacity array, a dynamic array, a singly-linked
// list, and a doubly-linked list — always hold exactly the same books in
// exactly the same order. Every mutation applies the same logical edit to all
// four; every entry point runs the consistency oracle, so any coordination
// bug surfaces immediately as *InconsistentStateError instead of silently
// corrupting state. The point is pedagogical: one positional-sequence API,
// four very different implementations underneath.
//
// # Quick Start
//
//	l := booklist.New()
//	_ = l.Insert(book.New("The Go Programming Language", "Donovan", "978-0134190440", 39.99), booklist.Bottom)
//	_ = l.Insert(book.New("Learning Go", "Bodner", "978-1492077213", 49.49), booklist.Bottom)
//
//	idx, _ := l.Find(book.New("Learning Go", "Bodner", "978-1492077213", 49.49))
//	_ = l.MoveToTop(book.New("Learning Go", "Bodner", "978-1492077213", 49.49))
//
// # Contracts worth knowing
//
//   - Inserting a book that is already present is a silent no-op.
//   - Removing at an out-of-range offset is a silent no-op, while inserting
//     at an out-of-range offset is an error. The asymmetry is deliberate.
//   - The fixed store's capacity is a hard bound; a full collection rejects
//     inserts with *CapacityExceededError before any store mutates.
//   - Size and every other query re-verify all four stores first, so each
//     read costs O(n) even though the count itself is O(1).
//
// # Serialization
//
// List implements io.WriterTo and io.ReaderFrom with a flat text layout: a
// count line followed by one width-5 indexed line per book. ReadFrom replaces
// the whole collection only when the entire input parses.
//
// # Subpackages
//
//   - book: the record type (equality, total order, text form)
//   - store: the four Sequence implementations and the consistency oracle
//   - codec: JSON codecs used by archive headers
//   - archive: checksummed, optionally compressed files of the flat form
//
// Collections are not safe for concurrent use; callers must serialize
// access.
package booklist
