// Package store provides the four backing representations of a booklist
// collection and the cross-store consistency oracle.
//
// All four stores implement the Sequence interface:
//
//   - Bounded: fixed-capacity contiguous storage with shift-based edits and
//     an explicitly tracked length
//   - Dynamic: growable contiguous storage with positional insert/remove
//   - SinglyLinked: forward-only linked nodes reached from a head sentinel
//   - DoublyLinked: sentinel ring traversable from either end
//
// The stores are strict about offsets; the softer policies (silent no-op
// removes, duplicate suppression) belong to the coordinating collection in
// the root package.
package store
