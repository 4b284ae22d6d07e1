package store

import (
	"iter"

	"github.com/hupe1980/booklist/book"
)

// Consistent reports whether all given sequences hold exactly the same books
// in exactly the same order. It is the cross-store oracle: pure, read-only,
// and called by the collection before queries and after mutations.
//
// Lengths are compared first; content is then checked by iterating every
// sequence in lockstep from front to back.
func Consistent(seqs ...Sequence) bool {
	if len(seqs) < 2 {
		return true
	}

	n := seqs[0].Len()
	for _, s := range seqs[1:] {
		if s.Len() != n {
			return false
		}
	}

	nexts := make([]func() (book.Book, bool), 0, len(seqs))
	for _, s := range seqs {
		next, stop := iter.Pull(s.All())
		defer stop()
		nexts = append(nexts, next)
	}

	for {
		want, ok := nexts[0]()
		if !ok {
			// The first sequence is exhausted; the rest must be too.
			for _, next := range nexts[1:] {
				if _, more := next(); more {
					return false
				}
			}
			return true
		}

		for _, next := range nexts[1:] {
			got, more := next()
			if !more || got != want {
				return false
			}
		}
	}
}
