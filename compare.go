package booklist

import "iter"

// Compare defines a total order over collections and returns -1, 0 or +1.
// Shorter collections sort before longer ones; equal-length collections
// compare element-wise front to back, returning the sign of the first
// differing pair. Both operands are oracle-checked first.
func (l *List) Compare(other *List) (int, error) {
	if err := l.check("compare"); err != nil {
		return 0, err
	}
	if err := other.check("compare"); err != nil {
		return 0, err
	}

	switch {
	case l.dyn.Len() < other.dyn.Len():
		return -1, nil
	case l.dyn.Len() > other.dyn.Len():
		return 1, nil
	}

	next, stop := iter.Pull(other.dyn.All())
	defer stop()

	for mine := range l.dyn.All() {
		theirs, _ := next()
		if c := mine.Compare(theirs); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// Equal reports whether both collections hold the same books in the same
// order.
func (l *List) Equal(other *List) (bool, error) {
	c, err := l.Compare(other)
	return c == 0, err
}

// NotEqual is the negation of Equal.
func (l *List) NotEqual(other *List) (bool, error) {
	c, err := l.Compare(other)
	return c != 0, err
}

// Less reports whether l sorts strictly before other.
func (l *List) Less(other *List) (bool, error) {
	c, err := l.Compare(other)
	return c < 0, err
}

// LessOrEqual reports whether l sorts before or equal to other.
func (l *List) LessOrEqual(other *List) (bool, error) {
	c, err := l.Compare(other)
	return c <= 0, err
}

// Greater reports whether l sorts strictly after other.
func (l *List) Greater(other *List) (bool, error) {
	c, err := l.Compare(other)
	return c > 0, err
}

// GreaterOrEqual reports whether l sorts after or equal to other.
func (l *List) GreaterOrEqual(other *List) (bool, error) {
	c, err := l.Compare(other)
	return c >= 0, err
}
