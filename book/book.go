// Package book defines the record type stored by booklist collections.
//
// A Book is a plain comparable value: collections only rely on its equality,
// its total order (Compare), and its text form (String/Parse). The text form
// is what the collection's flat serialization embeds per entry.
package book

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Book is an immutable book record. Two books are equal iff all four fields
// are equal (value identity).
type Book struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	ISBN   string  `json:"isbn"`
	Price  float64 `json:"price"`
}

// New creates a book record.
func New(title, author, isbn string, price float64) Book {
	return Book{Title: title, Author: author, ISBN: isbn, Price: price}
}

// Compare returns -1, 0 or +1 ordering books by Title, then Author, then
// ISBN, then Price. It is a total order consistent with ==.
func (b Book) Compare(other Book) int {
	if c := strings.Compare(b.Title, other.Title); c != 0 {
		return c
	}
	if c := strings.Compare(b.Author, other.Author); c != 0 {
		return c
	}
	if c := strings.Compare(b.ISBN, other.ISBN); c != 0 {
		return c
	}
	return cmp.Compare(b.Price, other.Price)
}

// String returns the canonical text form:
//
//	"Title", "Author", "ISBN", 12.34
//
// Quotes and backslashes inside string fields are backslash-escaped so the
// form is unambiguous. Parse accepts exactly this layout.
func (b Book) String() string {
	return fmt.Sprintf("%s, %s, %s, %.2f", quote(b.Title), quote(b.Author), quote(b.ISBN), b.Price)
}

// Parse reads a book from its canonical text form. Leading and trailing
// whitespace around fields is ignored.
func Parse(s string) (Book, error) {
	var b Book
	rest := s

	fields := []*string{&b.Title, &b.Author, &b.ISBN}
	for i, f := range fields {
		value, tail, err := unquote(rest)
		if err != nil {
			return Book{}, fmt.Errorf("book: field %d: %w", i, err)
		}
		*f = value

		tail = strings.TrimLeft(tail, " \t")
		if !strings.HasPrefix(tail, ",") {
			return Book{}, fmt.Errorf("book: missing separator after field %d in %q", i, s)
		}
		rest = tail[1:]
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return Book{}, fmt.Errorf("book: invalid price in %q: %w", s, err)
	}
	b.Price = price

	return b, nil
}

func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// unquote consumes one leading quoted string and returns its value plus the
// unconsumed tail.
func unquote(s string) (value, tail string, err error) {
	s = strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(s, `"`) {
		return "", "", fmt.Errorf("expected opening quote in %q", s)
	}

	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", fmt.Errorf("dangling escape in %q", s)
			}
			i++
			sb.WriteByte(s[i])
		case '"':
			return sb.String(), s[i+1:], nil
		default:
			sb.WriteByte(s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated quote in %q", s)
}
