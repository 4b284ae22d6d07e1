package booklist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/booklist/book"
)

// Compile time checks for the serialization interfaces.
var (
	_ io.WriterTo   = (*List)(nil)
	_ io.ReaderFrom = (*List)(nil)
)

// WriteTo writes the flat text form of the collection:
//
//	<count>
//	<index right-justified to width 5>:  <book text form>
//	...
//
// one line per book after the count line. The oracle runs first; iteration
// walks the singly-linked store.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	if err := l.check("write"); err != nil {
		return 0, err
	}

	var total int64

	n, err := fmt.Fprintf(w, "%d\n", l.dyn.Len())
	total += int64(n)
	if err != nil {
		return total, err
	}

	i := 0
	for b := range l.sll.All() {
		n, err := fmt.Fprintf(w, "%5d:  %s\n", i, b)
		total += int64(n)
		if err != nil {
			return total, err
		}
		i++
	}

	return total, nil
}

// ReadFrom parses the WriteTo layout and wholly replaces the receiver's
// contents with the parsed sequence, inserting each book at the bottom in
// file order. On any error the receiver is left unchanged: parsing targets a
// fresh collection (with the receiver's capacity) that is swapped in only on
// full success.
func (l *List) ReadFrom(r io.Reader) (int64, error) {
	if err := l.check("read"); err != nil {
		return 0, err
	}

	br := bufio.NewReader(r)
	var total int64

	line, n, err := readLine(br)
	total += n
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return total, fmt.Errorf("booklist: reading count: %w", err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count < 0 {
		return total, fmt.Errorf("booklist: invalid count %q", strings.TrimSpace(line))
	}

	tmp := New(WithCapacity(l.arr.Cap()))
	for i := 0; i < count; i++ {
		line, n, err := readLine(br)
		total += n
		if line == "" && err != nil {
			return total, fmt.Errorf("booklist: entry %d: %w", i, err)
		}

		// Skip the index label up to the first colon; its value is not
		// interpreted.
		_, rest, found := strings.Cut(line, ":")
		if !found {
			return total, fmt.Errorf("booklist: entry %d: missing label in %q", i, line)
		}

		b, perr := book.Parse(strings.TrimSpace(rest))
		if perr != nil {
			return total, fmt.Errorf("booklist: entry %d: %w", i, perr)
		}

		if ierr := tmp.Insert(b, Bottom); ierr != nil {
			return total, ierr
		}
	}

	l.Swap(tmp)
	return total, nil
}

// readLine reads up to and including the next newline, tolerating a missing
// final newline at EOF. It returns the line without its line ending.
func readLine(br *bufio.Reader) (string, int64, error) {
	line, err := br.ReadString('\n')
	n := int64(len(line))
	line = strings.TrimRight(line, "\r\n")
	return line, n, err
}
