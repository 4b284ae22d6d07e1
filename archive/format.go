package archive

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies booklist archive files (ASCII: "BKL1").
	MagicNumber = 0x424B4C31
	// Version is the current file format version.
	Version = 1

	// headerPrefixSize covers magic, version and manifest length.
	headerPrefixSize = 12
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrTruncated          = errors.New("truncated archive")
)

// ChecksumMismatchError is returned when payload verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	var cme *ChecksumMismatchError
	return errors.As(err, &cme)
}
