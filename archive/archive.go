package archive

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/booklist"
	"github.com/hupe1980/booklist/codec"
)

// Manifest is the self-describing archive header. It is stored JSON-encoded
// between the fixed prefix and the payload.
type Manifest struct {
	ID               uuid.UUID   `json:"id"`
	CreatedAt        time.Time   `json:"created_at"`
	Codec            string      `json:"codec"`
	Compression      Compression `json:"compression"`
	Count            int         `json:"count"`
	Capacity         int         `json:"capacity"`
	UncompressedSize int         `json:"uncompressed_size"`
	Checksum         uint32      `json:"checksum"`
}

// Save writes the collection's flat text form to path, wrapped in a
// checksummed and optionally compressed archive. The write goes through a
// temporary file and a rename, so a crash never leaves a half-written
// archive behind.
func Save(path string, l *booklist.List, opts ...Option) (*Manifest, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var flat bytes.Buffer
	if _, err := l.WriteTo(&flat); err != nil {
		return nil, err
	}

	count, err := l.Size()
	if err != nil {
		return nil, err
	}

	payload, stored, err := compress(flat.Bytes(), o.compression)
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		ID:               uuid.New(),
		CreatedAt:        time.Now().UTC(),
		Codec:            o.codec.Name(),
		Compression:      stored,
		Count:            count,
		Capacity:         l.Capacity(),
		UncompressedSize: flat.Len(),
		Checksum:         crc32.ChecksumIEEE(payload),
	}

	header, err := o.codec.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("archive: encoding manifest: %w", err)
	}

	var buf bytes.Buffer
	prefix := [headerPrefixSize]byte{}
	binary.LittleEndian.PutUint32(prefix[0:], MagicNumber)
	binary.LittleEndian.PutUint32(prefix[4:], Version)
	binary.LittleEndian.PutUint32(prefix[8:], uint32(len(header)))
	buf.Write(prefix[:])
	buf.Write(header)
	buf.Write(payload)

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}

	return m, nil
}

// Load reads an archive written by Save and rebuilds the collection. The
// returned list uses the capacity recorded in the manifest unless overridden
// via WithListOptions. Corrupt archives are rejected before any list is
// handed to the caller.
func Load(path string, opts ...Option) (*booklist.List, *Manifest, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if len(data) < headerPrefixSize {
		return nil, nil, ErrTruncated
	}

	if binary.LittleEndian.Uint32(data[0:]) != MagicNumber {
		return nil, nil, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(data[4:]) != Version {
		return nil, nil, ErrInvalidVersion
	}

	headerLen := int(binary.LittleEndian.Uint32(data[8:]))
	if headerPrefixSize+headerLen > len(data) {
		return nil, nil, ErrTruncated
	}

	var m Manifest
	header := data[headerPrefixSize : headerPrefixSize+headerLen]
	if derr := o.codec.Unmarshal(header, &m); derr != nil {
		return nil, nil, fmt.Errorf("archive: decoding manifest: %w", derr)
	}

	// Prefer the codec the archive was written with, when it is known.
	if c, ok := codec.ByName(m.Codec); ok && c.Name() != o.codec.Name() {
		if derr := c.Unmarshal(header, &m); derr != nil {
			return nil, nil, fmt.Errorf("archive: decoding manifest: %w", derr)
		}
	}

	payload := data[headerPrefixSize+headerLen:]
	if actual := crc32.ChecksumIEEE(payload); actual != m.Checksum {
		return nil, nil, &ChecksumMismatchError{Expected: m.Checksum, Actual: actual}
	}

	flat, err := decompress(payload, m.Compression, m.UncompressedSize)
	if err != nil {
		return nil, nil, err
	}

	listOpts := append([]booklist.Option{booklist.WithCapacity(m.Capacity)}, o.listOpts...)
	l := booklist.New(listOpts...)

	if _, err := l.ReadFrom(bytes.NewReader(flat)); err != nil {
		return nil, nil, err
	}

	size, err := l.Size()
	if err != nil {
		return nil, nil, err
	}
	if size != m.Count {
		return nil, nil, fmt.Errorf("archive: book count mismatch: manifest says %d, loaded %d", m.Count, size)
	}

	return l, &m, nil
}
