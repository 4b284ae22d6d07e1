package archive

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression names the algorithm applied to the archive payload.
type Compression string

const (
	// CompressionNone stores the flat text as-is.
	CompressionNone Compression = "none"
	// CompressionZstd applies zstd (better ratio, good for cold archives).
	CompressionZstd Compression = "zstd"
	// CompressionLZ4 applies LZ4 block compression (fast, light).
	CompressionLZ4 Compression = "lz4"
)

// compress returns the stored payload bytes and the compression actually
// used. An LZ4-incompressible payload falls back to raw storage; the manifest
// records the stored form, so loads never guess.
func compress(data []byte, c Compression) ([]byte, Compression, error) {
	switch c {
	case CompressionNone:
		return data, CompressionNone, nil

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, "", err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), CompressionZstd, nil

	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, "", err
		}
		if n == 0 {
			// Incompressible
			return data, CompressionNone, nil
		}
		return buf[:n], CompressionLZ4, nil

	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}

// decompress reverses compress. uncompressedSize comes from the manifest and
// bounds the LZ4 output buffer.
func decompress(data []byte, c Compression, uncompressedSize int) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)

	case CompressionLZ4:
		if uncompressedSize < 0 {
			return nil, fmt.Errorf("%w: negative uncompressed size", ErrTruncated)
		}
		buf := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			return nil, err
		}
		return buf[:n], nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}
