// Package archive persists booklist collections as single files.
//
// An archive holds exactly the collection's flat text serialization —
// nothing richer — wrapped in a self-describing envelope:
//
//	[magic uint32][version uint32][manifest length uint32]
//	[manifest JSON]
//	[payload]
//
// The manifest records a snapshot UUID, creation time, the codec and
// compression used, the book count, the source collection's capacity, and a
// CRC32 of the payload as stored. Payloads may be compressed with zstd or
// LZ4; the manifest records what was actually stored, so Load needs no
// options to read any archive.
//
// CRC32 detects accidental corruption only; it is not tamper protection.
package archive
