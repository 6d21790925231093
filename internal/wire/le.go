// Package wire holds the primitive operations C1 of the engine: little-
// endian pack/unpack, CRC-32, and checked size arithmetic.
package wire

import (
	"github.com/clicat/gbin/endian"
)

// Engine returns the byte order of every multi-byte integer on disk. GBF
// payloads are declared little-endian (spec.md §3.3), so Engine always
// returns the little-endian engine regardless of host. The big-endian host
// swap of numeric element bytes (spec.md §9) is done by SwapLEElements.
func Engine() endian.EndianEngine {
	return endian.GetLittleEndianEngine()
}

// HostEngine returns the engine matching this process's native byte order,
// used to detect whether a byte-swap is needed when packing/unpacking
// numeric element bytes declared little-endian on disk.
func HostEngine() endian.EndianEngine {
	if endian.IsNativeBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// PutUint32 appends a little-endian uint32 to buf.
func PutUint32(buf []byte, v uint32) []byte {
	return Engine().AppendUint32(buf, v)
}

// PutUint64 appends a little-endian uint64 to buf.
func PutUint64(buf []byte, v uint64) []byte {
	return Engine().AppendUint64(buf, v)
}

// PutInt32 appends a little-endian int32 to buf.
func PutInt32(buf []byte, v int32) []byte {
	return Engine().AppendUint32(buf, uint32(v))
}

// PutInt64 appends a little-endian int64 to buf.
func PutInt64(buf []byte, v int64) []byte {
	return Engine().AppendUint64(buf, uint64(v))
}

// Uint32 reads a little-endian uint32 from the first 4 bytes of b.
func Uint32(b []byte) uint32 {
	return Engine().Uint32(b)
}

// Uint64 reads a little-endian uint64 from the first 8 bytes of b.
func Uint64(b []byte) uint64 {
	return Engine().Uint64(b)
}

// Int32 reads a little-endian int32 from the first 4 bytes of b.
func Int32(b []byte) int32 {
	return int32(Engine().Uint32(b))
}

// Int64 reads a little-endian int64 from the first 8 bytes of b.
func Int64(b []byte) int64 {
	return int64(Engine().Uint64(b))
}
