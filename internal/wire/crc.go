package wire

import (
	"fmt"
	"hash/crc32"
)

// CRC32 computes the CRC-32 (ISO/IEC 3309, the IEEE polynomial) of data,
// per spec.md §4.1.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// CRC32Hex returns the CRC-32 of data as an 8-character uppercase hex
// string, the on-wire form of header_crc32_hex (spec.md §3.2).
func CRC32Hex(data []byte) string {
	return fmt.Sprintf("%08X", CRC32(data))
}
