// Package compress provides the two payload compression codecs GBF's wire
// format allows: none and zlib (spec.md §3.2 closes the "compression" field
// to exactly these).
//
// # Architecture
//
// The package defines two interfaces and their combination:
//
//	type Compressor interface {
//	    Compress(data []byte, level int) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte, usize int) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # NoOp
//
//	codec := compress.NewNoOpCodec()
//	stored, _ := codec.Compress(raw, 0) // returns raw unchanged
//
// Used when a field's mode is "never", or when "auto" finds compression
// does not shrink the payload.
//
// # Zlib
//
//	codec := compress.NewZlibCodec()
//	stored, _ := codec.Compress(raw, 6)
//	raw, _ := codec.Decompress(stored, usize)
//
// Backed by klauspost/compress/zlib, a drop-in faster reimplementation of
// the standard library's compress/zlib. Decompress fails if the stream
// yields fewer or more than usize bytes, per spec.md §4.1's
// "uncompress(exact_usize)"; the error is a plain error, which the read
// pipeline wraps as errs.ErrZlibError.
package compress
