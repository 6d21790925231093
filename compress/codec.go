package compress

import (
	"fmt"

	"github.com/clicat/gbin/format"
)

// Compressor compresses one field's uncompressed payload bytes.
//
// Memory management:
//   - ZlibCodec returns a newly allocated slice owned by the caller;
//     NoOpCodec returns the input slice itself
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte, level int) ([]byte, error)
}

// Decompressor decompresses one field's stored payload bytes back to
// exactly usize bytes, per spec.md §4.1 ("uncompress(exact_usize)").
//
// ZlibCodec.Decompress returns a plain error when the decompressed length
// disagrees with usize; the read pipeline wraps it as errs.ErrZlibError.
// NoOpCodec.Decompress returns its input unchanged and does not check usize.
type Decompressor interface {
	Decompress(data []byte, usize int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that returns the Codec for a given
// on-disk compression method.
func CreateCodec(method format.CompressionMethod) (Codec, error) {
	switch method {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZlib:
		return NewZlibCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported compression method: %s", method)
	}
}
