package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec implements Codec using klauspost/compress/zlib, a drop-in
// faster reimplementation of the standard library's compress/zlib. It
// backs the on-disk "zlib" compression method (spec.md §3.2, §4.1).
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

func NewZlibCodec() ZlibCodec { return ZlibCodec{} }

// Compress zlib-compresses data at the given level, per spec.md §4.1's
// "compress2(level)". level follows compress/flate conventions: -1 is the
// default (6), 0 is no compression, 1-9 trade speed for ratio.
func (c ZlibCodec) Compress(data []byte, level int) ([]byte, error) {
	if level == -1 {
		level = 6
	}

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("compress/zlib: new writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("compress/zlib: write: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress/zlib: close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress zlib-decompresses data, requiring exactly usize output bytes
// per spec.md §4.1's "uncompress(exact_usize)". A short or long result is a
// zlib error, mapped by callers to errs.ErrZlibError.
func (c ZlibCodec) Decompress(data []byte, usize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress/zlib: new reader: %w", err)
	}
	defer r.Close()

	out := make([]byte, usize)
	n, err := io.ReadFull(r, out)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("compress/zlib: read: %w", err)
	}

	if n != usize {
		return nil, fmt.Errorf("compress/zlib: decompressed %d bytes, want %d", n, usize)
	}

	// Confirm no trailing bytes remain undecompressed beyond usize, which
	// would mean usize disagreed with the true uncompressed length.
	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return nil, fmt.Errorf("compress/zlib: decompressed data exceeds declared usize %d", usize)
	}

	return out, nil
}
