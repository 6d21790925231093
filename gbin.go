// Package gbin is the library surface of the GBF (GREDBIN) file-format
// engine: four entry points wrapping the lower-level header/payload/io
// packages, mirroring how the teacher's mebo.go wraps the blob package's
// lower-level encoder/decoder API for the common case.
package gbin

import (
	"os"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/header"
	gbinio "github.com/clicat/gbin/io"
	"github.com/clicat/gbin/internal/options"
	"github.com/clicat/gbin/value"
)

// ReadOptions configures a read call.
type ReadOptions struct {
	Validate bool
}

// ReadOption configures a ReadOptions.
type ReadOption = options.Option[*ReadOptions]

// WithValidate enables header/field CRC validation on read.
func WithValidate(validate bool) ReadOption {
	return options.NoError[*ReadOptions](func(o *ReadOptions) {
		o.Validate = validate
	})
}

func resolveReadOptions(opts ...ReadOption) (*ReadOptions, error) {
	o := &ReadOptions{}
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}

// WriteOptions configures a write call (spec.md §4.5.1 preamble).
type WriteOptions struct {
	Compression  format.CompressionMode
	IncludeCRC32 bool
	ZlibLevel    int
}

// WriteOption configures a WriteOptions.
type WriteOption = options.Option[*WriteOptions]

// WithCompression sets the write-time compression policy.
func WithCompression(mode format.CompressionMode) WriteOption {
	return options.NoError[*WriteOptions](func(o *WriteOptions) {
		o.Compression = mode
	})
}

// WithCRC32 enables per-field CRC32 computation on write.
func WithCRC32(include bool) WriteOption {
	return options.NoError[*WriteOptions](func(o *WriteOptions) {
		o.IncludeCRC32 = include
	})
}

// WithZlibLevel sets the zlib compression level ([-1, 9], -1 meaning the
// library default).
func WithZlibLevel(level int) WriteOption {
	return options.New[*WriteOptions](func(o *WriteOptions) error {
		if level < -1 || level > 9 {
			return errs.New(errs.KindInvalidData, "zlib_level must be in [-1, 9]")
		}

		o.ZlibLevel = level

		return nil
	})
}

func resolveWriteOptions(opts ...WriteOption) (*WriteOptions, error) {
	o := &WriteOptions{Compression: format.CompressionAuto, ZlibLevel: -1}
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}

// ReadHeaderOnly reads and parses only the framing and header JSON of the
// file at path, without touching the payload (spec.md §6.2).
func ReadHeaderOnly(path string, opts ...ReadOption) (*header.Header, error) {
	o, err := resolveReadOptions(opts...)
	if err != nil {
		return nil, err
	}

	r, err := gbinio.Open(path, o.Validate)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Header(), nil
}

// ReadFile reads, validates (if requested), decodes, and reconstructs the
// full record tree stored at path (spec.md §6.2).
func ReadFile(path string, opts ...ReadOption) (*value.Value, error) {
	o, err := resolveReadOptions(opts...)
	if err != nil {
		return nil, err
	}

	r, err := gbinio.Open(path, o.Validate)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.ReadAll()
}

// ReadVar performs a partial read of one dot-path within the file at path
// (spec.md §4.5.3, §6.2).
func ReadVar(path string, varPath string, opts ...ReadOption) (*value.Value, error) {
	o, err := resolveReadOptions(opts...)
	if err != nil {
		return nil, err
	}

	r, err := gbinio.Open(path, o.Validate)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.ReadVar(varPath)
}

// WriteFile runs the full write pipeline over root and writes the result
// to path (spec.md §6.2). root must be a record value.
func WriteFile(path string, root *value.Value, opts ...WriteOption) error {
	o, err := resolveWriteOptions(opts...)
	if err != nil {
		return err
	}

	data, err := gbinio.Write(root, gbinio.WriteConfig{
		Compression:  o.Compression,
		IncludeCRC32: o.IncludeCRC32,
		ZlibLevel:    o.ZlibLevel,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.KindIo, err, "write file")
	}

	return nil
}
