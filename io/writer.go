// Package io implements the I/O pipeline (C5): Write (flatten → encode →
// compress → offset-assign → two-pass header finalisation → emit) and
// Read (parse framing → validate → seek/decompress/CRC-check per field →
// decode → insert), per spec.md §4.5.
//
// The write side is grounded on the teacher's blob.NumericEncoder.Finish():
// compute every section's size and offset first, borrow one pooled buffer
// sized exactly once, then copy each section into it in order.
package io

import (
	"fmt"

	"github.com/clicat/gbin/compress"
	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/header"
	"github.com/clicat/gbin/internal/pathindex"
	"github.com/clicat/gbin/internal/pool"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/payload"
	"github.com/clicat/gbin/value"
)

// WriteConfig carries the write options of spec.md §4.5.1's preamble:
// "{compression: never|always|auto, include_crc32: bool, zlib_level ∈
// [-1, 9]}".
type WriteConfig struct {
	Compression  format.CompressionMode
	IncludeCRC32 bool
	ZlibLevel    int
}

// DefaultWriteConfig returns the engine's default write options: auto
// compression, CRC32 disabled, default zlib level.
func DefaultWriteConfig() WriteConfig {
	return WriteConfig{Compression: format.CompressionAuto, ZlibLevel: -1}
}

type preparedField struct {
	field header.Field
	stored []byte
}

// Write runs the full write pipeline over root, returning the complete
// file bytes. root must be a record value (spec.md §4.5.1: "Given a root
// value (which MUST be a record)").
func Write(root *value.Value, cfg WriteConfig) ([]byte, error) {
	if root == nil || !root.IsRecord() || root.Record == nil {
		return nil, errs.New(errs.KindInvalidData, "write: root value must be a record")
	}

	leaves := root.Record.Flatten()

	tracker := pathindex.NewTracker()
	for _, leaf := range leaves {
		if err := tracker.Track(leaf.Path); err != nil {
			return nil, errs.Wrap(errs.KindInvalidData, err, "write: duplicate leaf path")
		}
	}

	if err := tracker.CheckPrefixes(); err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "write: leaf path prefix collision")
	}

	noop := compress.NewNoOpCodec()
	zlibCodec := compress.NewZlibCodec()

	prepared := make([]preparedField, len(leaves))

	for i, leaf := range leaves {
		f, storedBytes, err := prepareField(leaf, cfg, noop, zlibCodec)
		if err != nil {
			return nil, fmt.Errorf("write: leaf %q: %w", leaf.Path, err)
		}

		prepared[i] = preparedField{field: f, stored: storedBytes}
	}

	// Offset assignment (spec.md §4.5.1 step 5).
	var running int64
	totalPayload := 0

	for i := range prepared {
		prepared[i].field.Offset = running
		running += prepared[i].field.CSize
		totalPayload += len(prepared[i].stored)
	}

	h := header.New()
	h.Fields = make([]header.Field, len(prepared))
	for i, p := range prepared {
		h.Fields[i] = p.field
	}

	headerBytes, err := finalizeHeader(h, totalPayload)
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	out := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(out)
	out.Reset()

	totalLen := header.FramePrefixLen + len(headerBytes) + totalPayload
	out.ExtendOrGrow(totalLen)
	buf := out.Bytes()[:0]

	buf = append(buf, header.CanonicalMagic[:]...)
	buf = wire.PutUint32(buf, uint32(len(headerBytes)))
	buf = append(buf, headerBytes...)

	for _, p := range prepared {
		buf = append(buf, p.stored...)
	}

	result := make([]byte, len(buf))
	copy(result, buf)

	return result, nil
}

// prepareField runs steps 2-4 of spec.md §4.5.1 (encode, CRC, compress)
// for one leaf.
func prepareField(leaf value.Leaf, cfg WriteConfig, noop, zlibCodec compress.Codec) (header.Field, []byte, error) {
	raw, encoding, err := payload.Encode(leaf.Value)
	if err != nil {
		return header.Field{}, nil, err
	}

	f := header.Field{
		Name:     leaf.Path,
		Kind:     leaf.Value.Kind,
		Shape:    leaf.Value.Shape,
		Complex:  leaf.Value.Complex,
		Encoding: encoding,
		USize:    int64(len(raw)),
	}

	if leaf.Value.Kind == format.KindNumeric {
		f.Class = leaf.Value.Class.String()
	} else if leaf.Value.Kind == format.KindOpaque {
		f.Class = leaf.Value.OpaqueClass
	} else {
		f.Class = leaf.Value.Kind.String()
	}

	if cfg.IncludeCRC32 && len(raw) > 0 {
		f.CRC32 = wire.CRC32(raw)
	}

	stored, method, err := compressField(raw, cfg, noop, zlibCodec)
	if err != nil {
		return header.Field{}, nil, err
	}

	f.Compression = method
	f.CSize = int64(len(stored))

	return f, stored, nil
}

// compressField implements spec.md §4.5.1 step 4.
func compressField(raw []byte, cfg WriteConfig, noop, zlibCodec compress.Codec) ([]byte, format.CompressionMethod, error) {
	switch cfg.Compression {
	case format.CompressionNever:
		stored, _ := noop.Compress(raw, 0)
		return stored, format.CompressionNone, nil

	case format.CompressionAlways:
		level := cfg.ZlibLevel
		stored, err := zlibCodec.Compress(raw, level)
		if err != nil {
			return nil, 0, errs.Wrap(errs.KindZlibError, err, "zlib compress")
		}

		return stored, format.CompressionZlib, nil

	default: // auto
		compressed, err := zlibCodec.Compress(raw, cfg.ZlibLevel)
		if err != nil {
			return nil, 0, errs.Wrap(errs.KindZlibError, err, "zlib compress")
		}

		if len(compressed) < len(raw) {
			return compressed, format.CompressionZlib, nil
		}

		stored, _ := noop.Compress(raw, 0)
		return stored, format.CompressionNone, nil
	}
}

// finalizeHeader implements spec.md §4.5.1 step 6: fixed-point iteration
// over header_len/payload_start/file_size, then an in-place CRC patch.
func finalizeHeader(h *header.Header, totalPayload int) ([]byte, error) {
	var headerBytes []byte

	prevHeaderLen := -1

	for i := 0; i < 8; i++ {
		headerBytes = header.Build(h, true)
		headerLen := len(headerBytes)

		h.PayloadStart = int64(header.FramePrefixLen + headerLen)
		h.FileSize = h.PayloadStart + int64(totalPayload)

		if headerLen == prevHeaderLen {
			break
		}

		prevHeaderLen = headerLen
	}

	crcHex := wire.CRC32Hex(headerBytes)

	patched, err := header.PatchCRC(headerBytes, crcHex)
	if err != nil {
		return nil, fmt.Errorf("header CRC patch: %w", err)
	}

	h.HeaderCRC32Hex = crcHex

	return patched, nil
}
