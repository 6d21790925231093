package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clicat/gbin/compress"
	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/header"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/payload"
	"github.com/clicat/gbin/value"
)

// Reader implements the read pipeline (C5, spec.md §4.5.2) over an open
// file, seeking to and decoding only the fields a given read actually
// needs, grounded on blob.NumericDecoder's parse-then-validate-then-decode
// shape but generalized to seek-per-field rather than whole-blob parsing.
type Reader struct {
	f        *os.File
	validate bool
	header   *header.Header
	headerLen int
	fileSize int64
}

// Open parses framing and the header for path (spec.md §4.5.2 steps 1-3),
// returning a Reader ready to decode fields on demand.
func Open(path string, validate bool) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindIo, err, "open file")
	}

	r := &Reader{f: f, validate: validate}

	if err := r.readFraming(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return r, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Header returns the parsed header model.
func (r *Reader) Header() *header.Header {
	return r.header
}

func (r *Reader) readFraming() error {
	prefix := make([]byte, header.FramePrefixLen)
	if _, err := io.ReadFull(r.f, prefix); err != nil {
		return errs.Wrap(errs.KindTruncated, err, "read frame prefix")
	}

	if !header.CheckMagic(prefix) {
		return errs.New(errs.KindBadMagic, "unrecognized file magic")
	}

	headerLen := int(wire.Uint32(prefix[header.MagicLen:]))
	if headerLen > header.MaxHeaderLen {
		return errs.New(errs.KindInvalidData, fmt.Sprintf("header_len %d exceeds sanity cap %d", headerLen, header.MaxHeaderLen))
	}

	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(r.f, headerBytes); err != nil {
		return errs.Wrap(errs.KindTruncated, err, "read header bytes")
	}

	if r.validate {
		ok, _, err := header.VerifyCRC(headerBytes)
		if err != nil {
			return errs.Wrap(errs.KindHeaderJSONParse, err, "locate header CRC")
		}

		if !ok {
			return errs.New(errs.KindHeaderCrcMismatch, "header CRC mismatch")
		}
	}

	h, err := header.Parse(headerBytes)
	if err != nil {
		return errs.Wrap(errs.KindHeaderJSONParse, err, "parse header JSON")
	}

	fi, err := r.f.Stat()
	if err != nil {
		return errs.Wrap(errs.KindIo, err, "stat file")
	}

	osSize := fi.Size()

	wantPayloadStart := int64(header.FramePrefixLen + headerLen)
	if h.PayloadStart == 0 {
		h.PayloadStart = wantPayloadStart
	} else if r.validate && h.PayloadStart != wantPayloadStart {
		return errs.New(errs.KindInvalidData, "payload_start disagrees with frame length")
	}

	if h.FileSize == 0 {
		h.FileSize = osSize
	} else if r.validate && h.FileSize != osSize {
		return errs.New(errs.KindInvalidData, "file_size disagrees with actual file size")
	}

	r.header = h
	r.headerLen = headerLen
	r.fileSize = osSize

	return nil
}

// readField implements spec.md §4.5.2 step 4: seek, read csize bytes,
// decompress if needed, verify CRC if validating.
func (r *Reader) readField(f header.Field) ([]byte, error) {
	abs := r.header.PayloadStart + f.Offset

	if _, err := r.f.Seek(abs, io.SeekStart); err != nil {
		return nil, errs.Wrap(errs.KindIo, err, fmt.Sprintf("seek to field %q", f.Name))
	}

	stored := make([]byte, f.CSize)
	if f.CSize > 0 {
		if _, err := io.ReadFull(r.f, stored); err != nil {
			return nil, errs.Wrap(errs.KindTruncated, err, fmt.Sprintf("read field %q payload", f.Name))
		}
	}

	var raw []byte

	switch f.Compression {
	case format.CompressionZlib:
		codec := compress.NewZlibCodec()

		decompressed, err := codec.Decompress(stored, int(f.USize))
		if err != nil {
			return nil, errs.Wrap(errs.KindZlibError, err, fmt.Sprintf("decompress field %q", f.Name))
		}

		raw = decompressed

	default:
		if int64(len(stored)) < f.USize {
			return nil, errs.New(errs.KindTruncated, fmt.Sprintf("field %q stored bytes shorter than usize", f.Name))
		}

		raw = stored[:f.USize]
	}

	if r.validate && f.USize > 0 {
		if wire.CRC32(raw) != f.CRC32 {
			return nil, errs.New(errs.KindFieldCrcMismatch, fmt.Sprintf("field %q CRC mismatch", f.Name))
		}
	}

	return raw, nil
}

// decodeField reads and decodes one field described by its header entry.
func (r *Reader) decodeField(f header.Field) (*value.Value, error) {
	raw, err := r.readField(f)
	if err != nil {
		return nil, err
	}

	v, err := payload.Decode(raw, f)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}

	return v, nil
}

// ReadAll implements read_file (spec.md §4.5.2 steps 4-6): decode every
// field and insert it into a fresh root record by dot-path.
func (r *Reader) ReadAll() (*value.Value, error) {
	root := value.NewRecord()

	for _, f := range r.header.Fields {
		v, err := r.decodeField(f)
		if err != nil {
			return nil, err
		}

		if err := root.Insert(f.Name, v); err != nil {
			return nil, err
		}
	}

	return value.NewStruct(root), nil
}

// ReadVar implements spec.md §4.5.3: a partial read of one dot-path.
func (r *Reader) ReadVar(path string) (*value.Value, error) {
	if path == "" || path == "<root>" {
		return r.ReadAll()
	}

	var exact *header.Field
	var children []header.Field

	for i := range r.header.Fields {
		f := r.header.Fields[i]

		if f.Name == path {
			exact = &r.header.Fields[i]
			continue
		}

		if strings.HasPrefix(f.Name, path+".") {
			children = append(children, f)
		}
	}

	if exact != nil && len(children) == 0 {
		return r.decodeField(*exact)
	}

	if exact == nil && len(children) == 0 {
		return nil, errs.New(errs.KindNotFound, fmt.Sprintf("no field matches %q", path))
	}

	root := value.NewRecord()

	// spec.md §9 open question: when an exact leaf at p coexists with
	// strict descendants p.*, surface the leaf under the canonical key
	// "<value>" instead of silently dropping it.
	if exact != nil {
		v, err := r.decodeField(*exact)
		if err != nil {
			return nil, err
		}

		root.Set("<value>", v)
	}

	for _, f := range children {
		stripped := strings.TrimPrefix(f.Name, path+".")

		v, err := r.decodeField(f)
		if err != nil {
			return nil, err
		}

		if err := root.Insert(stripped, v); err != nil {
			return nil, err
		}
	}

	return value.NewStruct(root), nil
}
