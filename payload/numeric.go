// Package payload implements the per-kind payload codec (C4): the
// deterministic byte layouts of spec.md §4.4, one file per kind, each
// exposing an Encode/Decode pair in the teacher's encoder-file idiom
// (encoding/numeric_raw.go, encoding/varstring.go): one type of leaf per
// file, explicit length-prefixed framing, validation before encode, and
// Truncated-style errors on short buffers during decode.
package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeNumeric produces raw_bytes for a numeric leaf per spec.md §4.4's
// "n·bpe bytes of real; if complex, another n·bpe bytes of imag", swapping
// element byte order on a big-endian host so the stored bytes are always
// little-endian (spec.md §9).
func EncodeNumeric(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "numeric shape overflow")
	}

	bpe := v.Class.BytesPerElement()
	if bpe == 0 {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("unknown numeric class %q", v.Class))
	}

	want, err := wire.CheckedMulInt(n, bpe)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "numeric payload size overflow")
	}

	if len(v.RealLE) != want {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("real_le length %d, want %d", len(v.RealLE), want))
	}

	if v.Complex && len(v.ImagLE) != want {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("imag_le length %d, want %d", len(v.ImagLE), want))
	}

	total := want
	if v.Complex {
		total += want
	}

	out := make([]byte, 0, total)
	out = append(out, v.RealLE...)
	wire.SwapLEElements(out[:len(v.RealLE)], bpe)

	if v.Complex {
		start := len(out)
		out = append(out, v.ImagLE...)
		wire.SwapLEElements(out[start:], bpe)
	}

	return out, nil
}

// DecodeNumeric reconstructs a numeric Value from raw bytes per the field
// metadata already parsed from the header (class, shape, complex).
func DecodeNumeric(raw []byte, class format.Class, shape []int, isComplex bool) (*value.Value, error) {
	n, err := wire.NumElements(shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "numeric shape overflow")
	}

	bpe := class.BytesPerElement()
	if bpe == 0 {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("unknown numeric class %q", class))
	}

	want, err := wire.CheckedMulInt(n, bpe)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "numeric payload size overflow")
	}

	need := want
	if isComplex {
		need += want
	}

	if len(raw) < need {
		return nil, errs.New(errs.KindTruncated, fmt.Sprintf("numeric payload has %d bytes, need %d", len(raw), need))
	}

	realLE := make([]byte, want)
	copy(realLE, raw[:want])
	wire.SwapLEElements(realLE, bpe)

	var imagLE []byte
	if isComplex {
		imagLE = make([]byte, want)
		copy(imagLE, raw[want:want+want])
		wire.SwapLEElements(imagLE, bpe)
	}

	return value.NewNumeric(class, shape, isComplex, realLE, imagLE), nil
}
