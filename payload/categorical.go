package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeCategorical produces raw_bytes per spec.md §4.4: "u32 ncat; ncat ×
// (u32 len; len bytes); n·u32 codes." Code 0 semantics are left
// unspecified by the engine (spec.md §3.3, §9); codes are passed through
// verbatim.
func EncodeCategorical(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "categorical shape overflow")
	}

	if len(v.Codes) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("categorical codes length %d, want %d", len(v.Codes), n))
	}

	out := wire.PutUint32(make([]byte, 0, 4), uint32(len(v.Categories)))

	for _, cat := range v.Categories {
		out = appendLenPrefixedString(out, cat)
	}

	for _, code := range v.Codes {
		out = wire.PutUint32(out, code)
	}

	return out, nil
}

// DecodeCategorical reconstructs a categorical Value from raw bytes and
// shape.
func DecodeCategorical(raw []byte, shape []int) (*value.Value, error) {
	n, err := wire.NumElements(shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "categorical shape overflow")
	}

	ncat, pos, err := readCount(raw, 0)
	if err != nil {
		return nil, err
	}

	categories := make([]string, ncat)
	for i := 0; i < ncat; i++ {
		cat, newPos, err := readLenPrefixedString(raw, pos)
		if err != nil {
			return nil, err
		}

		categories[i] = cat
		pos = newPos
	}

	need := n * 4
	if pos+need > len(raw) {
		return nil, errs.New(errs.KindTruncated, "categorical codes array truncated")
	}

	codes := make([]uint32, n)
	for i := 0; i < n; i++ {
		codes[i] = wire.Uint32(raw[pos+i*4:])
	}

	return value.NewCategorical(shape, categories, codes), nil
}
