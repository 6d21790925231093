package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeDateTime produces raw_bytes per spec.md §4.4: "u32 count=n; u32
// tz_len; tz_bytes; u32 loc_len; loc_bytes; u32 fmt_len; fmt_bytes; n
// NaT-mask bytes; n·i64 unix-ms."
func EncodeDateTime(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "datetime shape overflow")
	}

	if len(v.NaTMask) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("NaT mask length %d, want %d", len(v.NaTMask), n))
	}

	if len(v.UnixMS) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("unix-ms length %d, want %d", len(v.UnixMS), n))
	}

	out := wire.PutUint32(make([]byte, 0, 16+n+n*8), uint32(n))
	out = appendLenPrefixedString(out, v.Timezone)
	out = appendLenPrefixedString(out, v.Locale)
	out = appendLenPrefixedString(out, v.Format)
	out = append(out, v.NaTMask...)

	for _, ms := range v.UnixMS {
		out = wire.PutInt64(out, ms)
	}

	return out, nil
}

// DecodeDateTime reconstructs a datetime Value from raw bytes and shape.
func DecodeDateTime(raw []byte, shape []int) (*value.Value, error) {
	n, err := wire.NumElements(shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "datetime shape overflow")
	}

	pos := 0

	count, pos, err := readCount(raw, pos)
	if err != nil {
		return nil, err
	}
	if count != n {
		n = count // shape is advisory here; the explicit count is authoritative on read
	}

	tz, pos, err := readLenPrefixedString(raw, pos)
	if err != nil {
		return nil, err
	}

	loc, pos, err := readLenPrefixedString(raw, pos)
	if err != nil {
		return nil, err
	}

	format_, pos, err := readLenPrefixedString(raw, pos)
	if err != nil {
		return nil, err
	}

	if pos+n > len(raw) {
		return nil, errs.New(errs.KindTruncated, "datetime NaT mask truncated")
	}

	mask := make([]byte, n)
	copy(mask, raw[pos:pos+n])
	pos += n

	need := n * 8
	if pos+need > len(raw) {
		return nil, errs.New(errs.KindTruncated, "datetime unix-ms array truncated")
	}

	unixMS := make([]int64, n)
	for i := 0; i < n; i++ {
		unixMS[i] = wire.Int64(raw[pos+i*8:])
	}

	return value.NewDateTime(shape, tz, loc, format_, mask, unixMS), nil
}

func appendLenPrefixedString(out []byte, s string) []byte {
	out = wire.PutUint32(out, uint32(len(s)))
	return append(out, s...)
}

func readLenPrefixedString(raw []byte, pos int) (string, int, error) {
	if pos+4 > len(raw) {
		return "", 0, errs.New(errs.KindTruncated, "missing length-prefixed string length")
	}

	l := int(wire.Uint32(raw[pos:]))
	pos += 4

	if pos+l > len(raw) {
		return "", 0, errs.New(errs.KindTruncated, "length-prefixed string truncated")
	}

	s := string(raw[pos : pos+l])
	pos += l

	return s, pos, nil
}

func readCount(raw []byte, pos int) (int, int, error) {
	if pos+4 > len(raw) {
		return 0, 0, errs.New(errs.KindTruncated, "missing u32 count prefix")
	}

	return int(wire.Uint32(raw[pos:])), pos + 4, nil
}
