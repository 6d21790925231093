package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeDuration produces raw_bytes per spec.md §4.4: "u32 count=n; n
// NaN-mask bytes; n·i64 ms."
func EncodeDuration(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "duration shape overflow")
	}

	if len(v.NaNMask) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("NaN mask length %d, want %d", len(v.NaNMask), n))
	}

	if len(v.DurationMS) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("duration ms length %d, want %d", len(v.DurationMS), n))
	}

	out := wire.PutUint32(make([]byte, 0, 4+n+n*8), uint32(n))
	out = append(out, v.NaNMask...)

	for _, ms := range v.DurationMS {
		out = wire.PutInt64(out, ms)
	}

	return out, nil
}

// DecodeDuration reconstructs a duration Value from raw bytes and shape.
func DecodeDuration(raw []byte, shape []int) (*value.Value, error) {
	n, pos, err := readCount(raw, 0)
	if err != nil {
		return nil, err
	}

	if pos+n > len(raw) {
		return nil, errs.New(errs.KindTruncated, "duration NaN mask truncated")
	}

	mask := make([]byte, n)
	copy(mask, raw[pos:pos+n])
	pos += n

	need := n * 8
	if pos+need > len(raw) {
		return nil, errs.New(errs.KindTruncated, "duration ms array truncated")
	}

	ms := make([]int64, n)
	for i := 0; i < n; i++ {
		ms[i] = wire.Int64(raw[pos+i*8:])
	}

	return value.NewDuration(shape, mask, ms), nil
}
