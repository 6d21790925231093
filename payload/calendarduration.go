package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeCalendarDuration produces raw_bytes per spec.md §4.4: "u32
// count=n; n mask bytes; n·i32 months; n·i32 days; n·i64 time-ms."
func EncodeCalendarDuration(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "calendarduration shape overflow")
	}

	if len(v.CalMask) != n || len(v.CalMonths) != n || len(v.CalDays) != n || len(v.CalTimeMS) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("calendarduration parallel array length mismatch, want %d", n))
	}

	out := wire.PutUint32(make([]byte, 0, 4+n+n*4+n*4+n*8), uint32(n))
	out = append(out, v.CalMask...)

	for _, m := range v.CalMonths {
		out = wire.PutInt32(out, m)
	}

	for _, d := range v.CalDays {
		out = wire.PutInt32(out, d)
	}

	for _, t := range v.CalTimeMS {
		out = wire.PutInt64(out, t)
	}

	return out, nil
}

// DecodeCalendarDuration reconstructs a calendarduration Value from raw
// bytes and shape.
func DecodeCalendarDuration(raw []byte, shape []int) (*value.Value, error) {
	n, pos, err := readCount(raw, 0)
	if err != nil {
		return nil, err
	}

	if pos+n > len(raw) {
		return nil, errs.New(errs.KindTruncated, "calendarduration mask truncated")
	}

	mask := make([]byte, n)
	copy(mask, raw[pos:pos+n])
	pos += n

	if pos+n*4 > len(raw) {
		return nil, errs.New(errs.KindTruncated, "calendarduration months array truncated")
	}

	months := make([]int32, n)
	for i := 0; i < n; i++ {
		months[i] = wire.Int32(raw[pos+i*4:])
	}
	pos += n * 4

	if pos+n*4 > len(raw) {
		return nil, errs.New(errs.KindTruncated, "calendarduration days array truncated")
	}

	days := make([]int32, n)
	for i := 0; i < n; i++ {
		days[i] = wire.Int32(raw[pos+i*4:])
	}
	pos += n * 4

	if pos+n*8 > len(raw) {
		return nil, errs.New(errs.KindTruncated, "calendarduration time-ms array truncated")
	}

	timeMS := make([]int64, n)
	for i := 0; i < n; i++ {
		timeMS[i] = wire.Int64(raw[pos+i*8:])
	}

	return value.NewCalendarDuration(shape, mask, months, days, timeMS), nil
}
