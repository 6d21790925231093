package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeString produces raw_bytes per spec.md §4.4: "u32 count=n; then n
// repetitions of u32 len; len bytes. len=0 denotes missing." This is the
// u32-length-prefix descendant of the teacher's VarStringEncoder
// (encoding/varstring.go), widened from a u8 length prefix since GBF caps
// strings at 4 GiB rather than mebo's 255 bytes.
func EncodeString(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "string shape overflow")
	}

	if len(v.StringItems) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("string items length %d, want %d", len(v.StringItems), n))
	}

	out := wire.PutUint32(make([]byte, 0, 4), uint32(n))

	for _, item := range v.StringItems {
		if item == nil {
			out = wire.PutUint32(out, 0)
			continue
		}

		out = wire.PutUint32(out, uint32(len(*item)))
		out = append(out, (*item)...)
	}

	return out, nil
}

// DecodeString reconstructs a string Value from raw bytes and the field's
// declared shape. A zero-length item decodes to a missing (nil) element.
func DecodeString(raw []byte, shape []int) (*value.Value, error) {
	if len(raw) < 4 {
		return nil, errs.New(errs.KindTruncated, "string payload missing count prefix")
	}

	n := int(wire.Uint32(raw))
	pos := 4

	items := make([]*string, n)
	for i := 0; i < n; i++ {
		if pos+4 > len(raw) {
			return nil, errs.New(errs.KindTruncated, fmt.Sprintf("string item %d missing length prefix", i))
		}

		itemLen := int(wire.Uint32(raw[pos:]))
		pos += 4

		if itemLen == 0 {
			items[i] = nil
			continue
		}

		if pos+itemLen > len(raw) {
			return nil, errs.New(errs.KindTruncated, fmt.Sprintf("string item %d truncated", i))
		}

		s := string(raw[pos : pos+itemLen])
		items[i] = &s
		pos += itemLen
	}

	return value.NewString(shape, items), nil
}
