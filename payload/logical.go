package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeLogical produces raw_bytes per spec.md §4.4: "n bytes, 0/1".
func EncodeLogical(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "logical shape overflow")
	}

	if len(v.LogicalData) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("logical data length %d, want %d", len(v.LogicalData), n))
	}

	for _, b := range v.LogicalData {
		if b != 0 && b != 1 {
			return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("logical byte %#x is not 0 or 1", b))
		}
	}

	out := make([]byte, n)
	copy(out, v.LogicalData)

	return out, nil
}

// DecodeLogical reconstructs a logical Value from raw bytes and shape.
func DecodeLogical(raw []byte, shape []int) (*value.Value, error) {
	n, err := wire.NumElements(shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "logical shape overflow")
	}

	if len(raw) < n {
		return nil, errs.New(errs.KindTruncated, fmt.Sprintf("logical payload has %d bytes, need %d", len(raw), n))
	}

	data := make([]byte, n)
	copy(data, raw[:n])

	return value.NewLogical(shape, data), nil
}
