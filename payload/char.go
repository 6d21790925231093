package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/internal/wire"
	"github.com/clicat/gbin/value"
)

// EncodeChar produces raw_bytes per spec.md §4.4: "2·n bytes (UTF-16 code
// units, LE)".
func EncodeChar(v *value.Value) ([]byte, error) {
	n, err := wire.NumElements(v.Shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "char shape overflow")
	}

	if len(v.CharUnits) != n {
		return nil, errs.New(errs.KindInvalidData, fmt.Sprintf("char units length %d, want %d", len(v.CharUnits), n))
	}

	out := make([]byte, 0, n*2)
	for _, u := range v.CharUnits {
		out = wire.Engine().AppendUint16(out, u)
	}

	return out, nil
}

// DecodeChar reconstructs a char Value from raw bytes and shape.
func DecodeChar(raw []byte, shape []int) (*value.Value, error) {
	n, err := wire.NumElements(shape)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidData, err, "char shape overflow")
	}

	need := n * 2
	if len(raw) < need {
		return nil, errs.New(errs.KindTruncated, fmt.Sprintf("char payload has %d bytes, need %d", len(raw), need))
	}

	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = wire.Engine().Uint16(raw[i*2 : i*2+2])
	}

	return value.NewChar(shape, units), nil
}
