package payload

import "github.com/clicat/gbin/value"

// EncodeOpaque returns the verbatim bytes of an opaque leaf (spec.md
// §4.4: "verbatim bytes").
func EncodeOpaque(v *value.Value) ([]byte, error) {
	return v.OpaqueBytes, nil
}

// DecodeOpaque reconstructs an opaque Value from raw bytes and the field
// metadata the header already carries (spec.md §3.3: "the metadata to
// round-trip it"). It is also used to degrade a field whose kind the
// reader does not recognise (spec.md §4.4).
func DecodeOpaque(raw []byte, kind, class string, shape []int, isComplex bool, encoding string) *value.Value {
	data := make([]byte, len(raw))
	copy(data, raw)

	return value.NewOpaque(kind, class, shape, isComplex, encoding, data)
}
