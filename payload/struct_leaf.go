package payload

import "github.com/clicat/gbin/value"

// EncodeEmptyStruct returns the zero-byte payload for an empty scalar
// record leaf (spec.md §3.3, §4.4: "struct (empty scalar leaf) | zero
// bytes; encoding=\"empty-scalar-struct\"").
func EncodeEmptyStruct() []byte {
	return nil
}

// DecodeEmptyStruct returns the canonical empty-record leaf Value.
func DecodeEmptyStruct() *value.Value {
	return value.NewStruct(value.NewRecord())
}
