package payload

import (
	"fmt"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/header"
	"github.com/clicat/gbin/value"
)

// Encode dispatches to the per-kind encoder for a leaf Value, returning
// its raw_bytes and the encoding string to record in the field metadata
// (spec.md §4.5.1 step 2).
func Encode(v *value.Value) (raw []byte, encoding string, err error) {
	switch v.Kind {
	case format.KindNumeric:
		raw, err = EncodeNumeric(v)
		return raw, v.Encoding, err
	case format.KindLogical:
		raw, err = EncodeLogical(v)
		return raw, v.Encoding, err
	case format.KindString:
		raw, err = EncodeString(v)
		return raw, "utf-8", err
	case format.KindChar:
		raw, err = EncodeChar(v)
		return raw, "utf-16-codeunits", err
	case format.KindDateTime:
		raw, err = EncodeDateTime(v)
		return raw, v.Encoding, err
	case format.KindDuration:
		raw, err = EncodeDuration(v)
		return raw, v.Encoding, err
	case format.KindCalendarDuration:
		raw, err = EncodeCalendarDuration(v)
		return raw, v.Encoding, err
	case format.KindCategorical:
		raw, err = EncodeCategorical(v)
		return raw, v.Encoding, err
	case format.KindOpaque:
		raw, err = EncodeOpaque(v)
		return raw, v.OpaqueEncoding, err
	case format.KindStruct:
		if v.Record != nil && v.Record.Len() > 0 {
			return nil, "", errs.New(errs.KindUnsupported, "non-empty record cannot be encoded as a leaf")
		}

		return EncodeEmptyStruct(), "empty-scalar-struct", nil
	default:
		return nil, "", errs.New(errs.KindUnsupported, fmt.Sprintf("cannot encode value kind %q", v.Kind))
	}
}

// Decode dispatches to the per-kind decoder using a parsed field's
// metadata. Kinds the reader does not recognise degrade to opaque, per
// spec.md §4.4 ("When reading a kind the writer does not recognise, it
// degrades to opaque carrying the raw uncompressed bytes plus the header
// metadata").
func Decode(raw []byte, f header.Field) (*value.Value, error) {
	switch f.Kind {
	case format.KindNumeric:
		return DecodeNumeric(raw, format.ParseClass(f.Class), f.Shape, f.Complex)
	case format.KindLogical:
		return DecodeLogical(raw, f.Shape)
	case format.KindString:
		return DecodeString(raw, f.Shape)
	case format.KindChar:
		return DecodeChar(raw, f.Shape)
	case format.KindDateTime:
		return DecodeDateTime(raw, f.Shape)
	case format.KindDuration:
		return DecodeDuration(raw, f.Shape)
	case format.KindCalendarDuration:
		return DecodeCalendarDuration(raw, f.Shape)
	case format.KindCategorical:
		return DecodeCategorical(raw, f.Shape)
	case format.KindOpaque:
		return DecodeOpaque(raw, f.Kind.String(), f.Class, f.Shape, f.Complex, f.Encoding), nil
	case format.KindStruct:
		return DecodeEmptyStruct(), nil
	default:
		return DecodeOpaque(raw, f.Kind.String(), f.Class, f.Shape, f.Complex, f.Encoding), nil
	}
}
