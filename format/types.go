// Package format holds the small closed enums shared by value, header, and
// payload so that none of those packages need to import one another just to
// describe a leaf's kind, numeric class, or compression method.
package format

// Kind identifies which of the ten leaf value variants a field holds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNumeric
	KindLogical
	KindString
	KindChar
	KindDateTime
	KindDuration
	KindCalendarDuration
	KindCategorical
	KindOpaque
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindLogical:
		return "logical"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	case KindCalendarDuration:
		return "calendarduration"
	case KindCategorical:
		return "categorical"
	case KindOpaque:
		return "opaque"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// ParseKind maps a header JSON "kind" string back to a Kind. Unknown strings
// map to KindUnknown so that readers can degrade the field to opaque.
func ParseKind(s string) Kind {
	switch s {
	case "numeric":
		return KindNumeric
	case "logical":
		return KindLogical
	case "string":
		return KindString
	case "char":
		return KindChar
	case "datetime":
		return KindDateTime
	case "duration":
		return KindDuration
	case "calendarduration":
		return KindCalendarDuration
	case "categorical":
		return KindCategorical
	case "opaque":
		return KindOpaque
	case "struct":
		return KindStruct
	default:
		return KindUnknown
	}
}

// Class identifies the numeric element type for a Kind == KindNumeric field.
// For every other kind, the header's "class" string equals the kind's
// string (spec.md §3.2); this type only enumerates the numeric case.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassDouble
	ClassSingle
	ClassInt8
	ClassUint8
	ClassInt16
	ClassUint16
	ClassInt32
	ClassUint32
	ClassInt64
	ClassUint64
)

func (c Class) String() string {
	switch c {
	case ClassDouble:
		return "double"
	case ClassSingle:
		return "single"
	case ClassInt8:
		return "int8"
	case ClassUint8:
		return "uint8"
	case ClassInt16:
		return "int16"
	case ClassUint16:
		return "uint16"
	case ClassInt32:
		return "int32"
	case ClassUint32:
		return "uint32"
	case ClassInt64:
		return "int64"
	case ClassUint64:
		return "uint64"
	default:
		return "unknown"
	}
}

// ParseClass maps a header JSON "class" string back to a Class. Returns
// ClassUnknown for non-numeric class strings (e.g. "string", "struct").
func ParseClass(s string) Class {
	switch s {
	case "double":
		return ClassDouble
	case "single":
		return ClassSingle
	case "int8":
		return ClassInt8
	case "uint8":
		return ClassUint8
	case "int16":
		return ClassInt16
	case "uint16":
		return ClassUint16
	case "int32":
		return ClassInt32
	case "uint32":
		return ClassUint32
	case "int64":
		return ClassInt64
	case "uint64":
		return ClassUint64
	default:
		return ClassUnknown
	}
}

// BytesPerElement returns bpe(class) per spec.md §3.3, or 0 for a class with
// no fixed numeric width.
func (c Class) BytesPerElement() int {
	switch c {
	case ClassDouble, ClassInt64, ClassUint64:
		return 8
	case ClassSingle, ClassInt32, ClassUint32:
		return 4
	case ClassInt16, ClassUint16:
		return 2
	case ClassInt8, ClassUint8:
		return 1
	default:
		return 0
	}
}

// CompressionMode selects the write-time compression policy (spec.md
// §4.5.1 step 4): never store raw, always zlib-compress, or auto (keep
// whichever is smaller).
type CompressionMode uint8

const (
	CompressionAuto CompressionMode = iota
	CompressionNever
	CompressionAlways
)

func (m CompressionMode) String() string {
	switch m {
	case CompressionNever:
		return "never"
	case CompressionAlways:
		return "always"
	default:
		return "auto"
	}
}

// CompressionMethod is the closed per-field "compression" enum from
// spec.md §3.2: exactly {"none", "zlib"}. It is the on-disk outcome of
// applying a CompressionMode during write.
type CompressionMethod uint8

const (
	CompressionNone CompressionMethod = iota
	CompressionZlib
)

func (c CompressionMethod) String() string {
	switch c {
	case CompressionZlib:
		return "zlib"
	default:
		return "none"
	}
}

// ParseCompressionMethod maps a header JSON "compression" string back to a
// CompressionMethod. Unrecognized strings default to CompressionNone;
// header.Parse rejects them before calling this, so the default only applies
// to other callers.
func ParseCompressionMethod(s string) CompressionMethod {
	if s == "zlib" {
		return CompressionZlib
	}

	return CompressionNone
}
