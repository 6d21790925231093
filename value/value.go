// Package value implements the in-memory data model (spec.md §3.3): the
// ten-variant tagged Value union and the insertion-ordered Record tree that
// holds them.
//
// Value is a closed sum type over format.Kind rather than an interface
// hierarchy: the set of variants is fixed by the wire format, so a closed
// tag dispatched on in the payload codec is strictly simpler than open
// inheritance (spec.md §9, "Dynamic dispatch over value kinds").
package value

import "github.com/clicat/gbin/format"

// Value is a tagged union holding exactly one of the ten leaf variants.
// Only the fields relevant to Kind are populated; the rest are zero.
type Value struct {
	Kind format.Kind

	// Numeric
	Class   format.Class
	Shape   []int
	Complex bool
	RealLE  []byte
	ImagLE  []byte

	// Logical
	LogicalData []byte // n bytes, each 0 or 1

	// String
	StringItems []*string // nil element = missing

	// Char
	CharUnits []uint16

	// DateTime
	Timezone string
	Locale   string
	Format   string
	NaTMask  []byte
	UnixMS   []int64

	// Duration
	NaNMask     []byte
	DurationMS  []int64

	// CalendarDuration
	CalMask   []byte
	CalMonths []int32
	CalDays   []int32
	CalTimeMS []int64

	// Categorical
	Categories []string
	Codes      []uint32

	// Opaque
	OpaqueKind     string
	OpaqueClass    string
	OpaqueEncoding string
	OpaqueBytes    []byte

	// Struct (non-leaf subtree, or an explicit empty-scalar leaf record)
	Record *Record

	// Encoding is the advisory wire encoding string (spec.md §4.4) written
	// for numeric, logical, datetime, duration, calendarduration and
	// categorical leaves. String, char and struct leaves are written with a
	// fixed encoding, and opaque leaves use OpaqueEncoding.
	Encoding string
}

// NumElements returns ∏ shape, the linear element count for array variants.
func (v *Value) NumElements() int {
	n := 1
	if len(v.Shape) == 0 {
		return 0
	}

	for _, d := range v.Shape {
		n *= d
	}

	return n
}

// IsRecord reports whether v holds a struct (record) value.
func (v *Value) IsRecord() bool {
	return v.Kind == format.KindStruct
}

// NewNumeric constructs a numeric Value.
func NewNumeric(class format.Class, shape []int, isComplex bool, realLE, imagLE []byte) *Value {
	return &Value{
		Kind:    format.KindNumeric,
		Class:   class,
		Shape:   shape,
		Complex: isComplex,
		RealLE:  realLE,
		ImagLE:  imagLE,
	}
}

// NewLogical constructs a logical Value.
func NewLogical(shape []int, data []byte) *Value {
	return &Value{Kind: format.KindLogical, Shape: shape, LogicalData: data}
}

// NewString constructs a string Value; a nil element means "missing".
func NewString(shape []int, items []*string) *Value {
	return &Value{Kind: format.KindString, Shape: shape, StringItems: items}
}

// NewChar constructs a char (UTF-16 code unit) Value.
func NewChar(shape []int, units []uint16) *Value {
	return &Value{Kind: format.KindChar, Shape: shape, CharUnits: units}
}

// NewDateTime constructs a datetime Value.
func NewDateTime(shape []int, timezone, locale, fmt string, natMask []byte, unixMS []int64) *Value {
	return &Value{
		Kind:     format.KindDateTime,
		Shape:    shape,
		Timezone: timezone,
		Locale:   locale,
		Format:   fmt,
		NaTMask:  natMask,
		UnixMS:   unixMS,
	}
}

// NewDuration constructs a duration Value.
func NewDuration(shape []int, nanMask []byte, ms []int64) *Value {
	return &Value{Kind: format.KindDuration, Shape: shape, NaNMask: nanMask, DurationMS: ms}
}

// NewCalendarDuration constructs a calendarduration Value.
func NewCalendarDuration(shape []int, mask []byte, months, days []int32, timeMS []int64) *Value {
	return &Value{
		Kind:      format.KindCalendarDuration,
		Shape:     shape,
		CalMask:   mask,
		CalMonths: months,
		CalDays:   days,
		CalTimeMS: timeMS,
	}
}

// NewCategorical constructs a categorical Value.
func NewCategorical(shape []int, categories []string, codes []uint32) *Value {
	return &Value{Kind: format.KindCategorical, Shape: shape, Categories: categories, Codes: codes}
}

// NewOpaque constructs an opaque Value.
func NewOpaque(kind, class string, shape []int, isComplex bool, encoding string, data []byte) *Value {
	return &Value{
		Kind:           format.KindOpaque,
		Shape:          shape,
		Complex:        isComplex,
		OpaqueKind:     kind,
		OpaqueClass:    class,
		OpaqueEncoding: encoding,
		OpaqueBytes:    data,
	}
}

// NewStruct constructs a struct Value wrapping r.
func NewStruct(r *Record) *Value {
	return &Value{Kind: format.KindStruct, Record: r}
}
