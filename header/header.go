// Package header implements the typed header model (C3): parsing and
// building the JSON header entity described in spec.md §3.2, plus the
// in-place CRC patch helper used by the write pipeline's fixed-point sizing
// (spec.md §4.5.1 step 6).
package header

import (
	"fmt"
	"strings"

	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/internal/headerjson"
	"github.com/clicat/gbin/internal/wire"
)

// Field is one entry of the header's "fields" array (spec.md §3.2).
type Field struct {
	Name        string
	Kind        format.Kind
	Class       string // numeric: bpe class name; otherwise equals Kind.String()
	Shape       []int
	Complex     bool
	Encoding    string
	Compression format.CompressionMethod
	Offset      int64
	CSize       int64
	USize       int64
	CRC32       uint32
}

// Header is the typed representation of the header JSON (spec.md §3.2).
type Header struct {
	Format         string
	Magic          string
	Version        int
	Endianness     string
	Order          string
	Root           string
	Fields         []Field
	PayloadStart   int64
	FileSize       int64
	HeaderCRC32Hex string
}

// New returns a Header with the canonical constant fields populated
// (spec.md §3.2: format="GBF", magic="GREDBIN", version=1,
// endianness="little", order="column-major", root="struct").
func New() *Header {
	return &Header{
		Format:     "GBF",
		Magic:      "GREDBIN",
		Version:    1,
		Endianness: "little",
		Order:      "column-major",
		Root:       "struct",
	}
}

// crcPlaceholder is the 8-character stand-in used during fixed-point
// sizing before the real CRC is known (spec.md §4.3, §4.5.1 step 6).
const crcPlaceholder = "00000000"

// Build serializes h in the canonical key order spec.md §3.2 mandates. If
// crcZeroed is true, header_crc32_hex is emitted as the 8-'0' placeholder;
// otherwise h.HeaderCRC32Hex is emitted verbatim (it must already be an
// 8-character string).
func Build(h *Header, crcZeroed bool) []byte {
	root := headerjson.NewObject()
	root.Set("format", headerjson.NewString(h.Format))
	root.Set("magic", headerjson.NewString(h.Magic))
	root.Set("version", headerjson.NewInt(int64(h.Version)))
	root.Set("endianness", headerjson.NewString(h.Endianness))
	root.Set("order", headerjson.NewString(h.Order))
	root.Set("root", headerjson.NewString(h.Root))

	fields := make([]*headerjson.Node, len(h.Fields))
	for i, f := range h.Fields {
		fields[i] = buildField(f)
	}
	root.Set("fields", headerjson.NewArray(fields...))

	root.Set("payload_start", headerjson.NewInt(h.PayloadStart))
	root.Set("file_size", headerjson.NewInt(h.FileSize))

	crc := h.HeaderCRC32Hex
	if crcZeroed || len(crc) != 8 {
		crc = crcPlaceholder
	}
	root.Set("header_crc32_hex", headerjson.NewString(crc))

	return headerjson.Encode(root)
}

func buildField(f Field) *headerjson.Node {
	n := headerjson.NewObject()
	n.Set("name", headerjson.NewString(f.Name))
	n.Set("kind", headerjson.NewString(f.Kind.String()))
	n.Set("class", headerjson.NewString(f.Class))

	shape := make([]*headerjson.Node, len(f.Shape))
	for i, d := range f.Shape {
		shape[i] = headerjson.NewInt(int64(d))
	}
	n.Set("shape", headerjson.NewArray(shape...))

	n.Set("complex", headerjson.NewBool(f.Complex))
	n.Set("encoding", headerjson.NewString(f.Encoding))
	n.Set("compression", headerjson.NewString(f.Compression.String()))
	n.Set("offset", headerjson.NewInt(f.Offset))
	n.Set("csize", headerjson.NewInt(f.CSize))
	n.Set("usize", headerjson.NewInt(f.USize))
	n.Set("crc32", headerjson.NewInt(int64(f.CRC32)))

	return n
}

// Parse reads header JSON bytes into a Header, applying tolerant defaults
// for optional keys per spec.md §4.3.
func Parse(raw []byte) (*Header, error) {
	root, err := headerjson.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	if root.Kind != headerjson.KindObject {
		return nil, fmt.Errorf("header: root value is not an object")
	}

	h := &Header{}

	h.Format = strOr(root.Get("format"), "GBF")
	h.Magic = strOr(root.Get("magic"), "GREDBIN")
	h.Version = int(intOr(root.Get("version"), 1))
	h.Endianness = strOr(root.Get("endianness"), "little")
	h.Order = strOr(root.Get("order"), "column-major")
	h.Root = strOr(root.Get("root"), "struct")
	h.PayloadStart = intOr(root.Get("payload_start"), 0)
	h.FileSize = intOr(root.Get("file_size"), 0)
	h.HeaderCRC32Hex = strOr(root.Get("header_crc32_hex"), crcPlaceholder)

	fieldsNode := root.Get("fields")
	if fieldsNode == nil {
		return nil, fmt.Errorf("header: missing required key %q", "fields")
	}

	arr, ok := fieldsNode.AsArray()
	if !ok {
		return nil, fmt.Errorf("header: %q is not an array", "fields")
	}

	h.Fields = make([]Field, len(arr))
	for i, item := range arr {
		f, err := parseField(item)
		if err != nil {
			return nil, fmt.Errorf("header: field %d: %w", i, err)
		}
		h.Fields[i] = f
	}

	return h, nil
}

func parseField(n *headerjson.Node) (Field, error) {
	var f Field

	name, ok := n.Get("name").AsString()
	if !ok || name == "" {
		return f, fmt.Errorf("missing or empty %q", "name")
	}
	f.Name = name

	kindStr, _ := n.Get("kind").AsString()
	f.Kind = format.ParseKind(kindStr)

	f.Class = strOr(n.Get("class"), kindStr)

	if shapeNode := n.Get("shape"); shapeNode != nil {
		arr, _ := shapeNode.AsArray()
		f.Shape = make([]int, len(arr))
		for i, d := range arr {
			v, _ := d.AsInt()
			f.Shape[i] = int(v)
		}
	}

	f.Complex, _ = n.Get("complex").AsBool()
	f.Encoding = strOr(n.Get("encoding"), "")
	compression := strOr(n.Get("compression"), "none")
	if compression != "none" && compression != "zlib" {
		return f, fmt.Errorf("unsupported %q value %q", "compression", compression)
	}
	f.Compression = format.ParseCompressionMethod(compression)
	f.Offset = intOr(n.Get("offset"), 0)
	f.CSize = intOr(n.Get("csize"), 0)
	f.USize = intOr(n.Get("usize"), 0)
	f.CRC32 = uint32(intOr(n.Get("crc32"), 0))

	return f, nil
}

func strOr(n *headerjson.Node, def string) string {
	if s, ok := n.AsString(); ok {
		return s
	}

	return def
}

func intOr(n *headerjson.Node, def int64) int64 {
	if v, ok := n.AsInt(); ok {
		return v
	}

	return def
}

// crcFieldKey is the literal JSON key+quote+colon+quote prefix PatchCRC and
// VerifyCRC search for, avoiding a full re-parse of the header bytes.
const crcFieldKey = `"header_crc32_hex":"`

// locateCRCHex finds the byte range of the 8 hex characters inside an
// already-serialized header buffer's header_crc32_hex value.
func locateCRCHex(raw []byte) (start, end int, err error) {
	idx := strings.Index(string(raw), crcFieldKey)
	if idx < 0 {
		return 0, 0, fmt.Errorf("header: %q key not found", "header_crc32_hex")
	}

	start = idx + len(crcFieldKey)
	end = start + 8

	if end > len(raw) {
		return 0, 0, fmt.Errorf("header: truncated %q value", "header_crc32_hex")
	}

	return start, end, nil
}

// PatchCRC overwrites the 8 hex characters of header_crc32_hex in place
// within raw, per spec.md §4.3's in-place-overwrite helper. raw is modified
// in place and also returned for convenience. hex must be exactly 8
// characters.
func PatchCRC(raw []byte, hex string) ([]byte, error) {
	if len(hex) != 8 {
		return nil, fmt.Errorf("header: CRC hex must be 8 characters, got %d", len(hex))
	}

	start, end, err := locateCRCHex(raw)
	if err != nil {
		return nil, err
	}

	copy(raw[start:end], hex)

	return raw, nil
}

// VerifyCRC implements spec.md §4.5.2 step 2: it extracts header_crc32_hex,
// replaces those 8 characters with '0' in a scratch copy, CRC-32s the
// copy, and reports whether that matches the parsed hex value.
func VerifyCRC(raw []byte) (ok bool, parsedHex string, err error) {
	start, end, err := locateCRCHex(raw)
	if err != nil {
		return false, "", err
	}

	parsedHex = string(raw[start:end])

	scratch := make([]byte, len(raw))
	copy(scratch, raw)
	copy(scratch[start:end], crcPlaceholder)

	computed := wire.CRC32Hex(scratch)

	return strings.EqualFold(computed, parsedHex), parsedHex, nil
}
