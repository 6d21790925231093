package header

const (
	// MagicLen is the length in bytes of the file magic (spec.md §3.1 item 1).
	MagicLen = 8
	// LengthLen is the length in bytes of the header-length prefix field.
	LengthLen = 4
	// FramePrefixLen is the number of bytes preceding the header JSON:
	// 8-byte magic + 4-byte LE header length. payload_start = FramePrefixLen
	// + header_len, per the invariant in spec.md §3.1 item 4 and §3.2
	// ("payload_start == 8 + 4 + len(header_json) exactly").
	FramePrefixLen = MagicLen + LengthLen

	// MaxHeaderLen is the sanity cap on header_len (spec.md §3.1 item 2).
	MaxHeaderLen = 64 * 1024 * 1024
)

// CanonicalMagic is the 8-byte magic writers always emit.
var CanonicalMagic = [MagicLen]byte{'G', 'R', 'E', 'D', 'B', 'I', 'N', 0x00}

// CheckMagic reports whether the first bytes of b form an accepted magic
// (canonical "GREDBIN\0" 7-byte prefix, or legacy "GRDCBIN" 6-byte prefix).
func CheckMagic(b []byte) bool {
	if len(b) >= 7 && string(b[:7]) == "GREDBIN" {
		return true
	}

	if len(b) >= 6 && string(b[:6]) == "GRDCBIN" {
		return true
	}

	return false
}
