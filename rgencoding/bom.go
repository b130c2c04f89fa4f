// Package rgencoding implements the Encoding Detector: given a file prefix
// and an optional declared label, it resolves a BOM and a Codec using BOM
// precedence, then the declared label, then statistical detection above a
// confidence floor, else UTF-8.
package rgencoding

// BOM identifies a byte-order-mark prefix, if any, found at the start of a
// file.
type BOM int

const (
	BOMNone BOM = iota
	BOMUtf8
	BOMUtf16BE
	BOMUtf16LE
)

var (
	utf8Bom    = []byte{0xEF, 0xBB, 0xBF}
	utf16beBom = []byte{0xFE, 0xFF}
	utf16leBom = []byte{0xFF, 0xFE}
)

// Bytes returns the literal BOM bytes for this variant, or nil for BOMNone.
func (b BOM) Bytes() []byte {
	switch b {
	case BOMUtf8:
		return utf8Bom
	case BOMUtf16BE:
		return utf16beBom
	case BOMUtf16LE:
		return utf16leBom
	default:
		return nil
	}
}

// Len returns len(b.Bytes()).
func (b BOM) Len() int { return len(b.Bytes()) }

// DetectBOM inspects the first 2-3 bytes of data for a BOM. Checks are
// ordered UTF-8, then UTF-16BE, then UTF-16LE; the first match wins.
func DetectBOM(data []byte) BOM {
	if hasPrefix(data, utf8Bom) {
		return BOMUtf8
	}
	if hasPrefix(data, utf16beBom) {
		return BOMUtf16BE
	}
	if hasPrefix(data, utf16leBom) {
		return BOMUtf16LE
	}
	return BOMNone
}

func hasPrefix(data, prefix []byte) bool {
	if len(data) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if data[i] != b {
			return false
		}
	}
	return true
}
