package item

import "strings"

// PrintableStyle is the per-character rendering policy applied to control
// characters in the list view.
type PrintableStyle int

const (
	Hidden PrintableStyle = iota
	CommonMultiline
	CommonOneline
	AllMultiline
	AllOneline
)

// String returns the single-letter tag used in status displays.
func (s PrintableStyle) String() string {
	switch s {
	case Hidden:
		return "H"
	case CommonMultiline:
		return "C"
	case CommonOneline:
		return "c"
	case AllMultiline:
		return "A"
	case AllOneline:
		return "a"
	default:
		return "?"
	}
}

// ParsePrintableStyle maps a config-file style name to a PrintableStyle,
// falling back to Hidden for an unrecognised name.
func ParsePrintableStyle(name string) PrintableStyle {
	switch strings.ToLower(name) {
	case "common-multiline":
		return CommonMultiline
	case "common-oneline":
		return CommonOneline
	case "all-multiline":
		return AllMultiline
	case "all-oneline":
		return AllOneline
	default:
		return Hidden
	}
}

// Cycle advances to the next PrintableStyle in the fixed order
// Hidden -> Common(false) -> Common(true) -> All(false) -> All(true) -> Hidden.
// Applying it five times returns the original value.
func (s PrintableStyle) Cycle() PrintableStyle {
	switch s {
	case Hidden:
		return CommonMultiline
	case CommonMultiline:
		return CommonOneline
	case CommonOneline:
		return AllMultiline
	case AllMultiline:
		return AllOneline
	default:
		return Hidden
	}
}

// OneLine returns the one-line representation of the current style.
func (s PrintableStyle) OneLine() PrintableStyle {
	switch s {
	case Hidden:
		return CommonOneline
	case CommonMultiline, CommonOneline:
		return CommonOneline
	default:
		return AllOneline
	}
}

func (s PrintableStyle) isOneline() bool {
	return s == CommonOneline || s == AllOneline
}

// ToPrintable maps every character in s per the receiver's PrintableStyle.
func (s PrintableStyle) ToPrintable(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	for _, ch := range in {
		b.WriteString(s.toPrintableRune(ch))
	}
	return b.String()
}

func (s PrintableStyle) toPrintableRune(ch rune) string {
	switch s {
	case Hidden:
		switch ch {
		case '\x09', '\x0D':
			return " "
		case '\x00', '\x01', '\x02', '\x03', '\x04', '\x05', '\x06', '\x07', '\x08',
			'\x0B', '\x0C', '\x0E', '\x0F', '\x10', '\x11', '\x12', '\x13',
			'\x14', '\x15', '\x16', '\x17', '\x18', '\x19', '\x1A', '\x1B',
			'\x1C', '\x1D', '\x1E', '\x1F', '\x7F':
			return ""
		default:
			return string(ch)
		}
	case CommonMultiline, CommonOneline:
		switch ch {
		case '\x09':
			return "→" // →
		case '\x0A':
			if s.isOneline() {
				return "¬" // ¬
			}
			return "¬\n"
		case '\x0D':
			return "¤" // ¤
		case '\x20':
			return "␣" // ␣
		case '\x00', '\x01', '\x02', '\x03', '\x04', '\x05', '\x06', '\x07', '\x08',
			'\x0B', '\x0C', '\x0E', '\x0F', '\x10', '\x11', '\x12', '\x13',
			'\x14', '\x15', '\x16', '\x17', '\x18', '\x19', '\x1A', '\x1B',
			'\x1C', '\x1D', '\x1E', '\x1F', '\x7F':
			return "•" // •
		default:
			return string(ch)
		}
	case AllMultiline, AllOneline:
		if glyph, ok := controlPictures[ch]; ok {
			if ch == '\x0A' && !s.isOneline() {
				return glyph + "\n"
			}
			return glyph
		}
		return string(ch)
	default:
		return string(ch)
	}
}

// controlPictures maps ASCII control characters (and space/DEL) to their
// Unicode control-picture glyphs: U+0000-U+001F to U+2400-U+241F, space to
// U+2420 and DEL to U+2421.
var controlPictures = map[rune]string{
	'\x00': "␀", '\x01': "␁", '\x02': "␂", '\x03': "␃",
	'\x04': "␄", '\x05': "␅", '\x06': "␆", '\x07': "␇",
	'\x08': "␈", '\x09': "␉", '\x0A': "␊", '\x0B': "␋",
	'\x0C': "␌", '\x0D': "␍", '\x0E': "␎", '\x0F': "␏",
	'\x10': "␐", '\x11': "␑", '\x12': "␒", '\x13': "␓",
	'\x14': "␔", '\x15': "␕", '\x16': "␖", '\x17': "␗",
	'\x18': "␘", '\x19': "␙", '\x1A': "␚", '\x1B': "␛",
	'\x1C': "␜", '\x1D': "␝", '\x1E': "␞", '\x1F': "␟",
	'\x20': "␠", '\x7F': "␡",
}
