package item

import "strings"

// displayText returns the printable-mapped text this item contributes to
// the match list, independent of any submatch styling.
func (it *Item) displayText(style PrintableStyle) string {
	switch it.Kind {
	case KindBegin:
		return style.ToPrintable(it.Path().LossyUTF8())
	case KindMatch, KindContext:
		return style.ToPrintable(it.lineData().Lines.LossyUTF8())
	default: // End
		return ""
	}
}

// TotalLineCount returns the number of visual rows this item occupies when
// wrapped to width columns under the given PrintableStyle.
func (it *Item) TotalLineCount(width int, style PrintableStyle) int {
	if it.Kind == KindEnd {
		return 1
	}
	return LineCount(width, it.displayText(style))
}

// LineOffsetForSubmatch returns the 0-based visual row, relative to the
// start of this item, of the physical line containing the submatch at
// subIdx. Non-Match items (and Match items with no submatches) are always
// offset 0.
func (it *Item) LineOffsetForSubmatch(width int, style PrintableStyle, subIdx int) int {
	if it.Kind != KindMatch || len(it.SubItems) == 0 {
		return 0
	}

	raw := it.lineData().Lines.LossyUTF8()
	start := it.SubItems[subIdx].SubMatch.Start

	physicalLines := strings.Split(raw, "\n")
	var byteOffset uint64
	rowsBefore := 0
	for _, line := range physicalLines {
		lineLen := uint64(len(line)) + 1 // account for the stripped '\n'
		if start < byteOffset+lineLen || byteOffset+lineLen > uint64(len(raw)) {
			return rowsBefore
		}
		rowsBefore += LineCount(width, style.ToPrintable(line))
		byteOffset += lineLen
	}
	if len(physicalLines) > 0 {
		return rowsBefore
	}
	return 0
}
