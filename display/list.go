package display

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/item"
)

// cell is one styled character destined for the screen. A cell with r ==
// '\n' is a forced line break rather than a printed character.
type cell struct {
	r     rune
	style tcell.Style
}

// DrawMatchList renders the Items visible from the cursor's WindowStart (a
// visual row index), wrapping each item's lines to the region's width,
// until the region is full.
func DrawMatchList(sr *ScreenRegion, state *exec.AppState, palette *Palette) {
	sr.Clear()

	width, height := sr.Size()
	if width <= 0 || height <= 0 {
		return
	}

	replacing := state.Mode == exec.ModeInputReplacement || state.Mode == exec.ModeConfirmReplacement
	replacementText := state.InputBuffer

	// Rows above WindowStart are laid out at negative y and clipped by the
	// region.
	y := -state.Cursor.WindowStart
	for idx := 0; idx < state.List.Len() && y < height; idx++ {
		it := state.List.Item(idx)
		isSelected := idx == state.Cursor.SelectedItem
		cells := cellsForItem(it, isSelected, state.Cursor.SelectedSubmatch, replacing, replacementText, state.PrintableStyle, palette)
		y = drawCells(sr, cells, y, width, height)
	}
}

// cellsForItem builds the styled cell stream for one Item, including forced
// line breaks between physical lines.
func cellsForItem(it *item.Item, isSelected bool, selectedSubmatch int, replacing bool, replacementText string, style item.PrintableStyle, palette *Palette) []cell {
	switch it.Kind {
	case item.KindBegin:
		path := it.Path().LossyUTF8()
		return styleRun(path, palette.StyleForPath())
	case item.KindEnd:
		return nil
	case item.KindContext:
		raw := it.Message.Context.Lines.LossyUTF8()
		printable := style.ToPrintable(raw)
		cells := linenoCells(it.Message.Context.LineNumber, palette)
		for _, r := range printable {
			cells = append(cells, cell{r, palette.StyleForContext()})
		}
		return cells
	case item.KindMatch:
		cells := linenoCells(it.Message.Match.LineNumber, palette)
		return append(cells, matchCells(it, isSelected, selectedSubmatch, replacing, replacementText, style, palette)...)
	default:
		return nil
	}
}

// linenoCells builds the optional dim "N:" prefix shown before a Context or
// Match item's text (§4.6), empty when the searcher didn't report a line
// number for this record.
func linenoCells(lineNumber *uint64, palette *Palette) []cell {
	if lineNumber == nil {
		return nil
	}
	return styleRun(strconv.FormatUint(*lineNumber, 10)+":", palette.StyleForLineno())
}

func styleRun(s string, st tcell.Style) []cell {
	cells := make([]cell, 0, len(s))
	for _, r := range s {
		cells = append(cells, cell{r, st})
	}
	return cells
}

// matchCells builds the per-rune style stream for a Match item's line,
// walking the raw bytes so that each submatch's byte range can be located
// precisely, then expanding each rune to its printable form.
func matchCells(it *item.Item, isSelected bool, selectedSubmatch int, replacing bool, replacementText string, style item.PrintableStyle, palette *Palette) []cell {
	raw := it.Message.Match.Lines.LossyUTF8()
	defaultStyle := palette.StyleForDefault()

	cells := make([]cell, 0, len(raw))
	byteIdx := 0
	for _, r := range raw {
		rlen := len(string(r))
		subIdx, si := submatchAt(it, uint64(byteIdx))

		var st tcell.Style
		if subIdx < 0 {
			st = defaultStyle
		} else {
			selected := isSelected && selectedSubmatch == subIdx
			st = palette.StyleForSubmatch(replacing, selected, si.ShouldReplace)
		}

		printable := style.ToPrintable(string(r))
		for _, pr := range printable {
			cells = append(cells, cell{pr, st})
		}

		// Emit the replacement text immediately after the last rune of a
		// should-replace submatch, when a buffer is present.
		if subIdx >= 0 && si.ShouldReplace && replacing {
			_, nextSi := submatchAt(it, uint64(byteIdx+rlen))
			if nextSi == nil || nextSi.Index != subIdx {
				for _, rr := range replacementText {
					cells = append(cells, cell{rr, palette.StyleForReplacementText()})
				}
			}
		}

		byteIdx += rlen
	}
	return cells
}

func submatchAt(it *item.Item, byteOffset uint64) (int, *item.SubItem) {
	for i := range it.SubItems {
		si := &it.SubItems[i]
		if byteOffset >= si.SubMatch.Start && byteOffset < si.SubMatch.End {
			return i, si
		}
	}
	return -1, nil
}

// drawCells writes a cell stream into the region starting at row y,
// wrapping at width and honoring forced line breaks. Returns the row
// immediately after the last row written (which may equal height if the
// content overflowed the region).
func drawCells(sr *ScreenRegion, cells []cell, y, width, height int) int {
	if len(cells) == 0 {
		return y + 1
	}

	x := 0
	for _, c := range cells {
		if y >= height {
			break
		}
		if c.r == '\n' {
			x = 0
			y++
			continue
		}
		w := runewidth.RuneWidth(c.r)
		if w <= 0 {
			w = 1
		}
		if x+w > width {
			x = 0
			y++
			if y >= height {
				break
			}
		}
		sr.SetContent(x, y, c.r, nil, c.style)
		x += w
	}
	return y + 1
}
