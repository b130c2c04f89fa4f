package cursor

import (
	"github.com/acheronfail/repgrep-sub000/item"
)

// IndicatorIndex computes the raw (unscrolled) visual row of cur's
// selected position: the sum of rendered line counts of every item above
// the selected item, plus the line offset of the selected submatch within
// the selected item.
func IndicatorIndex(list *item.List, cur Cursor, width int, style item.PrintableStyle) int {
	idx := 0
	for i := 0; i < cur.SelectedItem; i++ {
		idx += list.Item(i).TotalLineCount(width, style)
	}
	idx += list.Item(cur.SelectedItem).LineOffsetForSubmatch(width, style, cur.SelectedSubmatch)
	return idx
}

// UpdateViewport recomputes WindowStart and IndicatorRow for cur given the
// main-view height H. If the raw indicator has scrolled past the bottom of
// the viewport, WindowStart advances just enough to bring it back into
// view; if it has scrolled above the top, WindowStart jumps directly to
// it.
func UpdateViewport(list *item.List, cur Cursor, width, height int, style item.PrintableStyle) Cursor {
	indicatorIdx := IndicatorIndex(list, cur, width, style)

	windowStart := cur.WindowStart
	if height > 0 && indicatorIdx >= windowStart+height {
		windowStart = indicatorIdx - height + 1
	}
	if indicatorIdx < windowStart {
		windowStart = indicatorIdx
	}

	cur.WindowStart = windowStart
	cur.IndicatorRow = indicatorIdx - windowStart
	return cur
}
