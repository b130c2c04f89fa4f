// Package cursor implements the two-dimensional (item, submatch) selection
// cursor, its movement vocabulary, line-wrap-aware indicator/viewport math,
// and the selection-toggle operations.
package cursor

import (
	"github.com/acheronfail/repgrep-sub000/item"
)

// Cursor is the selection position plus the viewport's scroll state.
// Invariants: SelectedItem indexes a selectable Item (Begin or Match);
// SelectedSubmatch < max(1, len(sub_items)); WindowStart <= visual line of
// the selected position < WindowStart + viewport height; IndicatorRow =
// visual_line(selected) - WindowStart.
type Cursor struct {
	SelectedItem     int
	SelectedSubmatch int
	WindowStart      int
	IndicatorRow     int
}

// New returns a Cursor positioned at the first selectable item in list, or
// a zero Cursor if the list has no selectable items.
func New(list *item.List) Cursor {
	idx := list.NearestSelectable(0, 1)
	if idx < 0 {
		idx = 0
	}
	return Cursor{SelectedItem: idx}
}

func maxSubmatchIndex(it *item.Item) int {
	n := len(it.SubItems)
	if n == 0 {
		return 0
	}
	return n - 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
