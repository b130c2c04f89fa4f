package item

import (
	"github.com/acheronfail/repgrep-sub000/message"
)

// List is the ordered sequence of Items produced by ingestion. Exactly one
// Summary is consumed during construction and does not appear in the list;
// for every Begin at index i there exists an End at some j>i with a
// matching path and no interleaved Begin for a different path.
type List struct {
	Items []Item
	Stats message.Stats
}

// Build makes exactly one pass over decoded messages, pushing Begin/Match/
// Context/End as new Items. On Summary, its stats are stashed and
// construction stops (any records after a Summary are ignored, matching
// the reference searcher's own output, which never emits anything after
// its summary line).
func Build(messages []message.Message) List {
	list := List{Items: make([]Item, 0, len(messages))}
	for _, msg := range messages {
		if msg.Kind == message.KindSummary {
			list.Stats = msg.Summary.Stats
			break
		}
		list.Items = append(list.Items, New(msg))
	}
	return list
}

// Len returns the number of items in the list.
func (l *List) Len() int { return len(l.Items) }

// Item returns a pointer to the item at idx for in-place mutation.
func (l *List) Item(idx int) *Item { return &l.Items[idx] }

// IsSelectable reports whether the item at idx can be navigated to.
func (l *List) IsSelectable(idx int) bool {
	if idx < 0 || idx >= len(l.Items) {
		return false
	}
	return l.Items[idx].IsSelectable()
}

// NearestSelectable returns the index of the nearest selectable item at or
// before idx if dir < 0, or at or after idx if dir >= 0. It returns -1 if
// none exists in that direction.
func (l *List) NearestSelectable(idx int, dir int) int {
	if dir < 0 {
		for i := idx; i >= 0; i-- {
			if l.IsSelectable(i) {
				return i
			}
		}
		return -1
	}
	for i := idx; i < len(l.Items); i++ {
		if l.IsSelectable(i) {
			return i
		}
	}
	return -1
}

// TotalReplaceCount sums ReplaceCount across every Match item.
func (l *List) TotalReplaceCount() int {
	n := 0
	for i := range l.Items {
		if l.Items[i].Kind == KindMatch {
			n += l.Items[i].ReplaceCount()
		}
	}
	return n
}

// AllShouldReplace reports whether every submatch of every Match item is
// currently selected for replacement.
func (l *List) AllShouldReplace() bool {
	for i := range l.Items {
		if l.Items[i].Kind != KindMatch {
			continue
		}
		if !l.Items[i].GetShouldReplaceAll() {
			return false
		}
	}
	return true
}

// FileRange returns [beginIdx, endIdx] spanning the Begin item at
// beginIdx through its matching End item.
func (l *List) FileRange(beginIdx int) (int, int) {
	for j := beginIdx + 1; j < len(l.Items); j++ {
		if l.Items[j].Kind == KindEnd {
			return beginIdx, j
		}
	}
	return beginIdx, len(l.Items) - 1
}
