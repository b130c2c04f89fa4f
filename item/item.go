// Package item builds the navigable, selectable match list from decoded
// messages.
package item

import (
	"github.com/acheronfail/repgrep-sub000/message"
)

// Kind mirrors message.Kind but only ever holds the four variants that
// remain in an ItemList after ingestion (Summary is stashed, not stored).
// It is redundant with Message's own variant; kept for fast filtering.
type Kind = message.Kind

const (
	KindBegin   = message.KindBegin
	KindEnd     = message.KindEnd
	KindMatch   = message.KindMatch
	KindContext = message.KindContext
)

// SubItem is one submatch within a Match item, carrying its own
// independent replace-selection state.
type SubItem struct {
	// Index is this SubItem's position within the enclosing Match item.
	Index int

	SubMatch message.SubMatch

	ShouldReplace bool
}

// Item wraps one ingested message plus, for Match items, its SubItems.
type Item struct {
	Kind     Kind
	Message  message.Message
	SubItems []SubItem
}

// New constructs an Item from a decoded message. For Match messages,
// SubItems are built from the message's submatches with ShouldReplace
// initialized to true; every other kind gets no SubItems.
func New(msg message.Message) Item {
	it := Item{Kind: msg.Kind, Message: msg}
	if msg.Kind == KindMatch {
		it.SubItems = make([]SubItem, len(msg.Match.Submatches))
		for i, sm := range msg.Match.Submatches {
			it.SubItems[i] = SubItem{Index: i, SubMatch: sm, ShouldReplace: true}
		}
	}
	return it
}

// IsSelectable reports whether movement/selection may land on this item.
func (it *Item) IsSelectable() bool {
	return it.Kind == KindBegin || it.Kind == KindMatch
}

// Path returns the file path this item belongs to.
func (it *Item) Path() message.ArbitraryData {
	p, _ := it.Message.Path()
	return p
}

// Offset returns the absolute byte offset of this item's line within its
// file. Only meaningful for Match/Context items.
func (it *Item) Offset() uint64 {
	switch it.Kind {
	case KindMatch, KindContext:
		return it.lineData().AbsoluteOffset
	default:
		return 0
	}
}

func (it *Item) lineData() *message.LineData {
	if it.Kind == KindMatch {
		return it.Message.Match
	}
	return it.Message.Context
}

// GetShouldReplace returns the replace state of a single submatch.
func (it *Item) GetShouldReplace(subIdx int) bool {
	return it.SubItems[subIdx].ShouldReplace
}

// SetShouldReplace sets the replace state of a single submatch.
func (it *Item) SetShouldReplace(subIdx int, val bool) {
	it.SubItems[subIdx].ShouldReplace = val
}

// GetShouldReplaceAll reports whether every submatch in this item has
// ShouldReplace set. If the item has no submatches, it returns true
// (vacuously all true).
func (it *Item) GetShouldReplaceAll() bool {
	for _, si := range it.SubItems {
		if !si.ShouldReplace {
			return false
		}
	}
	return true
}

// SetShouldReplaceAll sets every submatch in this item to val.
func (it *Item) SetShouldReplaceAll(val bool) {
	for i := range it.SubItems {
		it.SubItems[i].ShouldReplace = val
	}
}

// ReplaceCount returns the number of submatches in this item with
// ShouldReplace set.
func (it *Item) ReplaceCount() int {
	n := 0
	for _, si := range it.SubItems {
		if si.ShouldReplace {
			n++
		}
	}
	return n
}
