package cursor

import (
	"fmt"

	"github.com/acheronfail/repgrep-sub000/item"
)

// Kind identifies a movement's variant.
type Kind int

const (
	Prev Kind = iota
	Next
	PrevLine
	NextLine
	PrevFile
	NextFile
	Forward
	Backward
)

// Movement is one step of the movement vocabulary: Prev/Next move one
// submatch; PrevLine/NextLine step one selectable item with submatch reset
// to 0; PrevFile/NextFile step to the previous/next Begin item;
// Forward(N)/Backward(N) skip N items then land on the nearest selectable
// item. All movements clamp at both ends; they never wrap.
type Movement struct {
	Kind Kind
	N    int
}

func MovePrev() Movement           { return Movement{Kind: Prev} }
func MoveNext() Movement           { return Movement{Kind: Next} }
func MovePrevLine() Movement       { return Movement{Kind: PrevLine} }
func MoveNextLine() Movement       { return Movement{Kind: NextLine} }
func MovePrevFile() Movement       { return Movement{Kind: PrevFile} }
func MoveNextFile() Movement       { return Movement{Kind: NextFile} }
func MoveForward(n int) Movement   { return Movement{Kind: Forward, N: n} }
func MoveBackward(n int) Movement  { return Movement{Kind: Backward, N: n} }

func (m Movement) String() string {
	switch m.Kind {
	case Prev:
		return "Prev"
	case Next:
		return "Next"
	case PrevLine:
		return "PrevLine"
	case NextLine:
		return "NextLine"
	case PrevFile:
		return "PrevFile"
	case NextFile:
		return "NextFile"
	case Forward:
		return fmt.Sprintf("Forward(%d)", m.N)
	case Backward:
		return fmt.Sprintf("Backward(%d)", m.N)
	default:
		return "Unknown"
	}
}

// Apply computes the cursor resulting from applying m to cur over list.
// It updates only SelectedItem/SelectedSubmatch; callers must separately
// recompute the viewport (see UpdateViewport) since that also depends on
// render width and PrintableStyle.
func Apply(list *item.List, cur Cursor, m Movement) Cursor {
	if list.Len() == 0 {
		return cur
	}

	switch m.Kind {
	case Prev:
		return applyPrev(list, cur)
	case Next:
		return applyNext(list, cur)
	case PrevLine:
		return applyLine(list, cur, -1)
	case NextLine:
		return applyLine(list, cur, 1)
	case PrevFile:
		return applyFile(list, cur, -1)
	case NextFile:
		return applyFile(list, cur, 1)
	case Backward:
		return applySkip(list, cur, -m.N)
	case Forward:
		return applySkip(list, cur, m.N)
	default:
		return cur
	}
}

func applyPrev(list *item.List, cur Cursor) Cursor {
	if cur.SelectedSubmatch > 0 {
		cur.SelectedSubmatch--
		return cur
	}
	prevIdx := list.NearestSelectable(cur.SelectedItem-1, -1)
	if prevIdx < 0 {
		return cur
	}
	cur.SelectedItem = prevIdx
	cur.SelectedSubmatch = maxSubmatchIndex(list.Item(prevIdx))
	return cur
}

func applyNext(list *item.List, cur Cursor) Cursor {
	it := list.Item(cur.SelectedItem)
	if cur.SelectedSubmatch < maxSubmatchIndex(it) {
		cur.SelectedSubmatch++
		return cur
	}
	nextIdx := list.NearestSelectable(cur.SelectedItem+1, 1)
	if nextIdx < 0 {
		return cur
	}
	cur.SelectedItem = nextIdx
	cur.SelectedSubmatch = 0
	return cur
}

func applyLine(list *item.List, cur Cursor, dir int) Cursor {
	idx := list.NearestSelectable(cur.SelectedItem+dir, dir)
	if idx < 0 {
		return cur
	}
	cur.SelectedItem = idx
	cur.SelectedSubmatch = 0
	return cur
}

func applyFile(list *item.List, cur Cursor, dir int) Cursor {
	idx := -1
	if dir < 0 {
		for i := cur.SelectedItem - 1; i >= 0; i-- {
			if list.Item(i).Kind == item.KindBegin {
				idx = i
				break
			}
		}
	} else {
		for i := cur.SelectedItem + 1; i < list.Len(); i++ {
			if list.Item(i).Kind == item.KindBegin {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return cur
	}
	cur.SelectedItem = idx
	cur.SelectedSubmatch = 0
	return cur
}

func applySkip(list *item.List, cur Cursor, delta int) Cursor {
	target := clampInt(cur.SelectedItem+delta, 0, list.Len()-1)
	dir := -1
	if delta > 0 {
		dir = 1
	}
	idx := list.NearestSelectable(target, dir)
	if idx < 0 {
		// Nothing in the primary direction from target: fall back to
		// searching back toward the current (known-valid) position.
		idx = list.NearestSelectable(target, -dir)
	}
	if idx < 0 {
		return cur
	}
	cur.SelectedItem = idx
	cur.SelectedSubmatch = 0
	return cur
}
