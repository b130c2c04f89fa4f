package cursor

import (
	"github.com/acheronfail/repgrep-sub000/item"
)

// ToggleItem flips selection state at cur's position. On a Match item with
// allSubItems=false, it flips only the currently selected submatch; with
// allSubItems=true, it flips every submatch in that Match. On a Begin
// item, it flips every submatch of every Match item between that Begin
// and its matching End to the logical negation of whether they were all
// currently selected.
func ToggleItem(list *item.List, cur Cursor, allSubItems bool) {
	it := list.Item(cur.SelectedItem)
	switch it.Kind {
	case item.KindMatch:
		if allSubItems {
			it.SetShouldReplaceAll(!it.GetShouldReplaceAll())
		} else {
			it.SetShouldReplace(cur.SelectedSubmatch, !it.GetShouldReplace(cur.SelectedSubmatch))
		}
	case item.KindBegin:
		setFileShouldReplace(list, cur.SelectedItem, !fileAllShouldReplace(list, cur.SelectedItem))
	}
}

// ToggleAllItems sets every submatch of every Match item to the logical
// negation of whether they were all currently selected.
func ToggleAllItems(list *item.List) {
	target := !list.AllShouldReplace()
	for i := range list.Items {
		if list.Items[i].Kind == item.KindMatch {
			list.Items[i].SetShouldReplaceAll(target)
		}
	}
}

// InvertSelectionCurrent flips each submatch's ShouldReplace independently
// within the current Match, or within every Match in the file if cur is on
// a Begin item.
func InvertSelectionCurrent(list *item.List, cur Cursor) {
	it := list.Item(cur.SelectedItem)
	switch it.Kind {
	case item.KindMatch:
		for i := range it.SubItems {
			it.SubItems[i].ShouldReplace = !it.SubItems[i].ShouldReplace
		}
	case item.KindBegin:
		begin, end := list.FileRange(cur.SelectedItem)
		for i := begin; i <= end; i++ {
			if list.Items[i].Kind != item.KindMatch {
				continue
			}
			for j := range list.Items[i].SubItems {
				list.Items[i].SubItems[j].ShouldReplace = !list.Items[i].SubItems[j].ShouldReplace
			}
		}
	}
}

// InvertSelectionAll flips every submatch's ShouldReplace independently
// across the entire list.
func InvertSelectionAll(list *item.List) {
	for i := range list.Items {
		if list.Items[i].Kind != item.KindMatch {
			continue
		}
		for j := range list.Items[i].SubItems {
			list.Items[i].SubItems[j].ShouldReplace = !list.Items[i].SubItems[j].ShouldReplace
		}
	}
}

func fileAllShouldReplace(list *item.List, beginIdx int) bool {
	begin, end := list.FileRange(beginIdx)
	for i := begin; i <= end; i++ {
		if list.Items[i].Kind != item.KindMatch {
			continue
		}
		if !list.Items[i].GetShouldReplaceAll() {
			return false
		}
	}
	return true
}

func setFileShouldReplace(list *item.List, beginIdx int, val bool) {
	begin, end := list.FileRange(beginIdx)
	for i := begin; i <= end; i++ {
		if list.Items[i].Kind == item.KindMatch {
			list.Items[i].SetShouldReplaceAll(val)
		}
	}
}
