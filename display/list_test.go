package display

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/item"
	"github.com/acheronfail/repgrep-sub000/message"
)

func buildMatchList(t *testing.T) *item.List {
	t.Helper()
	msgs := []message.Message{
		{Kind: message.KindBegin, Begin: &message.BeginData{Path: message.NewText("a.txt")}},
		{Kind: message.KindMatch, Match: &message.LineData{
			Path:       message.NewText("a.txt"),
			Lines:      message.NewText("foo bar\n"),
			Submatches: []message.SubMatch{{Match: message.NewText("foo"), Start: 0, End: 3}},
		}},
		{Kind: message.KindEnd, End: &message.EndData{Path: message.NewText("a.txt")}},
		{Kind: message.KindSummary, Summary: &message.SummaryData{}},
	}
	list := item.Build(msgs)
	return &list
}

func TestSubmatchAtFindsOwningSubItem(t *testing.T) {
	list := buildMatchList(t)
	matchItem := list.Item(1)

	idx, si := submatchAt(matchItem, 1)
	require.NotNil(t, si)
	assert.Equal(t, 0, idx)

	idx, si = submatchAt(matchItem, 5)
	assert.Equal(t, -1, idx)
	assert.Nil(t, si)
}

func TestDrawMatchListRendersBeginPath(t *testing.T) {
	withSimScreen(t, func(s tcell.SimulationScreen) {
		s.SetSize(40, 10)
		sr := NewScreenRegion(s, 0, 0, 40, 10)
		list := buildMatchList(t)
		state := exec.NewAppState(list, "rg --json foo", "", "", 40, 10)
		palette := NewPalette()

		DrawMatchList(sr, state, palette)

		cells, width, _ := s.GetContents()
		row0 := make([]rune, 0, 7)
		for x := 0; x < 7; x++ {
			row0 = append(row0, cells[x+0*width].Runes[0])
		}
		assert.Equal(t, "a.txt", string(row0[:5]))
	})
}

func TestCellsForItemPrependsLinenoPrefix(t *testing.T) {
	lineNo := uint64(42)
	matchItem := item.New(message.Message{
		Kind: message.KindMatch,
		Match: &message.LineData{
			Path:       message.NewText("a.txt"),
			Lines:      message.NewText("foo\n"),
			LineNumber: &lineNo,
			Submatches: []message.SubMatch{{Match: message.NewText("foo"), Start: 0, End: 3}},
		},
	})
	palette := NewPalette()

	cells := cellsForItem(&matchItem, false, -1, false, "", item.Hidden, palette)
	require.True(t, len(cells) >= 3)
	assert.Equal(t, []rune("42:"), []rune{cells[0].r, cells[1].r, cells[2].r})
	assert.Equal(t, palette.StyleForLineno(), cells[0].style)
}

func TestCellsForItemOmitsLinenoPrefixWhenAbsent(t *testing.T) {
	contextItem := item.New(message.Message{
		Kind:    message.KindContext,
		Context: &message.LineData{Path: message.NewText("a.txt"), Lines: message.NewText("foo\n")},
	})
	palette := NewPalette()

	cells := cellsForItem(&contextItem, false, -1, false, "", item.Hidden, palette)
	require.NotEmpty(t, cells)
	assert.Equal(t, 'f', cells[0].r)
}

func TestDrawCellsWrapsAtWidth(t *testing.T) {
	withSimScreen(t, func(s tcell.SimulationScreen) {
		s.SetSize(5, 5)
		sr := NewScreenRegion(s, 0, 0, 5, 5)

		cells := []cell{
			{'a', tcell.StyleDefault}, {'b', tcell.StyleDefault}, {'c', tcell.StyleDefault},
			{'d', tcell.StyleDefault}, {'e', tcell.StyleDefault}, {'f', tcell.StyleDefault},
		}
		next := drawCells(sr, cells, 0, 5, 5)
		assert.Equal(t, 2, next)
	})
}

func TestDrawCellsHonorsForcedNewline(t *testing.T) {
	withSimScreen(t, func(s tcell.SimulationScreen) {
		s.SetSize(10, 5)
		sr := NewScreenRegion(s, 0, 0, 10, 5)

		cells := []cell{{'a', tcell.StyleDefault}, {'\n', tcell.StyleDefault}, {'b', tcell.StyleDefault}}
		next := drawCells(sr, cells, 0, 10, 5)
		assert.Equal(t, 2, next)
	})
}
