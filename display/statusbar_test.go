package display

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/item"
	"github.com/acheronfail/repgrep-sub000/message"
)

func buildTestList() *item.List {
	msgs := []message.Message{
		{Kind: message.KindBegin, Begin: &message.BeginData{Path: message.NewText("foo.txt")}},
		{Kind: message.KindMatch, Match: &message.LineData{
			Path:  message.NewText("foo.txt"),
			Lines: message.NewText("foo bar\n"),
			Submatches: []message.SubMatch{
				{Match: message.NewText("foo"), Start: 0, End: 3},
			},
		}},
		{Kind: message.KindEnd, End: &message.EndData{Path: message.NewText("foo.txt")}},
		{Kind: message.KindSummary, Summary: &message.SummaryData{
			Stats: message.Stats{Matches: 1},
		}},
	}
	l := item.Build(msgs)
	return &l
}

func TestDrawStatsLineShowsModeTag(t *testing.T) {
	withSimScreen(t, func(s tcell.SimulationScreen) {
		s.SetSize(40, 3)
		palette := NewPalette()
		list := buildTestList()
		state := exec.NewAppState(list, "rg --json foo", "", "", 40, 3)

		DrawStatsLine(s, 1, state, palette)
		s.Sync()

		cells, width, _ := s.GetContents()
		row := 1
		got := make([]rune, 0, width)
		for x := 0; x < width; x++ {
			got = append(got, cells[x+row*width].Runes[0])
		}
		gotStr := string(got)

		if gotStr[:6] != "SELECT" {
			t.Fatalf("expected mode tag SELECT at start of stats line, got %q", gotStr)
		}
	})
}
