package app

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/item"
	"github.com/acheronfail/repgrep-sub000/message"
)

func buildTestState(t *testing.T) *exec.AppState {
	t.Helper()
	msgs := []message.Message{
		{Kind: message.KindBegin, Begin: &message.BeginData{Path: message.NewText("a.txt")}},
		{Kind: message.KindMatch, Match: &message.LineData{
			Path:       message.NewText("a.txt"),
			Lines:      message.NewText("foo\n"),
			Submatches: []message.SubMatch{{Match: message.NewText("foo"), Start: 0, End: 3}},
		}},
		{Kind: message.KindEnd, End: &message.EndData{Path: message.NewText("a.txt")}},
		{Kind: message.KindSummary, Summary: &message.SummaryData{}},
	}
	list := item.Build(msgs)
	return exec.NewAppState(&list, "rg --json foo", "", "", 40, 10)
}

func TestRunExitsOnCancelKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)
	defer screen.Fini()

	state := buildTestState(t)
	a := New(screen, state)

	go func() {
		time.Sleep(10 * time.Millisecond)
		screen.InjectKey(tcell.KeyEsc, 0, tcell.ModNone)
	}()

	lifecycle := a.Run()
	require.Equal(t, exec.Cancelled, lifecycle)
}

func TestRunAppliesResizeEvent(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)
	defer screen.Fini()

	state := buildTestState(t)
	a := New(screen, state)

	go func() {
		time.Sleep(10 * time.Millisecond)
		screen.SetSize(60, 20)
		time.Sleep(10 * time.Millisecond)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	}()

	a.Run()
	require.Equal(t, 60, state.ScreenWidth)
	require.Equal(t, 20, state.ScreenHeight)
}
