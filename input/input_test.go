package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/item"
	"github.com/acheronfail/repgrep-sub000/message"
)

func buildState(t *testing.T, mode exec.UiMode) *exec.AppState {
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
	state := exec.NewAppState(&list, "rg --json foo", "", "", 80, 24)
	state.Mode = mode
	return state
}

func keyEv(key tcell.Key, r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(key, r, mod)
}

func TestResolveRuneActionDefault(t *testing.T) {
	assert.Equal(t, "toggle_all_items", resolveRuneAction(nil, 'a'))
}

func TestResolveRuneActionOverrideRebindsToNewRune(t *testing.T) {
	overrides := map[string]string{"toggle_all_items": "x"}
	assert.Equal(t, "toggle_all_items", resolveRuneAction(overrides, 'x'))
	assert.Equal(t, "", resolveRuneAction(overrides, 'a'))
}

func TestResolveRuneActionOverrideLeavesOtherBindingsAlone(t *testing.T) {
	overrides := map[string]string{"toggle_all_items": "x"}
	assert.Equal(t, "toggle_item", resolveRuneAction(overrides, ' '))
}

func TestHandleKeyTooSmallOnlyHonorsEscOrQ(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	state.ScreenWidth, state.ScreenHeight = 10, 3

	assert.Nil(t, HandleKey(state, keyEv(tcell.KeyRune, 'a', 0)))
	assert.Nil(t, HandleKey(state, keyEv(tcell.KeyDown, 0, 0)))

	m := HandleKey(state, keyEv(tcell.KeyEsc, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.Cancelled, state.Lifecycle)
}

func TestHandleKeyTooSmallHonorsQ(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	state.ScreenWidth, state.ScreenHeight = 10, 3

	m := HandleKey(state, keyEv(tcell.KeyRune, 'q', 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.Cancelled, state.Lifecycle)
}

func TestHandleKeyHonorsOverrideInSelectMatches(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	state.KeyOverrides = map[string]string{"toggle_all_items": "x"}

	m := HandleKey(state, keyEv(tcell.KeyRune, 'a', 0))
	assert.Nil(t, m)

	m2 := HandleKey(state, keyEv(tcell.KeyRune, 'x', 0))
	require.NotNil(t, m2)
	assert.Equal(t, "ToggleAllItems()", m2.String())
}

func TestGlobalCtrlBindingsApplyAcrossModes(t *testing.T) {
	for _, mode := range []exec.UiMode{exec.ModeSelectMatches, exec.ModeInputReplacement, exec.ModeConfirmReplacement} {
		state := buildState(t, mode)
		m := HandleKey(state, keyEv(tcell.KeyCtrlV, 0, tcell.ModCtrl))
		require.NotNil(t, m, "mode %s", mode)
		assert.Contains(t, m.String(), "CyclePrintableStyle")
	}
}

func TestCtrlSOnlyTransitionsFromInputReplacement(t *testing.T) {
	state := buildState(t, exec.ModeInputReplacement)
	m := HandleKey(state, keyEv(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.ModeConfirmReplacement, state.Mode)

	state2 := buildState(t, exec.ModeSelectMatches)
	m2 := HandleKey(state2, keyEv(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	assert.Nil(t, m2)
}

func TestSelectMatchesShiftMovesByFile(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	m := HandleKey(state, keyEv(tcell.KeyRune, 'K', 0))
	require.NotNil(t, m)
	assert.Contains(t, m.String(), "PrevFile")
}

func TestSelectMatchesSpaceTogglesSubmatch(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	m := HandleKey(state, keyEv(tcell.KeyRune, ' ', 0))
	require.NotNil(t, m)
	assert.Contains(t, m.String(), "ToggleItem(allSubItems=false)")
}

func TestSelectMatchesToggleWholeMatch(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	m := HandleKey(state, keyEv(tcell.KeyRune, 's', 0))
	require.NotNil(t, m)
	assert.Contains(t, m.String(), "ToggleItem(allSubItems=true)")
}

func TestSelectMatchesEscCancels(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	m := HandleKey(state, keyEv(tcell.KeyEsc, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.Cancelled, state.Lifecycle)
}

func TestSelectMatchesQuestionMarkOpensHelp(t *testing.T) {
	state := buildState(t, exec.ModeSelectMatches)
	m := HandleKey(state, keyEv(tcell.KeyRune, '?', 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.ModeHelp, state.Mode)
}

func TestInputReplacementAppendsRunes(t *testing.T) {
	state := buildState(t, exec.ModeInputReplacement)
	m := HandleKey(state, keyEv(tcell.KeyRune, 'x', 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, "x", state.InputBuffer)
}

func TestInputReplacementEnterAppendsNewlineNotSubmit(t *testing.T) {
	state := buildState(t, exec.ModeInputReplacement)
	m := HandleKey(state, keyEv(tcell.KeyEnter, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, "\n", state.InputBuffer)
	assert.Equal(t, exec.ModeInputReplacement, state.Mode)
}

func TestInputReplacementBackspaceRemovesLastRune(t *testing.T) {
	state := buildState(t, exec.ModeInputReplacement)
	state.InputBuffer = "abc"
	m := HandleKey(state, keyEv(tcell.KeyBackspace2, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, "ab", state.InputBuffer)
}

func TestInputReplacementEscReturnsToSelect(t *testing.T) {
	state := buildState(t, exec.ModeInputReplacement)
	m := HandleKey(state, keyEv(tcell.KeyEsc, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.ModeSelectMatches, state.Mode)
}

func TestConfirmReplacementEnterCompletes(t *testing.T) {
	state := buildState(t, exec.ModeConfirmReplacement)
	state.InputBuffer = "bar"
	m := HandleKey(state, keyEv(tcell.KeyEnter, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.Complete, state.Lifecycle)
	assert.Equal(t, "bar", state.Criteria.Text)
}

func TestConfirmReplacementEscReturnsToInput(t *testing.T) {
	state := buildState(t, exec.ModeConfirmReplacement)
	m := HandleKey(state, keyEv(tcell.KeyEsc, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, exec.ModeInputReplacement, state.Mode)
}

func TestHelpScrollsAndExits(t *testing.T) {
	state := buildState(t, exec.ModeHelp)
	m := HandleKey(state, keyEv(tcell.KeyDown, 0, 0))
	require.NotNil(t, m)
	m.Mutate(state)
	assert.Equal(t, 1, state.HelpScroll)

	m2 := HandleKey(state, keyEv(tcell.KeyRune, 'q', 0))
	require.NotNil(t, m2)
	m2.Mutate(state)
	assert.Equal(t, exec.ModeSelectMatches, state.Mode)
}

func TestHelpIgnoresGlobalCtrl(t *testing.T) {
	state := buildState(t, exec.ModeHelp)
	m := HandleKey(state, keyEv(tcell.KeyCtrlV, 0, tcell.ModCtrl))
	assert.Nil(t, m)
}
