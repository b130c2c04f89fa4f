package exec

import (
	"fmt"
	"strings"

	"github.com/acheronfail/repgrep-sub000/cursor"
)

// Mutator modifies application state. All changes to AppState should be
// performed by mutators.
type Mutator interface {
	fmt.Stringer
	Mutate(state *AppState)
}

// CompositeMutator executes a series of mutators in order.
type CompositeMutator struct {
	subMutators []Mutator
}

func NewCompositeMutator(subMutators []Mutator) Mutator {
	return &CompositeMutator{subMutators}
}

func (cm *CompositeMutator) Mutate(state *AppState) {
	for _, mut := range cm.subMutators {
		mut.Mutate(state)
	}
}

func (cm *CompositeMutator) String() string {
	args := make([]string, 0, len(cm.subMutators))
	for _, mut := range cm.subMutators {
		args = append(args, mut.String())
	}
	return fmt.Sprintf("Composite(%s)", strings.Join(args, ","))
}

// moveCursorMutator applies a cursor movement and recomputes the viewport.
type moveCursorMutator struct {
	movement cursor.Movement
}

func NewMoveCursorMutator(m cursor.Movement) Mutator {
	return &moveCursorMutator{m}
}

func (mm *moveCursorMutator) Mutate(state *AppState) {
	state.Cursor = cursor.Apply(state.List, state.Cursor, mm.movement)
	state.refreshViewport()
}

func (mm *moveCursorMutator) String() string {
	return fmt.Sprintf("MoveCursor(%s)", mm.movement)
}

// toggleItemMutator flips selection state at the current cursor position.
type toggleItemMutator struct {
	allSubItems bool
}

func NewToggleItemMutator(allSubItems bool) Mutator {
	return &toggleItemMutator{allSubItems}
}

func (tm *toggleItemMutator) Mutate(state *AppState) {
	cursor.ToggleItem(state.List, state.Cursor, tm.allSubItems)
}

func (tm *toggleItemMutator) String() string {
	return fmt.Sprintf("ToggleItem(allSubItems=%t)", tm.allSubItems)
}

// toggleAllItemsMutator flips selection state across the entire list.
type toggleAllItemsMutator struct{}

func NewToggleAllItemsMutator() Mutator { return &toggleAllItemsMutator{} }

func (tm *toggleAllItemsMutator) Mutate(state *AppState) {
	cursor.ToggleAllItems(state.List)
}

func (tm *toggleAllItemsMutator) String() string { return "ToggleAllItems()" }

// invertSelectionMutator inverts selection, either at the current position
// or across the entire list.
type invertSelectionMutator struct {
	all bool
}

func NewInvertSelectionMutator(all bool) Mutator {
	return &invertSelectionMutator{all}
}

func (im *invertSelectionMutator) Mutate(state *AppState) {
	if im.all {
		cursor.InvertSelectionAll(state.List)
	} else {
		cursor.InvertSelectionCurrent(state.List, state.Cursor)
	}
}

func (im *invertSelectionMutator) String() string {
	return fmt.Sprintf("InvertSelection(all=%t)", im.all)
}

// cyclePrintableStyleMutator advances PrintableStyle and recomputes the
// viewport, since line counts depend on the style.
type cyclePrintableStyleMutator struct{}

func NewCyclePrintableStyleMutator() Mutator { return &cyclePrintableStyleMutator{} }

func (cm *cyclePrintableStyleMutator) Mutate(state *AppState) {
	state.PrintableStyle = state.PrintableStyle.Cycle()
	state.refreshViewport()
}

func (cm *cyclePrintableStyleMutator) String() string { return "CyclePrintableStyle()" }

// resizeMutator updates the screen dimensions and recomputes the viewport.
type resizeMutator struct {
	width, height int
}

func NewResizeMutator(width, height int) Mutator {
	return &resizeMutator{width, height}
}

func (rm *resizeMutator) Mutate(state *AppState) {
	state.ScreenWidth = rm.width
	state.ScreenHeight = rm.height
	state.refreshViewport()
}

func (rm *resizeMutator) String() string {
	return fmt.Sprintf("Resize(%d,%d)", rm.width, rm.height)
}

// setModeMutator transitions the UI mode per the §4.5 state machine. Entry
// into InputReplacement from SelectMatches starts with an empty buffer;
// all other transitions preserve InputBuffer.
type setModeMutator struct {
	mode UiMode
}

func NewSetModeMutator(mode UiMode) Mutator {
	return &setModeMutator{mode}
}

func (sm *setModeMutator) Mutate(state *AppState) {
	if sm.mode == ModeInputReplacement && state.Mode == ModeSelectMatches {
		state.InputBuffer = ""
	}
	state.Mode = sm.mode
}

func (sm *setModeMutator) String() string {
	return fmt.Sprintf("SetMode(%s)", sm.mode)
}

// appendInputRuneMutator appends a rune to the replacement buffer.
type appendInputRuneMutator struct {
	r rune
}

func NewAppendInputRuneMutator(r rune) Mutator {
	return &appendInputRuneMutator{r}
}

func (am *appendInputRuneMutator) Mutate(state *AppState) {
	state.InputBuffer += string(am.r)
}

func (am *appendInputRuneMutator) String() string {
	return fmt.Sprintf("AppendInputRune(%q)", am.r)
}

// appendInputNewlineMutator appends a literal newline to the buffer.
type appendInputNewlineMutator struct{}

func NewAppendInputNewlineMutator() Mutator { return &appendInputNewlineMutator{} }

func (am *appendInputNewlineMutator) Mutate(state *AppState) {
	state.InputBuffer += "\n"
}

func (am *appendInputNewlineMutator) String() string { return "AppendInputNewline()" }

// backspaceInputMutator removes the last rune of the buffer, rune-safe.
type backspaceInputMutator struct{}

func NewBackspaceInputMutator() Mutator { return &backspaceInputMutator{} }

func (bm *backspaceInputMutator) Mutate(state *AppState) {
	if state.InputBuffer == "" {
		return
	}
	runes := []rune(state.InputBuffer)
	state.InputBuffer = string(runes[:len(runes)-1])
}

func (bm *backspaceInputMutator) String() string { return "BackspaceInput()" }

// completeMutator transitions the lifecycle to Complete, capturing the
// current item list and replacement buffer as ReplacementCriteria.
type completeMutator struct{}

func NewCompleteMutator() Mutator { return &completeMutator{} }

func (cm *completeMutator) Mutate(state *AppState) {
	state.Criteria = ReplacementCriteria{
		Text:          state.InputBuffer,
		Items:         state.List,
		EncodingLabel: state.EncodingLabel,
		Pattern:       state.Pattern,
	}
	state.Lifecycle = Complete
}

func (cm *completeMutator) String() string { return "Complete()" }

// cancelMutator transitions the lifecycle to Cancelled.
type cancelMutator struct{}

func NewCancelMutator() Mutator { return &cancelMutator{} }

func (cm *cancelMutator) Mutate(state *AppState) { state.Lifecycle = Cancelled }

func (cm *cancelMutator) String() string { return "Cancel()" }

// setStatusMsgMutator sets the transient status message.
type setStatusMsgMutator struct {
	msg StatusMsg
}

func NewSetStatusMsgMutator(msg StatusMsg) Mutator {
	return &setStatusMsgMutator{msg}
}

func (sm *setStatusMsgMutator) Mutate(state *AppState) { state.StatusMsg = sm.msg }

func (sm *setStatusMsgMutator) String() string {
	return fmt.Sprintf("SetStatusMsg(%q)", sm.msg.Text)
}

// scrollHelpMutator scrolls the help pane.
type scrollHelpMutator struct {
	delta int
}

func NewScrollHelpMutator(delta int) Mutator {
	return &scrollHelpMutator{delta}
}

func (sh *scrollHelpMutator) Mutate(state *AppState) {
	state.HelpScroll += sh.delta
	if state.HelpScroll < 0 {
		state.HelpScroll = 0
	}
}

func (sh *scrollHelpMutator) String() string {
	return fmt.Sprintf("ScrollHelp(%d)", sh.delta)
}

// pageMutator moves the cursor by a full viewport page.
func NewPageMutator(forward bool) Mutator {
	return &pageMutator{forward: forward}
}

type pageMutator struct {
	forward bool
}

func (pm *pageMutator) Mutate(state *AppState) {
	n := state.MainViewHeight()
	if n <= 0 {
		n = 1
	}
	m := cursor.MoveBackward(n)
	if pm.forward {
		m = cursor.MoveForward(n)
	}
	state.Cursor = cursor.Apply(state.List, state.Cursor, m)
	state.refreshViewport()
}

func (pm *pageMutator) String() string {
	return fmt.Sprintf("Page(forward=%t)", pm.forward)
}
