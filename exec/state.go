// Package exec holds the application's mutable state and the Mutator
// pattern used to transition it: every state change is expressed as a
// small value implementing Mutate(*AppState) and String().
package exec

import (
	"github.com/acheronfail/repgrep-sub000/cursor"
	"github.com/acheronfail/repgrep-sub000/item"
)

// UiMode is the mode half of the UI state machine (§4.5). The lifecycle
// (Running/Cancelled/Complete) is tracked separately in Lifecycle.
type UiMode int

const (
	ModeSelectMatches UiMode = iota
	ModeInputReplacement
	ModeConfirmReplacement
	ModeHelp
)

func (m UiMode) String() string {
	switch m {
	case ModeSelectMatches:
		return "SELECT"
	case ModeInputReplacement:
		return "REPLACE"
	case ModeConfirmReplacement:
		return "CONFIRM"
	case ModeHelp:
		return "HELP"
	default:
		return "?"
	}
}

// Lifecycle is the overall run state.
type Lifecycle int

const (
	Running Lifecycle = iota
	Cancelled
	Complete
)

// ReplacementCriteria is the captured user intent once the state machine
// reaches Complete: the replacement text, the item list it applies to, an
// optional user-declared encoding label, and an optional capture-group
// pattern (only meaningful in cached invocation mode).
type ReplacementCriteria struct {
	Text          string
	Items         *item.List
	EncodingLabel string
	Pattern       string
}

// StatusMsgStyle selects how a status message is rendered.
type StatusMsgStyle int

const (
	StatusMsgStyleNone StatusMsgStyle = iota
	StatusMsgStyleSuccess
	StatusMsgStyleError
)

// StatusMsg is a transient message shown on the input line.
type StatusMsg struct {
	Style StatusMsgStyle
	Text  string
}

// AppState is all mutable state owned by the event loop.
type AppState struct {
	List   *item.List
	Cursor cursor.Cursor

	Mode        UiMode
	InputBuffer string
	HelpScroll  int

	Lifecycle Lifecycle
	Criteria  ReplacementCriteria

	PrintableStyle item.PrintableStyle

	StatusMsg StatusMsg

	ScreenWidth, ScreenHeight int

	// RgCmdline is the searcher command line shown in the stats line.
	RgCmdline string

	// EncodingLabel and Pattern are carried from the invoking command line
	// into Criteria once the replacement is confirmed; EncodingLabel is the
	// user-declared encoding override (if any) and Pattern is the cached
	// invocation's single positional pattern, used only as a capture-group
	// hint (§6.2, §4.7 of SPEC_FULL.md).
	EncodingLabel string
	Pattern       string

	// KeyOverrides holds user keybinding overrides loaded from config, as
	// action name -> single-rune replacement key (e.g. "toggle_all_items":
	// "x"). Multi-chord overrides (e.g. "ctrl+a") are not supported by this
	// minimal remapper and are ignored. Nil means no overrides.
	KeyOverrides map[string]string
}

// NewAppState constructs the initial state for a freshly ingested list.
// encodingLabel and pattern are carried through unchanged to
// ReplacementCriteria once the replacement is confirmed.
func NewAppState(list *item.List, rgCmdline, encodingLabel, pattern string, width, height int) *AppState {
	s := &AppState{
		List:          list,
		Cursor:        cursor.New(list),
		Mode:          ModeSelectMatches,
		Lifecycle:     Running,
		RgCmdline:     rgCmdline,
		EncodingLabel: encodingLabel,
		Pattern:       pattern,
		ScreenWidth:   width,
		ScreenHeight:  height,
	}
	s.refreshViewport()
	return s
}

// MainViewHeight is the height available to the match list: the full
// screen minus the stats line and the input line.
func (s *AppState) MainViewHeight() int {
	h := s.ScreenHeight - 2
	if h < 0 {
		return 0
	}
	return h
}

func (s *AppState) refreshViewport() {
	s.Cursor = cursor.UpdateViewport(s.List, s.Cursor, s.ScreenWidth, s.MainViewHeight(), s.PrintableStyle)
}

// TooSmall reports whether the screen is below the minimum usable frame.
func (s *AppState) TooSmall() bool {
	const minWidth, minHeight = 30, 10
	return s.ScreenWidth < minWidth || s.ScreenHeight < minHeight
}
