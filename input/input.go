// Package input translates tcell key events into exec.Mutators, per the
// keybinding table in §6.3. It holds no state of its own; every decision is
// a direct function of the current UiMode and the key pressed.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/acheronfail/repgrep-sub000/cursor"
	"github.com/acheronfail/repgrep-sub000/exec"
)

// HandleKey returns the Mutator that a key event produces for the given
// state, or nil if the key is not bound in the current mode.
func HandleKey(state *exec.AppState, ev *tcell.EventKey) exec.Mutator {
	if state.TooSmall() {
		if ev.Key() == tcell.KeyEsc || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return exec.NewCancelMutator()
		}
		return nil
	}

	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if m := handleGlobalCtrl(state, ev); m != nil {
			return m
		}
	}

	switch state.Mode {
	case exec.ModeSelectMatches:
		return handleSelectMatches(state, ev)
	case exec.ModeInputReplacement:
		return handleInputReplacement(ev)
	case exec.ModeConfirmReplacement:
		return handleConfirmReplacement(ev)
	case exec.ModeHelp:
		return handleHelp(ev)
	default:
		return nil
	}
}

// handleGlobalCtrl handles the Ctrl-held bindings common to every mode
// except Help: page up/down and cycling the whitespace printability style.
func handleGlobalCtrl(state *exec.AppState, ev *tcell.EventKey) exec.Mutator {
	if state.Mode == exec.ModeHelp {
		return nil
	}
	switch ev.Key() {
	case tcell.KeyCtrlB:
		return exec.NewPageMutator(false)
	case tcell.KeyCtrlF:
		return exec.NewPageMutator(true)
	case tcell.KeyCtrlV:
		return exec.NewCyclePrintableStyleMutator()
	case tcell.KeyCtrlS:
		if state.Mode == exec.ModeInputReplacement {
			return exec.NewSetModeMutator(exec.ModeConfirmReplacement)
		}
		return nil
	default:
		return nil
	}
}

// defaultRuneActions maps the built-in single-rune bindings of
// ModeSelectMatches to the named actions config.Keybindings can override.
var defaultRuneActions = map[rune]string{
	'k': "move_prev_line",
	'K': "move_prev_file",
	'j': "move_next_line",
	'J': "move_next_file",
	'h': "move_prev",
	'l': "move_next",
	' ': "toggle_item",
	's': "toggle_item_all",
	'S': "toggle_item_all",
	'a': "toggle_all_items",
	'A': "toggle_all_items",
	'v': "invert_selection",
	'V': "invert_selection_all",
	'r': "start_replacement",
	'R': "start_replacement",
	'?': "show_help",
	'q': "quit",
}

// resolveRuneAction returns the action bound to the pressed rune, honoring
// overrides: an override rebinds its action's key to a new rune, displacing
// whatever default rune used to trigger it.
func resolveRuneAction(overrides map[string]string, r rune) string {
	for action, key := range overrides {
		if len(key) == 1 && rune(key[0]) == r {
			return action
		}
	}
	for action, key := range overrides {
		if len(key) == 1 && defaultRuneActions[r] == action && rune(key[0]) != r {
			return ""
		}
	}
	return defaultRuneActions[r]
}

func handleSelectMatches(state *exec.AppState, ev *tcell.EventKey) exec.Mutator {
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyUp:
		if shift {
			return exec.NewMoveCursorMutator(cursor.MovePrevFile())
		}
		return exec.NewMoveCursorMutator(cursor.MovePrevLine())
	case tcell.KeyDown:
		if shift {
			return exec.NewMoveCursorMutator(cursor.MoveNextFile())
		}
		return exec.NewMoveCursorMutator(cursor.MoveNextLine())
	case tcell.KeyLeft:
		return exec.NewMoveCursorMutator(cursor.MovePrev())
	case tcell.KeyRight:
		return exec.NewMoveCursorMutator(cursor.MoveNext())
	case tcell.KeyEnter:
		return exec.NewSetModeMutator(exec.ModeInputReplacement)
	case tcell.KeyEsc:
		return exec.NewCancelMutator()
	case tcell.KeyRune:
		switch resolveRuneAction(state.KeyOverrides, ev.Rune()) {
		case "move_prev_line":
			return exec.NewMoveCursorMutator(cursor.MovePrevLine())
		case "move_prev_file":
			return exec.NewMoveCursorMutator(cursor.MovePrevFile())
		case "move_next_line":
			return exec.NewMoveCursorMutator(cursor.MoveNextLine())
		case "move_next_file":
			return exec.NewMoveCursorMutator(cursor.MoveNextFile())
		case "move_prev":
			return exec.NewMoveCursorMutator(cursor.MovePrev())
		case "move_next":
			return exec.NewMoveCursorMutator(cursor.MoveNext())
		case "toggle_item":
			return exec.NewToggleItemMutator(false)
		case "toggle_item_all":
			return exec.NewToggleItemMutator(true)
		case "toggle_all_items":
			return exec.NewToggleAllItemsMutator()
		case "invert_selection":
			return exec.NewInvertSelectionMutator(false)
		case "invert_selection_all":
			return exec.NewInvertSelectionMutator(true)
		case "start_replacement":
			return exec.NewSetModeMutator(exec.ModeInputReplacement)
		case "show_help":
			return exec.NewSetModeMutator(exec.ModeHelp)
		case "quit":
			return exec.NewCancelMutator()
		}
	}
	return nil
}

func handleInputReplacement(ev *tcell.EventKey) exec.Mutator {
	switch ev.Key() {
	case tcell.KeyEnter:
		return exec.NewAppendInputNewlineMutator()
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return exec.NewBackspaceInputMutator()
	case tcell.KeyEsc:
		return exec.NewSetModeMutator(exec.ModeSelectMatches)
	case tcell.KeyRune:
		return exec.NewAppendInputRuneMutator(ev.Rune())
	case tcell.KeyTab:
		return exec.NewAppendInputRuneMutator('\t')
	default:
		return nil
	}
}

func handleConfirmReplacement(ev *tcell.EventKey) exec.Mutator {
	switch ev.Key() {
	case tcell.KeyEnter:
		return exec.NewCompleteMutator()
	case tcell.KeyEsc:
		return exec.NewSetModeMutator(exec.ModeInputReplacement)
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return exec.NewSetModeMutator(exec.ModeInputReplacement)
		}
	}
	return nil
}

func handleHelp(ev *tcell.EventKey) exec.Mutator {
	switch ev.Key() {
	case tcell.KeyUp:
		return exec.NewScrollHelpMutator(-1)
	case tcell.KeyDown:
		return exec.NewScrollHelpMutator(1)
	case tcell.KeyEsc:
		return exec.NewSetModeMutator(exec.ModeSelectMatches)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return exec.NewScrollHelpMutator(-1)
		case 'j':
			return exec.NewScrollHelpMutator(1)
		case 'q':
			return exec.NewSetModeMutator(exec.ModeSelectMatches)
		}
	}
	return nil
}
