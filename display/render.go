// Package display implements the Renderer: it draws the mode-appropriate
// layout (match list, stats line, input line, help pane) onto a tcell
// screen from an *exec.AppState.
package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/acheronfail/repgrep-sub000/exec"
)

// Render draws one full frame for the given state.
func Render(screen tcell.Screen, state *exec.AppState, palette *Palette) {
	screen.Clear()

	if state.TooSmall() {
		drawTooSmall(screen, state, palette)
		screen.Show()
		return
	}

	l := NewLayout(state.ScreenWidth, state.ScreenHeight)

	if state.Mode == exec.ModeHelp {
		DrawHelp(screen, l, state.HelpScroll)
	} else {
		main := NewScreenRegion(screen, l.MainX, l.MainY, l.MainWidth, l.MainHeight)
		DrawMatchList(main, state, palette)
	}

	DrawStatsLine(screen, l.StatsRow, state, palette)
	drawInputLine(screen, l.InputRow, state, palette)

	screen.Show()
}

// drawTooSmall replaces the normal layout with a single notice when the
// screen is below the minimum usable frame; only Esc/q are honored in this
// state (see input.HandleKey).
func drawTooSmall(screen tcell.Screen, state *exec.AppState, palette *Palette) {
	width, height := state.ScreenWidth, state.ScreenHeight
	if width <= 0 || height <= 0 {
		return
	}
	sr := NewScreenRegion(screen, 0, 0, width, height)
	sr.PutStrStyled(0, 0, "terminal too small, press <esc> or <q> to cancel", palette.StyleForStatusMsg(exec.StatusMsgStyleError))
}

func drawInputLine(screen tcell.Screen, row int, state *exec.AppState, palette *Palette) {
	width, height := screen.Size()
	if row < 0 || row >= height {
		return
	}

	sr := NewScreenRegion(screen, 0, row, width, 1)
	sr.Clear()

	switch state.Mode {
	case exec.ModeHelp:
		sr.PutStrStyled(0, 0, "Viewing help. Press <esc> or <q> to return.", palette.StyleForDefault())
	case exec.ModeSelectMatches:
		if state.StatusMsg.Text != "" {
			sr.PutStrStyled(0, 0, state.StatusMsg.Text, palette.StyleForStatusMsg(state.StatusMsg.Style))
			return
		}
		sr.PutStrStyled(0, 0, "Select (or deselect) matches with <space>, then press <enter>. Press <?> for help.", palette.StyleForDefault())
	case exec.ModeInputReplacement:
		x := sr.PutStrStyled(0, 0, "Replacement: ", palette.StyleForDefault())
		buf := state.InputBuffer
		if buf == "" {
			x = sr.PutStrStyled(x, 0, "<empty>", tcell.StyleDefault.Dim(true))
		} else {
			x = sr.PutStrStyled(x, 0, buf, palette.StyleForDefault())
		}
		sr.ShowCursor(x, 0)
	case exec.ModeConfirmReplacement:
		sr.PutStrStyled(0, 0, "Press <enter> to write changes to disk, <esc> to cancel.", palette.StyleForDefault())
	}
}
