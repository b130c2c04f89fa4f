package display

import (
	"github.com/gdamore/tcell/v2"
)

// helpText is shown in the left half of the Help pane.
const helpText = `repgrep is a tool to interactively search, select and replace text produced
by a JSON-emitting search tool.

Use <space> to toggle a match for replacement, <a> to toggle every match,
then <enter> to enter the replacement text. Press <?> while selecting
matches to view this help, and <esc> or <q> to leave it.`

type helpRow struct {
	title   bool
	key     string
	action  string
}

var helpRows = []helpRow{
	{title: true, key: "MODE: ALL"},
	{key: "control + b", action: "move backward one page"},
	{key: "control + f", action: "move forward one page"},
	{key: "control + v", action: "cycle whitespace printability style"},
	{},
	{title: true, key: "MODE: SELECT"},
	{key: "k, up", action: "move to previous match"},
	{key: "j, down", action: "move to next match"},
	{key: "K, shift+up", action: "move to previous file"},
	{key: "J, shift+down", action: "move to next file"},
	{key: "space", action: "toggle selection"},
	{key: "a, A", action: "toggle selection for all matches"},
	{key: "v, V", action: "invert selection"},
	{key: "enter, r, R", action: "accept selection"},
	{key: "q, esc", action: "quit"},
	{key: "?", action: "show help and keybindings"},
	{},
	{title: true, key: "MODE: REPLACE"},
	{key: "control + s", action: "accept replacement text"},
	{key: "enter", action: "insert a newline"},
	{key: "esc", action: "previous mode"},
	{},
	{title: true, key: "MODE: CONFIRM"},
	{key: "enter", action: "write replacements to disk"},
	{key: "q, esc", action: "previous mode"},
}

// DrawHelp renders the Help pane: free text on the left, a keybindings
// table on the right, each taking half the available width.
func DrawHelp(screen tcell.Screen, l Layout, scroll int) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorFuchsia)

	left := NewScreenRegion(screen, l.MainX, l.MainY, l.HelpTextWidth, l.MainHeight)
	left.Clear()
	drawCells(left, styleRun(helpText, tcell.StyleDefault), 0, l.HelpTextWidth, l.MainHeight)

	right := NewScreenRegion(screen, l.HelpTableX, l.MainY, l.HelpTableWidth, l.MainHeight)
	right.Clear()

	keyCol := 20
	for i, row := range helpRows {
		y := i - scroll
		if y < 0 || y >= l.MainHeight {
			continue
		}
		if row.key == "" {
			continue
		}
		if row.title {
			right.PutStrStyled(0, y, row.key, titleStyle)
			continue
		}
		right.PutStrStyled(0, y, row.key, tcell.StyleDefault)
		right.PutStrStyled(keyCol, y, row.action, tcell.StyleDefault)
	}
}
