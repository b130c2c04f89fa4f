package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/acheronfail/repgrep-sub000/exec"
)

// DrawStatsLine draws the stats line: mode tag left-aligned, searcher
// command line / match count / replacement count right-aligned.
func DrawStatsLine(screen tcell.Screen, row int, state *exec.AppState, palette *Palette) {
	screenWidth, screenHeight := screen.Size()
	if row < 0 || row >= screenHeight {
		return
	}

	sr := NewScreenRegion(screen, 0, row, screenWidth, 1)
	sr.Clear()
	sr.PutStrStyled(0, 0, state.Mode.String(), palette.StyleForModeTag())

	right := statsLineRight(state)
	x := screenWidth - len([]rune(right))
	if x < 0 {
		x = 0
	}
	sr.PutStrStyled(x, 0, right, palette.StyleForDefault())
}

func statsLineRight(state *exec.AppState) string {
	matches := state.List.Stats.Matches
	replacements := uint64(state.List.TotalReplaceCount())
	return fmt.Sprintf("%s | %d matches, %d to replace", state.RgCmdline, matches, replacements)
}
