package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ScreenRegion draws to a rectangular region in a screen.
type ScreenRegion struct {
	screen              tcell.Screen
	x, y, width, height int
}

// NewScreenRegion defines a new rectangular region within a screen.
func NewScreenRegion(screen tcell.Screen, x, y, width, height int) *ScreenRegion {
	return &ScreenRegion{screen, x, y, width, height}
}

// Resize changes the region's width and height, keeping its origin fixed.
func (r *ScreenRegion) Resize(width, height int) {
	r.width, r.height = width, height
}

// Clear resets a rectangular region of the screen to its initial state.
func (r *ScreenRegion) Clear() {
	r.Fill(' ', tcell.StyleDefault)
}

// Fill fills a rectangular region of the screen with a character.
func (r *ScreenRegion) Fill(c rune, style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.SetContent(x, y, c, nil, style)
		}
	}
}

// SetContent sets a single cell at the given coordinates, relative to the
// origin of the region. Out-of-bounds coordinates are ignored.
func (r *ScreenRegion) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x+r.x, y+r.y, mainc, combc, style)
}

// PutStrStyled prints the string clipped to the screen region without
// wrapping, returning the x coordinate immediately after the last rune
// written.
func (r *ScreenRegion) PutStrStyled(x, y int, str string, style tcell.Style) int {
	for _, c := range str {
		if x >= r.width || y >= r.height {
			break
		}
		r.SetContent(x, y, c, nil, style)
		w := runewidth.RuneWidth(c)
		if w <= 0 {
			w = 1
		}
		x += w
	}
	return x
}

// HideCursor prevents the cursor from being displayed.
func (r *ScreenRegion) HideCursor() {
	r.screen.HideCursor()
}

// ShowCursor sets the location of the cursor on the screen, relative to the
// origin of the region. Coordinates outside the region hide the cursor.
func (r *ScreenRegion) ShowCursor(x, y int) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		r.HideCursor()
		return
	}
	r.screen.ShowCursor(x+r.x, y+r.y)
}

// Size returns the width and height of the screen region.
func (r *ScreenRegion) Size() (width, height int) {
	return r.width, r.height
}
