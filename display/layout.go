package display

// Layout is the set of rectangular regions the Renderer draws into for one
// frame. The main area occupies everything but the bottom two rows; row
// N-1 is the stats line, row N is the input line. In Help mode the main
// area additionally splits horizontally 50/50 into help text and a
// keybindings table.
type Layout struct {
	ScreenWidth, ScreenHeight int

	MainX, MainY, MainWidth, MainHeight int
	StatsRow, InputRow                  int

	HelpTextWidth, HelpTableX, HelpTableWidth int
}

// NewLayout computes the layout for a screen of the given size.
func NewLayout(width, height int) Layout {
	mainHeight := height - 2
	if mainHeight < 0 {
		mainHeight = 0
	}

	l := Layout{
		ScreenWidth:  width,
		ScreenHeight: height,
		MainX:        0,
		MainY:        0,
		MainWidth:    width,
		MainHeight:   mainHeight,
		StatsRow:     mainHeight,
		InputRow:     mainHeight + 1,
	}

	l.HelpTextWidth = width / 2
	l.HelpTableX = l.HelpTextWidth
	l.HelpTableWidth = width - l.HelpTextWidth
	return l
}
