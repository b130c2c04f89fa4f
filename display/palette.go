package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/acheronfail/repgrep-sub000/exec"
)

// Palette controls the style of every piece of chrome the Renderer draws:
// match list spans, the stats line, and the input/help text.
type Palette struct {
	pathStyle    tcell.Style
	linenoStyle  tcell.Style
	contextStyle tcell.Style
	defaultStyle tcell.Style

	replaceEnabledStyle  tcell.Style
	replaceDisabledStyle tcell.Style

	selectedEnabledStyle   tcell.Style
	selectedDisabledStyle  tcell.Style
	unselectedEnabledStyle tcell.Style
	unselectedDisabledStyle tcell.Style

	replacementTextStyle tcell.Style

	statusMsgSuccessStyle tcell.Style
	statusMsgErrorStyle   tcell.Style

	modeTagStyle tcell.Style
}

// NewPalette builds the fixed style table used throughout the renderer.
func NewPalette() *Palette {
	s := tcell.StyleDefault
	return &Palette{
		pathStyle:    s.Foreground(tcell.ColorFuchsia),
		linenoStyle:  s.Dim(true),
		contextStyle: s,
		defaultStyle: s,

		replaceEnabledStyle:  s.Foreground(tcell.ColorRed).StrikeThrough(true),
		replaceDisabledStyle: s,

		selectedEnabledStyle:    s.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
		selectedDisabledStyle:   s.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkGray),
		unselectedEnabledStyle:  s.Foreground(tcell.ColorBlack).Background(tcell.ColorRed),
		unselectedDisabledStyle: s.Foreground(tcell.ColorRed).Background(tcell.ColorDarkGray),

		replacementTextStyle: s.Foreground(tcell.ColorGreen),

		statusMsgSuccessStyle: s.Foreground(tcell.ColorGreen).Bold(true),
		statusMsgErrorStyle:   s.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true),

		modeTagStyle: s.Bold(true),
	}
}

func (p *Palette) StyleForPath() tcell.Style    { return p.pathStyle }
func (p *Palette) StyleForLineno() tcell.Style  { return p.linenoStyle }
func (p *Palette) StyleForContext() tcell.Style { return p.contextStyle }
func (p *Palette) StyleForDefault() tcell.Style { return p.defaultStyle }
func (p *Palette) StyleForReplacementText() tcell.Style { return p.replacementTextStyle }
func (p *Palette) StyleForModeTag() tcell.Style { return p.modeTagStyle }

// StyleForSubmatch implements the §4.6 submatch style state table.
func (p *Palette) StyleForSubmatch(replacing, selected, shouldReplace bool) tcell.Style {
	if replacing {
		if shouldReplace {
			return p.replaceEnabledStyle
		}
		return p.replaceDisabledStyle
	}
	if selected {
		if shouldReplace {
			return p.selectedEnabledStyle
		}
		return p.selectedDisabledStyle
	}
	if shouldReplace {
		return p.unselectedEnabledStyle
	}
	return p.unselectedDisabledStyle
}

func (p *Palette) StyleForStatusMsg(style exec.StatusMsgStyle) tcell.Style {
	switch style {
	case exec.StatusMsgStyleSuccess:
		return p.statusMsgSuccessStyle
	case exec.StatusMsgStyleError:
		return p.statusMsgErrorStyle
	default:
		return tcell.StyleDefault
	}
}
