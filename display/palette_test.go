package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acheronfail/repgrep-sub000/exec"
)

func TestStyleForSubmatchMatchesStateTable(t *testing.T) {
	p := NewPalette()

	// replacing (a buffer is present): should_replace drives the style,
	// selection does not matter.
	assert.Equal(t, p.replaceEnabledStyle, p.StyleForSubmatch(true, false, true))
	assert.Equal(t, p.replaceEnabledStyle, p.StyleForSubmatch(true, true, true))
	assert.Equal(t, p.replaceDisabledStyle, p.StyleForSubmatch(true, false, false))
	assert.Equal(t, p.replaceDisabledStyle, p.StyleForSubmatch(true, true, false))

	// not replacing, selected submatch.
	assert.Equal(t, p.selectedEnabledStyle, p.StyleForSubmatch(false, true, true))
	assert.Equal(t, p.selectedDisabledStyle, p.StyleForSubmatch(false, true, false))

	// not replacing, unselected submatch.
	assert.Equal(t, p.unselectedEnabledStyle, p.StyleForSubmatch(false, false, true))
	assert.Equal(t, p.unselectedDisabledStyle, p.StyleForSubmatch(false, false, false))
}

func TestStyleForStatusMsg(t *testing.T) {
	p := NewPalette()

	assert.Equal(t, p.statusMsgSuccessStyle, p.StyleForStatusMsg(exec.StatusMsgStyleSuccess))
	assert.Equal(t, p.statusMsgErrorStyle, p.StyleForStatusMsg(exec.StatusMsgStyleError))
}
