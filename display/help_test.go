package display

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestDrawHelpRendersKeybindingsTable(t *testing.T) {
	withSimScreen(t, func(s tcell.SimulationScreen) {
		s.SetSize(80, 24)
		l := NewLayout(80, 24)

		DrawHelp(s, l, 0)

		cells, width, _ := s.GetContents()
		row1 := make([]rune, 0, 11)
		for x := l.HelpTableX; x < l.HelpTableX+11; x++ {
			row1 = append(row1, cells[x+1*width].Runes[0])
		}
		assert.Contains(t, string(row1), "control")
	})
}

func TestDrawHelpDocumentsCtrlVForPrintableStyle(t *testing.T) {
	var found bool
	for _, row := range helpRows {
		if row.key == "control + v" {
			found = true
			assert.Contains(t, row.action, "printability")
		}
	}
	assert.True(t, found)
}

func TestDrawHelpScrollShiftsRows(t *testing.T) {
	withSimScreen(t, func(s tcell.SimulationScreen) {
		s.SetSize(80, 24)
		l := NewLayout(80, 24)

		DrawHelp(s, l, 2)

		cells, width, _ := s.GetContents()
		row0 := make([]rune, 0, 1)
		row0 = append(row0, cells[l.HelpTableX+0*width].Runes[0])
		assert.NotEqual(t, 'M', row0[0])
	})
}
