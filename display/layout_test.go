package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayoutComputesRows(t *testing.T) {
	l := NewLayout(80, 24)
	assert.Equal(t, 22, l.MainHeight)
	assert.Equal(t, 22, l.StatsRow)
	assert.Equal(t, 23, l.InputRow)
	assert.Equal(t, 40, l.HelpTextWidth)
	assert.Equal(t, 40, l.HelpTableX)
	assert.Equal(t, 40, l.HelpTableWidth)
}

func TestNewLayoutClampsTinyScreens(t *testing.T) {
	l := NewLayout(10, 1)
	assert.Equal(t, 0, l.MainHeight)
	assert.Equal(t, 0, l.StatsRow)
	assert.Equal(t, 1, l.InputRow)
}
