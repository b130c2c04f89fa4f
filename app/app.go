// Package app runs the event loop: a reader goroutine polls terminal events
// into a buffered channel, and the main goroutine owns *exec.AppState,
// applying one Mutator per event and redrawing until the Lifecycle leaves
// Running.
package app

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/acheronfail/repgrep-sub000/display"
	"github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/input"
)

// drainThreshold is the draw-time budget past which pending terminal events
// are flushed rather than processed one at a time, so a slow redraw doesn't
// leave the user's keypresses queued up behind it.
const drainThreshold = 20 * time.Millisecond

// App owns the screen and the state machine for one run of the tool.
type App struct {
	screen  tcell.Screen
	state   *exec.AppState
	palette *display.Palette
	events  chan tcell.Event
}

// New constructs an App over an already-initialized screen and item list.
func New(screen tcell.Screen, state *exec.AppState) *App {
	return &App{
		screen:  screen,
		state:   state,
		palette: display.NewPalette(),
		events:  make(chan tcell.Event, 1),
	}
}

// Run blocks until the state machine leaves Running, returning the final
// Lifecycle value.
func (a *App) Run() exec.Lifecycle {
	before := time.Now()
	display.Render(a.screen, a.state, a.palette)
	lastDraw := time.Since(before)

	go a.pollEvents()

	for {
		ev := <-a.events
		a.handleEvent(ev)

		if lastDraw > drainThreshold {
			a.drainPendingEvents()
		}

		if a.state.Lifecycle != exec.Running {
			return a.state.Lifecycle
		}

		before = time.Now()
		display.Render(a.screen, a.state, a.palette)
		lastDraw = time.Since(before)
	}
}

func (a *App) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		a.events <- ev
	}
}

func (a *App) drainPendingEvents() {
	for {
		select {
		case ev := <-a.events:
			a.handleEvent(ev)
		default:
			return
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		mutator := input.HandleKey(a.state, ev)
		a.applyMutator(mutator)
	case *tcell.EventResize:
		width, height := ev.Size()
		a.applyMutator(exec.NewResizeMutator(width, height))
	}
}

func (a *App) applyMutator(m exec.Mutator) {
	if m == nil {
		return
	}
	log.Printf("applying mutator %s", m.String())
	m.Mutate(a.state)
}
