// Package tui provides a live terminal monitor for a running simulation
// using bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khartmann/linesim/internal/events"
)

// TUI is the live run monitor.
type TUI struct {
	eventChan <-chan events.Event
	onCancel  func()
}

// Option configures the TUI.
type Option func(*TUI)

// WithOnCancel sets the callback invoked when the user quits before the
// run finishes; it should cancel the engine.
func WithOnCancel(fn func()) Option {
	return func(t *TUI) {
		t.onCancel = fn
	}
}

// New creates a TUI reading from the given event channel.
func New(eventChan <-chan events.Event, opts ...Option) *TUI {
	t := &TUI{eventChan: eventChan}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run starts the TUI and blocks until it exits.
func (t *TUI) Run() error {
	m := newModel(t.eventChan, t.onCancel)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
