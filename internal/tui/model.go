package tui

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/khartmann/linesim/internal/events"
)

// runPhase tracks where the monitored run currently is.
type runPhase int

const (
	phaseWaiting runPhase = iota
	phaseRunning
	phaseDone
	phaseCanceled
)

// model is the bubbletea model for the run monitor.
type model struct {
	// Event source
	eventChan <-chan events.Event

	// Run state, filled in by events
	phase        runPhase
	scenario     string
	stations     []string
	horizonHours float64
	trials       int
	seed         int64
	completed    int
	throughputs  []int
	bottlenecks  map[string]int
	mean         float64
	durationMs   int64
	lastError    string

	// UI state
	spinner spinner.Model
	width   int
	height  int

	// Callback
	onCancel func()
}

// newModel creates a model with the given configuration.
func newModel(eventChan <-chan events.Event, onCancel func()) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return model{
		eventChan:   eventChan,
		phase:       phaseWaiting,
		bottlenecks: make(map[string]int),
		spinner:     sp,
		onCancel:    onCancel,
	}
}
