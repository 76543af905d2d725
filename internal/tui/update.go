package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khartmann/linesim/internal/events"
)

// eventMsg wraps a simulation event for the bubbletea message system.
type eventMsg struct {
	event events.Event
}

// channelClosedMsg signals that the event channel was closed.
type channelClosedMsg struct{}

// waitForEvent creates a command that waits for the next event from the
// channel. Returns channelClosedMsg once the channel is closed.
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return eventMsg{event: event}
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.eventChan), m.spinner.Tick)
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventMsg:
		m.handleEvent(msg.event)
		return m, waitForEvent(m.eventChan)

	case channelClosedMsg:
		if m.phase == phaseRunning || m.phase == phaseWaiting {
			// Producer went away without a run.end event.
			m.phase = phaseCanceled
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.phase == phaseRunning || m.phase == phaseWaiting {
			if m.onCancel != nil {
				m.onCancel()
			}
			m.phase = phaseCanceled
		}
		return m, tea.Quit
	}
	return m, nil
}

// handleEvent folds a simulation event into the display state.
func (m *model) handleEvent(event events.Event) {
	switch e := event.(type) {
	case events.RunStartEvent:
		m.phase = phaseRunning
		m.scenario = e.Scenario
		m.stations = e.Stations
		m.horizonHours = e.HorizonHours
		m.trials = e.Trials
		m.seed = e.Seed

	case events.TrialCompleteEvent:
		m.completed = e.Trial
		m.throughputs = append(m.throughputs, e.Throughput)
		for _, name := range e.Bottlenecks {
			m.bottlenecks[name]++
		}

	case events.RunEndEvent:
		m.mean = e.MeanThroughput
		m.durationMs = e.DurationMs
		if e.Canceled {
			m.phase = phaseCanceled
		} else {
			m.phase = phaseDone
		}

	case events.ErrorEvent:
		m.lastError = e.Message
	}
}
