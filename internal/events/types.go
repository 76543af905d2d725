// Package events defines the simulation event taxonomy and the
// channel-based pub/sub plumbing that connects the engine to the TUI and
// the optional JSONL event log.
package events

import "time"

// EventType identifies the category of an event.
type EventType string

const (
	// EventRunStart is emitted once before the first trial.
	EventRunStart EventType = "run.start"
	// EventTrialComplete is emitted after every trial.
	EventTrialComplete EventType = "trial.complete"
	// EventRunEnd is emitted after the last trial (or on cancellation).
	EventRunEnd EventType = "run.end"
	// EventError is emitted for failures outside the trial loop.
	EventError EventType = "error"
)

// Event is the base interface for all events in the system.
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides the common fields for all events.
type BaseEvent struct {
	EventType EventType `json:"type"`
	Time      time.Time `json:"timestamp"`
}

// Type returns the event type.
func (e BaseEvent) Type() EventType {
	return e.EventType
}

// Timestamp returns when the event occurred.
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// NewEvent creates a BaseEvent with the given type.
func NewEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
	}
}

// RunStartEvent is emitted when a Monte Carlo run begins.
type RunStartEvent struct {
	BaseEvent
	Scenario     string   `json:"scenario"`
	Stations     []string `json:"stations"`
	HorizonHours float64  `json:"horizon_hours"`
	Trials       int      `json:"trials"`
	Seed         int64    `json:"seed"`
}

// TrialCompleteEvent is emitted after each trial with that trial's line
// throughput and bottleneck set.
type TrialCompleteEvent struct {
	BaseEvent
	Trial       int      `json:"trial"`
	Trials      int      `json:"trials"`
	Throughput  int      `json:"throughput"`
	Bottlenecks []string `json:"bottlenecks"`
}

// RunEndEvent is emitted when the run finishes.
type RunEndEvent struct {
	BaseEvent
	TrialsDone     int     `json:"trials_done"`
	MeanThroughput float64 `json:"mean_throughput"`
	Canceled       bool    `json:"canceled,omitempty"`
	DurationMs     int64   `json:"duration_ms"`
}

// ErrorEvent is emitted for any error condition.
type ErrorEvent struct {
	BaseEvent
	Message string `json:"message"`
}
