// Package sim implements the Monte Carlo production line simulator: a
// per-station alternating renewal process (up/down intervals over a fixed
// horizon) and the trial loop that reduces per-station output into line
// throughput and bottleneck attribution.
package sim

import (
	"errors"
	"fmt"
)

// Configuration errors, detected before any trial runs.
var (
	// ErrEmptyLine is returned when a line has no stations; the per-trial
	// minimum over zero stations is undefined.
	ErrEmptyLine = errors.New("line has no stations")

	// ErrInvalidHorizon is returned for a negative horizon.
	ErrInvalidHorizon = errors.New("horizon must not be negative")

	// ErrInvalidTrialCount is returned for a negative trial count.
	// Zero trials is legal and yields an empty summary.
	ErrInvalidTrialCount = errors.New("trial count must not be negative")

	// ErrInvalidStationSpec is wrapped by every SpecError.
	ErrInvalidStationSpec = errors.New("invalid station spec")
)

// SpecError describes why a single station's configuration is invalid.
type SpecError struct {
	Station string
	Reason  string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("station %q: %s", e.Station, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidStationSpec).
func (e *SpecError) Unwrap() error {
	return ErrInvalidStationSpec
}

// StationSpec describes one stage of the line. A station may be backed by
// multiple identical machines in parallel; each machine is simulated
// independently and the results are summed.
type StationSpec struct {
	Name string

	// MeanCycleTimeSec is the average processing time per unit per machine.
	// Zero is legal and models a station that produces nothing.
	MeanCycleTimeSec float64

	// MTBFHours is the mean time between failures per machine. Must be
	// strictly positive so the exponential up-interval draw has a nonzero
	// mean.
	MTBFHours float64

	// MTTRHours is the mean time to repair per machine. Must be strictly
	// positive for the same reason.
	MTTRHours float64

	// ParallelUnits is the number of identical machines at this station.
	ParallelUnits int
}

// Validate reports the first problem with the spec, or nil.
func (s StationSpec) Validate() error {
	if s.Name == "" {
		return &SpecError{Station: s.Name, Reason: "name must not be empty"}
	}
	if s.MeanCycleTimeSec < 0 {
		return &SpecError{Station: s.Name, Reason: fmt.Sprintf("cycle time %.3f is negative", s.MeanCycleTimeSec)}
	}
	if s.MTBFHours <= 0 {
		return &SpecError{Station: s.Name, Reason: fmt.Sprintf("MTBF %.3f must be positive", s.MTBFHours)}
	}
	if s.MTTRHours <= 0 {
		return &SpecError{Station: s.Name, Reason: fmt.Sprintf("MTTR %.3f must be positive", s.MTTRHours)}
	}
	if s.ParallelUnits < 1 {
		return &SpecError{Station: s.Name, Reason: fmt.Sprintf("parallel units %d must be at least 1", s.ParallelUnits)}
	}
	return nil
}

// StationTrialResult holds one trial's totals for one station, summed
// across its parallel machines.
//
// BusyTimeSec counts only whole completed cycles. The remainder of an up
// interval that does not fit a full cycle is dropped: it is neither busy
// nor downtime, so BusyTimeSec+DowntimeSec may be less than the horizon.
type StationTrialResult struct {
	Name        string
	BusyTimeSec float64
	DowntimeSec float64
	Units       int
}
