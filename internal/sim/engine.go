package sim

import (
	"context"
	"fmt"
	"math/rand"
)

// LineSummary is the reduced outcome of a full Monte Carlo run. It is built
// incrementally during the trial loop and owned by the caller afterwards.
//
// The per-station maps are keyed by station name; Stations preserves the
// configured order for positional rendering.
type LineSummary struct {
	Stations     []string `json:"stations"`
	HorizonHours float64  `json:"horizon_hours"`
	Trials       int      `json:"trials"`

	// Throughputs holds one entry per trial: the minimum units produced
	// across stations in that trial.
	Throughputs []int `json:"throughputs"`

	// BottleneckCounts counts, per station, the trials in which the station
	// was tied for the minimum units produced. Ties credit every tied
	// station, so the counts can sum to more than Trials.
	BottleneckCounts map[string]int `json:"bottleneck_counts"`

	BusyTimeSec map[string]float64 `json:"busy_time_sec"`
	DowntimeSec map[string]float64 `json:"downtime_sec"`
	Units       map[string]int64   `json:"units"`
}

// Progress reports one completed trial to a progress callback.
type Progress struct {
	Trial       int // 1-based index of the completed trial
	Trials      int // total trials in the run
	Throughput  int
	Bottlenecks []string
}

// Engine drives repeated trials over a fixed line definition.
type Engine struct {
	stations   []StationSpec
	horizonSec float64
	horizonHrs float64
	progress   func(Progress)
	source     rand.Source
}

// Option configures an Engine.
type Option func(*Engine)

// WithProgress sets a callback invoked synchronously after every trial.
func WithProgress(fn func(Progress)) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// WithSource overrides the random source built from the seed in Run.
// Intended for tests that need to observe or control the draw sequence.
func WithSource(src rand.Source) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// New validates the line definition and returns an Engine. Validation is
// eager: a bad station spec, duplicate name, empty line, or negative
// horizon fails here, never mid-run.
func New(stations []StationSpec, horizonHours float64, opts ...Option) (*Engine, error) {
	if len(stations) == 0 {
		return nil, ErrEmptyLine
	}
	if horizonHours < 0 {
		return nil, fmt.Errorf("%w: got %.3f hours", ErrInvalidHorizon, horizonHours)
	}

	seen := make(map[string]struct{}, len(stations))
	for _, spec := range stations {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[spec.Name]; dup {
			return nil, &SpecError{Station: spec.Name, Reason: "duplicate station name"}
		}
		seen[spec.Name] = struct{}{}
	}

	e := &Engine{
		stations:   append([]StationSpec(nil), stations...),
		horizonSec: horizonHours * secondsPerHour,
		horizonHrs: horizonHours,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Stations returns the line definition in configured order.
func (e *Engine) Stations() []StationSpec {
	return append([]StationSpec(nil), e.stations...)
}

// HorizonHours returns the simulated horizon.
func (e *Engine) HorizonHours() float64 {
	return e.horizonHrs
}

// Run executes trials sequential Monte Carlo trials and reduces them into a
// LineSummary. A single random source is seeded once and advanced across
// the entire run, so a fixed seed reproduces the summary exactly.
//
// trials == 0 is legal and returns an empty summary without touching the
// random source. The context is checked between trials; on cancellation Run
// returns ctx.Err() and no summary.
func (e *Engine) Run(ctx context.Context, trials int, seed int64) (*LineSummary, error) {
	if trials < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, trials)
	}

	summary := &LineSummary{
		Stations:         make([]string, len(e.stations)),
		HorizonHours:     e.horizonHrs,
		Trials:           trials,
		Throughputs:      make([]int, 0, trials),
		BottleneckCounts: make(map[string]int, len(e.stations)),
		BusyTimeSec:      make(map[string]float64, len(e.stations)),
		DowntimeSec:      make(map[string]float64, len(e.stations)),
		Units:            make(map[string]int64, len(e.stations)),
	}
	for i, spec := range e.stations {
		summary.Stations[i] = spec.Name
		summary.BottleneckCounts[spec.Name] = 0
		summary.BusyTimeSec[spec.Name] = 0
		summary.DowntimeSec[spec.Name] = 0
		summary.Units[spec.Name] = 0
	}

	if trials == 0 {
		return summary, nil
	}

	src := e.source
	if src == nil {
		src = rand.NewSource(seed)
	}
	rng := rand.New(src)

	results := make([]StationTrialResult, len(e.stations))
	for trial := 0; trial < trials; trial++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for i, spec := range e.stations {
			res := SimulateStation(spec, e.horizonSec, rng)
			results[i] = res
			summary.BusyTimeSec[spec.Name] += res.BusyTimeSec
			summary.DowntimeSec[spec.Name] += res.DowntimeSec
			summary.Units[spec.Name] += int64(res.Units)
		}

		minUnits := results[0].Units
		for _, res := range results[1:] {
			if res.Units < minUnits {
				minUnits = res.Units
			}
		}
		summary.Throughputs = append(summary.Throughputs, minUnits)

		var bottlenecks []string
		for _, res := range results {
			if res.Units == minUnits {
				summary.BottleneckCounts[res.Name]++
				bottlenecks = append(bottlenecks, res.Name)
			}
		}

		if e.progress != nil {
			e.progress(Progress{
				Trial:       trial + 1,
				Trials:      trials,
				Throughput:  minUnits,
				Bottlenecks: bottlenecks,
			})
		}
	}

	return summary, nil
}
