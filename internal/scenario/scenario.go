// Package scenario loads production line definitions from YAML files.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khartmann/linesim/internal/sim"
)

// Station is the YAML form of one station definition.
type Station struct {
	Name          string  `yaml:"name"`
	CycleTimeSec  float64 `yaml:"cycle_time_sec"`
	MTBFHours     float64 `yaml:"mtbf_hours"`
	MTTRHours     float64 `yaml:"mttr_hours"`
	ParallelUnits int     `yaml:"parallel_units"`
}

// Scenario describes one simulated line: an ordered list of stations and
// the time horizon. Station order is preserved from the file and defines
// the reporting order.
type Scenario struct {
	Name         string    `yaml:"name"`
	HorizonHours float64   `yaml:"horizon_hours"`
	Stations     []Station `yaml:"stations"`
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Validate checks the scenario against the same rules the engine enforces,
// so a bad file fails at load time with the file in the error message.
func (sc *Scenario) Validate() error {
	if len(sc.Stations) == 0 {
		return sim.ErrEmptyLine
	}
	if sc.HorizonHours < 0 {
		return fmt.Errorf("%w: got %.3f hours", sim.ErrInvalidHorizon, sc.HorizonHours)
	}
	seen := make(map[string]struct{}, len(sc.Stations))
	for _, st := range sc.Stations {
		if err := st.Spec().Validate(); err != nil {
			return err
		}
		if _, dup := seen[st.Name]; dup {
			return &sim.SpecError{Station: st.Name, Reason: "duplicate station name"}
		}
		seen[st.Name] = struct{}{}
	}
	return nil
}

// Spec converts the YAML form to the simulator's spec type.
func (s Station) Spec() sim.StationSpec {
	return sim.StationSpec{
		Name:             s.Name,
		MeanCycleTimeSec: s.CycleTimeSec,
		MTBFHours:        s.MTBFHours,
		MTTRHours:        s.MTTRHours,
		ParallelUnits:    s.ParallelUnits,
	}
}

// Specs returns the stations in file order as simulator specs.
func (sc *Scenario) Specs() []sim.StationSpec {
	specs := make([]sim.StationSpec, len(sc.Stations))
	for i, st := range sc.Stations {
		specs[i] = st.Spec()
	}
	return specs
}
