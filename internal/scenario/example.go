package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Example returns a four-station transformer assembly line, sized for one
// eight hour shift. It is the scenario written by `linesim init`.
func Example() *Scenario {
	return &Scenario{
		Name:         "transformer-line",
		HorizonHours: 8,
		Stations: []Station{
			{Name: "Core Winding", CycleTimeSec: 45, MTBFHours: 120, MTTRHours: 1, ParallelUnits: 2},
			{Name: "Coil Assembly", CycleTimeSec: 60, MTBFHours: 90, MTTRHours: 1.5, ParallelUnits: 1},
			{Name: "Tank Fabrication", CycleTimeSec: 80, MTBFHours: 150, MTTRHours: 2, ParallelUnits: 1},
			{Name: "Final Assembly", CycleTimeSec: 70, MTBFHours: 100, MTTRHours: 1, ParallelUnits: 2},
		},
	}
}

// WriteOptions configures WriteExample.
type WriteOptions struct {
	Force  bool      // Overwrite an existing file
	DryRun bool      // Report what would be written without writing
	Out    io.Writer // Status output (defaults to os.Stdout)
}

// WriteExample writes the example scenario to path. An existing file is
// left alone unless Force is set.
func WriteExample(path string, opts WriteOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return fmt.Errorf("marshal example scenario: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if opts.DryRun {
		fmt.Fprintf(out, "would write %s (%d bytes)\n", path, len(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}
