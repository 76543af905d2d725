package config

import (
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestDefaultSimulationConfig(t *testing.T) {
	cfg := Default()

	if cfg.Simulation.Trials != 500 {
		t.Errorf("Simulation.Trials = %d, want 500", cfg.Simulation.Trials)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("Simulation.Seed = %d, want 42", cfg.Simulation.Seed)
	}
	if cfg.Simulation.HorizonHours != 0 {
		t.Errorf("Simulation.HorizonHours = %f, want 0 (use scenario horizon)", cfg.Simulation.HorizonHours)
	}
}

func TestDefaultOutputConfig(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "text")
	}
	if cfg.Output.HistogramBins != 15 {
		t.Errorf("Output.HistogramBins = %d, want 15", cfg.Output.HistogramBins)
	}
	if want := []float64{5, 95}; !reflect.DeepEqual(cfg.Output.Percentiles, want) {
		t.Errorf("Output.Percentiles = %v, want %v", cfg.Output.Percentiles, want)
	}
}

func TestDefaultPathsConfig(t *testing.T) {
	cfg := Default()

	if cfg.Paths.EventsLog != "" {
		t.Errorf("Paths.EventsLog = %q, want disabled by default", cfg.Paths.EventsLog)
	}
	if cfg.Paths.DebugLog != ".linesim/debug.log" {
		t.Errorf("Paths.DebugLog = %q, want %q", cfg.Paths.DebugLog, ".linesim/debug.log")
	}
}

func TestDefaultLogRotationConfig(t *testing.T) {
	cfg := Default()

	if cfg.LogRotation.MaxSizeMB != 20 {
		t.Errorf("LogRotation.MaxSizeMB = %d, want 20", cfg.LogRotation.MaxSizeMB)
	}
	if cfg.LogRotation.MaxBackups != 3 {
		t.Errorf("LogRotation.MaxBackups = %d, want 3", cfg.LogRotation.MaxBackups)
	}
	if cfg.LogRotation.MaxAgeDays != 7 {
		t.Errorf("LogRotation.MaxAgeDays = %d, want 7", cfg.LogRotation.MaxAgeDays)
	}
	if !cfg.LogRotation.Compress {
		t.Error("LogRotation.Compress = false, want true")
	}
}
