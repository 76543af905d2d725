package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Simulation.Trials != 500 {
		t.Errorf("Simulation.Trials = %d, want default 500", cfg.Simulation.Trials)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want default %q", cfg.Output.Format, "text")
	}
}

func TestLoadConfig_ProjectFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := os.MkdirAll(ProjectConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	doc := []byte("simulation:\n  trials: 2000\n  seed: 7\noutput:\n  histogram_bins: 25\n")
	if err := os.WriteFile(filepath.Join(ProjectConfigDir, ProjectConfigFile), doc, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(viper.New())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Simulation.Trials != 2000 {
		t.Errorf("Simulation.Trials = %d, want 2000 from project config", cfg.Simulation.Trials)
	}
	if cfg.Simulation.Seed != 7 {
		t.Errorf("Simulation.Seed = %d, want 7 from project config", cfg.Simulation.Seed)
	}
	if cfg.Output.HistogramBins != 25 {
		t.Errorf("Output.HistogramBins = %d, want 25 from project config", cfg.Output.HistogramBins)
	}
	// Untouched values keep their defaults.
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want default %q", cfg.Output.Format, "text")
	}
}

func TestLoadConfig_ViperSettingsWin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v := viper.New()
	v.Set("simulation.trials", 50)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Simulation.Trials != 50 {
		t.Errorf("Simulation.Trials = %d, want 50 from viper override", cfg.Simulation.Trials)
	}
}

func TestLoadConfig_ExplicitFileMustExist(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v := viper.New()
	v.Set("config", "does-not-exist.yaml")

	if _, err := LoadConfig(v); err == nil {
		t.Error("LoadConfig() with missing explicit config succeeded, want error")
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.Set("config", path)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q from explicit config", cfg.Output.Format, "json")
	}
}
