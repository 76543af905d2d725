// Package config provides configuration types and defaults for linesim.
package config

// Config holds all configuration for linesim.
type Config struct {
	Simulation  SimulationConfig  `yaml:"simulation" mapstructure:"simulation"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// SimulationConfig holds Monte Carlo run settings.
type SimulationConfig struct {
	Trials int   `yaml:"trials" mapstructure:"trials"`
	Seed   int64 `yaml:"seed" mapstructure:"seed"`
	// HorizonHours overrides the scenario's horizon when > 0.
	HorizonHours float64 `yaml:"horizon_hours" mapstructure:"horizon_hours"`
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	Format        string    `yaml:"format" mapstructure:"format"` // "text" or "json"
	HistogramBins int       `yaml:"histogram_bins" mapstructure:"histogram_bins"`
	Percentiles   []float64 `yaml:"percentiles" mapstructure:"percentiles"`
}

// PathsConfig holds file paths for the event log and TUI debug log.
type PathsConfig struct {
	EventsLog string `yaml:"events_log" mapstructure:"events_log"` // JSONL event log ("" = disabled)
	DebugLog  string `yaml:"debug_log" mapstructure:"debug_log"`   // rotating debug log used in TUI mode
}

// LogRotationConfig holds settings for debug log rotation (lumberjack).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Trials: 500,
			Seed:   42,
		},
		Output: OutputConfig{
			Format:        "text",
			HistogramBins: 15,
			Percentiles:   []float64{5, 95},
		},
		Paths: PathsConfig{
			EventsLog: "",
			DebugLog:  ".linesim/debug.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
