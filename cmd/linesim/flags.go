package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"

	// Run command flags
	FlagScenario  = "scenario"
	FlagTrials    = "trials"
	FlagSeed      = "seed"
	FlagHorizon   = "horizon"
	FlagBins      = "bins"
	FlagTUI       = "tui"
	FlagEventsLog = "events-log"

	// Output format flags
	FlagJSON = "json"

	// Init command flags
	FlagForce  = "force"
	FlagDryRun = "dry-run"
)
