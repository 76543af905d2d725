package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/khartmann/linesim/internal/config"
	"github.com/khartmann/linesim/internal/events"
	"github.com/khartmann/linesim/internal/report"
	"github.com/khartmann/linesim/internal/scenario"
	"github.com/khartmann/linesim/internal/shutdown"
	"github.com/khartmann/linesim/internal/sim"
	"github.com/khartmann/linesim/internal/tui"
)

var version = "dev"

// shutdownTimeout bounds how long we wait for the engine to notice
// cancellation. The engine checks its context between trials, so in
// practice this is one trial's worth of work.
const shutdownTimeout = 10 * time.Second

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("LINESIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "linesim",
		Short: "Monte Carlo simulator for serial production lines",
		Long: `linesim estimates the throughput of a serial production line whose
stations randomly fail and get repaired.

Each trial simulates every station's alternating up/down cycle over the
time horizon; line throughput is the minimum station output, and the
slowest station(s) are credited as the trial's bottleneck. Repeated over
many trials this yields throughput distributions and bottleneck
probabilities for the line described in a scenario file.`,
		SilenceUsage: true,
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .linesim/config.yaml)")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("linesim %s\n", version)
		},
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a Monte Carlo simulation of a scenario",
		Long: `Run a Monte Carlo simulation of the line described in a scenario file.

With a TTY the run is shown in a live terminal UI; otherwise progress
goes to the event log (if configured) and the report is printed when the
run completes. A fixed seed reproduces a run exactly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}

			// Load config from files with defaults
			cfg, err := config.LoadConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Apply CLI flag overrides (only if explicitly set)
			if cmd.Flags().Changed(FlagTrials) {
				cfg.Simulation.Trials = viper.GetInt(FlagTrials)
			}
			if cmd.Flags().Changed(FlagSeed) {
				cfg.Simulation.Seed = viper.GetInt64(FlagSeed)
			}
			if cmd.Flags().Changed(FlagHorizon) {
				cfg.Simulation.HorizonHours = viper.GetFloat64(FlagHorizon)
			}
			if cmd.Flags().Changed(FlagBins) {
				cfg.Output.HistogramBins = viper.GetInt(FlagBins)
			}
			if cmd.Flags().Changed(FlagEventsLog) {
				cfg.Paths.EventsLog = viper.GetString(FlagEventsLog)
			}
			if cmd.Flags().Changed(FlagJSON) && viper.GetBool(FlagJSON) {
				cfg.Output.Format = "json"
			}

			scenarioPath := viper.GetString(FlagScenario)
			if scenarioPath == "" {
				return fmt.Errorf("--%s is required", FlagScenario)
			}
			sc, err := scenario.Load(scenarioPath)
			if err != nil {
				return err
			}

			horizon := sc.HorizonHours
			if cfg.Simulation.HorizonHours > 0 {
				horizon = cfg.Simulation.HorizonHours
			}

			jsonOut := cfg.Output.Format == "json"

			// Determine TUI mode: explicit flag > auto-detect from TTY
			tuiEnabled := viper.GetBool(FlagTUI)
			if !cmd.Flags().Changed(FlagTUI) && !jsonOut {
				tuiEnabled = term.IsTerminal(int(os.Stdout.Fd()))
			}
			if tuiEnabled && jsonOut {
				return fmt.Errorf("--%s and --%s flags are incompatible", FlagTUI, FlagJSON)
			}

			logger.Info("linesim starting",
				"version", version,
				"scenario", scenarioPath,
				"stations", len(sc.Stations),
				"horizon_hours", horizon,
				"trials", cfg.Simulation.Trials,
				"seed", cfg.Simulation.Seed,
			)

			// Create event router and optional JSONL sink
			router := events.NewRouter(events.DefaultBufferSize)

			ctx := cmd.Context()
			sinkCtx, sinkCancel := context.WithCancel(ctx)

			var logSink *events.LogSink
			if cfg.Paths.EventsLog != "" {
				logSink = events.NewLogSink(cfg.Paths.EventsLog)
				if err := logSink.Start(sinkCtx, router.Subscribe()); err != nil {
					sinkCancel()
					router.Close()
					return fmt.Errorf("start event log: %w", err)
				}
			}

			cleanup := func() {
				sinkCancel()
				router.Close()
				if logSink != nil {
					_ = logSink.Stop()
				}
			}

			engine, err := sim.New(sc.Specs(), horizon, sim.WithProgress(func(p sim.Progress) {
				router.Emit(events.TrialCompleteEvent{
					BaseEvent:   events.NewEvent(events.EventTrialComplete),
					Trial:       p.Trial,
					Trials:      p.Trials,
					Throughput:  p.Throughput,
					Bottlenecks: p.Bottlenecks,
				})
			}))
			if err != nil {
				cleanup()
				return err
			}

			trials := cfg.Simulation.Trials
			seed := cfg.Simulation.Seed

			stationNames := make([]string, len(sc.Stations))
			parallel := make(map[string]int, len(sc.Stations))
			for i, st := range sc.Stations {
				stationNames[i] = st.Name
				parallel[st.Name] = st.ParallelUnits
			}

			runSim := func(runCtx context.Context) (*sim.LineSummary, error) {
				router.Emit(events.RunStartEvent{
					BaseEvent:    events.NewEvent(events.EventRunStart),
					Scenario:     sc.Name,
					Stations:     stationNames,
					HorizonHours: horizon,
					Trials:       trials,
					Seed:         seed,
				})

				start := time.Now()
				summary, runErr := engine.Run(runCtx, trials, seed)

				end := events.RunEndEvent{
					BaseEvent:  events.NewEvent(events.EventRunEnd),
					DurationMs: time.Since(start).Milliseconds(),
				}
				if summary != nil {
					end.TrialsDone = summary.Trials
					end.MeanThroughput = summary.MeanThroughput()
				}
				if errors.Is(runErr, context.Canceled) {
					end.Canceled = true
				} else if runErr != nil {
					router.Emit(events.ErrorEvent{
						BaseEvent: events.NewEvent(events.EventError),
						Message:   runErr.Error(),
					})
				}
				router.Emit(end)

				return summary, runErr
			}

			printReport := func(summary *sim.LineSummary) error {
				opts := report.Options{
					HistogramBins: cfg.Output.HistogramBins,
					Percentiles:   cfg.Output.Percentiles,
					Parallel:      parallel,
				}
				if jsonOut {
					data, err := report.JSON(summary, opts)
					if err != nil {
						return fmt.Errorf("marshal report: %w", err)
					}
					fmt.Println(string(data))
					return nil
				}
				fmt.Print(report.Render(summary, opts))
				return nil
			}

			// TUI mode: run TUI in foreground with the engine in background
			if tuiEnabled {
				tuiLogResult := SetupTUILogger(cfg.Paths.DebugLog, logLevel, cfg.LogRotation)
				defer func() { _ = tuiLogResult.Close() }()
				slog.SetDefault(tuiLogResult.Logger)

				tuiEvents := router.SubscribeBuffered(5000)

				runCtx, runCancel := context.WithCancel(ctx)
				defer runCancel()

				type runResult struct {
					summary *sim.LineSummary
					err     error
				}
				done := make(chan runResult, 1)
				go func() {
					summary, err := runSim(runCtx)
					done <- runResult{summary, err}
				}()

				tuiApp := tui.New(tuiEvents, tui.WithOnCancel(runCancel))
				tuiErr := tuiApp.Run()

				// Ensure the engine stops when the TUI exits early
				runCancel()
				res := <-done

				router.Unsubscribe(tuiEvents)
				cleanup()

				if tuiErr != nil {
					return tuiErr
				}
				if errors.Is(res.err, context.Canceled) {
					fmt.Println("run canceled")
					return nil
				}
				if res.err != nil {
					return res.err
				}
				return printReport(res.summary)
			}

			// Plain mode: run with graceful shutdown handling
			var summary *sim.LineSummary
			err = shutdown.Run(ctx, logger, shutdownTimeout, func(runCtx context.Context) error {
				var runErr error
				summary, runErr = runSim(runCtx)
				return runErr
			})

			cleanup()

			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, "run canceled")
				return nil
			}
			if err != nil {
				return err
			}
			return printReport(summary)
		},
	}

	runCmd.Flags().StringP(FlagScenario, "s", "", "Scenario file to simulate (required)")
	runCmd.Flags().Int(FlagTrials, 0, "Number of Monte Carlo trials")
	runCmd.Flags().Int64(FlagSeed, 0, "Random seed (a fixed seed reproduces a run)")
	runCmd.Flags().Float64(FlagHorizon, 0, "Override the scenario's horizon (hours)")
	runCmd.Flags().Int(FlagBins, 0, "Histogram bucket count (0 disables)")
	runCmd.Flags().Bool(FlagTUI, false, "Enable terminal UI")
	runCmd.Flags().String(FlagEventsLog, "", "Write events to this JSONL file")
	runCmd.Flags().Bool(FlagJSON, false, "Output the report as JSON")

	runCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Validate command
	validateCmd := &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Check a scenario file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: ok (%d stations, %.1fh horizon)\n", args[0], len(sc.Stations), sc.HorizonHours)
			return nil
		},
	}

	// Init command
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example scenario file",
		Long: `Write an example scenario describing a four-station transformer
assembly line to the given path (default: linesim.yaml). Edit the
station list to match your line, then simulate it with 'linesim run'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "linesim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			return scenario.WriteExample(path, scenario.WriteOptions{
				Force:  viper.GetBool(FlagForce),
				DryRun: viper.GetBool(FlagDryRun),
			})
		},
	}

	initCmd.Flags().Bool(FlagForce, false, "Overwrite an existing scenario file")
	initCmd.Flags().Bool(FlagDryRun, false, "Show what would be written without writing")
	initCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Register all commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
