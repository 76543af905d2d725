// Package shutdown runs a blocking function under SIGINT/SIGTERM handling
// so a simulation can be canceled cleanly between trials.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run starts runner and cancels its context on SIGINT or SIGTERM, waiting
// up to timeout for it to return. The runner should exit promptly once its
// context is canceled; the engine guarantees trial-granularity checks.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	runner func(ctx context.Context) error,
) error {
	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	// Register before the runner starts so an early signal is never lost.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	runDone := make(chan error, 1)
	go func() {
		runDone <- runner(runCtx)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received signal, canceling run", "signal", sig.String())
		runCancel()

		select {
		case err := <-runDone:
			if err != nil && err != context.Canceled {
				return err
			}
		case <-time.After(timeout):
			logger.Warn("shutdown timeout exceeded")
		}

		logger.Info("run canceled")
		return context.Canceled

	case err := <-runDone:
		return err
	}
}
