package util

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler returns a context cancelled on SIGINT or SIGTERM
// so in-flight batch items get a chance to drain. A second signal
// aborts the process immediately.
func SetupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		first := <-sigCh
		slog.Info("shutting down", "signal", first.String())
		cancel()

		second := <-sigCh
		slog.Warn("forcing exit", "signal", second.String())
		os.Exit(1)
	}()

	return ctx
}
