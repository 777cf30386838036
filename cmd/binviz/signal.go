package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled on the first shutdownSignals
// delivery. Call stop to release the signal handler; a second signal after
// stop falls back to the default behavior and kills the process.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
