//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel an in-flight render (Ctrl+C, kill, container stop).
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
