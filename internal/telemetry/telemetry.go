// Package telemetry provides best-effort stderr logging for the demo
// application. Core packages (internal/timer, internal/run,
// internal/comparison, internal/snapshot) never log; only the CLI
// (cmd/splitcore and internal/splitui) does.
package telemetry

import (
	"fmt"
	"os"
)

// Errf writes a formatted message to stderr, ignoring write failures —
// logging is diagnostic, never load-bearing.
func Errf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		_ = err
	}
}

// Errln writes a line to stderr, ignoring write failures.
func Errln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		_ = err
	}
}
