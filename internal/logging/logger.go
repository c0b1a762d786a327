// Package logging wires up the shared logger and small timing helpers.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New returns the application logger. With debug enabled, debug-level
// records (including Measure timings) are emitted.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "picarc",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Measure returns a stop function that logs the elapsed time at debug
// level when called.
func Measure(logger *log.Logger, label string) func() {
	if logger == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		logger.Debug(label, "took", time.Since(start).Round(time.Millisecond))
	}
}
