// Package logging assembles structured slog loggers and formatting helpers used
// across reelmatch.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, tees records into the JSON log file, and exposes context-aware
// helpers so workflow code automatically tags log lines with the query and its
// correlation ID. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
