// Package logging assembles structured slog loggers and formatting helpers used
// across grocymenu.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every line emitted during a sync
// carries the run identifier. A no-op logger is provided for tests and wiring
// code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data with the same shape as the rest of the tool.
package logging
