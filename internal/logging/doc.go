// Package logging constructs the slog loggers hpg threads through the
// renderer and orchestrator. Diagnostic verbosity is a configuration value,
// not process-wide state: callers build a logger once and pass it down.
package logging
