// Package logging assembles structured slog loggers and formatting helpers used
// across threads-cli.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context-aware helpers so commands can tag log lines with the command
// name, draft ID and a per-invocation correlation ID. The package also provides
// a no-op logger for tests and wiring code that cannot fail.
//
// Command output belongs on stdout; log records default to stderr so piping
// `get-drafts --json` into other tools keeps working.
package logging
