// Package services defines shared utilities consumed by the drafts store, the
// Threads client and the command surface.
//
// Key responsibilities:
//   - Context helpers that stamp command names, draft IDs, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures (configuration, data format, not found, remote) with errors.Is.
//
// Use these helpers when adding new commands so error reporting and
// observability stay uniform across the CLI.
package services
