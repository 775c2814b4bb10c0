// Package main hosts the threads-cli entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls on
// the drafts store and the Threads API client. It centralizes configuration
// resolution, logger construction and drafts path resolution so subcommands
// can focus on output formatting.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
