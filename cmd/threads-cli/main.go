package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"threads-cli/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var silent *silentExitError
		if !errors.Is(err, context.Canceled) && !errors.As(err, &silent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(services.ExitCode(err))
	}
}

// silentExitError fails the process after the command already told the user
// what went wrong on stdout.
type silentExitError struct {
	err error
}

func (e *silentExitError) Error() string {
	return e.err.Error()
}

func (e *silentExitError) Unwrap() error {
	return e.err
}
