// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"
)

// Command defines the interface for commands entered at the prompt.
type Command interface {
	// Name returns the command word.
	Name() string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Mutates returns true if the command changes the task list.
	// The interpreter saves the list after a mutating command succeeds.
	Mutates() bool

	// Run executes the command.
	// arg is everything after the first space of the input line.
	// Normal output goes to out; failures are returned, not printed.
	Run(ctx context.Context, s *Session, arg string, out io.Writer) error
}
