// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including end of input.
	Success = 0

	// UserError indicates a user error (bad flags, invalid configuration).
	UserError = 1

	// StorageError indicates the task file could not be used at startup.
	StorageError = 2
)
