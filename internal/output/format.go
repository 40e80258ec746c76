// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasker/internal/task"
)

const (
	// CompleteMarker is shown between the brackets of a completed task.
	CompleteMarker = "✓"

	// OpenMarker is shown between the brackets of an open task.
	OpenMarker = " "

	// NoTasks is printed by view when the list is empty.
	NoTasks = "no tasks found"

	// InvalidCommand is printed for input that names no command.
	InvalidCommand = "Invalid command"
)

// FormatEntry formats one view row.
// Format: "{N} [{✓| }] {DESCRIPTION}\n"
func FormatEntry(w io.Writer, e task.Entry) {
	marker := OpenMarker
	if e.Complete {
		marker = CompleteMarker
	}
	fmt.Fprintf(w, "%d [%s] %s\n", e.Position, marker, normalizeDescription(e.Description))
}

// FormatError formats an error line for stderr.
func FormatError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// FormatCommandHelp formats one line of the command summary.
func FormatCommandHelp(w io.Writer, usage, synopsis string) {
	fmt.Fprintf(w, "  %-20s %s\n", usage, synopsis)
}

// normalizeDescription keeps a row on one line. Descriptions typed at the
// prompt never contain newlines, but a hand-edited task file can.
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	return strings.ReplaceAll(desc, "\n", " ")
}
