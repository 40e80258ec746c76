// Package storage persists the task list between runs.
//
// Known hazard: the backing file is not locked. Two processes working on the
// same file each rewrite it in full on every change, so the last save wins
// and the other process's changes are lost.
package storage

import "tasker/internal/task"

// Store loads and saves the full task sequence.
type Store interface {
	// Load returns the persisted tasks. A store that has never been
	// written returns an empty sequence and no error.
	Load() ([]task.Task, error)

	// Save replaces the persisted tasks with tasks.
	Save(tasks []task.Task) error

	// Path describes where the tasks are kept, for messages and logs.
	Path() string
}
