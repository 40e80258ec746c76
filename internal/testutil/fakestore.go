// Package testutil provides testing utilities.
package testutil

import (
	"log/slog"
	"slices"

	"tasker/internal/task"
)

// FakeStore is an in-memory implementation of storage.Store for testing.
type FakeStore struct {
	tasks []task.Task

	// Saves counts successful calls to Save.
	Saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeStore creates a FakeStore holding tasks.
func NewFakeStore(tasks ...task.Task) *FakeStore {
	return &FakeStore{tasks: slices.Clone(tasks)}
}

// Load implements storage.Store.
func (f *FakeStore) Load() ([]task.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return slices.Clone(f.tasks), nil
}

// Save implements storage.Store.
func (f *FakeStore) Save(tasks []task.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.tasks = slices.Clone(tasks)
	f.Saves++
	return nil
}

// Path implements storage.Store.
func (f *FakeStore) Path() string {
	return "fake.json"
}

// Tasks returns what was last saved.
func (f *FakeStore) Tasks() []task.Task {
	return slices.Clone(f.tasks)
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
