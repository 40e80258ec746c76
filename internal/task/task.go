// Package task holds the in-memory task list.
package task

import (
	"iter"
	"slices"

	apperr "tasker/internal/errors"
)

// Task is a single task item. Field names double as the on-disk keys.
type Task struct {
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// Entry is one row of the list as shown to the user.
type Entry struct {
	Position    int // 1-based
	Complete    bool
	Description string
}

// List is an ordered sequence of tasks. Insertion order is display order,
// and a task is referenced by its 1-based position, which shifts on Remove.
// A List is owned by a single session and is not safe for concurrent use.
type List struct {
	tasks []Task
}

// NewList creates a list holding a copy of tasks.
func NewList(tasks []Task) *List {
	return &List{tasks: slices.Clone(tasks)}
}

// Add appends an open task.
func (l *List) Add(description string) {
	l.tasks = append(l.tasks, Task{Description: description})
}

// Complete marks the task at pos as complete.
func (l *List) Complete(pos int) error {
	i, err := l.index(pos)
	if err != nil {
		return err
	}
	l.tasks[i].Complete = true
	return nil
}

// Remove deletes the task at pos. Later tasks move up one position.
func (l *List) Remove(pos int) error {
	i, err := l.index(pos)
	if err != nil {
		return err
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return nil
}

// View returns the rows of the list in order. The sequence can be ranged
// over more than once; each pass reflects the list at that time.
func (l *List) View() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, t := range l.tasks {
			e := Entry{Position: i + 1, Complete: t.Complete, Description: t.Description}
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Replace swaps the contents of the list for a copy of tasks.
func (l *List) Replace(tasks []Task) {
	l.tasks = slices.Clone(tasks)
}

// index converts a 1-based position to a slice index.
func (l *List) index(pos int) (int, error) {
	if pos < 1 || pos > len(l.tasks) {
		return 0, apperr.InvalidIndex(pos, len(l.tasks))
	}
	return pos - 1, nil
}
