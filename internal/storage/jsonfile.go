package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	apperr "tasker/internal/errors"
	"tasker/internal/task"
)

// FileMode is the permission used for the task file.
const FileMode os.FileMode = 0644

// JSONFile stores tasks as an indented JSON array in a single file.
type JSONFile struct {
	path   string
	logger *slog.Logger
}

// NewJSONFile creates a store backed by the file at path.
// If logger is nil, slog.Default() is used.
func NewJSONFile(path string, logger *slog.Logger) *JSONFile {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONFile{path: path, logger: logger}
}

// Path returns the file path.
func (f *JSONFile) Path() string {
	return f.path
}

// record mirrors task.Task with required fields. Both keys must be present
// for an element to count as a task.
type record struct {
	Description *string `json:"description"`
	Complete    *bool   `json:"complete"`
}

// Load reads the file. A missing file yields an empty list; a file that is
// unreadable or not a JSON array of tasks yields a CorruptStore error.
func (f *JSONFile) Load() ([]task.Task, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("task file not found, starting empty", "path", f.path)
		return nil, nil
	}
	if err != nil {
		return nil, apperr.CorruptStore(f.path, err)
	}

	tasks, err := decode(data)
	if err != nil {
		return nil, apperr.CorruptStore(f.path, err)
	}

	f.logger.Debug("loaded tasks", "path", f.path, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the file with tasks.
func (f *JSONFile) Save(tasks []task.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return apperr.WriteFailure(f.path, err)
	}

	if err := atomicWriteFile(f.path, data, FileMode); err != nil {
		return apperr.WriteFailure(f.path, err)
	}

	f.logger.Debug("saved tasks", "path", f.path, "count", len(tasks))
	return nil
}

func decode(data []byte) ([]task.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []*record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, err
	}

	// Reject anything after the array
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after task list")
	}

	tasks := make([]task.Task, 0, len(records))
	for i, r := range records {
		if r == nil || r.Description == nil || r.Complete == nil {
			return nil, fmt.Errorf("task %d: description and complete are required", i+1)
		}
		tasks = append(tasks, task.Task{Description: *r.Description, Complete: *r.Complete})
	}
	return tasks, nil
}

func encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
