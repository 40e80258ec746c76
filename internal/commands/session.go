package commands

import (
	"log/slog"

	"tasker/internal/config"
	"tasker/internal/storage"
	"tasker/internal/task"
)

// Session is the state shared by commands for one run of the program.
// It is owned by the interpreter and used from a single goroutine.
type Session struct {
	List   *task.List
	Store  storage.Store
	Config *config.Config
	Logger *slog.Logger
}

// NewSession loads the task list from store.
func NewSession(cfg *config.Config, store storage.Store, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tasks, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{
		List:   task.NewList(tasks),
		Store:  store,
		Config: cfg,
		Logger: logger,
	}, nil
}

// Save writes the current list to the store.
func (s *Session) Save() error {
	return s.Store.Save(s.List.Tasks())
}
