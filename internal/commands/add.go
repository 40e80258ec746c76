package commands

import (
	"context"
	"errors"
	"io"
	"strings"
)

func init() {
	Register(&AddCmd{})
}

// ErrDescriptionRequired indicates add was given no description.
var ErrDescriptionRequired = errors.New("description required")

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string     { return "add" }
func (c *AddCmd) Synopsis() string { return "Append a task" }
func (c *AddCmd) Usage() string    { return "add <description>" }
func (c *AddCmd) Mutates() bool    { return true }

// Run appends arg as written, inner spaces included.
func (c *AddCmd) Run(ctx context.Context, s *Session, arg string, out io.Writer) error {
	if strings.TrimSpace(arg) == "" {
		return ErrDescriptionRequired
	}

	s.List.Add(arg)
	s.Logger.Debug("task added", "position", s.List.Len())
	return nil
}
