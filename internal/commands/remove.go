package commands

import (
	"context"
	"io"
)

func init() {
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string     { return "remove" }
func (c *RemoveCmd) Synopsis() string { return "Delete a task; later tasks move up" }
func (c *RemoveCmd) Usage() string    { return "remove <n>" }
func (c *RemoveCmd) Mutates() bool    { return true }

func (c *RemoveCmd) Run(ctx context.Context, s *Session, arg string, out io.Writer) error {
	pos, err := ParseIndex(arg)
	if err != nil {
		return err
	}

	if err := s.List.Remove(pos); err != nil {
		return err
	}

	s.Logger.Debug("task removed", "position", pos, "remaining", s.List.Len())
	return nil
}
