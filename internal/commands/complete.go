package commands

import (
	"context"
	"io"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string     { return "complete" }
func (c *CompleteCmd) Synopsis() string { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string    { return "complete <n>" }
func (c *CompleteCmd) Mutates() bool    { return true }

func (c *CompleteCmd) Run(ctx context.Context, s *Session, arg string, out io.Writer) error {
	pos, err := ParseIndex(arg)
	if err != nil {
		return err
	}

	if err := s.List.Complete(pos); err != nil {
		return err
	}

	s.Logger.Debug("task completed", "position", pos)
	return nil
}
