package commands

import (
	"context"
	"fmt"
	"io"

	"tasker/internal/output"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the view command.
type ViewCmd struct{}

func (c *ViewCmd) Name() string     { return "view" }
func (c *ViewCmd) Synopsis() string { return "List all tasks" }
func (c *ViewCmd) Usage() string    { return "view" }
func (c *ViewCmd) Mutates() bool    { return false }

// Run prints every task. Any argument is ignored.
func (c *ViewCmd) Run(ctx context.Context, s *Session, arg string, out io.Writer) error {
	n := 0
	for e := range s.List.View() {
		output.FormatEntry(out, e)
		n++
	}

	if n == 0 && !s.Config.Quiet {
		fmt.Fprintln(out, output.NoTasks)
	}
	return nil
}
