package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tasker/internal/commands"
	"tasker/internal/output"
	"tasker/internal/task"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Interpreter reads commands line by line and dispatches them.
type Interpreter struct {
	registry *commands.Registry
	session  *commands.Session
}

// NewInterpreter creates an interpreter over the given registry and session.
func NewInterpreter(registry *commands.Registry, session *commands.Session) *Interpreter {
	return &Interpreter{
		registry: registry,
		session:  session,
	}
}

// ParseLine splits an input line into command word and argument.
// Surrounding whitespace is dropped and the line is split on the first
// space only, so "add buy milk" yields ("add", "buy milk").
func ParseLine(line string) (name, arg string) {
	name, arg, _ = strings.Cut(strings.TrimSpace(line), " ")
	return name, arg
}

// Run prompts, reads and executes lines until in is exhausted.
// Errors from individual commands are reported on errOut and do not stop
// the loop. Run returns nil at end of input, the context error if ctx is
// done, or a read error.
func (i *Interpreter) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg := i.session.Config
	prompt := !cfg.Quiet && cfg.Prompt != ""

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if prompt {
			fmt.Fprint(out, cfg.Prompt)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			// End the prompt line so the shell starts clean
			if prompt {
				fmt.Fprintln(out)
			}
			i.session.Logger.Debug("end of input")
			return nil
		}

		i.Execute(ctx, scanner.Text(), out, errOut)
	}
}

// Execute runs a single input line. Mutating commands are saved on success;
// if the save fails the list is rolled back to its state before the command.
// Any error is reported on errOut and also returned.
func (i *Interpreter) Execute(ctx context.Context, line string, out, errOut io.Writer) error {
	s := i.session
	name, arg := ParseLine(line)

	cmd, ok := i.registry.Find(name)
	if !ok {
		s.Logger.Debug("unknown command", "command", name)
		fmt.Fprintln(out, output.InvalidCommand)
		return nil
	}

	s.Logger.Debug("dispatch", "command", name)

	var snapshot []task.Task
	if cmd.Mutates() {
		snapshot = s.List.Tasks()
	}

	if err := cmd.Run(ctx, s, arg, out); err != nil {
		output.FormatError(errOut, err)
		return err
	}

	if !cmd.Mutates() {
		return nil
	}

	if err := s.Save(); err != nil {
		s.List.Replace(snapshot)
		s.Logger.Warn("save failed, change discarded", "command", name, "path", s.Store.Path(), "error", err)
		output.FormatError(errOut, err)
		return err
	}
	return nil
}
