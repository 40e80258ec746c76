// Package cli implements the tasker command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tasker/internal/commands"
	"tasker/internal/config"
	apperr "tasker/internal/errors"
	"tasker/internal/exitcode"
	"tasker/internal/output"
	"tasker/internal/storage"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// Execute runs tasker with the process arguments and standard streams.
// Returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run builds the root command, runs it with args and returns the exit code.
func Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := NewRootCmd(commands.DefaultRegistry)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitcode.Success
	}

	output.FormatError(errOut, err)
	if e := apperr.AsError(err); e != nil && e.IsStorage() {
		return exitcode.StorageError
	}
	return exitcode.UserError
}

// NewRootCmd creates the root command. Commands typed at the prompt are
// looked up in registry.
func NewRootCmd(registry *commands.Registry) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "tasker",
		Short: "Keep a list of short tasks from an interactive prompt",
		Long:  longHelp(registry),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return runSession(cmd.Context(), registry, cfg, v.ConfigFileUsed(),
				cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./tasker.yaml, then "+config.DefaultConfigDir()+"/tasker.yaml)")
	if err := config.RegisterFlags(v, cmd.Flags()); err != nil {
		panic(err)
	}

	return cmd
}

// runSession loads the task file and runs the interpreter until end of input.
func runSession(ctx context.Context, registry *commands.Registry, cfg *config.Config, cfgUsed string, in io.Reader, out, errOut io.Writer) error {
	logger := newLogger(errOut, cfg.Debug)
	if cfgUsed != "" {
		logger.Debug("using config file", "path", cfgUsed)
	}

	store := storage.NewJSONFile(cfg.File, logger)
	session, err := commands.NewSession(cfg, store, logger)
	if err != nil {
		return err
	}

	err = NewInterpreter(registry, session).Run(ctx, in, out, errOut)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newLogger returns a text logger on w. Only warnings and errors are shown
// unless debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// longHelp describes the prompt commands held by registry.
func longHelp(registry *commands.Registry) string {
	var b strings.Builder
	b.WriteString(`tasker keeps a list of short tasks in a JSON file and reads commands
from standard input, one per line, until end of input.

Commands:
`)
	for _, c := range registry.All() {
		output.FormatCommandHelp(&b, c.Usage(), c.Synopsis())
	}
	b.WriteString(`
Tasks are referred to by their position as shown by view. Positions
change when an earlier task is removed.

The task file is rewritten in full after every change and is not locked:
if two tasker processes use the same file, the last one to save wins.`)
	return b.String()
}
