// Package config resolves tasker settings from flags, environment and an
// optional YAML config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	apperr "tasker/internal/errors"
)

const (
	// AppName is the application directory name.
	AppName = "tasker"

	// EnvPrefix prefixes every environment variable, e.g. TASKER_FILE.
	EnvPrefix = "TASKER"

	// ConfigName is the config file name without extension.
	ConfigName = "tasker"

	// DefaultFile is the task file used when none is configured.
	DefaultFile = "tasks.json"

	// DefaultPrompt is written before each line is read.
	DefaultPrompt = "> "
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyFile   = "file"
	KeyPrompt = "prompt"
	KeyQuiet  = "quiet"
	KeyDebug  = "debug"
)

// Config holds resolved settings.
type Config struct {
	// File is the path of the backing task file.
	File string

	// Prompt is written to stdout before each read.
	Prompt string

	// Quiet suppresses the prompt and informational output.
	Quiet bool

	// Debug enables debug logging on stderr.
	Debug bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		File:   DefaultFile,
		Prompt: DefaultPrompt,
	}
}

// Validate checks that the settings can be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return apperr.ConfigInvalid("file must not be empty", nil)
	}
	return nil
}

// DefaultConfigDir returns the directory searched for the user config file.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
