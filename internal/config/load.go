package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	apperr "tasker/internal/errors"
)

// RegisterFlags adds the setting flags to fs and binds them to v.
func RegisterFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	def := Default()
	fs.StringP(KeyFile, "f", def.File, "task file")
	fs.String(KeyPrompt, def.Prompt, "prompt written before each command")
	fs.BoolP(KeyQuiet, "q", def.Quiet, "suppress the prompt and informational output")
	fs.Bool(KeyDebug, def.Debug, "print debug logs to stderr")

	for _, key := range []string{KeyFile, KeyPrompt, KeyQuiet, KeyDebug} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load resolves settings from v. Precedence, highest first: flags bound via
// RegisterFlags, TASKER_* environment variables, the config file, defaults.
//
// If configFile is empty, tasker.yaml (or .yml, .json, .toml) is searched for
// in the working directory and then in DefaultConfigDir; a missing file is
// not an error.
// An explicit configFile must exist and parse.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	def := Default()
	v.SetDefault(KeyFile, def.File)
	v.SetDefault(KeyPrompt, def.Prompt)
	v.SetDefault(KeyQuiet, def.Quiet)
	v.SetDefault(KeyDebug, def.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// No SetConfigType: the type comes from the extension, so a bare
		// "tasker" binary in the working directory is never read as config.
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, apperr.ConfigInvalid("config file", err)
		}
	}

	cfg := &Config{
		File:   v.GetString(KeyFile),
		Prompt: v.GetString(KeyPrompt),
		Quiet:  v.GetBool(KeyQuiet),
		Debug:  v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
