// File: settings.go
// Title: Shell Settings
// Description: Application settings loaded from TOML or YAML files with
//              SEMSHELL_ environment overrides, validated after loading.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial settings
// - 2026-10-19 v0.1.1: Log file for the interactive shell

// Package settings holds the semshell configuration.
package settings

import (
	"io"
	"os"
	"strconv"

	"github.com/msto63/semshell/foundation/core/config"
	mdwerror "github.com/msto63/semshell/foundation/core/error"
	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/utils/filex"
)

// AppName names the application for config discovery
const AppName = "semshell"

// EnvPrefix prefixes every environment override
const EnvPrefix = "SEMSHELL_"

// Settings is the complete configuration
type Settings struct {
	Log   LogSettings   `toml:"log" yaml:"log" envPrefix:"LOG_"`
	Shell ShellSettings `toml:"shell" yaml:"shell" envPrefix:"SHELL_"`
	Audit bool          `toml:"audit" yaml:"audit" env:"AUDIT"`
}

// LogSettings configures logging
type LogSettings struct {
	Level  string `toml:"level" yaml:"level" env:"LEVEL"`
	Format string `toml:"format" yaml:"format" env:"FORMAT"`
}

// ShellSettings configures the interactive shell
type ShellSettings struct {
	Prompt       string `toml:"prompt" yaml:"prompt" env:"PROMPT"`
	HistoryPath  string `toml:"history_path" yaml:"history_path" env:"HISTORY_PATH"`
	HistoryLimit int    `toml:"history_limit" yaml:"history_limit" env:"HISTORY_LIMIT"`
	// LogPath receives log entries while the interactive shell owns the
	// terminal; empty discards them
	LogPath string `toml:"log_path" yaml:"log_path" env:"LOG_PATH"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		Log: LogSettings{
			Level:  "warn",
			Format: "console",
		},
		Shell: ShellSettings{
			Prompt:       "semshell> ",
			HistoryLimit: 1000,
		},
	}
}

var minHistoryLimit = 0

var rules = config.ValidationRules{
	"log.level":           {Required: true, OneOf: []string{"debug", "info", "warn", "warning", "error", "fatal"}},
	"log.format":          {Required: true, OneOf: []string{"json", "console", "text"}},
	"shell.prompt":        {Required: true},
	"shell.history_limit": {MinInt: &minHistoryLimit},
}

// Load reads settings from path on top of the defaults. An empty path
// applies environment overrides only. Dotenv files named in dotenv are
// loaded first when they exist.
func Load(path string, dotenv ...string) (*Settings, error) {
	s := Default()
	opts := config.LoadOptions{EnvPrefix: EnvPrefix, DotEnv: dotenv}

	var err error
	if path == "" {
		err = config.ApplyEnv(s, opts)
	} else {
		err = config.Decode(path, s, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Discover returns the first settings file found in the standard
// locations, or an empty path
func Discover() (string, error) {
	return config.FindConfigFile(config.DefaultDiscoveryOptions(AppName))
}

// Validate checks the settings values
func (s *Settings) Validate() error {
	return config.Validate(rules, s.values()).Err()
}

func (s *Settings) values() map[string]string {
	return map[string]string{
		"log.level":           s.Log.Level,
		"log.format":          s.Log.Format,
		"shell.prompt":        s.Shell.Prompt,
		"shell.history_limit": strconv.Itoa(s.Shell.HistoryLimit),
	}
}

// NewLogger builds the logger described by the log settings
func (s *Settings) NewLogger(out io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := mdwlog.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, err
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   AppName,
	}), nil
}

// ShellLogOutput opens the log destination of the interactive shell. The
// terminal belongs to the shell UI, so entries go to Shell.LogPath or are
// discarded.
func (s *Settings) ShellLogOutput() (io.WriteCloser, error) {
	if s.Shell.LogPath == "" {
		return nopCloser{io.Discard}, nil
	}

	path, err := filex.ExpandHome(s.Shell.LogPath)
	if err != nil {
		return nil, logFileError(err, s.Shell.LogPath)
	}
	if err := filex.EnsureDir(path); err != nil {
		return nil, logFileError(err, path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, logFileError(err, path)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func logFileError(err error, path string) error {
	return mdwerror.Wrap(err, "cannot open shell log file").
		WithCode(mdwerror.CodeConfigError).
		WithOperation("settings.ShellLogOutput").
		WithDetail("path", path)
}
