// File: config.go
// Title: Configuration Decoding
// Description: Decodes TOML (BurntSushi/toml) and YAML (yaml.v3) files into
//              structs and applies environment overrides with caarlos0/env.
//              Dotenv files are loaded through godotenv before the overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	"github.com/msto63/semshell/foundation/utils/filex"
	mdwstringx "github.com/msto63/semshell/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension, TOML otherwise
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format   // File format (default: auto-detect)
	EnvPrefix string   // Prefix prepended to every env tag
	DotEnv    []string // Dotenv files to load before env overrides; missing files are skipped
	SkipEnv   bool     // Do not apply environment overrides
}

// Decode reads the file at filePath into v and applies environment overrides.
// v must be a pointer to a struct.
func Decode(filePath string, v interface{}, options LoadOptions) error {
	if mdwstringx.IsBlank(filePath) {
		return mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Decode")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Decode").
				WithDetail("filePath", filePath)
		}
		return mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Decode").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	if err := decodeContent(content, format, v); err != nil {
		return mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Decode").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return ApplyEnv(v, options)
}

// DecodeString decodes configuration content held in memory
func DecodeString(content string, format Format, v interface{}, options LoadOptions) error {
	if format == FormatAuto {
		format = FormatTOML
	}

	if err := decodeContent([]byte(content), format, v); err != nil {
		return mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.DecodeString").
			WithDetail("format", format.String())
	}

	return ApplyEnv(v, options)
}

// ApplyEnv loads the configured dotenv files and overrides struct fields that
// carry env tags. Existing process variables are never replaced by dotenv
// values.
func ApplyEnv(v interface{}, options LoadOptions) error {
	if options.SkipEnv {
		return nil
	}

	for _, file := range options.DotEnv {
		if !filex.IsFile(file) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return mdwerror.Wrap(err, "failed to load dotenv file").
				WithCode(mdwerror.CodeEnvironmentError).
				WithOperation("config.ApplyEnv").
				WithDetail("file", file)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: options.EnvPrefix}); err != nil {
		return mdwerror.Wrap(err, "failed to apply environment overrides").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.ApplyEnv").
			WithDetail("envPrefix", options.EnvPrefix)
	}

	return nil
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decodeContent(content []byte, format Format, v interface{}) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), v); err != nil {
			return mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("config.decodeContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, v); err != nil {
			return mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("config.decodeContent")
		}
	default:
		return mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.decodeContent").
			WithDetail("format", format.String())
	}
	return nil
}
