// File: config_test.go
// Title: Configuration Unit Tests
// Description: Tests TOML and YAML decoding, environment and dotenv
//              overrides, discovery and validation rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
)

type testSettings struct {
	Log struct {
		Level  string `toml:"level" yaml:"level" env:"LOG_LEVEL"`
		Format string `toml:"format" yaml:"format" env:"LOG_FORMAT"`
	} `toml:"log" yaml:"log"`
	Limit int `toml:"limit" yaml:"limit" env:"LIMIT"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecodeFormats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "app.toml", "limit = 5\n[log]\nlevel = \"debug\"\nformat = \"console\"\n"},
		{"yaml", "app.yaml", "limit: 5\nlog:\n  level: debug\n  format: console\n"},
		{"yml", "app.yml", "limit: 5\nlog:\n  level: debug\n  format: console\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)

			var s testSettings
			require.NoError(t, Decode(path, &s, LoadOptions{SkipEnv: true}))
			assert.Equal(t, "debug", s.Log.Level)
			assert.Equal(t, "console", s.Log.Format)
			assert.Equal(t, 5, s.Limit)
		})
	}
}

func TestDecodeKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.toml", "[log]\nlevel = \"warn\"\n")

	var s testSettings
	s.Log.Format = "json"
	s.Limit = 100
	require.NoError(t, Decode(path, &s, LoadOptions{SkipEnv: true}))

	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, 100, s.Limit)
}

func TestDecodeEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.toml", "limit = 5\n[log]\nlevel = \"debug\"\n")
	dotenv := writeFile(t, dir, ".env", "TEST_LOG_FORMAT=console\nTEST_LIMIT=9\n")

	t.Setenv("TEST_LOG_LEVEL", "error")
	t.Setenv("TEST_LIMIT", "7")
	t.Cleanup(func() { os.Unsetenv("TEST_LOG_FORMAT") })

	var s testSettings
	require.NoError(t, Decode(path, &s, LoadOptions{EnvPrefix: "TEST_", DotEnv: []string{dotenv, filepath.Join(dir, "missing.env")}}))

	assert.Equal(t, "error", s.Log.Level)
	assert.Equal(t, "console", s.Log.Format)
	// process environment wins over dotenv
	assert.Equal(t, 7, s.Limit)
}

func TestDecodeErrors(t *testing.T) {
	var s testSettings

	err := Decode("", &s, LoadOptions{})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	err = Decode(filepath.Join(t.TempDir(), "absent.toml"), &s, LoadOptions{})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))

	bad := writeFile(t, t.TempDir(), "bad.toml", "limit = = 1")
	err = Decode(bad, &s, LoadOptions{SkipEnv: true})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	t.Setenv("BAD_LIMIT", "many")
	err = DecodeString("limit = 1", FormatTOML, &s, LoadOptions{EnvPrefix: "BAD_"})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("a.YML"))
	assert.Equal(t, FormatYAML, DetectFormat("a.yaml"))
	assert.Equal(t, FormatTOML, DetectFormat("a.toml"))
	assert.Equal(t, FormatTOML, DetectFormat("a.conf"))
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "semshell.yaml", "limit: 1\n")

	path, err := FindConfigFile(DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"semshell"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "semshell.yaml"), path)

	path, err = FindConfigFile(DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"other"}})
	require.NoError(t, err)
	assert.Empty(t, path)

	_, err = FindConfigFile(DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"other"}, Required: true})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

func TestValidate(t *testing.T) {
	zero := 0
	rules := ValidationRules{
		"log.level":  {Required: true, OneOf: []string{"debug", "info", "warn", "error"}},
		"log.format": {OneOf: []string{"json", "console"}},
		"prompt":     {Pattern: `^\S.*$`},
		"limit":      {MinInt: &zero},
	}

	ok := Validate(rules, map[string]string{"log.level": "INFO", "log.format": "json", "prompt": "> ", "limit": "10"})
	assert.True(t, ok.Valid)
	assert.NoError(t, ok.Err())

	bad := Validate(rules, map[string]string{"log.format": "xml", "prompt": " x", "limit": "-1"})
	assert.False(t, bad.Valid)
	assert.Len(t, bad.Errors, 4)
	assert.True(t, mdwerror.HasCode(bad.Err(), mdwerror.CodeInvalidConfig))
}
