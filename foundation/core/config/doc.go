// Package config loads configuration files into typed structs.
//
// Package: config
// Title: Configuration Loading
// Description: Decodes TOML or YAML files into Go structs, then applies
//              environment variable overrides (optionally read from dotenv
//              files first). Includes config file discovery and simple value
//              validation rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Struct decoding with TOML, YAML and env overrides
//
// Usage:
//
//	type Settings struct {
//		Log struct {
//			Level string `toml:"level" yaml:"level" env:"LOG_LEVEL"`
//		} `toml:"log" yaml:"log"`
//	}
//
//	var s Settings
//	err := config.Decode("semshell.toml", &s, config.LoadOptions{
//		EnvPrefix: "SEMSHELL_",
//	})
//
// Struct fields take their values in this order, later sources winning:
// the value already in the struct (defaults), the file, the environment.
package config
