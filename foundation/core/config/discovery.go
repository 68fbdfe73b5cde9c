// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known directories for a configuration file so
//              the shell can start without an explicit --config flag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	"github.com/msto63/semshell/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations for an application
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", app))
	}
	paths = append(paths, filepath.Join("/etc", app))

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app, "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// FindConfigFile returns the first existing candidate. With Required unset a
// miss returns an empty path and no error.
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	searched := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		if !filex.IsDir(path) {
			continue
		}
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(path, filename+ext)
				if filex.IsFile(candidate) {
					return candidate, nil
				}
				searched = append(searched, candidate)
			}
		}
	}

	if options.Required {
		return "", mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.FindConfigFile").
			WithDetail("searchPaths", searched)
	}

	return "", nil
}
