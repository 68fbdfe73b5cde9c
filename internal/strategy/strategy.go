// File: strategy.go
// Title: Command Set Assembly
// Description: Builds the registry holding every shipped command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial assembly

package strategy

import (
	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell"
	"github.com/msto63/semshell/foundation/shell/registry"
)

// Build creates a registry with the built-in and sample commands, all
// reporting through messenger
func Build(logger *mdwlog.Logger, messenger shell.Messenger) (*registry.Registry, error) {
	builtins := NewBuiltins(messenger)

	reg, err := registry.NewFromStrategies(registry.Options{Logger: logger},
		builtins,
		NewSamples(messenger),
	)
	if err != nil {
		return nil, err
	}

	builtins.Attach(reg)
	return reg, nil
}
