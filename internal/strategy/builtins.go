// File: builtins.go
// Title: Built-in Commands
// Description: Commands that describe the registry they are part of: help,
//              describe and commands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial built-in commands

// Package strategy groups the commands shipped with semshell.
package strategy

import (
	"strings"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	"github.com/msto63/semshell/foundation/shell"
	"github.com/msto63/semshell/foundation/shell/registry"
	mdwstringx "github.com/msto63/semshell/foundation/utils/stringx"
)

// helpWidth caps the help text shown per line in listings
const helpWidth = 60

// Builtins reports on the registered commands. The registry it describes
// contains Builtins itself, so it is attached after construction.
type Builtins struct {
	messenger shell.Messenger
	catalog   *registry.Registry
}

// NewBuiltins creates the built-in strategy
func NewBuiltins(messenger shell.Messenger) *Builtins {
	return &Builtins{messenger: messenger}
}

// Attach sets the registry described by the built-in commands
func (b *Builtins) Attach(catalog *registry.Registry) {
	b.catalog = catalog
}

// Commands returns the built-in commands
func (b *Builtins) Commands() []registry.Command {
	return []registry.Command{
		{
			Name:    "help",
			Help:    "lists every command with a short description",
			Usage:   "help",
			Handler: b.help,
		},
		{
			Name:    "describe",
			Help:    "shows the description and usage of one command",
			Usage:   "describe name=<command>",
			Handler: b.describe,
			Params:  []registry.Param{{Key: "name"}},
		},
		{
			Name:    "commands",
			Help:    "lists the command names",
			Usage:   "commands",
			Handler: b.commands,
		},
	}
}

func (b *Builtins) help() error {
	if err := b.ready(); err != nil {
		return err
	}

	width := 0
	for _, name := range b.catalog.Names() {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, d := range b.catalog.Descriptors() {
		line := mdwstringx.PadRight(d.Name(), width, ' ')
		if help := mdwstringx.Truncate(d.Help(), helpWidth, "..."); help != "" {
			line += "  " + help
		}
		b.messenger.Report(line)
	}
	return nil
}

func (b *Builtins) describe(name string) error {
	if err := b.ready(); err != nil {
		return err
	}

	d, err := b.catalog.Resolve(name)
	if err != nil {
		return err
	}

	b.messenger.Report(d.Name() + ": " + mdwstringx.FirstNonBlank(d.Help(), "no description"))
	b.messenger.Report("usage: " + mdwstringx.FirstNonBlank(d.Usage(), d.Name()))

	var keys []string
	for _, p := range d.Params() {
		if p.Bindable() {
			keys = append(keys, p.Key+" ("+p.Type.String()+")")
		}
	}
	if len(keys) > 0 {
		b.messenger.Report("options: " + strings.Join(keys, ", "))
	}
	return nil
}

func (b *Builtins) commands() error {
	if err := b.ready(); err != nil {
		return err
	}
	b.messenger.Report(strings.Join(b.catalog.Names(), " "))
	return nil
}

func (b *Builtins) ready() error {
	if b.catalog == nil {
		return mdwerror.New("no command registry attached").
			WithCode(mdwerror.CodeInternal).
			WithOperation("strategy.Builtins")
	}
	return nil
}
