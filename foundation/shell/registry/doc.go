// File: doc.go
// Title: Command Registry Package Documentation
// Description: Documents how commands are declared and how the registry
//              turns declarations into immutable handler descriptors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial registry documentation

/*
Package registry builds the command table of the dispatch core.

A command is declared with a name, help and usage text, a handler function
and an optional list of parameter declarations:

	reg, err := registry.New(registry.Options{Logger: logger},
		registry.Command{
			Name:    "repeat",
			Help:    "repeats a message",
			Usage:   "repeat count=<n> msg=<text>",
			Handler: func(count int32, msg string) error { ... },
			Params:  []registry.Param{{Key: "count"}, {Key: "msg"}},
		},
	)

Handlers are plain Go functions returning nothing or an error. A leading
context.Context parameter receives the dispatch context and is not part of
the parameter list. Params are matched to the remaining handler parameters
by position; a parameter without a Key can never be bound from options.

Parameter types are inferred from the handler signature (int32, int64,
float32, float64, string). A single character must be declared with
convert.Char because rune and int32 are the same Go type. Parameters of any
other Go type are accepted here and rejected when a value is bound to them.

The table is built completely inside New. Invalid declarations, including
two commands sharing a name, make New fail, so a running registry never
changes and Resolve needs no locking.

Commands are usually grouped into strategies, values that expose a set of
related commands, and handed to NewFromStrategies.
*/
package registry
