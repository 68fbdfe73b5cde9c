// File: doc.go
// Title: Command Dispatch Package Documentation
// Description: Documents the dispatch engine and how its components fit
//              together.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package shell dispatches named commands with textual options to typed Go
handlers.

A dispatch resolves the command in a registry.Registry, converts the options
the handler's parameters are bound to (binder), and calls the handler
(executor). The Engine is the entry point:

	engine, err := shell.New(shell.Options{
		Registry:  reg,
		Messenger: shell.MessengerFunc(func(msg string) { fmt.Println(msg) }),
	})
	engine.ExecuteCommand(ctx, "repeat", map[string]string{"count": "2", "msg": "hi"})

ExecuteCommand never fails. An unknown command produces one message, a
command that cannot be bound or fails while running produces a message with
the failure followed by its usage line, and an empty name does nothing.
Dispatch performs the same work but returns the error instead of reporting
it; Handle does both.

Error kinds are defined in the cmderr package.
*/
package shell
