// Package error provides structured error handling for semshell.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements a coded error type with severity, details and
//              operation context. Every failure the command shell reports is
//              one of these errors, so callers can classify a failure by code
//              and the logger can pick a level from its severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Coded errors and command shell codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/semshell/foundation/core/error"
//
//	err := mdwerror.New("command 'x' is not bound!").
//		WithCode(mdwerror.CodeCommandNotBound).
//		WithDetail("command", "x")
//
//	if mdwerror.HasCode(err, mdwerror.CodeCommandNotBound) {
//		// report instead of failing
//	}
package error
