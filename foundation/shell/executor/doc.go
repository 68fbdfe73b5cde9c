// File: doc.go
// Title: Handler Invoker Package Documentation
// Description: Documents the invoker that calls command handlers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package executor calls command handlers with bound arguments.

Every call-time failure is reported as a single kind of error, checked with
cmderr.IsExecution: arguments that do not match the handler signature, a
panic inside the handler, or an error returned by the handler. The original
failure stays reachable through errors.Is and errors.As.
*/
package executor
