// Package log provides structured logging for semshell.
//
// Package: log
// Title: Structured Logging Facade
// Description: Implements the Logger used by every semshell component. The
//              API keeps contextual fields, request IDs, audit entries and
//              error-aware logging; entries are encoded and written by zap.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Logger facade on top of go.uber.org/zap
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatConsole,
//	}).WithField("component", "shell-engine")
//
//	logger.Info("command dispatched", log.Fields{"command": "echo"})
//
//	// Audit entries are written regardless of the configured level
//	logger.Audit("command execution", log.Fields{"status": "COMPLETED"})
//
//	timer := logger.StartTimer("dispatch")
//	defer timer.Stop()
package log
