// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to choose the log level of an
//              error and to derive a default severity from an error code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by user input, such as an unknown command
	SeverityLow Severity = iota

	// SeverityMedium marks failures that affect one operation only
	SeverityMedium

	// SeverityHigh marks programming or environment errors, such as a
	// command declared with a parameter type that can never be bound
	SeverityHigh

	// SeverityCritical marks errors that leave the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical

	case CodeUnsupportedParameterType, CodeCommandDefinition, CodeDatabaseError, CodeInternal:
		return SeverityHigh

	case CodeCommandExecution, CodeTimeout, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	case CodeCommandNotBound, CodeCommandBinding, CodeInvalidInput, CodeNotFound,
		CodeValidationFailed, CodeRequiredField:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
