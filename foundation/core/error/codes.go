// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              command shell, including the dispatch codes of foundation/shell.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Generic, configuration and command dispatch codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Command dispatch
	CodeCommandNotBound          Code = "COMMAND_NOT_BOUND"
	CodeUnsupportedParameterType Code = "UNSUPPORTED_PARAMETER_TYPE"
	CodeCommandBinding           Code = "COMMAND_BINDING"
	CodeCommandExecution         Code = "COMMAND_EXECUTION"
	CodeCommandDefinition        Code = "COMMAND_DEFINITION"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeCommandNotBound, CodeUnsupportedParameterType, CodeCommandBinding,
		CodeCommandExecution, CodeCommandDefinition:
		return "command"
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField:
		return "validation"
	case CodeDatabaseError:
		return "storage"
	default:
		return "generic"
	}
}
