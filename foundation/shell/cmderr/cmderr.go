// File: cmderr.go
// Title: Command Dispatch Error Kinds
// Description: Constructors and predicates for the errors raised while
//              resolving, binding and invoking commands. All kinds are
//              structured errors from the core error package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error kinds

// Package cmderr defines the error kinds of the command dispatch core.
package cmderr

import (
	"fmt"
	"reflect"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
)

// NotBound reports that no command is registered under name
func NotBound(name string) *mdwerror.Error {
	return mdwerror.Newf("command '%s' is not bound!", name).
		WithCode(mdwerror.CodeCommandNotBound).
		WithOperation("resolve").
		WithDetail("command", name)
}

// UnsupportedType reports a handler parameter whose Go type cannot be
// produced by the conversion service
func UnsupportedType(command string, index int, goType reflect.Type) *mdwerror.Error {
	return mdwerror.Newf("unsupported parameter type %s", typeName(goType)).
		WithCode(mdwerror.CodeUnsupportedParameterType).
		WithOperation("bind").
		WithDetails(map[string]interface{}{
			"command": command,
			"index":   index,
			"type":    typeName(goType),
		})
}

// Binding reports that value could not be converted to target
func Binding(command, value, target string, cause error) *mdwerror.Error {
	msg := fmt.Sprintf("cannot assign '%s' to '%s'!", value, target)

	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, msg)
	} else {
		err = mdwerror.New(msg)
	}
	return err.WithCode(mdwerror.CodeCommandBinding).
		WithOperation("bind").
		WithDetails(map[string]interface{}{
			"command": command,
			"value":   value,
			"type":    target,
		})
}

// Execution reports a failure while invoking a handler
func Execution(command, cause string, original error) *mdwerror.Error {
	var err *mdwerror.Error
	if original != nil {
		err = mdwerror.Wrap(original, cause)
	} else {
		err = mdwerror.New(cause)
	}
	return err.WithCode(mdwerror.CodeCommandExecution).
		WithOperation("invoke").
		WithDetail("command", command)
}

// Definition reports an invalid command declaration found while building
// a registry
func Definition(command, reason string) *mdwerror.Error {
	return mdwerror.Newf("invalid command '%s': %s", command, reason).
		WithCode(mdwerror.CodeCommandDefinition).
		WithOperation("register").
		WithDetail("command", command)
}

// IsNotBound reports whether err is a NotBound error
func IsNotBound(err error) bool { return is(err, mdwerror.CodeCommandNotBound) }

// IsUnsupportedType reports whether err is an UnsupportedType error
func IsUnsupportedType(err error) bool { return is(err, mdwerror.CodeUnsupportedParameterType) }

// IsBinding reports whether err is a Binding error
func IsBinding(err error) bool { return is(err, mdwerror.CodeCommandBinding) }

// IsExecution reports whether err is an Execution error
func IsExecution(err error) bool { return is(err, mdwerror.CodeCommandExecution) }

// IsDefinition reports whether err is a Definition error
func IsDefinition(err error) bool { return is(err, mdwerror.CodeCommandDefinition) }

// is checks the outermost structured error only, so a handler error wrapped
// by Execution is not mistaken for the kind it carries
func is(err error, code mdwerror.Code) bool {
	if err == nil {
		return false
	}
	return mdwerror.GetCode(err) == code
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
