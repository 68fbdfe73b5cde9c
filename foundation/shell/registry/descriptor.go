// File: descriptor.go
// Title: Handler Descriptor
// Description: Read-only description of one registered command: its texts,
//              its parameter specs and the handler to call.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial descriptor

package registry

import (
	"reflect"

	"github.com/msto63/semshell/foundation/shell/convert"
)

// ParamSpec describes one handler parameter
type ParamSpec struct {
	// Index is the position among the handler's parameters, not counting
	// an injected context
	Index  int
	Type   convert.Type
	GoType reflect.Type
	Key    string
}

// Bindable reports whether the parameter can receive an option value
func (p ParamSpec) Bindable() bool {
	return p.Key != ""
}

// Descriptor describes one registered command
type Descriptor struct {
	name   string
	help   string
	usage  string
	params []ParamSpec

	handler      reflect.Value
	takesContext bool
	returnsError bool
}

// Name returns the command name
func (d *Descriptor) Name() string { return d.name }

// Help returns the help text
func (d *Descriptor) Help() string { return d.help }

// Usage returns the usage text
func (d *Descriptor) Usage() string { return d.usage }

// Params returns a copy of the parameter specs in declaration order
func (d *Descriptor) Params() []ParamSpec {
	out := make([]ParamSpec, len(d.params))
	copy(out, d.params)
	return out
}

// ParamCount returns the number of handler parameters, excluding an
// injected context
func (d *Descriptor) ParamCount() int { return len(d.params) }

// Handler returns the handler function
func (d *Descriptor) Handler() reflect.Value { return d.handler }

// TakesContext reports whether the handler's first parameter is a
// context.Context
func (d *Descriptor) TakesContext() bool { return d.takesContext }

// ReturnsError reports whether the handler returns an error
func (d *Descriptor) ReturnsError() bool { return d.returnsError }
