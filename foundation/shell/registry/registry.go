// File: registry.go
// Title: Command Registry
// Description: Builds the immutable command table from explicit command
//              declarations and resolves command names to descriptors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial registry with eager table construction

package registry

import (
	"context"
	"fmt"
	"reflect"

	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell/cmderr"
	"github.com/msto63/semshell/foundation/shell/convert"
	"github.com/msto63/semshell/foundation/utils/mapx"
	mdwstringx "github.com/msto63/semshell/foundation/utils/stringx"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Command declares one dispatchable operation
type Command struct {
	Name    string
	Help    string
	Usage   string
	Handler interface{}
	Params  []Param
}

// Param declares one handler parameter. An empty Key leaves the parameter
// unbindable; a zero Type is inferred from the handler signature.
type Param struct {
	Key  string
	Type convert.Type
}

// Strategy supplies a group of commands
type Strategy interface {
	Commands() []Command
}

// Options configures registry construction
type Options struct {
	Logger *mdwlog.Logger
}

// Registry maps command names to handler descriptors. It is read-only after
// New returns and safe for concurrent use.
type Registry struct {
	commands map[string]*Descriptor
	names    []string
	logger   *mdwlog.Logger
}

// New builds a registry from the given commands
func New(opts Options, commands ...Command) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	registry := &Registry{
		commands: make(map[string]*Descriptor, len(commands)),
		logger:   opts.Logger.WithField("component", "shell-registry"),
	}

	for _, cmd := range commands {
		if err := registry.register(cmd); err != nil {
			registry.logger.LogError(err)
			return nil, err
		}
	}

	registry.names = mapx.SortedKeys(registry.commands)

	registry.logger.Info("Command registry initialized", mdwlog.Fields{
		"commandCount": len(registry.commands),
	})

	return registry, nil
}

// NewFromStrategies builds a registry from the commands of every strategy,
// in the order given
func NewFromStrategies(opts Options, strategies ...Strategy) (*Registry, error) {
	var commands []Command
	for _, s := range strategies {
		if s == nil {
			continue
		}
		commands = append(commands, s.Commands()...)
	}
	return New(opts, commands...)
}

// Resolve returns the descriptor registered under exactly name
func (r *Registry) Resolve(name string) (*Descriptor, error) {
	d, ok := r.commands[name]
	if !ok {
		return nil, cmderr.NotBound(name)
	}
	return d, nil
}

// Descriptors returns all descriptors sorted by name
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.commands[name])
	}
	return out
}

// Names returns all command names, sorted
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.commands)
}

func (r *Registry) register(cmd Command) error {
	if mdwstringx.IsBlank(cmd.Name) {
		return cmderr.Definition(cmd.Name, "command name cannot be empty")
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return cmderr.Definition(cmd.Name, "duplicate command name")
	}

	d, err := newDescriptor(cmd)
	if err != nil {
		return err
	}

	r.commands[cmd.Name] = d

	r.logger.Debug("Command registered", mdwlog.Fields{
		"command":    d.name,
		"paramCount": len(d.params),
		"context":    d.takesContext,
	})

	return nil
}

func newDescriptor(cmd Command) (*Descriptor, error) {
	if cmd.Handler == nil {
		return nil, cmderr.Definition(cmd.Name, "handler cannot be nil")
	}

	fn := reflect.ValueOf(cmd.Handler)
	ft := fn.Type()
	if ft.Kind() != reflect.Func {
		return nil, cmderr.Definition(cmd.Name, fmt.Sprintf("handler must be a function, got %s", ft))
	}
	if fn.IsNil() {
		return nil, cmderr.Definition(cmd.Name, "handler cannot be nil")
	}
	if ft.IsVariadic() {
		return nil, cmderr.Definition(cmd.Name, "variadic handlers are not supported")
	}

	returnsError := false
	switch ft.NumOut() {
	case 0:
	case 1:
		if ft.Out(0) != errorType {
			return nil, cmderr.Definition(cmd.Name, fmt.Sprintf("handler must return nothing or error, got %s", ft.Out(0)))
		}
		returnsError = true
	default:
		return nil, cmderr.Definition(cmd.Name, fmt.Sprintf("handler must return nothing or error, got %d results", ft.NumOut()))
	}

	offset := 0
	if ft.NumIn() > 0 && ft.In(0) == contextType {
		offset = 1
	}

	count := ft.NumIn() - offset
	if len(cmd.Params) > count {
		return nil, cmderr.Definition(cmd.Name,
			fmt.Sprintf("%d parameters declared for a handler taking %d", len(cmd.Params), count))
	}

	params := make([]ParamSpec, count)
	for i := 0; i < count; i++ {
		goType := ft.In(offset + i)
		spec := ParamSpec{Index: i, GoType: goType, Type: convert.TypeOf(goType)}

		if i < len(cmd.Params) {
			decl := cmd.Params[i]
			spec.Key = decl.Key

			if decl.Type != convert.Invalid {
				if !decl.Type.Supported() {
					return nil, cmderr.Definition(cmd.Name, fmt.Sprintf("parameter %d declares unknown type %d", i, int(decl.Type)))
				}
				if !decl.Type.GoType().AssignableTo(goType) {
					return nil, cmderr.Definition(cmd.Name,
						fmt.Sprintf("parameter %d declared as %s cannot be assigned to %s", i, decl.Type, goType))
				}
				spec.Type = decl.Type
			}
		}

		params[i] = spec
	}

	return &Descriptor{
		name:         cmd.Name,
		help:         cmd.Help,
		usage:        cmd.Usage,
		params:       params,
		handler:      fn,
		takesContext: offset == 1,
		returnsError: returnsError,
	}, nil
}
