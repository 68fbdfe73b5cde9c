// File: binder.go
// Title: Parameter Binder
// Description: Turns an options map into the ordered argument list of a
//              command handler using the conversion service.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial binder

// Package binder binds option text to handler parameters.
package binder

import (
	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell/cmderr"
	"github.com/msto63/semshell/foundation/shell/convert"
	"github.com/msto63/semshell/foundation/shell/registry"
)

// Options configures a Binder
type Options struct {
	Logger    *mdwlog.Logger
	Converter convert.Converter
}

// Binder produces handler arguments from options
type Binder struct {
	converter convert.Converter
	logger    *mdwlog.Logger
}

// New creates a binder; without a Converter the default service is used
func New(opts Options) *Binder {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Converter == nil {
		opts.Converter = convert.Default
	}

	return &Binder{
		converter: opts.Converter,
		logger:    opts.Logger.WithField("component", "shell-binder"),
	}
}

// Bind converts the options named by d's parameter keys, in declaration
// order. Parameters whose key is missing from options are skipped, so the
// result can be shorter than the parameter list. The first failure aborts.
func (b *Binder) Bind(d *registry.Descriptor, options map[string]string) ([]interface{}, error) {
	if d.ParamCount() == 0 {
		return nil, nil
	}

	args := make([]interface{}, 0, d.ParamCount())
	for _, spec := range d.Params() {
		if !spec.Bindable() {
			continue
		}
		value, ok := options[spec.Key]
		if !ok {
			continue
		}

		if !spec.Type.Supported() {
			return nil, cmderr.UnsupportedType(d.Name(), spec.Index, spec.GoType)
		}

		converted, err := b.converter.Convert(value, spec.Type)
		if err != nil {
			return nil, cmderr.Binding(d.Name(), value, spec.Type.String(), err)
		}
		args = append(args, converted)
	}

	b.logger.Debug("Parameters bound", mdwlog.Fields{
		"command":    d.Name(),
		"paramCount": d.ParamCount(),
		"boundCount": len(args),
	})

	return args, nil
}
