// File: invoker.go
// Title: Handler Invoker
// Description: Calls a command handler with positional arguments, injecting
//              the dispatch context and normalising call-time failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial invoker

package executor

import (
	"context"
	"fmt"
	"reflect"

	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell/cmderr"
	"github.com/msto63/semshell/foundation/shell/registry"
)

// Options configures an Invoker
type Options struct {
	Logger *mdwlog.Logger
}

// Invoker calls command handlers
type Invoker struct {
	logger *mdwlog.Logger
}

// New creates an invoker
func New(opts Options) *Invoker {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Invoker{
		logger: opts.Logger.WithField("component", "shell-invoker"),
	}
}

// Invoke calls the handler of d with args. A handler without parameters is
// called without arguments whatever args holds.
func (i *Invoker) Invoke(ctx context.Context, d *registry.Descriptor, args []interface{}) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	in, err := arguments(ctx, d, args)
	if err != nil {
		return err
	}

	timer := i.logger.StartTimer("invoke").
		WithLevel(mdwlog.LevelDebug).
		WithField("command", d.Name())

	defer func() {
		if r := recover(); r != nil {
			err = cmderr.Execution(d.Name(), "handler panicked", fmt.Errorf("%v", r))
		}
		if err != nil {
			timer.StopWithError(err)
		} else {
			timer.Stop()
		}
	}()

	out := d.Handler().Call(in)

	if d.ReturnsError() && !out[0].IsNil() {
		return cmderr.Execution(d.Name(), "handler failed", out[0].Interface().(error))
	}
	return nil
}

// arguments checks args against the handler signature and prepends the
// context when the handler takes one
func arguments(ctx context.Context, d *registry.Descriptor, args []interface{}) ([]reflect.Value, error) {
	params := d.Params()
	if len(params) == 0 {
		args = nil
	}

	if len(args) != len(params) {
		return nil, cmderr.Execution(d.Name(), "invalid arguments",
			fmt.Errorf("expected %d arguments, got %d", len(params), len(args)))
	}

	in := make([]reflect.Value, 0, len(args)+1)
	if d.TakesContext() {
		in = append(in, reflect.ValueOf(ctx))
	}

	for idx, arg := range args {
		want := params[idx].GoType
		v := reflect.ValueOf(arg)

		if !v.IsValid() {
			return nil, cmderr.Execution(d.Name(), "invalid arguments",
				fmt.Errorf("argument %d is nil, expected %s", idx, want))
		}
		if !v.Type().AssignableTo(want) {
			return nil, cmderr.Execution(d.Name(), "invalid arguments",
				fmt.Errorf("argument %d is %s, expected %s", idx, v.Type(), want))
		}
		in = append(in, v)
	}

	return in, nil
}
