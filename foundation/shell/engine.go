// File: engine.go
// Title: Command Dispatch Engine
// Description: Resolves, binds and invokes commands and turns every failure
//              into reported messages. Each dispatch carries a request ID
//              used by debug and audit logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine

package shell

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell/binder"
	"github.com/msto63/semshell/foundation/shell/cmderr"
	"github.com/msto63/semshell/foundation/shell/executor"
	"github.com/msto63/semshell/foundation/shell/registry"
)

// Options configures the engine. Registry and Messenger are required.
type Options struct {
	Logger         *mdwlog.Logger
	Registry       *registry.Registry
	Binder         *binder.Binder
	Invoker        *executor.Invoker
	Messenger      Messenger
	EnableAuditLog bool
}

// Engine dispatches commands
type Engine struct {
	registry  *registry.Registry
	binder    *binder.Binder
	invoker   *executor.Invoker
	messenger Messenger
	logger    *mdwlog.Logger
	options   Options
}

// New creates a dispatch engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	if opts.Registry == nil {
		return nil, mdwerror.New("registry is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("shell.New")
	}
	if opts.Messenger == nil {
		return nil, mdwerror.New("messenger is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("shell.New")
	}

	logger := opts.Logger.WithField("component", "shell-engine")

	if opts.Binder == nil {
		opts.Binder = binder.New(binder.Options{Logger: opts.Logger})
	}
	if opts.Invoker == nil {
		opts.Invoker = executor.New(executor.Options{Logger: opts.Logger})
	}

	engine := &Engine{
		registry:  opts.Registry,
		binder:    opts.Binder,
		invoker:   opts.Invoker,
		messenger: opts.Messenger,
		logger:    logger,
		options:   opts,
	}

	logger.Info("Shell engine initialized", mdwlog.Fields{
		"commandCount": opts.Registry.Len(),
		"auditEnabled": opts.EnableAuditLog,
	})

	return engine, nil
}

// Registry returns the engine's command registry
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// ExecuteCommand dispatches name with options and reports any failure
// through the messenger. It never panics and never returns an error.
func (e *Engine) ExecuteCommand(ctx context.Context, name string, options map[string]string) {
	_ = e.Handle(ctx, name, options)
}

// Handle behaves like ExecuteCommand and also returns the dispatch error,
// for callers that record outcomes
func (e *Engine) Handle(ctx context.Context, name string, options map[string]string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = cmderr.Execution(name, "dispatch panicked", fmt.Errorf("%v", r))
			e.logger.Error("Dispatch panicked", mdwlog.Fields{
				"command": name,
				"panic":   fmt.Sprint(r),
			})
		}
	}()

	d, err := e.dispatch(ctx, name, options)
	if err == nil {
		return nil
	}

	if cmderr.IsNotBound(err) {
		e.messenger.Report(fmt.Sprintf("command '%s' is not bound!", name))
		return err
	}

	e.messenger.Report(fmt.Sprintf("could not execute command '%s' [%s]", name, err.Error()))
	e.messenger.Report(fmt.Sprintf("usage: %s", d.Usage()))
	return err
}

// Dispatch resolves, binds and invokes name. An empty name is a no-op.
// The returned error is one of the cmderr kinds.
func (e *Engine) Dispatch(ctx context.Context, name string, options map[string]string) error {
	_, err := e.dispatch(ctx, name, options)
	return err
}

func (e *Engine) dispatch(ctx context.Context, name string, options map[string]string) (*registry.Descriptor, error) {
	if name == "" {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)

	logger.Debug("Dispatching command", mdwlog.Fields{
		"command":     name,
		"optionCount": len(options),
	})
	if e.options.EnableAuditLog {
		e.auditCommand(requestID, name, "STARTED")
	}

	d, err := e.run(ctx, name, options)
	if err != nil {
		if mdwErr, ok := mdwerror.As(err); ok {
			mdwErr.WithRequestID(requestID)
		}
		logger.LogError(err)
		if e.options.EnableAuditLog {
			status := "FAILED"
			if cmderr.IsNotBound(err) {
				status = "NOT_BOUND"
			}
			e.auditCommand(requestID, name, status)
		}
		return d, err
	}

	if e.options.EnableAuditLog {
		e.auditCommand(requestID, name, "COMPLETED")
	}
	return d, nil
}

func (e *Engine) run(ctx context.Context, name string, options map[string]string) (*registry.Descriptor, error) {
	d, err := e.registry.Resolve(name)
	if err != nil {
		return nil, err
	}

	var args []interface{}
	if d.ParamCount() > 0 {
		args, err = e.binder.Bind(d, options)
		if err != nil {
			return d, err
		}
	}

	return d, e.invoker.Invoke(ctx, d, args)
}

func (e *Engine) auditCommand(requestID, name, status string) {
	e.logger.Audit("Command execution", mdwlog.Fields{
		"requestID": requestID,
		"command":   name,
		"status":    status,
	})
}
