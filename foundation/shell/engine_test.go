// File: engine_test.go
// Title: Command Dispatch Engine Unit Tests
// Description: Tests the dispatch entry points end to end: reporting rules,
//              binding and invocation failures, audit logging and request
//              IDs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package shell

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell/cmderr"
	"github.com/msto63/semshell/foundation/shell/registry"
)

// fixture records what the sample handlers received
type fixture struct {
	echoed   []string
	repeated int
	status   int
}

func newEngine(t *testing.T, opts Options) (*Engine, *Transcript, *fixture) {
	t.Helper()

	fx := &fixture{}
	reg, err := registry.New(registry.Options{Logger: mdwlog.NewNop()},
		registry.Command{
			Name:    "echo",
			Help:    "prints a message",
			Usage:   "echo msg=<text>",
			Handler: func(msg string) { fx.echoed = append(fx.echoed, msg) },
			Params:  []registry.Param{{Key: "msg"}},
		},
		registry.Command{
			Name:    "repeat",
			Usage:   "repeat count=<n> msg=<text>",
			Handler: func(count int32, msg string) { fx.repeated++ },
			Params:  []registry.Param{{Key: "count"}, {Key: "msg"}},
		},
		registry.Command{
			Name:    "status",
			Usage:   "status",
			Handler: func() { fx.status++ },
		},
		registry.Command{
			Name:    "fail",
			Usage:   "fail",
			Handler: func() error { return errors.New("disk full") },
		},
		registry.Command{
			Name:    "boom",
			Usage:   "boom",
			Handler: func() { panic("kaboom") },
		},
	)
	require.NoError(t, err)

	transcript := &Transcript{}
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewNop()
	}
	opts.Registry = reg
	opts.Messenger = transcript

	engine, err := New(opts)
	require.NoError(t, err)
	return engine, transcript, fx
}

func TestNewRequiresCollaborators(t *testing.T) {
	reg, err := registry.New(registry.Options{Logger: mdwlog.NewNop()})
	require.NoError(t, err)

	_, err = New(Options{Logger: mdwlog.NewNop(), Messenger: &Transcript{}})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	_, err = New(Options{Logger: mdwlog.NewNop(), Registry: reg})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}

func TestExecuteCommandEmptyName(t *testing.T) {
	engine, transcript, _ := newEngine(t, Options{})

	engine.ExecuteCommand(context.Background(), "", map[string]string{"msg": "hi"})
	assert.Empty(t, transcript.Messages())
	assert.NoError(t, engine.Dispatch(context.Background(), "", nil))
}

func TestExecuteCommandNotBound(t *testing.T) {
	engine, transcript, _ := newEngine(t, Options{})

	engine.ExecuteCommand(context.Background(), "doesnotexist", map[string]string{})

	messages := transcript.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "command 'doesnotexist' is not bound!", messages[0])
	assert.Contains(t, messages[0], "is not bound")
}

func TestExecuteCommandEcho(t *testing.T) {
	engine, transcript, fx := newEngine(t, Options{})

	engine.ExecuteCommand(context.Background(), "echo", map[string]string{"msg": "hi"})

	assert.Empty(t, transcript.Messages())
	assert.Equal(t, []string{"hi"}, fx.echoed)
}

func TestExecuteCommandBindingFailure(t *testing.T) {
	engine, transcript, fx := newEngine(t, Options{})

	engine.ExecuteCommand(context.Background(), "repeat", map[string]string{"count": "abc", "msg": "hi"})

	messages := transcript.Messages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "could not execute command 'repeat'")
	assert.Contains(t, messages[0], "abc")
	assert.True(t, strings.HasPrefix(messages[1], "usage:"))
	assert.Equal(t, "usage: repeat count=<n> msg=<text>", messages[1])
	assert.Zero(t, fx.repeated)
}

func TestExecuteCommandZeroParamsIgnoresOptions(t *testing.T) {
	engine, transcript, fx := newEngine(t, Options{})

	engine.ExecuteCommand(context.Background(), "status", map[string]string{"count": "abc", "x": "y"})

	assert.Empty(t, transcript.Messages())
	assert.Equal(t, 1, fx.status)
}

func TestExecuteCommandExecutionFailures(t *testing.T) {
	tests := []struct {
		name    string
		command string
		options map[string]string
		detail  string
	}{
		{"handler error", "fail", nil, "could not execute command 'fail' [handler failed: disk full]"},
		{"handler panic", "boom", nil, "could not execute command 'boom' [handler panicked: kaboom]"},
		{"missing option", "repeat", map[string]string{"msg": "hi"}, "could not execute command 'repeat' [invalid arguments: expected 2 arguments, got 1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, transcript, _ := newEngine(t, Options{})

			assert.NotPanics(t, func() {
				engine.ExecuteCommand(context.Background(), tt.command, tt.options)
			})

			messages := transcript.Messages()
			require.Len(t, messages, 2)
			assert.Equal(t, tt.detail, messages[0])
			assert.True(t, strings.HasPrefix(messages[1], "usage: "))
		})
	}
}

func TestDispatchReturnsKinds(t *testing.T) {
	engine, transcript, _ := newEngine(t, Options{})
	ctx := context.Background()

	assert.True(t, cmderr.IsNotBound(engine.Dispatch(ctx, "nope", nil)))
	assert.True(t, cmderr.IsBinding(engine.Dispatch(ctx, "repeat", map[string]string{"count": "x"})))
	assert.True(t, cmderr.IsExecution(engine.Dispatch(ctx, "fail", nil)))
	assert.NoError(t, engine.Dispatch(ctx, "echo", map[string]string{"msg": "hi"}))

	// Dispatch never reports
	assert.Empty(t, transcript.Messages())

	err := engine.Dispatch(ctx, "nope", nil)
	mdwErr, ok := mdwerror.As(err)
	require.True(t, ok)
	assert.NotEmpty(t, mdwErr.RequestID())
}

func TestHandleReportsAndReturns(t *testing.T) {
	engine, transcript, _ := newEngine(t, Options{})

	err := engine.Handle(context.Background(), "fail", nil)
	assert.True(t, cmderr.IsExecution(err))
	assert.Len(t, transcript.Drain(), 2)

	assert.NoError(t, engine.Handle(context.Background(), "status", nil))
	assert.Empty(t, transcript.Messages())
}

func TestMessengerPanicIsContained(t *testing.T) {
	reg, err := registry.New(registry.Options{Logger: mdwlog.NewNop()})
	require.NoError(t, err)

	engine, err := New(Options{
		Logger:    mdwlog.NewNop(),
		Registry:  reg,
		Messenger: MessengerFunc(func(string) { panic("display gone") }),
	})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		engine.ExecuteCommand(context.Background(), "missing", nil)
	})
}

func TestAuditLog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelError, Format: mdwlog.FormatJSON, Output: buf})

	engine, _, _ := newEngine(t, Options{Logger: logger, EnableAuditLog: true})
	engine.ExecuteCommand(context.Background(), "echo", map[string]string{"msg": "hi"})
	engine.ExecuteCommand(context.Background(), "nope", nil)

	var statuses []string
	requestIDs := map[string]bool{}
	scanner := bufio.NewScanner(strings.NewReader(buf.String()))
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if entry["audit"] != true {
			continue
		}
		statuses = append(statuses, entry["status"].(string))
		requestIDs[entry["requestID"].(string)] = true
	}

	assert.Equal(t, []string{"STARTED", "COMPLETED", "STARTED", "NOT_BOUND"}, statuses)
	assert.Len(t, requestIDs, 2)
}

func TestMessengerFunc(t *testing.T) {
	var got []string
	m := MessengerFunc(func(msg string) { got = append(got, msg) })
	m.Report("a")
	m.Report("b")
	assert.Equal(t, []string{"a", "b"}, got)
}
