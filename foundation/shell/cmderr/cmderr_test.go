// File: cmderr_test.go
// Title: Command Dispatch Error Kinds Unit Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package cmderr

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
)

func TestKinds(t *testing.T) {
	cause := errors.New("invalid syntax")

	tests := []struct {
		name    string
		err     error
		message string
		pred    func(error) bool
		code    mdwerror.Code
	}{
		{"not bound", NotBound("nope"), "command 'nope' is not bound!", IsNotBound, mdwerror.CodeCommandNotBound},
		{"unsupported", UnsupportedType("wait", 0, reflect.TypeOf(time.Duration(0))), "unsupported parameter type time.Duration", IsUnsupportedType, mdwerror.CodeUnsupportedParameterType},
		{"binding", Binding("repeat", "abc", "int32", cause), "cannot assign 'abc' to 'int32'!: invalid syntax", IsBinding, mdwerror.CodeCommandBinding},
		{"execution", Execution("fail", "handler for command fail failed", cause), "handler for command fail failed: invalid syntax", IsExecution, mdwerror.CodeCommandExecution},
		{"definition", Definition("echo", "duplicate command name"), "invalid command 'echo': duplicate command name", IsDefinition, mdwerror.CodeCommandDefinition},
	}

	preds := []func(error) bool{IsNotBound, IsUnsupportedType, IsBinding, IsExecution, IsDefinition}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.code, mdwerror.GetCode(tt.err))
			assert.True(t, tt.pred(tt.err))
			assert.True(t, tt.pred(fmt.Errorf("dispatch: %w", tt.err)))

			matched := 0
			for _, p := range preds {
				if p(tt.err) {
					matched++
				}
			}
			assert.Equal(t, 1, matched)
		})
	}
}

func TestBindingDetails(t *testing.T) {
	err := Binding("repeat", "abc", "int32", nil)
	assert.Equal(t, "cannot assign 'abc' to 'int32'!", err.Error())

	v, ok := err.Detail("value")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
	v, _ = err.Detail("type")
	assert.Equal(t, "int32", v)
}

func TestExecutionKeepsOriginal(t *testing.T) {
	original := errors.New("disk full")
	err := Execution("save", "handler for command save failed", original)
	assert.True(t, errors.Is(err, original))

	// wrapping a binding error still reads as execution
	inner := Binding("x", "1", "char", nil)
	outer := Execution("x", "handler for command x failed", inner)
	assert.True(t, IsExecution(outer))
	assert.False(t, IsBinding(outer))
}

func TestPredicatesOnPlainErrors(t *testing.T) {
	assert.False(t, IsNotBound(nil))
	assert.False(t, IsExecution(errors.New("plain")))
}
