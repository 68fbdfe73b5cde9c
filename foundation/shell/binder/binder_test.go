// File: binder_test.go
// Title: Parameter Binder Unit Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package binder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell/cmderr"
	"github.com/msto63/semshell/foundation/shell/convert"
	"github.com/msto63/semshell/foundation/shell/registry"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(registry.Options{Logger: mdwlog.NewNop()},
		registry.Command{Name: "status", Handler: func() {}},
		registry.Command{
			Name:    "echo",
			Handler: func(msg string) {},
			Params:  []registry.Param{{Key: "msg"}},
		},
		registry.Command{
			Name:    "repeat",
			Handler: func(count int32, msg string) {},
			Params:  []registry.Param{{Key: "count"}, {Key: "msg"}},
		},
		registry.Command{
			Name:    "all",
			Handler: func(a int32, b int64, c float32, d float64, e rune, f string) {},
			Params: []registry.Param{
				{Key: "a"}, {Key: "b"}, {Key: "c"}, {Key: "d"},
				{Key: "e", Type: convert.Char}, {Key: "f"},
			},
		},
		registry.Command{
			Name:    "partial",
			Handler: func(msg string, hidden int64) {},
			Params:  []registry.Param{{Key: "msg"}},
		},
		registry.Command{
			Name:    "wait",
			Handler: func(d time.Duration) {},
			Params:  []registry.Param{{Key: "for"}},
		},
	)
	require.NoError(t, err)
	return reg
}

func resolve(t *testing.T, reg *registry.Registry, name string) *registry.Descriptor {
	t.Helper()
	d, err := reg.Resolve(name)
	require.NoError(t, err)
	return d
}

func TestBind(t *testing.T) {
	reg := newRegistry(t)
	b := New(Options{Logger: mdwlog.NewNop()})

	tests := []struct {
		name     string
		command  string
		options  map[string]string
		expected []interface{}
	}{
		{"echo", "echo", map[string]string{"msg": "hi"}, []interface{}{"hi"}},
		{"extra options ignored", "echo", map[string]string{"msg": "hi", "other": "x"}, []interface{}{"hi"}},
		{"absent key contributes nothing", "repeat", map[string]string{"msg": "hi"}, []interface{}{"hi"}},
		{"declaration order", "repeat", map[string]string{"msg": "hi", "count": "3"}, []interface{}{int32(3), "hi"}},
		{"every supported type", "all",
			map[string]string{"a": "1", "b": "2", "c": "1.5", "d": "2.5", "e": "z", "f": "text"},
			[]interface{}{int32(1), int64(2), float32(1.5), 2.5, 'z', "text"}},
		{"unkeyed parameter skipped", "partial", map[string]string{"msg": "hi", "hidden": "5"}, []interface{}{"hi"}},
		{"nothing supplied", "repeat", map[string]string{}, []interface{}{}},
		{"nil options", "repeat", nil, []interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := b.Bind(resolve(t, reg, tt.command), tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestBindZeroParamsIgnoresOptions(t *testing.T) {
	reg := newRegistry(t)

	var calls int
	b := New(Options{
		Logger: mdwlog.NewNop(),
		Converter: convert.ConverterFunc(func(string, convert.Type) (interface{}, error) {
			calls++
			return nil, errors.New("should not be called")
		}),
	})

	args, err := b.Bind(resolve(t, reg, "status"), map[string]string{"msg": "hi", "count": "abc"})
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Zero(t, calls)
}

func TestBindConversionFailure(t *testing.T) {
	reg := newRegistry(t)
	b := New(Options{Logger: mdwlog.NewNop()})

	args, err := b.Bind(resolve(t, reg, "repeat"), map[string]string{"count": "abc", "msg": "hi"})
	assert.Nil(t, args)
	require.True(t, cmderr.IsBinding(err))
	assert.Contains(t, err.Error(), "abc")
	assert.Contains(t, err.Error(), "int32")

	var cerr *convert.ConversionError
	assert.ErrorAs(t, err, &cerr)

	mdwErr, ok := mdwerror.As(err)
	require.True(t, ok)
	value, _ := mdwErr.Detail("value")
	assert.Equal(t, "abc", value)
}

func TestBindStopsAtFirstFailure(t *testing.T) {
	reg := newRegistry(t)

	var seen []string
	b := New(Options{
		Logger: mdwlog.NewNop(),
		Converter: convert.ConverterFunc(func(value string, target convert.Type) (interface{}, error) {
			seen = append(seen, value)
			return convert.Convert(value, target)
		}),
	})

	_, err := b.Bind(resolve(t, reg, "all"), map[string]string{"a": "x", "b": "2", "f": "ok"})
	assert.True(t, cmderr.IsBinding(err))
	assert.Equal(t, []string{"x"}, seen)
}

func TestBindUnsupportedType(t *testing.T) {
	reg := newRegistry(t)
	b := New(Options{Logger: mdwlog.NewNop()})

	d := resolve(t, reg, "wait")

	_, err := b.Bind(d, map[string]string{"for": "5s"})
	require.True(t, cmderr.IsUnsupportedType(err))
	assert.Contains(t, err.Error(), "time.Duration")

	// nothing to bind, nothing to reject
	args, err := b.Bind(d, map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, args)
}
