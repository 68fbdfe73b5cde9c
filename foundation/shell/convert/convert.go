// File: convert.go
// Title: Text Value Conversion
// Description: Converts option text to the closed set of handler parameter
//              types and maps Go parameter types onto that set.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial conversion service

package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// Type tags the declared type of a handler parameter
type Type int

const (
	// Invalid marks a parameter type outside the supported set
	Invalid Type = iota
	Int32
	Int64
	Float32
	Float64
	// Char is a single rune; since rune and int32 share a Go type it is
	// never inferred and must be declared
	Char
	String
)

var goTypes = map[Type]reflect.Type{
	Int32:   reflect.TypeOf(int32(0)),
	Int64:   reflect.TypeOf(int64(0)),
	Float32: reflect.TypeOf(float32(0)),
	Float64: reflect.TypeOf(float64(0)),
	Char:    reflect.TypeOf(rune(0)),
	String:  reflect.TypeOf(""),
}

// String returns the name used in messages
func (t Type) String() string {
	switch t {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Char:
		return "char"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// Supported reports whether values can be converted to t
func (t Type) Supported() bool {
	_, ok := goTypes[t]
	return ok
}

// GoType returns the Go type produced by converting to t, or nil
func (t Type) GoType() reflect.Type {
	return goTypes[t]
}

// TypeOf maps a Go parameter type onto the supported set. int32 maps to
// Int32, never Char. Named types such as time.Duration are Invalid.
func TypeOf(rt reflect.Type) Type {
	if rt == nil {
		return Invalid
	}
	for _, t := range []Type{Int32, Int64, Float32, Float64, String} {
		if goTypes[t] == rt {
			return t
		}
	}
	return Invalid
}

// Converter is the conversion service consumed by the binder
type Converter interface {
	Convert(value string, target Type) (interface{}, error)
}

// ConverterFunc adapts a function to the Converter interface
type ConverterFunc func(value string, target Type) (interface{}, error)

// Convert calls f(value, target)
func (f ConverterFunc) Convert(value string, target Type) (interface{}, error) {
	return f(value, target)
}

// ConversionError reports a value that cannot be converted to a type
type ConversionError struct {
	Value  string
	Target Type
	Err    error
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %q to %s: %v", e.Value, e.Target, e.Err)
	}
	return fmt.Sprintf("cannot convert %q to %s", e.Value, e.Target)
}

// Unwrap returns the parse error, if any
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Service is the default Converter, backed by strconv
type Service struct{}

// Default is the converter used when none is configured
var Default Converter = Service{}

// Convert converts value to target. Numbers are parsed in base 10 with the
// bit size of the target; Char requires exactly one rune.
func (Service) Convert(value string, target Type) (interface{}, error) {
	return Convert(value, target)
}

// Convert converts value to target using the default rules
func Convert(value string, target Type) (interface{}, error) {
	switch target {
	case Int32:
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, &ConversionError{Value: value, Target: target, Err: unwrapNumError(err)}
		}
		return int32(n), nil

	case Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, &ConversionError{Value: value, Target: target, Err: unwrapNumError(err)}
		}
		return n, nil

	case Float32:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, &ConversionError{Value: value, Target: target, Err: unwrapNumError(err)}
		}
		return float32(f), nil

	case Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, &ConversionError{Value: value, Target: target, Err: unwrapNumError(err)}
		}
		return f, nil

	case Char:
		if utf8.RuneCountInString(value) != 1 {
			return nil, &ConversionError{Value: value, Target: target, Err: fmt.Errorf("expected exactly one character")}
		}
		r, size := utf8.DecodeRuneInString(value)
		if r == utf8.RuneError && size == 1 {
			return nil, &ConversionError{Value: value, Target: target, Err: fmt.Errorf("invalid UTF-8")}
		}
		return r, nil

	case String:
		return value, nil

	default:
		return nil, &ConversionError{Value: value, Target: target, Err: fmt.Errorf("unsupported target type")}
	}
}

// unwrapNumError drops the strconv function prefix, the message already
// names the value and type
func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
