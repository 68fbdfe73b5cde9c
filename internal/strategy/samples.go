// File: samples.go
// Title: Sample Commands
// Description: Small commands covering every supported parameter type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial sample commands

package strategy

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
	"github.com/msto63/semshell/foundation/shell"
	"github.com/msto63/semshell/foundation/shell/convert"
	"github.com/msto63/semshell/foundation/shell/registry"
)

// MaxRepeat bounds the repeat command
const MaxRepeat = 100

// Samples provides the sample commands
type Samples struct {
	messenger shell.Messenger
}

// NewSamples creates the sample strategy
func NewSamples(messenger shell.Messenger) *Samples {
	return &Samples{messenger: messenger}
}

// Commands returns the sample commands
func (s *Samples) Commands() []registry.Command {
	return []registry.Command{
		{
			Name:    "echo",
			Help:    "prints a message",
			Usage:   "echo msg=<text>",
			Handler: s.echo,
			Params:  []registry.Param{{Key: "msg"}},
		},
		{
			Name:    "repeat",
			Help:    "prints a message several times",
			Usage:   "repeat count=<n> msg=<text>",
			Handler: s.repeat,
			Params:  []registry.Param{{Key: "count"}, {Key: "msg"}},
		},
		{
			Name:    "add",
			Help:    "adds two integers",
			Usage:   "add a=<int> b=<int>",
			Handler: s.add,
			Params:  []registry.Param{{Key: "a"}, {Key: "b"}},
		},
		{
			Name:    "scale",
			Help:    "multiplies a value by a factor",
			Usage:   "scale value=<number> factor=<number>",
			Handler: s.scale,
			Params:  []registry.Param{{Key: "value"}, {Key: "factor"}},
		},
		{
			Name:    "upper",
			Help:    "prints a character in upper case",
			Usage:   "upper char=<c>",
			Handler: s.upper,
			Params:  []registry.Param{{Key: "char", Type: convert.Char}},
		},
		{
			Name:    "sleep",
			Help:    "waits, stopping early when interrupted",
			Usage:   "sleep millis=<n>",
			Handler: s.sleep,
			Params:  []registry.Param{{Key: "millis"}},
		},
		{
			Name:    "fail",
			Help:    "always fails",
			Usage:   "fail",
			Handler: s.fail,
		},
	}
}

func (s *Samples) echo(msg string) {
	s.messenger.Report(msg)
}

func (s *Samples) repeat(count int32, msg string) error {
	if count < 0 || count > MaxRepeat {
		return mdwerror.Newf("count must be between 0 and %d", MaxRepeat).
			WithCode(mdwerror.CodeInvalidInput)
	}
	for i := int32(0); i < count; i++ {
		s.messenger.Report(msg)
	}
	return nil
}

func (s *Samples) add(a, b int64) {
	s.messenger.Report(strconv.FormatInt(a+b, 10))
}

func (s *Samples) scale(value float32, factor float64) {
	s.messenger.Report(strconv.FormatFloat(float64(value)*factor, 'g', -1, 64))
}

func (s *Samples) upper(char rune) {
	s.messenger.Report(string(unicode.ToUpper(char)))
}

func (s *Samples) sleep(ctx context.Context, millis int64) error {
	if millis < 0 {
		return mdwerror.New("millis must not be negative").WithCode(mdwerror.CodeInvalidInput)
	}

	d := time.Duration(millis) * time.Millisecond
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		s.messenger.Report(fmt.Sprintf("slept %s", d))
		return nil
	case <-ctx.Done():
		return mdwerror.Wrap(ctx.Err(), "sleep interrupted").WithCode(mdwerror.CodeTimeout)
	}
}

func (s *Samples) fail() error {
	return mdwerror.New("requested failure")
}
