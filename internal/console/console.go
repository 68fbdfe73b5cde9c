// File: console.go
// Title: Console Messenger
// Description: Writes reported dispatch messages to a writer, styled by
//              kind. Styling is dropped automatically when the writer is
//              not a terminal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial console messenger

// Package console prints dispatch messages to a terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a reported message
type Kind int

const (
	KindPlain Kind = iota
	KindError
	KindUsage
)

// Classify returns the kind of message
func Classify(message string) Kind {
	switch {
	case strings.HasPrefix(message, "usage:"):
		return KindUsage
	case strings.HasPrefix(message, "could not execute command"),
		strings.HasPrefix(message, "command '") && strings.HasSuffix(message, "is not bound!"):
		return KindError
	default:
		return KindPlain
	}
}

// Messenger writes messages to an output, one per line
type Messenger struct {
	mu  sync.Mutex
	out io.Writer

	errorStyle lipgloss.Style
	usageStyle lipgloss.Style
	plainStyle lipgloss.Style
}

// New creates a messenger writing to out
func New(out io.Writer) *Messenger {
	r := lipgloss.NewRenderer(out)

	return &Messenger{
		out:        out,
		errorStyle: r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		usageStyle: r.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		plainStyle: r.NewStyle(),
	}
}

// Report writes message
func (m *Messenger) Report(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fmt.Fprintln(m.out, m.style(Classify(message)).Render(message))
}

func (m *Messenger) style(kind Kind) lipgloss.Style {
	switch kind {
	case KindError:
		return m.errorStyle
	case KindUsage:
		return m.usageStyle
	default:
		return m.plainStyle
	}
}
