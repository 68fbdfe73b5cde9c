// File: messenger.go
// Title: Dispatch Messaging
// Description: The messaging interface used to surface user-visible text,
//              plus a function adapter and an in-memory transcript.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial messenger types

package shell

import "sync"

// Messenger surfaces user-visible messages
type Messenger interface {
	Report(message string)
}

// MessengerFunc adapts a function to the Messenger interface
type MessengerFunc func(message string)

// Report calls f(message)
func (f MessengerFunc) Report(message string) {
	f(message)
}

// Transcript is a Messenger that keeps reported messages in memory
type Transcript struct {
	mu       sync.Mutex
	messages []string
}

// Report appends message
func (t *Transcript) Report(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, message)
}

// Messages returns a copy of all messages not yet drained
func (t *Transcript) Messages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.messages))
	copy(out, t.messages)
	return out
}

// Drain returns and clears the collected messages
func (t *Transcript) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.messages
	t.messages = nil
	return out
}
