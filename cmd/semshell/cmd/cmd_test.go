package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell"
	"github.com/msto63/semshell/foundation/shell/cmderr"
	"github.com/msto63/semshell/internal/history"
	"github.com/msto63/semshell/internal/settings"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "semshell.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func keepDefaultLogger(t *testing.T) {
	t.Helper()
	prev := mdwlog.GetDefault()
	t.Cleanup(func() { mdwlog.SetDefault(prev) })
}

func TestRunExitStatus(t *testing.T) {
	keepDefaultLogger(t)
	path := writeConfig(t, "[log]\nlevel = \"error\"\nformat = \"json\"\n")

	tests := []struct {
		name    string
		args    []string
		wantErr func(error) bool
		output  string
	}{
		{"unknown command", []string{"run", "nope"}, cmderr.IsNotBound, "command 'nope' is not bound!"},
		{"binding failure", []string{"run", "repeat", "count=abc", "msg=x"}, cmderr.IsBinding, "could not execute command 'repeat'"},
		{"handler failure", []string{"run", "fail"}, cmderr.IsExecution, "requested failure"},
		{"reported output", []string{"run", "echo", "msg=hi"}, nil, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			rootCmd.SetOut(out)
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(append([]string{"--config", path}, tt.args...))
			t.Cleanup(func() {
				rootCmd.SetOut(nil)
				rootCmd.SetErr(nil)
				rootCmd.SetArgs(nil)
			})

			err := rootCmd.Execute()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error kind: %v", err)
			}
			assert.Contains(t, out.String(), tt.output)
		})
	}
}

// collect runs cmd and returns the messages it produces, flattening batches
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// submit types line into the shell and applies the dispatch result. With
// cancel set the running command is cancelled before it starts.
func submit(t *testing.T, m tea.Model, line string, cancel bool) tea.Model {
	t.Helper()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	if cancel {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	}

	for _, msg := range collect(cmd) {
		if _, tick := msg.(spinner.TickMsg); tick {
			continue
		}
		m, _ = m.Update(msg)
	}
	return m
}

// redirectStreams points the process streams at temp files and returns
// a function reading what was written to them
func redirectStreams(t *testing.T) func() string {
	t.Helper()

	stdout, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	stderr, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdout, stderr
	t.Cleanup(func() {
		os.Stdout, os.Stderr = origOut, origErr
		stdout.Close()
		stderr.Close()
	})

	return func() string {
		var written strings.Builder
		for _, f := range []*os.File{stdout, stderr} {
			content, err := os.ReadFile(f.Name())
			require.NoError(t, err)
			written.Write(content)
		}
		return written.String()
	}
}

func TestShellKeepsProcessStreamsQuiet(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "shell.log")

	tests := []struct {
		name    string
		logPath string
	}{
		{"discarded", ""},
		{"log file", logFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keepDefaultLogger(t)

			content := "audit = true\n[log]\nlevel = \"debug\"\nformat = \"json\"\n"
			if tt.logPath != "" {
				content += "[shell]\nlog_path = \"" + tt.logPath + "\"\n"
			}
			cfgFile = writeConfig(t, content)
			t.Cleanup(func() { cfgFile = "" })

			written := redirectStreams(t)

			transcript := &shell.Transcript{}
			rt, err := setup(transcript, (*settings.Settings).ShellLogOutput)
			require.NoError(t, err)

			var m tea.Model = newShellModel(rt, transcript, history.NewMemoryStore(10))
			m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

			m = submit(t, m, "fail", false)
			m = submit(t, m, "repeat count=1000 msg=x", false)
			m = submit(t, m, "sleep millis=5000", true)
			view := m.View()
			rt.Close()

			assert.Empty(t, written())
			assert.Contains(t, view, "could not execute command 'fail'")
			assert.Contains(t, view, "could not execute command 'sleep'")

			if tt.logPath != "" {
				logged, err := os.ReadFile(tt.logPath)
				require.NoError(t, err)
				assert.Contains(t, string(logged), "requested failure")
				assert.Contains(t, string(logged), "context canceled")
			}
		})
	}
}
