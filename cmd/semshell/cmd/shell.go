package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/semshell/foundation/shell"
	"github.com/msto63/semshell/internal/history"
	"github.com/msto63/semshell/internal/settings"
	"github.com/msto63/semshell/internal/tui"
)

var historyPath string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Starts the interactive shell",
	Long: `Starts the interactive command shell.

Navigation:
  Enter     - run the line
  Up/Down   - recall history
  Ctrl+L    - clear the transcript
  Ctrl+C    - cancel a running command, or quit
  exit      - quit`,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().StringVar(&historyPath, "history", "", "history database (overrides shell.history_path)")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	transcript := &shell.Transcript{}

	// the UI owns the terminal; logs go to shell.log_path or nowhere
	rt, err := setup(transcript, (*settings.Settings).ShellLogOutput)
	if err != nil {
		printError("setup failed", err)
		return err
	}
	defer rt.Close()

	path := historyPath
	if path == "" {
		path = rt.settings.Shell.HistoryPath
	}

	store, err := history.Open(history.Config{Path: path, Limit: rt.settings.Shell.HistoryLimit})
	if err != nil {
		printError("cannot open history", err)
		return err
	}
	defer store.Close()

	p := tea.NewProgram(newShellModel(rt, transcript, store), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Shell error: %v\n", err)
		return err
	}

	return nil
}

func newShellModel(rt *app, transcript *shell.Transcript, store history.Store) tui.Model {
	return tui.NewModel(tui.Config{
		Engine:     rt.engine,
		Transcript: transcript,
		History:    store,
		Prompt:     rt.settings.Shell.Prompt,
		Logger:     rt.logger,
	})
}
