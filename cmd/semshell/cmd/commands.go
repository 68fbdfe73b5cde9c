package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/semshell/foundation/shell"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Lists the available commands",
	RunE:  runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(cmd *cobra.Command, args []string) error {
	rt, err := setup(shell.MessengerFunc(func(msg string) { fmt.Fprintln(cmd.OutOrStdout(), msg) }), toStderr)
	if err != nil {
		printError("setup failed", err)
		return err
	}
	defer rt.Close()

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COMMAND", "USAGE", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, d := range rt.engine.Registry().Descriptors() {
		t.Row(d.Name(), d.Usage(), d.Help())
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
