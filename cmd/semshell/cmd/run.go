package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/semshell/internal/cmdline"
	"github.com/msto63/semshell/internal/console"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [key=value | --key value ...]",
	Short: "Runs a single command",
	Long: `Runs one command and exits. The exit status is 1 when the command
is unknown, its options cannot be bound, or it fails. Output reported by a
successful command does not change the exit status.

A value containing "=" must be written as key=value or --key=value;
after "--key" a word with "=" is read as an option of its own.

Examples:
  semshell run echo msg=hello
  semshell run add --a 40 --b 2
  semshell run describe name=scale`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	options, err := cmdline.ParseArgs(args[1:])
	if err != nil {
		return err
	}

	rt, err := setup(console.New(cmd.OutOrStdout()), toStderr)
	if err != nil {
		printError("setup failed", err)
		return err
	}
	defer rt.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rt.engine.Handle(ctx, args[0], options); err != nil {
		// already reported
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}
	return nil
}
