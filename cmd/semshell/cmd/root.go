package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/semshell/foundation/core/log"
	"github.com/msto63/semshell/foundation/shell"
	"github.com/msto63/semshell/internal/settings"
	"github.com/msto63/semshell/internal/strategy"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "semshell",
	Short: "semshell - typed command shell",
	Long: `semshell dispatches named commands with key=value options to typed
handlers, either one at a time or from an interactive shell.

Examples:
  semshell run echo msg=hello
  semshell run repeat count=3 msg="hello world"
  semshell shell
  semshell commands`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered semshell.toml/yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// app bundles what every subcommand needs
type app struct {
	settings *settings.Settings
	logger   *mdwlog.Logger
	engine   *shell.Engine
	logOut   io.Closer
}

// Close flushes the logger and releases its output
func (a *app) Close() {
	_ = a.logger.Sync()
	_ = a.logOut.Close()
}

// logOutput picks where log entries go once settings are known
type logOutput func(s *settings.Settings) (io.WriteCloser, error)

type stderrCloser struct{}

func (stderrCloser) Write(p []byte) (int, error) { return os.Stderr.Write(p) }
func (stderrCloser) Close() error                { return nil }

// toStderr logs to the process error stream
func toStderr(*settings.Settings) (io.WriteCloser, error) {
	return stderrCloser{}, nil
}

// setup loads settings and builds an engine reporting through messenger,
// logging to the writer chosen by output
func setup(messenger shell.Messenger, output logOutput) (*app, error) {
	path := cfgFile
	if path == "" {
		found, err := settings.Discover()
		if err != nil {
			return nil, err
		}
		path = found
	}

	s, err := settings.Load(path, ".env")
	if err != nil {
		return nil, err
	}
	if verbose {
		s.Log.Level = "debug"
	}

	out, err := output(s)
	if err != nil {
		return nil, err
	}

	logger, err := s.NewLogger(out)
	if err != nil {
		out.Close()
		return nil, err
	}
	mdwlog.SetDefault(logger)

	reg, err := strategy.Build(logger, messenger)
	if err != nil {
		out.Close()
		return nil, err
	}

	engine, err := shell.New(shell.Options{
		Logger:         logger,
		Registry:       reg,
		Messenger:      messenger,
		EnableAuditLog: s.Audit,
	})
	if err != nil {
		out.Close()
		return nil, err
	}

	logger.Debug("Runtime ready", mdwlog.Fields{
		"config":   path,
		"commands": reg.Len(),
	})

	return &app{settings: s, logger: logger, engine: engine, logOut: out}, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
