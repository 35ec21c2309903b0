// Package commands implements the CLI commands for livecheck.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/livecheck/internal/app"
	"go.trai.ch/livecheck/internal/build"
	"go.trai.ch/livecheck/internal/core/ports"
)

// jsonSwitcher is implemented by loggers that can emit JSON records.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for livecheck.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "livecheck",
		Short:         "Inspect how package definitions discover upstream versions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if s, ok := c.logger.(jsonSwitcher); ok && jsonLogs {
			s.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newStrategiesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
