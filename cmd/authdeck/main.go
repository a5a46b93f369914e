// Authdeck is a terminal front-end for an email/password authentication API.
//
// It provides an interactive login and sign-up UI with animated floating
// labels, headless login and register commands for scripting, and mDNS
// discovery of development API servers.
//
// Usage:
//
//	authdeck [command] [flags]
//
// Running without arguments launches the interactive UI.
// See 'authdeck --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "authdeck",
	Short: "Login and sign-up client for the authdeck API",
	Long: `A terminal client for an email/password authentication API.

Provides an interactive login and sign-up UI, headless login and register
commands, and discovery of development API servers on the local network.

If no command is specified, the interactive UI will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the UI when no subcommand provided
		return runUI(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "authdeck %s (commit: %s)\n", version.Version, version.Commit)
	},
}
