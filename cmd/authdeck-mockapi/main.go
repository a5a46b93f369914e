// Authdeck-mockapi is a development stand-in for the authdeck API.
//
// It serves POST /api/users/register and POST /api/users/login from an
// in-memory account store, so the authdeck client can be exercised without
// a real backend. Accounts are lost when the process exits.
//
// Usage:
//
//	authdeck-mockapi [flags]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/authdeck/internal/discovery"
	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/mockapi"
	"github.com/muurk/authdeck/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Server flags
var (
	host       string
	port       int
	logLevel   string
	advertise  bool
	name       string
	bcryptCost int
)

var rootCmd = &cobra.Command{
	Use:   "authdeck-mockapi",
	Short: "In-memory stand-in for the authdeck API",
	Long: `Start an HTTP server implementing the authdeck user API.

Accounts live in memory only. Passwords are bcrypt-hashed and login returns a
random token. With --advertise the server announces itself over mDNS so
'authdeck scan' and 'authdeck ui --discover' can find it.`,
	Example: `  # Listen on :3000, the client's default
  authdeck-mockapi

  # Announce on the LAN with request logging
  authdeck-mockapi --advertise --log-level info

  # Loopback only, on another port
  authdeck-mockapi --host 127.0.0.1 --port 8080`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&host, "host", "", "Listen address (empty = all interfaces)")
	rootCmd.Flags().IntVar(&port, "port", discovery.DefaultPort, "Listen port")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the server over mDNS")
	rootCmd.Flags().StringVar(&name, "name", mockapi.DefaultInstanceName, "mDNS instance name")
	rootCmd.Flags().IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt cost for password hashes (0 = library default)")

	rootCmd.AddCommand(versionCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	logging.Info("Starting mock API",
		zap.String("version", version.Full()),
		zap.Int("port", port),
		zap.Bool("advertise", advertise),
	)

	srv := mockapi.New(&mockapi.Config{
		Host:         host,
		Port:         port,
		Advertise:    advertise,
		InstanceName: name,
		BcryptCost:   bcryptCost,
	})
	return srv.Start()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "authdeck-mockapi %s (commit: %s)\n", version.Version, version.Commit)
	},
}
