package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/authdeck/internal/authapi"
	"github.com/muurk/authdeck/internal/config"
	"github.com/muurk/authdeck/internal/discovery"
	"github.com/muurk/authdeck/internal/form"
	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/router"
	"github.com/muurk/authdeck/internal/submit"
	"github.com/muurk/authdeck/internal/tui"
	"github.com/muurk/authdeck/internal/ui"
)

// Global flags
var (
	apiURL     string
	apiTimeout time.Duration
	logLevel   string
	configPath string
)

// Command flags
var (
	discover      bool
	email         string
	username      string
	passwordStdin bool
	scanTimeout   time.Duration
	scanSave      bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (overrides config and "+config.BaseURLEnvVar+")")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 0, "Request timeout (0 = config value, which defaults to none)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty = silent")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: OS config dir)")

	rootCmd.Flags().BoolVar(&discover, "discover", false, "Use the first API server found over mDNS")

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(scanCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if apiTimeout > 0 {
		cfg.API.Timeout = apiTimeout
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *authapi.Client {
	client := authapi.NewClient(cfg.API.BaseURL)
	client.SetTimeout(cfg.API.Timeout)
	return client
}

// uiCmd launches the interactive login/sign-up UI
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive login and sign-up UI",
	Long: `Launch the interactive terminal UI.

The UI starts on the login screen. Logs are written to a file while it runs
(logging.file in the config, or authdeck.log in the config directory).`,
	Example: `  # Against the configured API
  authdeck ui

  # Against a local mock API
  authdeck ui --api http://localhost:3000

  # Against the first mock API advertised on the LAN
  authdeck ui --discover`,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().BoolVar(&discover, "discover", false, "Use the first API server found over mDNS")
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	if err := logging.InitializeWithOptions(logging.Options{Level: cfg.Logging.Level, File: logPath}); err != nil {
		return err
	}

	if discover {
		scanner := discovery.NewScanner()
		scanner.Timeout = cfg.Discovery.Timeout
		fmt.Fprintf(cmd.ErrOrStderr(), "Looking for API servers (timeout: %s)...\n", scanner.Timeout)
		ep, err := scanner.First(cmd.Context())
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}
		cfg.API.BaseURL = ep.BaseURL()
	}

	logging.Info("Starting UI", zap.String("api", cfg.API.BaseURL))

	model := tui.NewAppModel(newClient(cfg), tui.Options{
		APIURL:                cfg.API.BaseURL,
		AllowConcurrentSubmit: cfg.UI.AllowConcurrentSubmit,
		FrameInterval:         cfg.FrameInterval(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

// loginCmd signs in without the UI
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in without the interactive UI",
	Long: `Sign in with an email and password and print the result.

The password is prompted for without echo. Use --password-stdin to read it
from standard input instead. The command exits non-zero when the server
rejects the credentials or cannot be reached.`,
	Example: `  authdeck login --email user@example.com

  # Scripted
  echo "$PASSWORD" | authdeck login --email user@example.com --password-stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd, passwordStdin)
		if err != nil {
			return err
		}
		return runHeadless(cmd, submit.Login, map[form.FieldID]string{
			form.FieldEmail:    email,
			form.FieldPassword: password,
		})
	},
}

// registerCmd creates an account without the UI
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account without the interactive UI",
	Example: `  authdeck register --username ada --email ada@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd, passwordStdin)
		if err != nil {
			return err
		}
		return runHeadless(cmd, submit.Register, map[form.FieldID]string{
			form.FieldUsername: username,
			form.FieldEmail:    email,
			form.FieldPassword: password,
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&email, "email", "", "Account email")
		c.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	}
	registerCmd.Flags().StringVar(&username, "username", "", "Account username")
}

// consoleSession stands in for the router and alert overlay when there is
// no UI: it records what the controller asked for.
type consoleSession struct {
	route  router.Route
	title  string
	notice string
}

func (s *consoleSession) Replace(to router.Route) { s.route = to }
func (s *consoleSession) Push(to router.Route)    { s.route = to }

func (s *consoleSession) Alert(title, message string) {
	s.title, s.notice = title, message
}

func runHeadless(cmd *cobra.Command, action submit.Action, values map[form.FieldID]string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging.Level); err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	params := []ui.Detail{{Key: "API", Value: cfg.API.BaseURL}}
	if values[form.FieldUsername] != "" {
		params = append(params, ui.Detail{Key: "Username", Value: values[form.FieldUsername]})
	}
	if values[form.FieldEmail] != "" {
		params = append(params, ui.Detail{Key: "Email", Value: values[form.FieldEmail]})
	}
	p.PrintHeader(action.String(), cmd.CommandPath(), params...)

	session := &consoleSession{}
	ctrl := submit.NewController(newClient(cfg), session, session, submit.Options{})
	out := ctrl.Submit(cmd.Context(), action, values)

	if out.Kind == submit.OutcomeSuccess {
		result := ui.NewSuccessResult(successTitle(action)).SetWidth(p.Width())
		if msg, ok := out.Payload["message"].(string); ok && msg != "" {
			result.AddDetail("Message", msg)
		}
		if tok, ok := out.Payload["token"].(string); ok {
			result.AddDetail("Token", tok)
		}
		if id, ok := out.Payload["id"]; ok {
			result.AddDetail("ID", fmt.Sprint(id))
		}
		result.AddDetail("Next", session.route.String())
		p.Println(result.Render())
		return nil
	}

	var hints []string
	detail := errors.New(out.Message)
	if out.Err != nil {
		hints = authapi.GetTroubleshootingHints(out.Err)
		detail = errors.New(authapi.GetShortErrorMessage(out.Err))
	}
	p.PrintError(out.Message, detail, hints)
	return fmt.Errorf("%s %s", strings.ToLower(action.String()), out.Kind)
}

func successTitle(action submit.Action) string {
	if action == submit.Register {
		return submit.MsgAccountCreated
	}
	return "Signed in"
}

// readPassword prompts without echo, or reads one line from stdin.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		return readLine(cmd.InOrStdin())
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// scanCmd discovers API servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for API servers on the network",
	Long: `Scan for authdeck API servers using mDNS/DNS-SD discovery.

Servers started with 'authdeck-mockapi --advertise' announce themselves as
_authdeck._tcp. Use --save to write the first one into the config file.`,
	Example: `  authdeck scan
  authdeck scan --scan-timeout 10s --save`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", 0, "How long to listen (default: discovery.timeout from config)")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Save the first server as api.base_url")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging.Level); err != nil {
		return err
	}

	timeout := cfg.Discovery.Timeout
	if scanTimeout > 0 {
		timeout = scanTimeout
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Scan", cmd.CommandPath(), ui.Detail{Key: "Service", Value: discovery.ServiceType}, ui.Detail{Key: "Timeout", Value: timeout.String()})

	endpoints, err := discovery.Scan(cmd.Context(), timeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(endpoints) == 0 {
		p.PrintWarning("No API servers found", []string{
			"Start one with 'authdeck-mockapi --advertise'",
			"Check that you are on the same network",
			"Try a longer --scan-timeout",
		})
		return nil
	}

	for _, ep := range endpoints {
		result := ui.NewSuccessResult(ep.Name, ui.Detail{Key: "URL", Value: ep.BaseURL()}).SetWidth(p.Width())
		if ep.Host != "" {
			result.AddDetail("Host", ep.Host)
		}
		if v := ep.GetMetadata("version"); v != "" {
			result.AddDetail("Version", v)
		}
		p.Println(result.Render())
	}

	if scanSave {
		cfg.API.BaseURL = endpoints[0].BaseURL()
		if err := saveConfig(cfg); err != nil {
			return err
		}
		p.Println(fmt.Sprintf("Saved %s as api.base_url", cfg.API.BaseURL))
	}
	return nil
}
