package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/authdeck/internal/config"
	"github.com/muurk/authdeck/internal/ui"
)

var configForce bool

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file without asking")

	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the ` + config.BaseURLEnvVar + `
environment variable and command-line flags have been applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Example: `  authdeck config init
  authdeck config init --api http://192.168.1.20:3000 --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			p := ui.NewPrinter(cmd.OutOrStdout())
			if !p.Confirm(cmd.InOrStdin(), "Config file exists", []string{path + " will be replaced with defaults"}, "Overwrite?") {
				return fmt.Errorf("aborted, %s left unchanged", path)
			}
		}

		cfg := config.NewConfig()
		if apiURL != "" {
			cfg.API.BaseURL = apiURL
		}
		if apiTimeout > 0 {
			cfg.API.Timeout = apiTimeout
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func saveConfig(cfg *config.Config) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	return cfg.Save(path)
}
