// Package config provides user configuration management for authdeck.
//
// The configuration is a small YAML file naming the authentication API, the
// logging destination and a few UI preferences. It follows OS-specific
// conventions for storage location:
//   - Linux: $XDG_CONFIG_HOME/authdeck/config.yaml or $HOME/.config/authdeck/config.yaml
//   - macOS: $HOME/.config/authdeck/config.yaml
//   - Windows: %LOCALAPPDATA%\authdeck\config.yaml
//
// A missing file is not an error: Load returns defaults pointing at
// http://localhost:3000 with no request timeout.
//
// # Security
//
// This package NEVER stores passwords or session tokens.
//
// # Precedence
//
// Command-line flags override AUTHDECK_API_URL, which overrides the file,
// which overrides the defaults. Flags are applied by the caller.
package config
