package config

import "time"

// CurrentVersion is the only config schema version this build understands.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version   int              `yaml:"version"`
	API       *APIConfig       `yaml:"api,omitempty"`
	Logging   *LoggingConfig   `yaml:"logging,omitempty"`
	UI        *UIConfig        `yaml:"ui,omitempty"`
	Discovery *DiscoveryConfig `yaml:"discovery,omitempty"`
}

// APIConfig points the client at an authentication backend.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"` // 0 = no timeout
}

// LoggingConfig mirrors logging.Options.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // empty = silent
	File  string `yaml:"file,omitempty"`  // empty = <config dir>/authdeck.log
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	// AllowConcurrentSubmit lets repeated submit presses issue overlapping
	// requests instead of being ignored while one is in flight.
	AllowConcurrentSubmit bool `yaml:"allow_concurrent_submit"`
	FrameRate             int  `yaml:"frame_rate"`
}

// DiscoveryConfig controls the mDNS scan for development API servers.
type DiscoveryConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Note: passwords are NEVER stored - they are always prompted from the user.

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	c := &Config{Version: CurrentVersion}
	c.applyDefaults()
	return c
}

// applyDefaults fills in any section missing from a loaded file.
func (c *Config) applyDefaults() {
	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	if c.UI == nil {
		c.UI = &UIConfig{}
	}
	if c.UI.FrameRate <= 0 {
		c.UI.FrameRate = DefaultFrameRate
	}
	if c.Discovery == nil {
		c.Discovery = &DiscoveryConfig{}
	}
	if c.Discovery.Timeout <= 0 {
		c.Discovery.Timeout = DefaultDiscoveryTimeout
	}
}

// FrameInterval is the delay between animation frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.UI.FrameRate)
}
