// Package config handles configuration for appium-go.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/appium-go/pkg/appium"
	"github.com/devicelab-dev/appium-go/pkg/capabilities"
	"github.com/devicelab-dev/appium-go/pkg/logger"
)

// DefaultServerURL is the address of a locally started Appium server.
const DefaultServerURL = "http://127.0.0.1:4723"

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Server settings
	ServerURL      string        `yaml:"serverUrl"`      // Appium server URL
	RequestTimeout time.Duration `yaml:"requestTimeout"` // Per HTTP request

	// Session settings
	Capabilities     capabilities.Capabilities `yaml:"capabilities"`     // Inline capabilities
	CapabilitiesFile string                    `yaml:"capabilitiesFile"` // YAML/JSON file, merged under inline ones

	Wait WaitConfig    `yaml:"wait"`
	Log  logger.Config `yaml:"log"`
}

// WaitConfig holds poll-wait defaults.
type WaitConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = appium.DefaultRequestTimeout
	}
	if c.Wait.Timeout <= 0 {
		c.Wait.Timeout = appium.DefaultWaitTimeout
	}
	if c.Wait.Interval <= 0 {
		c.Wait.Interval = appium.DefaultWaitInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Capabilities == nil {
		c.Capabilities = capabilities.New()
	}
}

// Load loads configuration from a file. A relative capabilitiesFile is
// resolved against the directory of path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File, err = homedir.Expand(cfg.Log.File); err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}

	if cfg.CapabilitiesFile != "" {
		capsPath, err := homedir.Expand(cfg.CapabilitiesFile)
		if err != nil {
			return nil, fmt.Errorf("capabilities file: %w", err)
		}
		if !filepath.IsAbs(capsPath) {
			capsPath = filepath.Join(filepath.Dir(path), capsPath)
		}
		fromFile, err := capabilities.Load(capsPath)
		if err != nil {
			return nil, err
		}
		fromFile.Merge(cfg.Capabilities)
		cfg.Capabilities = fromFile
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return defaults
	return Default(), nil
}

// Validate checks values that would only fail later, at session creation.
func (c *Config) Validate() error {
	if c.Wait.Interval > c.Wait.Timeout {
		return fmt.Errorf("wait interval %s exceeds wait timeout %s", c.Wait.Interval, c.Wait.Timeout)
	}
	if c.Capabilities.Platform() == "" {
		return fmt.Errorf("capabilities: platformName is required")
	}
	return nil
}

// ClientOptions returns the session options this configuration implies.
func (c *Config) ClientOptions() []appium.Option {
	return []appium.Option{
		appium.WithTimeout(c.RequestTimeout),
		appium.WithLogger(logger.L()),
	}
}

// NewWait applies the configured wait timing to w.
func (c *Config) NewWait(w appium.Wait) appium.Wait {
	return w.AtMost(c.Wait.Timeout).CheckEvery(c.Wait.Interval)
}
