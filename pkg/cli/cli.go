// Package cli provides the command-line interface for appium-go.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/appium-go/pkg/appium"
	"github.com/devicelab-dev/appium-go/pkg/capabilities"
	"github.com/devicelab-dev/appium-go/pkg/config"
	"github.com/devicelab-dev/appium-go/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "appium-url",
		Usage:   "Appium server URL",
		Value:   config.DefaultServerURL,
		EnvVars: []string{"APPIUM_URL"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file (default: ./config.yaml, then $APPIUM_GO_HOME/config.yaml)",
		EnvVars: []string{"APPIUM_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "caps",
		Usage:   "Capabilities file (YAML or JSON), merged over the config",
		EnvVars: []string{"APPIUM_CAPS"},
	},
	&cli.StringFlag{
		Name:    "platform",
		Aliases: []string{"p"},
		Usage:   "Platform to run on (ios, android)",
		EnvVars: []string{"APPIUM_PLATFORM"},
	},
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"udid"},
		Usage:   "Device UDID or serial",
		EnvVars: []string{"APPIUM_DEVICE"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"APPIUM_VERBOSE"},
	},
	&cli.BoolFlag{
		Name:    "no-color",
		Usage:   "Disable colored output",
		EnvVars: []string{"NO_COLOR"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Write JSON logs to this file",
		EnvVars: []string{"APPIUM_LOG_FILE"},
	},
}

// NewApp builds the CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "appium-go",
		Usage:   "Talk to an Appium server from the command line",
		Version: Version,
		Description: `appium-go opens an Appium session from a config file and capability
flags, runs one command and closes the session.

Examples:
  appium-go status
  appium-go -p android --udid emulator-5554 find --using id --value com.example:id/login
  appium-go --caps caps.yaml find --using "accessibility id" --value Login --wait --timeout 10s
  appium-go -c config.yaml source > page.xml`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			statusCommand,
			findCommand,
			sourceCommand,
			screenshotCommand,
		},
		After: func(c *cli.Context) error {
			logger.Close()
			return nil
		},
	}
}

// Execute runs the CLI.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewApp().RunContext(ctx, os.Args); err != nil {
		errColor := getColor(!stderrTTY, color.FgRed)
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig resolves the configuration from file and global flags and
// initializes logging.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("appium-url") || cfg.ServerURL == "" {
		cfg.ServerURL = c.String("appium-url")
	}
	if capsFile := c.String("caps"); capsFile != "" {
		caps, err := capabilities.Load(capsFile)
		if err != nil {
			return nil, err
		}
		cfg.Capabilities.Merge(caps)
	}
	if platform := c.String("platform"); platform != "" {
		cfg.Capabilities.Set("platformName", platformName(platform))
	}
	if device := c.String("device"); device != "" {
		cfg.Capabilities.UDID(device)
	}
	cfg.Capabilities = cfg.Capabilities.Normalize()

	if c.Bool("verbose") {
		cfg.Log.Level = "debug"
		cfg.Log.Console = true
	}
	if logFile := c.String("log-file"); logFile != "" {
		cfg.Log.File = logFile
	}
	if err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}
	logger.Debug("config: server %s, platform %q", cfg.ServerURL, cfg.Capabilities.Platform())
	return cfg, nil
}

func platformName(p string) string {
	switch strings.ToLower(p) {
	case "ios":
		return "iOS"
	case "android":
		return "Android"
	}
	return p
}

// withSession opens a session, runs fn and always deletes the session.
func withSession(c *cli.Context, fn func(*appium.Client, *config.Config) error) (err error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := c.Context
	logger.Info("opening session on %s", cfg.ServerURL)
	client, err := appium.NewSession(ctx, cfg.ServerURL, cfg.Capabilities, cfg.ClientOptions()...)
	if err != nil {
		logger.Error("session not created: %v", err)
		return err
	}
	defer func() {
		// The caller's context may already be cancelled.
		if closeErr := client.Close(context.WithoutCancel(ctx)); closeErr != nil {
			logger.Warn("failed to close session %s: %v", client.SessionID(), closeErr)
			if err == nil {
				err = fmt.Errorf("failed to close session: %w", closeErr)
			}
		}
	}()

	if err = fn(client, cfg); err != nil {
		logger.Error("%s failed: %v", c.Command.Name, err)
	}
	return err
}
