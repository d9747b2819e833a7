package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/go-homedir"
)

const envHome = "APPIUM_GO_HOME"

var (
	homeOnce sync.Once
	homeDir  string
)

// GetHome returns the appium-go home directory.
//
// Resolution order:
//  1. $APPIUM_GO_HOME environment variable
//  2. ~/.appium-go
//  3. Current working directory
func GetHome() string {
	homeOnce.Do(func() {
		homeDir = resolveHome()
	})
	return homeDir
}

// LoadDefault loads config.yaml from the working directory, falling back
// to the home directory.
func LoadDefault() (*Config, error) {
	if cwd, err := os.Getwd(); err == nil {
		for _, name := range []string{"config.yaml", "config.yml"} {
			if _, err := os.Stat(filepath.Join(cwd, name)); err == nil {
				return LoadFromDir(cwd)
			}
		}
	}
	return LoadFromDir(GetHome())
}

func resolveHome() string {
	// 1. Environment variable, "~" allowed
	if env := os.Getenv(envHome); env != "" {
		if expanded, err := homedir.Expand(env); err == nil {
			return expanded
		}
		return env
	}

	// 2. User home
	if home, err := homedir.Dir(); err == nil && home != "" {
		return filepath.Join(home, ".appium-go")
	}

	// 3. Current working directory
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}

	return "."
}

// ResetHome resets the cached home directory (for testing).
func ResetHome() {
	homeOnce = sync.Once{}
	homeDir = ""
	homedir.Reset()
}
