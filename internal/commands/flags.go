package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/mintup/mintup/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mintup", "config.yaml")
}

// inspectCommands report on the config file themselves, so they receive it
// unvalidated.
var inspectCommands = []string{"config", "doctor"}

// LoadConfig loads ConfigPath into Config for the named top-level command.
// Commands that inspect or rewrite the config get the parsed file even when
// it does not validate; everything else fails on an invalid config.
func (f *Flags) LoadConfig(command string) error {
	load := config.Load
	if slices.Contains(inspectCommands, command) {
		load = config.Read
	}

	cfg, err := load(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	f.Config = cfg
	return nil
}
