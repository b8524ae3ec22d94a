// Package config handles configuration loading and validation for mintup.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mintup/mintup/internal/core/dashboard"
)

// DefaultSidebarBreakpoint is the terminal width at which the sidebar is
// shown even when the menu is closed.
const DefaultSidebarBreakpoint = 100

// DefaultGlamourStyle is the markdown style used for the email preview.
const DefaultGlamourStyle = "tokyo-night"

// defaultKeybindings jumps straight to a tab with the number keys.
var defaultKeybindings = map[string]string{
	"1": string(dashboard.TabChat),
	"2": string(dashboard.TabCalendar),
	"3": string(dashboard.TabFinance),
	"4": string(dashboard.TabNotifications),
	"5": string(dashboard.TabEmail),
	"6": string(dashboard.TabMemory),
}

// Config holds the application configuration.
type Config struct {
	DefaultTab        string            `yaml:"default_tab"`
	SidebarBreakpoint int               `yaml:"sidebar_breakpoint"`
	GlamourStyle      string            `yaml:"glamour_style"`
	Keybindings       map[string]string `yaml:"keybindings"` // key -> tab id
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultTab:        string(dashboard.DefaultTab),
		SidebarBreakpoint: DefaultSidebarBreakpoint,
		GlamourStyle:      DefaultGlamourStyle,
		Keybindings:       maps.Clone(defaultKeybindings),
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file at configPath over the defaults without
// validating the result. A missing file or a directory yields defaults;
// ValidateDeep reports the directory. Only read and YAML errors are returned.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		return &cfg, nil
	}

	info, err := os.Stat(configPath)
	if err != nil || info.IsDir() {
		return &cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Decode into an empty config so user keybindings can be merged
	// over the defaults rather than replacing them.
	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	cfg.merge(user)

	return &cfg, nil
}

// merge applies non-zero values from user over c.
func (c *Config) merge(user Config) {
	if user.DefaultTab != "" {
		c.DefaultTab = user.DefaultTab
	}
	if user.SidebarBreakpoint != 0 {
		c.SidebarBreakpoint = user.SidebarBreakpoint
	}
	if user.GlamourStyle != "" {
		c.GlamourStyle = user.GlamourStyle
	}
	c.Keybindings = mergeKeybindings(c.Keybindings, user.Keybindings)
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]string) map[string]string {
	result := make(map[string]string, len(defaults)+len(user))
	maps.Copy(result, defaults)
	maps.Copy(result, user)
	return result
}

// StartTab returns the configured default tab, falling back to
// dashboard.DefaultTab if the value does not parse.
func (c *Config) StartTab() dashboard.Tab {
	tab, err := dashboard.ParseTab(c.DefaultTab)
	if err != nil {
		return dashboard.DefaultTab
	}
	return tab
}

// TabKeys returns the jump keybindings resolved to tabs. Entries with an
// unknown tab are skipped; Validate reports them.
func (c *Config) TabKeys() map[string]dashboard.Tab {
	out := make(map[string]dashboard.Tab, len(c.Keybindings))
	for key, id := range c.Keybindings {
		tab, err := dashboard.ParseTab(id)
		if err != nil {
			continue
		}
		out[key] = tab
	}
	return out
}

// Save writes the configuration as YAML to path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
