package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/mintup/mintup/internal/core/dashboard"
)

// ReservedKeys are bound by the dashboard itself and cannot be used as tab
// jump keys.
var ReservedKeys = []string{
	"q", "ctrl+c", "tab", "shift+tab", "m", "?", "/", "i",
	"esc", "enter", "up", "down", "j", "k", "[", "]", "f",
}

// GlamourStyles lists the markdown styles accepted for glamour_style.
var GlamourStyles = []string{"auto", "ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid. The returned error is a
// criterio.FieldErrors when validation fails.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if _, err := dashboard.ParseTab(c.DefaultTab); err != nil {
		errs = errs.Append("default_tab", err)
	}

	if c.SidebarBreakpoint < 0 {
		errs = errs.Append("sidebar_breakpoint", fmt.Errorf("must not be negative, got %d", c.SidebarBreakpoint))
	}

	if !slices.Contains(GlamourStyles, c.GlamourStyle) {
		errs = errs.Append("glamour_style", fmt.Errorf("unknown style %q", c.GlamourStyle))
	}

	// Sorted so errors are reported in a stable order.
	for _, key := range slices.Sorted(maps.Keys(c.Keybindings)) {
		field := fmt.Sprintf("keybindings[%q]", key)
		if key == "" {
			errs = errs.Append(field, fmt.Errorf("key cannot be empty"))
			continue
		}
		if slices.Contains(ReservedKeys, key) {
			errs = errs.Append(field, fmt.Errorf("key %q is reserved", key))
			continue
		}
		if _, err := dashboard.ParseTab(c.Keybindings[key]); err != nil {
			errs = errs.Append(field, err)
		}
	}

	return errs.ToError()
}

// ValidateDeep runs Validate and additionally checks that configPath, when
// set, is readable and not a directory.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	if configPath != "" {
		info, err := os.Stat(configPath)
		switch {
		case err == nil && info.IsDir():
			errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
		case err != nil && !os.IsNotExist(err):
			errs = errs.Append("config", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if err := c.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = errs.Append(fe.Field, fe.Err)
		}
	}

	return errs.ToError()
}

// Warnings returns non-fatal issues: tabs that no key jumps to, and tabs
// reachable from more than one key.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	byTab := make(map[dashboard.Tab][]string)
	for key, tab := range c.TabKeys() {
		byTab[tab] = append(byTab[tab], key)
	}

	for _, tab := range dashboard.Tabs() {
		keys := byTab[tab]
		slices.Sort(keys)
		switch {
		case len(keys) == 0:
			warnings = append(warnings, ValidationWarning{
				Category: "Keybindings",
				Item:     string(tab),
				Message:  "no jump key; reachable with tab/shift+tab only",
			})
		case len(keys) > 1:
			warnings = append(warnings, ValidationWarning{
				Category: "Keybindings",
				Item:     string(tab),
				Message:  fmt.Sprintf("bound to %d keys %v", len(keys), keys),
			})
		}
	}

	return warnings
}
