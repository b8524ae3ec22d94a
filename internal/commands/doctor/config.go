package doctor

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/mintup/mintup/internal/core/config"
)

// ConfigCheck validates the configuration file.
type ConfigCheck struct {
	config     *config.Config
	configPath string
}

// NewConfigCheck creates a new configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{
		config:     cfg,
		configPath: configPath,
	}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.add(StatusFail, "Config loaded", "configuration not loaded")
		return result
	}

	err := c.config.ValidateDeep(c.configPath)
	warnings := c.config.Warnings()

	if err == nil && len(warnings) == 0 {
		result.add(StatusPass, "Config valid", c.configPath)
		return result
	}

	if err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				label := fe.Field
				if label == "" {
					label = "validation"
				}
				result.add(StatusFail, label, fe.Err.Error())
			}
		} else {
			result.add(StatusFail, "validation", err.Error())
		}
	}

	for _, w := range warnings {
		label := w.Category
		if w.Item != "" {
			label += " (" + w.Item + ")"
		}
		result.add(StatusWarn, label, w.Message)
	}

	return result
}
