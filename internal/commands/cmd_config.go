package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/mintup/mintup/internal/core/config"
	"github.com/mintup/mintup/internal/core/dashboard"
	"github.com/mintup/mintup/internal/printer"
	"github.com/mintup/mintup/internal/styles"
)

type ConfigCmd struct {
	flags  *Flags
	format string
	force  bool
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "mintup config validate [options]",
				Description: "Validates the configuration file, checking the start tab, markdown style and jump keys.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:        "init",
				Usage:       "Create a configuration file interactively",
				UsageText:   "mintup config init [options]",
				Description: "Asks for the start tab, sidebar breakpoint and email preview style, then writes the config file.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "force",
						Usage:       "overwrite an existing config file",
						Destination: &cmd.force,
					},
				},
				Action: cmd.runInit,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	warnings := cmd.flags.Config.Warnings()

	if cmd.format == "json" {
		return cmd.outputJSON(c, err, warnings)
	}

	return cmd.outputText(p, err, warnings)
}

func (cmd *ConfigCmd) outputJSON(c *cli.Command, validationErr error, warnings []config.ValidationWarning) error {
	type fieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []fieldError               `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    validationErr == nil,
		Warnings: warnings,
	}

	for _, fe := range extractFieldErrors(validationErr) {
		out.Errors = append(out.Errors, fieldError{Field: fe.Field, Message: fe.Err.Error()})
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if validationErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

// extractFieldErrors extracts field errors from a validation error.
func extractFieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}

func (cmd *ConfigCmd) outputText(p *printer.Printer, validationErr error, warnings []config.ValidationWarning) error {
	fieldErrs := extractFieldErrors(validationErr)

	if len(fieldErrs) > 0 {
		p.Printf("Errors")
		for _, fe := range fieldErrs {
			if fe.Field != "" {
				p.Printf("  %s %s: %s", printer.Cross, fe.Field, fe.Err.Error())
			} else {
				p.Printf("  %s %s", printer.Cross, fe.Err.Error())
			}
		}
	}

	if len(warnings) > 0 {
		if len(fieldErrs) > 0 {
			p.Printf("")
		}
		p.Printf("Warnings")
		for _, warn := range warnings {
			msg := warn.Message
			if warn.Item != "" {
				msg = warn.Item + ": " + msg
			}
			p.Printf("  %s %s: %s", printer.Dot, warn.Category, msg)
		}
	}

	p.Printf("")
	if validationErr == nil {
		if len(warnings) > 0 {
			p.Successf("Configuration is valid (%d warning(s))", len(warnings))
		} else {
			p.Successf("Configuration is valid")
		}
		return nil
	}

	p.Errorf("%d error(s), %d warning(s)", len(fieldErrs), len(warnings))
	return cli.Exit("", 1)
}

// initAnswers holds the values collected by the init form.
type initAnswers struct {
	DefaultTab   string
	Breakpoint   string
	GlamourStyle string
}

// apply copies the answers onto cfg. Breakpoint has already been validated
// by the form.
func (a initAnswers) apply(cfg *config.Config) error {
	breakpoint, err := strconv.Atoi(a.Breakpoint)
	if err != nil {
		return fmt.Errorf("sidebar breakpoint: %w", err)
	}
	cfg.DefaultTab = a.DefaultTab
	cfg.SidebarBreakpoint = breakpoint
	cfg.GlamourStyle = a.GlamourStyle
	return cfg.Validate()
}

// validateBreakpoint accepts a non-negative column count.
func validateBreakpoint(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("enter a whole number of columns")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// newInitForm builds the config init form, prefilled from cfg.
func newInitForm(cfg *config.Config, answers *initAnswers) *huh.Form {
	*answers = initAnswers{
		DefaultTab:   cfg.DefaultTab,
		Breakpoint:   strconv.Itoa(cfg.SidebarBreakpoint),
		GlamourStyle: cfg.GlamourStyle,
	}

	tabOptions := make([]huh.Option[string], 0, len(dashboard.Tabs()))
	for _, tab := range dashboard.Tabs() {
		tabOptions = append(tabOptions, huh.NewOption(tab.Label(), tab.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start tab").
				Description("Tab shown when the dashboard opens").
				Options(tabOptions...).
				Value(&answers.DefaultTab),
			huh.NewInput().
				Title("Sidebar breakpoint").
				Description("Terminal width at which the sidebar is always shown").
				Value(&answers.Breakpoint).
				Validate(validateBreakpoint),
			huh.NewSelect[string]().
				Title("Email preview style").
				Options(huh.NewOptions(config.GlamourStyles...)...).
				Value(&answers.GlamourStyle),
		),
	).WithTheme(styles.FormTheme())
}

func (cmd *ConfigCmd) runInit(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("config file %s already exists; use --force to overwrite", path)
	}

	cfg := config.DefaultConfig()
	if cmd.flags.Config != nil {
		if err := cmd.flags.Config.Validate(); err != nil {
			p.Warnf("Existing config is invalid, starting from defaults")
		} else {
			cfg = *cmd.flags.Config
		}
	}

	var answers initAnswers
	if err := newInitForm(&cfg, &answers).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			p.Infof("Aborted, nothing written")
			return nil
		}
		return fmt.Errorf("config form: %w", err)
	}

	if err := answers.apply(&cfg); err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	p.Successf("Wrote %s", path)
	return nil
}
