package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/mintup/mintup/internal/core/dashboard"
	"github.com/mintup/mintup/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	tab   string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{
		flags: flags,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tab",
			Usage:       "tab to open (chat, calendar, finance, notifications, email, memory)",
			Sources:     cli.EnvVars("MINTUP_TAB"),
			Destination: &cmd.tab,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !stdoutIsTerminal() {
		return fmt.Errorf("the dashboard needs an interactive terminal; use 'mintup show <tab>' to print a single frame")
	}

	opts := tui.Options{}
	if cmd.tab != "" {
		tab, err := dashboard.ParseTab(cmd.tab)
		if err != nil {
			return fmt.Errorf("--tab: %w", err)
		}
		opts.StartTab = tab
	}

	m := tui.New(cmd.flags.Config, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
