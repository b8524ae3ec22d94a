package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mintup/mintup/internal/core/dashboard"
	"github.com/mintup/mintup/internal/tui"
)

type ShowCmd struct {
	flags  *Flags
	width  int
	height int
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print one frame of the dashboard",
		UsageText: "mintup show <tab> [options]",
		Description: `Renders the dashboard with the given tab selected and prints it to stdout.

Useful for scripts, screenshots and terminals where the interactive dashboard
cannot run. The width defaults to the terminal width, or 100 columns when
stdout is not a terminal.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "render width in columns (0 uses the terminal width)",
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "render height in rows (0 renders at natural height)",
				Destination: &cmd.height,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one tab, got %d; run 'mintup tabs' for the list", c.Args().Len())
	}

	tab, err := dashboard.ParseTab(c.Args().First())
	if err != nil {
		return err
	}

	if cmd.width < 0 || cmd.height < 0 {
		return fmt.Errorf("--width and --height must not be negative")
	}

	width := cmd.width
	if width == 0 {
		width = fallbackWidth
		if w, _, ok := terminalSize(); ok {
			width = w
		}
	}

	_, err = fmt.Fprintln(c.Root().Writer, tui.Snapshot(cmd.flags.Config, tab, width, cmd.height))
	return err
}
