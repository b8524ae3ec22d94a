package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/mintup/mintup/internal/core/dashboard"
)

type TabsCmd struct {
	flags  *Flags
	format string
}

// NewTabsCmd creates a new tabs command
func NewTabsCmd(flags *Flags) *TabsCmd {
	return &TabsCmd{flags: flags}
}

// Register adds the tabs command to the application
func (cmd *TabsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "tabs",
		Usage:       "List dashboard tabs",
		UsageText:   "mintup tabs [options]",
		Description: "Displays a table of the dashboard tabs with their id, sidebar label, heading and jump keys.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

type tabJSON struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Title string   `json:"title"`
	Keys  []string `json:"keys,omitempty"`
}

func (cmd *TabsCmd) run(_ context.Context, c *cli.Command) error {
	keys := cmd.jumpKeys()

	rows := make([]tabJSON, 0, len(dashboard.Tabs()))
	for _, tab := range dashboard.Tabs() {
		rows = append(rows, tabJSON{
			ID:    tab.String(),
			Label: tab.Label(),
			Title: tab.Title(),
			Keys:  keys[tab],
		})
	}

	out := c.Root().Writer

	if cmd.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tLABEL\tTITLE\tKEYS")
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Label, r.Title, joinKeys(r.Keys))
	}
	return w.Flush()
}

// jumpKeys groups the configured jump keys by tab.
func (cmd *TabsCmd) jumpKeys() map[dashboard.Tab][]string {
	byTab := make(map[dashboard.Tab][]string)
	if cmd.flags.Config == nil {
		return byTab
	}
	for k, tab := range cmd.flags.Config.TabKeys() {
		byTab[tab] = append(byTab[tab], k)
	}
	for _, keys := range byTab {
		slices.Sort(keys)
	}
	return byTab
}

func joinKeys(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	return strings.Join(keys, ",")
}
