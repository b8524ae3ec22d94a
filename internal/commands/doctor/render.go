package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/config"
	"github.com/mintup/mintup/internal/core/dashboard"
	"github.com/mintup/mintup/internal/tui"
)

// RenderCheck renders every tab at the given width and reports tabs whose
// frame overflows it. It also checks that the email preview style loads.
type RenderCheck struct {
	config *config.Config
	width  int
}

// NewRenderCheck creates a render check at width columns.
func NewRenderCheck(cfg *config.Config, width int) *RenderCheck {
	return &RenderCheck{config: cfg, width: width}
}

func (c *RenderCheck) Name() string {
	return "Rendering"
}

func (c *RenderCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.add(StatusFail, "Dashboard", "configuration not loaded")
		return result
	}

	for _, tab := range dashboard.Tabs() {
		frame := tui.Snapshot(c.config, tab, c.width, 0)
		if widest := maxLineWidth(frame); widest > c.width {
			result.add(StatusWarn, tab.Label(), fmt.Sprintf("%d columns wide at width %d", widest, c.width))
		} else {
			result.add(StatusPass, tab.Label(), "")
		}
	}

	if err := checkGlamourStyle(c.config.GlamourStyle); err != nil {
		result.add(StatusFail, "Email preview style", err.Error())
	} else {
		result.add(StatusPass, "Email preview style", c.config.GlamourStyle)
	}

	return result
}

func checkGlamourStyle(style string) error {
	opt := glamour.WithStandardStyle(style)
	if style == "auto" {
		opt = glamour.WithAutoStyle()
	}
	_, err := glamour.NewTermRenderer(opt)
	return err
}

func maxLineWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}
