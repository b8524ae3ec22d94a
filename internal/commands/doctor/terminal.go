package doctor

import (
	"context"
	"fmt"
)

// SizeFunc reports the terminal size. ok is false when there is no terminal.
type SizeFunc func() (width, height int, ok bool)

// minHeight is the number of rows the dashboard needs to show the calendar
// grid without clipping.
const minHeight = 24

// TerminalCheck checks that stdout is a terminal large enough for the
// dashboard.
type TerminalCheck struct {
	size       SizeFunc
	breakpoint int
}

// NewTerminalCheck creates a terminal check. breakpoint is the configured
// sidebar breakpoint.
func NewTerminalCheck(size SizeFunc, breakpoint int) *TerminalCheck {
	return &TerminalCheck{size: size, breakpoint: breakpoint}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	w, h, ok := c.size()
	if !ok {
		result.add(StatusWarn, "Interactive terminal", "stdout is not a terminal; only 'mintup show' will work")
		return result
	}
	result.add(StatusPass, "Interactive terminal", fmt.Sprintf("%dx%d", w, h))

	if w < c.breakpoint {
		result.add(StatusWarn, "Width", fmt.Sprintf("%d columns is below the sidebar breakpoint (%d); press m to open the menu", w, c.breakpoint))
	} else {
		result.add(StatusPass, "Width", fmt.Sprintf("%d columns", w))
	}

	if h < minHeight {
		result.add(StatusWarn, "Height", fmt.Sprintf("%d rows; at least %d recommended", h, minHeight))
	} else {
		result.add(StatusPass, "Height", fmt.Sprintf("%d rows", h))
	}

	return result
}
