package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintup/mintup/internal/core/config"
)

func statuses(r Result) map[string]Status {
	out := make(map[string]Status, len(r.Items))
	for _, item := range r.Items {
		out[item.Label] = item.Status
	}
	return out
}

func TestConfigCheck_Valid(t *testing.T) {
	cfg := config.DefaultConfig()
	result := NewConfigCheck(&cfg, "").Run(context.Background())

	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusPass, result.Items[0].Status)
}

func TestConfigCheck_ErrorsAndWarnings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GlamourStyle = "neon"
	delete(cfg.Keybindings, "6")

	got := statuses(NewConfigCheck(&cfg, "").Run(context.Background()))

	assert.Equal(t, StatusFail, got["glamour_style"])
	assert.Equal(t, StatusWarn, got["Keybindings (memory)"])
}

func TestConfigCheck_NotLoaded(t *testing.T) {
	result := NewConfigCheck(nil, "").Run(context.Background())
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusFail, result.Items[0].Status)
}

func TestTerminalCheck(t *testing.T) {
	tests := []struct {
		name string
		size SizeFunc
		want map[string]Status
	}{
		{
			name: "no terminal",
			size: func() (int, int, bool) { return 0, 0, false },
			want: map[string]Status{"Interactive terminal": StatusWarn},
		},
		{
			name: "roomy",
			size: func() (int, int, bool) { return 160, 50, true },
			want: map[string]Status{"Interactive terminal": StatusPass, "Width": StatusPass, "Height": StatusPass},
		},
		{
			name: "narrow and short",
			size: func() (int, int, bool) { return 80, 20, true },
			want: map[string]Status{"Interactive terminal": StatusPass, "Width": StatusWarn, "Height": StatusWarn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewTerminalCheck(tt.size, config.DefaultSidebarBreakpoint).Run(context.Background())
			assert.Equal(t, tt.want, statuses(result))
		})
	}
}

func TestRenderCheck(t *testing.T) {
	cfg := config.DefaultConfig()
	result := NewRenderCheck(&cfg, 120).Run(context.Background())

	got := statuses(result)
	assert.Len(t, got, 7)
	assert.Equal(t, StatusPass, got["Email preview style"])
	assert.Equal(t, StatusPass, got["Finance"])
}

func TestRenderCheck_UnknownStyle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GlamourStyle = "neon"

	got := statuses(NewRenderCheck(&cfg, 120).Run(context.Background()))
	assert.Equal(t, StatusFail, got["Email preview style"])
}

func TestRunAllAndSummary(t *testing.T) {
	cfg := config.DefaultConfig()
	results := RunAll(context.Background(), []Check{
		NewConfigCheck(&cfg, ""),
		NewTerminalCheck(func() (int, int, bool) { return 80, 40, true }, 100),
	})

	require.Len(t, results, 2)
	assert.Equal(t, "pass", results[0].Items[0].StatusStr)

	passed, warned, failed := Summary(results)
	assert.Equal(t, 3, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 0, failed)
}
