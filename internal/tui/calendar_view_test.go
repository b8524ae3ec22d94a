package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid(t *testing.T) {
	grid := monthGrid()

	require.Len(t, grid, 5)
	for _, row := range grid[:4] {
		assert.Len(t, row, calendarColumns)
	}
	assert.Len(t, grid[4], 3)
	assert.Equal(t, 1, grid[0][0].Day)
	assert.Equal(t, 31, grid[4][2].Day)
}

func TestMonthGrid_Events(t *testing.T) {
	titles := map[int][]string{}
	for _, row := range monthGrid() {
		for _, d := range row {
			for _, e := range d.Events {
				titles[d.Day] = append(titles[d.Day], e.Title)
			}
		}
	}

	assert.Equal(t, map[int][]string{
		1:  {"Pay Rent"},
		4:  {"Business Meeting"},
		15: {"Cancel Netflix"},
	}, titles)
}

func TestRenderCalendar(t *testing.T) {
	view := renderCalendar(120)
	assert.Contains(t, view, "Pay Rent")
	assert.Contains(t, view, "31")
}
