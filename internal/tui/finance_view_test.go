package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderExpenses_PlainDollars(t *testing.T) {
	view := renderExpenses(80)

	assert.Contains(t, view, "$1500")
	assert.NotContains(t, view, "$1,500")
	assert.Contains(t, view, "$200")
	assert.Contains(t, view, "$50")
}

func TestRenderFinance_SummaryGroupsDigits(t *testing.T) {
	view := renderFinance(100)

	assert.Contains(t, view, "$1,750")
	assert.Contains(t, view, "$1500")
}
