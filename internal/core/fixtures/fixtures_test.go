package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	s := Summary()

	assert.Equal(t, 1750, TotalSpend())
	assert.Equal(t, "$1,750", s.MonthlySpend.Value)
	assert.Equal(t, "This Month", s.MonthlySpend.Caption)
	assert.Equal(t, "On Track", s.BudgetStatus.Value)
	assert.Equal(t, "15% under budget", s.BudgetStatus.Caption)
	assert.Equal(t, "3", s.UpcomingBills.Value)
	assert.Equal(t, "Next 7 days", s.UpcomingBills.Caption)

	cards := s.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, "Monthly Spend", cards[0].Title)
	assert.Equal(t, "Upcoming Bills", cards[2].Title)
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{50, "$50"},
		{1500, "$1,500"},
		{1234567, "$1,234,567"},
		{-200, "-$200"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
}

func TestEventsOn(t *testing.T) {
	tests := []struct {
		day   int
		title string
	}{
		{1, "Pay Rent"},
		{4, "Business Meeting"},
		{15, "Cancel Netflix"},
	}
	for _, tt := range tests {
		got := EventsOn(tt.day)
		require.Len(t, got, 1, "day %d", tt.day)
		assert.Equal(t, tt.title, got[0].Title)
	}

	for _, d := range []int{2, 3, 14, 16, 31} {
		assert.Empty(t, EventsOn(d), "day %d", d)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	e := Expenses()
	e[0].Amount = 0
	assert.Equal(t, 1500, Expenses()[0].Amount)

	m := Memories()
	m[0].Detail = "changed"
	assert.Equal(t, "Netflix subscription - $15.99/month", Memories()[0].Detail)
}

func TestMemoryNextAction(t *testing.T) {
	m := Memories()
	require.Len(t, m, 3)

	assert.True(t, m[0].HasNextAction())
	assert.False(t, m[1].HasNextAction())
	assert.False(t, m[2].HasNextAction())
}

func TestEmails(t *testing.T) {
	got := Emails()
	require.Len(t, got, 2)

	assert.Equal(t, "Bank of America", got[0].Sender)
	assert.False(t, got[0].Read)
	assert.True(t, got[0].Starred)
	assert.Equal(t, "John Smith", got[1].Sender)
	assert.True(t, got[1].Read)
}
