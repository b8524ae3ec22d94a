// Package fixtures contains the static records rendered by the dashboard.
// Nothing here is created, changed or deleted at runtime; accessors return
// copies so callers cannot modify the package data.
package fixtures

import (
	"slices"
	"time"

	"github.com/dustin/go-humanize"
)

// EventKind classifies calendar events.
type EventKind string

const (
	EventMeeting EventKind = "meeting"
	EventPayment EventKind = "payment"
	EventTask    EventKind = "task"
)

// MemoryKind classifies memory bank entries.
type MemoryKind string

const (
	MemorySubscription MemoryKind = "subscription"
	MemoryContact      MemoryKind = "contact"
	MemoryPreference   MemoryKind = "preference"
)

// MemoryKinds lists memory kinds in filter order.
var MemoryKinds = []MemoryKind{MemorySubscription, MemoryContact, MemoryPreference}

// Expense is one line of the monthly expense breakdown, in whole dollars.
type Expense struct {
	Category string
	Amount   int
}

// Event is a calendar entry. Amount is zero for events without money.
type Event struct {
	Title  string
	Date   time.Time
	Kind   EventKind
	Amount int
}

// Email is a message shown in the communications list.
type Email struct {
	Sender  string
	Subject string
	Preview string
	Date    time.Time
	Read    bool
	Starred bool
}

// Memory is an entry in the memory bank. NextAction is zero when there is
// nothing scheduled.
type Memory struct {
	Kind       MemoryKind
	Detail     string
	Stored     time.Time
	NextAction time.Time
}

// HasNextAction reports whether a follow-up date is set.
func (m Memory) HasNextAction() bool {
	return !m.NextAction.IsZero()
}

// StatCard is a headline figure on the finance view.
type StatCard struct {
	Title   string
	Value   string
	Caption string
}

// FinanceSummary holds the three headline cards of the finance view.
type FinanceSummary struct {
	MonthlySpend  StatCard
	BudgetStatus  StatCard
	UpcomingBills StatCard
}

// Cards returns the summary cards in display order.
func (s FinanceSummary) Cards() []StatCard {
	return []StatCard{s.MonthlySpend, s.BudgetStatus, s.UpcomingBills}
}

func day(year int, month time.Month, d, hour, minute int) time.Time {
	return time.Date(year, month, d, hour, minute, 0, 0, time.Local)
}

var expenses = []Expense{
	{Category: "Housing", Amount: 1500},
	{Category: "Utilities", Amount: 200},
	{Category: "Subscriptions", Amount: 50},
}

var events = []Event{
	{Title: "Business Meeting", Date: day(2025, time.February, 4, 11, 0), Kind: EventMeeting},
	{Title: "Pay Rent", Date: day(2025, time.February, 1, 0, 0), Kind: EventPayment, Amount: 1500},
	{Title: "Cancel Netflix", Date: day(2025, time.February, 15, 0, 0), Kind: EventTask},
}

var emails = []Email{
	{
		Sender:  "Bank of America",
		Subject: "Your Monthly Statement",
		Preview: "Your monthly statement for ending in *4589 is now available...",
		Date:    day(2025, time.February, 1, 9, 15),
		Read:    false,
		Starred: true,
	},
	{
		Sender:  "John Smith",
		Subject: "Project Deadline Update",
		Preview: "Team, I wanted to discuss the upcoming deadline for...",
		Date:    day(2025, time.February, 2, 14, 30),
		Read:    true,
		Starred: false,
	},
}

var memories = []Memory{
	{
		Kind:       MemorySubscription,
		Detail:     "Netflix subscription - $15.99/month",
		Stored:     day(2025, time.January, 15, 0, 0),
		NextAction: day(2025, time.February, 15, 0, 0),
	},
	{
		Kind:   MemoryContact,
		Detail: "Dr. Smith Office - (555) 123-4567",
		Stored: day(2025, time.January, 20, 0, 0),
	},
	{
		Kind:   MemoryPreference,
		Detail: "Always book window seats on flights",
		Stored: day(2025, time.January, 10, 0, 0),
	},
}

// Expenses returns the monthly expense breakdown.
func Expenses() []Expense { return slices.Clone(expenses) }

// Events returns the calendar events in fixture order.
func Events() []Event { return slices.Clone(events) }

// Emails returns the messages in the inbox.
func Emails() []Email { return slices.Clone(emails) }

// Memories returns the memory bank entries.
func Memories() []Memory { return slices.Clone(memories) }

// EventsOn returns the events falling on the given day of the month.
func EventsOn(dayOfMonth int) []Event {
	var out []Event
	for _, e := range events {
		if e.Date.Day() == dayOfMonth {
			out = append(out, e)
		}
	}
	return out
}

// TotalSpend sums the expense breakdown.
func TotalSpend() int {
	total := 0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Summary returns the finance headline cards.
func Summary() FinanceSummary {
	return FinanceSummary{
		MonthlySpend:  StatCard{Title: "Monthly Spend", Value: Money(TotalSpend()), Caption: "This Month"},
		BudgetStatus:  StatCard{Title: "Budget Status", Value: "On Track", Caption: "15% under budget"},
		UpcomingBills: StatCard{Title: "Upcoming Bills", Value: "3", Caption: "Next 7 days"},
	}
}

// Money formats whole dollars, e.g. 1750 as "$1,750".
func Money(amount int) string {
	if amount < 0 {
		return "-$" + humanize.Comma(int64(-amount))
	}
	return "$" + humanize.Comma(int64(amount))
}
