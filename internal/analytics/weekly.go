// Package analytics derives chart-ready aggregates from a transaction set:
// the weekday spending distribution against a derived budget limit, and a
// short-horizon balance trend series.
//
// Every function is a pure function of its input; degenerate inputs (no
// income, flat series, empty months) resolve to documented fallbacks and
// never to errors.
package analytics

import (
	"finsight/internal/core"
)

// sentinelWeeklyLimit replaces the derived weekly limit when the month has
// no income, so downstream ratios never divide by zero. It is a guard
// value, not a real budget.
const sentinelWeeklyLimit = 1.0

// DayBucket is the expense total for one weekday of the active month,
// split against the daily limit. All values are in currency units.
type DayBucket struct {
	Spent       float64 // absolute expense total for the weekday
	WithinLimit float64 // portion of Spent up to the daily limit
	Overspend   float64 // portion of Spent above the daily limit
	Remaining   float64 // capacity left under the limit when under it
}

// WeeklyBreakdown is the weekly budget view for the latest month in the
// transaction set. Days are Monday-first.
type WeeklyBreakdown struct {
	Month   core.MonthKey
	Income  core.Money
	Spent   core.Money
	Days    [7]DayBucket

	// Derived limits in currency units. WeeklyLimit is income/4 when the
	// month has income, otherwise the sentinel 1.
	WeeklyLimit float64
	DailyLimit  float64

	// Percentages of income spent and remaining, clamped to [0, 100].
	SpentPercent     float64
	RemainingPercent float64
}

// Weekly computes the weekday spending distribution for the latest month
// present in the set. An empty input yields a zero-valued breakdown with
// the sentinel limits.
func Weekly(txs []core.Transaction) WeeklyBreakdown {
	var b WeeklyBreakdown
	key, ok := core.LatestMonthKey(txs)
	if ok {
		b.Month = key
		s := core.SummarizeMonth(txs, key)
		b.Income = s.Income
		b.Spent = s.Expense
	}

	income := b.Income.Units()
	spent := b.Spent.Units()

	b.WeeklyLimit = sentinelWeeklyLimit
	if income > 0 {
		b.WeeklyLimit = income / 4
	}
	b.DailyLimit = b.WeeklyLimit / 7

	if income > 0 {
		b.SpentPercent = spent / income * 100
		if b.SpentPercent > 100 {
			b.SpentPercent = 100
		}
	}
	b.RemainingPercent = 100 - b.SpentPercent
	if b.RemainingPercent < 0 {
		b.RemainingPercent = 0
	}

	for _, tx := range txs {
		if core.MonthKeyOf(tx.Date) != key || !tx.IsExpense() {
			continue
		}
		// Go weekdays are Sunday-first (Sunday = 0); shift to Monday = 0.
		idx := (int(tx.Date.Weekday()) + 6) % 7
		b.Days[idx].Spent += tx.Amount.Abs().Units()
	}

	for i := range b.Days {
		d := &b.Days[i]
		if d.Spent > b.DailyLimit {
			d.WithinLimit = b.DailyLimit
			d.Overspend = d.Spent - b.DailyLimit
		} else {
			d.WithinLimit = d.Spent
			d.Remaining = b.DailyLimit - d.Spent
		}
	}
	return b
}
