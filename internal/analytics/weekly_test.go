package analytics

import (
	"testing"
	"time"

	"finsight/internal/core"
)

func tx(id string, date time.Time, cents int64, category string) core.Transaction {
	return core.Transaction{
		ID:        id,
		Date:      date,
		Amount:    core.Money{Cents: cents},
		Category:  category,
		AccountID: "acc-1",
	}
}

// November 2025: the 3rd is a Monday.
var monday = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func TestWeeklyLimits(t *testing.T) {
	txs := []core.Transaction{
		tx("i", monday, 140000, ""), // income 1400
		tx("e", monday, -10000, "Food"),
	}
	b := Weekly(txs)
	if b.WeeklyLimit != 350 {
		t.Fatalf("expected weekly limit 350, got %v", b.WeeklyLimit)
	}
	if b.DailyLimit != 50 {
		t.Fatalf("expected daily limit 50, got %v", b.DailyLimit)
	}
}

func TestWeeklyZeroIncomeFallback(t *testing.T) {
	txs := []core.Transaction{tx("e", monday, -10000, "Food")} // expense 100, no income
	b := Weekly(txs)
	if b.WeeklyLimit != 1 {
		t.Fatalf("expected sentinel weekly limit 1, got %v", b.WeeklyLimit)
	}
	if b.SpentPercent != 0 || b.RemainingPercent != 100 {
		t.Fatalf("expected 0/100 percentages, got %v/%v", b.SpentPercent, b.RemainingPercent)
	}
}

func TestWeeklyPercentages(t *testing.T) {
	cases := []struct {
		name      string
		income    int64
		expense   int64
		spentPct  float64
		remainPct float64
	}{
		{"under budget", 100000, -25000, 25, 75},
		{"exactly spent", 100000, -100000, 100, 0},
		{"overspent clamps", 100000, -150000, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Weekly([]core.Transaction{
				tx("i", monday, tc.income, ""),
				tx("e", monday, tc.expense, "Food"),
			})
			if b.SpentPercent != tc.spentPct || b.RemainingPercent != tc.remainPct {
				t.Fatalf("expected %v/%v, got %v/%v",
					tc.spentPct, tc.remainPct, b.SpentPercent, b.RemainingPercent)
			}
			if b.SpentPercent+b.RemainingPercent != 100 {
				t.Fatalf("percentages must sum to 100")
			}
		})
	}
}

func TestWeeklyMondayFirstMapping(t *testing.T) {
	// 2025-11-02 is a Sunday, 2025-11-03 a Monday.
	sunday := time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)
	b := Weekly([]core.Transaction{
		tx("mon", monday, -1000, "Food"),
		tx("sun", sunday, -2000, "Food"),
	})
	if b.Days[0].Spent != 10 {
		t.Fatalf("expected Monday bucket 10, got %v", b.Days[0].Spent)
	}
	if b.Days[6].Spent != 20 {
		t.Fatalf("expected Sunday bucket 20, got %v", b.Days[6].Spent)
	}
}

func TestWeeklyBucketsSumToMonthExpense(t *testing.T) {
	txs := []core.Transaction{
		tx("i", monday, 200000, ""),
		tx("a", monday, -1500, "Food"),
		tx("b", monday.AddDate(0, 0, 1), -2500, "Food"),
		tx("c", monday.AddDate(0, 0, 4), -4000, "Transport"),
		tx("d", monday.AddDate(0, 0, 6), -1000, ""),
	}
	b := Weekly(txs)
	var sum float64
	for _, d := range b.Days {
		sum += d.Spent
	}
	if sum != b.Spent.Units() {
		t.Fatalf("bucket sum %v != month expense %v", sum, b.Spent.Units())
	}
}

func TestWeeklyThreeWaySplit(t *testing.T) {
	// Income 2800 -> weekly 700, daily 100. Monday spends 130, Tuesday 40.
	txs := []core.Transaction{
		tx("i", monday, 280000, ""),
		tx("a", monday, -13000, "Food"),
		tx("b", monday.AddDate(0, 0, 1), -4000, "Food"),
	}
	b := Weekly(txs)

	mon := b.Days[0]
	if mon.WithinLimit != 100 || mon.Overspend != 30 || mon.Remaining != 0 {
		t.Fatalf("Monday split expected 100/30/0, got %v/%v/%v",
			mon.WithinLimit, mon.Overspend, mon.Remaining)
	}
	tue := b.Days[1]
	if tue.WithinLimit != 40 || tue.Overspend != 0 || tue.Remaining != 60 {
		t.Fatalf("Tuesday split expected 40/0/60, got %v/%v/%v",
			tue.WithinLimit, tue.Overspend, tue.Remaining)
	}
}

func TestWeeklyIgnoresOlderMonths(t *testing.T) {
	txs := []core.Transaction{
		tx("old", monday.AddDate(0, -1, 0), -99999, "Rent"),
		tx("i", monday, 10000, ""),
	}
	b := Weekly(txs)
	if b.Month != "2025-11" {
		t.Fatalf("expected active month 2025-11, got %q", b.Month)
	}
	if b.Spent.Cents != 0 {
		t.Fatalf("older month expense leaked into active month: %v", b.Spent)
	}
}

func TestWeeklyEmptyInput(t *testing.T) {
	b := Weekly(nil)
	if b.WeeklyLimit != 1 || b.SpentPercent != 0 || b.RemainingPercent != 100 {
		t.Fatalf("unexpected empty-input breakdown: %+v", b)
	}
}
