package prompt

import (
	"strings"
	"testing"
	"time"

	"finsight/internal/core"
)

func testBuilder() Builder {
	return NewBuilder(NewFormatter(LocaleEN, time.UTC, "AZN"))
}

func tx(id string, date time.Time, cents int64, category, account, desc string) core.Transaction {
	return core.Transaction{
		ID:          id,
		Date:        date,
		Amount:      core.Money{Cents: cents},
		Category:    category,
		Description: desc,
		AccountID:   "acc-1",
		AccountName: account,
	}
}

func TestBuildEmptyInput(t *testing.T) {
	b := testBuilder()
	if got := b.Build(nil); got != "No transactions to analyze yet." {
		t.Fatalf("expected fixed no-data notice, got %q", got)
	}
}

func TestBuildLedgerLine(t *testing.T) {
	when := time.Date(2025, 11, 6, 14, 5, 0, 0, time.UTC)
	out := testBuilder().Build([]core.Transaction{
		tx("t1", when, -1250, "Food", "Main Card", "Lunch"),
	})
	want := "06.11 14:05 | Main Card | Food | -12.50 AZN | Lunch"
	if !strings.Contains(out, want) {
		t.Fatalf("expected line %q in prompt:\n%s", want, out)
	}
}

func TestBuildSortsAscendingAndFiltersMonth(t *testing.T) {
	nov := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)
	out := testBuilder().Build([]core.Transaction{
		tx("late", nov.AddDate(0, 0, 5), -100, "B", "Card", "later"),
		tx("old", nov.AddDate(0, -1, 0), -100, "X", "Card", "october only"),
		tx("early", nov, -100, "A", "Card", "earlier"),
	})
	if strings.Contains(out, "october only") {
		t.Fatalf("previous month leaked into prompt:\n%s", out)
	}
	if strings.Index(out, "earlier") > strings.Index(out, "later") {
		t.Fatalf("ledger not sorted ascending:\n%s", out)
	}
}

func TestBuildSignFormatting(t *testing.T) {
	when := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	out := testBuilder().Build([]core.Transaction{
		tx("inc", when, 180000, "Salary", "Main Card", "salary"),
	})
	if !strings.Contains(out, "+1800.00 AZN") {
		t.Fatalf("expected explicit + sign for income:\n%s", out)
	}
}

func TestBuildContainsFourTasks(t *testing.T) {
	when := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	for _, locale := range []string{LocaleEN, LocaleRU} {
		b := NewBuilder(NewFormatter(locale, time.UTC, "AZN"))
		out := b.Build([]core.Transaction{tx("t", when, -100, "Food", "Card", "x")})
		for _, marker := range []string{"1)", "2)", "3)", "4)"} {
			if !strings.Contains(out, marker) {
				t.Fatalf("locale %s: missing task %s:\n%s", locale, marker, out)
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	when := time.Date(2025, 11, 6, 14, 5, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx("a", when, -1250, "Food", "Main Card", "Lunch"),
		tx("b", when.Add(time.Hour), 5000, "", "Savings", "Transfer"),
	}
	b := testBuilder()
	if b.Build(txs) != b.Build(txs) {
		t.Fatalf("prompt must be deterministic for the same input")
	}
}

func TestBuildMissingCategoryUsesOtherBucket(t *testing.T) {
	when := time.Date(2025, 11, 6, 14, 5, 0, 0, time.UTC)
	out := testBuilder().Build([]core.Transaction{
		tx("t", when, -100, "", "Card", "x"),
	})
	if !strings.Contains(out, "| "+core.CategoryOther+" |") {
		t.Fatalf("expected %q bucket in ledger:\n%s", core.CategoryOther, out)
	}
}

func TestMonthLabel(t *testing.T) {
	cases := []struct {
		locale string
		key    core.MonthKey
		want   string
	}{
		{LocaleEN, "2025-11", "November 2025"},
		{LocaleRU, "2025-11", "ноябрь 2025 г."},
		{LocaleEN, "2025-01", "January 2025"},
		{LocaleEN, "bogus", "bogus"}, // malformed keys fall through
	}
	for i, tc := range cases {
		f := NewFormatter(tc.locale, time.UTC, "AZN")
		if got := f.MonthLabel(tc.key); got != tc.want {
			t.Fatalf("case %d expected %q, got %q", i, tc.want, got)
		}
	}
}

func TestFormatterTimeZone(t *testing.T) {
	baku := time.FixedZone("UTC+4", 4*3600)
	f := NewFormatter(LocaleEN, baku, "AZN")
	utc := time.Date(2025, 11, 6, 22, 30, 0, 0, time.UTC)
	if got := f.DateTime(utc); got != "07.11 02:30" {
		t.Fatalf("expected zone-shifted rendering, got %q", got)
	}
}
