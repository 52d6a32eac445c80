package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"finsight/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finsight.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func tx(id string, when time.Time, cents int64, category string) core.Transaction {
	return core.Transaction{
		ID:        id,
		Date:      when,
		Amount:    core.Money{Cents: cents},
		Category:  category,
		AccountID: "main",
	}
}

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if err := repo.UpsertAccount(ctx, core.Account{ID: "main", Name: "Main Account"}); err != nil {
		t.Fatalf("upsert account: %v", err)
	}

	when := time.Date(2025, 11, 6, 18, 23, 0, 0, time.UTC)
	if err := repo.AppendTransaction(ctx, tx("t1", when, -14000, "Groceries")); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(got))
	}
	if got[0].ID != "t1" || got[0].Amount.Cents != -14000 || got[0].Category != "Groceries" {
		t.Fatalf("round-trip mismatch: %+v", got[0])
	}
	if !got[0].Date.Equal(when) {
		t.Fatalf("expected date %v, got %v", when, got[0].Date)
	}
	if got[0].AccountName != "Main Account" {
		t.Fatalf("expected joined account name, got %q", got[0].AccountName)
	}
}

func TestAppendIgnoresRedelivery(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	repo.UpsertAccount(ctx, core.Account{ID: "main", Name: "Main"})

	when := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := repo.AppendTransaction(ctx, tx("dup", when, -500, "Food")); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	got, _ := repo.ListTransactions(ctx)
	if len(got) != 1 {
		t.Fatalf("expected a single row after redelivery, got %d", len(got))
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	bad := core.Transaction{ID: "x", Amount: core.Money{Cents: -1}, AccountID: "main"}
	if err := repo.AppendTransaction(ctx, bad); err == nil {
		t.Fatalf("expected validation error for zero date")
	}
}

func TestListOrderedByTime(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	repo.UpsertAccount(ctx, core.Account{ID: "main", Name: "Main"})

	base := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	repo.AppendTransaction(ctx, tx("later", base.AddDate(0, 0, 5), -100, "A"))
	repo.AppendTransaction(ctx, tx("earlier", base, -100, "B"))

	got, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "earlier" || got[1].ID != "later" {
		t.Fatalf("expected chronological order, got %+v", got)
	}
}

func TestUpsertAccountRenames(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	repo.UpsertAccount(ctx, core.Account{ID: "main", Name: "Old"})
	repo.UpsertAccount(ctx, core.Account{ID: "main", Name: "New"})

	got, err := repo.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(got) != 1 || got[0].Name != "New" {
		t.Fatalf("expected rename in place, got %+v", got)
	}
}

func TestUnknownAccountFallsBackToID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	when := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)
	if err := repo.AppendTransaction(ctx, tx("t1", when, -100, "Food")); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, _ := repo.ListTransactions(ctx)
	if len(got) != 1 || got[0].AccountName != "main" {
		t.Fatalf("expected account ID fallback for display name, got %+v", got)
	}
}
