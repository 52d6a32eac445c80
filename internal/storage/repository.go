// Package storage is the SQLite-backed ledger store. Timestamps are
// persisted as RFC 3339 text so chronological and lexicographic order
// coincide.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finsight/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// UpsertAccount implements ledger.AccountWriter.
func (r *SQLiteRepository) UpsertAccount(ctx context.Context, acc core.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name`,
		acc.ID, acc.Name)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

// AppendTransaction implements ledger.Writer. Redelivered IDs are
// ignored so message-queue at-least-once delivery stays safe.
func (r *SQLiteRepository) AppendTransaction(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, account_id, occurred_at, amount_cents, category, description)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		tx.ID, tx.AccountID, tx.Date.UTC().Format(time.RFC3339), tx.Amount.Cents, tx.Category, tx.Description)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		slog.InfoContext(ctx, "Transaction saved to SQLite",
			"id", tx.ID,
			"account_id", tx.AccountID,
			"amount_cents", tx.Amount.Cents,
			"category", tx.CategoryName())
	}
	return nil
}

// ListTransactions implements ledger.Source. Account display names are
// joined in; records for unknown accounts fall back to the account ID.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.account_id, COALESCE(a.name, t.account_id), t.occurred_at, t.amount_cents, t.category, t.description
		 FROM transactions t
		 LEFT JOIN accounts a ON a.id = t.account_id
		 ORDER BY t.occurred_at, t.id`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			tx         core.Transaction
			occurredAt string
			cents      int64
		)
		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.AccountName, &occurredAt, &cents, &tx.Category, &tx.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		when, err := time.Parse(time.RFC3339, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse occurred_at for %s: %w", tx.ID, err)
		}
		tx.Date = when
		tx.Amount = core.Money{Cents: cents}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// ListAccounts implements ledger.AccountReader.
func (r *SQLiteRepository) ListAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []core.Account
	for rows.Next() {
		var acc core.Account
		if err := rows.Scan(&acc.ID, &acc.Name); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return out, nil
}
