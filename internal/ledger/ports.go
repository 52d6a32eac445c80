// Package ledger defines the ports for transaction and account storage.
// The analytics engine consumes a flat, merged slice of transactions and
// does not care which adapter produced it.
package ledger

import (
	"context"

	"finsight/internal/core"
)

// Ports for storage adapters.
type (
	// Source yields the merged transaction history across all accounts,
	// each record carrying its account display name. No ordering is
	// guaranteed; consumers re-sort where ordering matters.
	Source interface {
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	// Writer appends transaction records. Append is idempotent per
	// transaction ID: re-delivering the same record must not duplicate it.
	Writer interface {
		AppendTransaction(ctx context.Context, tx core.Transaction) error
	}

	// AccountReader lists the known accounts.
	AccountReader interface {
		ListAccounts(ctx context.Context) ([]core.Account, error)
	}

	// AccountWriter registers accounts. Upsert by ID: a second call with
	// the same ID updates the display name.
	AccountWriter interface {
		UpsertAccount(ctx context.Context, acc core.Account) error
	}
)

// Store bundles the full storage surface implemented by the sqlite and
// memory adapters.
type Store interface {
	Source
	Writer
	AccountReader
	AccountWriter
}
