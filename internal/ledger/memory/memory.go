// Package memory is an in-process ledger store used for demo mode and
// tests. Safe for concurrent use.
package memory

import (
	"context"
	"sync"

	"finsight/internal/core"
)

type Store struct {
	mu       sync.Mutex
	accounts map[string]core.Account
	order    []string
	txs      []core.Transaction
	seen     map[string]struct{}
}

func New() *Store {
	return &Store{
		accounts: map[string]core.Account{},
		seen:     map[string]struct{}{},
	}
}

// Seed loads accounts and transactions in one shot, bypassing the
// per-record idempotency bookkeeping only in the sense that it still
// records IDs as seen. Invalid records are rejected as a whole batch.
func Seed(accounts []core.Account, txs []core.Transaction) (*Store, error) {
	s := New()
	ctx := context.Background()
	for _, acc := range accounts {
		if err := s.UpsertAccount(ctx, acc); err != nil {
			return nil, err
		}
	}
	for _, tx := range txs {
		if err := s.AppendTransaction(ctx, tx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// UpsertAccount registers or renames an account.
func (s *Store) UpsertAccount(_ context.Context, acc core.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[acc.ID]; !ok {
		s.order = append(s.order, acc.ID)
	}
	s.accounts[acc.ID] = acc
	return nil
}

// AppendTransaction stores a validated transaction. Records with an
// already-seen ID are dropped silently so redelivery is harmless.
func (s *Store) AppendTransaction(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[tx.ID]; ok {
		return nil
	}
	s.seen[tx.ID] = struct{}{}
	if tx.AccountName == "" {
		if acc, ok := s.accounts[tx.AccountID]; ok {
			tx.AccountName = acc.Name
		}
	}
	s.txs = append(s.txs, tx)
	return nil
}

// ListTransactions returns a copy of the stored records in insertion
// order.
func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, nil
}

// ListAccounts returns accounts in registration order.
func (s *Store) ListAccounts(_ context.Context) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.accounts[id])
	}
	return out, nil
}
