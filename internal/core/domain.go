package core

import (
	"errors"
	"strings"
	"time"
)

// CategoryOther is the bucket used when a transaction carries no category
// label. It is part of the aggregation contract, not a display string.
const CategoryOther = "Other"

type (
	Money struct {
		Cents int64
	}

	// Transaction is one dated monetary record. Amounts follow a
	// sign-inclusive convention: Cents >= 0 is income, Cents < 0 is
	// expense. Records are produced by the repository collaborator and
	// are read-only to the aggregation layer.
	Transaction struct {
		ID          string
		Date        time.Time
		Amount      Money
		Category    string // empty means CategoryOther
		Description string
		AccountID   string
		AccountName string
	}

	Account struct {
		ID   string
		Name string
	}
)

var (
	ErrEmptyID      = errors.New("empty transaction id")
	ErrZeroDate     = errors.New("zero transaction date")
	ErrEmptyAccount = errors.New("empty account id")
)

// Validate checks the invariants the ingest boundary must guarantee.
// Aggregation functions assume validated input and never re-check.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	if strings.TrimSpace(t.AccountID) == "" {
		return ErrEmptyAccount
	}
	return nil
}

// IsExpense reports whether the transaction counts as an expense.
// A zero amount is income by convention.
func (t Transaction) IsExpense() bool {
	return t.Amount.Cents < 0
}

// CategoryName returns the category label, substituting the shared
// "Other" bucket for missing labels.
func (t Transaction) CategoryName() string {
	if strings.TrimSpace(t.Category) == "" {
		return CategoryOther
	}
	return t.Category
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyAccount
	}
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("empty account name")
	}
	return nil
}
