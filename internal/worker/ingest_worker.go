// Package worker turns AMQP ingest messages into persisted ledger
// records and periodically exports monthly summaries.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finsight/internal/amqp"
	"finsight/internal/core"
	"finsight/internal/ledger"
)

// SummaryExporter receives the latest month's aggregates, e.g. the
// Google Sheets adapter.
type SummaryExporter interface {
	AppendMonthlySummary(ctx context.Context, summary core.MonthSummary, groups []core.CategoryGroup) error
}

// IngestWorker validates and persists incoming transactions. Returned
// errors make the AMQP consumer requeue the delivery, so only transient
// failures (storage) are returned; permanently bad payloads are logged
// and dropped.
type IngestWorker struct {
	store    ledger.Store
	exporter SummaryExporter
}

func NewIngestWorker(store ledger.Store, exporter SummaryExporter) *IngestWorker {
	return &IngestWorker{store: store, exporter: exporter}
}

// HandleTransactionMessage processes a single ingest message.
func (w *IngestWorker) HandleTransactionMessage(ctx context.Context, msg *amqp.TransactionMessage) error {
	slog.InfoContext(ctx, "Processing transaction message",
		"id", msg.ID,
		"account_id", msg.AccountID)

	cents, err := core.ParseSignedToCents(msg.Amount)
	if err != nil {
		// A bad amount never becomes valid on redelivery; drop it loudly.
		slog.ErrorContext(ctx, "Rejecting message with invalid amount",
			"id", msg.ID,
			"amount", msg.Amount,
			"error", err)
		return nil
	}

	tx := core.Transaction{
		ID:          msg.ID,
		Date:        msg.OccurredAt,
		Amount:      core.Money{Cents: cents},
		Category:    msg.Category,
		Description: msg.Description,
		AccountID:   msg.AccountID,
		AccountName: msg.AccountName,
	}
	if err := tx.Validate(); err != nil {
		slog.ErrorContext(ctx, "Rejecting invalid transaction message",
			"id", msg.ID,
			"error", err)
		return nil
	}

	if msg.AccountName != "" {
		acc := core.Account{ID: msg.AccountID, Name: msg.AccountName}
		if err := w.store.UpsertAccount(ctx, acc); err != nil {
			return fmt.Errorf("upsert account: %w", err)
		}
	}

	if err := w.store.AppendTransaction(ctx, tx); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

// ExportLatestSummary pushes the latest month's summary and category
// breakdown to the configured exporter. A nil exporter is a no-op.
func (w *IngestWorker) ExportLatestSummary(ctx context.Context) error {
	if w.exporter == nil {
		return nil
	}
	txs, err := w.store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	summary, ok := core.SummarizeLatest(txs)
	if !ok {
		slog.InfoContext(ctx, "No transactions to export yet")
		return nil
	}
	groups := core.GroupExpensesLatest(txs)

	if err := w.exporter.AppendMonthlySummary(ctx, summary, groups); err != nil {
		return fmt.Errorf("export monthly summary: %w", err)
	}
	slog.InfoContext(ctx, "Exported monthly summary",
		"month", summary.Month,
		"income_cents", summary.Income.Cents,
		"expense_cents", summary.Expense.Cents)
	return nil
}

// RunExportLoop exports on a fixed interval until the context ends.
func (w *IngestWorker) RunExportLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.ExportLatestSummary(ctx); err != nil {
				slog.ErrorContext(ctx, "Summary export failed", "error", err)
			}
		}
	}
}
