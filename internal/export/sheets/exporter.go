// Package sheets exports monthly summaries to a Google spreadsheet so
// they can feed an external dashboard.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"finsight/internal/core"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	summarySheet  string
}

// NewFromEnv creates a Sheets client using environment variables.
// Required: GOOGLE_SPREADSHEET_ID plus service account credentials via
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional: GOOGLE_SUMMARY_SHEET_NAME (default "Summary").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	summarySheet := strings.TrimSpace(os.Getenv("GOOGLE_SUMMARY_SHEET_NAME"))
	if summarySheet == "" {
		summarySheet = "Summary"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		summarySheet:  summarySheet,
	}, nil
}

// newSheetsService initializes a Sheets Service using service account
// credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// AppendMonthlySummary writes one row per export: month, income,
// expense, net, followed by "category: total" pairs in breakdown order.
func (c *Client) AppendMonthlySummary(ctx context.Context, summary core.MonthSummary, groups []core.CategoryGroup) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	row := []any{
		string(summary.Month),
		summary.Income.Units(),
		summary.Expense.Units(),
		summary.Net.Units(),
		time.Now().UTC().Format(time.RFC3339),
	}
	for _, g := range groups {
		row = append(row, fmt.Sprintf("%s: %s", g.Name, g.Total))
	}

	rng := fmt.Sprintf("%s!A:A", c.summarySheet)
	vr := &gsheet.ValueRange{Values: [][]any{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append summary row to sheet %s: %w", c.summarySheet, err)
	}

	slog.InfoContext(ctx, "Appended monthly summary to Google Sheets",
		"month", summary.Month,
		"sheet", c.summarySheet,
		"categories", len(groups))
	return nil
}
