package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"finsight/internal/analytics"
	"finsight/internal/core"
)

type summaryResponse struct {
	Month   string `json:"month"`
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`

	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	NetCents     int64 `json:"net_cents"`
}

type categoryResponse struct {
	Name       string `json:"name"`
	Total      string `json:"total"`
	TotalCents int64  `json:"total_cents"`
}

type dayBucketResponse struct {
	Spent       float64 `json:"spent"`
	WithinLimit float64 `json:"within_limit"`
	Overspend   float64 `json:"overspend"`
	Remaining   float64 `json:"remaining"`
}

type weeklyResponse struct {
	Month            string               `json:"month"`
	IncomeCents      int64                `json:"income_cents"`
	SpentCents       int64                `json:"spent_cents"`
	WeeklyLimit      float64              `json:"weekly_limit"`
	DailyLimit       float64              `json:"daily_limit"`
	SpentPercent     float64              `json:"spent_percent"`
	RemainingPercent float64              `json:"remaining_percent"`
	Days             [7]dayBucketResponse `json:"days"`
}

type trendPointResponse struct {
	Day          string `json:"day"`
	BalanceCents int64  `json:"balance_cents"`
}

type plotPointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type trendResponse struct {
	Series []trendPointResponse `json:"series"`
	Points []plotPointResponse  `json:"points"`
}

type accountResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// cachedJSON serves a rendered endpoint body from the response cache,
// recomputing on a miss.
func (s *Server) cachedJSON(w http.ResponseWriter, r *http.Request, key string, compute func() (any, error)) {
	if body, ok := s.responseCache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	v, err := compute()
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to compute response", "url", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to marshal response", "url", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	body = append(body, '\n')
	s.responseCache.Set(key, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.cachedJSON(w, r, "summary", func() (any, error) {
		txs, err := s.source.ListTransactions(r.Context())
		if err != nil {
			return nil, err
		}
		summary, ok := core.SummarizeLatest(txs)
		if !ok {
			// No data resolves to a null summary, not an error.
			return (*summaryResponse)(nil), nil
		}
		return &summaryResponse{
			Month:        string(summary.Month),
			Label:        s.builder.Formatter().MonthLabel(summary.Month),
			Income:       summary.Income.String(),
			Expense:      summary.Expense.String(),
			Net:          summary.Net.String(),
			IncomeCents:  summary.Income.Cents,
			ExpenseCents: summary.Expense.Cents,
			NetCents:     summary.Net.Cents,
		}, nil
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.cachedJSON(w, r, "categories", func() (any, error) {
		txs, err := s.source.ListTransactions(r.Context())
		if err != nil {
			return nil, err
		}
		groups := core.GroupExpensesLatest(txs)
		out := make([]categoryResponse, 0, len(groups))
		for _, g := range groups {
			out = append(out, categoryResponse{
				Name:       g.Name,
				Total:      g.Total.String(),
				TotalCents: g.Total.Cents,
			})
		}
		return out, nil
	})
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.cachedJSON(w, r, "weekly", func() (any, error) {
		txs, err := s.source.ListTransactions(r.Context())
		if err != nil {
			return nil, err
		}
		b := analytics.Weekly(txs)
		resp := weeklyResponse{
			Month:            string(b.Month),
			IncomeCents:      b.Income.Cents,
			SpentCents:       b.Spent.Cents,
			WeeklyLimit:      b.WeeklyLimit,
			DailyLimit:       b.DailyLimit,
			SpentPercent:     b.SpentPercent,
			RemainingPercent: b.RemainingPercent,
		}
		for i, d := range b.Days {
			resp.Days[i] = dayBucketResponse{
				Spent:       d.Spent,
				WithinLimit: d.WithinLimit,
				Overspend:   d.Overspend,
				Remaining:   d.Remaining,
			}
		}
		return resp, nil
	})
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	width := queryFloat(r, "width", 100)
	height := queryFloat(r, "height", 100)
	key := "trend:" + strconv.FormatFloat(width, 'g', -1, 64) + "x" + strconv.FormatFloat(height, 'g', -1, 64)

	s.cachedJSON(w, r, key, func() (any, error) {
		txs, err := s.source.ListTransactions(r.Context())
		if err != nil {
			return nil, err
		}
		series := analytics.Trend(txs)
		resp := trendResponse{
			Series: make([]trendPointResponse, 0, len(series)),
			Points: make([]plotPointResponse, 0, len(series)),
		}
		for _, p := range series {
			day := ""
			if !p.Day.IsZero() {
				day = p.Day.Format("2006-01-02")
			}
			resp.Series = append(resp.Series, trendPointResponse{
				Day:          day,
				BalanceCents: p.Balance.Cents,
			})
		}
		for _, p := range analytics.NormalizeTrend(series, width, height) {
			resp.Points = append(resp.Points, plotPointResponse{X: p.X, Y: p.Y})
		}
		return resp, nil
	})
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.cachedJSON(w, r, "accounts", func() (any, error) {
		accs, err := s.accounts.ListAccounts(r.Context())
		if err != nil {
			return nil, err
		}
		out := make([]accountResponse, 0, len(accs))
		for _, a := range accs {
			out = append(out, accountResponse{ID: a.ID, Name: a.Name})
		}
		return out, nil
	})
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	txs, err := s.source.ListTransactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.builder.Build(txs)))
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.analyzer == nil {
		http.Error(w, "assistant not configured", http.StatusServiceUnavailable)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16*1024)).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	txs, err := s.source.ListTransactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	reply := s.analyzer.Analyze(r.Context(), txs, req.Message)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func queryFloat(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
