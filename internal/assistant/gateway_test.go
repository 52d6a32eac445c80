package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"finsight/internal/core"
	"finsight/internal/prompt"
)

type stubGenerator struct {
	reply  string
	err    error
	model  string
	system string
	user   string
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, model, system, user string) (string, error) {
	s.calls++
	s.model = model
	s.system = system
	s.user = user
	return s.reply, s.err
}

func newTestGateway(cfg Config, gen generator) *Gateway {
	g := NewGateway(cfg, prompt.NewBuilder(prompt.NewFormatter(prompt.LocaleEN, time.UTC, "AZN")), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if gen != nil {
		g.gen = gen
	}
	return g
}

func sampleTxs() []core.Transaction {
	return []core.Transaction{
		{
			ID:          "t1",
			Date:        time.Date(2025, 11, 6, 14, 0, 0, 0, time.UTC),
			Amount:      core.Money{Cents: -1250},
			Category:    "Food",
			AccountID:   "acc-1",
			AccountName: "Main Card",
			Description: "Lunch",
		},
	}
}

func TestAnalyzeWithoutCredential(t *testing.T) {
	gen := &stubGenerator{reply: "should not be called"}
	g := newTestGateway(Config{}, gen)

	got := g.Analyze(context.Background(), sampleTxs(), "how am I doing?")
	if got != "Please provide a Gemini API key to use this feature." {
		t.Fatalf("expected credential advisory, got %q", got)
	}
	if gen.calls != 0 {
		t.Fatalf("generator must not be called without a credential")
	}
}

func TestAnalyzeWithoutTransactions(t *testing.T) {
	gen := &stubGenerator{reply: "should not be called"}
	g := newTestGateway(Config{APIKey: "k"}, gen)

	got := g.Analyze(context.Background(), nil, "hi")
	if got != "No transaction data to analyze yet." {
		t.Fatalf("expected no-data notice, got %q", got)
	}
	if gen.calls != 0 {
		t.Fatalf("generator must not be called without transactions")
	}
}

func TestAnalyzePassesPromptAndMessage(t *testing.T) {
	gen := &stubGenerator{reply: "spend less on lunch"}
	g := newTestGateway(Config{APIKey: "k", Model: "test-model"}, gen)

	got := g.Analyze(context.Background(), sampleTxs(), "how am I doing?")
	if got != "spend less on lunch" {
		t.Fatalf("expected model reply, got %q", got)
	}
	if gen.calls != 1 {
		t.Fatalf("expected exactly one generator call, got %d", gen.calls)
	}
	if gen.model != "test-model" {
		t.Fatalf("expected configured model, got %q", gen.model)
	}
	if gen.user != "how am I doing?" {
		t.Fatalf("user message not forwarded, got %q", gen.user)
	}
	if !strings.Contains(gen.system, "Main Card") || !strings.Contains(gen.system, "Food") {
		t.Fatalf("system prompt missing ledger content:\n%s", gen.system)
	}
}

func TestAnalyzeDefaultModel(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	g := newTestGateway(Config{APIKey: "k"}, gen)

	g.Analyze(context.Background(), sampleTxs(), "hi")
	if gen.model != defaultModel {
		t.Fatalf("expected default model %q, got %q", defaultModel, gen.model)
	}
}

func TestAnalyzeSurfacesAPIErrorMessage(t *testing.T) {
	gen := &stubGenerator{err: genai.APIError{Code: 429, Message: "quota exceeded"}}
	g := newTestGateway(Config{APIKey: "k"}, gen)

	got := g.Analyze(context.Background(), sampleTxs(), "hi")
	want := "The assistant service returned an error: quota exceeded"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestAnalyzeWrappedAPIError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("call failed: %w", genai.APIError{Code: 400, Message: "invalid request"})}
	g := newTestGateway(Config{APIKey: "k"}, gen)

	got := g.Analyze(context.Background(), sampleTxs(), "hi")
	if !strings.Contains(got, "invalid request") {
		t.Fatalf("expected wrapped API error message surfaced, got %q", got)
	}
}

func TestAnalyzeTransportFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("dial tcp: connection refused")}
	g := newTestGateway(Config{APIKey: "k"}, gen)

	got := g.Analyze(context.Background(), sampleTxs(), "hi")
	want := "Something went wrong while analyzing your transactions. Please try again."
	if got != want {
		t.Fatalf("expected generic retry notice, got %q", got)
	}
}

func TestAnalyzeEmptyReply(t *testing.T) {
	gen := &stubGenerator{reply: ""}
	g := newTestGateway(Config{APIKey: "k"}, gen)

	got := g.Analyze(context.Background(), sampleTxs(), "hi")
	want := "Something went wrong while analyzing your transactions. Please try again."
	if got != want {
		t.Fatalf("expected failure notice for empty reply, got %q", got)
	}
}

func TestAnalyzeRussianFallbacks(t *testing.T) {
	b := prompt.NewBuilder(prompt.NewFormatter(prompt.LocaleRU, time.UTC, "AZN"))
	g := NewGateway(Config{}, b, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got := g.Analyze(context.Background(), sampleTxs(), "привет")
	if got != "Пожалуйста, введите Gemini API ключ для использования этой функции." {
		t.Fatalf("expected localized advisory, got %q", got)
	}
}
