// Package assistant calls an external text-generation model with a
// rendered transaction prompt and a user message. Every failure mode is
// converted to a user-facing text; the gateway never returns an error.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"finsight/internal/core"
	"finsight/internal/prompt"
)

// Config carries the credential and model name for the Gemini backend.
// An empty APIKey disables the gateway: Analyze short-circuits with a
// fixed advisory instead of constructing a partial request.
type Config struct {
	APIKey string
	Model  string
}

const defaultModel = "gemini-2.0-flash"

var fallbacks = map[string]struct {
	noCredential string
	noData       string
	apiError     string
	transport    string
}{
	prompt.LocaleEN: {
		noCredential: "Please provide a Gemini API key to use this feature.",
		noData:       "No transaction data to analyze yet.",
		apiError:     "The assistant service returned an error: %s",
		transport:    "Something went wrong while analyzing your transactions. Please try again.",
	},
	prompt.LocaleRU: {
		noCredential: "Пожалуйста, введите Gemini API ключ для использования этой функции.",
		noData:       "Пока нет данных по транзакциям для анализа.",
		apiError:     "Ошибка при обращении к ИИ: %s",
		transport:    "Произошла ошибка при анализе транзакций с помощью ИИ. Попробуйте снова.",
	},
}

// generator is the seam between the gateway logic and the Gemini SDK.
type generator interface {
	Generate(ctx context.Context, model, system, user string) (string, error)
}

type geminiGenerator struct {
	apiKey string
}

func (g geminiGenerator) Generate(ctx context.Context, model, system, user string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: user}},
		},
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Gateway produces a model reply for a user message grounded in the
// latest month of transactions. Calls are at-most-once: no retry, no
// streaming.
type Gateway struct {
	cfg     Config
	builder prompt.Builder
	gen     generator
	logger  *slog.Logger
}

func NewGateway(cfg Config, builder prompt.Builder, logger *slog.Logger) *Gateway {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		cfg:     cfg,
		builder: builder,
		gen:     geminiGenerator{apiKey: cfg.APIKey},
		logger:  logger,
	}
}

// Analyze returns the model's reply, or a fixed fallback text when the
// call cannot or should not be made. It never returns an error.
func (g *Gateway) Analyze(ctx context.Context, txs []core.Transaction, userMessage string) string {
	fb := fallbacks[g.builder.Locale()]

	if g.cfg.APIKey == "" {
		return fb.noCredential
	}
	if len(txs) == 0 {
		return fb.noData
	}

	system := g.builder.Build(txs)

	reply, err := g.gen.Generate(ctx, g.cfg.Model, system, userMessage)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			g.logger.Error("assistant API error", "code", apiErr.Code, "message", apiErr.Message)
			return fmt.Sprintf(fb.apiError, apiErr.Message)
		}
		g.logger.Error("assistant call failed", "error", err)
		return fb.transport
	}
	if reply == "" {
		g.logger.Warn("assistant returned empty reply", "model", g.cfg.Model)
		return fb.transport
	}
	return reply
}
