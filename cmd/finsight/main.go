package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"finsight/internal/assistant"
	"finsight/internal/config"
	"finsight/internal/demo"
	apphttp "finsight/internal/http"
	"finsight/internal/ledger"
	mem "finsight/internal/ledger/memory"
	"finsight/internal/prompt"
	"finsight/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	loc := cfg.Location()

	var (
		source   ledger.Source
		accounts ledger.AccountReader
	)

	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		source, accounts = repo, repo
		logger.Info("Initialized SQLite backend", "path", cfg.SQLiteDBPath)
	default:
		scenario := demo.FromName(cfg.DemoScenario)
		store, err := mem.Seed(demo.Accounts(), demo.Generate(scenario, loc))
		if err != nil {
			logger.Error("Failed to seed demo ledger", "error", err)
			os.Exit(1)
		}
		source, accounts = store, store
		logger.Info("Initialized memory backend with demo data", "scenario", cfg.DemoScenario)
	}

	builder := prompt.NewBuilder(prompt.NewFormatter(cfg.Locale, loc, cfg.Currency))
	gateway := assistant.NewGateway(assistant.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	}, builder, logger)

	srv := apphttp.NewServer(":"+cfg.Port, source, accounts, gateway, builder)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second // assistant calls can be slow
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting finsight server", "port", cfg.Port, "backend", cfg.DataBackend, "locale", cfg.Locale)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
