package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"llm-signal-bot/internal/broker/brokerobs"
	"llm-signal-bot/internal/broker/fyers"
	"llm-signal-bot/internal/interfaces"
	"llm-signal-bot/internal/journal"
	"llm-signal-bot/internal/llm"
	"llm-signal-bot/internal/llm/llmobs"
	"llm-signal-bot/internal/logger"
	"llm-signal-bot/internal/quote"
	"llm-signal-bot/internal/store"
	"llm-signal-bot/internal/trace"
)

// initializeSystem initializes env, logger and tracer.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	if cfg.DryRun() {
		logger.Warn(ctx, "Running in DRY_RUN mode - orders will be simulated")
	}
	return cfg, nil
}

func initializeJournal(ctx context.Context, cfg *store.Config) *journal.Journal {
	jrnl := journal.New(cfg.JournalFile)

	if v := os.Getenv("SIGNAL_LOG_RETENTION_DAYS"); v != "" {
		n, _ := strconv.Atoi(v)
		if err := jrnl.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old journals", "error", err)
		}
	}
	return jrnl
}

func initializeQuoter(ctx context.Context, cfg *store.Config) interfaces.QuoteSource {
	switch {
	case cfg.Quote.Source == "KITE" && cfg.Kite.APIKey != "":
		logger.Info(ctx, "Using Kite Connect quote source")
	case cfg.Quote.URL != "" && cfg.Quote.AccessToken != "":
		logger.Info(ctx, "Using REST quote source", "url", cfg.Quote.URL)
	default:
		logger.Warn(ctx, "No quote endpoint configured - using deterministic fallback prices")
	}
	return quote.NewFetcher(cfg)
}

func initializeOracle(ctx context.Context, cfg *store.Config) interfaces.Oracle {
	return llmobs.Wrap(llm.NewOracle(ctx, cfg))
}

func initializeGateway(ctx context.Context, cfg *store.Config) interfaces.OrderGateway {
	gw := fyers.New(cfg.Order.URL, cfg.Order.AccessToken, cfg.DryRun())
	return brokerobs.Wrap(gw)
}

func shutdown(ctx context.Context) {
	if err := trace.Shutdown(ctx); err != nil {
		logger.Warn(ctx, "Tracer shutdown failed", "error", err)
	}
}
