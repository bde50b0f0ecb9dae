// Package llm selects and drives the oracle provider. The pipeline makes
// exactly one oracle call per run; provider failures are folded into the
// reply text so a broken oracle still produces a parseable (UNKNOWN)
// signal downstream.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"llm-signal-bot/internal/interfaces"
	"llm-signal-bot/internal/llm/claude"
	"llm-signal-bot/internal/llm/noop"
	"llm-signal-bot/internal/llm/openai"
	"llm-signal-bot/internal/logger"
	"llm-signal-bot/internal/store"
)

// ErrorMarker prefixes the synthesized reply when the oracle call fails.
const ErrorMarker = "ERROR contacting oracle:"

// defaultSystemPrompt is used when the prompt file cannot be read.
const defaultSystemPrompt = "You are an expert Indian financial market analyst. " +
	"Analyze Index, Stocks, Options, ETFs, Mutual Funds and provide BUY/SELL/HOLD."

// NewOracle builds the configured provider. Unknown providers fall back
// to the noop oracle rather than failing startup.
func NewOracle(ctx context.Context, cfg *store.Config) interfaces.Oracle {
	switch cfg.LLM.Provider {
	case "OPENAI":
		return openai.New(cfg.LLM.Model, cfg.LLM.MaxTokens, os.Getenv("OPENAI_API_KEY"))
	case "CLAUDE":
		return claude.New(cfg.LLM.Model, cfg.LLM.MaxTokens, os.Getenv("CLAUDE_API_KEY"), os.Getenv("CLAUDE_API_ENDPOINT"))
	default:
		logger.Warn(ctx, "No LLM provider configured - using noop oracle (always HOLD)")
		return noop.New()
	}
}

// LoadSystemPrompt reads the system directive from path, falling back to
// the built-in analyst directive when the file is unreadable. A missing
// prompt file never fails the run.
func LoadSystemPrompt(ctx context.Context, path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		logger.Warn(ctx, "Prompt file unreadable, using built-in directive", "path", path, "error", err)
		return defaultSystemPrompt
	}
	return string(b)
}

// AskSafe performs the oracle exchange fail-open: the returned text is
// either the trimmed reply or a sentinel error string, never absent.
func AskSafe(ctx context.Context, o interfaces.Oracle, system, snapshot string) string {
	reply, err := o.Ask(ctx, system, snapshot)
	if err != nil {
		logger.ErrorWithErr(ctx, "Oracle call failed", err)
		return fmt.Sprintf("%s %v", ErrorMarker, err)
	}
	return strings.TrimSpace(reply)
}
