package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"SYMBOLS", "DRY_RUN", "LOG_FILE", "LLM_PROVIDER", "OPENAI_MODEL",
		"MAX_TOKENS", "OMEGA_PROMPT_PATH", "QUOTE_SOURCE",
		"FYERS_QUOTE_URL", "FYERS_ORDER_URL", "FYERS_ACCESS_TOKEN",
		"KITE_API_KEY", "KITE_ACCESS_TOKEN",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "DRY_RUN", cfg.Mode)
	assert.True(t, cfg.DryRun())
	assert.Equal(t, []string{"NIFTY50"}, cfg.Symbols)
	assert.Equal(t, "signals.log", cfg.JournalFile)
	assert.Equal(t, "OPENAI", cfg.LLM.Provider)
	assert.Equal(t, 600, cfg.LLM.MaxTokens)
	assert.Equal(t, "prompts/omega-fi-prompt.txt", cfg.LLM.PromptPath)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SYMBOLS", "NIFTY50, NSE:RELIANCE ,OPTION:BANKNIFTY24000CE")
	t.Setenv("DRY_RUN", "false")
	t.Setenv("LOG_FILE", "custom.log")
	t.Setenv("MAX_TOKENS", "900")
	t.Setenv("FYERS_QUOTE_URL", "https://quotes.example/api")
	t.Setenv("FYERS_ORDER_URL", "https://orders.example/api")
	t.Setenv("FYERS_ACCESS_TOKEN", "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "LIVE", cfg.Mode)
	assert.False(t, cfg.DryRun())
	assert.Equal(t, []string{"NIFTY50", "NSE:RELIANCE", "OPTION:BANKNIFTY24000CE"}, cfg.Symbols)
	assert.Equal(t, "custom.log", cfg.JournalFile)
	assert.Equal(t, 900, cfg.LLM.MaxTokens)
	assert.Equal(t, "https://quotes.example/api", cfg.Quote.URL)
	assert.Equal(t, "secret", cfg.Quote.AccessToken)
	assert.Equal(t, "secret", cfg.Order.AccessToken)
}

func TestLoadConfigYamlFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: DRY_RUN
symbols: [NIFTY50, ETF:NIFTYBEES]
journal_file: runs.log
llm:
  provider: CLAUDE
  model: claude-sonnet-4-5
  max_tokens: 800
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NIFTY50", "ETF:NIFTYBEES"}, cfg.Symbols)
	assert.Equal(t, "runs.log", cfg.JournalFile)
	assert.Equal(t, "CLAUDE", cfg.LLM.Provider)
	assert.Equal(t, 800, cfg.LLM.MaxTokens)
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbols: [FROMFILE]\n"), 0o644))
	t.Setenv("SYMBOLS", "FROMENV")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"FROMENV"}, cfg.Symbols)
}

func TestValidateRejectsBadMode(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: YOLO\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestParseBoolVariants(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "TRUE", " Yes "} {
		assert.True(t, parseBool(v), "value %q", v)
	}
	for _, v := range []string{"false", "0", "no", ""} {
		assert.False(t, parseBool(v), "value %q", v)
	}
}
