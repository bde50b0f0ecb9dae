package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-signal-bot/internal/broker/fyers"
	"llm-signal-bot/internal/journal"
	"llm-signal-bot/internal/quote"
	"llm-signal-bot/internal/store"
	"llm-signal-bot/internal/types"
)

type stubOracle struct {
	reply string
	err   error
	calls int
}

func (s *stubOracle) Ask(ctx context.Context, system, snapshot string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testConfig(t *testing.T, symbols ...string) *store.Config {
	cfg := &store.Config{
		Mode:        "DRY_RUN",
		Symbols:     symbols,
		JournalFile: filepath.Join(t.TempDir(), "signals.log"),
	}
	cfg.LLM.Provider = "NOOP"
	cfg.LLM.MaxTokens = 600
	cfg.LLM.PromptPath = filepath.Join(t.TempDir(), "missing-prompt.txt")
	cfg.Quote.Source = "REST"
	return cfg
}

func newTestEngine(t *testing.T, cfg *store.Config, oracle *stubOracle) (*Engine, *journal.Journal) {
	jrnl := journal.New(cfg.JournalFile)
	gw := fyers.New(cfg.Order.URL, cfg.Order.AccessToken, cfg.DryRun())
	return New(cfg, quote.NewFetcher(cfg), oracle, gw, jrnl), jrnl
}

func TestRunEndToEndDryRun(t *testing.T) {
	cfg := testConfig(t, "NIFTY50", "OPTION:BANKNIFTY24000CE")
	oracle := &stubOracle{reply: "NIFTY50: BUY - strong momentum. BANKNIFTY24000CE: HOLD."}
	eng, jrnl := newTestEngine(t, cfg, oracle)

	rec := eng.Run(context.Background())

	// first keyword across the whole reply wins
	assert.Equal(t, types.SignalBuy, rec.Signal)
	assert.Equal(t, "dry_run", rec.OrderResponse.Status)
	assert.Equal(t, []string{"NIFTY50", "OPTION:BANKNIFTY24000CE"}, rec.Symbols)
	assert.Equal(t, "NIFTY50", rec.OrderResponse.Payload.Symbol)
	assert.Contains(t, rec.Snapshot, "NIFTY50 (INDEX): price=")
	assert.Contains(t, rec.Snapshot, "OPTION:BANKNIFTY24000CE (OPTION): price=")
	assert.Equal(t, 1, oracle.calls, "exactly one oracle call per run")

	recs, err := jrnl.ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, types.SignalBuy, recs[0].Signal)
	assert.NotEmpty(t, recs[0].RunID)
}

func TestRunOracleFailureStillCompletes(t *testing.T) {
	cfg := testConfig(t, "NIFTY50")
	oracle := &stubOracle{err: errors.New("connection refused")}
	eng, jrnl := newTestEngine(t, cfg, oracle)

	rec := eng.Run(context.Background())

	assert.Contains(t, rec.OracleReply, "ERROR contacting oracle:")
	assert.Equal(t, types.SignalUnknown, rec.Signal)
	assert.Equal(t, "dry_run", rec.OrderResponse.Status)

	recs, err := jrnl.ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestRunLiveModeWithoutCredentials(t *testing.T) {
	cfg := testConfig(t, "NIFTY50")
	cfg.Mode = "LIVE"
	oracle := &stubOracle{reply: "SELL on weakness"}
	eng, _ := newTestEngine(t, cfg, oracle)

	rec := eng.Run(context.Background())

	assert.Equal(t, types.SignalSell, rec.Signal)
	assert.Equal(t, "error", rec.OrderResponse.Status)
	assert.Equal(t, "missing endpoint or credential", rec.OrderResponse.Detail)
}

func TestRunJournalFailureIsSwallowed(t *testing.T) {
	cfg := testConfig(t, "NIFTY50")
	// a directory path makes every append fail
	cfg.JournalFile = t.TempDir()
	oracle := &stubOracle{reply: "HOLD"}
	eng, _ := newTestEngine(t, cfg, oracle)

	rec := eng.Run(context.Background())
	assert.Equal(t, types.SignalHold, rec.Signal)
}

func TestRunFallbackPricesAreStableAcrossRuns(t *testing.T) {
	cfg := testConfig(t, "NIFTY50")
	oracle := &stubOracle{reply: "HOLD"}
	eng, _ := newTestEngine(t, cfg, oracle)

	first := eng.Run(context.Background())
	second := eng.Run(context.Background())
	assert.Equal(t, first.Snapshot, second.Snapshot)
}
