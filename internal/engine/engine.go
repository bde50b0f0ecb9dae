// Package engine runs the pipeline: classify, quote, snapshot, oracle,
// parse, order, journal. Every stage consumes a value the previous stage
// is guaranteed to produce; no stage failure aborts the run.
package engine

import (
	"context"
	"time"

	"llm-signal-bot/internal/instrument"
	"llm-signal-bot/internal/interfaces"
	"llm-signal-bot/internal/journal"
	"llm-signal-bot/internal/llm"
	"llm-signal-bot/internal/logger"
	"llm-signal-bot/internal/news"
	"llm-signal-bot/internal/signal"
	"llm-signal-bot/internal/snapshot"
	"llm-signal-bot/internal/store"
	"llm-signal-bot/internal/trace"
	"llm-signal-bot/internal/types"
)

type Engine struct {
	cfg     *store.Config
	quoter  interfaces.QuoteSource
	oracle  interfaces.Oracle
	gateway interfaces.OrderGateway
	jrnl    *journal.Journal
	news    *news.Service // nil unless enrichment is enabled
	now     func() time.Time
}

func New(cfg *store.Config, quoter interfaces.QuoteSource, oracle interfaces.Oracle, gateway interfaces.OrderGateway, jrnl *journal.Journal) *Engine {
	e := &Engine{
		cfg:     cfg,
		quoter:  quoter,
		oracle:  oracle,
		gateway: gateway,
		jrnl:    jrnl,
		now:     time.Now,
	}
	if cfg.News.Enabled {
		e.news = news.NewService(cfg.News.MaxHeadlines)
	}
	return e
}

// Run executes one complete pipeline pass and returns the run record.
// The record is always produced; the only thing Run can lose is the
// journal line, and then only when the filesystem itself fails.
func (e *Engine) Run(ctx context.Context) types.RunRecord {
	ctx, span := trace.StartSpan(ctx, "engine.Run")
	defer span.End()

	startedAt := e.now().UTC()

	insts := instrument.ClassifyAll(e.cfg.Symbols)
	symbols := make([]string, len(insts))
	for i, inst := range insts {
		symbols[i] = inst.Token
	}
	logger.Info(ctx, "Run started", "symbols", symbols, "mode", e.cfg.Mode)

	// quotes are fetched one by one; a failure for one instrument is
	// recorded in its own result and the loop keeps going
	results := make([]types.QuoteResult, 0, len(insts))
	for _, inst := range insts {
		r := e.quoter.Quote(ctx, inst)
		if r.Err != "" {
			logger.Warn(ctx, "Quote fetch failed", "symbol", inst.Token, "error", r.Err)
		}
		results = append(results, r)
	}

	snap := snapshot.Build(results)
	if e.news != nil {
		if block := e.news.ContextBlock(ctx, insts); block != "" {
			snap = snap + "\n\n" + block
		}
	}

	system := llm.LoadSystemPrompt(ctx, e.cfg.LLM.PromptPath)
	reply := llm.AskSafe(ctx, e.oracle, system, snap)
	sig := signal.Parse(reply)
	logger.Info(ctx, "Signal parsed", "signal", sig)

	primary := ""
	if len(symbols) > 0 {
		primary = symbols[0]
	}
	payload := types.OrderPayload{
		Symbol: primary,
		Signal: sig,
		Reason: reply,
		Ts:     startedAt.Unix(),
	}
	orderResp := e.gateway.PlaceOrder(ctx, payload)

	rec := types.RunRecord{
		RunID:         journal.NewRunID(),
		Timestamp:     startedAt.Format(time.RFC3339),
		Symbols:       symbols,
		Snapshot:      snap,
		OracleReply:   reply,
		Signal:        sig,
		OrderResponse: orderResp,
	}

	// journaling is diagnostic: a failed append never fails the run
	if err := e.jrnl.Append(rec); err != nil {
		logger.Warn(ctx, "Journal append failed", "error", err)
	}

	logger.Info(ctx, "Run completed", "signal", sig, "order_status", orderResp.Status)
	return rec
}
