package llmobs

import (
	"context"

	"llm-signal-bot/internal/interfaces"
	"llm-signal-bot/internal/logger"
	"llm-signal-bot/internal/trace"
)

// observableOracle wraps an Oracle with logging and tracing.
type observableOracle struct {
	oracle interfaces.Oracle
}

var _ interfaces.Oracle = (*observableOracle)(nil)

// Wrap wraps an oracle with observability middleware.
func Wrap(oracle interfaces.Oracle) interfaces.Oracle {
	return &observableOracle{oracle: oracle}
}

func (oo *observableOracle) Ask(ctx context.Context, system, snapshot string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Ask")
	defer span.End()

	logger.Debug(ctx, "Requesting oracle recommendation", "snapshot_bytes", len(snapshot))

	reply, err := oo.oracle.Ask(ctx, system, snapshot)
	if err != nil {
		logger.ErrorWithErr(ctx, "Oracle request failed", err)
		return "", err
	}

	logger.Info(ctx, "Oracle reply received", "reply_bytes", len(reply))
	return reply, nil
}
