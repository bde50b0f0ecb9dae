package noop

import (
	"context"
)

// Oracle is the fallback used when no LLM provider is configured.
type Oracle struct{}

// New returns an oracle whose reply always parses to HOLD.
func New() *Oracle {
	return &Oracle{}
}

func (o *Oracle) Ask(ctx context.Context, system, snapshot string) (string, error) {
	return "HOLD - no oracle configured", nil
}
