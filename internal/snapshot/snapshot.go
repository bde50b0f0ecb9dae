package snapshot

import (
	"fmt"
	"strings"

	"llm-signal-bot/internal/types"
)

const (
	header      = "Market Snapshot:"
	instruction = "Provide a BUY/SELL/HOLD for **each** symbol with a short reason."
)

// Build serializes quote results into the text block sent to the oracle.
// One line per result in input order, so the output is deterministic for
// a given result sequence.
func Build(results []types.QuoteResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err != "" {
			lines = append(lines, fmt.Sprintf("%s (%s): ERROR → %s", r.Symbol, r.Type, r.Err))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s): price=%s", r.Symbol, r.Type, formatPrice(r.Price)))
	}
	return header + "\n" + strings.Join(lines, "\n") + "\n\n" + instruction
}

func formatPrice(p *float64) string {
	if p == nil {
		return "null"
	}
	return fmt.Sprintf("%g", *p)
}
