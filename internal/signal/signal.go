package signal

import (
	"strings"

	"llm-signal-bot/internal/types"
)

// keyword priority: a reply mentioning both BUY and SELL resolves to BUY.
var priority = []types.Signal{types.SignalBuy, types.SignalSell, types.SignalHold}

// Parse extracts a discrete signal from the oracle's free-text reply.
// The match is a case-insensitive substring search in fixed priority
// order; replies with no keyword at all (including sentinel error
// replies) yield UNKNOWN.
func Parse(text string) types.Signal {
	upper := strings.ToUpper(text)
	for _, sig := range priority {
		if strings.Contains(upper, string(sig)) {
			return sig
		}
	}
	return types.SignalUnknown
}
