package instrument

import (
	"strings"

	"llm-signal-bot/internal/types"
)

// Classify maps a raw token to its asset type and canonical key. Prefix
// rules are checked before the bare-colon rule because option and fund
// tokens also contain a colon; the order below is load-bearing.
//
//	OPTION:NIFTY24000CE -> OPTION, NIFTY24000CE
//	ETF:NIFTYBEES       -> ETF, NIFTYBEES
//	MF:ICICIBLUECHIP    -> MF, ICICIBLUECHIP
//	NSE:RELIANCE        -> EQUITY, NSE:RELIANCE (exchange segment kept)
//	NIFTY50             -> INDEX, NIFTY50
func Classify(token string) types.Instrument {
	upper := strings.ToUpper(token)
	switch {
	case strings.HasPrefix(upper, "OPTION:"):
		return types.Instrument{Token: token, Type: types.AssetOption, Key: token[len("OPTION:"):]}
	case strings.HasPrefix(upper, "ETF:"):
		return types.Instrument{Token: token, Type: types.AssetETF, Key: token[len("ETF:"):]}
	case strings.HasPrefix(upper, "MF:"):
		return types.Instrument{Token: token, Type: types.AssetMF, Key: token[len("MF:"):]}
	case strings.Contains(token, ":"):
		return types.Instrument{Token: token, Type: types.AssetEquity, Key: token}
	default:
		return types.Instrument{Token: token, Type: types.AssetIndex, Key: token}
	}
}

// ClassifyAll classifies a symbol list, trimming whitespace and dropping
// empty entries. Order is preserved.
func ClassifyAll(symbols []string) []types.Instrument {
	out := make([]types.Instrument, 0, len(symbols))
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, Classify(s))
	}
	return out
}
