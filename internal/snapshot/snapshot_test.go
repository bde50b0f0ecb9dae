package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"llm-signal-bot/internal/types"
)

func fp(v float64) *float64 { return &v }

func TestBuildFormatsLines(t *testing.T) {
	results := []types.QuoteResult{
		{Symbol: "NIFTY50", Type: types.AssetIndex, Price: fp(1234.5)},
		{Symbol: "NSE:RELIANCE", Type: types.AssetEquity, Err: "HTTP 429: rate limited"},
		{Symbol: "ETF:NIFTYBEES", Type: types.AssetETF},
	}

	out := Build(results)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Market Snapshot:", lines[0])
	assert.Equal(t, "NIFTY50 (INDEX): price=1234.5", lines[1])
	assert.Equal(t, "NSE:RELIANCE (EQUITY): ERROR → HTTP 429: rate limited", lines[2])
	assert.Equal(t, "ETF:NIFTYBEES (ETF): price=null", lines[3])
	assert.True(t, strings.HasSuffix(out, "Provide a BUY/SELL/HOLD for **each** symbol with a short reason."))
}

func TestBuildPreservesInputOrder(t *testing.T) {
	results := []types.QuoteResult{
		{Symbol: "B", Type: types.AssetIndex, Price: fp(2)},
		{Symbol: "A", Type: types.AssetIndex, Price: fp(1)},
	}
	out := Build(results)
	assert.Less(t, strings.Index(out, "B (INDEX)"), strings.Index(out, "A (INDEX)"))
}

func TestBuildDeterministic(t *testing.T) {
	results := []types.QuoteResult{
		{Symbol: "NIFTY50", Type: types.AssetIndex, Price: fp(1100.25)},
		{Symbol: "OPTION:BANKNIFTY24000CE", Type: types.AssetOption, Err: "timeout"},
	}
	assert.Equal(t, Build(results), Build(results))
}
