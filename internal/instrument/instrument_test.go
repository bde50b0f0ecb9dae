package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"llm-signal-bot/internal/types"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		token    string
		wantType types.AssetType
		wantKey  string
	}{
		{"OPTION:NIFTY", types.AssetOption, "NIFTY"},
		{"ETF:NIFTYBEES", types.AssetETF, "NIFTYBEES"},
		{"MF:ICICIBLUECHIP", types.AssetMF, "ICICIBLUECHIP"},
		{"NSE:RELIANCE", types.AssetEquity, "NSE:RELIANCE"},
		{"NIFTY50", types.AssetIndex, "NIFTY50"},
		// prefix rules win over the bare-colon rule
		{"OPTION:BANKNIFTY24000CE", types.AssetOption, "BANKNIFTY24000CE"},
		// prefixes are case-insensitive but the key keeps original casing
		{"option:NiftyWeekly", types.AssetOption, "NiftyWeekly"},
		{"etf:goldbees", types.AssetETF, "goldbees"},
		// colon anywhere else means an exchange-segment equity token
		{"BSE:500325", types.AssetEquity, "BSE:500325"},
	}
	for _, tt := range tests {
		inst := Classify(tt.token)
		assert.Equal(t, tt.wantType, inst.Type, "token %q", tt.token)
		assert.Equal(t, tt.wantKey, inst.Key, "token %q", tt.token)
		assert.Equal(t, tt.token, inst.Token)
	}
}

func TestClassifyAllFiltersEmpties(t *testing.T) {
	insts := ClassifyAll([]string{" NIFTY50 ", "", "  ", "NSE:TCS"})
	assert.Len(t, insts, 2)
	assert.Equal(t, "NIFTY50", insts[0].Token)
	assert.Equal(t, "NSE:TCS", insts[1].Token)
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	symbols := []string{"NIFTY50", "OPTION:BANKNIFTY24000CE", "ETF:NIFTYBEES"}
	insts := ClassifyAll(symbols)
	for i, inst := range insts {
		assert.Equal(t, symbols[i], inst.Token)
	}
}
