package types

import "encoding/json"

// AssetType tags a classified instrument token.
type AssetType string

const (
	AssetIndex  AssetType = "INDEX"
	AssetEquity AssetType = "EQUITY"
	AssetOption AssetType = "OPTION"
	AssetETF    AssetType = "ETF"
	AssetMF     AssetType = "MF"
)

// Instrument is a raw token plus its derived classification. Immutable
// once classified.
type Instrument struct {
	Token string    `json:"token"`
	Type  AssetType `json:"type"`
	Key   string    `json:"key"`
}

// QuoteResult carries either a price or an error for one instrument,
// never both. A nil Price with an empty Err is a successful fetch whose
// body carried no recognized price field.
type QuoteResult struct {
	Symbol string    `json:"symbol"`
	Type   AssetType `json:"type"`
	Price  *float64  `json:"last_price,omitempty"`
	Err    string    `json:"error,omitempty"`
}

// Signal is the discrete recommendation extracted from the oracle reply.
type Signal string

const (
	SignalBuy     Signal = "BUY"
	SignalSell    Signal = "SELL"
	SignalHold    Signal = "HOLD"
	SignalUnknown Signal = "UNKNOWN"
)

// OrderPayload is built for every run, whether or not an order is sent.
type OrderPayload struct {
	Symbol string `json:"symbol"`
	Signal Signal `json:"signal"`
	Reason string `json:"reason"`
	Ts     int64  `json:"ts"`
}

// OrderResponse is the gateway's soft-failure result. Status is one of
// "dry_run", "error", or whatever status the brokerage itself reported.
// Raw holds the brokerage body verbatim on a live success.
type OrderResponse struct {
	Status  string          `json:"status"`
	Detail  string          `json:"detail,omitempty"`
	Payload *OrderPayload   `json:"payload,omitempty"`
	Raw     json.RawMessage `json:"raw,omitempty"`
}

// RunRecord is the full closure of one pipeline run, appended to the
// journal as a single NDJSON line.
type RunRecord struct {
	RunID         string        `json:"run_id"`
	Timestamp     string        `json:"timestamp"`
	Symbols       []string      `json:"symbols"`
	Snapshot      string        `json:"snapshot"`
	OracleReply   string        `json:"signal_text"`
	Signal        Signal        `json:"parsed_signal"`
	OrderResponse OrderResponse `json:"order_response"`
}
