package quote

import (
	"context"
	"fmt"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"llm-signal-bot/internal/trace"
	"llm-signal-bot/internal/types"
)

// kiteSource resolves prices through the Zerodha Kite Connect SDK.
// Selected with QUOTE_SOURCE=KITE plus the usual Kite credentials.
type kiteSource struct {
	kc *kiteconnect.Client
}

func newKiteSource(apiKey, accessToken string) *kiteSource {
	kc := kiteconnect.New(apiKey)
	kc.SetAccessToken(accessToken)
	return &kiteSource{kc: kc}
}

func (s *kiteSource) Quote(ctx context.Context, inst types.Instrument) types.QuoteResult {
	_, span := trace.StartSpan(ctx, "quote.kite")
	defer span.End()

	ltp, err := s.kc.GetLTP(inst.Key)
	if err != nil {
		return types.QuoteResult{Symbol: inst.Token, Type: inst.Type, Err: err.Error()}
	}

	q, ok := ltp[inst.Key]
	if !ok {
		return types.QuoteResult{
			Symbol: inst.Token,
			Type:   inst.Type,
			Err:    fmt.Sprintf("no LTP returned for %s", inst.Key),
		}
	}

	price := q.LastPrice
	return types.QuoteResult{Symbol: inst.Token, Type: inst.Type, Price: &price}
}
