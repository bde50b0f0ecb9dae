package interfaces

import (
	"context"

	"llm-signal-bot/internal/types"
)

// Oracle produces a free-text recommendation for a market snapshot.
// Implementations return the raw reply text; transport failures surface
// as errors and are converted to a sentinel reply by the engine.
type Oracle interface {
	Ask(ctx context.Context, system, snapshot string) (string, error)
}

// QuoteSource resolves a price for a classified instrument. Quote never
// fails the run: transport and decode problems land in QuoteResult.Err.
type QuoteSource interface {
	Quote(ctx context.Context, inst types.Instrument) types.QuoteResult
}

// OrderGateway submits an order payload. PlaceOrder always returns a
// response value; failures are encoded in its Status/Detail fields.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, payload types.OrderPayload) types.OrderResponse
}
