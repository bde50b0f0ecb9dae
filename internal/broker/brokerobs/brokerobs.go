package brokerobs

import (
	"context"

	"llm-signal-bot/internal/interfaces"
	"llm-signal-bot/internal/logger"
	"llm-signal-bot/internal/trace"
	"llm-signal-bot/internal/types"
)

// observableGateway wraps an OrderGateway with logging and tracing.
type observableGateway struct {
	gateway interfaces.OrderGateway
}

var _ interfaces.OrderGateway = (*observableGateway)(nil)

// Wrap wraps an order gateway with observability middleware.
func Wrap(gateway interfaces.OrderGateway) interfaces.OrderGateway {
	return &observableGateway{gateway: gateway}
}

func (og *observableGateway) PlaceOrder(ctx context.Context, payload types.OrderPayload) types.OrderResponse {
	ctx, span := trace.StartSpan(ctx, "order.Place")
	defer span.End()

	logger.Debug(ctx, "Submitting order", "symbol", payload.Symbol, "signal", payload.Signal)

	resp := og.gateway.PlaceOrder(ctx, payload)

	switch resp.Status {
	case "error":
		logger.Warn(ctx, "Order not placed", "symbol", payload.Symbol, "detail", resp.Detail)
	default:
		logger.Info(ctx, "Order result", "symbol", payload.Symbol, "status", resp.Status)
	}
	return resp
}
