package fyers

import (
	"context"
	"encoding/json"
	"time"

	"llm-signal-bot/internal/api"
	"llm-signal-bot/internal/interfaces"
	"llm-signal-bot/internal/trace"
	"llm-signal-bot/internal/types"
)

const (
	StatusDryRun = "dry_run"
	StatusError  = "error"
)

// Gateway submits orders to a Fyers-style REST endpoint. In dry-run mode
// it never touches the network; in live mode a single POST is attempted
// with no retries - the next scheduled run is the retry mechanism.
type Gateway struct {
	client   *api.Client
	endpoint string
	token    string
	dryRun   bool
}

var _ interfaces.OrderGateway = (*Gateway)(nil)

func New(endpoint, token string, dryRun bool) *Gateway {
	return &Gateway{
		client: api.NewClient(
			api.WithTimeout(10*time.Second),
			api.WithBearerToken(token),
		),
		endpoint: endpoint,
		token:    token,
		dryRun:   dryRun,
	}
}

// PlaceOrder never returns an error: every failure mode maps to a
// response with an "error" status so the run can still be journaled.
func (g *Gateway) PlaceOrder(ctx context.Context, payload types.OrderPayload) types.OrderResponse {
	if g.dryRun {
		return types.OrderResponse{
			Status:  StatusDryRun,
			Detail:  "order not executed",
			Payload: &payload,
		}
	}

	if g.endpoint == "" || g.token == "" {
		return types.OrderResponse{
			Status: StatusError,
			Detail: "missing endpoint or credential",
		}
	}

	ctx, span := trace.StartSpan(ctx, "broker.PlaceOrder")
	defer span.End()

	resp, err := g.client.Do(ctx, api.Post(g.endpoint, payload))
	if err != nil {
		return types.OrderResponse{Status: StatusError, Detail: err.Error()}
	}

	return types.OrderResponse{
		Status: brokerStatus(resp.Body),
		Raw:    json.RawMessage(resp.Body),
	}
}

// brokerStatus surfaces the brokerage's own status field when the body
// carries one; the full body is kept verbatim either way.
func brokerStatus(body []byte) string {
	var probe struct {
		S      string `json:"s"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &probe); err == nil {
		if probe.S != "" {
			return probe.S
		}
		if probe.Status != "" {
			return probe.Status
		}
	}
	return "ok"
}
