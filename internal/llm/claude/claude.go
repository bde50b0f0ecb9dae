package claude

import (
	"context"
	"errors"
	"strings"
	"time"

	"llm-signal-bot/internal/api"
	"llm-signal-bot/internal/trace"
)

const defaultEndpoint = "https://api.anthropic.com/v1/messages"

// Oracle talks to the Anthropic messages API.
type Oracle struct {
	client    *api.Client
	endpoint  string
	model     string
	maxTokens int
}

// New creates a Claude-backed oracle. An empty endpoint selects the
// public Anthropic API; proxies and gateways can override it.
func New(model string, maxTokens int, apiKey, endpoint string) *Oracle {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Oracle{
		client: api.NewClient(
			api.WithTimeout(60*time.Second),
			api.WithHeader("x-api-key", apiKey),
			api.WithHeader("anthropic-version", "2023-06-01"),
		),
		endpoint:  endpoint,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (o *Oracle) Ask(ctx context.Context, system, snapshot string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "claude-api-call")
	defer span.End()

	body := map[string]any{
		"model":      o.model,
		"system":     system,
		"messages":   []map[string]string{{"role": "user", "content": snapshot}},
		"max_tokens": o.maxTokens,
	}

	resp, err := o.client.Do(ctx, api.Post(o.endpoint, body))
	if err != nil {
		return "", err
	}

	var r struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := resp.DecodeJSON(&r); err != nil {
		return "", err
	}

	var parts []string
	for _, c := range r.Content {
		if c.Type == "text" && c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	if len(parts) == 0 {
		return "", errors.New("empty content")
	}
	return strings.Join(parts, "\n"), nil
}
