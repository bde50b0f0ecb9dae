package openai

import (
	"context"
	"errors"
	"time"

	"llm-signal-bot/internal/api"
	"llm-signal-bot/internal/trace"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Oracle talks to the OpenAI chat completions API.
type Oracle struct {
	client    *api.Client
	endpoint  string
	model     string
	maxTokens int
}

// New creates an OpenAI-backed oracle.
func New(model string, maxTokens int, apiKey string) *Oracle {
	return &Oracle{
		client: api.NewClient(
			api.WithTimeout(60*time.Second),
			api.WithBearerToken(apiKey),
		),
		endpoint:  defaultEndpoint,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (o *Oracle) Ask(ctx context.Context, system, snapshot string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	body := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": snapshot},
		},
		"max_tokens": o.maxTokens,
	}

	resp, err := o.client.Do(ctx, api.Post(o.endpoint, body))
	if err != nil {
		return "", err
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := resp.DecodeJSON(&r); err != nil {
		return "", err
	}
	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}
	return r.Choices[0].Message.Content, nil
}
