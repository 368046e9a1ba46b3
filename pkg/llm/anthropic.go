package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultAnthropicModel   = "claude-haiku-4-5"
	DefaultAnthropicBaseURL = "https://api.anthropic.com/"
)

type AnthropicClient struct {
	client  *anthropic.Client
	model   string
	timeout time.Duration
}

func NewAnthropicClient(apiKey, model, baseURL string) *AnthropicClient {
	if model == "" {
		model = DefaultAnthropicModel
	}
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &AnthropicClient{client: &client, model: model, timeout: requestTimeout}
}

func (c *AnthropicClient) Name() string {
	return "anthropic"
}

func (c *AnthropicClient) Model() string {
	return c.model
}

type messagesRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []responsesMessage `json:"messages"`
}

// Send posts to the Messages API. It has no JSON response mode, so the JSON
// contract rests on the system instruction alone.
func (c *AnthropicClient) Send(ctx context.Context, requestID string, prompt Prompt) (*RawResponse, error) {
	req := messagesRequest{
		Model:     c.model,
		MaxTokens: maxOutputTokens,
		System:    prompt.System,
		Messages: []responsesMessage{
			{Role: "user", Content: prompt.User},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var raw *RawResponse
	middleware := option.WithMiddleware(func(r *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		res, err := next(r)
		return capture(&raw, res, err)
	})

	err := c.client.Post(ctx, "v1/messages", req, nil, middleware)
	return finishSend(ctx, c.Name(), requestID, raw, err)
}
