package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultOpenAIModel   = "gpt-5.2"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1/"
)

type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &OpenAIClient{client: &client, model: model, timeout: requestTimeout}
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

func (c *OpenAIClient) Model() string {
	return c.model
}

type responsesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesRequest struct {
	Model           string             `json:"model"`
	MaxOutputTokens int                `json:"max_output_tokens"`
	Input           []responsesMessage `json:"input"`
	Text            struct {
		Format struct {
			Type string `json:"type"`
		} `json:"format"`
	} `json:"text"`
}

func (c *OpenAIClient) Send(ctx context.Context, requestID string, prompt Prompt) (*RawResponse, error) {
	req := responsesRequest{
		Model:           c.model,
		MaxOutputTokens: maxOutputTokens,
		Input: []responsesMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
	}
	req.Text.Format.Type = "json_object"

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var raw *RawResponse
	err := c.client.Post(ctx, "responses", req, nil, option.WithMiddleware(captureResponse(&raw)))
	return finishSend(ctx, c.Name(), requestID, raw, err)
}

// captureResponse keeps a copy of the provider's status and body so that the
// caller sees the envelope exactly as sent, independent of SDK decoding.
func captureResponse(dst **RawResponse) option.Middleware {
	return func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		res, err := next(req)
		return capture(dst, res, err)
	}
}

func capture(dst **RawResponse, res *http.Response, err error) (*http.Response, error) {
	if err != nil {
		return res, err
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return nil, err
	}
	res.Body = io.NopCloser(bytes.NewReader(body))

	*dst = &RawResponse{StatusCode: res.StatusCode, Body: string(body)}
	return res, nil
}

func finishSend(ctx context.Context, provider, requestID string, raw *RawResponse, err error) (*RawResponse, error) {
	if raw == nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Error("upstream request timed out", "request_id", requestID, "provider", provider)
			return nil, &UpstreamError{Provider: provider, Timeout: true}
		}
		if err == nil {
			err = errors.New("empty response")
		}
		return nil, fmt.Errorf("%s request failed: %w", provider, err)
	}

	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		slog.Error("upstream returned non-success status",
			"request_id", requestID,
			"provider", provider,
			"status", raw.StatusCode,
			"body", truncateBytes(raw.Body, maxLoggedBodyBytes),
		)
		return nil, &UpstreamError{Provider: provider, StatusCode: raw.StatusCode, Body: raw.Body}
	}

	return raw, nil
}
