package llm

import (
	"context"
	"fmt"
	"time"
)

const (
	maxOutputTokens = 1000
	requestTimeout  = 30 * time.Second

	// maxLoggedBodyBytes bounds upstream bodies written to server logs.
	maxLoggedBodyBytes = 4096
)

// Prompt is the fixed system instruction plus the per-request user payload.
type Prompt struct {
	System string
	User   string
}

type RawResponse struct {
	StatusCode int
	Body       string
}

type Client interface {
	Name() string
	Model() string
	Send(ctx context.Context, requestID string, prompt Prompt) (*RawResponse, error)
}

// UpstreamError is returned when the provider answers with a non-2xx status
// or does not answer before the request timeout.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Timeout    bool
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s request timed out", e.Provider)
	}
	return e.Body
}

func truncateBytes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
