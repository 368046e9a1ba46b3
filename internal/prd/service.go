package prd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"prdgen/internal/model"
	"prdgen/pkg/llm"
)

// UsageRecorder accumulates per-provider request and token counters.
type UsageRecorder interface {
	Record(ctx context.Context, apiName string, day time.Time, tokens int) error
}

type Service struct {
	client    llm.Client
	extractor *llm.Extractor
	usage     UsageRecorder
}

// NewService wires the pipeline. usage may be nil to disable metering.
func NewService(client llm.Client, extractor *llm.Extractor, usage UsageRecorder) *Service {
	return &Service{client: client, extractor: extractor, usage: usage}
}

// Generate runs prompt building, the provider call, extraction and
// normalization for an already validated request.
func (s *Service) Generate(ctx context.Context, requestID string, req model.PrdRequest) (*model.PrdResponse, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	raw, err := s.client.Send(ctx, requestID, prompt)
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) && !upstream.Timeout {
			s.recordUsage(ctx, requestID, 0)
		}
		return nil, err
	}
	s.recordUsage(ctx, requestID, llm.ParseUsage(raw.Body).TotalTokens)

	text, err := s.extractor.Extract(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return Normalize(text)
}

func (s *Service) recordUsage(ctx context.Context, requestID string, tokens int) {
	if s.usage == nil {
		return
	}

	err := s.usage.Record(ctx, s.client.Name(), time.Now().UTC(), tokens)
	if err != nil {
		slog.Warn("error recording api usage", "request_id", requestID, "api", s.client.Name(), "error", err)
	}
}
