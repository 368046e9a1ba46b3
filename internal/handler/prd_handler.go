package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"prdgen/internal/model"
	"prdgen/internal/prd"
	"prdgen/pkg/llm"

	"github.com/gin-gonic/gin"
)

const maxProblemDetailChars = 800

type Generator interface {
	Generate(ctx context.Context, requestID string, req model.PrdRequest) (*model.PrdResponse, error)
}

type PrdHandler struct {
	generator Generator
}

func NewPrdHandler(generator Generator) *PrdHandler {
	return &PrdHandler{generator: generator}
}

func (h *PrdHandler) GeneratePrd(c *gin.Context) {
	id := requestID(c)

	var req model.PrdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body", "request_id", id, "error", err)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{RequestID: id, Error: "invalid request body"})
		return
	}

	if reason := prd.Validate(req); reason != "" {
		slog.Warn("validation failed", "request_id", id, "reason", reason)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{RequestID: id, Error: reason})
		return
	}

	started := time.Now()
	res, err := h.generator.Generate(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, id, err)
		return
	}

	formatted, err := prd.Format(res, req.OutputFormat)
	if err != nil {
		h.respondError(c, id, err)
		return
	}

	slog.Info("ok",
		"request_id", id,
		"latency_ms", time.Since(started).Milliseconds(),
		"idea_len", utf8.RuneCountInString(req.ProductIdea),
		"timeline_weeks", req.TimelineWeeks,
	)

	c.JSON(http.StatusOK, GeneratePrdResponse{PrdResponse: res, Formatted: formatted})
}

func (h *PrdHandler) respondError(c *gin.Context, id string, err error) {
	var upstream *llm.UpstreamError

	switch {
	case errors.As(err, &upstream):
		slog.Error("upstream ai error", "request_id", id, "status", upstream.StatusCode, "timeout", upstream.Timeout)
		respondProblem(c, http.StatusBadGateway, "Upstream AI error", truncateChars(upstream.Error(), maxProblemDetailChars), id)
	case errors.Is(err, prd.ErrMalformedResponse):
		slog.Error("invalid ai response", "request_id", id, "error", err)
		respondProblem(c, http.StatusInternalServerError, "Invalid AI response", "Model returned invalid JSON", id)
	default:
		slog.Error("unexpected error", "request_id", id, "error", err, "canceled", errors.Is(err, context.Canceled))
		respondProblem(c, http.StatusInternalServerError, "Server error", "Unexpected error", id)
	}
}

func respondProblem(c *gin.Context, status int, title, detail, id string) {
	c.Header("Content-Type", "application/problem+json")
	c.JSON(status, ProblemDetails{
		Type:      problemType(status),
		Title:     title,
		Status:    status,
		Detail:    detail,
		RequestID: id,
	})
}

func problemType(status int) string {
	switch status {
	case http.StatusBadGateway:
		return "https://tools.ietf.org/html/rfc9110#section-15.6.3"
	default:
		return "https://tools.ietf.org/html/rfc9110#section-15.6.1"
	}
}

func truncateChars(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
