package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"prdgen/internal/model"

	"github.com/gin-gonic/gin"
)

type UsageStore interface {
	GetUsage(ctx context.Context, apiName string, day time.Time) (*model.ApiUsage, error)
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   UsageStore
	apiName string
}

// NewHealthHandler takes a nil store when usage metering is disabled.
func NewHealthHandler(store UsageStore, apiName string) *HealthHandler {
	return &HealthHandler{store: store, apiName: apiName}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, HealthResponse{Status: "healthy", UsageStore: "disabled"})
		return
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		slog.Error("usage store ping failed", "request_id", requestID(c), "error", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", UsageStore: "disconnected"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", UsageStore: "connected"})
}

func (h *HealthHandler) GetUsage(c *gin.Context) {
	id := requestID(c)

	if h.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"requestId": id, "error": "Usage metering disabled"})
		return
	}

	day := time.Now().UTC()
	usage, err := h.store.GetUsage(c.Request.Context(), h.apiName, day)
	if err != nil {
		slog.Error("error fetching api usage", "request_id", id, "api", h.apiName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"requestId": id, "error": "Usage store error"})
		return
	}

	res := UsageResponse{Api: h.apiName, Date: day.Format("2006-01-02")}
	if usage != nil {
		res.RequestCount = usage.RequestCount
		res.TokenCount = usage.TokenCount
	}

	c.JSON(http.StatusOK, res)
}
