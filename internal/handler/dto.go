package handler

import "prdgen/internal/model"

type GeneratePrdResponse struct {
	*model.PrdResponse
	Formatted *model.PrdFormatted `json:"formatted,omitempty"`
}

type ValidationErrorResponse struct {
	RequestID string `json:"requestId"`
	Error     string `json:"error"`
}

// ProblemDetails follows the RFC 9457 problem document with the request id
// as an extension member.
type ProblemDetails struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	RequestID string `json:"requestId"`
}

type HealthResponse struct {
	Status     string `json:"status"`
	UsageStore string `json:"usageStore"`
}

type UsageResponse struct {
	Api          string `json:"api"`
	Date         string `json:"date"`
	RequestCount int    `json:"requestCount"`
	TokenCount   int    `json:"tokenCount"`
}
