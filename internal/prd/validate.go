package prd

import (
	"strings"
	"unicode/utf8"

	"prdgen/internal/model"
)

const minProductIdeaChars = 30

// Validate returns the reason the first failing check rejects req, or an
// empty string when req is valid.
func Validate(req model.PrdRequest) string {
	if isBlank(req.ProductIdea) {
		return "productIdea is required"
	}
	if isBlank(req.TargetUser) {
		return "targetUser is required"
	}
	if isBlank(req.Problem) {
		return "problem is required"
	}
	if req.TimelineWeeks <= 0 {
		return "timelineWeeks must be greater than 0"
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.ProductIdea)) < minProductIdeaChars {
		return "productIdea is too short"
	}

	switch req.OutputFormat {
	case "", model.OutputFormatJSON, model.OutputFormatJira, model.OutputFormatConfluence, model.OutputFormatBoth:
	default:
		return "outputFormat must be one of json, jira, confluence, both"
	}

	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
