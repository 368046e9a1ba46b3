package prd

import (
	"strings"
	"testing"

	"prdgen/internal/model"

	"github.com/go-playground/assert/v2"
)

func validRequest() model.PrdRequest {
	return model.PrdRequest{
		ProductIdea:   "A mobile app that matches dog owners with nearby walkers",
		TargetUser:    "Busy dog owners in cities",
		Problem:       "Owners cannot find trusted walkers on short notice",
		Constraints:   []string{"iOS only"},
		TimelineWeeks: 8,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *model.PrdRequest)
		want   string
	}{
		{name: "valid", mutate: func(r *model.PrdRequest) {}, want: ""},
		{name: "blank productIdea", mutate: func(r *model.PrdRequest) { r.ProductIdea = "   " }, want: "productIdea is required"},
		{name: "blank targetUser", mutate: func(r *model.PrdRequest) { r.TargetUser = "" }, want: "targetUser is required"},
		{name: "blank problem", mutate: func(r *model.PrdRequest) { r.Problem = "\t\n" }, want: "problem is required"},
		{name: "zero timeline", mutate: func(r *model.PrdRequest) { r.TimelineWeeks = 0 }, want: "timelineWeeks must be greater than 0"},
		{name: "negative timeline", mutate: func(r *model.PrdRequest) { r.TimelineWeeks = -3 }, want: "timelineWeeks must be greater than 0"},
		{name: "short productIdea", mutate: func(r *model.PrdRequest) { r.ProductIdea = "   too short idea   " }, want: "productIdea is too short"},
		{name: "29 chars after trim", mutate: func(r *model.PrdRequest) { r.ProductIdea = "  " + strings.Repeat("a", 29) + "  " }, want: "productIdea is too short"},
		{name: "30 chars after trim", mutate: func(r *model.PrdRequest) { r.ProductIdea = "  " + strings.Repeat("a", 30) + "  " }, want: ""},
		{name: "multibyte counted by character", mutate: func(r *model.PrdRequest) { r.ProductIdea = strings.Repeat("가", 30) }, want: ""},
		{name: "nil constraints allowed", mutate: func(r *model.PrdRequest) { r.Constraints = nil }, want: ""},
		{name: "known outputFormat", mutate: func(r *model.PrdRequest) { r.OutputFormat = model.OutputFormatBoth }, want: ""},
		{name: "unknown outputFormat", mutate: func(r *model.PrdRequest) { r.OutputFormat = "pdf" }, want: "outputFormat must be one of json, jira, confluence, both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Equal(t, tt.want, Validate(req))
		})
	}
}

func TestValidateReportsFirstFailure(t *testing.T) {
	req := model.PrdRequest{ProductIdea: "short", TargetUser: "", Problem: "", TimelineWeeks: 0}
	assert.Equal(t, "targetUser is required", Validate(req))

	req = model.PrdRequest{ProductIdea: "short", TargetUser: "x", Problem: "", TimelineWeeks: -1}
	assert.Equal(t, "problem is required", Validate(req))

	req = model.PrdRequest{ProductIdea: "short", TargetUser: "x", Problem: "y", TimelineWeeks: 0, OutputFormat: "pdf"}
	assert.Equal(t, "timelineWeeks must be greater than 0", Validate(req))

	req = model.PrdRequest{ProductIdea: "short", TargetUser: "x", Problem: "y", TimelineWeeks: 2, OutputFormat: "pdf"}
	assert.Equal(t, "productIdea is too short", Validate(req))

	assert.Equal(t, "productIdea is required", Validate(model.PrdRequest{}))
}
