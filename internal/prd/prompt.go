package prd

import (
	"encoding/json"

	"prdgen/internal/model"
	"prdgen/pkg/llm"
)

// SystemPrompt never contains request data; request fields travel only in
// the user payload.
const SystemPrompt = `You are a product manager assistant that drafts a PRD.

You must follow these rules strictly:
1) Output must be valid JSON only.
2) Do not add any fields beyond the provided JSON schema.
3) Use concrete, actionable language. Avoid generic statements.
4) Do not assume market data or competitor details.
5) Keep scope realistic for the given timeline.
6) All field values must be written entirely in Korean. Do not mix English and Korean.
7) Field names must remain in English exactly as defined in the JSON schema.
8) All requirements must strictly comply with the provided constraints. Do not introduce functionality that conflicts with the constraints.
9) When generating formatted output, strictly follow the predefined Jira and Confluence Markdown template. Do not add extra sections beyond the template.

Return JSON using this exact structure:

{
  "problemStatement": "",
  "targetUser": "",
  "useCases": [],
  "functionalRequirements": [],
  "nonFunctionalRequirements": [],
  "outOfScope": [],
  "successMetrics": [],
  "risks": []
}`

type userPayload struct {
	ProductIdea   string   `json:"productIdea"`
	TargetUser    string   `json:"targetUser"`
	Problem       string   `json:"problem"`
	Constraints   []string `json:"constraints"`
	TimelineWeeks int      `json:"timelineWeeks"`
}

func BuildPrompt(req model.PrdRequest) (llm.Prompt, error) {
	constraints := req.Constraints
	if constraints == nil {
		constraints = []string{}
	}

	user, err := json.Marshal(userPayload{
		ProductIdea:   req.ProductIdea,
		TargetUser:    req.TargetUser,
		Problem:       req.Problem,
		Constraints:   constraints,
		TimelineWeeks: req.TimelineWeeks,
	})
	if err != nil {
		return llm.Prompt{}, err
	}

	return llm.Prompt{System: SystemPrompt, User: string(user)}, nil
}
