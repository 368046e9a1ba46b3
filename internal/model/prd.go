package model

const (
	OutputFormatJSON       = "json"
	OutputFormatJira       = "jira"
	OutputFormatConfluence = "confluence"
	OutputFormatBoth       = "both"
)

type PrdRequest struct {
	ProductIdea   string   `json:"productIdea"`
	TargetUser    string   `json:"targetUser"`
	Problem       string   `json:"problem"`
	Constraints   []string `json:"constraints"`
	TimelineWeeks int      `json:"timelineWeeks"`
	OutputFormat  string   `json:"outputFormat,omitempty"`
}

type PrdResponse struct {
	ProblemStatement          string   `json:"problemStatement"`
	TargetUser                string   `json:"targetUser"`
	UseCases                  []string `json:"useCases"`
	FunctionalRequirements    []string `json:"functionalRequirements"`
	NonFunctionalRequirements []string `json:"nonFunctionalRequirements"`
	OutOfScope                []string `json:"outOfScope"`
	SuccessMetrics            []string `json:"successMetrics"`
	Risks                     []string `json:"risks"`
}

// PrdFormatted holds the Markdown renderings requested through OutputFormat.
type PrdFormatted struct {
	Jira       string `json:"jira,omitempty"`
	Confluence string `json:"confluence,omitempty"`
}
