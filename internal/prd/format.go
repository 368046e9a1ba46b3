package prd

import (
	"strings"
	"text/template"

	"prdgen/internal/model"
)

var jiraTemplate = template.Must(template.New("jira").Parse(`h1. {{.TargetUser}}

h2. Problem Statement
{{.ProblemStatement}}

h2. Use Cases
{{range .UseCases}}* {{.}}
{{end}}
h2. Functional Requirements
{{range .FunctionalRequirements}}# {{.}}
{{end}}
h2. Non-Functional Requirements
{{range .NonFunctionalRequirements}}# {{.}}
{{end}}
h2. Out of Scope
{{range .OutOfScope}}* {{.}}
{{end}}
h2. Success Metrics
{{range .SuccessMetrics}}* {{.}}
{{end}}
h2. Risks
{{range .Risks}}* {{.}}
{{end}}`))

var confluenceTemplate = template.Must(template.New("confluence").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`# Product Requirements

| Target User | {{.TargetUser}} |
|---|---|

## Problem Statement
{{.ProblemStatement}}

## Use Cases
{{range .UseCases}}- {{.}}
{{end}}
## Functional Requirements
{{range $i, $r := .FunctionalRequirements}}{{inc $i}}. {{$r}}
{{end}}
## Non-Functional Requirements
{{range $i, $r := .NonFunctionalRequirements}}{{inc $i}}. {{$r}}
{{end}}
## Out of Scope
{{range .OutOfScope}}- {{.}}
{{end}}
## Success Metrics
{{range .SuccessMetrics}}- {{.}}
{{end}}
## Risks
{{range .Risks}}- {{.}}
{{end}}`))

// Format renders prd into the Markdown templates selected by outputFormat.
// It returns nil for plain JSON output.
func Format(prd *model.PrdResponse, outputFormat string) (*model.PrdFormatted, error) {
	var out model.PrdFormatted

	switch outputFormat {
	case model.OutputFormatJira, model.OutputFormatBoth:
		s, err := render(jiraTemplate, prd)
		if err != nil {
			return nil, err
		}
		out.Jira = s
	}

	switch outputFormat {
	case model.OutputFormatConfluence, model.OutputFormatBoth:
		s, err := render(confluenceTemplate, prd)
		if err != nil {
			return nil, err
		}
		out.Confluence = s
	}

	if out.Jira == "" && out.Confluence == "" {
		return nil, nil
	}
	return &out, nil
}

func render(t *template.Template, prd *model.PrdResponse) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, prd); err != nil {
		return "", err
	}
	return sb.String(), nil
}
