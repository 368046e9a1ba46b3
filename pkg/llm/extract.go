package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidEnvelope = errors.New("provider response is not a JSON object")
	ErrNoOutputText    = errors.New("the model produced no usable text output")
)

// Envelope is a provider response decoded just far enough to be searched.
type Envelope map[string]json.RawMessage

// A Strategy looks for generated text in one known envelope shape and
// reports false when the shape does not apply.
type Strategy interface {
	Name() string
	Extract(env Envelope) (string, bool)
}

type StrategyFunc struct {
	Label string
	Fn    func(env Envelope) (string, bool)
}

func (s StrategyFunc) Name() string {
	return s.Label
}

func (s StrategyFunc) Extract(env Envelope) (string, bool) {
	return s.Fn(env)
}

// OutputTextField reads the top-level output_text convenience field.
var OutputTextField Strategy = StrategyFunc{Label: "output_text", Fn: func(env Envelope) (string, bool) {
	var text string
	if err := json.Unmarshal(env["output_text"], &text); err != nil {
		return "", false
	}
	return text, true
}}

type outputItem struct {
	Type    string `json:"type"`
	Content []struct {
		Type string  `json:"type"`
		Text *string `json:"text"`
	} `json:"content"`
}

// OutputItems takes the first output_text part of the first message item
// in the output array.
var OutputItems Strategy = StrategyFunc{Label: "output[].content[]", Fn: func(env Envelope) (string, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(env["output"], &items); err != nil {
		return "", false
	}

	for _, raw := range items {
		var item outputItem
		if err := json.Unmarshal(raw, &item); err != nil || item.Type != "message" {
			continue
		}
		for _, c := range item.Content {
			if c.Type != "output_text" || c.Text == nil {
				continue
			}
			// Only the first text part of a message counts; a blank one
			// moves the search on to the next item.
			if strings.TrimSpace(*c.Text) != "" {
				return *c.Text, true
			}
			break
		}
	}
	return "", false
}}

// MessageContent reads the first text block of a Messages API response.
var MessageContent Strategy = StrategyFunc{Label: "content[]", Fn: func(env Envelope) (string, bool) {
	var blocks []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(env["content"], &blocks); err != nil {
		return "", false
	}

	for _, b := range blocks {
		if b.Type == "text" && b.Text != "" {
			return cleanJSONResponse(b.Text), true
		}
	}
	return "", false
}}

type Extractor struct {
	strategies []Strategy
}

func NewExtractor(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// ExtractorFor returns the strategies that match the envelopes the named
// provider produces.
func ExtractorFor(provider string) *Extractor {
	if provider == "anthropic" {
		return NewExtractor(MessageContent)
	}
	return NewExtractor(OutputTextField, OutputItems)
}

func (e *Extractor) Extract(body string) (string, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil || env == nil {
		return "", ErrInvalidEnvelope
	}

	for _, s := range e.strategies {
		text, ok := s.Extract(env)
		if ok && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	return "", ErrNoOutputText
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ParseUsage reads the usage block both providers attach to a response.
// A missing or unreadable block yields zero counts.
func ParseUsage(body string) Usage {
	var env struct {
		Usage Usage `json:"usage"`
	}
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return Usage{}
	}

	u := env.Usage
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
