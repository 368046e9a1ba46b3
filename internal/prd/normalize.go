package prd

import (
	"encoding/json"
	"errors"
	"fmt"

	"prdgen/internal/model"
)

// ErrMalformedResponse marks provider output that could not be turned into a PRD.
var ErrMalformedResponse = errors.New("malformed model response")

func Normalize(text string) (*model.PrdResponse, error) {
	var res *model.PrdResponse
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty PRD document", ErrMalformedResponse)
	}

	for _, list := range []*[]string{
		&res.UseCases,
		&res.FunctionalRequirements,
		&res.NonFunctionalRequirements,
		&res.OutOfScope,
		&res.SuccessMetrics,
		&res.Risks,
	} {
		if *list == nil {
			*list = []string{}
		}
	}

	return res, nil
}
