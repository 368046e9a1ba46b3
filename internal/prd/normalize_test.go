package prd

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNormalizeFillsMissingLists(t *testing.T) {
	res, err := Normalize(`{"problemStatement":"x","targetUser":"y"}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, "x", res.ProblemStatement)
	assert.Equal(t, "y", res.TargetUser)
	assert.Equal(t, []string{}, res.UseCases)
	assert.Equal(t, []string{}, res.FunctionalRequirements)
	assert.Equal(t, []string{}, res.NonFunctionalRequirements)
	assert.Equal(t, []string{}, res.OutOfScope)
	assert.Equal(t, []string{}, res.SuccessMetrics)
	assert.Equal(t, []string{}, res.Risks)
}

func TestNormalizeNullListsAndBlankScalars(t *testing.T) {
	res, err := Normalize(`{"problemStatement":"","useCases":null,"risks":["r1"],"extra":"ignored"}`)

	assert.Equal(t, nil, err)
	assert.Equal(t, "", res.ProblemStatement)
	assert.Equal(t, "", res.TargetUser)
	assert.Equal(t, []string{}, res.UseCases)
	assert.Equal(t, []string{"r1"}, res.Risks)
}

func TestNormalizeRejectsMalformed(t *testing.T) {
	inputs := []string{
		`not json`,
		`{"problemStatement":`,
		`null`,
		`["a","b"]`,
		`{"useCases":"should be a list"}`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			res, err := Normalize(in)
			assert.Equal(t, true, errors.Is(err, ErrMalformedResponse))
			assert.Equal(t, true, res == nil)
		})
	}
}
