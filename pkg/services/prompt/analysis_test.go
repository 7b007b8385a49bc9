package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnalysisPrompt_AllFields(t *testing.T) {
	effort := 7
	hours := 12.5
	confidence := 9

	p := BuildAnalysisPrompt("I failed my driving test twice in one month", &effort, &hours, &confidence)

	assert.Contains(t, p, "I failed my driving test twice in one month")
	assert.Contains(t, p, "effort level: 7/10")
	assert.Contains(t, p, "preparation: 12.5")
	assert.Contains(t, p, "Confidence before the attempt: 9/10")
}

func TestBuildAnalysisPrompt_OmitsMissingContext(t *testing.T) {
	p := BuildAnalysisPrompt("I failed my driving test twice in one month", nil, nil, nil)

	assert.Contains(t, p, "Failure description:")
	assert.NotContains(t, p, "effort level")
	assert.NotContains(t, p, "preparation")
	assert.NotContains(t, p, "Confidence before")
}

func TestSystemPrompt_PinsSchema(t *testing.T) {
	for _, field := range []string{
		"root_cause",
		"patterns",
		"hard_truth",
		"corrective_actions",
		"seven_day_plan",
		"warnings",
	} {
		assert.Contains(t, SystemPrompt, field)
	}
}
