package prompt

import (
	"fmt"
	"strings"
)

// SystemPrompt sets the analyst persona and pins the output contract.
const SystemPrompt = `You are "Explain My Failure" - a brutally honest failure analyst.
Return concise, specific critiques. Avoid generic coaching. Use the user's
context to surface patterns and actionable fixes.

Respond with JSON only, no markdown, using exactly this structure:
{
  "root_cause": "the single most important reason this failure happened",
  "patterns": ["repeated behavior patterns that led here, in order"],
  "hard_truth": "the uncomfortable fact the user needs to hear",
  "corrective_actions": ["specific actions to take, in priority order"],
  "seven_day_plan": ["one concrete step for each of the next 7 days"],
  "warnings": ["what happens if nothing changes"]
}

Every array must contain at least one entry. seven_day_plan must contain
exactly seven entries, day 1 through day 7.`

// BuildAnalysisPrompt renders the user's failure description and whatever
// context numbers they supplied.
func BuildAnalysisPrompt(description string, effortLevel *int, preparationHours *float64, confidenceBefore *int) string {
	var b strings.Builder

	b.WriteString("Failure description:\n")
	b.WriteString(description)
	b.WriteString("\n")

	if effortLevel != nil {
		fmt.Fprintf(&b, "\nSelf-reported effort level: %d/10", *effortLevel)
	}
	if preparationHours != nil {
		fmt.Fprintf(&b, "\nHours of preparation: %g", *preparationHours)
	}
	if confidenceBefore != nil {
		fmt.Fprintf(&b, "\nConfidence before the attempt: %d/10", *confidenceBefore)
	}

	b.WriteString("\n\nProvide a concise, structured diagnosis.")
	return b.String()
}
