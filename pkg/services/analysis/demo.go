package analysis

import (
	"fmt"
	"strings"

	"github.com/de-tools/failure-analyst/pkg/models/domain"
)

// demoAnalysis answers without a provider. It classifies the description by
// keyword and returns a canned diagnosis so the service stays usable with no
// API key configured.
func demoAnalysis(req domain.AnalysisRequest) *domain.FailureAnalysis {
	desc := strings.ToLower(req.Description)

	var rootCause, pattern, truth string
	switch {
	case containsAny(desc, "exam", "test", "quiz"):
		rootCause = "Passive learning without active recall. You consumed content but didn't test your understanding under pressure."
		pattern = "Cramming, false confidence, performance anxiety, failure."
		truth = "Watching videos isn't studying. You need to solve problems yourself, time yourself, and fail in practice before the real test."
	case containsAny(desc, "interview", "interviewed", "interviewing"):
		rootCause = "Insufficient mock practice and overconfidence from solving problems in isolation."
		pattern = "Practice in comfort, avoiding system design, no mock interviews, freezing under pressure."
		truth = "You prepared for the wrong thing. Interviews test communication and problem-solving under pressure, not just coding ability."
	case containsAny(desc, "project", "assignment", "deadline"):
		rootCause = "Poor planning and underestimating complexity. Started executing before understanding requirements."
		pattern = "Jumping to work, scope creep, deadline pressure, rushed output, failure."
		truth = "You confused activity with progress. Planning and breaking down problems saves more time than it costs."
	default:
		rootCause = "Gap between perceived effort and actual effective work. You did things that felt productive but didn't address core weaknesses."
		pattern = "Surface-level preparation, avoiding difficult practice, overconfidence, reality check, failure."
		truth = "Effort without direction is just busywork. You need to identify your weakest points and attack them directly."
	}

	effort := 5
	if req.EffortLevel != nil {
		effort = *req.EffortLevel
	}
	prepHours := 0.0
	if req.PreparationHours != nil {
		prepHours = *req.PreparationHours
	}
	confidence := 5
	if req.ConfidenceBefore != nil {
		confidence = *req.ConfidenceBefore
	}

	return &domain.FailureAnalysis{
		RootCause: rootCause,
		Patterns: []string{
			pattern,
			"Overestimating readiness based on passive learning",
			"Avoiding difficult or uncomfortable practice scenarios",
		},
		HardTruth: truth,
		CorrectiveActions: []string{
			"Identify the 3 weakest areas and practice them daily",
			"Create realistic practice scenarios that mirror the actual challenge",
			"Track metrics: time spent, accuracy, consistency",
			"Get external feedback before the next attempt",
			"Build a recovery timeline with specific milestones",
		},
		SevenDayPlan: []string{
			"Day 1: Honest self-assessment. List exactly what went wrong and why",
			"Day 2: Identify 3 core weaknesses and find resources to address them",
			"Day 3: Create a structured practice schedule with daily goals",
			"Day 4: Start practicing the hardest problems first",
			"Day 5: Get feedback from someone who succeeded in this area",
			"Day 6: Simulate the actual conditions and test yourself",
			"Day 7: Review progress, adjust the plan, commit to long-term improvement",
		},
		Warnings: []string{
			fmt.Sprintf("Effort level %d/10 and %g preparation hours did not translate into results; more of the same will not either", effort, prepHours),
			fmt.Sprintf("Confidence of %d/10 was not backed by evidence; without measurable practice you will repeat this cycle", confidence),
		},
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
