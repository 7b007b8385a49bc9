package api

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Description      string   `json:"description"`
	EffortLevel      *int     `json:"effort_level,omitempty"`
	PreparationHours *float64 `json:"preparation_hours,omitempty"`
	ConfidenceBefore *int     `json:"confidence_before,omitempty"`
}

// FailureAnalysis is the structured result returned to the caller.
type FailureAnalysis struct {
	RootCause         string   `json:"root_cause"`
	Patterns          []string `json:"patterns"`
	HardTruth         string   `json:"hard_truth"`
	CorrectiveActions []string `json:"corrective_actions"`
	SevenDayPlan      []string `json:"seven_day_plan"`
	Warnings          []string `json:"warnings"`
}

type Error struct {
	Error string `json:"error"`
}

type Health struct {
	Status string `json:"status"`
}
