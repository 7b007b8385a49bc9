package domain

// AnalysisRequest carries one failure description plus the optional
// self-reported context numbers. It lives for the duration of a single
// request and is never stored.
type AnalysisRequest struct {
	Description      string   `validate:"required,min=20"`
	EffortLevel      *int     `validate:"omitempty,gte=0,lte=10"`
	PreparationHours *float64 `validate:"omitempty,gte=0"`
	ConfidenceBefore *int     `validate:"omitempty,gte=0,lte=10"`
}

// FailureAnalysis is the shape the model must produce. The json tags double
// as the wire contract with the provider: the prompt embeds this exact
// structure and the analyzer rejects replies that do not satisfy the
// validate constraints.
type FailureAnalysis struct {
	RootCause         string   `json:"root_cause" validate:"required"`
	Patterns          []string `json:"patterns" validate:"required,min=1,dive,required"`
	HardTruth         string   `json:"hard_truth" validate:"required"`
	CorrectiveActions []string `json:"corrective_actions" validate:"required,min=1,dive,required"`
	SevenDayPlan      []string `json:"seven_day_plan" validate:"required,min=1,dive,required"`
	Warnings          []string `json:"warnings" validate:"required,min=1,dive,required"`
}
