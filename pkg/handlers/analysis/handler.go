package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/failure-analyst/pkg/models/api"
	"github.com/de-tools/failure-analyst/pkg/models/domain"
	service "github.com/de-tools/failure-analyst/pkg/services/analysis"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Service produces a FailureAnalysis for a validated request.
type Service interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.FailureAnalysis, error)
}

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req := domain.AnalysisRequest{
		Description:      payload.Description,
		EffortLevel:      payload.EffortLevel,
		PreparationHours: payload.PreparationHours,
		ConfidenceBefore: payload.ConfidenceBefore,
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.service.Analyze(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		if errors.Is(err, service.ErrProvider) {
			writeError(w, http.StatusBadGateway, "analysis failed, try again later")
		} else {
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(api.FailureAnalysis{
		RootCause:         result.RootCause,
		Patterns:          result.Patterns,
		HardTruth:         result.HardTruth,
		CorrectiveActions: result.CorrectiveActions,
		SevenDayPlan:      result.SevenDayPlan,
		Warnings:          result.Warnings,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode analysis")
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(api.Health{Status: "ok"}); err != nil {
		logger.Error().Err(err).Msg("failed to encode health response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	switch verrs[0].Field() {
	case "Description":
		return "description is required and must be at least 20 characters"
	case "EffortLevel":
		return "effort_level must be between 0 and 10"
	case "PreparationHours":
		return "preparation_hours must not be negative"
	case "ConfidenceBefore":
		return "confidence_before must be between 0 and 10"
	default:
		return "invalid request"
	}
}
