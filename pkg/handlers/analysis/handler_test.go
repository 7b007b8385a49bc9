package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/failure-analyst/pkg/models/api"
	"github.com/de-tools/failure-analyst/pkg/models/domain"
	service "github.com/de-tools/failure-analyst/pkg/services/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.FailureAnalysis, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FailureAnalysis), args.Error(1)
}

func validAnalysis() *domain.FailureAnalysis {
	return &domain.FailureAnalysis{
		RootCause:         "no deliberate practice",
		Patterns:          []string{"cramming"},
		HardTruth:         "you never tested yourself",
		CorrectiveActions: []string{"practice under real conditions"},
		SevenDayPlan:      []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"},
		Warnings:          []string{"this will repeat"},
	}
}

func TestHandler_Analyze(t *testing.T) {
	longDescription := "I failed my systems design interview after a month of prep"

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid request",
			body: fmt.Sprintf(`{"description": %q, "effort_level": 8}`, longDescription),
			setupMock: func(m *mockService) {
				m.On("Analyze", mock.Anything, mock.MatchedBy(func(req domain.AnalysisRequest) bool {
					return req.Description == longDescription &&
						req.EffortLevel != nil && *req.EffortLevel == 8
				})).Return(validAnalysis(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed JSON",
			body:           `{"description": `,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid JSON body",
		},
		{
			name:           "empty description",
			body:           `{"description": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "description is required and must be at least 20 characters",
		},
		{
			name:           "short description",
			body:           `{"description": "too short"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "description is required and must be at least 20 characters",
		},
		{
			name:           "effort level too high",
			body:           fmt.Sprintf(`{"description": %q, "effort_level": 11}`, longDescription),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "effort_level must be between 0 and 10",
		},
		{
			name:           "negative preparation hours",
			body:           fmt.Sprintf(`{"description": %q, "preparation_hours": -1}`, longDescription),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "preparation_hours must not be negative",
		},
		{
			name:           "confidence out of range",
			body:           fmt.Sprintf(`{"description": %q, "confidence_before": -3}`, longDescription),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "confidence_before must be between 0 and 10",
		},
		{
			name: "provider failure",
			body: fmt.Sprintf(`{"description": %q}`, longDescription),
			setupMock: func(m *mockService) {
				m.On("Analyze", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: exhausted 3 attempts", service.ErrProvider))
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "analysis failed, try again later",
		},
		{
			name: "internal failure",
			body: fmt.Sprintf(`{"description": %q}`, longDescription),
			setupMock: func(m *mockService) {
				m.On("Analyze", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("template rendering broke"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := new(mockService)
			if tc.setupMock != nil {
				tc.setupMock(service)
			}
			handler := NewHandler(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.Analyze(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedError != "" {
				var errResp api.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tc.expectedError, errResp.Error)
				return
			}

			var result api.FailureAnalysis
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, "no deliberate practice", result.RootCause)
			assert.Len(t, result.SevenDayPlan, 7)
			service.AssertExpectations(t)
		})
	}
}

func TestHandler_Health(t *testing.T) {
	handler := NewHandler(new(mockService))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var health api.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}
