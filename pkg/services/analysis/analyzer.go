package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/failure-analyst/pkg/models/domain"
	"github.com/de-tools/failure-analyst/pkg/services/llm"
	"github.com/de-tools/failure-analyst/pkg/services/prompt"
	"github.com/rs/zerolog"
)

// ErrProvider marks a failure attributable to the external provider, either
// the transport or a reply that never satisfied the schema. Handlers map it
// to 502; anything else is an internal error.
var ErrProvider = errors.New("llm provider failed")

// Analyzer turns an AnalysisRequest into a FailureAnalysis: build the
// prompt, ask the provider, parse and validate the reply, and re-ask a
// bounded number of times when the reply does not fit the schema.
type Analyzer struct {
	client     llm.Client
	maxRetries int
}

type Settings struct {
	Client llm.Client

	// MaxRetries is the number of additional provider calls allowed after
	// an invalid reply. Zero means a single attempt.
	MaxRetries int
}

func NewAnalyzer(settings Settings) *Analyzer {
	return &Analyzer{
		client:     settings.Client,
		maxRetries: settings.MaxRetries,
	}
}

// NewDemoAnalyzer returns an analyzer that never calls a provider.
func NewDemoAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.FailureAnalysis, error) {
	logger := zerolog.Ctx(ctx)

	if a.client == nil {
		logger.Info().Msg("no provider configured, using demo analyst")
		return demoAnalysis(req), nil
	}

	userPrompt := prompt.BuildAnalysisPrompt(
		req.Description,
		req.EffortLevel,
		req.PreparationHours,
		req.ConfidenceBefore,
	)

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		raw, err := a.client.Chat(ctx, prompt.SystemPrompt, userPrompt)
		if err != nil {
			if errors.Is(err, llm.ErrUnauthorized) {
				logger.Warn().Err(err).Msg("provider rejected credentials, falling back to demo analyst")
				return demoAnalysis(req), nil
			}
			return nil, fmt.Errorf("%w: chat failed: %w", ErrProvider, err)
		}

		result, err := parseAnalysis(raw)
		if err == nil {
			logger.Info().
				Str("model", a.client.Model()).
				Int("attempt", attempt+1).
				Msg("analysis completed")
			return result, nil
		}

		logger.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Msg("invalid analysis from model")
		lastErr = err
	}

	return nil, fmt.Errorf("%w: exhausted %d attempts: %w", ErrProvider, a.maxRetries+1, lastErr)
}
