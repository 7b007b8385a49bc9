package llm

import (
	"context"
	"fmt"

	"github.com/de-tools/failure-analyst/pkg/services/config"
)

// NewClient builds the provider selected by the configuration. Demo mode is
// decided upstream; by the time this runs a key is expected to be present.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case "openrouter":
		return NewOpenRouter(OpenRouterSettings{
			APIKey:  cfg.OpenRouterAPIKey,
			Model:   cfg.OpenRouterModel,
			Timeout: cfg.LLMTimeout(),
		}), nil
	case "gemini":
		return NewGemini(ctx, GeminiSettings{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.LLMTimeout(),
		})
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
