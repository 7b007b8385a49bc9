package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Gemini calls the Google Gemini API through the genai SDK. The response
// MIME type is pinned to JSON so the model answers without markdown fences.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

type GeminiSettings struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewGemini(ctx context.Context, settings GeminiSettings) (*Gemini, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := settings.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: settings.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model, timeout: settings.Timeout}, nil
}

func (g *Gemini) Chat(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}

// callContext bounds a provider call with the configured timeout. The genai
// SDK manages its own transport, so the deadline rides on the context.
func (g *Gemini) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Gemini) Model() string {
	return g.model
}
