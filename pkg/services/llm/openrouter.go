package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouter talks to the OpenRouter chat-completions API. Transient
// transport failures (5xx, connection resets) are retried by the underlying
// retryablehttp client; that is separate from the schema retry loop the
// analyzer runs on malformed replies.
type OpenRouter struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

type OpenRouterSettings struct {
	APIKey  string
	Model   string
	Timeout time.Duration

	// Endpoint overrides the API URL, used by tests.
	Endpoint string
}

func NewOpenRouter(settings OpenRouterSettings) *OpenRouter {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.Logger = nil
	rc.HTTPClient.Timeout = settings.Timeout

	endpoint := settings.Endpoint
	if endpoint == "" {
		endpoint = openRouterEndpoint
	}

	return &OpenRouter{
		apiKey:   settings.APIKey,
		model:    settings.Model,
		endpoint: endpoint,
		client:   rc.StandardClient(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (o *OpenRouter) Chat(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0.3,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read openrouter response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode openrouter response: %w", err)
	}
	if parsed.Error.Message != "" {
		if parsed.Error.Code == http.StatusUnauthorized {
			return "", fmt.Errorf("%w: %s", ErrUnauthorized, parsed.Error.Message)
		}
		return "", fmt.Errorf("openrouter error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from openrouter")
	}

	return parsed.Choices[0].Message.Content, nil
}

func (o *OpenRouter) Model() string {
	return o.model
}
