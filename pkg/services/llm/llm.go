package llm

import (
	"context"
	"errors"
)

// ErrUnauthorized signals that the provider rejected the configured
// credentials. Callers may degrade to demo output instead of failing the
// request.
var ErrUnauthorized = errors.New("llm provider rejected credentials")

// Client is a minimal chat interface over an LLM provider. Implementations
// must be safe for concurrent use.
type Client interface {
	Chat(ctx context.Context, system, user string) (string, error)
	Model() string
}
