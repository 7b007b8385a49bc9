package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *OpenRouter {
	return NewOpenRouter(OpenRouterSettings{
		APIKey:   "sk-or-test",
		Model:    "test/model",
		Timeout:  5 * time.Second,
		Endpoint: url,
	})
}

func TestOpenRouter_Chat(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"root_cause": "x"}`}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	reply, err := client.Chat(context.Background(), "system prompt", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"root_cause": "x"}`, reply)
	assert.Equal(t, "Bearer sk-or-test", gotAuth)
	assert.Equal(t, "test/model", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "system prompt", gotBody.Messages[0].Content)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	require.NotNil(t, gotBody.ResponseFormat)
	assert.Equal(t, "json_object", gotBody.ResponseFormat.Type)
}

func TestOpenRouter_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Chat(context.Background(), "s", "u")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestOpenRouter_ErrorPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "model not found", "code": 404},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Chat(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestOpenRouter_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Chat(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
