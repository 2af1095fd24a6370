package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==========================
// Test Helper Functions
// ==========================

func newGrokTestClient(baseURL string) *GrokClient {
	return NewGrokClient(Config{
		Provider: "grok",
		Model:    "grok-4",
		APIKey:   "test-key",
		BaseURL:  baseURL,
	}, zap.NewNop())
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(body)
}

// ==========================
// Interpreter Client Tests
// ==========================

func TestGrokClient_MissingKeyFailsBeforeNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewGrokClient(Config{BaseURL: srv.URL}, zap.NewNop())
	_, err := client.Interpret(context.Background(), "pizza in SoHo")

	assert.ErrorIs(t, err, ErrKeyMissing)
	assert.False(t, called, "no network call may be made without a credential")
}

func TestGrokClient_SuccessfulInterpretation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "grok-4", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "pizza in SoHo")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(`{"answer":"Go to Lucali.","restaurants":[{"name":"Lucali"}]}`)))
	}))
	defer srv.Close()

	client := newGrokTestClient(srv.URL)
	result, err := client.Interpret(context.Background(), "pizza in SoHo")
	require.NoError(t, err)

	assert.Equal(t, "Go to Lucali.", result.Answer)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "Lucali", result.Candidates[0].Name)
}

func TestGrokClient_NonOKStatusIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newGrokTestClient(srv.URL)
	_, err := client.Interpret(context.Background(), "pizza")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
}

func TestGrokClient_UnreachableBackendIsUpstreamError(t *testing.T) {
	client := newGrokTestClient("http://127.0.0.1:1")
	_, err := client.Interpret(context.Background(), "pizza")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Zero(t, upstream.Status)
}

func TestGrokClient_MalformedContentDegradesGracefully(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("sorry, here is prose instead of JSON")))
	}))
	defer srv.Close()

	client := newGrokTestClient(srv.URL)
	result, err := client.Interpret(context.Background(), "pizza")
	require.NoError(t, err, "parse failures must never surface to the caller")

	assert.Equal(t, FallbackAnswer, result.Answer)
	assert.Empty(t, result.Candidates)
}

func TestGrokClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := newGrokTestClient(srv.URL)
	result, err := client.Interpret(context.Background(), "pizza")
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
}
