package geminiservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ArbabsLab/GymBab/internal/geminiservice"
)

func geminiCandidate(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
}

func TestClient_Generate(t *testing.T) {
	var captured geminiservice.GeminiPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(geminiCandidate(`{"schedule": []}`))
	}))
	defer srv.Close()

	client := geminiservice.NewClient("test-key")
	client.BaseURL = srv.URL

	text, err := client.Generate(context.Background(), nopLogger(), "the prompt", geminiservice.WorkoutResponseSchema)
	require.NoError(t, err)
	require.Equal(t, `{"schedule": []}`, text)

	cfg := captured.GenerationConfig
	require.NotNil(t, cfg)
	require.Equal(t, 0.2, cfg.Temperature)
	require.Equal(t, 0.9, cfg.TopP)
	require.Equal(t, "application/json", cfg.ResponseMimeType)
	require.NotNil(t, cfg.ResponseSchema)

	// The prompt is supplied both as content and as the system instruction.
	require.Len(t, captured.Contents, 1)
	require.Equal(t, "the prompt", captured.Contents[0].Parts[0].Text)
	require.NotNil(t, captured.SystemInstruction)
	require.Equal(t, "the prompt", captured.SystemInstruction.Parts[0].Text)
}

func TestClient_Generate_SingleAttemptOnServerError(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := geminiservice.NewClient("test-key")
	client.BaseURL = srv.URL

	_, err := client.Generate(context.Background(), nopLogger(), "p", nil)
	require.Error(t, err)
	require.Equal(t, 1, requests, "a rejected call must not be retried")
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client := geminiservice.NewClient("test-key")
	client.BaseURL = srv.URL

	_, err := client.Generate(context.Background(), nopLogger(), "p", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no content")
}

func TestClient_Generate_MissingAPIKey(t *testing.T) {
	client := geminiservice.NewClient("")

	_, err := client.Generate(context.Background(), nopLogger(), "p", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not configured")
}
