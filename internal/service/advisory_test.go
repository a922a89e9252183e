package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvisoryService(t *testing.T) {
	originalKey := os.Getenv("ADVISORY_API_KEY")
	defer os.Setenv("ADVISORY_API_KEY", originalKey)

	t.Run("available with API key", func(t *testing.T) {
		os.Setenv("ADVISORY_API_KEY", "test-api-key")
		svc := NewAdvisoryService()
		assert.True(t, svc.Available())
	})

	t.Run("unavailable without API key", func(t *testing.T) {
		os.Unsetenv("ADVISORY_API_KEY")
		os.Unsetenv("ADVISORY_API_KEY_FILE")
		svc := NewAdvisoryService()
		assert.False(t, svc.Available())
	})
}

func TestGenerateAdvisoriesFallbackWhenUnavailable(t *testing.T) {
	svc := &AdvisoryService{client: &http.Client{Timeout: time.Second}}

	// Every call returns the same fixed list
	for i := 0; i < 3; i++ {
		got := svc.GenerateAdvisories(context.Background(), 5)
		assert.Equal(t, FallbackAdvisories, got)
	}
}

func TestGenerateAdvisoriesFallbackOnServerError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := &AdvisoryService{
		apiKey: "test-api-key",
		apiURL: srv.URL,
		client: srv.Client(),
	}

	got := svc.GenerateAdvisories(context.Background(), 5)
	assert.Equal(t, FallbackAdvisories, got)
	// Fallback on first failure, no retries
	assert.Equal(t, 1, calls)
}

func TestGenerateAdvisoriesFallbackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := &AdvisoryService{
		apiKey: "test-api-key",
		apiURL: srv.URL,
		client: &http.Client{Timeout: time.Second},
	}

	got := svc.GenerateAdvisories(context.Background(), 5)
	assert.Equal(t, FallbackAdvisories, got)
}

func TestGenerateAdvisoriesFallbackOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	svc := &AdvisoryService{
		apiKey: "test-api-key",
		apiURL: srv.URL,
		client: srv.Client(),
	}

	got := svc.GenerateAdvisories(context.Background(), 5)
	assert.Equal(t, FallbackAdvisories, got)
}

func TestGenerateAdvisoriesStripsPromptPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req advisoryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 5, req.N)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, advisoryPrompt, req.Messages[0].Content)

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": advisoryPrompt + "Drink plenty of water.  "}},
				{"message": map[string]string{"content": "  Walk daily if permitted."}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	svc := &AdvisoryService{
		apiKey: "test-api-key",
		apiURL: srv.URL,
		client: srv.Client(),
	}

	got := svc.GenerateAdvisories(context.Background(), 5)
	assert.Equal(t, []string{"Drink plenty of water.", "Walk daily if permitted."}, got)
}
