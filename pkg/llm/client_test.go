package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaccine-village-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseServer(t *testing.T, chunks []string, seen *chatRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range chunks {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func TestComplete(t *testing.T) {
	var seen chatRequest
	srv := sseServer(t, []string{"Vaccines ", "are ", "safe."}, &seen)
	defer srv.Close()

	c := NewClient(config.LLMConfig{
		APIKey: "key", BaseURL: srv.URL + "/", Model: "m", Timeout: 5 * time.Second,
		Generation: config.LLMGenerationConfig{Temperature: 0.3, MaxTokens: 100},
	})
	out, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Vaccines are safe.", out)
	assert.Equal(t, "m", seen.Model)
	assert.True(t, seen.Stream)
	require.NotNil(t, seen.Temperature)
	assert.Equal(t, 0.3, *seen.Temperature)
	assert.Nil(t, seen.TopP)
	require.NotNil(t, seen.MaxTokens)
	assert.Equal(t, 100, *seen.MaxTokens)
}

func TestComplete_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(config.LLMConfig{APIKey: "key", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), nil, nil)
	assert.ErrorContains(t, err, "401")
}
