package groq

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phrazzld/tweetgen/internal/config"
	"github.com/phrazzld/tweetgen/internal/domain"
	"github.com/phrazzld/tweetgen/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Credential: "gsk_test_key",
		Model:      "llama3-8b-8192",
		Params:     domain.GenerationParams{Temperature: 1, MaxTokens: 1024, TopP: 1},
	}
}

func completionBody(content, finishReason string) string {
	body := map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "llama3-8b-8192",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": finishReason,
				"message":       map[string]interface{}{"role": "assistant", "content": content},
			},
		},
		"usage": map[string]interface{}{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), config.LLMConfig{
		BaseURL:        srv.URL,
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)
	return client, &calls
}

func TestComplete_Success(t *testing.T) {
	t.Parallel()

	var captured map[string]interface{}
	var authHeader, path string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody("Tweet 1: gm\nTweet 2: wagmi", "stop"))
	})

	raw, err := client.Complete(context.Background(), testRequest(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, "Tweet 1: gm\nTweet 2: wagmi", raw)
	assert.Equal(t, "Bearer gsk_test_key", authHeader)
	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "llama3-8b-8192", captured["model"])
	assert.EqualValues(t, 1, captured["temperature"])
	assert.EqualValues(t, 1024, captured["max_tokens"])
	assert.EqualValues(t, 1, captured["top_p"])

	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]interface{})
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "the prompt", msg["content"])
}

func TestComplete_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "rejected key",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`,
			wantErr: generation.ErrInvalidConfig,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"message":"internal error","type":"server_error"}}`,
			wantErr: generation.ErrTransport,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"Rate limit reached","type":"requests"}}`,
			wantErr: generation.ErrTransport,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`,
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "empty content",
			status:  http.StatusOK,
			body:    completionBody("   ", "stop"),
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "content filtered",
			status:  http.StatusOK,
			body:    completionBody("partial", "content_filter"),
			wantErr: generation.ErrContentBlocked,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			raw, err := client.Complete(context.Background(), testRequest(), "prompt")

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, raw)
			assert.Equal(t, int32(1), atomic.LoadInt32(calls), "requests must not be retried")
		})
	}
}

func TestComplete_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), config.LLMConfig{BaseURL: url})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), testRequest(), "prompt")
	assert.ErrorIs(t, err, generation.ErrTransport)
}

func TestComplete_MissingCredential(t *testing.T) {
	t.Parallel()

	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	req := testRequest()
	req.Credential = ""
	_, err := client.Complete(context.Background(), req, "prompt")

	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := NewClient(nil, config.LLMConfig{})
	assert.Error(t, err)

	client, err := NewClient(slog.Default(), config.LLMConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	client, err = NewClient(slog.Default(), config.LLMConfig{BaseURL: "http://localhost:1234/v1"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1234/v1/", client.baseURL)
}

var _ generation.Client = (*Client)(nil)

// stallingHandler holds the request until the client gives up.
func stallingHandler(w http.ResponseWriter, r *http.Request) {
	select {
	case <-r.Context().Done():
	case <-time.After(3 * time.Second):
	}
}

func TestComplete_Timeouts(t *testing.T) {
	t.Parallel()

	t.Run("client timeout from config", func(t *testing.T) {
		t.Parallel()

		client, calls := newTestClient(t, stallingHandler)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
		client.httpClient.Timeout = 200 * time.Millisecond

		start := time.Now()
		_, err := client.Complete(context.Background(), testRequest(), "prompt")

		assert.ErrorIs(t, err, generation.ErrTransport)
		assert.Less(t, time.Since(start), 2*time.Second)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls), "a timed out request must not be retried")
	})

	t.Run("context deadline", func(t *testing.T) {
		t.Parallel()

		client, calls := newTestClient(t, stallingHandler)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err := client.Complete(ctx, testRequest(), "prompt")

		assert.ErrorIs(t, err, generation.ErrTransport)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	})
}
