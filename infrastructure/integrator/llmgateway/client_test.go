package llmgateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
)

func newTestClient(url, apiKey string) *Client {
	return NewClient(&config.Config{LLMGateway: config.LLMGateway{
		URL:         url,
		APIKey:      apiKey,
		DialTimeout: time.Second,
	}})
}

func sampleRequest() *domain.LLMRequest {
	return &domain.LLMRequest{
		Model:    "google/gemini-2.5-flash",
		Messages: []domain.ChatMessage{{Role: domain.RoleSystem, Content: "DATA"}, {Role: domain.RoleUser, Content: "report"}},
		Stream:   true,
	}
}

func TestClient_StreamChatCompletion(t *testing.T) {
	const stream = "data: {\"choices\":[{\"delta\":{\"content\":\"Oi\"}}]}\n\ndata: [DONE]\n\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body domain.LLMRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "google/gemini-2.5-flash", body.Model)
		assert.True(t, body.Stream)
		assert.Len(t, body.Messages, 2)

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(stream))
	}))
	defer server.Close()

	body, err := newTestClient(server.URL, "sk-test").StreamChatCompletion(context.Background(), sampleRequest())
	require.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, stream, string(raw))
}

func TestClient_StreamChatCompletion_StatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
		reason   string
	}{
		{
			name:     "429 vira rate limit",
			status:   http.StatusTooManyRequests,
			body:     `{"error":{"message":"Too many requests","type":"rate_limit"}}`,
			sentinel: ErrRateLimited,
			message:  "Too many requests",
			reason:   "rate_limited",
		},
		{
			name:     "402 vira créditos esgotados",
			status:   http.StatusPaymentRequired,
			body:     `payment required`,
			sentinel: ErrCreditsDepleted,
			message:  "payment required",
			reason:   "credits_depleted",
		},
		{
			name:     "500 vira erro genérico",
			status:   http.StatusInternalServerError,
			sentinel: ErrUpstream,
			reason:   "upstream_status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, "sk-test").StreamChatCompletion(context.Background(), sampleRequest())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.reason, Reason(err))

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.message, statusErr.Message)
		})
	}
}

func TestClient_StreamChatCompletion_MissingAPIKey(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:0", "").StreamChatCompletion(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, "missing_api_key", Reason(err))
}

func TestClient_StreamChatCompletion_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server.URL, "sk-test").StreamChatCompletion(ctx, sampleRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "transport", Reason(err))
}
