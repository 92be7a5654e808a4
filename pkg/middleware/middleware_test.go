package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/internal/usecases/authenticating"
	"github.com/tortshark/campaign-analyst/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func newAuth(t *testing.T) (*authenticating.Service, func(role string) string) {
	t.Helper()
	auth := authenticating.NewService(&config.Config{Auth: config.Auth{JWTSecret: "test-secret"}})

	sign := func(role string) string {
		token, err := auth.GenerateToken("user-1", role, time.Hour)
		require.NoError(t, err)
		return token
	}
	return auth, sign
}

func TestAuthMiddleware(t *testing.T) {
	auth, sign := newAuth(t)
	expired, err := auth.GenerateToken("user-1", domain.RoleAuthenticated, -time.Hour)
	require.NoError(t, err)

	var gotClaims *domain.Claims
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{name: "healthcheck é público", path: "/healthcheck", status: http.StatusNoContent},
		{name: "metrics é público", path: "/metrics", status: http.StatusNoContent},
		{name: "sem header", path: "/v1/campaign-analyst", status: http.StatusUnauthorized, body: "AUTH_006"},
		{name: "sem Bearer", path: "/v1/campaign-analyst", header: sign(domain.RoleAuthenticated), status: http.StatusUnauthorized, body: "Bearer token is required"},
		{name: "token expirado", path: "/v1/campaign-analyst", header: "Bearer " + expired, status: http.StatusUnauthorized, body: "AUTH_007"},
		{name: "token válido", path: "/v1/campaign-analyst", header: "Bearer " + sign(domain.RoleAuthenticated), status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Contains(t, rec.Body.String(), tt.body)
			}
		})
	}

	require.NotNil(t, gotClaims)
	assert.Equal(t, "user-1", gotClaims.Subject)
}

func TestServiceRoleOnly(t *testing.T) {
	auth, sign := newAuth(t)
	handler := alice.New(AuthMiddleware(auth), ServiceRoleOnly()).Then(okHandler())

	for role, status := range map[string]int{
		domain.RoleServiceRole:   http.StatusNoContent,
		domain.RoleAuthenticated: http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/briefing_warmup/run", nil)
		req.Header.Set("Authorization", "Bearer "+sign(role))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, status, rec.Code, role)
	}
}

func TestRoleMiddleware_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	AuthenticatedUsers()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/campaign-analyst", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Report-ID")

	req = httptest.NewRequest(http.MethodPost, "/v1/campaign-analyst", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_PassesFlushThrough(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
		flusher.Flush()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/campaign-analyst", nil))

	assert.True(t, rec.Flushed)
	assert.Equal(t, "data: [DONE]\n\n", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestLoggingMiddleware_ReusesCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationIDHeader, "edge-7f3a")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "edge-7f3a", seen)
	assert.Equal(t, "edge-7f3a", rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
