package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tortshark/campaign-analyst/infrastructure/integrator/llmgateway"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/internal/usecases/analyzing"
	"github.com/tortshark/campaign-analyst/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

const upstreamStream = "data: {\"choices\":[{\"delta\":{\"content\":\"Spend \"}}]}\n\n" +
	": keep-alive\n\n" +
	"data: {\"choices\":[{\"delta\":{\"content\":\"is up\"}}]}\n\n" +
	"data: [DONE]\n\n"

// chunkedReader entrega o conteúdo em pedaços de tamanho fixo para exercitar várias leituras
type chunkedReader struct {
	data  string
	size  int
	reads int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if c.data == "" {
		return 0, io.EOF
	}
	n := min(c.size, len(p), len(c.data))
	copy(p, c.data[:n])
	c.data = c.data[n:]
	c.reads++
	return n, nil
}

func (c *chunkedReader) Close() error { return nil }

func postAnalyst(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/campaign-analyst", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCampaignAnalyst_RelaysStreamVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyst := mocks.NewMockAnalyst(ctrl)

	stream := &chunkedReader{data: upstreamStream, size: 7}
	analyst.EXPECT().
		Stream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.AnalystRequest) (io.ReadCloser, error) {
			assert.Equal(t, "ws-1", req.WorkspaceID)
			assert.Equal(t, domain.AnalysisModeBriefing, req.Mode())
			assert.Equal(t, "yesterday", req.AnalysisPeriod)
			return stream, nil
		})

	rec := postAnalyst(t, CampaignAnalyst(analyst, nil),
		`{"workspaceId":"ws-1","briefingMode":true,"analysisPeriod":"yesterday"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Len(t, rec.Header().Get("X-Report-ID"), 12)
	assert.Equal(t, upstreamStream, rec.Body.String())
	assert.True(t, rec.Flushed)
	assert.Greater(t, stream.reads, 1)
}

func TestCampaignAnalyst_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyst := mocks.NewMockAnalyst(ctrl)

	rec := postAnalyst(t, CampaignAnalyst(analyst, nil), `{"workspaceId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestCampaignAnalyst_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		message  string
		upstream string
	}{
		{
			name:    "workspace ausente",
			err:     analyzing.ErrWorkspaceRequired,
			status:  http.StatusBadRequest,
			message: analyzing.ErrWorkspaceRequired.Error(),
		},
		{
			name:    "período inválido",
			err:     fmt.Errorf("%w: %q", domain.ErrInvalidAnalysisPeriod, "last30"),
			status:  http.StatusBadRequest,
			message: `invalid analysis period: "last30"`,
		},
		{
			name:     "rate limit do gateway",
			err:      &llmgateway.StatusError{StatusCode: http.StatusTooManyRequests},
			status:   http.StatusTooManyRequests,
			message:  msgRateLimited,
			upstream: "rate_limited",
		},
		{
			name:     "créditos esgotados",
			err:      &llmgateway.StatusError{StatusCode: http.StatusPaymentRequired},
			status:   http.StatusPaymentRequired,
			message:  msgCreditsDepleted,
			upstream: "credits_depleted",
		},
		{
			name:     "outro status do gateway",
			err:      &llmgateway.StatusError{StatusCode: http.StatusBadGateway, Message: "bad gateway"},
			status:   http.StatusInternalServerError,
			message:  msgAnalysisFailed,
			upstream: "upstream_status",
		},
		{
			name:     "falha de transporte",
			err:      errors.New("dial tcp: connection refused"),
			status:   http.StatusInternalServerError,
			message:  msgAnalysisFailed,
			upstream: "transport",
		},
		{
			name:    "falha ao ler estatísticas",
			err:     fmt.Errorf("%w: %w", analyzing.ErrLoadStats, errors.New("timeout")),
			status:  http.StatusInternalServerError,
			message: msgLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyst := mocks.NewMockAnalyst(ctrl)
			m := metrics.NewMetrics(prometheus.NewRegistry())

			analyst.EXPECT().Stream(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := postAnalyst(t, CampaignAnalyst(analyst, m), `{"workspaceId":"ws-1"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Empty(t, rec.Header().Get("X-Report-ID"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["error"])

			if tt.upstream != "" {
				assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamErrors.WithLabelValues(tt.upstream)))
			} else {
				assert.Equal(t, 0, testutil.CollectAndCount(m.UpstreamErrors))
			}
		})
	}
}

// failingReader entrega um pedaço e depois falha, simulando queda do upstream
type failingReader struct {
	sent bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.sent {
		return 0, errors.New("connection reset")
	}
	f.sent = true
	return copy(p, "data: {\"choices\":[{\"delta\":{\"content\":\"Hi\"}}]}\n\n"), nil
}

func (f *failingReader) Close() error { return nil }

func TestCampaignAnalyst_UpstreamDropMidStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyst := mocks.NewMockAnalyst(ctrl)

	analyst.EXPECT().Stream(gomock.Any(), gomock.Any()).Return(&failingReader{}, nil)

	rec := postAnalyst(t, CampaignAnalyst(analyst, nil), `{"workspaceId":"ws-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data: {\"choices\":[{\"delta\":{\"content\":\"Hi\"}}]}\n\n", rec.Body.String())
}

// plainWriter não implementa http.Flusher
type plainWriter struct {
	header http.Header
	status int
	body   strings.Builder
}

func (p *plainWriter) Header() http.Header         { return p.header }
func (p *plainWriter) Write(b []byte) (int, error) { return p.body.Write(b) }
func (p *plainWriter) WriteHeader(status int)      { p.status = status }

func TestCampaignAnalyst_RequiresFlusher(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyst := mocks.NewMockAnalyst(ctrl)

	w := &plainWriter{header: http.Header{}}
	req := httptest.NewRequest(http.MethodPost, "/v1/campaign-analyst", strings.NewReader(`{"workspaceId":"ws-1"}`))

	CampaignAnalyst(analyst, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.status)
	assert.Contains(t, w.body.String(), msgStreamingFailed)
}
