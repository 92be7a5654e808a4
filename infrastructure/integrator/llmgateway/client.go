package llmgateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultDialTimeout = 15 * time.Second
	maxErrorBodySize   = 64 << 10
)

// Client chama o endpoint de chat completions do gateway com stream habilitado.
// Não há timeout total: o stream dura o quanto o gateway mantiver a conexão,
// e o cancelamento vem do contexto da requisição.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	dialTimeout := cfg.LLMGateway.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: dialTimeout}).DialContext
	transport.ResponseHeaderTimeout = 2 * dialTimeout

	return &Client{
		url:        cfg.LLMGateway.URL,
		apiKey:     cfg.LLMGateway.APIKey,
		httpClient: &http.Client{Transport: transport},
	}
}

// StreamChatCompletion envia a requisição e retorna o corpo SSE sem alterações.
// Status não-2xx viram *StatusError antes de qualquer leitura do stream.
func (c *Client) StreamChatCompletion(ctx context.Context, req *domain.LLMRequest) (io.ReadCloser, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição do gateway: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição do gateway: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar gateway de LLM: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}

		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"model":       req.Model,
		}).WithError(statusErr).Error("Gateway de LLM retornou erro")

		return nil, statusErr
	}

	return resp.Body, nil
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	return strings.TrimSpace(string(raw))
}
