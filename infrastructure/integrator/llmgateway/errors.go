package llmgateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey   = errors.New("llm gateway api key is not configured")
	ErrRateLimited     = errors.New("llm gateway rate limit exceeded")
	ErrCreditsDepleted = errors.New("llm gateway credits depleted")
	ErrUpstream        = errors.New("llm gateway error")
)

// ErrorResponse representa o corpo de erro no formato OpenAI
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code,omitempty"`
}

// StatusError é a resposta não-2xx do gateway antes de qualquer byte do stream
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("llm gateway status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm gateway status %d", e.StatusCode)
}

// Unwrap permite errors.Is com os sentinelas de cada status
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrCreditsDepleted
	default:
		return ErrUpstream
	}
}

// Reason retorna um rótulo curto do erro, usado em logs e métricas
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrCreditsDepleted):
		return "credits_depleted"
	case errors.Is(err, ErrMissingAPIKey):
		return "missing_api_key"
	case errors.Is(err, ErrUpstream):
		return "upstream_status"
	default:
		return "transport"
	}
}
