package analyzing

import (
	"context"
	"io"
	"time"

	"github.com/tortshark/campaign-analyst/internal/domain"
)

// StatsFetcher busca as linhas diárias de um conjunto de campanhas em um intervalo inclusivo
type StatsFetcher interface {
	GetByDateRange(ctx context.Context, campaignIDs []string, startDate, endDate time.Time) ([]*domain.DailyStat, error)
}

// ChatStreamer abre um stream SSE de chat completion no gateway de LLM
type ChatStreamer interface {
	StreamChatCompletion(ctx context.Context, req *domain.LLMRequest) (io.ReadCloser, error)
}

// Analyst é o caso de uso exposto para o handler HTTP e para o job de briefing
type Analyst interface {
	// LoadPayload lê o snapshot do workspace e calcula portfólio e impactos para a janela
	LoadPayload(ctx context.Context, workspaceID string, window domain.AnalysisWindow) (*domain.AnalysisPayload, error)

	// Prepare valida a requisição e monta o pedido ao gateway
	Prepare(ctx context.Context, req *domain.AnalystRequest) (*domain.LLMRequest, error)

	// Stream prepara a requisição e abre o stream de tokens do gateway
	Stream(ctx context.Context, req *domain.AnalystRequest) (io.ReadCloser, error)
}
