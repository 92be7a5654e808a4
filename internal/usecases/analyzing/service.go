package analyzing

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tortshark/campaign-analyst/infrastructure/repository"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/pkg/log"
	"github.com/tortshark/campaign-analyst/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const defaultImpactConcurrency = 4

// Service carrega os dados do workspace, calcula as métricas e conversa com o gateway de LLM
type Service struct {
	model             string
	location          *time.Location
	impactConcurrency int

	campaignRepository  repository.CampaignRepository
	targetRepository    repository.CampaignTargetRepository
	statsRepository     repository.CampaignStatsRepository
	changelogRepository repository.ChangelogRepository
	gateway             ChatStreamer
	metrics             *metrics.Metrics

	now func() time.Time
}

// NewService cria uma nova instância do analista
func NewService(
	cfg *config.Config,
	campaignRepo repository.CampaignRepository,
	targetRepo repository.CampaignTargetRepository,
	statsRepo repository.CampaignStatsRepository,
	changelogRepo repository.ChangelogRepository,
	gateway ChatStreamer,
	m *metrics.Metrics,
) *Service {
	concurrency := cfg.Analyst.ImpactConcurrency
	if concurrency <= 0 {
		concurrency = defaultImpactConcurrency
	}

	return &Service{
		model:               cfg.LLMGateway.Model,
		location:            cfg.App.Location(),
		impactConcurrency:   concurrency,
		campaignRepository:  campaignRepo,
		targetRepository:    targetRepo,
		statsRepository:     statsRepo,
		changelogRepository: changelogRepo,
		gateway:             gateway,
		metrics:             m,
		now:                 time.Now,
	}
}

// WithClock substitui o relógio usado quando a requisição não traz clientDate
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Stream prepara a requisição e abre o stream do gateway. O chamador fecha o stream.
func (s *Service) Stream(ctx context.Context, req *domain.AnalystRequest) (io.ReadCloser, error) {
	llmRequest, err := s.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	stream, err := s.gateway.StreamChatCompletion(ctx, llmRequest)
	if err != nil {
		s.metrics.RecordAnalystRequest(string(req.Mode()), "upstream_error")
		return nil, err
	}

	s.metrics.RecordAnalystRequest(string(req.Mode()), "streaming")
	return stream, nil
}

// Prepare valida a requisição, carrega o payload da janela e monta o prompt do modo
func (s *Service) Prepare(ctx context.Context, req *domain.AnalystRequest) (*domain.LLMRequest, error) {
	window, err := s.resolveWindow(req)
	if err != nil {
		s.metrics.RecordAnalystRequest(string(req.Mode()), "invalid")
		return nil, err
	}

	mode := req.Mode()
	if mode == domain.AnalysisModeChat {
		if err := validateMessages(req.Messages); err != nil {
			s.metrics.RecordAnalystRequest(string(mode), "invalid")
			return nil, err
		}
	}

	started := time.Now()
	payload, err := s.LoadPayload(ctx, req.WorkspaceID, window)
	s.metrics.RecordPayloadBuild(string(mode), time.Since(started))
	if err != nil {
		s.metrics.RecordAnalystRequest(string(mode), "error")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"workspace_id": req.WorkspaceID,
		"mode":         mode,
		"start_date":   window.Start.Format(dateLayout),
		"end_date":     window.End.Format(dateLayout),
		"campaigns":    len(payload.Portfolio.Campaigns),
		"changes":      len(payload.ChangeImpacts),
	}).Info("Payload do analista montado")

	return BuildPrompt(mode, payload, req.Messages, s.model)
}

// LoadPayload lê campanhas, metas, estatísticas e changelog do workspace.
// Falhas ao ler metas, changelog ou o impacto de uma mudança são registradas
// e ignoradas; sem campanhas ou estatísticas a análise é abortada.
func (s *Service) LoadPayload(ctx context.Context, workspaceID string, window domain.AnalysisWindow) (*domain.AnalysisPayload, error) {
	logger := log.ForContext(ctx).WithField("workspace_id", workspaceID)

	campaigns, err := s.campaignRepository.ListByWorkspace(ctx, workspaceID, true)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar campanhas do workspace")
		return nil, fmt.Errorf("%w: %w", ErrLoadCampaigns, err)
	}

	payload := &domain.AnalysisPayload{
		WorkspaceID:   workspaceID,
		Window:        window,
		ChangeImpacts: make([]domain.ChangeImpact, 0),
		DailyTotals:   make([]domain.DailyTotal, 0),
		GeneratedAt:   s.now().UTC(),
	}

	campaignIDs := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		campaignIDs = append(campaignIDs, c.ID)
	}

	if len(campaignIDs) == 0 {
		logger.Warn("Workspace sem campanhas ativas")
		payload.Portfolio = Summarize(nil, nil, window.Days())
		return payload, nil
	}

	targets, err := s.targetRepository.GetByCampaignIDs(ctx, campaignIDs)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar metas das campanhas, seguindo sem metas")
		s.metrics.RecordBestEffortSkip("targets")
		targets = map[string]*domain.CampaignTarget{}
	}

	stats, err := s.statsRepository.GetByDateRange(ctx, campaignIDs, window.Start, window.End)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar estatísticas das campanhas")
		return nil, fmt.Errorf("%w: %w", ErrLoadStats, err)
	}

	statsByCampaign := make(map[string][]*domain.DailyStat, len(campaigns))
	for _, stat := range stats {
		statsByCampaign[stat.CampaignID] = append(statsByCampaign[stat.CampaignID], stat)
	}

	perCampaign := make([]domain.CampaignMetrics, 0, len(campaigns))
	for _, c := range campaigns {
		perCampaign = append(perCampaign, domain.CampaignMetrics{
			Campaign: *c,
			Metrics:  Aggregate(statsByCampaign[c.ID]),
		})
	}

	payload.Portfolio = Summarize(perCampaign, targets, window.Days())
	payload.DailyTotals = DailyTotals(stats)
	payload.ChangeImpacts = s.changeImpacts(ctx, workspaceID, window)

	return payload, nil
}

// changeImpacts calcula os impactos em paralelo mantendo a ordem do changelog
func (s *Service) changeImpacts(ctx context.Context, workspaceID string, window domain.AnalysisWindow) []domain.ChangeImpact {
	logger := log.ForContext(ctx).WithField("workspace_id", workspaceID)

	entries, err := s.changelogRepository.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar changelog, seguindo sem impactos")
		s.metrics.RecordBestEffortSkip("changelog")
		return make([]domain.ChangeImpact, 0)
	}

	results := make([]*domain.ChangeImpact, len(entries))

	var g errgroup.Group
	g.SetLimit(s.impactConcurrency)

	for i, entry := range entries {
		g.Go(func() error {
			impact, err := ImpactOf(ctx, *entry, window, s.statsRepository)
			if err != nil {
				logger.WithError(err).WithField("change_id", entry.ID).Warn("Erro ao calcular impacto da mudança, ignorando")
				s.metrics.RecordChangeImpact("failed")
				s.metrics.RecordBestEffortSkip("change_impact")
				return nil
			}

			if impact.TooRecent {
				s.metrics.RecordChangeImpact("too_recent")
			} else {
				s.metrics.RecordChangeImpact("measured")
			}
			results[i] = &impact
			return nil
		})
	}
	_ = g.Wait()

	impacts := make([]domain.ChangeImpact, 0, len(entries))
	for _, impact := range results {
		if impact != nil {
			impacts = append(impacts, *impact)
		}
	}

	return impacts
}

func (s *Service) resolveWindow(req *domain.AnalystRequest) (domain.AnalysisWindow, error) {
	if req.WorkspaceID == "" {
		return domain.AnalysisWindow{}, ErrWorkspaceRequired
	}

	period, err := domain.ParseAnalysisPeriod(req.AnalysisPeriod)
	if err != nil {
		return domain.AnalysisWindow{}, err
	}

	today, err := utils.ParseDateOr(req.ClientDate, s.now().In(s.location))
	if err != nil {
		return domain.AnalysisWindow{}, fmt.Errorf("%w: %q", ErrInvalidClientDate, req.ClientDate)
	}

	return domain.NewAnalysisWindow(today, period), nil
}

func validateMessages(messages []domain.ChatMessage) error {
	for i, msg := range messages {
		if msg.Role != domain.RoleUser && msg.Role != domain.RoleAssistant {
			return fmt.Errorf("%w: mensagem %d com role %q", ErrInvalidMessage, i, msg.Role)
		}
		if msg.Content == "" {
			return fmt.Errorf("%w: mensagem %d sem conteúdo", ErrInvalidMessage, i)
		}
	}
	return nil
}
