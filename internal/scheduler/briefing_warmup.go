package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/infrastructure/cache"
	"github.com/tortshark/campaign-analyst/infrastructure/repository"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/internal/usecases/analyzing"
	"github.com/tortshark/campaign-analyst/pkg/sse"
	"github.com/tortshark/campaign-analyst/pkg/utils"
)

// BriefingWarmupConfig representa a configuração do agendador de briefings
type BriefingWarmupConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	CacheTTL          time.Duration
	Enabled           bool
}

// WarmupResult resume uma execução do aquecimento
type WarmupResult struct {
	Workspaces int
	Generated  int
	Failed     int
}

// BriefingWarmupService gera o briefing matinal de cada workspace e o guarda no cache
type BriefingWarmupService struct {
	scheduler    *gocron.Scheduler
	config       BriefingWarmupConfig
	model        string
	location     *time.Location
	campaignRepo repository.CampaignRepository
	analyst      analyzing.Analyst
	briefings    cache.BriefingCache
	metrics      *metrics.Metrics
	now          func() time.Time

	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          WarmupResult
}

// NewBriefingWarmupService cria uma nova instância do serviço de aquecimento de briefings
func NewBriefingWarmupService(
	campaignRepo repository.CampaignRepository,
	analyst analyzing.Analyst,
	briefings cache.BriefingCache,
	appConfig *config.Config,
	m *metrics.Metrics,
) *BriefingWarmupService {
	warmupConfig := BriefingWarmupConfig{
		CronSchedule:      appConfig.BriefingWarmup.CronSchedule,
		MaxConcurrentJobs: max(appConfig.BriefingWarmup.MaxConcurrentJobs, 1),
		CacheTTL:          appConfig.BriefingWarmup.CacheTTL,
		Enabled:           appConfig.BriefingWarmup.Enabled,
	}

	location := appConfig.App.Location()

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       warmupConfig.CronSchedule,
		"max_concurrent_jobs": warmupConfig.MaxConcurrentJobs,
		"cache_ttl":           warmupConfig.CacheTTL.String(),
		"sync_enabled":        warmupConfig.Enabled,
		"timezone":            location.String(),
	}).Info("Configuração do agendador de briefings carregada")

	return &BriefingWarmupService{
		scheduler:    gocron.NewScheduler(location),
		config:       warmupConfig,
		model:        appConfig.LLMGateway.Model,
		location:     location,
		campaignRepo: campaignRepo,
		analyst:      analyst,
		briefings:    briefings,
		metrics:      m,
		now:          time.Now,
		ctx:          context.Background(),
	}
}

// Start inicia o agendador
func (s *BriefingWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento de briefings desabilitado por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de briefings")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmupAll()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de briefings: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de briefings")
		s.scheduler.Stop()
	}()

	return nil
}

// warmupAll garante uma única execução por vez
func (s *BriefingWarmupService) warmupAll() {
	if !s.tryStart() {
		logrus.Info("Aquecimento de briefings já em andamento, ignorando")
		return
	}
	s.execute()
}

func (s *BriefingWarmupService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *BriefingWarmupService) execute() {
	result, err := s.Run(s.ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	if err == nil {
		s.lastSyncCompletedAt = s.now()
		s.lastResult = result
	}
}

// Run gera os briefings de todos os workspaces com campanhas ativas
func (s *BriefingWarmupService) Run(ctx context.Context) (WarmupResult, error) {
	startTime := time.Now()

	workspaceIDs, err := s.campaignRepo.ListWorkspaceIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar workspaces para aquecimento de briefings")
		s.metrics.RecordWarmupRun("error")
		return WarmupResult{}, err
	}

	result := WarmupResult{Workspaces: len(workspaceIDs)}
	if len(workspaceIDs) == 0 {
		logrus.Info("Nenhum workspace com campanhas ativas para aquecimento de briefings")
		s.metrics.RecordWarmupRun("empty")
		return result, nil
	}

	today := domain.DateOf(s.now().In(s.location))

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, workspaceID := range workspaceIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func() {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			err := s.warmupWorkspace(ctx, workspaceID, today)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				logrus.WithFields(logrus.Fields{
					"workspace_id": workspaceID,
					"date":         today.Format(time.DateOnly),
					"error":        err.Error(),
				}).Error("Erro ao gerar briefing do workspace")
				return
			}
			result.Generated++
		}()
	}

	wg.Wait()

	status := "success"
	if result.Failed > 0 {
		status = "partial"
	}
	s.metrics.RecordWarmupRun(status)

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"workspaces": result.Workspaces,
		"generated":  result.Generated,
		"failed":     result.Failed,
	}).Info("Aquecimento de briefings concluído")

	return result, nil
}

// warmupWorkspace pede o briefing de ontem, consome o stream e guarda o texto
func (s *BriefingWarmupService) warmupWorkspace(ctx context.Context, workspaceID string, today time.Time) error {
	req := &domain.AnalystRequest{
		WorkspaceID:    workspaceID,
		BriefingMode:   true,
		AnalysisPeriod: string(domain.AnalysisPeriodYesterday),
		ClientDate:     today.Format(time.DateOnly),
	}

	stream, err := s.analyst.Stream(ctx, req)
	if err != nil {
		return fmt.Errorf("erro ao abrir stream do briefing: %w", err)
	}
	defer stream.Close()

	text, err := sse.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("erro ao ler stream do briefing: %w", err)
	}

	reportID, err := utils.GenerateReportID()
	if err != nil {
		return fmt.Errorf("erro ao gerar report id: %w", err)
	}

	briefing := &domain.Briefing{
		WorkspaceID: workspaceID,
		Date:        today,
		Text:        text,
		Model:       s.model,
		ReportID:    reportID,
		GeneratedAt: s.now().UTC(),
	}

	if err := s.briefings.Save(ctx, briefing, s.config.CacheTTL); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"report_id":    reportID,
		"date":         today.Format(time.DateOnly),
	}).Info("Briefing salvo no cache")

	return nil
}

// TriggerManualSync inicia manualmente o aquecimento; false quando já existe uma execução
func (s *BriefingWarmupService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Aquecimento de briefings já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando aquecimento manual de briefings")
	go s.execute()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *BriefingWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"cache_ttl":              s.config.CacheTTL.String(),
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_workspaces":        s.lastResult.Workspaces,
		"last_generated":         s.lastResult.Generated,
		"last_failed":            s.lastResult.Failed,
	}
}
