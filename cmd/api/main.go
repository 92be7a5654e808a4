package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/infrastructure/cache"
	"github.com/tortshark/campaign-analyst/infrastructure/database/postgres"
	"github.com/tortshark/campaign-analyst/infrastructure/integrator/llmgateway"
	"github.com/tortshark/campaign-analyst/infrastructure/repository"
	"github.com/tortshark/campaign-analyst/internal/api"
	"github.com/tortshark/campaign-analyst/internal/api/handler"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/internal/scheduler"
	"github.com/tortshark/campaign-analyst/internal/usecases/analyzing"
	"github.com/tortshark/campaign-analyst/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	defer redisClient.Close()
	logrus.Info("Conexão com Redis estabelecida com sucesso")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.NewMetrics(registry)

	campaignRepo := repository.NewCampaignRepository(pgConn)
	targetRepo := repository.NewCampaignTargetRepository(pgConn)
	statsRepo := repository.NewCampaignStatsRepository(pgConn)
	changelogRepo := repository.NewChangelogRepository(pgConn)

	if cfg.LLMGateway.APIKey == "" {
		logrus.Warn("Chave do gateway de LLM não configurada; o analista responderá com erro")
	}
	gateway := llmgateway.NewClient(cfg)

	authenticator := authenticating.NewService(cfg)

	analystService := analyzing.NewService(
		cfg,
		campaignRepo,
		targetRepo,
		statsRepo,
		changelogRepo,
		gateway,
		appMetrics,
	)

	briefings := cache.NewBriefingCache(redisClient)

	briefingWarmupService := scheduler.NewBriefingWarmupService(
		campaignRepo,
		analystService,
		briefings,
		cfg,
		appMetrics,
	)

	if err := briefingWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de briefings")
	} else {
		logrus.Info("Agendador de aquecimento de briefings iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analystService,
		authenticator,
		briefings,
		briefingWarmupService,
		appMetrics,
		metrics.Handler(registry),
		map[string]handler.HealthCheck{
			"postgres": pgConn.PingContext,
			"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
