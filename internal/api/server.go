package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/infrastructure/cache"
	"github.com/tortshark/campaign-analyst/internal/api/handler"
	"github.com/tortshark/campaign-analyst/internal/api/handler/router"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/internal/usecases/analyzing"
	"github.com/tortshark/campaign-analyst/internal/usecases/authenticating"
	"github.com/tortshark/campaign-analyst/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyst analyzing.Analyst,
	authenticator authenticating.Authenticator,
	briefings cache.BriefingCache,
	briefingWarmupService handler.CronJob,
	m *metrics.Metrics,
	metricsHandler http.Handler,
	healthChecks map[string]handler.HealthCheck,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		BriefingWarmupService: briefingWarmupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(healthChecks)...),
		router.WithRoutes(handler.Metrics(metricsHandler)...),
		router.WithRoutes(handler.Analyst(analyst, m)...),
		router.WithRoutes(handler.Briefings(briefings, config.App.Location(), m)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	// Sem WriteTimeout: os relatórios chegam por stream e podem levar minutos
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia de middlewares e rotas, usada nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM ou o ctx ser cancelado; falha ao escutar é devolvida sem esperar sinal
func (s Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-listenErr:
		if ok {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return fmt.Errorf("api: listen %s: %w", s.httpServer.Addr, err)
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Desligamento solicitado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	// Streams SSE em andamento seguram o Shutdown até o timeout
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
