package handler

import (
	"net/http"
	"time"

	"github.com/tortshark/campaign-analyst/infrastructure/cache"
	"github.com/tortshark/campaign-analyst/internal/api/handler/router"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/internal/usecases/analyzing"
	"github.com/tortshark/campaign-analyst/pkg/middleware"
)

func Healthcheck(checks map[string]HealthCheck) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
	}
}

// Metrics expõe as métricas do Prometheus
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Analyst(service analyzing.Analyst, m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaign-analyst",
			Method:      http.MethodPost,
			Handler:     CampaignAnalyst(service, m),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthenticatedUsers()},
		},
	}
}

func Briefings(briefings cache.BriefingCache, loc *time.Location, m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/workspaces/:id/briefing",
			Method:      http.MethodGet,
			Handler:     GetBriefing(briefings, loc, m),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthenticatedUsers()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceRoleOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceRoleOnly()},
		},
	}
}
