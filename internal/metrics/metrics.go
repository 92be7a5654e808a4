package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "campaign_analyst"

// Metrics agrupa os coletores Prometheus do serviço.
// Um *Metrics nil é válido: os métodos Record* viram no-op.
type Metrics struct {
	AnalystRequests *prometheus.CounterVec
	PayloadLatency  *prometheus.HistogramVec
	UpstreamErrors  *prometheus.CounterVec
	ChangeImpacts   *prometheus.CounterVec
	BestEffortSkips *prometheus.CounterVec

	BriefingCache *prometheus.CounterVec
	WarmupRuns    *prometheus.CounterVec
}

// NewMetrics registra os coletores no registerer informado
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AnalystRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "requests_total",
				Help:      "Total de requisições ao analista por modo e resultado",
			},
			[]string{"mode", "status"},
		),
		PayloadLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "payload_build_seconds",
				Help:      "Tempo para carregar e agregar os dados de um workspace",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"mode"},
		),
		UpstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "llm_gateway_errors_total",
				Help:      "Erros retornados pelo gateway de LLM antes do stream",
			},
			[]string{"reason"},
		),
		ChangeImpacts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "change_impacts_total",
				Help:      "Impactos de mudanças calculados por resultado",
			},
			[]string{"outcome"},
		),
		BestEffortSkips: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "best_effort_skips_total",
				Help:      "Leituras do banco que falharam e foram ignoradas",
			},
			[]string{"source"},
		),
		BriefingCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "briefing_cache_total",
				Help:      "Consultas ao cache de briefings por resultado",
			},
			[]string{"result"},
		),
		WarmupRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "briefing_warmup_total",
				Help:      "Briefings gerados pelo job de aquecimento por status",
			},
			[]string{"status"},
		),
	}
}

// Handler retorna o handler HTTP de exposição das métricas
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordAnalystRequest(mode, status string) {
	if m == nil {
		return
	}
	m.AnalystRequests.WithLabelValues(mode, status).Inc()
}

func (m *Metrics) RecordPayloadBuild(mode string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.PayloadLatency.WithLabelValues(mode).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordUpstreamError(reason string) {
	if m == nil {
		return
	}
	m.UpstreamErrors.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordChangeImpact(outcome string) {
	if m == nil {
		return
	}
	m.ChangeImpacts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordBestEffortSkip(source string) {
	if m == nil {
		return
	}
	m.BestEffortSkips.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordBriefingCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.BriefingCache.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordWarmupRun(status string) {
	if m == nil {
		return
	}
	m.WarmupRuns.WithLabelValues(status).Inc()
}
