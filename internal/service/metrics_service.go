package service

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the domain
// operations. All methods are nil-safe so services can run without it.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	conversions      prometheus.Counter
	promotions       prometheus.Counter
	permissionDenied *prometheus.CounterVec
	scoringFailures  prometheus.Counter
	entitiesCreated  *prometheus.CounterVec
}

// NewMetricsService registers the domain collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	conversions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crm_lead_conversions_total",
		Help: "Total number of leads converted to students",
	})

	promotions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crm_contact_promotions_total",
		Help: "Total number of contacts promoted to leads",
	})

	permissionDenied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_permission_denied_total",
		Help: "Total number of actions refused by the permission model",
	}, []string{"module", "action"})

	scoringFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crm_lead_scoring_failures_total",
		Help: "Total number of lead scoring calls degraded to the zero-score fallback",
	})

	entitiesCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crm_entities_created_total",
		Help: "Total number of entities created, by kind",
	}, []string{"kind"})

	registry.MustRegister(conversions, promotions, permissionDenied, scoringFailures, entitiesCreated)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		conversions:      conversions,
		promotions:       promotions,
		permissionDenied: permissionDenied,
		scoringFailures:  scoringFailures,
		entitiesCreated:  entitiesCreated,
	}
}

// Handler exposes the registry for whoever hosts the process.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return m.handler
}

// RecordConversion counts a completed lead conversion.
func (m *MetricsService) RecordConversion() {
	if m == nil {
		return
	}
	m.conversions.Inc()
}

// RecordPromotion counts a contact-to-lead promotion.
func (m *MetricsService) RecordPromotion() {
	if m == nil {
		return
	}
	m.promotions.Inc()
}

// RecordPermissionDenied counts a refused action.
func (m *MetricsService) RecordPermissionDenied(module, action string) {
	if m == nil {
		return
	}
	m.permissionDenied.WithLabelValues(module, action).Inc()
}

// RecordScoringFailure counts a degraded scoring call.
func (m *MetricsService) RecordScoringFailure() {
	if m == nil {
		return
	}
	m.scoringFailures.Inc()
}

// RecordEntityCreated counts a created entity by kind.
func (m *MetricsService) RecordEntityCreated(kind string) {
	if m == nil {
		return
	}
	m.entitiesCreated.WithLabelValues(kind).Inc()
}
