// Package analytics provides the analytics bounded context: aggregation
// queries over the legacy table family fed through the metrics engine.
package analytics

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"prospect_portal_backend/internal/analytics/handler"
	"prospect_portal_backend/internal/analytics/repository"
	"prospect_portal_backend/internal/analytics/service"
	apphttp "prospect_portal_backend/internal/http"
	"prospect_portal_backend/platform/logger"
	"prospect_portal_backend/platform/validator"
)

// Module is the analytics bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the analytics repository, service and handler.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	return &Module{handler: handler.New(svc, val), service: svc}
}

// Service exposes the analytics service to collaborating modules (reports).
func (m *Module) Service() *service.Service { return m.service }

func (m *Module) Name() string { return "analytics" }

// RegisterRoutes mounts the analytics routes under /api/v1/analytics.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	analytics := ctx.V1.Group("/analytics")
	analytics.GET("/real-time-metrics", m.handler.RealTimeMetrics)
	analytics.GET("/conversion-funnel", m.handler.ConversionFunnel)
	analytics.GET("/channel-effectiveness", m.handler.ChannelEffectiveness)
	analytics.GET("/geographic-distribution", m.handler.GeographicDistribution)
	analytics.GET("/temporal-trends", m.handler.TemporalTrends)
	analytics.GET("/interaction-patterns", m.handler.InteractionPatterns)
	analytics.GET("/test-performance", m.handler.TestPerformance)
	analytics.GET("/advisory-impact", m.handler.AdvisoryImpact)
	analytics.GET("/operational-kpis", m.handler.OperationalKPIs)
}
