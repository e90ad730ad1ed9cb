// Package legacy provides the bounded context for the first-generation table
// family, kept readable and writable while the current schema takes over.
package legacy

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "prospect_portal_backend/internal/http"
	"prospect_portal_backend/internal/legacy/handler"
	"prospect_portal_backend/internal/legacy/repository"
	"prospect_portal_backend/internal/legacy/service"
	"prospect_portal_backend/platform/config"
	"prospect_portal_backend/platform/logger"
	"prospect_portal_backend/platform/validator"
)

// Module is the legacy bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule wires the legacy repository, service and handler.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, cfg config.PhoneConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log, cfg.GetDefaultPhoneRegion())
	return &Module{handler: handler.New(svc, val)}
}

func (m *Module) Name() string { return "legacy" }

// RegisterRoutes mounts the legacy routes under /api/v1/legacy.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	prospects := ctx.Legacy.Group("/prospects")
	prospects.GET("", m.handler.List)
	prospects.POST("", m.handler.Create)
	prospects.GET("/:id", m.handler.Get)
	prospects.PUT("/:id", m.handler.Update)
	prospects.DELETE("/:id", m.handler.Delete)
	prospects.GET("/:id/interactions", m.handler.Interactions)
	prospects.GET("/:id/tests", m.handler.TestResults)
	prospects.GET("/:id/advisories", m.handler.Advisories)

	dashboard := ctx.Legacy.Group("/dashboard")
	dashboard.GET("/metrics", m.handler.DashboardMetrics)
	dashboard.GET("/interactions-chart", m.handler.InteractionsChart)
	dashboard.GET("/cities-chart", m.handler.CitiesChart)
}
