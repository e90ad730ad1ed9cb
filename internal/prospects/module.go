// Package prospects provides the bounded context for the current table family.
package prospects

import (
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "prospect_portal_backend/internal/http"
	"prospect_portal_backend/internal/prospects/handler"
	"prospect_portal_backend/internal/prospects/repository"
	"prospect_portal_backend/internal/prospects/service"
	"prospect_portal_backend/platform/logger"
	"prospect_portal_backend/platform/validator"
)

// Module is the prospects bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule wires the prospects repository, service and handler.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	return &Module{handler: handler.New(svc, val)}
}

func (m *Module) Name() string { return "prospects" }

// RegisterRoutes mounts the current-family routes under /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	prospects := ctx.V1.Group("/prospects")
	prospects.GET("", m.handler.List)
	prospects.GET("/:id", m.handler.Get)

	dashboard := ctx.V1.Group("/dashboard")
	dashboard.GET("/metrics", m.handler.DashboardMetrics)
	dashboard.GET("/interactions-chart", m.handler.InteractionsChart)
	dashboard.GET("/cities-chart", m.handler.CitiesChart)
}
