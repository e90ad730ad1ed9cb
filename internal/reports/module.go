// Package reports provides the report bounded context: filtered listings and
// aggregate summaries downloadable as JSON, CSV or Excel.
package reports

import (
	"github.com/jackc/pgx/v5/pgxpool"

	analyticsservice "prospect_portal_backend/internal/analytics/service"
	apphttp "prospect_portal_backend/internal/http"
	"prospect_portal_backend/internal/reports/handler"
	"prospect_portal_backend/internal/reports/repository"
	"prospect_portal_backend/internal/reports/service"
	"prospect_portal_backend/platform/logger"
	"prospect_portal_backend/platform/validator"
)

// Module is the reports bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule wires the reports repository and service. The aggregate reports
// reuse the analytics service rather than duplicating its queries.
func NewModule(pool *pgxpool.Pool, analytics *analyticsservice.Service, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, analytics, log)
	return &Module{handler: handler.New(svc, val, log)}
}

func (m *Module) Name() string { return "reports" }

// RegisterRoutes mounts the report routes under /api/v1/reports.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	reports := ctx.V1.Group("/reports")
	reports.GET("/prospects", m.handler.Prospects)
	reports.GET("/conversions", m.handler.Conversions)
	reports.GET("/channels", m.handler.Channels)
	reports.GET("/geographic", m.handler.Geographic)
	reports.GET("/interactions", m.handler.Interactions)
	reports.GET("/executive", m.handler.Executive)
}
