// Package handler exposes the analytics endpoints over HTTP.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prospect_portal_backend/internal/analytics/service"
	"prospect_portal_backend/internal/analytics/transport"
	"prospect_portal_backend/internal/metrics"
	"prospect_portal_backend/platform/httpkit"
	"prospect_portal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"

	dateLayout = "2006-01-02"
)

// Handler handles HTTP requests for analytics.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RealTimeMetrics returns the KPI cards with month-over-month trends.
// GET /api/v1/analytics/real-time-metrics
func (h *Handler) RealTimeMetrics(c *gin.Context) {
	result, err := h.svc.RealTimeMetrics(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ConversionFunnel returns the staged funnel, optionally date-bounded.
// GET /api/v1/analytics/conversion-funnel
func (h *Handler) ConversionFunnel(c *gin.Context) {
	var req transport.ConversionFunnelRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	start := parseDate(req.StartDate)
	end := parseDate(req.EndDate)

	result, err := h.svc.ConversionFunnel(c.Request.Context(), start, end)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ChannelEffectiveness returns per-origin conversion stats.
// GET /api/v1/analytics/channel-effectiveness
func (h *Handler) ChannelEffectiveness(c *gin.Context) {
	result, err := h.svc.ChannelEffectiveness(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GeographicDistribution returns per-city distribution stats.
// GET /api/v1/analytics/geographic-distribution
func (h *Handler) GeographicDistribution(c *gin.Context) {
	result, err := h.svc.GeographicDistribution(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// TemporalTrends returns the bucketed registration series.
// GET /api/v1/analytics/temporal-trends?period=day|week|month
func (h *Handler) TemporalTrends(c *gin.Context) {
	var req transport.TemporalTrendsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.TemporalTrends(c.Request.Context(), metrics.Granularity(req.Period), req.Densify)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// InteractionPatterns returns module, device and status activity.
// GET /api/v1/analytics/interaction-patterns
func (h *Handler) InteractionPatterns(c *gin.Context) {
	result, err := h.svc.InteractionPatterns(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// TestPerformance returns the score and classification aggregates.
// GET /api/v1/analytics/test-performance
func (h *Handler) TestPerformance(c *gin.Context) {
	result, err := h.svc.TestPerformance(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AdvisoryImpact returns advisory coverage and conversion numbers.
// GET /api/v1/analytics/advisory-impact
func (h *Handler) AdvisoryImpact(c *gin.Context) {
	result, err := h.svc.AdvisoryImpact(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// OperationalKPIs returns the operational counters.
// GET /api/v1/analytics/operational-kpis
func (h *Handler) OperationalKPIs(c *gin.Context) {
	result, err := h.svc.OperationalKPIs(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// parseDate assumes the value already passed datetime validation.
func parseDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	parsed, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil
	}
	return &parsed
}
