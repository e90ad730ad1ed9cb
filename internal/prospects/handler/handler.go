// Package handler exposes the current-family prospect endpoints over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prospect_portal_backend/internal/prospects/service"
	"prospect_portal_backend/internal/prospects/transport"
	"prospect_portal_backend/platform/httpkit"
	"prospect_portal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid prospect id"
)

// Handler handles HTTP requests for the current table family.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List retrieves prospects with filters and pagination.
// GET /api/v1/prospects
func (h *Handler) List(c *gin.Context) {
	var req transport.ListProspectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Get retrieves a single prospect.
// GET /api/v1/prospects/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// DashboardMetrics returns entity totals for the overview cards.
// GET /api/v1/dashboard/metrics
func (h *Handler) DashboardMetrics(c *gin.Context) {
	result, err := h.svc.DashboardMetrics(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// InteractionsChart returns daily interaction counts for the last 30 days.
// GET /api/v1/dashboard/interactions-chart
func (h *Handler) InteractionsChart(c *gin.Context) {
	result, err := h.svc.InteractionsChart(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CitiesChart returns prospect counts for the top cities.
// GET /api/v1/dashboard/cities-chart
func (h *Handler) CitiesChart(c *gin.Context) {
	result, err := h.svc.CitiesChart(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
