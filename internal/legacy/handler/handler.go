// Package handler exposes the legacy prospect endpoints over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prospect_portal_backend/internal/legacy/service"
	"prospect_portal_backend/internal/legacy/transport"
	"prospect_portal_backend/platform/httpkit"
	"prospect_portal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid prospect id"
)

// Handler handles HTTP requests for the legacy table family.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List retrieves prospects with filters and pagination.
// GET /api/v1/legacy/prospects
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
// GET /api/v1/legacy/prospects/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.prospectID(c)
	if !ok {
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Create registers a new prospect.
// POST /api/v1/legacy/prospects
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Update applies a partial update to a prospect.
// PUT /api/v1/legacy/prospects/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.prospectID(c)
	if !ok {
		return
	}

	var req transport.UpdateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Delete removes a prospect and its dependent rows.
// DELETE /api/v1/legacy/prospects/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.prospectID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.Delete(c.Request.Context(), id)) {
		return
	}
	httpkit.OK(c, gin.H{"message": "prospect deleted"})
}

// Interactions lists a prospect's interactions, newest first.
// GET /api/v1/legacy/prospects/:id/interactions
func (h *Handler) Interactions(c *gin.Context) {
	id, ok := h.prospectID(c)
	if !ok {
		return
	}

	result, err := h.svc.Interactions(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// TestResults lists a prospect's vocational test results.
// GET /api/v1/legacy/prospects/:id/tests
func (h *Handler) TestResults(c *gin.Context) {
	id, ok := h.prospectID(c)
	if !ok {
		return
	}

	result, err := h.svc.TestResults(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Advisories lists a prospect's advisory sessions.
// GET /api/v1/legacy/prospects/:id/advisories
func (h *Handler) Advisories(c *gin.Context) {
	id, ok := h.prospectID(c)
	if !ok {
		return
	}

	result, err := h.svc.Advisories(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// DashboardMetrics returns entity totals for the overview cards.
// GET /api/v1/legacy/dashboard/metrics
func (h *Handler) DashboardMetrics(c *gin.Context) {
	result, err := h.svc.DashboardMetrics(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// InteractionsChart returns daily interaction counts for the last 30 days.
// GET /api/v1/legacy/dashboard/interactions-chart
func (h *Handler) InteractionsChart(c *gin.Context) {
	result, err := h.svc.InteractionsChart(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CitiesChart returns prospect counts for the top cities.
// GET /api/v1/legacy/dashboard/cities-chart
func (h *Handler) CitiesChart(c *gin.Context) {
	result, err := h.svc.CitiesChart(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) prospectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}
