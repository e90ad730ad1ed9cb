// Package handler exposes the report endpoints over HTTP. Every endpoint
// serves the same payload as JSON, CSV or Excel depending on the format
// parameter.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"prospect_portal_backend/internal/reports/render"
	"prospect_portal_backend/internal/reports/service"
	"prospect_portal_backend/internal/reports/transport"
	"prospect_portal_backend/platform/httpkit"
	"prospect_portal_backend/platform/logger"
	"prospect_portal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"

	csvContentType   = "text/csv"
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler handles HTTP requests for reports.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

type reportFunc func(ctx context.Context, req transport.ReportRequest) (transport.Envelope, render.Table, error)

// Prospects serves the prospect listing report.
// GET /api/v1/reports/prospects
func (h *Handler) Prospects(c *gin.Context) {
	h.serve(c, "prospects", h.svc.Prospects)
}

// Conversions serves the month-by-month conversion report.
// GET /api/v1/reports/conversions
func (h *Handler) Conversions(c *gin.Context) {
	h.serve(c, "conversions", h.svc.Conversions)
}

// Channels serves the channel effectiveness report.
// GET /api/v1/reports/channels
func (h *Handler) Channels(c *gin.Context) {
	h.serve(c, "channels", h.svc.Channels)
}

// Geographic serves the city distribution report.
// GET /api/v1/reports/geographic
func (h *Handler) Geographic(c *gin.Context) {
	h.serve(c, "geographic", h.svc.Geographic)
}

// Interactions serves the interaction listing report.
// GET /api/v1/reports/interactions
func (h *Handler) Interactions(c *gin.Context) {
	h.serve(c, "interactions", h.svc.Interactions)
}

// Executive serves the combined overview report.
// GET /api/v1/reports/executive
func (h *Handler) Executive(c *gin.Context) {
	h.serve(c, "executive", h.svc.Executive)
}

func (h *Handler) serve(c *gin.Context, name string, generate reportFunc) {
	var req transport.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	envelope, table, err := generate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	h.log.ReportGenerated(name, req.Format, len(table.Rows))

	switch req.Format {
	case transport.FormatCSV:
		body, err := render.CSV(table)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.Attachment(c, csvContentType, name+"_report", "csv", body)
	case transport.FormatExcel:
		body, err := render.Excel(table)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.Attachment(c, excelContentType, name+"_report", "xlsx", body)
	default:
		httpkit.OK(c, envelope)
	}
}
