// Package service provides business logic for the current prospect records.
package service

import (
	"context"
	"errors"
	"time"

	"prospect_portal_backend/internal/metrics"
	"prospect_portal_backend/internal/prospects/repository"
	"prospect_portal_backend/internal/prospects/transport"
	"prospect_portal_backend/platform/apperr"
	"prospect_portal_backend/platform/logger"
)

const (
	interactionsChartDays = 30
	citiesChartLimit      = 10
)

type Service struct {
	repo *repository.Repository
	log  *logger.Logger
}

func New(repo *repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, req transport.ListProspectsRequest) (transport.ListProspectsResponse, error) {
	items, total, err := s.repo.List(ctx, repository.ListProspectsParams{
		Page:   req.Page,
		Limit:  req.Limit,
		Search: req.Search,
		City:   req.City,
		Status: req.Status,
	})
	if err != nil {
		return transport.ListProspectsResponse{}, apperr.Internal("failed to list prospects", err)
	}

	pages := 0
	if total > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}

	responses := make([]transport.ProspectResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toProspectResponse(item))
	}

	return transport.ListProspectsResponse{
		Data: responses,
		Pagination: transport.Pagination{
			Page:  req.Page,
			Limit: req.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (transport.ProspectResponse, error) {
	prospect, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.ProspectResponse{}, apperr.NotFound("prospect not found")
		}
		return transport.ProspectResponse{}, apperr.Internal("failed to load prospect", err)
	}
	return toProspectResponse(prospect), nil
}

func (s *Service) DashboardMetrics(ctx context.Context) (transport.DashboardMetricsResponse, error) {
	counts, err := s.repo.DashboardCounts(ctx)
	if err != nil {
		return transport.DashboardMetricsResponse{}, apperr.Internal("failed to load dashboard metrics", err)
	}
	return transport.DashboardMetricsResponse{
		TotalProspects:    counts.TotalProspects,
		TotalInteractions: counts.TotalInteractions,
		TotalTests:        counts.TotalTests,
		TotalAdvisories:   counts.TotalAdvisories,
		ActiveCenters:     counts.ActiveCenters,
		TotalDevices:      counts.TotalDevices,
	}, nil
}

func (s *Service) InteractionsChart(ctx context.Context) (transport.ChartResponse, error) {
	since := time.Now().UTC().AddDate(0, 0, -interactionsChartDays)
	rows, err := s.repo.InteractionsPerDay(ctx, since)
	if err != nil {
		return transport.ChartResponse{}, apperr.Internal("failed to load interactions chart", err)
	}

	points := make([]transport.ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, transport.ChartPoint{
			Label: row.Day.Format("2006-01-02"),
			Value: row.Count,
		})
	}
	return transport.ChartResponse{Data: points}, nil
}

func (s *Service) CitiesChart(ctx context.Context) (transport.ChartResponse, error) {
	rows, err := s.repo.ProspectsByCity(ctx, citiesChartLimit)
	if err != nil {
		return transport.ChartResponse{}, apperr.Internal("failed to load cities chart", err)
	}

	points := make([]transport.ChartPoint, 0, len(rows))
	for _, row := range rows {
		label := metrics.UnspecifiedLabel
		if row.City != nil && *row.City != "" {
			label = *row.City
		}
		points = append(points, transport.ChartPoint{Label: label, Value: row.Count})
	}
	return transport.ChartResponse{Data: points}, nil
}

func toProspectResponse(p repository.Prospect) transport.ProspectResponse {
	return transport.ProspectResponse{
		ID:           p.ID,
		DocumentType: p.DocumentType,
		DNI:          p.DNI,
		FullName:     p.FullName,
		Email:        p.Email,
		Phone:        p.Phone,
		City:         p.City,
		Status:       p.Status,
		Origin:       p.Origin,
		DataConsent:  p.DataConsent,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
