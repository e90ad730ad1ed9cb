// Package service provides business logic for the legacy prospect records.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"prospect_portal_backend/internal/legacy/repository"
	"prospect_portal_backend/internal/legacy/transport"
	"prospect_portal_backend/internal/metrics"
	"prospect_portal_backend/platform/apperr"
	"prospect_portal_backend/platform/logger"
	"prospect_portal_backend/platform/phone"
)

const (
	defaultDocumentType   = "DNI"
	interactionsChartDays = 30
	citiesChartLimit      = 10
)

// Service provides prospect CRUD and dashboard aggregates over the legacy
// table family.
type Service struct {
	repo        *repository.Repository
	log         *logger.Logger
	phoneRegion string
}

func New(repo *repository.Repository, log *logger.Logger, phoneRegion string) *Service {
	return &Service{repo: repo, log: log, phoneRegion: phoneRegion}
}

func (s *Service) List(ctx context.Context, req transport.ListProspectsRequest) (transport.ListProspectsResponse, error) {
	items, total, err := s.repo.List(ctx, repository.ListProspectsParams{
		Page:   req.Page,
		Limit:  req.Limit,
		Search: req.Search,
		City:   req.City,
		Status: req.Status,
		Origin: req.Origin,
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

func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.ProspectResponse, error) {
	prospect, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProspectResponse{}, s.mapRepoError(err, "failed to load prospect")
	}
	return toProspectResponse(prospect), nil
}

func (s *Service) Create(ctx context.Context, req transport.CreateProspectRequest) (transport.ProspectResponse, error) {
	dni := strings.TrimSpace(req.DNI)
	email := strings.TrimSpace(req.Email)

	if exists, err := s.repo.ExistsByDNI(ctx, dni, nil); err != nil {
		return transport.ProspectResponse{}, apperr.Internal("failed to check document number", err)
	} else if exists {
		return transport.ProspectResponse{}, apperr.Conflict("a prospect with this document number already exists")
	}
	if exists, err := s.repo.ExistsByEmail(ctx, email, nil); err != nil {
		return transport.ProspectResponse{}, apperr.Internal("failed to check email", err)
	} else if exists {
		return transport.ProspectResponse{}, apperr.Conflict("a prospect with this email already exists")
	}

	documentType := strings.TrimSpace(req.DocumentType)
	if documentType == "" {
		documentType = defaultDocumentType
	}
	status := req.Status
	if status == "" {
		status = metrics.StatusNew
	}

	prospect, err := s.repo.Create(ctx, repository.CreateProspectParams{
		DocumentType: documentType,
		DNI:          dni,
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		Phone:        s.normalizePhone(req.Phone),
		City:         req.City,
		Origin:       req.Origin,
		DataConsent:  req.DataConsent,
		Status:       status,
	})
	if err != nil {
		return transport.ProspectResponse{}, apperr.Internal("failed to create prospect", err)
	}

	s.log.WithContext(ctx).Info("prospect created", "id", prospect.ID, "origin", prospect.Origin)
	return toProspectResponse(prospect), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateProspectRequest) (transport.ProspectResponse, error) {
	if req.DNI != nil {
		if exists, err := s.repo.ExistsByDNI(ctx, strings.TrimSpace(*req.DNI), &id); err != nil {
			return transport.ProspectResponse{}, apperr.Internal("failed to check document number", err)
		} else if exists {
			return transport.ProspectResponse{}, apperr.Conflict("a prospect with this document number already exists")
		}
	}
	if req.Email != nil {
		if exists, err := s.repo.ExistsByEmail(ctx, strings.TrimSpace(*req.Email), &id); err != nil {
			return transport.ProspectResponse{}, apperr.Internal("failed to check email", err)
		} else if exists {
			return transport.ProspectResponse{}, apperr.Conflict("a prospect with this email already exists")
		}
	}

	prospect, err := s.repo.Update(ctx, id, repository.UpdateProspectParams{
		DocumentType: req.DocumentType,
		DNI:          req.DNI,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        s.normalizePhone(req.Phone),
		City:         req.City,
		Origin:       req.Origin,
		DataConsent:  req.DataConsent,
		Status:       req.Status,
	})
	if err != nil {
		return transport.ProspectResponse{}, s.mapRepoError(err, "failed to update prospect")
	}

	return toProspectResponse(prospect), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, "failed to delete prospect")
	}
	s.log.WithContext(ctx).Info("prospect deleted", "id", id)
	return nil
}

func (s *Service) Interactions(ctx context.Context, id uuid.UUID) ([]transport.InteractionResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, s.mapRepoError(err, "failed to load prospect")
	}

	items, err := s.repo.ListInteractions(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to list interactions", err)
	}

	responses := make([]transport.InteractionResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, transport.InteractionResponse{
			ID:                item.ID.String(),
			ProspectID:        item.ProspectID.String(),
			NFCUID:            item.NFCUID,
			DeviceID:          item.DeviceID,
			Module:            item.Module,
			Action:            item.Action,
			FlowID:            item.FlowID,
			FlowOrder:         item.FlowOrder,
			InteractionStatus: item.InteractionStatus,
			Payload:           item.Payload,
			Timestamp:         item.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *Service) TestResults(ctx context.Context, id uuid.UUID) ([]transport.TestResultResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, s.mapRepoError(err, "failed to load prospect")
	}

	items, err := s.repo.ListTestResults(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to list test results", err)
	}

	responses := make([]transport.TestResultResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, transport.TestResultResponse{
			ID:             item.ID.String(),
			TestID:         item.TestID,
			ProspectID:     item.ProspectID.String(),
			Score:          item.Score,
			Classification: item.Classification,
			Timestamp:      item.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *Service) Advisories(ctx context.Context, id uuid.UUID) ([]transport.AdvisoryResponse, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, s.mapRepoError(err, "failed to load prospect")
	}

	items, err := s.repo.ListAdvisories(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to list advisories", err)
	}

	responses := make([]transport.AdvisoryResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, transport.AdvisoryResponse{
			ID:                item.ID.String(),
			ProspectID:        item.ProspectID.String(),
			AdvisorID:         item.AdvisorID,
			Motivations:       item.Motivations,
			Barriers:          item.Barriers,
			PreferredModality: item.PreferredModality,
			Notes:             item.Notes,
			Date:              item.Date.UTC().Format(time.RFC3339),
		})
	}
	return responses, nil
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

func (s *Service) normalizePhone(raw *string) *string {
	if raw == nil {
		return nil
	}
	normalized := phone.NormalizeE164(*raw, s.phoneRegion)
	return &normalized
}

func (s *Service) mapRepoError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("prospect not found")
	}
	s.log.DatabaseError(message, err)
	return apperr.Internal(message, err)
}

func toProspectResponse(p repository.Prospect) transport.ProspectResponse {
	return transport.ProspectResponse{
		ID:           p.ID.String(),
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
