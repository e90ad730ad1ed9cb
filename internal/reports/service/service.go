// Package service builds the report payloads in two shapes at once: the JSON
// envelope and a flat table for the downloadable formats.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	analyticsservice "prospect_portal_backend/internal/analytics/service"
	"prospect_portal_backend/internal/metrics"
	"prospect_portal_backend/internal/reports/render"
	"prospect_portal_backend/internal/reports/repository"
	"prospect_portal_backend/internal/reports/transport"
	"prospect_portal_backend/platform/apperr"
	"prospect_portal_backend/platform/logger"
)

const (
	dateLayout       = "2006-01-02"
	monthLayout      = "2006-01"
	topChannelsLimit = 5
)

type Service struct {
	repo      *repository.Repository
	analytics *analyticsservice.Service
	log       *logger.Logger
	now       func() time.Time
}

func New(repo *repository.Repository, analytics *analyticsservice.Service, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		analytics: analytics,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Prospects lists every prospect matching the filter criteria.
func (s *Service) Prospects(ctx context.Context, req transport.ReportRequest) (transport.Envelope, render.Table, error) {
	rows, err := s.repo.ListProspects(ctx, toFilters(req))
	if err != nil {
		return transport.Envelope{}, render.Table{}, apperr.Internal("failed to load prospects report", err)
	}

	data := make([]transport.ProspectReportRow, 0, len(rows))
	table := render.Table{
		Sheet:   "Prospects",
		Headers: []string{"DNI", "Full Name", "Email", "Phone", "City", "Status", "Origin", "Registered At"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		registered := row.RegisteredAt.UTC().Format(time.RFC3339)
		data = append(data, transport.ProspectReportRow{
			DNI:          row.DNI,
			FullName:     row.FullName,
			Email:        row.Email,
			Phone:        row.Phone,
			City:         row.City,
			Status:       row.Status,
			Origin:       row.Origin,
			RegisteredAt: registered,
		})
		table.Rows = append(table.Rows, []any{
			row.DNI, row.FullName, row.Email, deref(row.Phone), deref(row.City),
			row.Status, deref(row.Origin), registered,
		})
	}

	envelope := s.envelope("prospects", req)
	envelope.TotalRecords = count(len(data))
	envelope.Data = data
	return envelope, table, nil
}

// Conversions reports month-by-month registrations against enrollments.
func (s *Service) Conversions(ctx context.Context, req transport.ReportRequest) (transport.Envelope, render.Table, error) {
	rows, err := s.repo.MonthlyConversions(ctx, toFilters(req))
	if err != nil {
		return transport.Envelope{}, render.Table{}, apperr.Internal("failed to load conversions report", err)
	}

	data := make([]transport.ConversionReportRow, 0, len(rows))
	table := render.Table{
		Sheet:   "Conversions",
		Headers: []string{"Month", "Registrations", "Enrollments", "Conversion Rate"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		rate := metrics.Round2(metrics.Percent(row.Enrolled, row.Total))
		month := row.Month.Format(monthLayout)
		data = append(data, transport.ConversionReportRow{
			Month:          month,
			Registrations:  row.Total,
			Enrollments:    row.Enrolled,
			ConversionRate: rate,
		})
		table.Rows = append(table.Rows, []any{month, row.Total, row.Enrolled, rate})
	}

	envelope := s.envelope("conversions", req)
	envelope.TotalRecords = count(len(data))
	envelope.Data = data
	return envelope, table, nil
}

// Channels reports per-origin effectiveness.
func (s *Service) Channels(ctx context.Context, req transport.ReportRequest) (transport.Envelope, render.Table, error) {
	report, err := s.analytics.ChannelEffectiveness(ctx)
	if err != nil {
		return transport.Envelope{}, render.Table{}, err
	}

	table := render.Table{
		Sheet:   "Channels",
		Headers: []string{"Channel", "Total Leads", "Contacted", "Enrolled", "Contact Rate", "Conversion Rate", "Quality Score"},
		Rows:    make([][]any, 0, len(report.Channels)),
	}
	for _, ch := range report.Channels {
		table.Rows = append(table.Rows, []any{
			ch.Channel, ch.TotalLeads, ch.Contacted, ch.Enrolled,
			ch.ContactRate, ch.ConversionRate, ch.QualityScore,
		})
	}

	envelope := s.envelope("channels", req)
	envelope.TotalChannels = count(report.TotalChannels)
	envelope.Data = report.Channels
	return envelope, table, nil
}

// Geographic reports per-city distribution.
func (s *Service) Geographic(ctx context.Context, req transport.ReportRequest) (transport.Envelope, render.Table, error) {
	report, err := s.analytics.GeographicDistribution(ctx)
	if err != nil {
		return transport.Envelope{}, render.Table{}, err
	}

	table := render.Table{
		Sheet:   "Geographic",
		Headers: []string{"City", "Total Prospects", "Contacted", "Enrolled", "Contact Rate", "Conversion Rate", "Quality Score"},
		Rows:    make([][]any, 0, len(report.Cities)),
	}
	for _, city := range report.Cities {
		table.Rows = append(table.Rows, []any{
			city.City, city.TotalProspects, city.Contacted, city.Enrolled,
			city.ContactRate, city.ConversionRate, city.QualityScore,
		})
	}

	envelope := s.envelope("geographic", req)
	envelope.TotalCities = count(report.TotalCities)
	envelope.Data = report.Cities
	return envelope, table, nil
}

// Interactions lists interactions joined to their prospect.
func (s *Service) Interactions(ctx context.Context, req transport.ReportRequest) (transport.Envelope, render.Table, error) {
	rows, err := s.repo.ListInteractions(ctx, toFilters(req))
	if err != nil {
		return transport.Envelope{}, render.Table{}, apperr.Internal("failed to load interactions report", err)
	}

	data := make([]transport.InteractionReportRow, 0, len(rows))
	table := render.Table{
		Sheet:   "Interactions",
		Headers: []string{"Timestamp", "Prospect", "Module", "Action", "Device", "Status"},
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, row := range rows {
		timestamp := row.Timestamp.UTC().Format(time.RFC3339)
		data = append(data, transport.InteractionReportRow{
			Timestamp:    timestamp,
			ProspectName: row.ProspectName,
			Module:       row.Module,
			Action:       row.Action,
			DeviceID:     row.DeviceID,
			Status:       row.Status,
		})
		table.Rows = append(table.Rows, []any{
			timestamp, row.ProspectName, deref(row.Module), deref(row.Action),
			deref(row.DeviceID), deref(row.Status),
		})
	}

	envelope := s.envelope("interactions", req)
	envelope.TotalRecords = count(len(data))
	envelope.Data = data
	return envelope, table, nil
}

// Executive combines the KPI summary, funnel and top channels/cities into a
// single overview. The four aggregations run concurrently.
func (s *Service) Executive(ctx context.Context, req transport.ReportRequest) (transport.Envelope, render.Table, error) {
	var summary metrics.RealTimeMetrics
	var funnel metrics.FunnelReport
	var channels metrics.ChannelReport
	var geographic metrics.GeographicReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = s.analytics.RealTimeMetrics(gctx)
		return err
	})
	g.Go(func() (err error) {
		funnel, err = s.analytics.ConversionFunnel(gctx, nil, nil)
		return err
	})
	g.Go(func() (err error) {
		channels, err = s.analytics.ChannelEffectiveness(gctx)
		return err
	})
	g.Go(func() (err error) {
		geographic, err = s.analytics.GeographicDistribution(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.Envelope{}, render.Table{}, err
	}

	topChannels := channels.Channels
	if len(topChannels) > topChannelsLimit {
		topChannels = topChannels[:topChannelsLimit]
	}

	table := render.Table{
		Sheet:   "Executive",
		Headers: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Total Leads", summary.TotalLeads},
			{"Total Enrolled", summary.TotalEnrolled},
			{"Conversion Rate", summary.ConversionRate},
			{"Avg Conversion Time (days)", summary.AvgConversionTimeDays},
			{"Leads Trend", summary.Trends.LeadsTrend},
			{"Enrolled Trend", summary.Trends.EnrolledTrend},
			{"Conversion Trend", summary.Trends.ConversionTrend},
		},
	}
	if channels.BestPerforming != nil {
		table.Rows = append(table.Rows, []any{"Best Channel", channels.BestPerforming.Channel})
	}
	if len(geographic.TopCities) > 0 {
		table.Rows = append(table.Rows, []any{"Top City", geographic.TopCities[0].City})
	}

	envelope := s.envelope("executive", req)
	envelope.Data = transport.ExecutiveSummary{
		Summary:     summary,
		Funnel:      funnel,
		TopChannels: topChannels,
		TopCities:   geographic.TopCities,
	}
	return envelope, table, nil
}

func (s *Service) envelope(reportType string, req transport.ReportRequest) transport.Envelope {
	return transport.Envelope{
		ReportType:  reportType,
		GeneratedAt: s.now().Format(time.RFC3339),
		Filters:     filtersEcho(req),
	}
}

// filtersEcho returns nil when no criteria were applied, keeping the field
// out of unfiltered envelopes.
func filtersEcho(req transport.ReportRequest) *transport.FiltersEcho {
	if req.StartDate == nil && req.EndDate == nil && req.City == nil && req.Channel == nil && req.Status == nil {
		return nil
	}
	return &transport.FiltersEcho{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		City:      req.City,
		Channel:   req.Channel,
		Status:    req.Status,
	}
}

// toFilters parses the request criteria. Dates already passed format
// validation; the inclusive end date becomes an exclusive next-day bound.
func toFilters(req transport.ReportRequest) repository.Filters {
	filters := repository.Filters{
		City:    req.City,
		Channel: req.Channel,
		Status:  req.Status,
	}
	if req.StartDate != nil {
		if start, err := time.Parse(dateLayout, *req.StartDate); err == nil {
			filters.Start = &start
		}
	}
	if req.EndDate != nil {
		if end, err := time.Parse(dateLayout, *req.EndDate); err == nil {
			bound := end.AddDate(0, 0, 1)
			filters.End = &bound
		}
	}
	return filters
}

func count(n int) *int {
	return &n
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
