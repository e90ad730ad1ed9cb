// Package service runs the aggregation queries and feeds the metrics engine.
// Independent queries for one payload fan out on an errgroup; the group
// context cancels the rest as soon as one fails.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"prospect_portal_backend/internal/analytics/repository"
	"prospect_portal_backend/internal/metrics"
	"prospect_portal_backend/platform/apperr"
	"prospect_portal_backend/platform/logger"
)

const topDevicesLimit = 10

// pipelineStatuses are the statuses counted as actively worked prospects.
var pipelineStatuses = []string{metrics.StatusContacted, metrics.StatusInProcess}

type Service struct {
	repo *repository.Repository
	log  *logger.Logger
	now  func() time.Time
}

func New(repo *repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// RealTimeMetrics builds the KPI card payload with month-over-month trends.
func (s *Service) RealTimeMetrics(ctx context.Context) (metrics.RealTimeMetrics, error) {
	now := s.now()
	previousStart, currentStart := metrics.MonthWindows(now)

	var totalLeads, totalEnrolled int
	var in metrics.TrendInputs

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalLeads, err = s.repo.CountProspects(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalEnrolled, err = s.repo.CountEnrolled(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.CurrentLeads, err = s.repo.CountRegistrations(gctx, currentStart, now)
		return err
	})
	g.Go(func() (err error) {
		in.PreviousLeads, err = s.repo.CountRegistrations(gctx, previousStart, currentStart)
		return err
	})
	g.Go(func() (err error) {
		in.CurrentEnrolled, err = s.repo.CountEnrolledRegistrations(gctx, currentStart, now)
		return err
	})
	g.Go(func() (err error) {
		in.PreviousEnrolled, err = s.repo.CountEnrolledRegistrations(gctx, previousStart, currentStart)
		return err
	})
	if err := g.Wait(); err != nil {
		return metrics.RealTimeMetrics{}, apperr.Internal("failed to load real-time metrics", err)
	}

	return metrics.ComputeRealTime(totalLeads, totalEnrolled, in), nil
}

// ConversionFunnel builds the staged funnel, optionally bounded to a
// registration window. end is an inclusive date; the exclusive upper bound is
// the following midnight.
func (s *Service) ConversionFunnel(ctx context.Context, start, end *time.Time) (metrics.FunnelReport, error) {
	var until *time.Time
	if end != nil {
		u := end.AddDate(0, 0, 1)
		until = &u
	}

	counts, err := s.repo.StatusCounts(ctx, start, until)
	if err != nil {
		return metrics.FunnelReport{}, apperr.Internal("failed to load funnel counts", err)
	}
	return metrics.BuildFunnel(counts), nil
}

func (s *Service) ChannelEffectiveness(ctx context.Context) (metrics.ChannelReport, error) {
	groups, err := s.repo.OriginStats(ctx)
	if err != nil {
		return metrics.ChannelReport{}, apperr.Internal("failed to load channel stats", err)
	}
	return metrics.ChannelEffectiveness(groups), nil
}

func (s *Service) GeographicDistribution(ctx context.Context) (metrics.GeographicReport, error) {
	groups, err := s.repo.CityStats(ctx)
	if err != nil {
		return metrics.GeographicReport{}, apperr.Internal("failed to load city stats", err)
	}
	return metrics.GeographicDistribution(groups), nil
}

// TemporalTrends buckets registrations by the requested granularity over its
// fixed lookback window.
func (s *Service) TemporalTrends(ctx context.Context, granularity metrics.Granularity, densify bool) (metrics.TrendSeries, error) {
	now := s.now()
	cutoff := granularity.Cutoff(now)

	rows, err := s.repo.RegistrationTrend(ctx, granularity, cutoff)
	if err != nil {
		return metrics.TrendSeries{}, apperr.Internal("failed to load registration trend", err)
	}

	if densify {
		return metrics.DensifyTrends(granularity, rows, cutoff, now), nil
	}
	return metrics.TemporalTrends(granularity, rows), nil
}

func (s *Service) InteractionPatterns(ctx context.Context) (metrics.InteractionPatterns, error) {
	var modules []metrics.ModuleActivity
	var devices []metrics.DeviceActivity
	var statuses []metrics.InteractionStatusCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		modules, err = s.repo.ModuleActivity(gctx)
		return err
	})
	g.Go(func() (err error) {
		devices, err = s.repo.TopDevices(gctx, topDevicesLimit)
		return err
	})
	g.Go(func() (err error) {
		statuses, err = s.repo.InteractionStatusCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return metrics.InteractionPatterns{}, apperr.Internal("failed to load interaction patterns", err)
	}

	return metrics.ComputeInteractionPatterns(modules, devices, statuses), nil
}

// TestPerformance aggregates test scores. A malformed stored score is a data
// fault and surfaces as an internal error.
func (s *Service) TestPerformance(ctx context.Context) (metrics.TestPerformance, error) {
	var scores, enrolledScores []string
	var classes []metrics.ClassificationCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		scores, err = s.repo.TestScores(gctx)
		return err
	})
	g.Go(func() (err error) {
		enrolledScores, err = s.repo.EnrolledTestScores(gctx)
		return err
	})
	g.Go(func() (err error) {
		classes, err = s.repo.ClassificationCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return metrics.TestPerformance{}, apperr.Internal("failed to load test results", err)
	}

	performance, err := metrics.ComputeTestPerformance(scores, classes, enrolledScores)
	if err != nil {
		s.log.Error("test score aggregation failed", "error", err)
		return metrics.TestPerformance{}, apperr.Internal("failed to aggregate test scores", err)
	}
	return performance, nil
}

func (s *Service) AdvisoryImpact(ctx context.Context) (metrics.AdvisoryImpact, error) {
	var total, advised, enrolledAdvised int
	var modalities []metrics.ModalityCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.repo.CountProspects(gctx)
		return err
	})
	g.Go(func() (err error) {
		advised, err = s.repo.AdvisedProspects(gctx)
		return err
	})
	g.Go(func() (err error) {
		enrolledAdvised, err = s.repo.EnrolledAdvisedProspects(gctx)
		return err
	})
	g.Go(func() (err error) {
		modalities, err = s.repo.ModalityCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return metrics.AdvisoryImpact{}, apperr.Internal("failed to load advisory impact", err)
	}

	return metrics.ComputeAdvisoryImpact(total, advised, enrolledAdvised, modalities), nil
}

// OperationalKPIs builds the operational counters over trailing windows: the
// last 7 days for new prospects and recent activity, the last 30 days for
// enrollments. In-process covers every actively worked status.
func (s *Service) OperationalKPIs(ctx context.Context) (metrics.OperationalKPIs, error) {
	weekAgo, monthAgo := operationalWindows(s.now())

	var in metrics.OperationalInputs

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.TotalProspects, err = s.repo.CountProspects(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.NewThisWeek, err = s.repo.CountRegistrationsSince(gctx, weekAgo)
		return err
	})
	g.Go(func() (err error) {
		in.EnrolledThisMonth, err = s.repo.CountStatusesSince(gctx, []string{metrics.StatusEnrolled}, &monthAgo)
		return err
	})
	g.Go(func() (err error) {
		in.InProcess, err = s.repo.CountStatusesSince(gctx, pipelineStatuses, nil)
		return err
	})
	g.Go(func() (err error) {
		in.RecentInteractions, err = s.repo.CountInteractionsSince(gctx, weekAgo)
		return err
	})
	g.Go(func() (err error) {
		in.RecentTests, err = s.repo.CountTestsSince(gctx, weekAgo)
		return err
	})
	g.Go(func() (err error) {
		in.RecentAdvisories, err = s.repo.CountAdvisoriesSince(gctx, weekAgo)
		return err
	})
	if err := g.Wait(); err != nil {
		return metrics.OperationalKPIs{}, apperr.Internal("failed to load operational KPIs", err)
	}

	return metrics.ComputeOperationalKPIs(in), nil
}

// operationalWindows returns the trailing 7 and 30 day cutoffs for the
// operational counters.
func operationalWindows(now time.Time) (weekAgo, monthAgo time.Time) {
	return now.AddDate(0, 0, -7), now.AddDate(0, 0, -30)
}
