package metrics

import "time"

// avgConversionTimeDays is an estimated constant until prospect status
// transitions carry their own timestamps.
const avgConversionTimeDays = 18.5

// TrendInputs holds the month-over-month counts feeding trend computation.
type TrendInputs struct {
	CurrentLeads     int
	PreviousLeads    int
	CurrentEnrolled  int
	PreviousEnrolled int
}

// Trends carries the month-over-month deltas for the KPI cards.
type Trends struct {
	LeadsTrend      float64 `json:"leads_trend"`
	EnrolledTrend   float64 `json:"enrolled_trend"`
	ConversionTrend float64 `json:"conversion_trend"`
	TimeTrend       float64 `json:"time_trend"`
}

// RealTimeMetrics is the KPI card payload.
type RealTimeMetrics struct {
	TotalLeads            int     `json:"total_leads"`
	TotalEnrolled         int     `json:"total_enrolled"`
	ConversionRate        float64 `json:"conversion_rate"`
	AvgConversionTimeDays float64 `json:"avg_conversion_time_days"`
	Trends                Trends  `json:"trends"`
}

// ComputeRealTime derives the current KPI values and their month-over-month
// trends. Lead and enrollment trends are relative percent changes; the
// conversion trend is deliberately the absolute difference between the two
// period conversion percentages, computed from unrounded intermediates.
func ComputeRealTime(totalLeads, totalEnrolled int, in TrendInputs) RealTimeMetrics {
	currentConversion := Percent(in.CurrentEnrolled, in.CurrentLeads)
	previousConversion := Percent(in.PreviousEnrolled, in.PreviousLeads)

	return RealTimeMetrics{
		TotalLeads:            totalLeads,
		TotalEnrolled:         totalEnrolled,
		ConversionRate:        Round2(Percent(totalEnrolled, totalLeads)),
		AvgConversionTimeDays: avgConversionTimeDays,
		Trends: Trends{
			LeadsTrend:      Round2(RelativeTrend(in.CurrentLeads, in.PreviousLeads)),
			EnrolledTrend:   Round2(RelativeTrend(in.CurrentEnrolled, in.PreviousEnrolled)),
			ConversionTrend: Round2(currentConversion - previousConversion),
			TimeTrend:       0,
		},
	}
}

// MonthWindows returns the half-open month boundaries used for trend queries:
// the current month starts at currentStart and runs to now; the previous
// month is [previousStart, currentStart).
func MonthWindows(now time.Time) (previousStart, currentStart time.Time) {
	currentStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart = currentStart.AddDate(0, -1, 0)
	return previousStart, currentStart
}
