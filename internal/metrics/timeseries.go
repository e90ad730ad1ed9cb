package metrics

import "time"

// Granularity selects the time bucket size for trend series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Valid reports whether g is a supported granularity.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// LookbackDays is the fixed analysis window tied to each granularity:
// 30 days of daily buckets, 12 weeks of weekly buckets, 12 months of
// monthly buckets.
func (g Granularity) LookbackDays() int {
	switch g {
	case GranularityDay:
		return 30
	case GranularityWeek:
		return 84
	default:
		return 365
	}
}

// Cutoff returns the inclusive lower bound of the lookback window.
func (g Granularity) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -g.LookbackDays())
}

// PeriodCount is a time bucket with registration and enrollment counts, as
// grouped by the storage layer (date_trunc over registration timestamps).
type PeriodCount struct {
	Period        time.Time
	Registrations int
	Enrollments   int
}

// TrendPoint is one emitted bucket of the registration trend series.
type TrendPoint struct {
	Period         string  `json:"period"`
	Registrations  int     `json:"registrations"`
	Enrollments    int     `json:"enrollments"`
	ConversionRate float64 `json:"conversion_rate"`
}

// TrendSeries is the time-bucketed registration/enrollment series.
type TrendSeries struct {
	Period       Granularity  `json:"period"`
	Trends       []TrendPoint `json:"trends"`
	TotalPeriods int          `json:"total_periods"`
}

// TemporalTrends derives per-bucket conversion rates from grouped period
// counts. The series is sparse: only buckets with at least one registration
// appear, exactly as the grouped query produces them. Charts expecting a
// continuous axis can pass the result through DensifyTrends.
func TemporalTrends(g Granularity, rows []PeriodCount) TrendSeries {
	points := make([]TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, TrendPoint{
			Period:         formatPeriod(g, row.Period),
			Registrations:  row.Registrations,
			Enrollments:    row.Enrollments,
			ConversionRate: Round2(Percent(row.Enrollments, row.Registrations)),
		})
	}

	return TrendSeries{
		Period:       g,
		Trends:       points,
		TotalPeriods: len(points),
	}
}

// DensifyTrends zero-fills the gaps of a sparse period series between from
// and to (inclusive bucket starts), producing a continuous series. Counts for
// buckets present in rows are preserved; missing buckets get zero
// registrations and a zero conversion rate.
func DensifyTrends(g Granularity, rows []PeriodCount, from, to time.Time) TrendSeries {
	byBucket := make(map[string]PeriodCount, len(rows))
	for _, row := range rows {
		byBucket[formatPeriod(g, row.Period)] = row
	}

	points := make([]TrendPoint, 0, len(rows))
	for bucket := truncateToBucket(g, from); !bucket.After(to); bucket = nextBucket(g, bucket) {
		key := formatPeriod(g, bucket)
		row, ok := byBucket[key]
		if !ok {
			points = append(points, TrendPoint{Period: key})
			continue
		}
		points = append(points, TrendPoint{
			Period:         key,
			Registrations:  row.Registrations,
			Enrollments:    row.Enrollments,
			ConversionRate: Round2(Percent(row.Enrollments, row.Registrations)),
		})
	}

	return TrendSeries{
		Period:       g,
		Trends:       points,
		TotalPeriods: len(points),
	}
}

// formatPeriod renders a bucket start the way the storage layer's date
// functions do: plain dates for daily buckets, timestamp strings for
// truncated weekly and monthly buckets.
func formatPeriod(g Granularity, t time.Time) string {
	if g == GranularityDay {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02T15:04:05")
}

func truncateToBucket(g Granularity, t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	switch g {
	case GranularityWeek:
		// ISO weeks start on Monday, matching date_trunc('week', ...).
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return day
	}
}

func nextBucket(g Granularity, t time.Time) time.Time {
	switch g {
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
