package metrics

import "sort"

// Placeholder labels for prospects with no recorded origin or city. These are
// semantic buckets, not missing data: unspecified rows are always counted.
const (
	DirectChannelLabel  = "Direct"
	UnspecifiedLabel    = "Unspecified"
	topCitiesSliceLimit = 5
)

// GroupStats is a grouped aggregate keyed by origin or city. A nil Key means
// the field was null or empty in storage.
type GroupStats struct {
	Key       *string
	Total     int
	Enrolled  int
	Contacted int
}

// ChannelStats is the per-channel effectiveness row.
type ChannelStats struct {
	Channel        string  `json:"channel"`
	TotalLeads     int     `json:"total_leads"`
	Contacted      int     `json:"contacted"`
	Enrolled       int     `json:"enrolled"`
	ContactRate    float64 `json:"contact_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	QualityScore   float64 `json:"quality_score"`
}

// ChannelReport is the channel effectiveness aggregation.
type ChannelReport struct {
	Channels       []ChannelStats `json:"channels"`
	BestPerforming *ChannelStats  `json:"best_performing"`
	TotalChannels  int            `json:"total_channels"`
}

// CityStats is the per-city distribution row.
type CityStats struct {
	City           string  `json:"city"`
	TotalProspects int     `json:"total_prospects"`
	Contacted      int     `json:"contacted"`
	Enrolled       int     `json:"enrolled"`
	ContactRate    float64 `json:"contact_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	QualityScore   float64 `json:"quality_score"`
}

// GeographicReport is the city distribution aggregation.
type GeographicReport struct {
	Cities      []CityStats `json:"cities"`
	TopCities   []CityStats `json:"top_cities"`
	TotalCities int         `json:"total_cities"`
}

// ChannelEffectiveness aggregates prospects grouped by origin. A nil origin
// is the "Direct" channel. Channels are sorted descending by conversion rate;
// ties keep the relative order of the input.
func ChannelEffectiveness(groups []GroupStats) ChannelReport {
	channels := make([]ChannelStats, 0, len(groups))
	for _, g := range groups {
		conversion := Percent(g.Enrolled, g.Total)
		contact := Percent(g.Contacted, g.Total)

		channels = append(channels, ChannelStats{
			Channel:        labelOr(g.Key, DirectChannelLabel),
			TotalLeads:     g.Total,
			Contacted:      g.Contacted,
			Enrolled:       g.Enrolled,
			ContactRate:    Round2(contact),
			ConversionRate: Round2(conversion),
			QualityScore:   Round2((conversion + contact) / 2),
		})
	}

	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].ConversionRate > channels[j].ConversionRate
	})

	report := ChannelReport{
		Channels:      channels,
		TotalChannels: len(channels),
	}
	if len(channels) > 0 {
		report.BestPerforming = &channels[0]
	}
	return report
}

// GeographicDistribution aggregates prospects grouped by city. A nil city is
// the "Unspecified" bucket. Cities are sorted descending by total prospects;
// ties keep the relative order of the input. TopCities is the first five
// entries of the sorted list.
func GeographicDistribution(groups []GroupStats) GeographicReport {
	cities := make([]CityStats, 0, len(groups))
	for _, g := range groups {
		conversion := Percent(g.Enrolled, g.Total)
		contact := Percent(g.Contacted, g.Total)

		cities = append(cities, CityStats{
			City:           labelOr(g.Key, UnspecifiedLabel),
			TotalProspects: g.Total,
			Contacted:      g.Contacted,
			Enrolled:       g.Enrolled,
			ContactRate:    Round2(contact),
			ConversionRate: Round2(conversion),
			QualityScore:   Round2((conversion + contact) / 2),
		})
	}

	sort.SliceStable(cities, func(i, j int) bool {
		return cities[i].TotalProspects > cities[j].TotalProspects
	})

	top := cities
	if len(top) > topCitiesSliceLimit {
		top = top[:topCitiesSliceLimit]
	}

	return GeographicReport{
		Cities:      cities,
		TopCities:   top,
		TotalCities: len(cities),
	}
}

func labelOr(key *string, fallback string) string {
	if key == nil || *key == "" {
		return fallback
	}
	return *key
}
