package metrics

import "testing"

func TestChannelEffectiveness_RatesAndQualityScore(t *testing.T) {
	web := "web"
	report := ChannelEffectiveness([]GroupStats{
		{Key: &web, Total: 50, Enrolled: 10, Contacted: 20},
	})

	if len(report.Channels) != 1 {
		t.Fatalf("expected 1 channel, got %d", len(report.Channels))
	}
	ch := report.Channels[0]
	if ch.ConversionRate != 20.00 {
		t.Fatalf("expected conversion rate 20.00, got %v", ch.ConversionRate)
	}
	if ch.ContactRate != 40.00 {
		t.Fatalf("expected contact rate 40.00, got %v", ch.ContactRate)
	}
	if ch.QualityScore != 30.00 {
		t.Fatalf("expected quality score 30.00, got %v", ch.QualityScore)
	}
}

func TestChannelEffectiveness_NilOriginIsDirect(t *testing.T) {
	report := ChannelEffectiveness([]GroupStats{
		{Key: nil, Total: 4, Enrolled: 1, Contacted: 2},
	})

	if report.Channels[0].Channel != DirectChannelLabel {
		t.Fatalf("expected Direct label, got %q", report.Channels[0].Channel)
	}
}

func TestChannelEffectiveness_SortedByConversionDesc(t *testing.T) {
	a, b, c := "referral", "web", "fair"
	report := ChannelEffectiveness([]GroupStats{
		{Key: &a, Total: 10, Enrolled: 1},
		{Key: &b, Total: 10, Enrolled: 5},
		{Key: &c, Total: 10, Enrolled: 3},
	})

	order := []string{"web", "fair", "referral"}
	for i, want := range order {
		if report.Channels[i].Channel != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, report.Channels[i].Channel)
		}
	}
	if report.BestPerforming == nil || report.BestPerforming.Channel != "web" {
		t.Fatalf("expected best performing channel web, got %+v", report.BestPerforming)
	}
}

func TestChannelEffectiveness_EmptyInput(t *testing.T) {
	report := ChannelEffectiveness(nil)
	if report.BestPerforming != nil {
		t.Fatalf("expected nil best performing on empty input")
	}
	if report.TotalChannels != 0 {
		t.Fatalf("expected 0 channels, got %d", report.TotalChannels)
	}
}

func TestGeographicDistribution_NilCityIsUnspecified(t *testing.T) {
	lima := "Lima"
	report := GeographicDistribution([]GroupStats{
		{Key: &lima, Total: 5, Enrolled: 1},
		{Key: nil, Total: 3, Enrolled: 0},
	})

	if report.TotalCities != 2 {
		t.Fatalf("expected total_cities 2, got %d", report.TotalCities)
	}
	if report.Cities[1].City != UnspecifiedLabel {
		t.Fatalf("expected Unspecified bucket, got %q", report.Cities[1].City)
	}
}

func TestGeographicDistribution_SortedByTotalWithTopFive(t *testing.T) {
	names := []string{"Lima", "Arequipa", "Huancayo", "Cusco", "Trujillo", "Piura"}
	groups := make([]GroupStats, 0, len(names))
	for i := range names {
		groups = append(groups, GroupStats{Key: &names[i], Total: i + 1})
	}

	report := GeographicDistribution(groups)

	if report.Cities[0].City != "Piura" {
		t.Fatalf("expected largest city first, got %s", report.Cities[0].City)
	}
	if len(report.TopCities) != 5 {
		t.Fatalf("expected 5 top cities, got %d", len(report.TopCities))
	}
	if report.TotalCities != 6 {
		t.Fatalf("expected 6 cities, got %d", report.TotalCities)
	}
}

func TestGeographicDistribution_ZeroTotalsGuarded(t *testing.T) {
	empty := "Ghost"
	report := GeographicDistribution([]GroupStats{{Key: &empty, Total: 0}})
	city := report.Cities[0]
	if city.ConversionRate != 0 || city.ContactRate != 0 || city.QualityScore != 0 {
		t.Fatalf("expected guarded zero rates, got %+v", city)
	}
}
