package metrics

// StatusCount is a grouped count of prospects per canonical status.
type StatusCount struct {
	Status string
	Count  int
}

// FunnelStage is one stage of the conversion funnel.
type FunnelStage struct {
	Stage          string  `json:"stage"`
	Count          int     `json:"count"`
	Percentage     float64 `json:"percentage"`
	ConversionRate float64 `json:"conversion_rate"`
}

// FunnelReport is the ordered conversion funnel over the fixed stage sequence.
type FunnelReport struct {
	Funnel            []FunnelStage `json:"funnel"`
	TotalProspects    int           `json:"total_prospects"`
	OverallConversion float64       `json:"overall_conversion"`
}

// BuildFunnel produces the conversion funnel from grouped status counts.
// Stages absent from the input are emitted with count 0. The per-stage
// conversion rate is cumulative: stage i (i>0) is measured against the sum of
// counts for stages 0..i, not against the adjacent stage alone. The total
// includes counts for any status present in the input, even ones outside the
// fixed stage sequence.
func BuildFunnel(counts []StatusCount) FunnelReport {
	byStatus := make(map[string]int, len(counts))
	total := 0
	for _, sc := range counts {
		byStatus[sc.Status] += sc.Count
		total += sc.Count
	}

	funnel := make([]FunnelStage, 0, len(FunnelStages))
	cumulative := 0
	for i, stage := range FunnelStages {
		count := byStatus[stage]
		cumulative += count

		conversionRate := 0.0
		if i > 0 {
			conversionRate = Percent(count, cumulative)
		}

		funnel = append(funnel, FunnelStage{
			Stage:          stage,
			Count:          count,
			Percentage:     Round2(Percent(count, total)),
			ConversionRate: Round2(conversionRate),
		})
	}

	return FunnelReport{
		Funnel:            funnel,
		TotalProspects:    total,
		OverallConversion: Round2(Percent(byStatus[StatusEnrolled], total)),
	}
}
