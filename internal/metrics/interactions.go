package metrics

// ModuleActivity is a grouped interaction aggregate per portal module.
type ModuleActivity struct {
	Module            string
	TotalInteractions int
	UniqueProspects   int
}

// ModulePattern is the emitted per-module interaction row.
type ModulePattern struct {
	Module                     string  `json:"module"`
	TotalInteractions          int     `json:"total_interactions"`
	UniqueProspects            int     `json:"unique_prospects"`
	AvgInteractionsPerProspect float64 `json:"avg_interactions_per_prospect"`
}

// DeviceActivity is a device usage row (already limited and ordered by the
// storage query).
type DeviceActivity struct {
	DeviceID     string `json:"device_id"`
	Interactions int    `json:"interactions"`
}

// InteractionStatusCount is a grouped count per interaction status.
type InteractionStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// InteractionPatterns is the interaction pattern aggregation.
type InteractionPatterns struct {
	Modules             []ModulePattern          `json:"modules"`
	TopDevices          []DeviceActivity         `json:"top_devices"`
	InteractionStatuses []InteractionStatusCount `json:"interaction_statuses"`
	TotalInteractions   int                      `json:"total_interactions"`
}

// ComputeInteractionPatterns derives per-module averages and the overall
// interaction total from grouped activity rows.
func ComputeInteractionPatterns(modules []ModuleActivity, devices []DeviceActivity, statuses []InteractionStatusCount) InteractionPatterns {
	patterns := make([]ModulePattern, 0, len(modules))
	total := 0
	for _, m := range modules {
		total += m.TotalInteractions

		avg := 0.0
		if m.UniqueProspects > 0 {
			avg = Round2(float64(m.TotalInteractions) / float64(m.UniqueProspects))
		}

		patterns = append(patterns, ModulePattern{
			Module:                     m.Module,
			TotalInteractions:          m.TotalInteractions,
			UniqueProspects:            m.UniqueProspects,
			AvgInteractionsPerProspect: avg,
		})
	}

	return InteractionPatterns{
		Modules:             patterns,
		TopDevices:          devices,
		InteractionStatuses: statuses,
		TotalInteractions:   total,
	}
}

// OperationalInputs holds the window counts feeding the operational KPIs.
type OperationalInputs struct {
	TotalProspects     int
	NewThisWeek        int
	EnrolledThisMonth  int
	InProcess          int
	RecentInteractions int
	RecentTests        int
	RecentAdvisories   int
}

// OperationalKPIs is the operational KPI payload.
type OperationalKPIs struct {
	TotalProspects     int     `json:"total_prospects"`
	NewProspectsWeek   int     `json:"new_prospects_week"`
	EnrollmentsMonth   int     `json:"enrollments_month"`
	ProspectsInProcess int     `json:"prospects_in_process"`
	RecentInteractions int     `json:"recent_interactions"`
	RecentTests        int     `json:"recent_tests"`
	RecentAdvisories   int     `json:"recent_advisories"`
	WeeklyConversion   float64 `json:"weekly_conversion"`
}

// ComputeOperationalKPIs packages the window counts, deriving the weekly
// conversion ratio of this month's enrollments against this week's new
// prospects.
func ComputeOperationalKPIs(in OperationalInputs) OperationalKPIs {
	return OperationalKPIs{
		TotalProspects:     in.TotalProspects,
		NewProspectsWeek:   in.NewThisWeek,
		EnrollmentsMonth:   in.EnrolledThisMonth,
		ProspectsInProcess: in.InProcess,
		RecentInteractions: in.RecentInteractions,
		RecentTests:        in.RecentTests,
		RecentAdvisories:   in.RecentAdvisories,
		WeeklyConversion:   Round2(Percent(in.EnrolledThisMonth, in.NewThisWeek)),
	}
}
