package metrics

// ModalityCount is a grouped count of advisories per preferred modality. A
// nil Modality means none was recorded.
type ModalityCount struct {
	Modality *string
	Count    int
}

// ModalityShare is an emitted modality bucket.
type ModalityShare struct {
	Modality string `json:"modality"`
	Count    int    `json:"count"`
}

// AdvisoryImpact is the advisory impact aggregation.
type AdvisoryImpact struct {
	ProspectsWithAdvisory    int             `json:"prospects_with_advisory"`
	ProspectsWithoutAdvisory int             `json:"prospects_without_advisory"`
	AdvisoryConversionRate   float64         `json:"advisory_conversion_rate"`
	EnrolledWithAdvisory     int             `json:"enrolled_with_advisory"`
	PreferredModalities      []ModalityShare `json:"preferred_modalities"`
	AdvisoryCoverage         float64         `json:"advisory_coverage"`
}

// ComputeAdvisoryImpact derives advisory coverage and conversion numbers.
// withAdvisory is the distinct count of prospects having at least one
// advisory; enrolledWithAdvisory the distinct count of those that enrolled.
func ComputeAdvisoryImpact(totalProspects, withAdvisory, enrolledWithAdvisory int, modalities []ModalityCount) AdvisoryImpact {
	shares := make([]ModalityShare, 0, len(modalities))
	for _, m := range modalities {
		shares = append(shares, ModalityShare{
			Modality: labelOr(m.Modality, UnspecifiedLabel),
			Count:    m.Count,
		})
	}

	return AdvisoryImpact{
		ProspectsWithAdvisory:    withAdvisory,
		ProspectsWithoutAdvisory: totalProspects - withAdvisory,
		AdvisoryConversionRate:   Round2(Percent(enrolledWithAdvisory, withAdvisory)),
		EnrolledWithAdvisory:     enrolledWithAdvisory,
		PreferredModalities:      shares,
		AdvisoryCoverage:         Round2(Percent(withAdvisory, totalProspects)),
	}
}
