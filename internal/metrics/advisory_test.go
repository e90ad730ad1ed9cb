package metrics

import "testing"

func TestComputeAdvisoryImpact_CoverageAndConversion(t *testing.T) {
	result := ComputeAdvisoryImpact(20, 8, 4, nil)

	if result.AdvisoryCoverage != 40.00 {
		t.Fatalf("expected coverage 40.00, got %v", result.AdvisoryCoverage)
	}
	if result.ProspectsWithoutAdvisory != 12 {
		t.Fatalf("expected 12 without advisory, got %d", result.ProspectsWithoutAdvisory)
	}
	if result.AdvisoryConversionRate != 50.00 {
		t.Fatalf("expected advisory conversion 50.00, got %v", result.AdvisoryConversionRate)
	}
}

func TestComputeAdvisoryImpact_ZeroDenominatorsGuarded(t *testing.T) {
	result := ComputeAdvisoryImpact(0, 0, 0, nil)

	if result.AdvisoryCoverage != 0 || result.AdvisoryConversionRate != 0 {
		t.Fatalf("expected guarded zero rates, got %+v", result)
	}
}

func TestComputeAdvisoryImpact_NilModalityIsUnspecified(t *testing.T) {
	virtual := "Virtual"
	result := ComputeAdvisoryImpact(10, 5, 2, []ModalityCount{
		{Modality: &virtual, Count: 3},
		{Modality: nil, Count: 2},
	})

	if len(result.PreferredModalities) != 2 {
		t.Fatalf("expected 2 modalities, got %d", len(result.PreferredModalities))
	}
	if result.PreferredModalities[1].Modality != UnspecifiedLabel {
		t.Fatalf("expected Unspecified modality, got %q", result.PreferredModalities[1].Modality)
	}
}

func TestComputeInteractionPatterns_AveragesGuarded(t *testing.T) {
	result := ComputeInteractionPatterns(
		[]ModuleActivity{
			{Module: "registro", TotalInteractions: 10, UniqueProspects: 4},
			{Module: "kiosk", TotalInteractions: 3, UniqueProspects: 0},
		},
		[]DeviceActivity{{DeviceID: "totem-1", Interactions: 7}},
		[]InteractionStatusCount{{Status: "completada", Count: 9}},
	)

	if result.TotalInteractions != 13 {
		t.Fatalf("expected 13 total interactions, got %d", result.TotalInteractions)
	}
	if result.Modules[0].AvgInteractionsPerProspect != 2.50 {
		t.Fatalf("expected avg 2.50, got %v", result.Modules[0].AvgInteractionsPerProspect)
	}
	if result.Modules[1].AvgInteractionsPerProspect != 0 {
		t.Fatalf("expected guarded avg 0, got %v", result.Modules[1].AvgInteractionsPerProspect)
	}
}

func TestComputeOperationalKPIs_WeeklyConversion(t *testing.T) {
	result := ComputeOperationalKPIs(OperationalInputs{
		TotalProspects:    100,
		NewThisWeek:       8,
		EnrolledThisMonth: 2,
		InProcess:         15,
	})

	if result.WeeklyConversion != 25.00 {
		t.Fatalf("expected weekly conversion 25.00, got %v", result.WeeklyConversion)
	}

	guarded := ComputeOperationalKPIs(OperationalInputs{EnrolledThisMonth: 3})
	if guarded.WeeklyConversion != 0 {
		t.Fatalf("expected guarded weekly conversion, got %v", guarded.WeeklyConversion)
	}
}
