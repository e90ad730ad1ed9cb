package metrics

import "testing"

func TestBuildFunnel_CountsAndOverallConversion(t *testing.T) {
	counts := []StatusCount{
		{Status: StatusEnrolled, Count: 3},
		{Status: StatusNew, Count: 7},
	}

	report := BuildFunnel(counts)

	if report.TotalProspects != 10 {
		t.Fatalf("expected total 10, got %d", report.TotalProspects)
	}
	if report.OverallConversion != 30.00 {
		t.Fatalf("expected overall conversion 30.00, got %v", report.OverallConversion)
	}

	enrolled := stageByName(t, report, StatusEnrolled)
	if enrolled.Count != 3 {
		t.Fatalf("expected enrolled count 3, got %d", enrolled.Count)
	}
	if enrolled.Percentage != 30.00 {
		t.Fatalf("expected enrolled percentage 30.00, got %v", enrolled.Percentage)
	}
}

func TestBuildFunnel_AbsentStagesEmittedWithZero(t *testing.T) {
	report := BuildFunnel([]StatusCount{{Status: StatusNew, Count: 5}})

	if len(report.Funnel) != len(FunnelStages) {
		t.Fatalf("expected %d stages, got %d", len(FunnelStages), len(report.Funnel))
	}
	contacted := stageByName(t, report, StatusContacted)
	if contacted.Count != 0 || contacted.Percentage != 0 {
		t.Fatalf("expected zeroed contacted stage, got %+v", contacted)
	}
}

func TestBuildFunnel_CumulativeConversionRate(t *testing.T) {
	report := BuildFunnel([]StatusCount{
		{Status: StatusNew, Count: 60},
		{Status: StatusContacted, Count: 30},
		{Status: StatusInProcess, Count: 10},
	})

	// contacted: 30 / (60+30) = 33.33, not the adjacent-stage 50.
	contacted := stageByName(t, report, StatusContacted)
	if contacted.ConversionRate != 33.33 {
		t.Fatalf("expected cumulative conversion 33.33, got %v", contacted.ConversionRate)
	}

	// in_process: 10 / (60+30+10) = 10.
	inProcess := stageByName(t, report, StatusInProcess)
	if inProcess.ConversionRate != 10.00 {
		t.Fatalf("expected cumulative conversion 10.00, got %v", inProcess.ConversionRate)
	}

	// first stage never has a conversion rate.
	first := stageByName(t, report, StatusNew)
	if first.ConversionRate != 0 {
		t.Fatalf("expected zero conversion for first stage, got %v", first.ConversionRate)
	}
}

func TestBuildFunnel_StageCountsSumToTotal(t *testing.T) {
	counts := []StatusCount{
		{Status: StatusNew, Count: 12},
		{Status: StatusContacted, Count: 7},
		{Status: StatusInProcess, Count: 4},
		{Status: StatusEnrolled, Count: 3},
		{Status: StatusNotInterested, Count: 9},
	}
	report := BuildFunnel(counts)

	sum := 0
	pctSum := 0.0
	for _, stage := range report.Funnel {
		sum += stage.Count
		pctSum += stage.Percentage
	}
	if sum != report.TotalProspects {
		t.Fatalf("stage counts sum %d != total %d", sum, report.TotalProspects)
	}
	if pctSum < 99.9 || pctSum > 100.1 {
		t.Fatalf("stage percentages should sum to ~100, got %v", pctSum)
	}
}

func TestBuildFunnel_EmptyInput(t *testing.T) {
	report := BuildFunnel(nil)

	if report.TotalProspects != 0 {
		t.Fatalf("expected total 0, got %d", report.TotalProspects)
	}
	if report.OverallConversion != 0 {
		t.Fatalf("expected overall conversion 0, got %v", report.OverallConversion)
	}
	for _, stage := range report.Funnel {
		if stage.Percentage != 0 || stage.ConversionRate != 0 {
			t.Fatalf("expected zeroed stage, got %+v", stage)
		}
	}
}

func stageByName(t *testing.T, report FunnelReport, name string) FunnelStage {
	t.Helper()
	for _, stage := range report.Funnel {
		if stage.Stage == name {
			return stage
		}
	}
	t.Fatalf("stage %s not found in funnel", name)
	return FunnelStage{}
}
