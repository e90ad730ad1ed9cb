package metrics

import "testing"

func TestComputeTestPerformance_Summary(t *testing.T) {
	scores := []string{"60", "80", "100"}
	classes := []ClassificationCount{
		{Classification: "Alto", Count: 2},
		{Classification: "Medio", Count: 1},
	}

	result, err := ComputeTestPerformance(scores, classes, []string{"100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OverallStats.AverageScore != 80.00 {
		t.Fatalf("expected average 80.00, got %v", result.OverallStats.AverageScore)
	}
	if result.OverallStats.MinScore != 60 || result.OverallStats.MaxScore != 100 {
		t.Fatalf("expected min 60 max 100, got %d/%d", result.OverallStats.MinScore, result.OverallStats.MaxScore)
	}
	if result.OverallStats.TotalTests != 3 {
		t.Fatalf("expected 3 tests, got %d", result.OverallStats.TotalTests)
	}
	if result.Classifications[0].Percentage != 66.67 {
		t.Fatalf("expected classification share 66.67, got %v", result.Classifications[0].Percentage)
	}
	if result.EnrolledAvgScore != 100.00 {
		t.Fatalf("expected enrolled average 100.00, got %v", result.EnrolledAvgScore)
	}
}

func TestComputeTestPerformance_WhitespaceScoresParsed(t *testing.T) {
	result, err := ComputeTestPerformance([]string{" 85 ", "91"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallStats.AverageScore != 88.00 {
		t.Fatalf("expected average 88.00, got %v", result.OverallStats.AverageScore)
	}
}

func TestComputeTestPerformance_MalformedScoreIsError(t *testing.T) {
	_, err := ComputeTestPerformance([]string{"60", "N/A"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for non-numeric score")
	}

	_, err = ComputeTestPerformance([]string{"60"}, nil, []string{"bad"})
	if err == nil {
		t.Fatal("expected error for non-numeric enrolled score")
	}
}

func TestComputeTestPerformance_EmptyInputs(t *testing.T) {
	result, err := ComputeTestPerformance(nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallStats.AverageScore != 0 || result.OverallStats.TotalTests != 0 {
		t.Fatalf("expected zeroed summary, got %+v", result.OverallStats)
	}
	if result.EnrolledAvgScore != 0 {
		t.Fatalf("expected zero enrolled average, got %v", result.EnrolledAvgScore)
	}
}

func TestComputeTestPerformance_NegativeScoreKeptAsMin(t *testing.T) {
	result, err := ComputeTestPerformance([]string{"-5", "10"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallStats.MinScore != -5 {
		t.Fatalf("expected min -5, got %d", result.OverallStats.MinScore)
	}
}
