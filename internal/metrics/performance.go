package metrics

import (
	"fmt"
	"strconv"
	"strings"
)

// ClassificationCount is a grouped count of test results per classification.
type ClassificationCount struct {
	Classification string
	Count          int
}

// ClassificationShare is a classification bucket with its share of all tests.
type ClassificationShare struct {
	Classification string  `json:"classification"`
	Count          int     `json:"count"`
	Percentage     float64 `json:"percentage"`
}

// ScoreSummary holds the overall score statistics.
type ScoreSummary struct {
	AverageScore float64 `json:"average_score"`
	MinScore     int     `json:"min_score"`
	MaxScore     int     `json:"max_score"`
	TotalTests   int     `json:"total_tests"`
}

// TestPerformance is the test performance aggregation.
type TestPerformance struct {
	OverallStats     ScoreSummary          `json:"overall_stats"`
	Classifications  []ClassificationShare `json:"classifications"`
	EnrolledAvgScore float64               `json:"enrolled_avg_score"`
}

// ParseScore coerces a stored score to an integer. The legacy schema keeps
// scores as text; a non-numeric value is a data fault that must surface, not
// be skipped.
func ParseScore(raw string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("malformed test score %q: %w", raw, err)
	}
	return score, nil
}

// ComputeTestPerformance aggregates raw score values and classification
// counts. scores holds every stored score, enrolledScores only those joined
// to enrolled prospects. Returns an error on the first non-numeric score.
func ComputeTestPerformance(scores []string, classes []ClassificationCount, enrolledScores []string) (TestPerformance, error) {
	summary, err := summarizeScores(scores)
	if err != nil {
		return TestPerformance{}, err
	}

	enrolledAvg, err := averageScore(enrolledScores)
	if err != nil {
		return TestPerformance{}, err
	}

	shares := make([]ClassificationShare, 0, len(classes))
	for _, class := range classes {
		shares = append(shares, ClassificationShare{
			Classification: class.Classification,
			Count:          class.Count,
			Percentage:     Round2(Percent(class.Count, summary.TotalTests)),
		})
	}

	return TestPerformance{
		OverallStats:     summary,
		Classifications:  shares,
		EnrolledAvgScore: Round2(enrolledAvg),
	}, nil
}

func summarizeScores(scores []string) (ScoreSummary, error) {
	if len(scores) == 0 {
		return ScoreSummary{}, nil
	}

	sum := 0
	min := 0
	max := 0
	for i, raw := range scores {
		score, err := ParseScore(raw)
		if err != nil {
			return ScoreSummary{}, err
		}
		sum += score
		if i == 0 || score < min {
			min = score
		}
		if i == 0 || score > max {
			max = score
		}
	}

	return ScoreSummary{
		AverageScore: Round2(float64(sum) / float64(len(scores))),
		MinScore:     min,
		MaxScore:     max,
		TotalTests:   len(scores),
	}, nil
}

func averageScore(scores []string) (float64, error) {
	if len(scores) == 0 {
		return 0, nil
	}
	sum := 0
	for _, raw := range scores {
		score, err := ParseScore(raw)
		if err != nil {
			return 0, err
		}
		sum += score
	}
	return float64(sum) / float64(len(scores)), nil
}
