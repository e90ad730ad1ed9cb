// Package metrics is the analytics computation core of the portal. Every
// function here is a pure derivation over query-result-shaped rows: the
// package knows nothing about schemas, gin, or pgx, so both table
// generations feed it through the same canonical row types.
//
// Conventions shared by all computations:
//   - ratios are percentages rounded to exactly 2 decimal places on output,
//     while chained computations always use the unrounded intermediates
//   - any ratio with a zero denominator is 0, never a division fault
//   - nothing here mutates shared state; all functions are safe for
//     concurrent use
package metrics

import "math"

// Canonical prospect lifecycle statuses. Both schema generations project
// their stored labels onto these values before rows reach this package.
const (
	StatusNew           = "new"
	StatusContacted     = "contacted"
	StatusInProcess     = "in_process"
	StatusEnrolled      = "enrolled"
	StatusNotInterested = "not_interested"
)

// FunnelStages is the fixed funnel ordering from entry to exit.
var FunnelStages = []string{
	StatusNew,
	StatusContacted,
	StatusInProcess,
	StatusEnrolled,
	StatusNotInterested,
}

// Round2 rounds to 2 decimal places, the display precision for every ratio
// this package returns.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percent returns numerator/denominator as an unrounded percentage, 0 when
// the denominator is 0.
func Percent(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

// RelativeTrend returns the relative percent change from previous to current,
// guarded to 0 when the previous period value is 0. The result is unrounded;
// callers round at the boundary.
func RelativeTrend(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
