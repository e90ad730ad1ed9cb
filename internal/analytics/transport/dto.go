// Package transport defines request DTOs for the analytics endpoints.
// Responses are the metrics engine's own structures, serialized as-is.
package transport

// ConversionFunnelRequest optionally bounds the funnel to a registration
// date range. Dates are inclusive, formatted 2006-01-02.
type ConversionFunnelRequest struct {
	StartDate *string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// TemporalTrendsRequest selects the bucket granularity for the registration
// trend series. Densify zero-fills the gaps for continuous chart axes.
type TemporalTrendsRequest struct {
	Period  string `form:"period,default=month" validate:"oneof=day week month"`
	Densify bool   `form:"densify"`
}
