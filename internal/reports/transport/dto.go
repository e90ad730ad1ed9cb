// Package transport defines request DTOs and response envelopes for reports.
package transport

import "prospect_portal_backend/internal/metrics"

// Formats supported by every report endpoint.
const (
	FormatJSON  = "json"
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// ReportRequest carries the output format and the filter criteria. Dates are
// inclusive, formatted 2006-01-02.
type ReportRequest struct {
	Format    string  `form:"format,default=json" validate:"oneof=json csv excel"`
	StartDate *string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
	City      *string `form:"city" validate:"omitempty,min=1,max=100"`
	Channel   *string `form:"channel" validate:"omitempty,min=1,max=100"`
	Status    *string `form:"status" validate:"omitempty,oneof=new contacted in_process enrolled not_interested"`
}

// FiltersEcho repeats the applied criteria inside the report envelope.
type FiltersEcho struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	City      *string `json:"city,omitempty"`
	Channel   *string `json:"channel,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// Envelope is the JSON shape shared by every report.
type Envelope struct {
	ReportType    string       `json:"report_type"`
	GeneratedAt   string       `json:"generated_at"`
	Filters       *FiltersEcho `json:"filters,omitempty"`
	TotalRecords  *int         `json:"total_records,omitempty"`
	TotalChannels *int         `json:"total_channels,omitempty"`
	TotalCities   *int         `json:"total_cities,omitempty"`
	Data          interface{}  `json:"data"`
}

type ProspectReportRow struct {
	DNI          string  `json:"dni"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	Status       string  `json:"status"`
	Origin       *string `json:"origin"`
	RegisteredAt string  `json:"registered_at"`
}

type ConversionReportRow struct {
	Month          string  `json:"month"`
	Registrations  int     `json:"registrations"`
	Enrollments    int     `json:"enrollments"`
	ConversionRate float64 `json:"conversion_rate"`
}

// ExecutiveSummary is the combined payload of the executive report.
type ExecutiveSummary struct {
	Summary     metrics.RealTimeMetrics `json:"summary"`
	Funnel      metrics.FunnelReport    `json:"funnel"`
	TopChannels []metrics.ChannelStats  `json:"top_channels"`
	TopCities   []metrics.CityStats     `json:"top_cities"`
}

type InteractionReportRow struct {
	Timestamp    string  `json:"timestamp"`
	ProspectName string  `json:"prospect_name"`
	Module       *string `json:"module"`
	Action       *string `json:"action"`
	DeviceID     *string `json:"device_id"`
	Status       *string `json:"status"`
}
