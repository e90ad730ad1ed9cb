// Package transport defines request and response DTOs for the prospects module.
package transport

// ListProspectsRequest carries pagination and filters for the prospect list.
type ListProspectsRequest struct {
	Page   int     `form:"page,default=1" validate:"min=1"`
	Limit  int     `form:"limit,default=20" validate:"min=1,max=100"`
	Search *string `form:"search" validate:"omitempty,min=1,max=100"`
	City   *string `form:"city" validate:"omitempty,min=1,max=100"`
	Status *string `form:"status" validate:"omitempty,oneof=new contacted in_process enrolled not_interested"`
}

type ProspectResponse struct {
	ID           int64   `json:"id"`
	DocumentType string  `json:"document_type"`
	DNI          string  `json:"dni"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	Status       string  `json:"status"`
	Origin       *string `json:"origin"`
	DataConsent  bool    `json:"data_consent"`
	CreatedAt    string  `json:"created_at"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ListProspectsResponse struct {
	Data       []ProspectResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// DashboardMetricsResponse is the overview card payload.
type DashboardMetricsResponse struct {
	TotalProspects    int `json:"total_prospects"`
	TotalInteractions int `json:"total_interactions"`
	TotalTests        int `json:"total_tests"`
	TotalAdvisories   int `json:"total_advisories"`
	ActiveCenters     int `json:"active_centers"`
	TotalDevices      int `json:"total_devices"`
}

type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ChartResponse struct {
	Data []ChartPoint `json:"data"`
}
