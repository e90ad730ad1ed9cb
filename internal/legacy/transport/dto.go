// Package transport defines request and response DTOs for the legacy module.
package transport

import "encoding/json"

// ListProspectsRequest carries pagination and filters for the prospect list.
type ListProspectsRequest struct {
	Page   int     `form:"page,default=1" validate:"min=1"`
	Limit  int     `form:"limit,default=20" validate:"min=1,max=100"`
	Search *string `form:"search" validate:"omitempty,min=1,max=100"`
	City   *string `form:"city" validate:"omitempty,min=1,max=100"`
	Status *string `form:"status" validate:"omitempty,oneof=new contacted in_process enrolled not_interested"`
	Origin *string `form:"origin" validate:"omitempty,min=1,max=100"`
}

// CreateProspectRequest creates a prospect record.
type CreateProspectRequest struct {
	DocumentType string  `json:"document_type" validate:"omitempty,min=2,max=20"`
	DNI          string  `json:"dni" validate:"required,min=6,max=20"`
	FullName     string  `json:"full_name" validate:"required,min=2,max=200"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone" validate:"omitempty,min=6,max=30"`
	City         *string `json:"city" validate:"omitempty,min=1,max=100"`
	Origin       *string `json:"origin" validate:"omitempty,min=1,max=100"`
	DataConsent  bool    `json:"data_consent"`
	Status       string  `json:"status" validate:"omitempty,oneof=new contacted in_process enrolled not_interested"`
}

// UpdateProspectRequest applies a partial update. Absent fields are untouched.
type UpdateProspectRequest struct {
	DocumentType *string `json:"document_type" validate:"omitempty,min=2,max=20"`
	DNI          *string `json:"dni" validate:"omitempty,min=6,max=20"`
	FullName     *string `json:"full_name" validate:"omitempty,min=2,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,min=6,max=30"`
	City         *string `json:"city" validate:"omitempty,min=1,max=100"`
	Origin       *string `json:"origin" validate:"omitempty,min=1,max=100"`
	DataConsent  *bool   `json:"data_consent"`
	Status       *string `json:"status" validate:"omitempty,oneof=new contacted in_process enrolled not_interested"`
}

type ProspectResponse struct {
	ID           string  `json:"id"`
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

type InteractionResponse struct {
	ID                string          `json:"id"`
	ProspectID        string          `json:"prospect_id"`
	NFCUID            *string         `json:"nfc_uid"`
	DeviceID          *string         `json:"device_id"`
	Module            *string         `json:"module"`
	Action            *string         `json:"action"`
	FlowID            *string         `json:"flow_id"`
	FlowOrder         *int            `json:"flow_order"`
	InteractionStatus *string         `json:"interaction_status"`
	Payload           json.RawMessage `json:"payload"`
	Timestamp         string          `json:"timestamp"`
}

type TestResultResponse struct {
	ID             string  `json:"id"`
	TestID         *string `json:"test_id"`
	ProspectID     string  `json:"prospect_id"`
	Score          string  `json:"score"`
	Classification *string `json:"classification"`
	Timestamp      string  `json:"timestamp"`
}

type AdvisoryResponse struct {
	ID                string  `json:"id"`
	ProspectID        string  `json:"prospect_id"`
	AdvisorID         *string `json:"advisor_id"`
	Motivations       *string `json:"motivations"`
	Barriers          *string `json:"barriers"`
	PreferredModality *string `json:"preferred_modality"`
	Notes             *string `json:"notes"`
	Date              string  `json:"date"`
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
