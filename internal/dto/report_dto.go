package dto

import "github.com/voiceforher/report-intake/internal/models"

// CreateReportRequest is the POST /reports body. Zero values count as missing.
type CreateReportRequest struct {
	Age         int    `json:"age"`
	Location    string `json:"location"`
	EthnicGroup string `json:"ethnic_group"`
	TypeOfAbuse string `json:"type_of_abuse"`
	Description string `json:"description"`
}

type CreateReportResponse struct {
	ID uint `json:"id"`
}

// ReportResponse is one element of GET /reports. Description is omitted when
// the listing excludes it.
type ReportResponse struct {
	ID          uint   `json:"id"`
	Age         int    `json:"age"`
	Location    string `json:"location"`
	EthnicGroup string `json:"ethnic_group"`
	TypeOfAbuse string `json:"type_of_abuse"`
	Description string `json:"description,omitempty"`
}

func NewReportResponses(reports []models.Report) []ReportResponse {
	out := make([]ReportResponse, len(reports))
	for i, r := range reports {
		out[i] = ReportResponse{
			ID:          r.ID,
			Age:         r.Age,
			Location:    r.Location,
			EthnicGroup: r.EthnicGroup,
			TypeOfAbuse: r.TypeOfAbuse,
			Description: r.Description,
		}
	}
	return out
}
