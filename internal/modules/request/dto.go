package request

import (
	"officespace/internal/domain"
	"officespace/internal/pkg/timefmt"
)

type SubmitRequest struct {
	ResourceType string            `json:"resource_type"`
	ResourceID   int64             `json:"resource_id" binding:"required"`
	ResourceName string            `json:"resource_name"`
	ClientName   string            `json:"client_name" binding:"required"`
	ClientEmail  string            `json:"client_email" binding:"required,email"`
	ClientPhone  string            `json:"client_phone"`
	StartTime    timefmt.LocalTime `json:"start_time" binding:"required"`
	EndTime      timefmt.LocalTime `json:"end_time" binding:"required"`
	Notes        string            `json:"notes"`
}

type RequestResponse struct {
	ID           int64             `json:"id"`
	Reference    string            `json:"reference"`
	RequestType  string            `json:"request_type"`
	Status       string            `json:"status"`
	ResourceType string            `json:"resource_type"`
	ResourceID   int64             `json:"resource_id"`
	ResourceName string            `json:"resource_name"`
	ClientName   string            `json:"client_name"`
	ClientEmail  string            `json:"client_email"`
	ClientPhone  string            `json:"client_phone,omitempty"`
	StartTime    timefmt.LocalTime `json:"start_time"`
	EndTime      timefmt.LocalTime `json:"end_time"`
	Notes        string            `json:"notes,omitempty"`
	BookingID    *int64            `json:"booking_id,omitempty"`
}

func toRequestResponse(r *domain.BookingRequest) RequestResponse {
	return RequestResponse{
		ID:           r.ID,
		Reference:    r.Reference,
		RequestType:  string(r.RequestType),
		Status:       string(r.Status),
		ResourceType: string(r.ResourceType),
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		ClientPhone:  r.ClientPhone,
		StartTime:    timefmt.LocalTime{Time: r.StartTime},
		EndTime:      timefmt.LocalTime{Time: r.EndTime},
		Notes:        r.Notes,
		BookingID:    r.BookingID,
	}
}
