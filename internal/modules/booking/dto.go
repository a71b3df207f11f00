package booking

import (
	"officespace/internal/domain"
	"officespace/internal/pkg/timefmt"
)

type CreateBookingRequest struct {
	ResourceType string            `json:"resource_type"`
	ResourceID   int64             `json:"resource_id" binding:"required"`
	ResourceName string            `json:"resource_name"`
	ClientName   string            `json:"client_name" binding:"required"`
	ClientEmail  string            `json:"client_email"`
	ClientPhone  string            `json:"client_phone"`
	StartTime    timefmt.LocalTime `json:"start_time" binding:"required"`
	EndTime      timefmt.LocalTime `json:"end_time" binding:"required"`
	Notes        string            `json:"notes"`
	Status       string            `json:"status"`
}

// UpdateBookingRequest is a partial update: nil fields are left untouched.
// Time fields travel together; providing only one is a validation error.
type UpdateBookingRequest struct {
	StartTime   *timefmt.LocalTime `json:"start_time"`
	EndTime     *timefmt.LocalTime `json:"end_time"`
	ClientName  *string            `json:"client_name"`
	ClientEmail *string            `json:"client_email"`
	ClientPhone *string            `json:"client_phone"`
	Notes       *string            `json:"notes"`
	Status      *string            `json:"status"`
}

type ReassignRequest struct {
	ResourceID int64 `json:"resource_id" binding:"required"`
}

type BookingResponse struct {
	ID           int64             `json:"id"`
	ResourceType string            `json:"resource_type"`
	ResourceID   int64             `json:"resource_id"`
	ResourceName string            `json:"resource_name"`
	ClientName   string            `json:"client_name"`
	ClientEmail  string            `json:"client_email,omitempty"`
	ClientPhone  string            `json:"client_phone,omitempty"`
	StartTime    timefmt.LocalTime `json:"start_time"`
	EndTime      timefmt.LocalTime `json:"end_time"`
	Status       string            `json:"status"`
	Notes        string            `json:"notes,omitempty"`
}

func ToResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		ResourceType: string(b.ResourceType),
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientPhone:  b.ClientPhone,
		StartTime:    timefmt.LocalTime{Time: b.StartTime},
		EndTime:      timefmt.LocalTime{Time: b.EndTime},
		Status:       string(b.Status),
		Notes:        b.Notes,
	}
}
