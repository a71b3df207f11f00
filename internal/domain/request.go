package domain

import "time"

type RequestType string

const (
	RequestTypeBooking RequestType = "booking"
)

type RequestStatus string

const (
	RequestNew      RequestStatus = "new"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	return s == RequestNew || s == RequestApproved || s == RequestRejected
}

// BookingRequest is an unvetted public submission. It never enters the
// availability model; only approval materializes it into a Booking, and a
// request that left status "new" is immutable from then on.
type BookingRequest struct {
	ID           int64         `json:"id"`
	Reference    string        `json:"reference"`
	RequestType  RequestType   `json:"request_type"`
	Status       RequestStatus `json:"status"`
	ResourceType ResourceType  `json:"resource_type"`
	ResourceID   int64         `json:"resource_id" validate:"required"`
	ResourceName string        `json:"resource_name"`
	ClientName   string        `json:"client_name" validate:"required"`
	ClientEmail  string        `json:"client_email" validate:"required,email"`
	ClientPhone  string        `json:"client_phone,omitempty"`
	StartTime    time.Time     `json:"start_time" validate:"required"`
	EndTime      time.Time     `json:"end_time" validate:"required"`
	Notes        string        `json:"notes,omitempty" gorm:"type:text"`
	BookingID    *int64        `json:"booking_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
