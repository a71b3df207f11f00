package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	// BookingBlocked marks administratively seeded blackout windows. Blocked
	// bookings still occupy their slot but are immutable to staff edits.
	BookingBlocked BookingStatus = "blocked"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingBlocked:
		return true
	}
	return false
}

// Active reports whether a booking in this status occupies its time slot
// for conflict purposes. Cancelled bookings never do.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingBlocked
}

// CanTransition is the single place the booking state machine lives.
// pending and blocked are entry states, cancelled is terminal, and blocked
// is never reachable or leavable through normal transitions.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCancelled
	}
	return false
}

type Booking struct {
	ID           int64         `json:"id"`
	ResourceType ResourceType  `json:"resource_type"`
	ResourceID   int64         `json:"resource_id" validate:"required"`
	ResourceName string        `json:"resource_name"`
	ClientName   string        `json:"client_name" validate:"required"`
	ClientEmail  string        `json:"client_email,omitempty"`
	ClientPhone  string        `json:"client_phone,omitempty"`
	StartTime    time.Time     `json:"start_time" validate:"required"`
	EndTime      time.Time     `json:"end_time" validate:"required"`
	Status       BookingStatus `json:"status"`
	Notes        string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`
}
