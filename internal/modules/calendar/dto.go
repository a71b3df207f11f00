package calendar

import "officespace/internal/pkg/timefmt"

// Style variants rendered by the front end.
const (
	StyleSolid       = "solid"        // confirmed
	StyleDashed      = "dashed"       // pending
	StyleDotted      = "dotted"       // blocked, low opacity
	StyleDashedPulse = "dashed-pulse" // unvetted request overlay
)

// Event is one render-ready calendar entry, either a booking or a pending
// request flagged by IsRequest.
type Event struct {
	ID           string            `json:"id"`
	BookingID    int64             `json:"booking_id,omitempty"`
	RequestID    int64             `json:"request_id,omitempty"`
	ResourceID   int64             `json:"resource_id"`
	ResourceName string            `json:"resource_name"`
	Title        string            `json:"title"`
	StartTime    timefmt.LocalTime `json:"start_time"`
	EndTime      timefmt.LocalTime `json:"end_time"`
	Status       string            `json:"status"`
	IsRequest    bool              `json:"is_request"`
	Color        string            `json:"color"`
	Style        string            `json:"style"`
}
