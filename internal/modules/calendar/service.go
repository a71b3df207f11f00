package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"officespace/internal/domain"
	"officespace/internal/pkg/timefmt"
)

// Service is the read-only projector: it merges non-cancelled bookings and
// pending requests into one ordered, render-ready list. It writes nothing.
type Service struct {
	bookings  BookingReader
	requests  RequestReader
	resources ResourceReader
}

func NewService(bookings BookingReader, requests RequestReader, resources ResourceReader) *Service {
	return &Service{bookings: bookings, requests: requests, resources: resources}
}

// Events projects the calendar for the optional [from, to) window. Zero
// times mean an unbounded window. Reads run against whatever snapshot the
// store gives; a stale-by-one-write view is fine since the UI re-polls.
func (s *Service) Events(ctx context.Context, from, to time.Time) ([]Event, error) {
	bookings, err := s.bookings.ListActive(ctx, from, to)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.ListNew(ctx)
	if err != nil {
		return nil, err
	}

	// Catalog lookup is best-effort: a missing or deleted resource degrades
	// to the neutral color and the name snapshot on the record itself.
	known := map[int64]domain.Resource{}
	if resources, err := s.resources.List(ctx, ""); err == nil {
		for _, r := range resources {
			known[r.ID] = r
		}
	}

	events := make([]Event, 0, len(bookings)+len(requests))
	for i := range bookings {
		events = append(events, s.bookingEvent(&bookings[i], known))
	}
	for i := range requests {
		r := &requests[i]
		if !r.EndTime.After(r.StartTime) {
			continue // unusable time details, nothing to draw
		}
		if !overlapsWindow(r.StartTime, r.EndTime, from, to) {
			continue
		}
		events = append(events, s.requestEvent(r, known))
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartTime.Equal(events[j].StartTime.Time) {
			return events[i].StartTime.Before(events[j].StartTime.Time)
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (s *Service) bookingEvent(b *domain.Booking, known map[int64]domain.Resource) Event {
	name, color := resolveResource(b.ResourceID, b.ResourceName, known)
	return Event{
		ID:           fmt.Sprintf("booking-%d", b.ID),
		BookingID:    b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: name,
		Title:        fmt.Sprintf("%s · %s", name, b.ClientName),
		StartTime:    timefmt.LocalTime{Time: b.StartTime},
		EndTime:      timefmt.LocalTime{Time: b.EndTime},
		Status:       string(b.Status),
		IsRequest:    false,
		Color:        color,
		Style:        styleForStatus(b.Status),
	}
}

func (s *Service) requestEvent(r *domain.BookingRequest, known map[int64]domain.Resource) Event {
	name, color := resolveResource(r.ResourceID, r.ResourceName, known)
	return Event{
		ID:           fmt.Sprintf("request-%d", r.ID),
		RequestID:    r.ID,
		ResourceID:   r.ResourceID,
		ResourceName: name,
		Title:        fmt.Sprintf("%s · %s (request)", name, r.ClientName),
		StartTime:    timefmt.LocalTime{Time: r.StartTime},
		EndTime:      timefmt.LocalTime{Time: r.EndTime},
		Status:       string(r.Status),
		IsRequest:    true,
		Color:        color,
		Style:        StyleDashedPulse,
	}
}

func resolveResource(id int64, snapshotName string, known map[int64]domain.Resource) (string, string) {
	if r, ok := known[id]; ok {
		return r.Name, colorForResource(id)
	}
	name := snapshotName
	if name == "" {
		name = fmt.Sprintf("resource %d", id)
	}
	return name, neutralColor
}

func styleForStatus(status domain.BookingStatus) string {
	switch status {
	case domain.BookingConfirmed:
		return StyleSolid
	case domain.BookingBlocked:
		return StyleDotted
	default:
		return StyleDashed
	}
}

func overlapsWindow(start, end, from, to time.Time) bool {
	if !from.IsZero() && !end.After(from) {
		return false
	}
	if !to.IsZero() && !start.Before(to) {
		return false
	}
	return true
}
