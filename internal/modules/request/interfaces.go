package request

import (
	"context"

	"officespace/internal/domain"
	"officespace/internal/modules/booking"
)

type RequestRepository interface {
	Create(ctx context.Context, r *domain.BookingRequest) error
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	List(ctx context.Context, requestType, status string) ([]domain.BookingRequest, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, bookingID *int64) (int64, error)
}

// BookingWriter is the moment-of-truth dependency: approval goes through
// the exact same create path (and conflict rule) as direct staff bookings.
// SetStatus releases a created booking when the approval loses the race for
// the request itself.
type BookingWriter interface {
	Create(ctx context.Context, req booking.CreateBookingRequest) (*domain.Booking, error)
	SetStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}
