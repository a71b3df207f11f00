package booking

import (
	"context"
	"time"

	"officespace/internal/domain"
	"officespace/internal/repository"
)

// BookingRepository is the persistence contract for the booking store.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	CountOverlapping(ctx context.Context, resourceID int64, start, end time.Time, excludeID int64) (int64, error)
	UpdateTimes(ctx context.Context, id int64, start, end time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error
	UpdateClient(ctx context.Context, id int64, name, email, phone, notes string) error
}

// ResourceRepository resolves resource references on the write path.
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}
