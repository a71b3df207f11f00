package calendar

import (
	"context"
	"time"

	"officespace/internal/domain"
)

type BookingReader interface {
	ListActive(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

type RequestReader interface {
	ListNew(ctx context.Context) ([]domain.BookingRequest, error)
}

type ResourceReader interface {
	List(ctx context.Context, resourceType string) ([]domain.Resource, error)
}
