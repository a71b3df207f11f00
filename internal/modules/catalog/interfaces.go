package catalog

import (
	"context"

	"officespace/internal/domain"
)

type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	List(ctx context.Context, resourceType string) ([]domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id int64) error
}

// BookingCounter guards deletion: a resource referenced by slot-holding
// bookings must not disappear.
type BookingCounter interface {
	CountActiveForResource(ctx context.Context, resourceID int64) (int64, error)
}
