package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"officespace/internal/domain"
	"officespace/internal/pkg/validator"
)

type Service struct {
	resources ResourceRepository
	bookings  BookingCounter
}

func NewService(resources ResourceRepository, bookings BookingCounter) *Service {
	return &Service{resources: resources, bookings: bookings}
}

func (s *Service) List(ctx context.Context, resourceType string) ([]domain.Resource, error) {
	if resourceType != "" && !domain.ResourceType(resourceType).Valid() {
		return nil, ErrInvalidType
	}
	return s.resources.List(ctx, resourceType)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Resource, error) {
	r, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, req CreateResourceRequest) (*domain.Resource, error) {
	rt := domain.ResourceType(req.Type)
	if !rt.Valid() {
		return nil, ErrInvalidType
	}

	r := &domain.Resource{
		Name:        req.Name,
		Type:        rt,
		Capacity:    req.Capacity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if fields := validator.Validate(r); fields != nil {
		return nil, ErrValidation
	}
	if err := s.resources.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateResourceRequest) (*domain.Resource, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrValidation
		}
		r.Name = *req.Name
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrValidation
		}
		r.Capacity = *req.Capacity
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.ImageURL != nil {
		r.ImageURL = *req.ImageURL
	}

	if err := s.resources.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete refuses while active (pending, confirmed, blocked) bookings still
// reference the resource. Cancelled history does not block deletion.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	cnt, err := s.bookings.CountActiveForResource(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrActiveBookings
	}
	return s.resources.Delete(ctx, id)
}
