package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"officespace/internal/domain"
	"officespace/internal/repository"
)

type Service struct {
	bookings  BookingRepository
	resources ResourceRepository
	locks     *resourceLocker
}

func NewService(bookings BookingRepository, resources ResourceRepository) *Service {
	return &Service{
		bookings:  bookings,
		resources: resources,
		locks:     newResourceLocker(),
	}
}

// Create validates the time range, resolves the resource reference and runs
// the availability check inside the per-resource critical section before the
// insert. A conflict is surfaced to the caller, never retried.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	start, end := req.StartTime.Time, req.EndTime.Time
	if !end.After(start) {
		return nil, ErrValidation
	}
	if req.ClientName == "" {
		return nil, ErrValidation
	}

	status := domain.BookingPending
	if req.Status != "" {
		status = domain.BookingStatus(req.Status)
		// blocked is seeded administratively, cancelled makes no sense at birth
		if status != domain.BookingPending && status != domain.BookingConfirmed {
			return nil, ErrValidation
		}
	}

	res, err := s.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	unlock := s.locks.lock(res.ID)
	defer unlock()

	cnt, err := s.bookings.CountOverlapping(ctx, res.ID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrConflict
	}

	b := &domain.Booking{
		ResourceType: res.Type,
		ResourceID:   res.ID,
		ResourceName: res.Name,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ClientPhone:  req.ClientPhone,
		StartTime:    start,
		EndTime:      end,
		Status:       status,
		Notes:        req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

// UpdateTimes handles drag/resize. Blocked bookings are immutable at this
// boundary, the availability check runs excluding the booking itself, and the
// status is left untouched.
func (s *Service) UpdateTimes(ctx context.Context, id int64, start, end time.Time) (*domain.Booking, error) {
	if !end.After(start) {
		return nil, ErrValidation
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingBlocked {
		return nil, ErrForbidden
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrInvalidTransition
	}

	unlock := s.locks.lock(b.ResourceID)
	defer unlock()

	cnt, err := s.bookings.CountOverlapping(ctx, b.ResourceID, start, end, b.ID)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrConflict
	}

	if err := s.bookings.UpdateTimes(ctx, b.ID, start, end); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// SetStatus applies the centralized transition table. Cancellation is an
// ordinary transition here, not a delete: the row stays forever.
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(b.Status, status) {
		return nil, ErrInvalidTransition
	}

	var cancelledAt *time.Time
	if status == domain.BookingCancelled {
		now := time.Now()
		cancelledAt = &now
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, status, cancelledAt); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// UpdateClient patches the free-form client contact fields. Nil means keep.
func (s *Service) UpdateClient(ctx context.Context, id int64, name, email, phone, notes *string) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingBlocked {
		return nil, ErrForbidden
	}

	merged := func(cur string, p *string) string {
		if p != nil {
			return *p
		}
		return cur
	}
	newName := merged(b.ClientName, name)
	if newName == "" {
		return nil, ErrValidation
	}

	if err := s.bookings.UpdateClient(ctx, b.ID,
		newName,
		merged(b.ClientEmail, email),
		merged(b.ClientPhone, phone),
		merged(b.Notes, notes),
	); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Update applies a partial edit in a fixed order: times, client fields, then
// status. Every part is validated against the current state before the first
// repository write, so a rejected part leaves the whole booking untouched.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, ErrValidation
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	touchesTimes := req.StartTime != nil
	touchesClient := req.ClientName != nil || req.ClientEmail != nil || req.ClientPhone != nil || req.Notes != nil

	if touchesTimes {
		if !req.EndTime.After(req.StartTime.Time) {
			return nil, ErrValidation
		}
		if b.Status == domain.BookingCancelled {
			return nil, ErrInvalidTransition
		}
	}
	if (touchesTimes || touchesClient) && b.Status == domain.BookingBlocked {
		return nil, ErrForbidden
	}
	if req.ClientName != nil && *req.ClientName == "" {
		return nil, ErrValidation
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrValidation
		}
		if !domain.CanTransition(b.Status, status) {
			return nil, ErrInvalidTransition
		}
	}

	if touchesTimes {
		if _, err := s.UpdateTimes(ctx, id, req.StartTime.Time, req.EndTime.Time); err != nil {
			return nil, err
		}
	}
	if touchesClient {
		if _, err := s.UpdateClient(ctx, id, req.ClientName, req.ClientEmail, req.ClientPhone, req.Notes); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if _, err := s.SetStatus(ctx, id, domain.BookingStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

// Reassign moves a booking to another resource as cancel-old + create-new.
// The resource reference on a booking is write-once; the two-step shape keeps
// the audit trail and the no-overlap reasoning simple. The new slot is
// checked before the old booking is cancelled so a conflict leaves
// everything untouched.
func (s *Service) Reassign(ctx context.Context, id int64, newResourceID int64) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingBlocked {
		return nil, ErrForbidden
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrInvalidTransition
	}
	if newResourceID == b.ResourceID {
		return nil, ErrValidation
	}

	res, err := s.resources.GetByID(ctx, newResourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	unlock := s.locks.lock(res.ID)
	defer unlock()

	cnt, err := s.bookings.CountOverlapping(ctx, res.ID, b.StartTime, b.EndTime, 0)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrConflict
	}

	now := time.Now()
	if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled, &now); err != nil {
		return nil, err
	}

	replacement := &domain.Booking{
		ResourceType: res.Type,
		ResourceID:   res.ID,
		ResourceName: res.Name,
		ClientName:   b.ClientName,
		ClientEmail:  b.ClientEmail,
		ClientPhone:  b.ClientPhone,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		Notes:        b.Notes,
	}
	if err := s.bookings.Create(ctx, replacement); err != nil {
		if isOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return replacement, nil
}

// isOverlapViolation maps the Postgres backstop constraint (unique index or
// tstzrange exclusion) onto the domain conflict error.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
