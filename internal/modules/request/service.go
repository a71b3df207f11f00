package request

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"officespace/internal/domain"
	"officespace/internal/modules/booking"
	"officespace/internal/pkg/timefmt"
	"officespace/internal/pkg/validator"
)

type Service struct {
	requests RequestRepository
	bookings BookingWriter
}

func NewService(requests RequestRepository, bookings BookingWriter) *Service {
	return &Service{requests: requests, bookings: bookings}
}

// Submit captures a public reservation request. Deliberately no availability
// check here: several requests may race for the same slot, and only approval
// decides the winner. Conflicts therefore surface to the approver, not to
// the fan-facing form.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.BookingRequest, error) {
	if !req.EndTime.After(req.StartTime.Time) {
		return nil, ErrValidation
	}

	r := &domain.BookingRequest{
		Reference:    uuid.NewString(),
		RequestType:  domain.RequestTypeBooking,
		Status:       domain.RequestNew,
		ResourceType: domain.ResourceType(req.ResourceType),
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ClientPhone:  req.ClientPhone,
		StartTime:    req.StartTime.Time,
		EndTime:      req.EndTime.Time,
		Notes:        req.Notes,
	}
	if fields := validator.Validate(r); fields != nil {
		return nil, ErrValidation
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"request_id": r.ID,
		"reference":  r.Reference,
		"resource":   r.ResourceID,
	}).Info("booking request submitted")

	return r, nil
}

func (s *Service) List(ctx context.Context, requestType, status string) ([]domain.BookingRequest, error) {
	return s.requests.List(ctx, requestType, status)
}

func (s *Service) PendingCount(ctx context.Context) (int64, error) {
	return s.requests.CountByStatus(ctx, string(domain.RequestNew))
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	r, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// Approve materializes a pending request into a booking through the booking
// store's own create path. On conflict the request stays "new" so the
// approver can pick a different slot or reject it explicitly; nothing is
// dropped silently.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Booking, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.RequestNew {
		return nil, ErrInvalidState
	}

	b, err := s.bookings.Create(ctx, booking.CreateBookingRequest{
		ResourceType: string(r.ResourceType),
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		ClientPhone:  r.ClientPhone,
		StartTime:    timefmt.LocalTime{Time: r.StartTime},
		EndTime:      timefmt.LocalTime{Time: r.EndTime},
		Notes:        r.Notes,
	})
	if err != nil {
		// booking.ErrConflict and friends propagate untouched; the request
		// is still "new" at this point.
		return nil, err
	}

	rows, err := s.requests.UpdateStatus(ctx, r.ID, domain.RequestApproved, &b.ID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// A concurrent decision claimed the request between our read and the
		// conditional update. Release the booking we just created so the
		// slot is not held by an orphan.
		if _, cErr := s.bookings.SetStatus(ctx, b.ID, domain.BookingCancelled); cErr != nil {
			logrus.WithError(cErr).WithField("booking_id", b.ID).
				Warn("failed to release booking after lost approval race")
		}
		return nil, ErrInvalidState
	}

	logrus.WithFields(logrus.Fields{
		"request_id": r.ID,
		"booking_id": b.ID,
	}).Info("booking request approved")

	return b, nil
}

func (s *Service) Reject(ctx context.Context, id int64) error {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.Status != domain.RequestNew {
		return ErrInvalidState
	}

	rows, err := s.requests.UpdateStatus(ctx, r.ID, domain.RequestRejected, nil)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInvalidState
	}
	return nil
}
