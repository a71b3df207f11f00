package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"officespace/internal/domain"
	"officespace/internal/modules/booking"
	"officespace/internal/pkg/timefmt"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, r *domain.BookingRequest) error {
	args := m.Called(ctx, r)
	if r != nil && r.ID == 0 {
		r.ID = 77
	}
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRequest), args.Error(1)
}

func (m *MockRequestRepository) List(ctx context.Context, requestType, status string) ([]domain.BookingRequest, error) {
	args := m.Called(ctx, requestType, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRequest), args.Error(1)
}

func (m *MockRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, bookingID *int64) (int64, error) {
	args := m.Called(ctx, id, status, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingWriter struct {
	mock.Mock
}

func (m *MockBookingWriter) Create(ctx context.Context, req booking.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingWriter) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func newRequestFixture() *domain.BookingRequest {
	start := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	return &domain.BookingRequest{
		ID:           4,
		Reference:    "ref-4",
		RequestType:  domain.RequestTypeBooking,
		Status:       domain.RequestNew,
		ResourceType: domain.ResourceRoom,
		ResourceID:   2,
		ResourceName: "Room R2",
		ClientName:   "Diego Pérez",
		ClientEmail:  "diego@example.com",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	}
}

func TestService_Submit_StartsNew(t *testing.T) {
	requests := new(MockRequestRepository)
	requests.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(requests, new(MockBookingWriter))
	start := timefmt.LocalTime{Time: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)}
	end := timefmt.LocalTime{Time: start.Add(time.Hour)}

	r, err := svc.Submit(context.Background(), SubmitRequest{
		ResourceType: "room",
		ResourceID:   2,
		ResourceName: "Room R2",
		ClientName:   "Diego Pérez",
		ClientEmail:  "diego@example.com",
		StartTime:    start,
		EndTime:      end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RequestNew, r.Status)
	assert.NotEmpty(t, r.Reference)
	assert.Equal(t, domain.RequestTypeBooking, r.RequestType)
}

func TestService_Submit_InvalidRange(t *testing.T) {
	svc := NewService(new(MockRequestRepository), new(MockBookingWriter))

	start := timefmt.LocalTime{Time: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)}
	_, err := svc.Submit(context.Background(), SubmitRequest{
		ResourceID:  2,
		ClientName:  "Diego Pérez",
		ClientEmail: "diego@example.com",
		StartTime:   start,
		EndTime:     start,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Approve_Success(t *testing.T) {
	requests := new(MockRequestRepository)
	bookings := new(MockBookingWriter)

	fixture := newRequestFixture()
	created := &domain.Booking{ID: 55, Status: domain.BookingPending, ResourceID: 2}

	requests.On("GetByID", mock.Anything, int64(4)).Return(fixture, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(req booking.CreateBookingRequest) bool {
		return req.ResourceID == 2 && req.ClientName == "Diego Pérez" &&
			req.StartTime.Equal(fixture.StartTime) && req.EndTime.Equal(fixture.EndTime)
	})).Return(created, nil)
	requests.On("UpdateStatus", mock.Anything, int64(4), domain.RequestApproved,
		mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 55 })).Return(int64(1), nil)

	svc := NewService(requests, bookings)
	b, err := svc.Approve(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(55), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	requests.AssertExpectations(t)
}

func TestService_Approve_ConflictLeavesRequestNew(t *testing.T) {
	requests := new(MockRequestRepository)
	bookings := new(MockBookingWriter)

	requests.On("GetByID", mock.Anything, int64(4)).Return(newRequestFixture(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil, booking.ErrConflict)

	svc := NewService(requests, bookings)
	_, err := svc.Approve(context.Background(), 4)

	assert.ErrorIs(t, err, booking.ErrConflict)
	requests.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Approve_AlreadyProcessed(t *testing.T) {
	requests := new(MockRequestRepository)

	processed := newRequestFixture()
	processed.Status = domain.RequestApproved
	requests.On("GetByID", mock.Anything, int64(4)).Return(processed, nil)

	svc := NewService(requests, new(MockBookingWriter))
	_, err := svc.Approve(context.Background(), 4)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_Approve_LostRaceReleasesBooking(t *testing.T) {
	requests := new(MockRequestRepository)
	bookings := new(MockBookingWriter)

	requests.On("GetByID", mock.Anything, int64(4)).Return(newRequestFixture(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 55, Status: domain.BookingPending}, nil)
	requests.On("UpdateStatus", mock.Anything, int64(4), domain.RequestApproved, mock.Anything).Return(int64(0), nil)
	bookings.On("SetStatus", mock.Anything, int64(55), domain.BookingCancelled).
		Return(&domain.Booking{ID: 55, Status: domain.BookingCancelled}, nil)

	svc := NewService(requests, bookings)
	_, err := svc.Approve(context.Background(), 4)
	assert.ErrorIs(t, err, ErrInvalidState)

	// the booking created for the lost approval must not keep the slot
	bookings.AssertCalled(t, "SetStatus", mock.Anything, int64(55), domain.BookingCancelled)
}

func TestService_Reject(t *testing.T) {
	requests := new(MockRequestRepository)
	requests.On("GetByID", mock.Anything, int64(4)).Return(newRequestFixture(), nil)
	requests.On("UpdateStatus", mock.Anything, int64(4), domain.RequestRejected,
		mock.MatchedBy(func(id *int64) bool { return id == nil })).Return(int64(1), nil)

	svc := NewService(requests, new(MockBookingWriter))
	require.NoError(t, svc.Reject(context.Background(), 4))

	rejected := newRequestFixture()
	rejected.Status = domain.RequestRejected
	requests2 := new(MockRequestRepository)
	requests2.On("GetByID", mock.Anything, int64(4)).Return(rejected, nil)

	svc2 := NewService(requests2, new(MockBookingWriter))
	assert.ErrorIs(t, svc2.Reject(context.Background(), 4), ErrInvalidState)
}
