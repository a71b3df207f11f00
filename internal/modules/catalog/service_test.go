package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"officespace/internal/domain"
)

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, r *domain.Resource) error {
	args := m.Called(ctx, r)
	if r != nil && r.ID == 0 {
		r.ID = 11
	}
	return args.Error(0)
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) List(ctx context.Context, resourceType string) ([]domain.Resource, error) {
	args := m.Called(ctx, resourceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) Update(ctx context.Context, r *domain.Resource) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResourceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountActiveForResource(ctx context.Context, resourceID int64) (int64, error) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Create_InvalidType(t *testing.T) {
	svc := NewService(new(MockResourceRepository), new(MockBookingCounter))

	_, err := svc.Create(context.Background(), CreateResourceRequest{
		Name: "Desk 4", Type: "desk", Capacity: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestService_Create_Success(t *testing.T) {
	resources := new(MockResourceRepository)
	resources.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(resources, new(MockBookingCounter))
	r, err := svc.Create(context.Background(), CreateResourceRequest{
		Name: "Phone Booth 1", Type: "booth", Capacity: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ResourceBooth, r.Type)
	assert.Equal(t, int64(11), r.ID)
}

func TestService_List_FilterValidation(t *testing.T) {
	resources := new(MockResourceRepository)
	resources.On("List", mock.Anything, "room").Return([]domain.Resource{{ID: 1}}, nil)

	svc := NewService(resources, new(MockBookingCounter))

	items, err := svc.List(context.Background(), "room")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.List(context.Background(), "warehouse")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestService_Delete_GuardedByActiveBookings(t *testing.T) {
	resources := new(MockResourceRepository)
	bookings := new(MockBookingCounter)

	resources.On("GetByID", mock.Anything, int64(1)).Return(&domain.Resource{ID: 1}, nil)
	bookings.On("CountActiveForResource", mock.Anything, int64(1)).Return(int64(2), nil)

	svc := NewService(resources, bookings)
	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrActiveBookings)
	resources.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_Success(t *testing.T) {
	resources := new(MockResourceRepository)
	bookings := new(MockBookingCounter)

	resources.On("GetByID", mock.Anything, int64(1)).Return(&domain.Resource{ID: 1}, nil)
	bookings.On("CountActiveForResource", mock.Anything, int64(1)).Return(int64(0), nil)
	resources.On("Delete", mock.Anything, int64(1)).Return(nil)

	svc := NewService(resources, bookings)
	require.NoError(t, svc.Delete(context.Background(), 1))
	resources.AssertExpectations(t)
}

func TestService_Get_NotFound(t *testing.T) {
	resources := new(MockResourceRepository)
	resources.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(resources, new(MockBookingCounter))
	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
