package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"officespace/internal/domain"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

type requestModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Reference    string    `gorm:"column:reference;uniqueIndex"`
	RequestType  string    `gorm:"column:request_type;index"`
	Status       string    `gorm:"column:status;index"`
	ResourceType string    `gorm:"column:resource_type"`
	ResourceID   int64     `gorm:"column:resource_id"`
	ResourceName string    `gorm:"column:resource_name"`
	ClientName   string    `gorm:"column:client_name"`
	ClientEmail  string    `gorm:"column:client_email"`
	ClientPhone  *string   `gorm:"column:client_phone"`
	StartTime    time.Time `gorm:"column:start_time"`
	EndTime      time.Time `gorm:"column:end_time"`
	Notes        *string   `gorm:"column:notes"`
	BookingID    *int64    `gorm:"column:booking_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (requestModel) TableName() string { return "booking_requests" }

func toDomainRequest(m requestModel) *domain.BookingRequest {
	req := &domain.BookingRequest{
		ID:           m.ID,
		Reference:    m.Reference,
		RequestType:  domain.RequestType(m.RequestType),
		Status:       domain.RequestStatus(m.Status),
		ResourceType: domain.ResourceType(m.ResourceType),
		ResourceID:   m.ResourceID,
		ResourceName: m.ResourceName,
		ClientName:   m.ClientName,
		ClientEmail:  m.ClientEmail,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		BookingID:    m.BookingID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.ClientPhone != nil {
		req.ClientPhone = *m.ClientPhone
	}
	if m.Notes != nil {
		req.Notes = *m.Notes
	}
	return req
}

func toRequestModel(r *domain.BookingRequest) requestModel {
	m := requestModel{
		ID:           r.ID,
		Reference:    r.Reference,
		RequestType:  string(r.RequestType),
		Status:       string(r.Status),
		ResourceType: string(r.ResourceType),
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		BookingID:    r.BookingID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.ClientPhone != "" {
		v := r.ClientPhone
		m.ClientPhone = &v
	}
	if r.Notes != "" {
		v := r.Notes
		m.Notes = &v
	}
	return m
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.BookingRequest) error {
	m := toRequestModel(req)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*req = *toDomainRequest(m)
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	var m requestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequest(m), nil
}

func (r *RequestRepository) List(ctx context.Context, requestType, status string) ([]domain.BookingRequest, error) {
	q := r.db.WithContext(ctx).Model(&requestModel{}).Order("created_at desc, id desc")
	if requestType != "" {
		q = q.Where("request_type = ?", requestType)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var models []requestModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.BookingRequest, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRequest(m))
	}
	return out, nil
}

// ListNew returns pending booking requests with usable time details; the
// calendar projector overlays them on top of real bookings.
func (r *RequestRepository) ListNew(ctx context.Context) ([]domain.BookingRequest, error) {
	return r.List(ctx, string(domain.RequestTypeBooking), string(domain.RequestNew))
}

func (r *RequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&requestModel{}).
		Where("status = ?", status).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// UpdateStatus moves a request out of "new". The WHERE clause on the current
// status makes the transition conditional, so two concurrent approvals cannot
// both claim the same request. The caller treats 0 affected rows as a lost
// race.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, bookingID *int64) (int64, error) {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if bookingID != nil {
		updates["booking_id"] = *bookingID
	}
	tx := r.db.WithContext(ctx).Model(&requestModel{}).
		Where("id = ? AND status = ?", id, string(domain.RequestNew)).
		Updates(updates)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
