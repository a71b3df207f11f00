package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"officespace/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	ResourceType string     `gorm:"column:resource_type"`
	ResourceID   int64      `gorm:"column:resource_id;index"`
	ResourceName string     `gorm:"column:resource_name"`
	ClientName   string     `gorm:"column:client_name"`
	ClientEmail  *string    `gorm:"column:client_email"`
	ClientPhone  *string    `gorm:"column:client_phone"`
	StartTime    time.Time  `gorm:"column:start_time;index"`
	EndTime      time.Time  `gorm:"column:end_time"`
	Status       string     `gorm:"column:status;index"`
	Notes        *string    `gorm:"column:notes"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:           m.ID,
		ResourceType: domain.ResourceType(m.ResourceType),
		ResourceID:   m.ResourceID,
		ResourceName: m.ResourceName,
		ClientName:   m.ClientName,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		CancelledAt:  m.CancelledAt,
	}
	if m.ClientEmail != nil {
		b.ClientEmail = *m.ClientEmail
	}
	if m.ClientPhone != nil {
		b.ClientPhone = *m.ClientPhone
	}
	if m.Notes != nil {
		b.Notes = *m.Notes
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:           b.ID,
		ResourceType: string(b.ResourceType),
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		ClientName:   b.ClientName,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		CancelledAt:  b.CancelledAt,
	}
	if b.ClientEmail != "" {
		v := b.ClientEmail
		m.ClientEmail = &v
	}
	if b.ClientPhone != "" {
		v := b.ClientPhone
		m.ClientPhone = &v
	}
	if b.Notes != "" {
		v := b.Notes
		m.Notes = &v
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// BookingFilter narrows List. Zero values mean "no filter"; From/To select
// bookings overlapping the window, not contained in it.
type BookingFilter struct {
	ResourceID int64
	Status     string
	From       time.Time
	To         time.Time
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Order("start_time asc, id asc")
	if f.ResourceID != 0 {
		q = q.Where("resource_id = ?", f.ResourceID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.From.IsZero() {
		q = q.Where("end_time > ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("start_time < ?", f.To)
	}

	var models []bookingModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListActive returns bookings that occupy the calendar: every status except
// cancelled, optionally clipped to a window.
func (r *BookingRepository) ListActive(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("status <> ?", string(domain.BookingCancelled)).
		Order("start_time asc, id asc")
	if !from.IsZero() {
		q = q.Where("end_time > ?", from)
	}
	if !to.IsZero() {
		q = q.Where("start_time < ?", to)
	}

	var models []bookingModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// CountOverlapping is the availability check: slot-holding bookings on the
// resource whose half-open interval intersects [start, end). excludeID lets
// move/resize skip the booking being edited; pass 0 on create.
func (r *BookingRepository) CountOverlapping(ctx context.Context, resourceID int64, start, end time.Time, excludeID int64) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE resource_id = ?
  AND status IN ('pending', 'confirmed', 'blocked')
  AND id <> ?
  AND start_time < ?
  AND end_time > ?
`
	tx := r.db.WithContext(ctx).Raw(q, resourceID, excludeID, end, start).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// CountActiveForResource backs the catalog's delete guard.
func (r *BookingRepository) CountActiveForResource(ctx context.Context, resourceID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("resource_id = ? AND status IN ?", resourceID,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed), string(domain.BookingBlocked)}).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) UpdateTimes(ctx context.Context, id int64, start, end time.Time) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_time": start,
			"end_time":   end,
			"updated_at": time.Now(),
		}).Error
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *BookingRepository) UpdateClient(ctx context.Context, id int64, name, email, phone, notes string) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"client_name":  name,
			"client_email": email,
			"client_phone": phone,
			"notes":        notes,
			"updated_at":   time.Now(),
		}).Error
}
