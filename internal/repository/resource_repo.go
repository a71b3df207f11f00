package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"officespace/internal/domain"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

type resourceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Type        string    `gorm:"column:type;index"`
	Capacity    int       `gorm:"column:capacity"`
	Description *string   `gorm:"column:description"`
	ImageURL    *string   `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (resourceModel) TableName() string { return "resources" }

func toDomainResource(m resourceModel) *domain.Resource {
	r := &domain.Resource{
		ID:        m.ID,
		Name:      m.Name,
		Type:      domain.ResourceType(m.Type),
		Capacity:  m.Capacity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Description != nil {
		r.Description = *m.Description
	}
	if m.ImageURL != nil {
		r.ImageURL = *m.ImageURL
	}
	return r
}

func toResourceModel(r *domain.Resource) resourceModel {
	m := resourceModel{
		ID:        r.ID,
		Name:      r.Name,
		Type:      string(r.Type),
		Capacity:  r.Capacity,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Description != "" {
		v := r.Description
		m.Description = &v
	}
	if r.ImageURL != "" {
		v := r.ImageURL
		m.ImageURL = &v
	}
	return m
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	m := toResourceModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainResource(m)
	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	var m resourceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainResource(m), nil
}

// List returns resources, optionally filtered by type, ordered by name.
func (r *ResourceRepository) List(ctx context.Context, resourceType string) ([]domain.Resource, error) {
	q := r.db.WithContext(ctx).Model(&resourceModel{}).Order("name asc")
	if resourceType != "" {
		q = q.Where("type = ?", resourceType)
	}

	var models []resourceModel
	if tx := q.Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Resource, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainResource(m))
	}
	return out, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	m := toResourceModel(res)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainResource(m)
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&resourceModel{}, id).Error
}
