package domain

import "time"

type ResourceType string

const (
	ResourceRoom  ResourceType = "room"
	ResourceBooth ResourceType = "booth"
)

func (t ResourceType) Valid() bool {
	return t == ResourceRoom || t == ResourceBooth
}

type Resource struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Type        ResourceType `json:"type" validate:"required"`
	Capacity    int          `json:"capacity" validate:"required,gt=0"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string       `json:"image_url,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
