package catalog

type CreateResourceRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateResourceRequest patches mutable fields. Identity and type are
// write-once; only capacity and display metadata change after creation.
type UpdateResourceRequest struct {
	Name        *string `json:"name"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}
