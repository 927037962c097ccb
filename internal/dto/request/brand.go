package request

type BrandCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Logo        *string `json:"logo,omitempty" validate:"omitempty,max=500"`
}

type BrandUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Logo        *string `json:"logo,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
