package request

type ProductCreateRequest struct {
	Name       string  `json:"name" validate:"required,min=3,max=255"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	CategoryID *int64  `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	BrandID    *int64  `json:"brandId,omitempty" validate:"omitempty,gt=0"`
}

// ProductUpdateRequest carries merge-patch semantics: only non-nil
// fields overwrite the stored record.
type ProductUpdateRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryID *int64   `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	BrandID    *int64   `json:"brandId,omitempty" validate:"omitempty,gt=0"`
	IsActive   *bool    `json:"isActive,omitempty"`
}

// ProductFilterRequest composes the optional listing filters with AND
// semantics.
type ProductFilterRequest struct {
	Name       *string  `json:"name,omitempty"`
	CategoryID *int64   `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	BrandID    *int64   `json:"brandId,omitempty" validate:"omitempty,gt=0"`
	MinPrice   *float64 `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice   *float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	IsActive   *bool    `json:"isActive,omitempty"`
}

// ImageUpload is the optional photo attached to a create or update.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
