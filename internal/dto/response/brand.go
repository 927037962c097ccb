package response

import (
	"time"

	"catalog-api/internal/data/entity"
)

type BrandResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Logo        *string   `json:"logo,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func BrandToResponse(brand *entity.Brand) BrandResponse {
	return BrandResponse{
		ID:          brand.ID,
		Name:        brand.Name,
		Description: brand.Description,
		Logo:        brand.Logo,
		IsActive:    brand.IsActive,
		CreatedAt:   brand.CreatedAt,
		UpdatedAt:   brand.UpdatedAt,
	}
}

func BrandsToResponse(brands []*entity.Brand) []BrandResponse {
	items := make([]BrandResponse, 0, len(brands))
	for _, brand := range brands {
		items = append(items, BrandToResponse(brand))
	}
	return items
}
