package response

import (
	"time"

	"catalog-api/internal/data/entity"
)

type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func CategoriesToResponse(categories []*entity.Category) []CategoryResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, CategoryToResponse(category))
	}
	return items
}
